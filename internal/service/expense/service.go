package expense

import (
	"context"
	"sort"

	"github.com/simon1400/barbitch-admin/internal/domain/expense"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

type ExpenseServiceImpl struct {
	source expense.Source
}

func NewExpenseService(source expense.Source) expense.ExpenseService {
	return &ExpenseServiceImpl{source: source}
}

func (s *ExpenseServiceImpl) ListMonth(ctx context.Context, month string) (*expense.ListResponse, error) {
	p := period.ParseMonth(month)

	items, err := s.source.Expenses(ctx, p)
	if err != nil {
		return nil, err
	}

	resp := buildList(items)
	resp.Month = p.Start.Format("2006-01")
	return resp, nil
}

func (s *ExpenseServiceImpl) ListAll(ctx context.Context) (*expense.ListResponse, error) {
	items, err := s.source.AllExpenses(ctx)
	if err != nil {
		return nil, err
	}
	return buildList(items), nil
}

// buildList folds expense entries into the screen shape: the entries
// as delivered (newest first) plus per-category totals sorted by spend.
func buildList(items []expense.Item) *expense.ListResponse {
	resp := &expense.ListResponse{
		Items:      items,
		Categories: []expense.CategoryTotal{},
	}
	if resp.Items == nil {
		resp.Items = []expense.Item{}
	}

	totals := make(map[string]*expense.CategoryTotal)
	for _, item := range items {
		resp.Total += item.Sum

		total, ok := totals[item.Category]
		if !ok {
			total = &expense.CategoryTotal{Category: item.Category}
			totals[item.Category] = total
		}
		total.Sum += item.Sum
		total.Count++
	}

	for _, total := range totals {
		resp.Categories = append(resp.Categories, *total)
	}
	sort.Slice(resp.Categories, func(i, j int) bool {
		return resp.Categories[i].Sum > resp.Categories[j].Sum
	})

	return resp
}
