package recordstore

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/expense"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
)

type rawExpense struct {
	DocumentID string        `json:"documentId"`
	Name       string        `json:"name"`
	Sum        strapi.Number `json:"sum"`
	Date       string        `json:"date"`
	Comment    string        `json:"comment"`
	NoDPH      strapi.Number `json:"noDph"`
	Category   string        `json:"category"`
}

// Expenses implements expense.Source.
func (r *Repository) Expenses(ctx context.Context, p period.Period) ([]expense.Item, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("name", "sum", "date", "comment", "noDph", "category").
		Sort("date:desc").
		Paginate(1, genericPageSize)

	return r.fetchExpenses(ctx, query)
}

// AllExpenses implements expense.Source. It lists the full history,
// so the page size is larger than the per-period fetch.
func (r *Repository) AllExpenses(ctx context.Context) ([]expense.Item, error) {
	query := strapi.NewQuery().
		Fields("name", "sum", "date", "comment", "noDph", "category").
		Sort("date:desc").
		Paginate(1, allCostsPageSize)

	return r.fetchExpenses(ctx, query)
}

func (r *Repository) fetchExpenses(ctx context.Context, query *strapi.Query) ([]expense.Item, error) {
	var raw []rawExpense
	if err := r.client.Get(ctx, "/api/costs", query, &raw); err != nil {
		return nil, err
	}

	items := make([]expense.Item, 0, len(raw))
	for _, item := range raw {
		name := item.Name
		if name == "" {
			name = expense.DefaultName
		}
		category := item.Category
		if category == "" {
			category = expense.DefaultCategory
		}
		var date string
		if t, ok := parseDateText(item.Date); ok {
			date = t.Format("2006-01-02")
		}
		items = append(items, expense.Item{
			ID:       item.DocumentID,
			Name:     name,
			Sum:      item.Sum.Float(),
			Date:     date,
			Comment:  item.Comment,
			NoVAT:    item.NoDPH.Float(),
			Category: category,
		})
	}
	return items, nil
}
