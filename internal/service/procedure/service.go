package procedure

import (
	"context"
	"sort"

	"github.com/simon1400/barbitch-admin/internal/domain/procedure"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

type ProcedureServiceImpl struct {
	source procedure.Source
}

func NewProcedureService(source procedure.Source) procedure.ProcedureService {
	return &ProcedureServiceImpl{source: source}
}

func (s *ProcedureServiceImpl) Stats(ctx context.Context, month string) (*procedure.Result, error) {
	p := period.ParseMonth(month)

	sales, err := s.source.SalesWithOffers(ctx, p)
	if err != nil {
		return nil, err
	}

	result := &procedure.Result{
		Month:      p.Start.Format("2006-01"),
		Procedures: []procedure.Stats{},
	}

	byTitle := make(map[string]*procedure.Stats)
	var order []string
	for _, sale := range sales {
		title := sale.OfferTitle
		if title == "" {
			title = procedure.UntitledOffer
		}

		result.TotalCount++
		result.TotalRevenue += sale.Revenue()

		stats, ok := byTitle[title]
		if !ok {
			stats = &procedure.Stats{Name: title}
			byTitle[title] = stats
			order = append(order, title)
		}
		stats.Count++
		stats.TotalRevenue += sale.Revenue()
	}

	for _, title := range order {
		result.Procedures = append(result.Procedures, *byTitle[title])
	}
	sort.Slice(result.Procedures, func(i, j int) bool {
		return result.Procedures[i].TotalRevenue > result.Procedures[j].TotalRevenue
	})

	return result, nil
}
