package recordstore

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
)

type rawCost struct {
	Sum   strapi.Number `json:"sum"`
	NoDPH strapi.Number `json:"noDph"`
}

type rawCardProfit struct {
	Sum         strapi.Number `json:"sum"`
	ExtraIncome strapi.Number `json:"extraIncome"`
}

type rawCashSnapshot struct {
	Profit strapi.Number `json:"profit"`
}

type rawSum struct {
	Sum strapi.Number `json:"sum"`
}

// Costs implements finance.MoneySource.
func (r *Repository) Costs(ctx context.Context, p period.Period) ([]finance.CostRecord, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("sum", "noDph").
		Paginate(1, genericPageSize)

	var raw []rawCost
	if err := r.client.Get(ctx, "/api/costs", query, &raw); err != nil {
		return nil, err
	}

	records := make([]finance.CostRecord, 0, len(raw))
	for _, item := range raw {
		records = append(records, finance.CostRecord{
			Sum:   item.Sum.Float(),
			NoVAT: item.NoDPH.Float(),
		})
	}
	return records, nil
}

// CardProfits implements finance.MoneySource.
func (r *Repository) CardProfits(ctx context.Context, p period.Period) ([]finance.CardRecord, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("sum", "extraIncome").
		Paginate(1, genericPageSize)

	var raw []rawCardProfit
	if err := r.client.Get(ctx, "/api/card-profits", query, &raw); err != nil {
		return nil, err
	}

	records := make([]finance.CardRecord, 0, len(raw))
	for _, item := range raw {
		records = append(records, finance.CardRecord{
			Sum:         item.Sum.Float(),
			ExtraIncome: item.ExtraIncome.Float(),
		})
	}
	return records, nil
}

// CashSnapshots implements finance.MoneySource.
func (r *Repository) CashSnapshots(ctx context.Context, p period.Period) ([]finance.CashSnapshot, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("profit").
		Paginate(1, genericPageSize)

	var raw []rawCashSnapshot
	if err := r.client.Get(ctx, "/api/cashs", query, &raw); err != nil {
		return nil, err
	}

	records := make([]finance.CashSnapshot, 0, len(raw))
	for _, item := range raw {
		records = append(records, finance.CashSnapshot{Profit: item.Profit.Float()})
	}
	return records, nil
}

// ExtraProfits implements finance.MoneySource.
func (r *Repository) ExtraProfits(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/extra-profits", "date", p)
}

// PayrollDeductions implements finance.MoneySource.
func (r *Repository) PayrollDeductions(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/payrolls", "date", p)
}

// QRPayments implements finance.MoneySource.
func (r *Repository) QRPayments(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/qr-pays", "date", p)
}

// Taxes implements finance.MoneySource.
func (r *Repository) Taxes(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/taxes", "date", p)
}

// VouchersRealized implements finance.MoneySource. Vouchers carry two
// independent dates; realization filters on dateRealized.
func (r *Repository) VouchersRealized(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/vouchers", "dateRealized", p)
}

// VouchersPaid implements finance.MoneySource.
func (r *Repository) VouchersPaid(ctx context.Context, p period.Period) ([]finance.SumOnly, error) {
	return r.sumCollection(ctx, "/api/vouchers", "datePay", p)
}

func (r *Repository) sumCollection(ctx context.Context, path, dateField string, p period.Period) ([]finance.SumOnly, error) {
	query := strapi.NewQuery().
		WhereBetween(dateField, p.Start, p.End).
		Fields("sum").
		Paginate(1, genericPageSize)

	var raw []rawSum
	if err := r.client.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}

	records := make([]finance.SumOnly, 0, len(raw))
	for _, item := range raw {
		records = append(records, finance.SumOnly{Sum: item.Sum.Float()})
	}
	return records, nil
}
