package finance

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

type FinanceServiceImpl struct {
	source   finance.MoneySource
	salaries salary.SalaryService
}

func NewFinanceService(source finance.MoneySource, salaries salary.SalaryService) finance.FinanceService {
	return &FinanceServiceImpl{
		source:   source,
		salaries: salaries,
	}
}

// Totals loads every company-level money category for the period
// concurrently and folds each into its total.
func (s *FinanceServiceImpl) Totals(ctx context.Context, p period.Period) (*finance.MoneyTotals, error) {
	var totals finance.MoneyTotals

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		costs, err := s.source.Costs(gCtx, p)
		if err != nil {
			return err
		}
		for _, c := range costs {
			totals.Costs += c.Sum
			totals.NoVATCosts += c.NoVAT
		}
		return nil
	})

	g.Go(func() error {
		cards, err := s.source.CardProfits(gCtx, p)
		if err != nil {
			return err
		}
		for _, c := range cards {
			totals.CardMoney += c.Sum
			totals.CardExtraIncome += c.ExtraIncome
		}
		return nil
	})

	g.Go(func() error {
		snapshots, err := s.source.CashSnapshots(gCtx, p)
		if err != nil {
			return err
		}
		// Register readings are cumulative, so the period's cash
		// figure is the highest reading, not a sum.
		for _, snap := range snapshots {
			if snap.Profit > totals.CashMoney {
				totals.CashMoney = snap.Profit
			}
		}
		return nil
	})

	g.Go(func() error {
		return sumInto(gCtx, p, s.source.PayrollDeductions, &totals.PayrollSum)
	})
	g.Go(func() error {
		return sumInto(gCtx, p, s.source.VouchersRealized, &totals.VoucherRealized)
	})
	g.Go(func() error {
		return sumInto(gCtx, p, s.source.VouchersPaid, &totals.VoucherPaid)
	})
	g.Go(func() error {
		return sumInto(gCtx, p, s.source.ExtraProfits, &totals.ExtraMoney)
	})
	g.Go(func() error {
		return sumInto(gCtx, p, s.source.QRPayments, &totals.QRMoney)
	})
	g.Go(func() error {
		return sumInto(gCtx, p, s.source.Taxes, &totals.TaxesSum)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &totals, nil
}

func sumInto(ctx context.Context, p period.Period, fetch func(context.Context, period.Period) ([]finance.SumOnly, error), dst *float64) error {
	records, err := fetch(ctx, p)
	if err != nil {
		return err
	}
	for _, rec := range records {
		*dst += rec.Sum
	}
	return nil
}

// Money is the full company money screen: category totals plus the
// payroll sums and the derived result and reconciliation figures.
func (s *FinanceServiceImpl) Money(ctx context.Context, month string) (*finance.MoneySummary, error) {
	p := period.ParseMonth(month)

	var (
		totals  *finance.MoneyTotals
		masters *salary.MastersResult
		admins  *salary.AdminsResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		totals, err = s.Totals(gCtx, p)
		return err
	})
	g.Go(func() error {
		var err error
		masters, err = s.salaries.Masters(gCtx, p)
		return err
	})
	g.Go(func() error {
		var err error
		admins, err = s.salaries.Admins(gCtx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &finance.MoneySummary{
		Month:         p.Start.Format("2006-01"),
		Totals:        *totals,
		SumMasters:    masters.SumMasters,
		SumAdmins:     admins.SumAdmins,
		GlobalFlow:    masters.GlobalFlow,
		ResultExclVAT: totals.ResultExclVAT(masters.SumMasters, admins.SumAdmins),
		ResultInclVAT: totals.ResultInclVAT(masters.SumMasters, admins.SumAdmins),
		Difference:    totals.Difference(masters.GlobalFlow),
	}, nil
}
