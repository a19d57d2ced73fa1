package finance

import (
	"context"
	"testing"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMoneySource struct {
	costs    []finance.CostRecord
	cards    []finance.CardRecord
	cash     []finance.CashSnapshot
	payrolls []finance.SumOnly
	realized []finance.SumOnly
	paid     []finance.SumOnly
	extra    []finance.SumOnly
	qr       []finance.SumOnly
	taxes    []finance.SumOnly
}

func (f *fakeMoneySource) Costs(context.Context, period.Period) ([]finance.CostRecord, error) {
	return f.costs, nil
}

func (f *fakeMoneySource) CardProfits(context.Context, period.Period) ([]finance.CardRecord, error) {
	return f.cards, nil
}

func (f *fakeMoneySource) CashSnapshots(context.Context, period.Period) ([]finance.CashSnapshot, error) {
	return f.cash, nil
}

func (f *fakeMoneySource) PayrollDeductions(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.payrolls, nil
}

func (f *fakeMoneySource) VouchersRealized(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.realized, nil
}

func (f *fakeMoneySource) VouchersPaid(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.paid, nil
}

func (f *fakeMoneySource) ExtraProfits(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.extra, nil
}

func (f *fakeMoneySource) QRPayments(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.qr, nil
}

func (f *fakeMoneySource) Taxes(context.Context, period.Period) ([]finance.SumOnly, error) {
	return f.taxes, nil
}

func TestTotalsCashUsesMax(t *testing.T) {
	source := &fakeMoneySource{
		cash: []finance.CashSnapshot{{Profit: 1000}, {Profit: 1500}, {Profit: 1200}},
	}
	svc := NewFinanceService(source, nil)

	totals, err := svc.Totals(context.Background(), period.Month(2025, time.March))
	require.NoError(t, err)
	assert.Equal(t, 1500.0, totals.CashMoney)
}

func TestTotalsSums(t *testing.T) {
	source := &fakeMoneySource{
		costs:    []finance.CostRecord{{Sum: 1210, NoVAT: 1000}, {Sum: 605, NoVAT: 500}},
		cards:    []finance.CardRecord{{Sum: 12100, ExtraIncome: 121}},
		cash:     []finance.CashSnapshot{{Profit: 5000}},
		payrolls: []finance.SumOnly{{Sum: 300}, {Sum: 200}},
		realized: []finance.SumOnly{{Sum: 800}},
		paid:     []finance.SumOnly{{Sum: 400}},
		extra:    []finance.SumOnly{{Sum: 150}},
		qr:       []finance.SumOnly{{Sum: 2420}},
		taxes:    []finance.SumOnly{{Sum: 900}},
	}
	svc := NewFinanceService(source, nil)

	totals, err := svc.Totals(context.Background(), period.Month(2025, time.March))
	require.NoError(t, err)

	assert.Equal(t, 1815.0, totals.Costs)
	assert.Equal(t, 1500.0, totals.NoVATCosts)
	assert.Equal(t, 12100.0, totals.CardMoney)
	assert.Equal(t, 121.0, totals.CardExtraIncome)
	assert.Equal(t, 500.0, totals.PayrollSum)
	assert.Equal(t, 800.0, totals.VoucherRealized)
	assert.Equal(t, 400.0, totals.VoucherPaid)
	assert.Equal(t, 150.0, totals.ExtraMoney)
	assert.Equal(t, 2420.0, totals.QRMoney)
	assert.Equal(t, 900.0, totals.TaxesSum)
}

func TestResultFormulas(t *testing.T) {
	totals := finance.MoneyTotals{
		CashMoney:       5000,
		CardMoney:       12100,
		QRMoney:         2420,
		CardExtraIncome: 121,
		NoVATCosts:      1500,
		Costs:           1815,
		TaxesSum:        900,
	}

	// 5000 + (12100+2420+121)/1.21 - 3000 - 2000 - 1500 - 900
	assert.InDelta(t, 9700.0, totals.ResultExclVAT(3000, 2000), 0.001)

	// Gross variant: no divisor, gross costs.
	assert.InDelta(t, 5000+12100+2420+121-3000-2000-1815-900, totals.ResultInclVAT(3000, 2000), 0.001)
}

func TestDifference(t *testing.T) {
	totals := finance.MoneyTotals{
		CardMoney:       100,
		CardExtraIncome: 10,
		CashMoney:       50,
		PayrollSum:      20,
		VoucherRealized: 30,
		QRMoney:         40,
		ExtraMoney:      5,
		VoucherPaid:     15,
	}

	// 100+10+50+20+30+40 - 230 - 5 - 15 = 0
	assert.InDelta(t, 0.0, totals.Difference(230), 0.001)
	assert.InDelta(t, -100.0, totals.Difference(330), 0.001)
}
