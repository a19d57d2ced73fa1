package finance

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// VATDivisor strips the 21% value-added tax component from card and QR
// totals. A fixed jurisdiction constant, not configuration.
const VATDivisor = 1.21

// CostRecord is one salon cost; NoVAT is the amount without the VAT
// component when the supplier invoice carries one.
type CostRecord struct {
	Sum   float64
	NoVAT float64
}

// CardRecord is one card-terminal day total, ExtraIncome covering
// non-service card revenue.
type CardRecord struct {
	Sum         float64
	ExtraIncome float64
}

// CashSnapshot is a cumulative cash-register reading, not a discrete
// transaction.
type CashSnapshot struct {
	Profit float64
}

// SumOnly is the shape of vouchers, QR payments, extra profits,
// payroll deductions and taxes on the company screen.
type SumOnly struct {
	Sum float64
}

// MoneySource fetches company-level money records for a period.
type MoneySource interface {
	Costs(ctx context.Context, p period.Period) ([]CostRecord, error)
	CardProfits(ctx context.Context, p period.Period) ([]CardRecord, error)
	ExtraProfits(ctx context.Context, p period.Period) ([]SumOnly, error)
	CashSnapshots(ctx context.Context, p period.Period) ([]CashSnapshot, error)
	PayrollDeductions(ctx context.Context, p period.Period) ([]SumOnly, error)
	VouchersRealized(ctx context.Context, p period.Period) ([]SumOnly, error)
	VouchersPaid(ctx context.Context, p period.Period) ([]SumOnly, error)
	QRPayments(ctx context.Context, p period.Period) ([]SumOnly, error)
	Taxes(ctx context.Context, p period.Period) ([]SumOnly, error)
}

// MoneyTotals are the per-category company totals for a period.
type MoneyTotals struct {
	Costs           float64 `json:"costs"`
	NoVATCosts      float64 `json:"no_vat_costs"`
	CardMoney       float64 `json:"card_money"`
	CardExtraIncome float64 `json:"card_extra_income"`
	CashMoney       float64 `json:"cash_money"`
	PayrollSum      float64 `json:"payroll_sum"`
	VoucherRealized float64 `json:"voucher_realized"`
	VoucherPaid     float64 `json:"voucher_paid"`
	ExtraMoney      float64 `json:"extra_money"`
	QRMoney         float64 `json:"qr_money"`
	TaxesSum        float64 `json:"taxes_sum"`
}

// ResultExclVAT is the company result with the VAT component stripped
// from card-style income: cash plus net card/QR income minus staff
// costs, netto salon costs and taxes.
func (m MoneyTotals) ResultExclVAT(sumMasters, sumAdmins float64) float64 {
	return m.CashMoney +
		(m.CardMoney+m.QRMoney+m.CardExtraIncome)/VATDivisor -
		sumMasters - sumAdmins - m.NoVATCosts - m.TaxesSum
}

// ResultInclVAT is the gross variant: no divisor, gross costs.
func (m MoneyTotals) ResultInclVAT(sumMasters, sumAdmins float64) float64 {
	return m.CashMoney + m.CardMoney + m.QRMoney + m.CardExtraIncome -
		sumMasters - sumAdmins - m.Costs - m.TaxesSum
}

// Difference reconciles payment-method totals against the recorded
// service flow. Nonzero values flag bookkeeping mismatches; they are
// reported, never raised.
func (m MoneyTotals) Difference(globalFlow float64) float64 {
	return m.CardMoney + m.CardExtraIncome + m.CashMoney +
		m.PayrollSum + m.VoucherRealized + m.QRMoney -
		globalFlow - m.ExtraMoney - m.VoucherPaid
}

// MoneySummary is the company money screen for a month.
type MoneySummary struct {
	Month         string      `json:"month"`
	Totals        MoneyTotals `json:"totals"`
	SumMasters    float64     `json:"sum_masters"`
	SumAdmins     float64     `json:"sum_admins"`
	GlobalFlow    float64     `json:"global_flow"`
	ResultExclVAT float64     `json:"result_excl_vat"`
	ResultInclVAT float64     `json:"result_incl_vat"`
	Difference    float64     `json:"difference"`
}

type FinanceService interface {
	Totals(ctx context.Context, p period.Period) (*MoneyTotals, error)
	Money(ctx context.Context, month string) (*MoneySummary, error)
}
