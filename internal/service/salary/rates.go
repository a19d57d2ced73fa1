package salary

import (
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// resolveRate selects the pay agreement in effect for a period. Rates
// are scanned in input order and the first record whose validity window
// intersects the period wins, even when windows overlap. A missing
// bound is open-ended on that side.
//
// Malformed rate data never fails the aggregation; the documented
// default hourly rate fills any gap.
func resolveRate(rates []salary.CompensationRate, p period.Period) salary.RateInfo {
	info := salary.RateInfo{HourlyRate: salary.DefaultHourlyRate}

	for _, r := range rates {
		if r.From != nil && r.From.After(p.End) {
			continue
		}
		if r.To != nil && r.To.Before(p.Start) {
			continue
		}

		if r.Mode == salary.ModeFixedMonthly {
			monthly := float64(salary.DefaultHourlyRate)
			if r.Amount != nil {
				monthly = *r.Amount
			}
			info.FixedMonthlyRate = &monthly
			info.IsFixedMonthly = true
			if r.HourlyAmount != nil {
				info.HourlyRate = *r.HourlyAmount
			}
			return info
		}

		if r.Amount != nil {
			info.HourlyRate = *r.Amount
		}
		return info
	}

	return info
}
