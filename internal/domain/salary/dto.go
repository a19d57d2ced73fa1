package salary

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// MasterSummary is one row of the masters table: a master's month
// folded into per-category sums and the derived results.
type MasterSummary struct {
	StaffID         string  `json:"staff_id,omitempty"`
	Name            string  `json:"name"`
	Revenue         float64 `json:"revenue"` // staff share of service prices
	Tips            float64 `json:"tips"`
	Clients         int     `json:"clients"`
	Penalty         float64 `json:"penalty"`
	Bonus           float64 `json:"bonus"`
	Deduction       float64 `json:"deduction"`
	Advance         float64 `json:"advance"`
	Salary          float64 `json:"salary"`
	Tax             float64 `json:"tax"`
	ExcessThreshold float64 `json:"excess_threshold"`
	NetResult       float64 `json:"net_result"`
	Remaining       float64 `json:"remaining"`
	Excess          float64 `json:"excess"`
}

// DayRevenue is one point of the dense per-day revenue series.
type DayRevenue struct {
	Date string  `json:"date"` // YYYY-MM-DD
	Sum  float64 `json:"sum"`
}

// MastersResult is the master-track aggregation for a period plus the
// company-wide figures accumulated in the same pass.
type MastersResult struct {
	Summary             []MasterSummary `json:"summary"`
	GlobalFlow          float64         `json:"global_flow"`
	SumMasters          float64         `json:"sum_masters"`
	ClientsServed       int             `json:"clients_served"`
	AverageCheck        float64         `json:"average_check"`
	AverageMasterSalary float64         `json:"average_master_salary"`
	SalonShareCash      float64         `json:"salon_share_cash"`
	SalonShareCard      float64         `json:"salon_share_card"`
	TotalExcess         float64         `json:"total_excess"`
	DaysRevenue         []DayRevenue    `json:"days_revenue"`
}

// AdminSummary is one row of the administrators table.
type AdminSummary struct {
	StaffID          string   `json:"staff_id,omitempty"`
	Name             string   `json:"name"`
	Hours            float64  `json:"hours"`
	Penalty          float64  `json:"penalty"`
	Bonus            float64  `json:"bonus"`
	Deduction        float64  `json:"deduction"`
	Advance          float64  `json:"advance"`
	Salary           float64  `json:"salary"`
	Tax              float64  `json:"tax"`
	HourlyRate       float64  `json:"hourly_rate"`
	FixedMonthlyRate *float64 `json:"fixed_monthly_rate,omitempty"`
	IsFixedMonthly   bool     `json:"is_fixed_monthly"`
	ExcessThreshold  float64  `json:"excess_threshold"`
	NetResult        float64  `json:"net_result"`
	Remaining        float64  `json:"remaining"`
	Excess           float64  `json:"excess"`
}

// AdminsResult is the admin-track aggregation for a period.
type AdminsResult struct {
	Summary     []AdminSummary `json:"summary"`
	SumAdmins   float64        `json:"sum_admins"`
	TotalExcess float64        `json:"total_excess"`
}

// SalariesResponse is the combined payroll screen for a month.
type SalariesResponse struct {
	Month   string        `json:"month"`
	Masters MastersResult `json:"masters"`
	Admins  AdminsResult  `json:"admins"`
}

// CabinetResponse is a master's personal month view.
type CabinetResponse struct {
	Name      string                   `json:"name"`
	Month     string                   `json:"month"`
	Offers    []OfferDone              `json:"offers"`
	Revenue   float64                  `json:"revenue"`
	Tips      float64                  `json:"tips"`
	Bonus     float64                  `json:"bonus"`
	Penalty   float64                  `json:"penalty"`
	Deduction float64                  `json:"deduction"`
	NetResult float64                  `json:"net_result"`
	Chart     []reservation.DailyCount `json:"chart"`
}

type SalaryService interface {
	Masters(ctx context.Context, p period.Period) (*MastersResult, error)
	Admins(ctx context.Context, p period.Period) (*AdminsResult, error)
	Salaries(ctx context.Context, month string) (*SalariesResponse, error)
	MasterCabinet(ctx context.Context, staffID string, month string) (*CabinetResponse, error)
}
