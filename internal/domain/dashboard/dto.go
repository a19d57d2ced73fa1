package dashboard

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
)

// DashboardResponse is the combined owner dashboard for one month.
type DashboardResponse struct {
	Month        string                      `json:"month"`
	Masters      salary.MastersResult        `json:"masters"`
	Admins       salary.AdminsResult         `json:"admins"`
	Money        finance.MoneySummary        `json:"money"`
	Reservations reservation.MetricsResponse `json:"reservations"`
}

// WeekOverviewResponse is the lightweight weekly snapshot.
type WeekOverviewResponse struct {
	WeekStart           string              `json:"week_start"`
	WeekEnd             string              `json:"week_end"`
	ClientsServed       int                 `json:"clients_served"`
	GlobalFlow          float64             `json:"global_flow"`
	AverageCheck        float64             `json:"average_check"`
	AverageMasterSalary float64             `json:"average_master_salary"`
	SumAdmins           float64             `json:"sum_admins"`
	DaysRevenue         []salary.DayRevenue `json:"days_revenue"`
}

type DashboardService interface {
	GetDashboard(ctx context.Context, month string) (*DashboardResponse, error)
	// GetWeekOverview aggregates an explicit day range, or the
	// current Monday-Sunday week when both bounds are empty.
	GetWeekOverview(ctx context.Context, start, end string) (*WeekOverviewResponse, error)
}
