package dashboard

import (
	"context"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/dashboard"
	"github.com/simon1400/barbitch-admin/internal/domain/finance"
	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

type DashboardServiceImpl struct {
	salaries     salary.SalaryService
	finances     finance.FinanceService
	reservations reservation.ReservationService
}

func NewDashboardService(
	salaries salary.SalaryService,
	finances finance.FinanceService,
	reservations reservation.ReservationService,
) dashboard.DashboardService {
	return &DashboardServiceImpl{
		salaries:     salaries,
		finances:     finances,
		reservations: reservations,
	}
}

// GetDashboard assembles the whole owner dashboard in one period load:
// both payroll tracks, the company money block and the reservation
// metrics, fetched concurrently. The money summary is derived from the
// already-loaded payroll results rather than fetched twice.
func (s *DashboardServiceImpl) GetDashboard(ctx context.Context, month string) (*dashboard.DashboardResponse, error) {
	p := period.ParseMonth(month)

	var (
		masters *salary.MastersResult
		admins  *salary.AdminsResult
		totals  *finance.MoneyTotals
		metrics *reservation.MetricsResponse
	)

	g, gCtx := errgroup.WithContext(ctx)
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
	g.Go(func() error {
		var err error
		totals, err = s.finances.Totals(gCtx, p)
		return err
	})
	g.Go(func() error {
		var err error
		metrics, err = s.reservations.Metrics(gCtx, month)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	monthKey := p.Start.Format("2006-01")
	return &dashboard.DashboardResponse{
		Month:   monthKey,
		Masters: *masters,
		Admins:  *admins,
		Money: finance.MoneySummary{
			Month:         monthKey,
			Totals:        *totals,
			SumMasters:    masters.SumMasters,
			SumAdmins:     admins.SumAdmins,
			GlobalFlow:    masters.GlobalFlow,
			ResultExclVAT: totals.ResultExclVAT(masters.SumMasters, admins.SumAdmins),
			ResultInclVAT: totals.ResultInclVAT(masters.SumMasters, admins.SumAdmins),
			Difference:    totals.Difference(masters.GlobalFlow),
		},
		Reservations: *metrics,
	}, nil
}

// GetWeekOverview is the lightweight weekly snapshot: both payroll
// tracks over an explicit day range, defaulting to the current
// Monday-Sunday week.
func (s *DashboardServiceImpl) GetWeekOverview(ctx context.Context, start, end string) (*dashboard.WeekOverviewResponse, error) {
	p := weekPeriod(start, end)

	var (
		masters *salary.MastersResult
		admins  *salary.AdminsResult
	)

	g, gCtx := errgroup.WithContext(ctx)
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

	return &dashboard.WeekOverviewResponse{
		WeekStart:           p.Start.Format("2006-01-02"),
		WeekEnd:             p.End.Format("2006-01-02"),
		ClientsServed:       masters.ClientsServed,
		GlobalFlow:          masters.GlobalFlow,
		AverageCheck:        masters.AverageCheck,
		AverageMasterSalary: masters.AverageMasterSalary,
		SumAdmins:           admins.SumAdmins,
		DaysRevenue:         masters.DaysRevenue,
	}, nil
}

func weekPeriod(start, end string) period.Period {
	from, errFrom := time.Parse("2006-01-02", start)
	to, errTo := time.Parse("2006-01-02", end)
	if errFrom != nil || errTo != nil || to.Before(from) {
		return period.WeekOf(time.Now().UTC())
	}
	return period.Range(from, to)
}
