package reservation

import (
	"context"
	"math"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/pkg/noona"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

type ReservationServiceImpl struct {
	noona *noona.Client
	now   func() time.Time
}

func NewReservationService(client *noona.Client) reservation.ReservationService {
	return &ReservationServiceImpl{
		noona: client,
		now:   time.Now,
	}
}

func (s *ReservationServiceImpl) Metrics(ctx context.Context, month string) (*reservation.MetricsResponse, error) {
	p := period.ParseMonth(month)
	now := s.now().UTC()
	today := period.Range(now, now)

	var (
		events       []noona.Event
		createdMonth int
		createdToday int
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		events, err = s.noona.Events(gCtx, noona.EventFilter{From: p.Start, To: p.End})
		return err
	})
	g.Go(func() error {
		var err error
		createdMonth, err = s.noona.EventCount(gCtx, noona.EventFilter{CreatedFrom: p.Start, CreatedTo: p.End})
		return err
	})
	g.Go(func() error {
		var err error
		createdToday, err = s.noona.EventCount(gCtx, noona.EventFilter{CreatedFrom: today.Start, CreatedTo: today.End})
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := buildMetrics(events, p, now)
	resp.CreatedMonth = createdMonth
	resp.CreatedToday = createdToday

	// Bookings per elapsed day; a past month divides by its full
	// length instead.
	day := p.DayCount()
	if p.Contains(now) {
		day = now.Day()
	}
	if day > 0 {
		resp.MonthIndex = math.Round(float64(createdMonth)/float64(day)*10) / 10
	}

	return resp, nil
}

func (s *ReservationServiceImpl) EmployeeDaily(ctx context.Context, employeeID, month string) ([]reservation.DailyCount, error) {
	p := period.ParseMonth(month)

	events, err := s.noona.Events(ctx, noona.EventFilter{From: p.Start, To: p.End, EmployeeID: employeeID})
	if err != nil {
		return nil, err
	}

	cancelled, noshow, others := splitByStatus(events)
	paid := groupByColor(others)[reservation.ColorPaid]
	return countByDate(p, paid, cancelled, noshow), nil
}

func buildMetrics(events []noona.Event, p period.Period, now time.Time) *reservation.MetricsResponse {
	cancelled, noshow, others := splitByStatus(events)
	byColor := groupByColor(others)
	paid := byColor[reservation.ColorPaid]

	pastPaid := 0
	for _, event := range paid {
		if !event.EndsAt.After(now) {
			pastPaid++
		}
	}

	return &reservation.MetricsResponse{
		Month:     p.Start.Format("2006-01"),
		All:       len(events),
		Cancelled: len(cancelled),
		NoShow:    len(noshow),
		Paid:      len(paid),
		PastPaid:  pastPaid,
		Fixed:     len(byColor[reservation.ColorFixed]),
		Daily:     countByDate(p, paid, cancelled, noshow),
	}
}

// splitByStatus partitions events by exact status match; anything that
// is neither cancelled nor a no-show counts as a regular reservation.
func splitByStatus(events []noona.Event) (cancelled, noshow, others []noona.Event) {
	for _, event := range events {
		switch event.Status {
		case reservation.StatusCancelled:
			cancelled = append(cancelled, event)
		case reservation.StatusNoShow:
			noshow = append(noshow, event)
		default:
			others = append(others, event)
		}
	}
	return cancelled, noshow, others
}

// groupByColor buckets events by their first event-type color tag, the
// proxy the salon uses for service categories.
func groupByColor(events []noona.Event) map[string][]noona.Event {
	groups := make(map[string][]noona.Event)
	for _, event := range events {
		color := reservation.ColorUnknown
		if len(event.EventTypes) > 0 && event.EventTypes[0].Color != "" {
			color = event.EventTypes[0].Color
		}
		groups[color] = append(groups[color], event)
	}
	return groups
}

// countByDate produces one row per calendar day of the period with
// zero-filled counts, keyed on each event's end timestamp.
func countByDate(p period.Period, paid, cancelled, noshow []noona.Event) []reservation.DailyCount {
	index := make(map[string]*reservation.DailyCount)
	days := p.Days()
	series := make([]reservation.DailyCount, len(days))
	for i, day := range days {
		series[i] = reservation.DailyCount{Date: day.Format("2006-01-02")}
		index[series[i].Date] = &series[i]
	}

	count := func(events []noona.Event, bump func(*reservation.DailyCount)) {
		for _, event := range events {
			if row, ok := index[event.EndsAt.UTC().Format("2006-01-02")]; ok {
				bump(row)
			}
		}
	}
	count(paid, func(row *reservation.DailyCount) { row.Paid++ })
	count(cancelled, func(row *reservation.DailyCount) { row.Cancelled++ })
	count(noshow, func(row *reservation.DailyCount) { row.NoShow++ })

	return series
}
