package salary

import (
	"context"
	"sync"

	"github.com/simon1400/barbitch-admin/internal/domain/reservation"
	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"golang.org/x/sync/errgroup"
)

type SalaryServiceImpl struct {
	source       salary.RecordSource
	staffRepo    staff.StaffRepository
	reservations reservation.ReservationService
}

func NewSalaryService(
	source salary.RecordSource,
	staffRepo staff.StaffRepository,
	reservations reservation.ReservationService,
) salary.SalaryService {
	return &SalaryServiceImpl{
		source:       source,
		staffRepo:    staffRepo,
		reservations: reservations,
	}
}

func (s *SalaryServiceImpl) directory(ctx context.Context) (*staff.Directory, error) {
	members, err := s.staffRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return staff.NewDirectory(members), nil
}

// fetchTrack loads one track's period bundle: the primary record list
// plus all six transactional categories, fetched concurrently. Any
// single fetch failure fails the whole bundle; a period load is atomic.
func (s *SalaryServiceImpl) fetchTrack(ctx context.Context, track staff.Track, p period.Period) (trackRecords, error) {
	recs := trackRecords{
		categories: make(map[staff.Category][]salary.SumRecord, len(categoryOrder)),
	}
	var mu sync.Mutex

	g, gCtx := errgroup.WithContext(ctx)

	switch track {
	case staff.TrackMaster:
		g.Go(func() error {
			services, err := s.source.ServicesProvided(gCtx, p)
			if err != nil {
				return err
			}
			recs.services = services
			return nil
		})
	case staff.TrackAdmin:
		g.Go(func() error {
			workTimes, err := s.source.WorkTimes(gCtx, p)
			if err != nil {
				return err
			}
			recs.workTimes = workTimes
			return nil
		})
	}

	for _, cat := range categoryOrder {
		cat := cat
		g.Go(func() error {
			records, err := s.source.Category(gCtx, cat, p)
			if err != nil {
				return err
			}
			mu.Lock()
			recs.categories[cat] = records
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return trackRecords{}, err
	}
	return recs, nil
}

func (s *SalaryServiceImpl) Masters(ctx context.Context, p period.Period) (*salary.MastersResult, error) {
	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.fetchTrack(ctx, staff.TrackMaster, p)
	if err != nil {
		return nil, err
	}
	return aggregateMasters(recs, dir, p), nil
}

func (s *SalaryServiceImpl) Admins(ctx context.Context, p period.Period) (*salary.AdminsResult, error) {
	dir, err := s.directory(ctx)
	if err != nil {
		return nil, err
	}

	recs, err := s.fetchTrack(ctx, staff.TrackAdmin, p)
	if err != nil {
		return nil, err
	}
	return aggregateAdmins(recs, dir, p), nil
}

func (s *SalaryServiceImpl) Salaries(ctx context.Context, month string) (*salary.SalariesResponse, error) {
	p := period.ParseMonth(month)

	var (
		masters *salary.MastersResult
		admins  *salary.AdminsResult
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		masters, err = s.Masters(gCtx, p)
		return err
	})
	g.Go(func() error {
		var err error
		admins, err = s.Admins(gCtx, p)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &salary.SalariesResponse{
		Month:   p.Start.Format("2006-01"),
		Masters: *masters,
		Admins:  *admins,
	}, nil
}

func (s *SalaryServiceImpl) MasterCabinet(ctx context.Context, staffID, month string) (*salary.CabinetResponse, error) {
	member, err := s.staffRepo.GetByID(ctx, staffID)
	if err != nil {
		return nil, err
	}

	p := period.ParseMonth(month)

	var (
		offers    *salary.StaffOffers
		penalty   float64
		bonus     float64
		deduction float64
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		offers, err = s.source.StaffOffers(gCtx, member.Name, p)
		return err
	})
	for _, cat := range []staff.Category{staff.CategoryPenalty, staff.CategoryBonus, staff.CategoryDeduction} {
		cat := cat
		g.Go(func() error {
			records, err := s.source.Category(gCtx, cat, p)
			if err != nil {
				return err
			}
			var sum float64
			for _, rec := range records {
				if rec.StaffName == member.Name {
					sum += rec.Sum
				}
			}
			switch cat {
			case staff.CategoryPenalty:
				penalty = sum
			case staff.CategoryBonus:
				bonus = sum
			case staff.CategoryDeduction:
				deduction = sum
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	resp := &salary.CabinetResponse{
		Name:      member.Name,
		Month:     p.Start.Format("2006-01"),
		Offers:    []salary.OfferDone{},
		Bonus:     bonus,
		Penalty:   penalty,
		Deduction: deduction,
		Chart:     []reservation.DailyCount{},
	}

	if offers != nil {
		resp.Offers = offers.Offers
		for _, offer := range offers.Offers {
			resp.Revenue += offer.StaffShare
			resp.Tips += offer.Tip
		}
	}
	resp.NetResult = resp.Revenue + resp.Tips + bonus - deduction - penalty

	// The reservation chart is decoration; a booking-platform failure
	// must not take the cabinet down with it.
	if member.NoonaEmployeeID != nil {
		if chart, err := s.reservations.EmployeeDaily(ctx, *member.NoonaEmployeeID, month); err == nil {
			resp.Chart = chart
		}
	}

	return resp, nil
}
