package salary

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// RecordSource fetches raw transactional records for a period from the
// record store. One call per category; callers fan the calls out
// concurrently and treat the period load as atomic.
type RecordSource interface {
	ServicesProvided(ctx context.Context, p period.Period) ([]ServiceRecord, error)
	WorkTimes(ctx context.Context, p period.Period) ([]WorkTimeRecord, error)
	Category(ctx context.Context, cat staff.Category, p period.Period) ([]SumRecord, error)
	StaffOffers(ctx context.Context, name string, p period.Period) (*StaffOffers, error)
}
