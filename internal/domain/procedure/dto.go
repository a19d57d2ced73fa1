package procedure

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// UntitledOffer labels service sales whose catalog entry is missing.
const UntitledOffer = "Bez názvu"

// Sale is one provided service with its catalog title populated.
type Sale struct {
	OfferTitle string
	StaffShare float64
	SalonShare float64
	Tip        float64
}

// Revenue is the full client price of the sale.
func (s Sale) Revenue() float64 {
	return s.StaffShare + s.SalonShare + s.Tip
}

// Stats aggregates one procedure over a period.
type Stats struct {
	Name         string  `json:"name"`
	Count        int     `json:"count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Result is the procedures screen for a month.
type Result struct {
	Month        string  `json:"month"`
	Procedures   []Stats `json:"procedures"`
	TotalCount   int     `json:"total_count"`
	TotalRevenue float64 `json:"total_revenue"`
}

// Source fetches service sales with their catalog relation populated.
type Source interface {
	SalesWithOffers(ctx context.Context, p period.Period) ([]Sale, error)
}

type ProcedureService interface {
	Stats(ctx context.Context, month string) (*Result, error)
}
