package recordstore

import (
	"context"

	"github.com/simon1400/barbitch-admin/internal/domain/procedure"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
)

type rawOffer struct {
	Title string `json:"title"`
}

type rawSale struct {
	StaffSalaries strapi.Number `json:"staffSalaries"`
	SalonSalaries strapi.Number `json:"salonSalaries"`
	Tip           strapi.Number `json:"tip"`
	Offer         *rawOffer     `json:"offer"`
}

// SalesWithOffers implements procedure.Source.
func (r *Repository) SalesWithOffers(ctx context.Context, p period.Period) ([]procedure.Sale, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("staffSalaries", "salonSalaries", "tip", "date").
		Paginate(1, servicesPageSize)
	query.Populate("offer").Fields("title")

	var raw []rawSale
	if err := r.client.Get(ctx, "/api/services-provided", query, &raw); err != nil {
		return nil, err
	}

	sales := make([]procedure.Sale, 0, len(raw))
	for _, item := range raw {
		sale := procedure.Sale{
			StaffShare: item.StaffSalaries.Float(),
			SalonShare: item.SalonSalaries.Float(),
			Tip:        item.Tip.Float(),
		}
		if item.Offer != nil {
			sale.OfferTitle = item.Offer.Title
		}
		sales = append(sales, sale)
	}
	return sales, nil
}
