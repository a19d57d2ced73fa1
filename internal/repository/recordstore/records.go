// Package recordstore implements the period record sources on top of
// the record store REST API. All numeric fields pass through
// strapi.Number so string-typed payloads normalize at this boundary
// and never leak into the aggregation logic.
package recordstore

import (
	"context"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/simon1400/barbitch-admin/internal/pkg/strapi"
)

// Page sizes are generous fixed limits, not cursors. A period
// exceeding them is silently undercounted; accepted limitation.
const (
	workTimesPageSize = 70
	genericPageSize   = 500
	servicesPageSize  = 2000
	allCostsPageSize  = 5000
)

type Repository struct {
	client *strapi.Client
}

func New(client *strapi.Client) *Repository {
	return &Repository{client: client}
}

// categoryPaths maps record categories to their record store
// collections.
var categoryPaths = map[staff.Category]string{
	staff.CategoryPenalty:   "/api/penalties",
	staff.CategoryBonus:     "/api/add-moneys",
	staff.CategoryDeduction: "/api/payrolls",
	staff.CategoryAdvance:   "/api/avanses",
	staff.CategorySalary:    "/api/salaries",
	staff.CategoryTax:       "/api/taxes",
}

type rawRate struct {
	Rate       strapi.Number `json:"rate"`
	HourlyRate strapi.Number `json:"hourlyRate"`
	From       *string       `json:"from"`
	To         *string       `json:"to"`
	TypeWork   *string       `json:"typeWork"`
}

type rawPersonal struct {
	Name            string        `json:"name"`
	ExcessThreshold strapi.Number `json:"excessThreshold"`
	NoonaEmployeeID string        `json:"noonaEmployeeId"`
	Rates           []rawRate     `json:"rates"`
}

type rawServiceProvided struct {
	Date          string        `json:"date"`
	StaffSalaries strapi.Number `json:"staffSalaries"`
	SalonSalaries strapi.Number `json:"salonSalaries"`
	Tip           strapi.Number `json:"tip"`
	Cash          bool          `json:"cash"`
	Personal      *rawPersonal  `json:"personal"`
}

type rawWorkTime struct {
	Start    string        `json:"start"`
	Sum      strapi.Number `json:"sum"`
	Personal *rawPersonal  `json:"personal"`
}

type rawSumRecord struct {
	Date     string        `json:"date"`
	Sum      strapi.Number `json:"sum"`
	Personal *rawPersonal  `json:"personal"`
}

// ServicesProvided implements salary.RecordSource.
func (r *Repository) ServicesProvided(ctx context.Context, p period.Period) ([]salary.ServiceRecord, error) {
	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("staffSalaries", "salonSalaries", "tip", "date", "cash").
		Paginate(1, servicesPageSize)
	query.Populate("personal").Fields("name", "excessThreshold")

	var raw []rawServiceProvided
	if err := r.client.Get(ctx, "/api/services-provided", query, &raw); err != nil {
		return nil, err
	}

	records := make([]salary.ServiceRecord, 0, len(raw))
	for _, item := range raw {
		rec := salary.ServiceRecord{
			Date:       parseDate(item.Date),
			StaffShare: item.StaffSalaries.Float(),
			SalonShare: item.SalonSalaries.Float(),
			Tip:        item.Tip.Float(),
			Cash:       item.Cash,
		}
		if item.Personal != nil {
			rec.StaffName = item.Personal.Name
			rec.ExcessThreshold = item.Personal.ExcessThreshold.Float()
		}
		records = append(records, rec)
	}
	return records, nil
}

// WorkTimes implements salary.RecordSource.
func (r *Repository) WorkTimes(ctx context.Context, p period.Period) ([]salary.WorkTimeRecord, error) {
	query := strapi.NewQuery().
		WhereBetween("start", p.Start, p.End).
		Fields("start", "sum").
		Paginate(1, workTimesPageSize)
	query.Populate("personal").Fields("name", "excessThreshold").
		Populate("rates").Fields("rate", "hourlyRate", "from", "to", "typeWork")

	var raw []rawWorkTime
	if err := r.client.Get(ctx, "/api/work-times", query, &raw); err != nil {
		return nil, err
	}

	records := make([]salary.WorkTimeRecord, 0, len(raw))
	for _, item := range raw {
		rec := salary.WorkTimeRecord{
			Start: parseDate(item.Start),
			Hours: item.Sum.Float(),
		}
		if item.Personal != nil {
			rec.StaffName = item.Personal.Name
			rec.ExcessThreshold = item.Personal.ExcessThreshold.Float()
			rec.Rates = mapRates(item.Personal.Rates)
		}
		records = append(records, rec)
	}
	return records, nil
}

// Category implements salary.RecordSource.
func (r *Repository) Category(ctx context.Context, cat staff.Category, p period.Period) ([]salary.SumRecord, error) {
	path, ok := categoryPaths[cat]
	if !ok {
		return nil, nil
	}

	query := strapi.NewQuery().
		WhereBetween("date", p.Start, p.End).
		Fields("sum").
		Paginate(1, genericPageSize)
	query.Populate("personal").Fields("name")

	var raw []rawSumRecord
	if err := r.client.Get(ctx, path, query, &raw); err != nil {
		return nil, err
	}

	records := make([]salary.SumRecord, 0, len(raw))
	for _, item := range raw {
		rec := salary.SumRecord{
			Date: parseDate(item.Date),
			Sum:  item.Sum.Float(),
		}
		if item.Personal != nil {
			rec.StaffName = item.Personal.Name
		}
		records = append(records, rec)
	}
	return records, nil
}

type rawOfferDone struct {
	Date          string        `json:"date"`
	ClientName    string        `json:"clientName"`
	StaffSalaries strapi.Number `json:"staffSalaries"`
	Tip           strapi.Number `json:"tip"`
}

type rawPersonalWithOffers struct {
	Name            string         `json:"name"`
	NoonaEmployeeID string         `json:"noonaEmployeeId"`
	OffersDone      []rawOfferDone `json:"offersDone"`
}

// StaffOffers implements salary.RecordSource.
func (r *Repository) StaffOffers(ctx context.Context, name string, p period.Period) (*salary.StaffOffers, error) {
	query := strapi.NewQuery().
		WhereEq("name", name).
		Fields("name", "noonaEmployeeId")
	query.Populate("offersDone").
		Fields("date", "clientName", "staffSalaries", "tip").
		Sort("date:desc").
		WhereBetween("date", p.Start, p.End)

	var raw []rawPersonalWithOffers
	if err := r.client.Get(ctx, "/api/personals", query, &raw); err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	result := &salary.StaffOffers{
		Name:            raw[0].Name,
		NoonaEmployeeID: raw[0].NoonaEmployeeID,
	}
	for _, offer := range raw[0].OffersDone {
		result.Offers = append(result.Offers, salary.OfferDone{
			Date:       parseDate(offer.Date),
			ClientName: offer.ClientName,
			StaffShare: offer.StaffSalaries.Float(),
			Tip:        offer.Tip.Float(),
		})
	}
	return result, nil
}

func mapRates(raw []rawRate) []salary.CompensationRate {
	rates := make([]salary.CompensationRate, 0, len(raw))
	for _, item := range raw {
		rate := salary.CompensationRate{
			Mode: salary.ModeHourly,
		}
		if item.TypeWork != nil && *item.TypeWork == "hpp" {
			rate.Mode = salary.ModeFixedMonthly
		}
		if item.Rate.Valid {
			v := item.Rate.Value
			rate.Amount = &v
		}
		if item.HourlyRate.Valid {
			v := item.HourlyRate.Value
			rate.HourlyAmount = &v
		}
		if item.From != nil {
			if t, ok := parseDateText(*item.From); ok {
				rate.From = &t
			}
		}
		if item.To != nil {
			if t, ok := parseDateText(*item.To); ok {
				rate.To = &t
			}
		}
		rates = append(rates, rate)
	}
	return rates
}

// parseDate accepts the two timestamp shapes the record store emits.
// Unparseable input yields the zero time, which aggregation treats as
// "no date".
func parseDate(s string) time.Time {
	t, ok := parseDateText(s)
	if !ok {
		return time.Time{}
	}
	return t
}

func parseDateText(s string) (time.Time, bool) {
	for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
