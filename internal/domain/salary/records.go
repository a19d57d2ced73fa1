package salary

import "time"

// DefaultHourlyRate is the fallback hourly rate, in CZK, applied when
// a staff member has no usable compensation-rate record for the
// period.
const DefaultHourlyRate = 115

// RateMode selects how a compensation-rate record is interpreted.
type RateMode string

const (
	// ModeHourly pays hours worked times the record amount.
	ModeHourly RateMode = "hourly"
	// ModeFixedMonthly pays the record amount as a flat monthly
	// salary; the secondary hourly amount covers derived
	// calculations.
	ModeFixedMonthly RateMode = "fixed-monthly"
)

// CompensationRate is one time-bounded pay agreement. Amounts are nil
// when the record store delivered a missing or non-numeric value, the
// resolver substitutes the documented default.
type CompensationRate struct {
	Amount       *float64
	HourlyAmount *float64
	From         *time.Time // nil means valid since forever
	To           *time.Time // nil means open-ended
	Mode         RateMode
}

// RateInfo is the resolved pay configuration for one employee and
// period.
type RateInfo struct {
	HourlyRate       float64
	FixedMonthlyRate *float64
	IsFixedMonthly   bool
}

// ServiceRecord is one provided service from the record store, the
// primary record of the master track.
type ServiceRecord struct {
	Date            time.Time
	StaffName       string
	StaffShare      float64
	SalonShare      float64
	Tip             float64
	Cash            bool
	ExcessThreshold float64
}

// WorkTimeRecord is one worked-hours entry, the primary record of the
// admin track. Rates ride along via the populated staff relation.
type WorkTimeRecord struct {
	Start           time.Time
	StaffName       string
	Hours           float64
	Rates           []CompensationRate
	ExcessThreshold float64
}

// SumRecord is the generic shape shared by penalties, bonuses,
// deductions, advances, salary payments and taxes.
type SumRecord struct {
	Date      time.Time
	StaffName string
	Sum       float64
}

// OfferDone is one completed service in a master's personal cabinet.
type OfferDone struct {
	Date       time.Time `json:"date"`
	ClientName string    `json:"client_name"`
	StaffShare float64   `json:"staff_share"`
	Tip        float64   `json:"tip"`
}

// StaffOffers is the record store's per-person view: the person plus
// their completed services for a period.
type StaffOffers struct {
	Name            string
	NoonaEmployeeID string
	Offers          []OfferDone
}
