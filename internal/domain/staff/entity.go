package staff

import "time"

// Track is the primary aggregation track a staff member belongs to.
// Masters are paid from service revenue, admins from worked hours.
type Track string

const (
	TrackMaster Track = "master"
	TrackAdmin  Track = "admin"
)

// Category names a transactional record category that can be folded
// into an employee summary.
type Category string

const (
	CategoryPenalty   Category = "penalty"
	CategoryBonus     Category = "bonus"
	CategoryDeduction Category = "deduction"
	CategoryAdvance   Category = "advance"
	CategorySalary    Category = "salary"
	CategoryTax       Category = "tax"
)

// ValidCategory reports whether s names a known record category.
func ValidCategory(s string) bool {
	switch Category(s) {
	case CategoryPenalty, CategoryBonus, CategoryDeduction, CategoryAdvance, CategorySalary, CategoryTax:
		return true
	}
	return false
}

// Member is a staff directory entry. The directory is the stable-ID
// home of configuration that the record store keys by display name:
// excess thresholds and role-blend exclusion rules for people who work
// both tracks (typically an administrator who also takes clients as a
// master).
type Member struct {
	ID   string
	Name string

	// NoonaEmployeeID links the member to the booking platform for
	// per-master reservation charts. Nil when not bookable.
	NoonaEmployeeID *string

	// ExcessThreshold is the net-result amount above which the excess
	// bonus signal is reported.
	ExcessThreshold float64

	PrimaryTrack Track

	// ExcludedCategories lists record categories that must not be
	// folded into this member's row on the non-primary track, so the
	// same money is not counted on both tracks.
	ExcludedCategories []Category

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Excludes reports whether cat must be skipped for this member on the
// given track.
func (m Member) Excludes(track Track, cat Category) bool {
	if m.PrimaryTrack == track {
		return false
	}
	for _, c := range m.ExcludedCategories {
		if c == cat {
			return true
		}
	}
	return false
}

// Directory indexes members by display name, the join key the record
// store still uses.
type Directory struct {
	byName map[string]Member
}

func NewDirectory(members []Member) *Directory {
	byName := make(map[string]Member, len(members))
	for _, m := range members {
		byName[m.Name] = m
	}
	return &Directory{byName: byName}
}

// ByName resolves a record-store display name to a directory entry.
func (d *Directory) ByName(name string) (Member, bool) {
	m, ok := d.byName[name]
	return m, ok
}
