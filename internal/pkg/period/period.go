// Package period provides the aggregation windows used across the
// dashboard: calendar months and Monday-Sunday weeks, both with
// inclusive UTC bounds.
package period

import "time"

// Period is an inclusive [Start, End] date range.
type Period struct {
	Start time.Time
	End   time.Time
}

// Month returns the full calendar month window.
func Month(year int, month time.Month) Period {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Millisecond)
	return Period{Start: start, End: end}
}

// ParseMonth parses "YYYY-MM", defaulting to the current month.
func ParseMonth(month string) Period {
	now := time.Now().UTC()
	if month == "" {
		return Month(now.Year(), now.Month())
	}
	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return Month(now.Year(), now.Month())
	}
	return Month(parsed.Year(), parsed.Month())
}

// WeekOf returns the Monday-Sunday week containing date.
func WeekOf(date time.Time) Period {
	date = date.UTC()

	// time.Weekday puts Sunday at 0, shift so the week starts Monday.
	diff := int(time.Monday - date.Weekday())
	if date.Weekday() == time.Sunday {
		diff = -6
	}

	start := time.Date(date.Year(), date.Month(), date.Day()+diff, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 7).Add(-time.Millisecond)
	return Period{Start: start, End: end}
}

// Range builds a period from explicit day bounds, expanding them to
// whole days.
func Range(start, end time.Time) Period {
	start = start.UTC()
	end = end.UTC()
	return Period{
		Start: time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		End:   time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999000000, time.UTC),
	}
}

// Days lists every calendar day in the period, first to last.
func (p Period) Days() []time.Time {
	var days []time.Time
	day := time.Date(p.Start.Year(), p.Start.Month(), p.Start.Day(), 0, 0, 0, 0, time.UTC)
	for !day.After(p.End) {
		days = append(days, day)
		day = day.AddDate(0, 0, 1)
	}
	return days
}

// DayCount is the number of calendar days covered by the period.
func (p Period) DayCount() int {
	return len(p.Days())
}

// Contains reports whether t falls inside the period.
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}
