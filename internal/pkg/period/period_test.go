package period

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonth(t *testing.T) {
	p := Month(2025, time.February)

	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), p.Start)
	assert.Equal(t, time.Date(2025, 2, 28, 23, 59, 59, 999000000, time.UTC), p.End)
}

func TestParseMonth(t *testing.T) {
	p := ParseMonth("2025-06")
	assert.Equal(t, time.June, p.Start.Month())
	assert.Equal(t, 2025, p.Start.Year())

	// Garbage falls back to the current month instead of erroring.
	now := time.Now().UTC()
	p = ParseMonth("not-a-month")
	assert.Equal(t, now.Month(), p.Start.Month())
	assert.Equal(t, now.Year(), p.Start.Year())
}

func TestWeekOf(t *testing.T) {
	tests := []struct {
		name      string
		date      time.Time
		wantStart time.Time
	}{
		{
			name:      "wednesday maps to preceding monday",
			date:      time.Date(2025, 6, 18, 15, 30, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "monday is its own week start",
			date:      time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
		{
			name:      "sunday belongs to the week that started six days earlier",
			date:      time.Date(2025, 6, 22, 10, 0, 0, 0, time.UTC),
			wantStart: time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := WeekOf(tt.date)
			assert.Equal(t, tt.wantStart, p.Start)
			assert.Equal(t, time.Monday, p.Start.Weekday())
			assert.Equal(t, time.Sunday, p.End.Weekday())
			assert.Equal(t, 7, p.DayCount())
		})
	}
}

func TestDays(t *testing.T) {
	p := Range(
		time.Date(2025, 3, 30, 12, 0, 0, 0, time.UTC),
		time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC),
	)

	days := p.Days()
	assert.Len(t, days, 3)
	assert.Equal(t, time.Date(2025, 3, 30, 0, 0, 0, 0, time.UTC), days[0])
	assert.Equal(t, time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC), days[2])
}

func TestContains(t *testing.T) {
	p := Month(2025, time.May)

	assert.True(t, p.Contains(time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, p.Contains(time.Date(2025, 5, 31, 23, 59, 59, 0, time.UTC)))
	assert.False(t, p.Contains(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)))
}
