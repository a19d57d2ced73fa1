package salary

import (
	"testing"
	"time"

	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func timePtr(t time.Time) *time.Time { return &t }

func march2025() period.Period {
	return period.Month(2025, time.March)
}

func TestResolveRateEmpty(t *testing.T) {
	info := resolveRate(nil, march2025())

	assert.Equal(t, float64(salary.DefaultHourlyRate), info.HourlyRate)
	assert.Nil(t, info.FixedMonthlyRate)
	assert.False(t, info.IsFixedMonthly)
}

func TestResolveRateFirstMatchWins(t *testing.T) {
	p := march2025()

	// Both windows cover March; input order decides, not recency.
	rates := []salary.CompensationRate{
		{Amount: floatPtr(200), Mode: salary.ModeHourly},
		{Amount: floatPtr(300), From: timePtr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)), Mode: salary.ModeHourly},
	}

	info := resolveRate(rates, p)
	assert.Equal(t, 200.0, info.HourlyRate)
}

func TestResolveRateSkipsNonOverlapping(t *testing.T) {
	p := march2025()

	rates := []salary.CompensationRate{
		{
			Amount: floatPtr(500),
			To:     timePtr(time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)),
			Mode:   salary.ModeHourly,
		},
		{
			Amount: floatPtr(180),
			From:   timePtr(time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)),
			Mode:   salary.ModeHourly,
		},
	}

	info := resolveRate(rates, p)
	assert.Equal(t, 180.0, info.HourlyRate)
}

func TestResolveRateFixedMonthly(t *testing.T) {
	rates := []salary.CompensationRate{
		{Amount: floatPtr(28000), HourlyAmount: floatPtr(150), Mode: salary.ModeFixedMonthly},
	}

	info := resolveRate(rates, march2025())
	assert.True(t, info.IsFixedMonthly)
	require.NotNil(t, info.FixedMonthlyRate)
	assert.Equal(t, 28000.0, *info.FixedMonthlyRate)
	assert.Equal(t, 150.0, info.HourlyRate)
}

func TestResolveRateFixedMonthlyMissingHourly(t *testing.T) {
	// Malformed secondary hourly amount falls back to the default
	// while keeping the fixed monthly figure.
	rates := []salary.CompensationRate{
		{Amount: floatPtr(28000), Mode: salary.ModeFixedMonthly},
	}

	info := resolveRate(rates, march2025())
	assert.True(t, info.IsFixedMonthly)
	require.NotNil(t, info.FixedMonthlyRate)
	assert.Equal(t, 28000.0, *info.FixedMonthlyRate)
	assert.Equal(t, float64(salary.DefaultHourlyRate), info.HourlyRate)
}

func TestComputeExcess(t *testing.T) {
	assert.Equal(t, 1000.0, computeExcess(5000, 0, 0, 4000, false))
	assert.Equal(t, 0.0, computeExcess(3000, 0, 0, 4000, false))

	// With payouts anywhere in the track, the base shifts to the
	// remaining amount.
	assert.Equal(t, 0.0, computeExcess(5000, 2000, 0, 4000, true))
	assert.Equal(t, 500.0, computeExcess(6500, 2000, 0, 4000, true))
}

func TestAggregateAdminsHourly(t *testing.T) {
	p := march2025()
	recs := trackRecords{
		workTimes: []salary.WorkTimeRecord{
			{
				StaffName: "A",
				Hours:     10,
				Rates:     []salary.CompensationRate{{Amount: floatPtr(200), Mode: salary.ModeHourly}},
			},
		},
		categories: map[staff.Category][]salary.SumRecord{},
	}

	result := aggregateAdmins(recs, staff.NewDirectory(nil), p)

	require.Len(t, result.Summary, 1)
	assert.Equal(t, 2000.0, result.Summary[0].NetResult)
	assert.Equal(t, 2000.0, result.SumAdmins)
}

func TestAggregateAdminsFixedMonthly(t *testing.T) {
	p := march2025()
	recs := trackRecords{
		workTimes: []salary.WorkTimeRecord{
			{
				StaffName: "B",
				Hours:     160,
				Rates: []salary.CompensationRate{
					{Amount: floatPtr(30000), HourlyAmount: floatPtr(150), Mode: salary.ModeFixedMonthly},
				},
			},
		},
		categories: map[staff.Category][]salary.SumRecord{
			staff.CategoryBonus:   {{StaffName: "B", Sum: 1000}},
			staff.CategoryPenalty: {{StaffName: "B", Sum: 500}},
		},
	}

	result := aggregateAdmins(recs, staff.NewDirectory(nil), p)

	require.Len(t, result.Summary, 1)
	row := result.Summary[0]
	assert.True(t, row.IsFixedMonthly)
	assert.Equal(t, 30500.0, row.NetResult) // 30000 + 1000 - 500
	assert.Equal(t, 160.0, row.Hours)
}

func TestAggregateAdminsExclusion(t *testing.T) {
	p := march2025()
	dir := staff.NewDirectory([]staff.Member{
		{
			ID:                 "m1",
			Name:               "Dual Role",
			PrimaryTrack:       staff.TrackMaster,
			ExcludedCategories: []staff.Category{staff.CategoryPenalty, staff.CategoryBonus},
		},
	})

	recs := trackRecords{
		workTimes: []salary.WorkTimeRecord{
			{StaffName: "Dual Role", Hours: 8, Rates: []salary.CompensationRate{{Amount: floatPtr(100), Mode: salary.ModeHourly}}},
		},
		categories: map[staff.Category][]salary.SumRecord{
			staff.CategoryPenalty: {
				{StaffName: "Dual Role", Sum: 300},
				{StaffName: "Dual Role", Sum: 200},
			},
			staff.CategoryDeduction: {{StaffName: "Dual Role", Sum: 100}},
		},
	}

	result := aggregateAdmins(recs, dir, p)

	require.Len(t, result.Summary, 1)
	row := result.Summary[0]
	// Penalties are excluded on the non-primary track no matter how
	// many records exist; deductions still count.
	assert.Equal(t, 0.0, row.Penalty)
	assert.Equal(t, 100.0, row.Deduction)
	assert.Equal(t, 700.0, row.NetResult) // 8*100 - 100
}

func TestAggregateMasters(t *testing.T) {
	p := march2025()
	day1 := time.Date(2025, 3, 3, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2025, 3, 4, 14, 0, 0, 0, time.UTC)

	recs := trackRecords{
		services: []salary.ServiceRecord{
			{Date: day1, StaffName: "Anna", StaffShare: 400, SalonShare: 600, Tip: 100, Cash: true},
			{Date: day2, StaffName: "Anna", StaffShare: 300, SalonShare: 500, Tip: 0, Cash: false},
			{Date: day1, StaffName: "Eva", StaffShare: 200, SalonShare: 300, Tip: 50},
			{Date: day1, StaffName: "", StaffShare: 999, SalonShare: 999}, // dropped
		},
		categories: map[staff.Category][]salary.SumRecord{
			staff.CategoryPenalty: {{StaffName: "Anna", Sum: 100}},
			staff.CategoryBonus:   {{StaffName: "Eva", Sum: 75}},
		},
	}

	result := aggregateMasters(recs, staff.NewDirectory(nil), p)

	require.Len(t, result.Summary, 2)
	// Sorted by revenue descending.
	assert.Equal(t, "Anna", result.Summary[0].Name)
	assert.Equal(t, 700.0, result.Summary[0].Revenue)
	assert.Equal(t, 3, result.ClientsServed)

	// 400+600+100 + 300+500 + 200+300+50 = 2450, nameless row dropped.
	assert.Equal(t, 2450.0, result.GlobalFlow)

	// Anna: 700 + 100 - 100 penalty = 700; Eva: 200 + 50 + 75 = 325.
	assert.Equal(t, 1025.0, result.SumMasters)

	// Cash salon shares sum; card shares lose the VAT component of
	// the whole flow: 500 - 800*0.21 = 332.
	assert.InDelta(t, 600.0, result.SalonShareCash, 0.001)
	assert.InDelta(t, 332.0, result.SalonShareCard, 0.001)

	// Dense daily series over the whole month.
	require.Len(t, result.DaysRevenue, 31)
	assert.Equal(t, "2025-03-01", result.DaysRevenue[0].Date)
	assert.Equal(t, 0.0, result.DaysRevenue[0].Sum)
	assert.Equal(t, 1650.0, result.DaysRevenue[2].Sum) // Mar 3
	assert.Equal(t, 800.0, result.DaysRevenue[3].Sum)  // Mar 4
}

func TestAggregateMastersNoClients(t *testing.T) {
	result := aggregateMasters(trackRecords{categories: map[staff.Category][]salary.SumRecord{}}, staff.NewDirectory(nil), march2025())

	assert.Equal(t, 0, result.ClientsServed)
	assert.Equal(t, 0.0, result.AverageCheck)
	assert.Equal(t, 0.0, result.AverageMasterSalary)
}

func TestAggregateMastersAverages(t *testing.T) {
	p := march2025()
	recs := trackRecords{
		services: []salary.ServiceRecord{
			{Date: p.Start, StaffName: "Anna", StaffShare: 450, SalonShare: 500, Tip: 50},
			{Date: p.Start, StaffName: "Anna", StaffShare: 350, SalonShare: 600, Tip: 0},
			{Date: p.Start, StaffName: "Eva", StaffShare: 200, SalonShare: 400, Tip: 100},
		},
		categories: map[staff.Category][]salary.SumRecord{},
	}

	result := aggregateMasters(recs, staff.NewDirectory(nil), p)

	// globalFlow 2650 over 3 clients, staff revenue 1000 over 3.
	assert.Equal(t, 883.0, result.AverageCheck)
	assert.Equal(t, 333.0, result.AverageMasterSalary)
}

func TestAggregateMastersDualRoleAdmin(t *testing.T) {
	p := march2025()
	dir := staff.NewDirectory([]staff.Member{
		{
			ID:                 "a1",
			Name:               "Chief Admin",
			PrimaryTrack:       staff.TrackAdmin,
			ExcessThreshold:    10000,
			ExcludedCategories: []staff.Category{staff.CategoryPenalty, staff.CategoryBonus, staff.CategoryDeduction, staff.CategoryAdvance, staff.CategorySalary},
		},
	})

	recs := trackRecords{
		services: []salary.ServiceRecord{
			{Date: p.Start, StaffName: "Chief Admin", StaffShare: 5000, SalonShare: 4000, Tip: 200},
		},
		categories: map[staff.Category][]salary.SumRecord{
			staff.CategoryPenalty: {{StaffName: "Chief Admin", Sum: 400}},
		},
	}

	result := aggregateMasters(recs, dir, p)

	require.Len(t, result.Summary, 1)
	row := result.Summary[0]
	assert.Equal(t, "a1", row.StaffID)
	assert.Equal(t, 0.0, row.Penalty)
	// Only revenue and tips count here; excess lives on the admin
	// track for dual-role members.
	assert.Equal(t, 5200.0, row.NetResult)
	assert.Equal(t, 0.0, row.Excess)
	assert.Equal(t, 0.0, result.TotalExcess)
}

func TestAggregateMastersExcessBasis(t *testing.T) {
	p := march2025()
	dir := staff.NewDirectory([]staff.Member{
		{ID: "m1", Name: "Anna", PrimaryTrack: staff.TrackMaster, ExcessThreshold: 4000},
	})

	recs := trackRecords{
		services: []salary.ServiceRecord{
			{Date: p.Start, StaffName: "Anna", StaffShare: 5000, SalonShare: 0, Tip: 0},
		},
		categories: map[staff.Category][]salary.SumRecord{},
	}

	result := aggregateMasters(recs, dir, p)
	require.Len(t, result.Summary, 1)
	assert.Equal(t, 1000.0, result.Summary[0].Excess)

	// With an advance anywhere, the basis shifts to the remainder.
	recs.categories[staff.CategoryAdvance] = []salary.SumRecord{{StaffName: "Anna", Sum: 2000}}
	result = aggregateMasters(recs, dir, p)
	require.Len(t, result.Summary, 1)
	assert.Equal(t, 3000.0, result.Summary[0].Remaining)
	assert.Equal(t, 0.0, result.Summary[0].Excess)
}
