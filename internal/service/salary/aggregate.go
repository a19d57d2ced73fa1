package salary

import (
	"math"
	"sort"

	"github.com/simon1400/barbitch-admin/internal/domain/salary"
	"github.com/simon1400/barbitch-admin/internal/domain/staff"
	"github.com/simon1400/barbitch-admin/internal/pkg/period"
)

// categoryOrder fixes the fold order of the transactional categories so
// aggregation output is deterministic.
var categoryOrder = []staff.Category{
	staff.CategoryPenalty,
	staff.CategoryBonus,
	staff.CategoryDeduction,
	staff.CategoryAdvance,
	staff.CategorySalary,
	staff.CategoryTax,
}

// trackRecords is one period load for one aggregation track: the
// primary record list plus every transactional category.
type trackRecords struct {
	services   []salary.ServiceRecord
	workTimes  []salary.WorkTimeRecord
	categories map[staff.Category][]salary.SumRecord
}

// aggregateMasters folds a period of provided services into per-master
// rows plus the company-wide figures that ride along in the same pass.
// Records without a resolvable staff name are dropped, not errors.
func aggregateMasters(recs trackRecords, dir *staff.Directory, p period.Period) *salary.MastersResult {
	result := &salary.MastersResult{
		Summary:     []salary.MasterSummary{},
		DaysRevenue: []salary.DayRevenue{},
	}

	rows := make(map[string]*salary.MasterSummary)
	byDay := make(map[string]float64)
	var totalStaffRevenue float64

	for _, rec := range recs.services {
		if rec.StaffName == "" {
			continue
		}

		flow := rec.StaffShare + rec.SalonShare + rec.Tip
		result.GlobalFlow += flow
		totalStaffRevenue += rec.StaffShare

		if rec.Cash {
			result.SalonShareCash += rec.SalonShare
		} else {
			// Card income carries VAT; strip the salon's share of it.
			result.SalonShareCard += rec.SalonShare - flow*0.21
		}

		if !rec.Date.IsZero() {
			byDay[rec.Date.UTC().Format("2006-01-02")] += flow
		}

		row, ok := rows[rec.StaffName]
		if !ok {
			row = &salary.MasterSummary{
				Name:            rec.StaffName,
				ExcessThreshold: rec.ExcessThreshold,
			}
			rows[rec.StaffName] = row
		}
		row.Revenue += rec.StaffShare
		row.Tips += rec.Tip
		row.Clients++
	}

	foldCategories(recs.categories, staff.TrackMaster, dir, func(name string, cat staff.Category, sum float64) {
		row, ok := rows[name]
		if !ok {
			return
		}
		addMasterCategory(row, cat, sum)
	})

	globalPayouts := false
	for _, row := range rows {
		if row.Advance != 0 || row.Salary != 0 {
			globalPayouts = true
			break
		}
	}

	for _, row := range rows {
		member, known := dir.ByName(row.Name)
		if known {
			row.StaffID = member.ID
			row.ExcessThreshold = member.ExcessThreshold
		}

		// A dual-role admin surfacing in the master table keeps only
		// revenue and tips here; the rest of their money lives on the
		// admin track.
		if known && member.PrimaryTrack == staff.TrackAdmin {
			row.NetResult = row.Revenue + row.Tips
			row.Remaining = row.NetResult - row.Advance - row.Salary
		} else {
			row.NetResult = row.Revenue + row.Tips + row.Bonus - row.Penalty - row.Deduction
			row.Remaining = row.NetResult - row.Advance - row.Salary
			row.Excess = computeExcess(row.NetResult, row.Advance, row.Salary, row.ExcessThreshold, globalPayouts)
		}

		result.SumMasters += row.NetResult
		result.ClientsServed += row.Clients
		result.TotalExcess += row.Excess
		result.Summary = append(result.Summary, *row)
	}

	sort.Slice(result.Summary, func(i, j int) bool {
		return result.Summary[i].Revenue > result.Summary[j].Revenue
	})

	if result.ClientsServed > 0 {
		result.AverageCheck = math.Round(result.GlobalFlow / float64(result.ClientsServed))
		result.AverageMasterSalary = math.Round(totalStaffRevenue / float64(result.ClientsServed))
	}

	result.DaysRevenue = denseDays(byDay, p)
	return result
}

// aggregateAdmins folds a period of worked hours into per-admin rows.
// The pay rate resolves once per admin from the rates riding on their
// first worked-hours record.
func aggregateAdmins(recs trackRecords, dir *staff.Directory, p period.Period) *salary.AdminsResult {
	result := &salary.AdminsResult{Summary: []salary.AdminSummary{}}

	rows := make(map[string]*salary.AdminSummary)
	for _, rec := range recs.workTimes {
		if rec.StaffName == "" {
			continue
		}

		row, ok := rows[rec.StaffName]
		if !ok {
			info := resolveRate(rec.Rates, p)
			row = &salary.AdminSummary{
				Name:             rec.StaffName,
				HourlyRate:       info.HourlyRate,
				FixedMonthlyRate: info.FixedMonthlyRate,
				IsFixedMonthly:   info.IsFixedMonthly,
				ExcessThreshold:  rec.ExcessThreshold,
			}
			rows[rec.StaffName] = row
		}
		row.Hours += rec.Hours
	}

	foldCategories(recs.categories, staff.TrackAdmin, dir, func(name string, cat staff.Category, sum float64) {
		row, ok := rows[name]
		if !ok {
			return
		}
		addAdminCategory(row, cat, sum)
	})

	globalPayouts := false
	for _, row := range rows {
		if row.Advance != 0 || row.Salary != 0 {
			globalPayouts = true
			break
		}
	}

	for _, row := range rows {
		if member, known := dir.ByName(row.Name); known {
			row.StaffID = member.ID
			row.ExcessThreshold = member.ExcessThreshold
		}

		base := row.Hours * row.HourlyRate
		if row.IsFixedMonthly && row.FixedMonthlyRate != nil {
			base = *row.FixedMonthlyRate
		}
		row.NetResult = base + row.Bonus - row.Penalty - row.Deduction
		row.Remaining = row.NetResult - row.Advance - row.Salary
		row.Excess = computeExcess(row.NetResult, row.Advance, row.Salary, row.ExcessThreshold, globalPayouts)

		result.SumAdmins += row.NetResult
		result.TotalExcess += row.Excess
		result.Summary = append(result.Summary, *row)
	}

	sort.Slice(result.Summary, func(i, j int) bool {
		return result.Summary[i].Hours > result.Summary[j].Hours
	})

	return result
}

// foldCategories feeds each category's records to apply, honoring
// per-member exclusion rules for the given track. Records for names
// without a primary-record row contribute nothing; the apply callbacks
// enforce that by looking rows up first.
func foldCategories(categories map[staff.Category][]salary.SumRecord, track staff.Track, dir *staff.Directory, apply func(name string, cat staff.Category, sum float64)) {
	for _, cat := range categoryOrder {
		for _, rec := range categories[cat] {
			if rec.StaffName == "" {
				continue
			}
			if member, ok := dir.ByName(rec.StaffName); ok && member.Excludes(track, cat) {
				continue
			}
			apply(rec.StaffName, cat, rec.Sum)
		}
	}
}

func addMasterCategory(row *salary.MasterSummary, cat staff.Category, sum float64) {
	switch cat {
	case staff.CategoryPenalty:
		row.Penalty += sum
	case staff.CategoryBonus:
		row.Bonus += sum
	case staff.CategoryDeduction:
		row.Deduction += sum
	case staff.CategoryAdvance:
		row.Advance += sum
	case staff.CategorySalary:
		row.Salary += sum
	case staff.CategoryTax:
		row.Tax += sum
	}
}

func addAdminCategory(row *salary.AdminSummary, cat staff.Category, sum float64) {
	switch cat {
	case staff.CategoryPenalty:
		row.Penalty += sum
	case staff.CategoryBonus:
		row.Bonus += sum
	case staff.CategoryDeduction:
		row.Deduction += sum
	case staff.CategoryAdvance:
		row.Advance += sum
	case staff.CategorySalary:
		row.Salary += sum
	case staff.CategoryTax:
		row.Tax += sum
	}
}

// denseDays expands a sparse per-day sum map into one row per calendar
// day of the period, zero-filled.
func denseDays(byDay map[string]float64, p period.Period) []salary.DayRevenue {
	days := p.Days()
	series := make([]salary.DayRevenue, 0, len(days))
	for _, day := range days {
		key := day.Format("2006-01-02")
		series = append(series, salary.DayRevenue{Date: key, Sum: byDay[key]})
	}
	return series
}
