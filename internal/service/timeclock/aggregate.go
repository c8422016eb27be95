package timeclock

import (
	"fmt"
	"sort"
	"time"
)

// Location is the fixed display timezone. Days are grouped by the calendar
// date in this zone, not the UTC date, which matters for punches near
// midnight.
var Location = mustLoadLocation("America/Sao_Paulo")

func mustLoadLocation(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Punch is the record shape the aggregator works over.
type Punch struct {
	ID     int
	UserID int
	Type   PunchType
	Time   time.Time
}

// DayGroup is one calendar day of punches with its net worked duration.
type DayGroup struct {
	Date    time.Time // midnight in Location
	Records []Punch
	Total   time.Duration
}

// DailyTotal computes the net worked duration for one day of punches:
// exit minus entry, minus the lunch break, clamped at zero. A day missing
// its entry or exit contributes nothing. With stray duplicates the earliest
// entry and latest exit win (and symmetrically the earliest lunch start,
// latest lunch end), so the result does not depend on iteration order.
func DailyTotal(records []Punch) time.Duration {
	var entry, exit, lunchStart, lunchEnd *time.Time

	for i := range records {
		t := records[i].Time
		switch records[i].Type {
		case Entry:
			if entry == nil || t.Before(*entry) {
				entry = &t
			}
		case Exit:
			if exit == nil || t.After(*exit) {
				exit = &t
			}
		case LunchStart:
			if lunchStart == nil || t.Before(*lunchStart) {
				lunchStart = &t
			}
		case LunchEnd:
			if lunchEnd == nil || t.After(*lunchEnd) {
				lunchEnd = &t
			}
		}
	}

	var workSpan time.Duration
	if entry != nil && exit != nil {
		workSpan = exit.Sub(*entry)
	}

	var breakSpan time.Duration
	if lunchStart != nil && lunchEnd != nil {
		breakSpan = lunchEnd.Sub(*lunchStart)
	}

	total := workSpan - breakSpan
	if total < 0 {
		total = 0
	}
	return total
}

// GroupByDay splits punches into calendar days in Location and computes each
// day's total. Groups come back ordered by date ascending with their records
// ordered by time ascending.
func GroupByDay(records []Punch) []DayGroup {
	buckets := make(map[string][]Punch)
	for _, r := range records {
		key := r.Time.In(Location).Format("2006-01-02")
		buckets[key] = append(buckets[key], r)
	}

	groups := make([]DayGroup, 0, len(buckets))
	for key, dayRecords := range buckets {
		sort.Slice(dayRecords, func(i, j int) bool {
			return dayRecords[i].Time.Before(dayRecords[j].Time)
		})

		date, _ := time.ParseInLocation("2006-01-02", key, Location)
		groups = append(groups, DayGroup{
			Date:    date,
			Records: dayRecords,
			Total:   DailyTotal(dayRecords),
		})
	}

	sort.Slice(groups, func(i, j int) bool {
		return groups[i].Date.Before(groups[j].Date)
	})

	return groups
}

// PeriodTotal sums the daily totals of a reporting range. Daily totals are
// already clamped at zero, so partial days never subtract from the sum.
func PeriodTotal(groups []DayGroup) time.Duration {
	var total time.Duration
	for _, g := range groups {
		total += g.Total
	}
	return total
}

// FormatDuration renders a duration as zero-padded HH:MM with the minutes
// truncated, the way the reports show worked hours.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	hours := int(d.Hours())
	minutes := int(d.Minutes()) % 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

// DayBounds returns the inclusive start and end instants of the calendar day
// containing t in the display timezone. History filters use these so range
// edges land on local midnights.
func DayBounds(t time.Time) (time.Time, time.Time) {
	local := t.In(Location)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, Location)
	end := time.Date(local.Year(), local.Month(), local.Day(), 23, 59, 59, 999999999, Location)
	return start, end
}
