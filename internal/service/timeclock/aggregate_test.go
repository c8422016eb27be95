package timeclock_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"ponto/backend/internal/service/timeclock"
)

func punchAt(typ timeclock.PunchType, hour, min int) timeclock.Punch {
	return timeclock.Punch{
		Type: typ,
		Time: time.Date(2025, 3, 10, hour, min, 0, 0, timeclock.Location),
	}
}

func TestDailyTotalFullDay(t *testing.T) {
	records := []timeclock.Punch{
		punchAt(timeclock.Entry, 9, 0),
		punchAt(timeclock.LunchStart, 12, 0),
		punchAt(timeclock.LunchEnd, 13, 0),
		punchAt(timeclock.Exit, 18, 0),
	}

	total := timeclock.DailyTotal(records)
	assert.Equal(t, 8*time.Hour, total)
	assert.Equal(t, "08:00", timeclock.FormatDuration(total))
}

func TestDailyTotalPartialDayIsZero(t *testing.T) {
	// Entry without exit contributes nothing, not partial credit.
	total := timeclock.DailyTotal([]timeclock.Punch{punchAt(timeclock.Entry, 9, 0)})
	assert.Equal(t, time.Duration(0), total)
	assert.Equal(t, "00:00", timeclock.FormatDuration(total))

	total = timeclock.DailyTotal([]timeclock.Punch{punchAt(timeclock.Exit, 18, 0)})
	assert.Equal(t, time.Duration(0), total)
}

func TestDailyTotalClampsNegative(t *testing.T) {
	// Exit before entry is a data-entry error and clamps to zero.
	records := []timeclock.Punch{
		punchAt(timeclock.Entry, 18, 0),
		punchAt(timeclock.Exit, 9, 0),
	}
	assert.Equal(t, time.Duration(0), timeclock.DailyTotal(records))
}

func TestDailyTotalNoLunch(t *testing.T) {
	records := []timeclock.Punch{
		punchAt(timeclock.Entry, 9, 0),
		punchAt(timeclock.Exit, 17, 30),
	}
	assert.Equal(t, "08:30", timeclock.FormatDuration(timeclock.DailyTotal(records)))
}

func TestDailyTotalStrayDuplicates(t *testing.T) {
	// Earliest entry and latest exit win regardless of slice order.
	records := []timeclock.Punch{
		punchAt(timeclock.Exit, 17, 0),
		punchAt(timeclock.Entry, 10, 0),
		punchAt(timeclock.Entry, 9, 0),
		punchAt(timeclock.Exit, 18, 0),
	}
	assert.Equal(t, 9*time.Hour, timeclock.DailyTotal(records))
}

func TestPeriodTotal(t *testing.T) {
	groups := []timeclock.DayGroup{
		{Total: 8 * time.Hour},
		{Total: 7*time.Hour + 30*time.Minute},
	}
	assert.Equal(t, "15:30", timeclock.FormatDuration(timeclock.PeriodTotal(groups)))
}

func TestFormatDurationTruncatesMinutes(t *testing.T) {
	assert.Equal(t, "08:00", timeclock.FormatDuration(8*time.Hour+59*time.Second))
	assert.Equal(t, "00:00", timeclock.FormatDuration(-time.Hour))
	assert.Equal(t, "124:05", timeclock.FormatDuration(124*time.Hour+5*time.Minute))
}

func TestGroupByDayUsesDisplayTimezone(t *testing.T) {
	// 23:50 and 00:10 local time straddle a local midnight: two distinct
	// days even though both may fall on the same or different UTC dates.
	evening := time.Date(2025, 3, 10, 23, 50, 0, 0, timeclock.Location)
	morning := time.Date(2025, 3, 11, 0, 10, 0, 0, timeclock.Location)

	groups := timeclock.GroupByDay([]timeclock.Punch{
		{Type: timeclock.Exit, Time: evening.UTC()},
		{Type: timeclock.Entry, Time: morning.UTC()},
	})

	assert.Len(t, groups, 2)
	assert.Equal(t, "2025-03-10", groups[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-03-11", groups[1].Date.Format("2006-01-02"))
}

func TestGroupByDaySameUTCDateSplitsLocally(t *testing.T) {
	// Sao Paulo is UTC-3: 02:50 UTC is 23:50 local the previous day, and
	// 03:10 UTC is 00:10 local. Same UTC date, different local days.
	first := time.Date(2025, 3, 11, 2, 50, 0, 0, time.UTC)
	second := time.Date(2025, 3, 11, 3, 10, 0, 0, time.UTC)

	groups := timeclock.GroupByDay([]timeclock.Punch{
		{Type: timeclock.Exit, Time: first},
		{Type: timeclock.Entry, Time: second},
	})

	assert.Len(t, groups, 2)
	assert.Equal(t, "2025-03-10", groups[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2025-03-11", groups[1].Date.Format("2006-01-02"))
}

func TestGroupByDayOrdersRecordsAndComputesTotals(t *testing.T) {
	day1 := []timeclock.Punch{
		punchAt(timeclock.Exit, 18, 0),
		punchAt(timeclock.Entry, 9, 0),
		punchAt(timeclock.LunchEnd, 13, 0),
		punchAt(timeclock.LunchStart, 12, 0),
	}
	day2 := []timeclock.Punch{
		{Type: timeclock.Entry, Time: time.Date(2025, 3, 11, 9, 0, 0, 0, timeclock.Location)},
		{Type: timeclock.Exit, Time: time.Date(2025, 3, 11, 16, 30, 0, 0, timeclock.Location)},
	}

	groups := timeclock.GroupByDay(append(day1, day2...))
	assert.Len(t, groups, 2)

	assert.Equal(t, 8*time.Hour, groups[0].Total)
	assert.Equal(t, 7*time.Hour+30*time.Minute, groups[1].Total)
	assert.Equal(t, "15:30", timeclock.FormatDuration(timeclock.PeriodTotal(groups)))

	for i := 1; i < len(groups[0].Records); i++ {
		assert.True(t, groups[0].Records[i-1].Time.Before(groups[0].Records[i].Time))
	}
}

func TestDayBounds(t *testing.T) {
	at := time.Date(2025, 6, 15, 14, 30, 0, 0, timeclock.Location)
	start, end := timeclock.DayBounds(at)

	assert.Equal(t, "2025-06-15 00:00:00", start.Format("2006-01-02 15:04:05"))
	assert.Equal(t, "2025-06-15 23:59:59", end.Format("2006-01-02 15:04:05"))
	assert.True(t, start.Before(at) && at.Before(end))
}
