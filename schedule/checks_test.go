package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHourlyChecksFilter(t *testing.T) {
	entries := []Entry{
		{JobName: "hourly-a", Hourly: true, HourlyCount: "24"},
		{JobName: "daily-only", Daily: true},
		{JobName: "hourly-b", Hourly: true, HourlyCount: "6"},
	}

	checks := HourlyChecks(entries)
	require.Len(t, checks, 2)
	assert.Equal(t, Check{JobName: "hourly-a", Condition: "24", Category: CategoryHourly}, checks[0])
	assert.Equal(t, Check{JobName: "hourly-b", Condition: "6", Category: CategoryHourly}, checks[1])
}

func TestDailyChecksCarryNoCondition(t *testing.T) {
	entries := []Entry{
		{JobName: "nightly", Daily: true},
		{JobName: "hourly", Hourly: true, HourlyCount: "4"},
	}

	checks := DailyChecks(entries)
	require.Len(t, checks, 1)
	assert.Equal(t, "nightly", checks[0].JobName)
	assert.Empty(t, checks[0].Condition)
	assert.Equal(t, CategoryDaily, checks[0].Category)
}

func TestDayChecksFanOut(t *testing.T) {
	entries := []Entry{
		{JobName: "month-close", SpecificDay: true, DayValues: "1,15,28"},
	}

	checks := DayChecks(entries)
	require.Len(t, checks, 3)
	assert.Equal(t, "1", checks[0].Condition)
	assert.Equal(t, "15", checks[1].Condition)
	assert.Equal(t, "28", checks[2].Condition)
	for _, c := range checks {
		assert.Equal(t, "month-close", c.JobName)
		assert.Equal(t, CategorySpecificDay, c.Category)
	}
}

func TestDayChecksKeepDuplicates(t *testing.T) {
	entries := []Entry{
		{JobName: "dup", SpecificDay: true, DayValues: "7,7"},
	}

	checks := DayChecks(entries)
	require.Len(t, checks, 2)
	assert.Equal(t, checks[0], checks[1])
}

func TestWeekdayChecksFanOut(t *testing.T) {
	entries := []Entry{
		{JobName: "digest", SpecificWeekday: true, WeekdayValues: "Monday,Friday"},
		{JobName: "unflagged", WeekdayValues: "Tuesday"},
	}

	checks := WeekdayChecks(entries)
	require.Len(t, checks, 2)
	assert.Equal(t, "Monday", checks[0].Condition)
	assert.Equal(t, "Friday", checks[1].Condition)
	assert.Equal(t, CategorySpecificWeekday, checks[0].Category)
}

func TestUnsetFlagsProduceNoChecks(t *testing.T) {
	entries := []Entry{
		{JobName: "inert", HourlyCount: "4", DayValues: "1", WeekdayValues: "Monday"},
	}

	assert.Empty(t, HourlyChecks(entries))
	assert.Empty(t, DailyChecks(entries))
	assert.Empty(t, DayChecks(entries))
	assert.Empty(t, WeekdayChecks(entries))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "hourly", CategoryHourly.String())
	assert.Equal(t, "daily", CategoryDaily.String())
	assert.Equal(t, "specific-day", CategorySpecificDay.String())
	assert.Equal(t, "specific-weekday", CategorySpecificWeekday.String())
}
