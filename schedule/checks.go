package schedule

import "strings"

// Category identifies which schedule flag produced a check. The category
// decides how the reconciliation engine interprets the check's condition:
// hourly conditions are expected execution counts, the rest are
// applicability selectors (a day-of-month, a weekday label, or nothing).
type Category int

const (
	CategoryHourly Category = iota
	CategoryDaily
	CategorySpecificDay
	CategorySpecificWeekday
)

// String returns the category name as used in diagnostics.
func (c Category) String() string {
	switch c {
	case CategoryHourly:
		return "hourly"
	case CategoryDaily:
		return "daily"
	case CategorySpecificDay:
		return "specific-day"
	case CategorySpecificWeekday:
		return "specific-weekday"
	default:
		return "unknown"
	}
}

// MarshalText makes categories render as their names in JSON reports.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Check is a single (job, condition) expectation derived from an Entry.
// Multi-value conditions fan out into one Check per value, duplicates
// included - the derivation never deduplicates.
type Check struct {
	JobName   string
	Condition string
	Category  Category
}

// HourlyChecks returns one check per hourly entry, carrying the expected
// execution count as its condition.
func HourlyChecks(entries []Entry) []Check {
	var checks []Check
	for _, e := range entries {
		if e.Hourly {
			checks = append(checks, Check{
				JobName:   e.JobName,
				Condition: e.HourlyCount,
				Category:  CategoryHourly,
			})
		}
	}
	return checks
}

// DailyChecks returns one check per daily entry. Daily checks carry no
// condition; presence of a completed execution is the expectation.
func DailyChecks(entries []Entry) []Check {
	var checks []Check
	for _, e := range entries {
		if e.Daily {
			checks = append(checks, Check{
				JobName:  e.JobName,
				Category: CategoryDaily,
			})
		}
	}
	return checks
}

// DayChecks expands the comma-separated day lists of specific-day entries
// into one check per day value.
func DayChecks(entries []Entry) []Check {
	var checks []Check
	for _, e := range entries {
		if !e.SpecificDay {
			continue
		}
		for _, day := range strings.Split(e.DayValues, ",") {
			checks = append(checks, Check{
				JobName:   e.JobName,
				Condition: day,
				Category:  CategorySpecificDay,
			})
		}
	}
	return checks
}

// WeekdayChecks expands the comma-separated weekday lists of
// specific-weekday entries into one check per weekday label.
func WeekdayChecks(entries []Entry) []Check {
	var checks []Check
	for _, e := range entries {
		if !e.SpecificWeekday {
			continue
		}
		for _, weekday := range strings.Split(e.WeekdayValues, ",") {
			checks = append(checks, Check{
				JobName:   e.JobName,
				Condition: weekday,
				Category:  CategorySpecificWeekday,
			})
		}
	}
	return checks
}
