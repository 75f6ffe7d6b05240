// Package schedule loads the expected-job schedule from its flat file and
// derives the per-category checks the reconciliation engine consumes.
package schedule

// Entry represents one row of the expected-schedule file.
//
// Each of the four category flags is independent; a single job may carry
// any combination of them. Flag columns are set iff the raw cell holds
// exactly "YES".
type Entry struct {
	JobName string

	Hourly      bool
	HourlyCount string // expected executions per window, integer

	Daily bool

	SpecificDay bool
	DayValues   string // comma-separated day-of-month values

	SpecificWeekday bool
	WeekdayValues   string // comma-separated weekday labels (Monday..Sunday)
}

// flagYes is the only cell value that marks a category flag as active.
const flagYes = "YES"

// Fixed column layout of the schedule file.
const (
	colJobName = iota
	colHourlyFlag
	colHourlyCount
	colDailyFlag
	colSpecificDayFlag
	colSpecificDayValues
	colSpecificWeekdayFlag
	colSpecificWeekdayValues

	minColumns = 8
)
