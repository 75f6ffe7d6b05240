// Package run sequences the reconciliation passes over the yesterday and
// today execution windows and aggregates their failure tallies.
package run

import (
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/vigil/errors"
	"github.com/teranos/vigil/logger"
	"github.com/teranos/vigil/reconcile"
	"github.com/teranos/vigil/schedule"
	"github.com/teranos/vigil/store"
)

// Window labels used in diagnostics and reports.
const (
	WindowYesterday = "Yesterday"
	WindowToday     = "Today"
)

// ErrChecksFailed is returned by Run when at least one check failed.
// The caller maps it to a non-zero process exit.
var ErrChecksFailed = errors.New("reconciliation checks failed")

// ExecutionSource provides the two window-aggregated execution queries.
// *store.Store satisfies it.
type ExecutionSource interface {
	YesterdayExecutions() ([]store.ExecutionRecord, error)
	MorningExecutions() ([]store.ExecutionRecord, error)
}

// Params configures a single orchestration run.
type Params struct {
	// Schedule holds the entries checked against the yesterday window.
	Schedule []schedule.Entry
	// MorningSchedule holds the entries checked against the today
	// 00:00-06:00 window.
	MorningSchedule []schedule.Entry
	// Now anchors the weekday and day-of-month applicability filters.
	// Zero means time.Now().
	Now time.Time
	// Windows selects which passes to run. Empty means both.
	Windows []string
}

// Summary aggregates the reports of one run.
type Summary struct {
	RunID    string              `json:"run_id"`
	Reports  []*reconcile.Report `json:"reports"`
	Failures int                 `json:"failures"`
}

// Runner drives reconciliation passes against an execution source.
type Runner struct {
	source ExecutionSource
	engine *reconcile.Engine
	log    *zap.SugaredLogger
}

// NewRunner creates a runner. log may be nil for silent operation.
func NewRunner(source ExecutionSource, log *zap.SugaredLogger) *Runner {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Runner{
		source: source,
		engine: reconcile.NewEngine(log),
		log:    log,
	}
}

// Run executes the selected reconciliation passes and sums their failures.
//
// The weekday label is computed once from yesterday and applied to the
// specific-weekday checks of both passes. Specific-day checks apply when
// their day value equals the window's reference day of month. Query or
// engine errors abort the run; check failures never do - they accumulate
// into the summary, and the caller decides the exit contract.
func (r *Runner) Run(params Params) (*Summary, error) {
	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}
	yesterday := now.AddDate(0, 0, -1)
	weekday := yesterday.Weekday().String()

	summary := &Summary{RunID: uuid.NewString()}

	r.log.Infow("Starting reconciliation run",
		logger.FieldRunID, summary.RunID,
		"weekday", weekday,
	)

	if wantWindow(params.Windows, WindowYesterday) {
		records, err := r.source.YesterdayExecutions()
		if err != nil {
			return nil, err
		}
		checks := windowChecks(params.Schedule, weekday, yesterday.Day())
		report, err := r.engine.Reconcile(checks, records, WindowYesterday)
		if err != nil {
			return nil, err
		}
		summary.append(report)
	}

	if wantWindow(params.Windows, WindowToday) {
		records, err := r.source.MorningExecutions()
		if err != nil {
			return nil, err
		}
		checks := windowChecks(params.MorningSchedule, weekday, now.Day())
		report, err := r.engine.Reconcile(checks, records, WindowToday)
		if err != nil {
			return nil, err
		}
		summary.append(report)
	}

	r.log.Infow("Reconciliation run finished",
		logger.FieldRunID, summary.RunID,
		logger.FieldFailures, summary.Failures,
	)

	return summary, nil
}

func (s *Summary) append(report *reconcile.Report) {
	s.Reports = append(s.Reports, report)
	s.Failures += report.Failures
}

// Err maps the summary onto the exit contract: a run with at least one
// failed check is itself an error.
func (s *Summary) Err() error {
	if s.Failures >= 1 {
		return ErrChecksFailed
	}
	return nil
}

// windowChecks derives the ordered check list for one window: hourly, then
// daily, then the applicable specific-day and specific-weekday checks.
func windowChecks(entries []schedule.Entry, weekday string, dayOfMonth int) []schedule.Check {
	checks := schedule.HourlyChecks(entries)
	checks = append(checks, schedule.DailyChecks(entries)...)
	checks = append(checks, filterByDay(schedule.DayChecks(entries), dayOfMonth)...)
	checks = append(checks, filterByCondition(schedule.WeekdayChecks(entries), weekday)...)
	return checks
}

// filterByCondition keeps the checks whose condition equals value.
// Duplicates survive filtering; the fan-out never deduplicates.
func filterByCondition(checks []schedule.Check, value string) []schedule.Check {
	var applicable []schedule.Check
	for _, check := range checks {
		if check.Condition == value {
			applicable = append(applicable, check)
		}
	}
	return applicable
}

// filterByDay keeps the specific-day checks whose day value equals dayOfMonth.
// The comparison is numeric so a zero-padded value like "07" still applies on
// the 7th. Non-numeric day values never match.
func filterByDay(checks []schedule.Check, dayOfMonth int) []schedule.Check {
	var applicable []schedule.Check
	for _, check := range checks {
		day, err := strconv.Atoi(check.Condition)
		if err != nil {
			continue
		}
		if day == dayOfMonth {
			applicable = append(applicable, check)
		}
	}
	return applicable
}

func wantWindow(windows []string, window string) bool {
	if len(windows) == 0 {
		return true
	}
	for _, w := range windows {
		if w == window {
			return true
		}
	}
	return false
}
