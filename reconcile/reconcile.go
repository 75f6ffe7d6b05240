// Package reconcile matches expected-job checks against observed execution
// records and aggregates a failure tally.
package reconcile

import (
	"strconv"

	"go.uber.org/zap"

	"github.com/teranos/vigil/errors"
	"github.com/teranos/vigil/logger"
	"github.com/teranos/vigil/schedule"
	"github.com/teranos/vigil/store"
)

// Result is the explicit outcome of evaluating one check against one
// observation. A check whose job produced records under several statuses
// yields one Result per record; a check whose job never ran yields a
// single NOT_LAUNCHED result.
type Result struct {
	JobName  string            `json:"job"`
	Window   string            `json:"window"`
	Category schedule.Category `json:"category"`
	Verdict  Verdict           `json:"verdict"`
	Expected string            `json:"expected,omitempty"`
	Status   string            `json:"status,omitempty"`
	Found    int               `json:"found,omitempty"`
}

// Report collects the results of one reconciliation pass over a window.
type Report struct {
	Window   string   `json:"window"`
	Results  []Result `json:"results"`
	Failures int      `json:"failures"`
}

// Engine evaluates expected checks against execution records.
type Engine struct {
	log *zap.SugaredLogger
}

// NewEngine creates a reconciliation engine. log may be nil for silent
// operation (tests).
func NewEngine(log *zap.SugaredLogger) *Engine {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Engine{log: log}
}

// Reconcile evaluates every check against the records of the named window.
//
// Evaluation never short-circuits: each check is judged independently and
// the report's failure count is the sum over all evaluations. For a check
// whose job has records, every record is judged - COMPLETED records of
// hourly checks must carry the expected execution count; COMPLETED records
// of the other categories pass on presence alone; any non-COMPLETED record
// is a failure regardless of count.
//
// The only error return is a non-integer hourly condition, which the
// schedule loader rejects before checks reach this point.
func (e *Engine) Reconcile(checks []schedule.Check, records []store.ExecutionRecord, window string) (*Report, error) {
	report := &Report{Window: window}

	for _, check := range checks {
		matched := selectRecords(records, check.JobName)

		if len(matched) == 0 {
			e.log.Warnw("Job was not launched",
				logger.FieldWindow, window,
				logger.FieldJob, check.JobName,
				logger.FieldCategory, check.Category.String(),
			)
			report.add(Result{
				JobName:  check.JobName,
				Window:   window,
				Category: check.Category,
				Verdict:  VerdictNotLaunched,
				Expected: check.Condition,
			})
			continue
		}

		for _, rec := range matched {
			result, err := e.judge(check, rec, window)
			if err != nil {
				return nil, err
			}
			report.add(result)
		}
	}

	return report, nil
}

// judge evaluates one check against one execution record.
func (e *Engine) judge(check schedule.Check, rec store.ExecutionRecord, window string) (Result, error) {
	result := Result{
		JobName:  check.JobName,
		Window:   window,
		Category: check.Category,
		Expected: check.Condition,
		Status:   rec.Status,
		Found:    rec.Count,
	}

	if rec.Status != store.StatusCompleted {
		result.Verdict = VerdictLaunchedNotCompleted
		e.log.Warnw("Job launched but did not complete successfully",
			logger.FieldWindow, window,
			logger.FieldJob, check.JobName,
			logger.FieldStatus, rec.Status,
			logger.FieldCount, rec.Count,
		)
		return result, nil
	}

	// Only hourly checks carry a numeric expectation; for the other
	// categories a COMPLETED record is sufficient and the condition is an
	// applicability selector consumed upstream.
	if check.Category != schedule.CategoryHourly {
		result.Verdict = VerdictCompletedMatch
		return result, nil
	}

	expected, err := strconv.Atoi(check.Condition)
	if err != nil {
		return Result{}, errors.Newf("hourly check for job %s has non-integer expected count %q",
			check.JobName, check.Condition)
	}

	if expected == rec.Count {
		result.Verdict = VerdictCompletedMatch
		return result, nil
	}

	result.Verdict = VerdictCompletedMismatch
	e.log.Warnw("Job execution count mismatch",
		logger.FieldWindow, window,
		logger.FieldJob, check.JobName,
		logger.FieldExpected, expected,
		logger.FieldFound, rec.Count,
	)
	return result, nil
}

func (r *Report) add(result Result) {
	r.Results = append(r.Results, result)
	if result.Verdict.Failed() {
		r.Failures++
	}
}

// selectRecords returns every record belonging to jobName, preserving order.
func selectRecords(records []store.ExecutionRecord, jobName string) []store.ExecutionRecord {
	var matched []store.ExecutionRecord
	for _, rec := range records {
		if rec.JobName == jobName {
			matched = append(matched, rec)
		}
	}
	return matched
}
