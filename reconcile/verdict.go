package reconcile

// Verdict classifies the outcome of comparing one expected check against
// one observation (or the absence of any observation) for its job.
type Verdict int

const (
	// VerdictNotLaunched - no execution record exists for the job in the window.
	VerdictNotLaunched Verdict = iota
	// VerdictCompletedMatch - a COMPLETED record satisfied the check.
	VerdictCompletedMatch
	// VerdictCompletedMismatch - a COMPLETED record's execution count
	// differs from the expected hourly count.
	VerdictCompletedMismatch
	// VerdictLaunchedNotCompleted - the job ran but a record carries a
	// non-COMPLETED status.
	VerdictLaunchedNotCompleted
)

// String returns the verdict name as used in diagnostics and JSON output.
func (v Verdict) String() string {
	switch v {
	case VerdictNotLaunched:
		return "NOT_LAUNCHED"
	case VerdictCompletedMatch:
		return "COMPLETED_MATCH"
	case VerdictCompletedMismatch:
		return "COMPLETED_MISMATCH"
	case VerdictLaunchedNotCompleted:
		return "LAUNCHED_NOT_COMPLETED"
	default:
		return "UNKNOWN"
	}
}

// Failed reports whether the verdict counts toward the failure tally.
// Only a completed match passes.
func (v Verdict) Failed() bool {
	return v != VerdictCompletedMatch
}

// MarshalText makes verdicts render as their names in JSON reports.
func (v Verdict) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}
