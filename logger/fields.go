package logger

// Standard field names for consistent structured logging across vigil.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldRunID  = "run_id"
	FieldJob    = "job"
	FieldWindow = "window"

	// Reconciliation
	FieldCategory = "category"
	FieldExpected = "expected"
	FieldFound    = "found"
	FieldFailures = "failures"

	// Counts and status
	FieldCount  = "count"
	FieldStatus = "status"

	// Infrastructure
	FieldHost     = "host"
	FieldPort     = "port"
	FieldDatabase = "database"
)
