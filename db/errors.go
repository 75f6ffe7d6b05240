package db

import (
	"strings"

	"github.com/teranos/vigil/errors"
)

// ErrConnectionFailed is returned when the execution store cannot be reached.
var ErrConnectionFailed = errors.New("database connection failed")

// IsConnectionError checks if an error indicates the database is unreachable.
// This handles both:
// - Wrapped ErrConnectionFailed errors from this package
// - Raw lib/pq / net errors whose message indicates a connect failure
//
// The string matching fallback is necessary because the underlying driver
// returns its own error types that we cannot wrap at the source.
func IsConnectionError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrConnectionFailed) {
		return true
	}

	errMsg := err.Error()
	return strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no such host") ||
		strings.Contains(errMsg, "connection reset")
}
