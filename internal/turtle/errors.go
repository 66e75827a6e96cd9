package turtle

import (
	"errors"
	"fmt"
)

var (
	ErrOrphanRepeat  = errors.New("repeat has no preceding commands at its scope")
	ErrNegativeCount = errors.New("repeat count is negative")
	ErrSegmentLimit  = errors.New("path segment limit exceeded")
)

// ExecutionError aborts an execution pass. Line is the script line of the
// offending statement, or 0 when the failure is not tied to one.
type ExecutionError struct {
	Line   int
	Reason error
}

func (e *ExecutionError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("execution failed: %v", e.Reason)
	}
	return fmt.Sprintf("execution failed at line %d: %v", e.Line, e.Reason)
}

func (e *ExecutionError) Unwrap() error {
	return e.Reason
}
