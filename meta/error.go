package meta

import "fmt"

// CompileError wraps a pipeline failure with the offending pattern.
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	return fmt.Sprintf("compilation failed for pattern %q: %v", e.Pattern, e.Err)
}

// Unwrap returns the underlying error, so callers can match the
// sentinel errors from packages syntax and nfa with errors.Is.
func (e *CompileError) Unwrap() error {
	return e.Err
}
