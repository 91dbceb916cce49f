// Package nfa provides a nondeterministic finite automaton for a restricted
// regex dialect: literal bytes, '.' wildcard, and postfix '*'/'+' quantifiers.
//
// Patterns compile into a small state arena and are matched with a breadth-first
// simulation, anchored at both ends of the input. The compiled NFA is immutable
// and safe to share across goroutines.
package nfa

import (
	"errors"
	"fmt"
)

// Common NFA errors
var (
	// ErrInvalidState indicates an invalid NFA state ID was encountered
	ErrInvalidState = errors.New("invalid NFA state")

	// ErrInvalidPattern indicates the pattern is not valid in the restricted dialect,
	// e.g. a quantifier with no repeatable unit before it
	ErrInvalidPattern = errors.New("invalid pattern")

	// ErrTooComplex indicates the pattern exceeds the configured state limit
	ErrTooComplex = errors.New("pattern too complex")
)

// CompileError wraps compilation errors with the offending pattern
type CompileError struct {
	Pattern string
	Err     error
}

// Error implements the error interface
func (e *CompileError) Error() string {
	if e.Pattern != "" {
		return fmt.Sprintf("NFA compilation failed for pattern %q: %v", e.Pattern, e.Err)
	}
	return fmt.Sprintf("NFA compilation failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *CompileError) Unwrap() error {
	return e.Err
}

// BuildError represents an error during NFA construction via the Builder API
type BuildError struct {
	Message string
	StateID StateID
}

// Error implements the error interface
func (e *BuildError) Error() string {
	if e.StateID != InvalidState {
		return fmt.Sprintf("NFA build error at state %d: %s", e.StateID, e.Message)
	}
	return fmt.Sprintf("NFA build error: %s", e.Message)
}
