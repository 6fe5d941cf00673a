package xmap

import (
	"errors"
	"fmt"
)

// ErrMismatchedArity is returned when a line's column count differs from the
// active "#h" header.
var ErrMismatchedArity = errors.New("mismatched arity")

// ArityError reports a column count mismatch.
type ArityError struct {
	Line int
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("line %d: expected %d columns, got %d", e.Line, e.Want, e.Got)
}

func (e *ArityError) Unwrap() error { return ErrMismatchedArity }

// LineError attaches a line number to a parse failure.
//
// The original underlying error can be accessed via errors.Unwrap.
type LineError struct {
	Line  int
	cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.cause)
}

func (e *LineError) Unwrap() error { return e.cause }
