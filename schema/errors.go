package schema

import (
	"errors"
	"fmt"
)

// ErrSchema is returned for schema violations: duplicate field names or IDs,
// unknown column names, unknown type tags, or data before the "#h" header.
var ErrSchema = errors.New("schema error")

// ParseError is returned when a cell cannot be parsed by its field parser.
//
// Err is the parser failure. It is unwrapped, so decoder failures still
// satisfy errors.Is(err, alignment.ErrMalformedCode).
type ParseError struct {
	Field string
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("field %s: cannot parse %q: %v", e.Field, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
