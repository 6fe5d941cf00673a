package filter

import "errors"

var (
	// ErrBadFilterSyntax is returned when an expression is not of the form
	// field:operator:value.
	ErrBadFilterSyntax = errors.New("bad filter syntax")
	// ErrUnknownField is returned when an expression names a field the
	// registry does not hold.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownOperator is returned when an expression names an operator
	// the engine does not hold.
	ErrUnknownOperator = errors.New("unknown operator")
)
