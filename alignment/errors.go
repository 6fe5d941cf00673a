package alignment

import (
	"errors"
	"fmt"
)

// ErrMalformedCode is returned when a compact alignment encoding (HitEnum,
// label pair list or orientation) contains unexpected characters or is
// structurally invalid.
var ErrMalformedCode = errors.New("malformed code")

// CodeError describes where a compact code failed to decode.
//
// It satisfies errors.Is(err, ErrMalformedCode).
type CodeError struct {
	// Kind names the encoding ("hit enum", "alignment", "orientation").
	Kind   string
	Input  string
	Offset int
	Reason string
}

func (e *CodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("malformed %s %q at offset %d: %s", e.Kind, e.Input, e.Offset, e.Reason)
	}
	return fmt.Sprintf("malformed %s %q: %s", e.Kind, e.Input, e.Reason)
}

func (e *CodeError) Unwrap() error { return ErrMalformedCode }

func malformed(kind, input string, offset int, reason string) error {
	return &CodeError{Kind: kind, Input: input, Offset: offset, Reason: reason}
}
