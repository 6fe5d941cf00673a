package stats

import (
	"errors"
	"fmt"

	"github.com/sauloal/opticalmapping/value"
)

// ErrEmptyGroup is returned when statistics are requested over no records,
// or when a ratio would divide by zero.
var ErrEmptyGroup = errors.New("empty group")

// GroupError reports which group could not be summarized.
type GroupError struct {
	Ref    value.Value
	Qry    value.Value
	Reason string
}

func (e *GroupError) Error() string {
	return fmt.Sprintf("group ref=%s qry=%s: %s", e.Ref, e.Qry, e.Reason)
}

func (e *GroupError) Unwrap() error { return ErrEmptyGroup }
