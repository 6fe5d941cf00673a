package conv

import (
	"errors"
	"fmt"
	"math"
)

// ErrOverflow reports a value outside the range of the target type.
var ErrOverflow = errors.New("integer overflow")

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (negative)", ErrOverflow, v)
	}
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("%w: %d cannot be converted to uint32 (too large)", ErrOverflow, v)
	}
	return uint32(v), nil
}

// Position returns the record position following n records.
func Position(n int) (uint32, error) {
	pos, err := IntToUint32(n)
	if err != nil {
		return 0, fmt.Errorf("record position: %w", err)
	}
	return pos, nil
}
