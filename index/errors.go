package index

import "errors"

// ErrShapeMismatch is returned by Merge when two indices do not cover the same
// fields or pairs.
var ErrShapeMismatch = errors.New("index shape mismatch")
