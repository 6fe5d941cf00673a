package value

import (
	"cmp"
	"strings"
)

// Equal reports whether a and b hold the same value. Ints and floats compare
// numerically.
func Equal(a, b Value) bool {
	if a.IsNumber() && b.IsNumber() {
		if a.Kind == KindInt && b.Kind == KindInt {
			return a.I64 == b.I64
		}
		fa, _ := a.AsFloat64()
		fb, _ := b.AsFloat64()
		return fa == fb
	}
	if a.Kind != b.Kind {
		return false
	}

	switch a.Kind {
	case KindNull:
		return true
	case KindString:
		return a.s == b.s
	case KindBool:
		return a.B == b.B
	case KindSet:
		if len(a.A) != len(b.A) {
			return false
		}
		for i := range a.A {
			if !Equal(a.A[i], b.A[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// Compare orders two comparable values. ok is false when the kinds cannot be
// ordered against each other (e.g. a string and a number, or any set).
func Compare(a, b Value) (c int, ok bool) {
	if a.IsNumber() && b.IsNumber() {
		if a.Kind == KindInt && b.Kind == KindInt {
			return cmp.Compare(a.I64, b.I64), true
		}
		fa, _ := a.AsFloat64()
		fb, _ := b.AsFloat64()
		return cmp.Compare(fa, fb), true
	}
	if a.Kind != b.Kind {
		return 0, false
	}

	switch a.Kind {
	case KindString:
		return strings.Compare(a.s.Value(), b.s.Value()), true
	case KindBool:
		return cmp.Compare(boolRank(a.B), boolRank(b.B)), true
	case KindNull:
		return 0, true
	default:
		return 0, false
	}
}

// Order is a total order over values, used to sort index keys. Values that
// Compare cannot order fall back to kind order, then key order.
func Order(a, b Value) int {
	if c, ok := Compare(a, b); ok {
		if c != 0 || a.Kind == b.Kind {
			return c
		}
		// 1 and 1.0 compare equal; keep them distinct and stable.
		return cmp.Compare(a.Kind, b.Kind)
	}
	if a.Kind != b.Kind {
		return cmp.Compare(a.Kind, b.Kind)
	}
	return strings.Compare(a.Key(), b.Key())
}

// In reports whether v is a member of the set s.
func In(v, s Value) bool {
	members, ok := s.Members()
	if !ok {
		return false
	}
	for _, m := range members {
		if Equal(v, m) {
			return true
		}
	}
	return false
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}
