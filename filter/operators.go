package filter

import (
	"strings"

	"github.com/sauloal/opticalmapping/value"
)

// Operator names a comparison.
type Operator string

const (
	// OpEqual represents the equality operator.
	OpEqual Operator = "eq"
	// OpNotEqual represents the inequality operator.
	OpNotEqual Operator = "ne"
	// OpGreaterThan represents the greater than operator.
	OpGreaterThan Operator = "gt"
	// OpGreaterEqual represents the greater than or equal operator.
	OpGreaterEqual Operator = "ge"
	// OpLessThan represents the less than operator.
	OpLessThan Operator = "lt"
	// OpLessEqual represents the less than or equal operator.
	OpLessEqual Operator = "le"
	// OpIn represents the in list operator.
	OpIn Operator = "in"
	// OpContains represents the contains all operator.
	OpContains Operator = "contains"
)

// ListSeparator separates the elements of a list literal.
const ListSeparator = ","

// OperatorSpec describes an operator.
type OperatorSpec struct {
	Name Operator
	Help string
	// List operators parse their literal as a ListSeparator separated list,
	// element by element, with the field's own parser.
	List bool

	eval func(field, literal value.Value) bool
}

func builtinOperators() []OperatorSpec {
	return []OperatorSpec{
		{Name: OpEqual, Help: "value <Equal> to filter", eval: value.Equal},
		{Name: OpGreaterEqual, Help: "value <Greater than or Equal> to filter", eval: compareGreaterEqual},
		{Name: OpGreaterThan, Help: "value <Greater than> filter", eval: compareGreater},
		{Name: OpLessEqual, Help: "value <Less than or Equal> to filter", eval: compareLessEqual},
		{Name: OpLessThan, Help: "value <Less than> filter", eval: compareLess},
		{Name: OpNotEqual, Help: "value <Not equal> to filter", eval: compareNotEqual},
		{Name: OpContains, Help: "value <Contains> filter [comma separated]", List: true, eval: compareContains},
		{Name: OpIn, Help: "value <In> filter [comma separated]", List: true, eval: value.In},
	}
}

func compareNotEqual(a, b value.Value) bool {
	return !value.Equal(a, b)
}

func compareGreater(a, b value.Value) bool {
	c, ok := value.Compare(a, b)
	return ok && c > 0
}

func compareGreaterEqual(a, b value.Value) bool {
	c, ok := value.Compare(a, b)
	return ok && c >= 0
}

func compareLess(a, b value.Value) bool {
	c, ok := value.Compare(a, b)
	return ok && c < 0
}

func compareLessEqual(a, b value.Value) bool {
	c, ok := value.Compare(a, b)
	return ok && c <= 0
}

// compareContains reports whether every element of the literal set is held by
// the field value. A string field is viewed as a ListSeparator separated set
// of strings, any other scalar as a set of one.
func compareContains(a, b value.Value) bool {
	want, ok := b.Members()
	if !ok {
		return false
	}

	var have []value.Value
	switch {
	case a.Kind == value.KindSet:
		have, _ = a.Members()
	case a.Kind == value.KindString:
		s, _ := a.AsString()
		for _, part := range strings.Split(s, ListSeparator) {
			have = append(have, value.String(strings.TrimSpace(part)))
		}
	default:
		have = []value.Value{a}
	}

	set := value.Set(have...)
	for _, w := range want {
		if !value.In(w, set) {
			return false
		}
	}
	return true
}
