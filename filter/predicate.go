package filter

import (
	"fmt"
	"strings"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// Predicate is a parsed "field:operator:value" condition.
type Predicate struct {
	Field     schema.FieldID
	FieldName string
	Op        Operator
	// Literal is the value text as written; Value is its parsed form.
	Literal string
	Value   value.Value

	eval func(field, literal value.Value) bool
}

// Matches reports whether rec satisfies the predicate. A record without the
// field never matches.
func (p Predicate) Matches(rec *schema.Record) bool {
	v, ok := rec.Get(p.Field)
	if !ok || p.eval == nil {
		return false
	}
	return p.eval(v, p.Value)
}

// String returns the predicate as an expression Parse accepts.
func (p Predicate) String() string {
	return p.FieldName + ":" + string(p.Op) + ":" + p.Literal
}

// HistoryLine returns the "# FILTER :" header line recording the predicate
// in a filtered XMAP file.
func (p Predicate) HistoryLine() string {
	return fmt.Sprintf("# FILTER : %-39s: %3s : %s", p.FieldName, p.Op, p.Literal)
}

// Chain is a conjunction of predicates.
type Chain []Predicate

// Matches reports whether rec satisfies every predicate. An empty chain
// matches everything.
func (c Chain) Matches(rec *schema.Record) bool {
	for _, p := range c {
		if !p.Matches(rec) {
			return false
		}
	}
	return true
}

// Strings returns the expressions of the chain.
func (c Chain) Strings() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.String()
	}
	return out
}

// HistoryLines returns the "# FILTER :" lines of the chain.
func (c Chain) HistoryLines() []string {
	out := make([]string, len(c))
	for i, p := range c {
		out[i] = p.HistoryLine()
	}
	return out
}

// Suffix returns the file name suffix naming the chain, e.g.
// "_Confidence_ge_10.0_RefContigID_in_1_2".
func (c Chain) Suffix() string {
	var b strings.Builder
	for _, p := range c {
		b.WriteString("_" + p.FieldName + "_" + string(p.Op) + "_" + p.Literal)
	}
	return strings.ReplaceAll(b.String(), ListSeparator, "_")
}
