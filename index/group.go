package index

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// Pair names the two columns of a group index: records are grouped by the
// value of A, then by the value of B.
type Pair struct {
	A schema.FieldID
	B schema.FieldID
}

// Format renders the pair as "A:B" using the names of reg.
func (p Pair) Format(reg *schema.Registry) string {
	return reg.Name(p.A) + ":" + reg.Name(p.B)
}

// ParsePair parses an "A:B" pair of field names.
func ParsePair(reg *schema.Registry, s string) (Pair, error) {
	a, b, ok := strings.Cut(s, ":")
	if !ok || a == "" || b == "" {
		return Pair{}, fmt.Errorf("%w: group pair %q is not of the form A:B", schema.ErrSchema, s)
	}
	sa, ok := reg.Lookup(a)
	if !ok {
		return Pair{}, fmt.Errorf("%w: unknown field %q in group pair", schema.ErrSchema, a)
	}
	sb, ok := reg.Lookup(b)
	if !ok {
		return Pair{}, fmt.Errorf("%w: unknown field %q in group pair", schema.ErrSchema, b)
	}
	return Pair{A: sa.ID, B: sb.ID}, nil
}

// Group pairs used by the statistics aggregator.
var (
	RefQry   = Pair{schema.RefContigID, schema.QryContigID}
	QryRef   = Pair{schema.QryContigID, schema.RefContigID}
	QryEntry = Pair{schema.QryContigID, schema.XmapEntryID}
)

// DefaultPairs returns the column pairs grouped by default.
func DefaultPairs() []Pair {
	return []Pair{
		RefQry,
		{schema.RefContigID, schema.RefStartPos},
		{schema.RefContigID, schema.RefEndPos},
		QryRef,
		{schema.QryContigID, schema.Orientation},
		QryEntry,
		{schema.XmapEntryID, schema.Confidence},
	}
}

// group is the second level of a GroupIndex: the buckets of B for one
// value of A.
type group struct {
	value value.Value
	inner map[string]*bucket
}

// GroupIndex maps, per column pair (A, B), a value of A to a value of B to
// the set of positions whose record holds both.
//
// Structure: pair -> A value key -> B value key -> bucket. The inner map and
// the position set are created on first insert; nothing is ever removed.
type GroupIndex struct {
	pairs  []Pair
	groups map[Pair]map[string]*group
}

// NewGroupIndex creates an empty group index over pairs. Duplicate pairs are
// ignored.
func NewGroupIndex(pairs ...Pair) *GroupIndex {
	gi := &GroupIndex{
		groups: make(map[Pair]map[string]*group, len(pairs)),
	}
	for _, p := range pairs {
		if _, dup := gi.groups[p]; dup {
			continue
		}
		gi.pairs = append(gi.pairs, p)
		gi.groups[p] = make(map[string]*group)
	}
	return gi
}

// Pairs returns the grouped pairs in declaration order.
func (gi *GroupIndex) Pairs() []Pair {
	return slices.Clone(gi.pairs)
}

// Has reports whether pair is grouped.
func (gi *GroupIndex) Has(p Pair) bool {
	_, ok := gi.groups[p]
	return ok
}

// Add records pos under every pair whose two fields are present in rec.
func (gi *GroupIndex) Add(pos uint32, rec *schema.Record) {
	for _, p := range gi.pairs {
		a, ok := rec.Get(p.A)
		if !ok {
			continue
		}
		b, ok := rec.Get(p.B)
		if !ok {
			continue
		}
		bucketFor(groupFor(gi.groups[p], a).inner, b).set.Add(pos)
	}
}

// groupFor returns the group of v in m, creating it on first use.
func groupFor(m map[string]*group, v value.Value) *group {
	key := v.Key()
	g, ok := m[key]
	if !ok {
		g = &group{value: v, inner: make(map[string]*bucket)}
		m[key] = g
	}
	return g
}

// Get returns the positions holding a in p.A and b in p.B. The result is nil
// when no record holds the combination; callers must not modify it.
func (gi *GroupIndex) Get(p Pair, a, b value.Value) *PositionSet {
	g, ok := gi.groups[p][a.Key()]
	if !ok {
		return nil
	}
	bk, ok := g.inner[b.Key()]
	if !ok {
		return nil
	}
	return bk.set
}

// Primary returns the distinct values of p.A in ascending order.
func (gi *GroupIndex) Primary(p Pair) []value.Value {
	m := gi.groups[p]
	out := make([]value.Value, 0, len(m))
	for _, g := range m {
		out = append(out, g.value)
	}
	slices.SortFunc(out, value.Order)
	return out
}

// Secondary returns the distinct values of p.B paired with a, in ascending
// order.
func (gi *GroupIndex) Secondary(p Pair, a value.Value) []value.Value {
	g, ok := gi.groups[p][a.Key()]
	if !ok {
		return nil
	}
	return sortedValues(g.inner)
}

// Positions returns the union of every bucket of a in p.
func (gi *GroupIndex) Positions(p Pair, a value.Value) *PositionSet {
	out := NewPositionSet()
	g, ok := gi.groups[p][a.Key()]
	if !ok {
		return out
	}
	for _, b := range g.inner {
		out.Or(b.set)
	}
	return out
}

// Merge adds every bucket of other to gi after shifting its positions by
// offset. Both group indices must cover the same pairs.
func (gi *GroupIndex) Merge(other *GroupIndex, offset uint32) error {
	if !slices.Equal(gi.pairs, other.pairs) {
		return fmt.Errorf("%w: group pairs %v and %v differ", ErrShapeMismatch, gi.pairs, other.pairs)
	}
	for _, p := range other.pairs {
		for _, og := range other.groups[p] {
			g := groupFor(gi.groups[p], og.value)
			for _, b := range og.inner {
				bucketFor(g.inner, b.value).set.Or(b.set.shifted(offset))
			}
		}
	}
	return nil
}
