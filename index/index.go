package index

import (
	"fmt"
	"slices"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// DefaultFields returns the columns indexed by default.
func DefaultFields() []schema.FieldID {
	return []schema.FieldID{
		schema.QryContigID,
		schema.RefContigID,
		schema.Orientation,
		schema.XmapEntryID,
	}
}

// bucket is the posting list of one field value.
type bucket struct {
	value value.Value
	set   *PositionSet
}

// Index maps, per indexed field, a value to the set of record positions
// holding it.
//
// Structure: field -> value key -> bucket. Buckets are created on first
// insert and never removed. Index is not safe for concurrent mutation.
type Index struct {
	fields  []schema.FieldID
	buckets map[schema.FieldID]map[string]*bucket
}

// NewIndex creates an empty index over fields. Duplicate fields are ignored.
func NewIndex(fields ...schema.FieldID) *Index {
	idx := &Index{
		buckets: make(map[schema.FieldID]map[string]*bucket, len(fields)),
	}
	for _, f := range fields {
		if _, dup := idx.buckets[f]; dup {
			continue
		}
		idx.fields = append(idx.fields, f)
		idx.buckets[f] = make(map[string]*bucket)
	}
	return idx
}

// Fields returns the indexed fields in declaration order.
func (idx *Index) Fields() []schema.FieldID {
	return slices.Clone(idx.fields)
}

// Has reports whether field is indexed.
func (idx *Index) Has(field schema.FieldID) bool {
	_, ok := idx.buckets[field]
	return ok
}

// Add records pos under the value of every indexed field present in rec.
func (idx *Index) Add(pos uint32, rec *schema.Record) {
	for _, f := range idx.fields {
		v, ok := rec.Get(f)
		if !ok {
			continue
		}
		bucketFor(idx.buckets[f], v).set.Add(pos)
	}
}

// Lookup returns the positions whose field equals v. The result is nil when
// no record holds v; callers must not modify it.
func (idx *Index) Lookup(field schema.FieldID, v value.Value) *PositionSet {
	b, ok := idx.buckets[field][v.Key()]
	if !ok {
		return nil
	}
	return b.set
}

// Values returns the distinct values of field in ascending order.
func (idx *Index) Values(field schema.FieldID) []value.Value {
	return sortedValues(idx.buckets[field])
}

// Cardinality returns the number of distinct values of field.
func (idx *Index) Cardinality(field schema.FieldID) int {
	return len(idx.buckets[field])
}

// Merge adds every posting of other to idx after shifting its positions by
// offset. Both indices must cover the same fields.
func (idx *Index) Merge(other *Index, offset uint32) error {
	if !slices.Equal(idx.fields, other.fields) {
		return fmt.Errorf("%w: indexed fields %v and %v differ", ErrShapeMismatch, idx.fields, other.fields)
	}
	for _, f := range other.fields {
		for _, b := range other.buckets[f] {
			bucketFor(idx.buckets[f], b.value).set.Or(b.set.shifted(offset))
		}
	}
	return nil
}

// bucketFor returns the bucket of v in m, creating it on first use.
func bucketFor(m map[string]*bucket, v value.Value) *bucket {
	key := v.Key()
	b, ok := m[key]
	if !ok {
		b = &bucket{value: v, set: NewPositionSet()}
		m[key] = b
	}
	return b
}

func sortedValues(m map[string]*bucket) []value.Value {
	out := make([]value.Value, 0, len(m))
	for _, b := range m {
		out = append(out, b.value)
	}
	slices.SortFunc(out, value.Order)
	return out
}
