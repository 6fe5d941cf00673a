package index

import (
	"iter"

	"github.com/RoaringBitmap/roaring/v2"
)

// PositionSet is a compressed set of record positions.
// It wraps the official roaring implementation.
//
// Read methods are safe on a nil *PositionSet, which behaves as the empty set.
type PositionSet struct {
	rb *roaring.Bitmap
}

// NewPositionSet creates a set holding positions.
func NewPositionSet(positions ...uint32) *PositionSet {
	s := &PositionSet{rb: roaring.New()}
	s.rb.AddMany(positions)
	return s
}

// Add adds a position to the set.
func (s *PositionSet) Add(pos uint32) {
	s.rb.Add(pos)
}

// Contains checks if a position is in the set.
func (s *PositionSet) Contains(pos uint32) bool {
	if s == nil {
		return false
	}
	return s.rb.Contains(pos)
}

// IsEmpty returns true if the set is empty.
func (s *PositionSet) IsEmpty() bool {
	return s == nil || s.rb.IsEmpty()
}

// Cardinality returns the number of positions in the set.
func (s *PositionSet) Cardinality() int {
	if s == nil {
		return 0
	}
	return int(s.rb.GetCardinality())
}

// Min returns the smallest position.
func (s *PositionSet) Min() (uint32, bool) {
	if s.IsEmpty() {
		return 0, false
	}
	return s.rb.Minimum(), true
}

// Clone returns a deep copy of the set.
func (s *PositionSet) Clone() *PositionSet {
	if s == nil {
		return NewPositionSet()
	}
	return &PositionSet{rb: s.rb.Clone()}
}

// All returns an iterator over the positions in ascending order.
func (s *PositionSet) All() iter.Seq[uint32] {
	return func(yield func(uint32) bool) {
		if s == nil {
			return
		}
		it := s.rb.Iterator()
		for it.HasNext() {
			if !yield(it.Next()) {
				return
			}
		}
	}
}

// ToArray returns the positions in ascending order.
func (s *PositionSet) ToArray() []uint32 {
	if s == nil {
		return nil
	}
	return s.rb.ToArray()
}

// Or adds every position of other to s.
func (s *PositionSet) Or(other *PositionSet) {
	if other == nil {
		return
	}
	s.rb.Or(other.rb)
}

// Equal reports whether both sets hold the same positions.
func (s *PositionSet) Equal(other *PositionSet) bool {
	if s.IsEmpty() || other.IsEmpty() {
		return s.IsEmpty() && other.IsEmpty()
	}
	return s.rb.Equals(other.rb)
}

// Intersect returns a new set with the positions present in both a and b.
func Intersect(a, b *PositionSet) *PositionSet {
	if a.IsEmpty() || b.IsEmpty() {
		return NewPositionSet()
	}
	return &PositionSet{rb: roaring.And(a.rb, b.rb)}
}

// Union returns a new set with the positions of every input set.
func Union(sets ...*PositionSet) *PositionSet {
	out := NewPositionSet()
	for _, s := range sets {
		out.Or(s)
	}
	return out
}

// shifted returns a copy of s with every position moved up by offset.
func (s *PositionSet) shifted(offset uint32) *PositionSet {
	if offset == 0 {
		return s.Clone()
	}
	out := NewPositionSet()
	for pos := range s.All() {
		out.rb.Add(pos + offset)
	}
	return out
}
