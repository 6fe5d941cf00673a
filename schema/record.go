package schema

import (
	"fmt"

	"github.com/sauloal/opticalmapping/value"
)

// Record is one parsed XMAP alignment line, addressed by FieldID.
//
// Source fields are fixed when the record is built. Derived (meta) fields may
// be overwritten later through SetMeta.
type Record struct {
	vals [NumFields]value.Value
}

// Get returns the value of field id and whether it is present.
func (r *Record) Get(id FieldID) (value.Value, bool) {
	if !id.Valid() {
		return value.Value{}, false
	}
	v := r.vals[id]
	return v, v.IsValid()
}

// Value returns the value of field id, or the zero Value if it is absent.
func (r *Record) Value(id FieldID) value.Value {
	v, _ := r.Get(id)
	return v
}

// Has reports whether field id is present.
func (r *Record) Has(id FieldID) bool {
	_, ok := r.Get(id)
	return ok
}

// Float returns the numeric value of field id.
func (r *Record) Float(id FieldID) (float64, bool) {
	v, ok := r.Get(id)
	if !ok {
		return 0, false
	}
	return v.AsFloat64()
}

// SetMeta stores a derived field value.
func (r *Record) SetMeta(id FieldID, v value.Value) error {
	if !id.IsMeta() {
		return fmt.Errorf("%w: field id %d is not a derived field", ErrSchema, id)
	}
	r.vals[id] = v
	return nil
}

// Builder assembles a Record field by field. It is used by parsers; once
// Record is called the builder must not be reused.
type Builder struct {
	rec *Record
}

// NewBuilder returns a Builder for a fresh record.
func NewBuilder() *Builder {
	return &Builder{rec: &Record{}}
}

// Set stores the value of field id.
func (b *Builder) Set(id FieldID, v value.Value) *Builder {
	if id.Valid() {
		b.rec.vals[id] = v
	}
	return b
}

// Record returns the built record.
func (b *Builder) Record() *Record {
	rec := b.rec
	b.rec = nil
	return rec
}
