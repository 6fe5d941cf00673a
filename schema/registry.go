package schema

import (
	"fmt"
	"strings"

	"github.com/sauloal/opticalmapping/value"
)

const (
	helpWidth         = 80
	helpIndent        = 53
	helpCommentIndent = 42
)

// FieldSpec declares one field: its identity, declared type, cell parser and
// documentation.
type FieldSpec struct {
	ID    FieldID
	Name  string
	Type  FieldType
	Parse ParseFunc
	Help  string
}

// IsMeta reports whether the field is derived rather than read from the
// alignment tool output.
func (s FieldSpec) IsMeta() bool { return s.ID.IsMeta() }

// Registry is the immutable lookup structure derived from an ordered field
// list. Build one at startup and pass it to every component that parses,
// indexes or filters records.
type Registry struct {
	specs       []FieldSpec
	ordinals    map[string]int
	byID        [NumFields]int
	help        map[string]string
	commentHelp map[string]string
}

// NewRegistry builds a Registry from specs. Field order defines column order
// on output. Duplicate names or IDs, unknown IDs and missing parsers fail with
// ErrSchema.
func NewRegistry(specs []FieldSpec) (*Registry, error) {
	r := &Registry{
		specs:       make([]FieldSpec, len(specs)),
		ordinals:    make(map[string]int, len(specs)),
		help:        make(map[string]string, len(specs)),
		commentHelp: make(map[string]string, len(specs)),
	}
	for i := range r.byID {
		r.byID[i] = -1
	}

	for pos, spec := range specs {
		if spec.Name == "" {
			return nil, fmt.Errorf("%w: field %d has no name", ErrSchema, pos)
		}
		if !spec.ID.Valid() {
			return nil, fmt.Errorf("%w: field %q has unknown id %d", ErrSchema, spec.Name, spec.ID)
		}
		if spec.Parse == nil {
			return nil, fmt.Errorf("%w: field %q has no parser", ErrSchema, spec.Name)
		}
		if _, dup := r.ordinals[spec.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate field name %q", ErrSchema, spec.Name)
		}
		if r.byID[spec.ID] >= 0 {
			return nil, fmt.Errorf("%w: field %q reuses id of %q", ErrSchema, spec.Name, r.specs[r.byID[spec.ID]].Name)
		}

		r.specs[pos] = spec
		r.ordinals[spec.Name] = pos
		r.byID[spec.ID] = pos

		lines := wrap(spec.Help, helpWidth)
		r.help[spec.Name] = strings.Join(lines, "\n"+strings.Repeat(" ", helpIndent))
		r.commentHelp[spec.Name] = strings.Join(lines, "\n#"+strings.Repeat(" ", helpCommentIndent))
	}

	return r, nil
}

// Len returns the number of fields.
func (r *Registry) Len() int { return len(r.specs) }

// Fields returns the field specs in column order.
func (r *Registry) Fields() []FieldSpec {
	out := make([]FieldSpec, len(r.specs))
	copy(out, r.specs)
	return out
}

// Names returns the field names in column order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.specs))
	for i, s := range r.specs {
		out[i] = s.Name
	}
	return out
}

// Lookup returns the spec of the named field.
func (r *Registry) Lookup(name string) (FieldSpec, bool) {
	pos, ok := r.ordinals[name]
	if !ok {
		return FieldSpec{}, false
	}
	return r.specs[pos], true
}

// Spec returns the spec registered for id.
func (r *Registry) Spec(id FieldID) (FieldSpec, bool) {
	if !id.Valid() || r.byID[id] < 0 {
		return FieldSpec{}, false
	}
	return r.specs[r.byID[id]], true
}

// Name returns the name registered for id, or "" if id is not registered.
func (r *Registry) Name(id FieldID) string {
	s, _ := r.Spec(id)
	return s.Name
}

// Ordinal returns the column position of the named field.
func (r *Registry) Ordinal(name string) (int, bool) {
	pos, ok := r.ordinals[name]
	return pos, ok
}

// Type returns the declared type of the named field.
func (r *Registry) Type(name string) (FieldType, bool) {
	s, ok := r.Lookup(name)
	return s.Type, ok
}

// Help returns the wrapped help text of the named field, indented for a
// field listing.
func (r *Registry) Help(name string) string { return r.help[name] }

// CommentHelp returns the wrapped help text of the named field, with
// continuation lines prefixed by '#' for embedding in file headers.
func (r *Registry) CommentHelp(name string) string { return r.commentHelp[name] }

// Parse parses s with the parser of id.
func (r *Registry) Parse(id FieldID, s string) (value.Value, error) {
	spec, ok := r.Spec(id)
	if !ok {
		return value.Value{}, fmt.Errorf("%w: field id %d is not registered", ErrSchema, id)
	}
	v, err := spec.Parse(s)
	if err != nil {
		return value.Value{}, &ParseError{Field: spec.Name, Input: s, Err: err}
	}
	return v, nil
}

// wrap breaks text into lines of at most width columns on word boundaries.
// Words longer than width get a line of their own.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var (
		lines []string
		line  strings.Builder
	)
	for _, w := range words {
		if line.Len() > 0 && line.Len()+1+len(w) > width {
			lines = append(lines, line.String())
			line.Reset()
		}
		if line.Len() > 0 {
			line.WriteByte(' ')
		}
		line.WriteString(w)
	}
	return append(lines, line.String())
}
