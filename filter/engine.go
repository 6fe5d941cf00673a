package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// Engine builds predicates against the fields of a registry.
type Engine struct {
	reg *schema.Registry
	ops map[Operator]OperatorSpec
}

// NewEngine returns an engine with the built-in operators.
func NewEngine(reg *schema.Registry) *Engine {
	e := &Engine{
		reg: reg,
		ops: make(map[Operator]OperatorSpec),
	}
	for _, op := range builtinOperators() {
		e.ops[op.Name] = op
	}
	return e
}

// Registry returns the registry predicates are resolved against.
func (e *Engine) Registry() *schema.Registry { return e.reg }

// Operators returns every operator sorted by name.
func (e *Engine) Operators() []OperatorSpec {
	out := make([]OperatorSpec, 0, len(e.ops))
	for _, op := range e.ops {
		out = append(out, op)
	}
	slices.SortFunc(out, func(a, b OperatorSpec) int {
		return strings.Compare(string(a.Name), string(b.Name))
	})
	return out
}

// Operator returns the named operator.
func (e *Engine) Operator(name Operator) (OperatorSpec, bool) {
	op, ok := e.ops[name]
	return op, ok
}

// Parse builds a predicate from a "field:operator:value" expression. The
// literal is parsed with the field's parser, or element by element for list
// operators, so a literal the field cannot hold fails here rather than at
// evaluation.
func (e *Engine) Parse(expr string) (Predicate, error) {
	parts := strings.Split(expr, ":")
	if len(parts) != 3 {
		return Predicate{}, fmt.Errorf("%w: %q has %d parts, want <field>:<operator>:<value>", ErrBadFilterSyntax, expr, len(parts))
	}
	fieldName := strings.TrimSpace(parts[0])
	opName := Operator(strings.TrimSpace(parts[1]))
	literal := strings.TrimSpace(parts[2])

	spec, ok := e.reg.Lookup(fieldName)
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %q in filter %q", ErrUnknownField, fieldName, expr)
	}
	op, ok := e.ops[opName]
	if !ok {
		return Predicate{}, fmt.Errorf("%w: %q in filter %q", ErrUnknownOperator, opName, expr)
	}

	var (
		lit value.Value
		err error
	)
	if op.List {
		lit, err = schema.ParseList(spec.Parse, literal, ListSeparator)
		if err != nil {
			err = &schema.ParseError{Field: spec.Name, Input: literal, Err: err}
		}
	} else {
		lit, err = e.reg.Parse(spec.ID, literal)
	}
	if err != nil {
		return Predicate{}, fmt.Errorf("filter %q: %w", expr, err)
	}

	return Predicate{
		Field:     spec.ID,
		FieldName: spec.Name,
		Op:        op.Name,
		Literal:   literal,
		Value:     lit,
		eval:      op.eval,
	}, nil
}

// ParseAll parses every expression into a chain.
func (e *Engine) ParseAll(exprs []string) (Chain, error) {
	chain := make(Chain, 0, len(exprs))
	for _, expr := range exprs {
		p, err := e.Parse(expr)
		if err != nil {
			return nil, err
		}
		chain = append(chain, p)
	}
	return chain, nil
}
