package filter

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
	"github.com/sauloal/opticalmapping/xmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(id schema.FieldID, v value.Value) *schema.Record {
	return schema.NewBuilder().Set(id, v).Record()
}

func TestParse_ConfidenceGE(t *testing.T) {
	e := NewEngine(schema.Default())

	p, err := e.Parse("Confidence:ge:10.0")
	require.NoError(t, err)
	assert.Equal(t, schema.Confidence, p.Field)
	assert.Equal(t, OpGreaterEqual, p.Op)
	assert.Equal(t, value.Float(10), p.Value)

	var got []bool
	for _, c := range []float64{5.0, 10.0, 15.0} {
		got = append(got, p.Matches(rec(schema.Confidence, value.Float(c))))
	}
	assert.Equal(t, []bool{false, true, true}, got)
}

func TestParse_In(t *testing.T) {
	e := NewEngine(schema.Default())

	p, err := e.Parse("RefContigID:in:1,2,3")
	require.NoError(t, err)
	assert.Equal(t, value.Set(value.Int(1), value.Int(2), value.Int(3)), p.Value)

	for id := int64(0); id <= 5; id++ {
		want := id >= 1 && id <= 3
		assert.Equal(t, want, p.Matches(rec(schema.RefContigID, value.Int(id))), "RefContigID %d", id)
	}

	_, err = e.Parse("RefContigID:in:1,two,3")
	require.Error(t, err)
	var pe *schema.ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "RefContigID", pe.Field)

	_, err = e.Parse("RefContigID:eq:one")
	require.True(t, errors.As(err, &pe))
}

func TestOperators(t *testing.T) {
	e := NewEngine(schema.Default())

	tests := []struct {
		expr string
		v    value.Value
		want bool
	}{
		{"QryContigID:eq:141", value.Int(141), true},
		{"QryContigID:eq:141", value.Int(142), false},
		{"QryContigID:ne:141", value.Int(142), true},
		{"QryContigID:lt:10", value.Int(9), true},
		{"QryContigID:lt:10", value.Int(10), false},
		{"QryContigID:le:10", value.Int(10), true},
		{"QryContigID:gt:10", value.Int(10), false},
		{"QryContigID:gt:10", value.Int(11), true},
		{"Orientation:eq:-", value.String("-"), true},
		{"Orientation:lt:-", value.String("+"), true},
		{"_meta_is_max_confidence_for_qry_chrom:eq:True", value.Bool(true), true},
		{"_meta_is_max_confidence_for_qry_chrom:eq:f", value.Bool(true), false},
		{"_meta_qry_matches:contains:1", value.String("1,2"), true},
		{"_meta_qry_matches:contains:2,1", value.String("1,2"), true},
		{"_meta_qry_matches:contains:3", value.String("1,2"), false},
		{"RefContigID:contains:4", value.Int(4), true},
		{"RefContigID:contains:4,5", value.Int(4), false},
		{"Orientation:in:+,-", value.String("-"), true},
	}

	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			p, err := e.Parse(tt.expr)
			require.NoError(t, err)
			spec, _ := e.Registry().Lookup(p.FieldName)
			assert.Equal(t, tt.want, p.Matches(rec(spec.ID, tt.v)))
		})
	}
}

func TestParse_Errors(t *testing.T) {
	e := NewEngine(schema.Default())

	tests := []struct {
		expr string
		is   error
	}{
		{"Confidence:ge", ErrBadFilterSyntax},
		{"Confidence:ge:1:2", ErrBadFilterSyntax},
		{"", ErrBadFilterSyntax},
		{"Bogus:ge:1", ErrUnknownField},
		{"Confidence:approx:1", ErrUnknownOperator},
	}
	for _, tt := range tests {
		_, err := e.Parse(tt.expr)
		assert.ErrorIs(t, err, tt.is, tt.expr)
	}
}

func TestPredicate_MissingField(t *testing.T) {
	p, err := NewEngine(schema.Default()).Parse("Confidence:ne:1")
	require.NoError(t, err)

	assert.False(t, p.Matches(rec(schema.QryContigID, value.Int(1))))
	assert.False(t, Predicate{}.Matches(rec(schema.QryContigID, value.Int(1))))
}

func TestChain(t *testing.T) {
	e := NewEngine(schema.Default())

	chain, err := e.ParseAll([]string{"Confidence:ge:10.0", "RefContigID:in:1,2"})
	require.NoError(t, err)

	r := schema.NewBuilder().
		Set(schema.Confidence, value.Float(12)).
		Set(schema.RefContigID, value.Int(2)).
		Record()
	assert.True(t, chain.Matches(r))

	r = schema.NewBuilder().
		Set(schema.Confidence, value.Float(12)).
		Set(schema.RefContigID, value.Int(3)).
		Record()
	assert.False(t, chain.Matches(r))

	assert.True(t, Chain(nil).Matches(r))

	assert.Equal(t, []string{"Confidence:ge:10.0", "RefContigID:in:1,2"}, chain.Strings())
	assert.Equal(t, "_Confidence_ge_10.0_RefContigID_in_1_2", chain.Suffix())

	_, err = e.ParseAll([]string{"Confidence:ge:10.0", "nope"})
	assert.ErrorIs(t, err, ErrBadFilterSyntax)
}

func TestHistoryLine_RoundTrip(t *testing.T) {
	reg := schema.Default()
	e := NewEngine(reg)

	chain, err := e.ParseAll([]string{"Confidence:ge:10.0", "RefContigID:in:1,2,3"})
	require.NoError(t, err)

	assert.Equal(t, "# FILTER : Confidence                             :  ge : 10.0", chain[0].HistoryLine())

	text := strings.Join(chain.HistoryLines(), "\n") + "\n#h XmapEntryID\n"
	res, err := xmap.Parse(context.Background(), reg, strings.NewReader(text))
	require.NoError(t, err)

	again, err := e.ParseAll(res.Header.Filters)
	require.NoError(t, err)
	assert.Equal(t, chain.Strings(), again.Strings())
	for i := range chain {
		assert.Equal(t, chain[i].Value, again[i].Value)
	}
}

func TestEngine_Operators(t *testing.T) {
	ops := NewEngine(schema.Default()).Operators()

	var names []string
	for _, op := range ops {
		names = append(names, string(op.Name))
		assert.NotEmpty(t, op.Help)
	}
	assert.Equal(t, []string{"contains", "eq", "ge", "gt", "in", "le", "lt", "ne"}, names)

	op, ok := NewEngine(schema.Default()).Operator(OpIn)
	require.True(t, ok)
	assert.True(t, op.List)
}
