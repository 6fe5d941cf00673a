package value

import (
	"encoding/json"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	tests := []struct {
		k        Kind
		expected string
	}{
		{KindInvalid, "invalid"},
		{KindNull, "null"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindString, "string"},
		{KindBool, "bool"},
		{KindSet, "set"},
		{Kind(99), "invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.k.String())
	}
}

func TestValueString(t *testing.T) {
	tests := []struct {
		name     string
		v        Value
		expected string
	}{
		{"Int", Int(141), "141"},
		{"Float", Float(528400.6), "528400.6"},
		{"IntegralFloat", Float(10672), "10672.0"},
		{"String", String("4M2D2M"), "4M2D2M"},
		{"True", Bool(true), "True"},
		{"False", Bool(false), "False"},
		{"Set", Set(Int(3), Int(1), Int(2)), "1,2,3"},
		{"Invalid", Value{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.v.String())
		})
	}
}

func TestValueKey(t *testing.T) {
	assert.Equal(t, "i:1", Int(1).Key())
	assert.Equal(t, "s:+", String("+").Key())
	assert.Equal(t, "b:1", Bool(true).Key())
	assert.NotEqual(t, Int(1).Key(), Float(1).Key())
	assert.Equal(t, Set(Int(2), Int(1)).Key(), Set(Int(1), Int(2), Int(2)).Key())
}

func TestSetDeduplicatesAndSorts(t *testing.T) {
	s := Set(Int(3), Int(1), Int(3), Int(2))
	members, ok := s.Members()
	require.True(t, ok)
	assert.Equal(t, []Value{Int(1), Int(2), Int(3)}, members)
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(Int(10), Float(10)))
	assert.True(t, Equal(String("a"), String("a")))
	assert.False(t, Equal(String("1"), Int(1)))
	assert.True(t, Equal(Bool(false), Bool(false)))
	assert.True(t, Equal(Set(Int(1), Int(2)), Set(Int(2), Int(1))))
	assert.False(t, Equal(Set(Int(1)), Set(Int(1), Int(2))))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Value
		want   int
		wantOK bool
	}{
		{"IntLess", Int(1), Int(2), -1, true},
		{"FloatGreater", Float(15), Float(10), 1, true},
		{"Mixed", Int(10), Float(10), 0, true},
		{"String", String("a"), String("b"), -1, true},
		{"Bool", Bool(true), Bool(false), 1, true},
		{"StringVsInt", String("1"), Int(1), 0, false},
		{"Set", Set(Int(1)), Set(Int(1)), 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Compare(tt.a, tt.b)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestOrderIsTotal(t *testing.T) {
	vs := []Value{String("b"), Int(2), Float(1.5), String("a"), Int(1), Bool(true)}
	slices.SortFunc(vs, Order)
	assert.Equal(t, []Value{Int(1), Float(1.5), Int(2), String("a"), String("b"), Bool(true)}, vs)
}

func TestIn(t *testing.T) {
	s := Set(Int(1), Int(2), Int(3))
	assert.True(t, In(Int(2), s))
	assert.False(t, In(Int(4), s))
	assert.False(t, In(Int(1), Int(1)))
}

func TestValueJSON(t *testing.T) {
	for _, v := range []Value{Int(7), Float(2.5), String("+"), Bool(true), Set(Int(1), Int(2))} {
		data, err := json.Marshal(v)
		require.NoError(t, err)

		var got Value
		require.NoError(t, json.Unmarshal(data, &got))
		assert.True(t, Equal(v, got), "round trip of %s", v)
	}
}
