package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/sauloal/opticalmapping/alignment"
	"github.com/sauloal/opticalmapping/value"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldTypeString(t *testing.T) {
	tests := []struct {
		ft       FieldType
		expected string
	}{
		{FieldTypeInt, "int"},
		{FieldTypeFloat, "float"},
		{FieldTypeString, "string"},
		{FieldTypeBool, "bool"},
		{FieldType(99), "invalid"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, tt.ft.String())

		if tt.ft != FieldType(99) {
			got, err := ParseFieldType(" " + tt.expected + " ")
			require.NoError(t, err)
			assert.Equal(t, tt.ft, got)
		}
	}

	_, err := ParseFieldType("double")
	assert.ErrorIs(t, err, ErrSchema)
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()

	assert.Equal(t, int(NumFields), r.Len())

	names := r.Names()
	assert.Equal(t, "XmapEntryID", names[0])
	assert.Equal(t, "Alignment", names[13])
	assert.Equal(t, "_meta_proportion_sizes_no_gap", names[len(names)-1])

	for i, spec := range r.Fields() {
		pos, ok := r.Ordinal(spec.Name)
		require.True(t, ok)
		assert.Equal(t, i, pos)
		assert.Equal(t, spec.Name, r.Name(spec.ID))
		assert.Equal(t, strings.HasPrefix(spec.Name, MetaPrefix), spec.IsMeta(), spec.Name)
	}

	ft, ok := r.Type("Orientation")
	require.True(t, ok)
	assert.Equal(t, FieldTypeString, ft)

	_, ok = r.Lookup("NoSuchField")
	assert.False(t, ok)
}

func TestNewRegistry_Duplicates(t *testing.T) {
	_, err := NewRegistry([]FieldSpec{
		{XmapEntryID, "XmapEntryID", FieldTypeInt, ParseInt, ""},
		{QryContigID, "XmapEntryID", FieldTypeInt, ParseInt, ""},
	})
	assert.ErrorIs(t, err, ErrSchema)

	_, err = NewRegistry([]FieldSpec{
		{XmapEntryID, "A", FieldTypeInt, ParseInt, ""},
		{XmapEntryID, "B", FieldTypeInt, ParseInt, ""},
	})
	assert.ErrorIs(t, err, ErrSchema)

	_, err = NewRegistry([]FieldSpec{{NumFields, "A", FieldTypeInt, ParseInt, ""}})
	assert.ErrorIs(t, err, ErrSchema)

	_, err = NewRegistry([]FieldSpec{{XmapEntryID, "A", FieldTypeInt, nil, ""}})
	assert.ErrorIs(t, err, ErrSchema)
}

func TestNewRegistry_Deterministic(t *testing.T) {
	a, err := NewRegistry(xmapFields())
	require.NoError(t, err)
	b, err := NewRegistry(xmapFields())
	require.NoError(t, err)

	assert.Equal(t, a.Names(), b.Names())
	for _, n := range a.Names() {
		assert.Equal(t, a.Help(n), b.Help(n))
		assert.Equal(t, a.CommentHelp(n), b.CommentHelp(n))
	}
}

func TestHelpWrapping(t *testing.T) {
	r := Default()

	help := r.Help("HitEnum")
	lines := strings.Split(help, "\n")
	require.Greater(t, len(lines), 1)
	for i, l := range lines {
		if i > 0 {
			assert.True(t, strings.HasPrefix(l, strings.Repeat(" ", 53)))
			l = strings.TrimLeft(l, " ")
		}
		assert.LessOrEqual(t, len(l), 80)
	}

	comment := r.CommentHelp("HitEnum")
	for _, l := range strings.Split(comment, "\n")[1:] {
		assert.True(t, strings.HasPrefix(l, "#"+strings.Repeat(" ", 42)))
	}

	assert.Equal(t, "Length of query map from _q.cmap.", r.Help("QryLen"))
}

func TestParsers(t *testing.T) {
	r := Default()

	tests := []struct {
		id    FieldID
		input string
		want  value.Value
	}{
		{XmapEntryID, "1", value.Int(1)},
		{QryStartPos, "528400.6", value.Float(528400.6)},
		{RefStartPos, "10672", value.Float(10672)},
		{Orientation, "-", value.String("-")},
		{HitEnum, "4M2D2M", value.String("4M2D2M")},
		{Alignment, `"(1,34)(2,34)"`, value.String("(1,34)(2,34)")},
		{IsMaxConfidenceForQryChrom, "True", value.Bool(true)},
		{IsMaxConfidenceForQryChrom, "f", value.Bool(false)},
		{QryMatches, "1,2", value.String("1,2")},
	}

	for _, tt := range tests {
		t.Run(r.Name(tt.id)+"/"+tt.input, func(t *testing.T) {
			got, err := r.Parse(tt.id, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsers_Errors(t *testing.T) {
	r := Default()

	_, err := r.Parse(XmapEntryID, "1.5")
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "XmapEntryID", pe.Field)
	assert.Equal(t, "1.5", pe.Input)

	_, err = r.Parse(Orientation, "?")
	assert.ErrorIs(t, err, alignment.ErrMalformedCode)

	_, err = r.Parse(HitEnum, "4X")
	assert.ErrorIs(t, err, alignment.ErrMalformedCode)

	_, err = r.Parse(Alignment, "(1,a)")
	assert.ErrorIs(t, err, alignment.ErrMalformedCode)

	_, err = r.Parse(IsMaxConfidenceForQryChrom, "maybe")
	assert.Error(t, err)
}

func TestParseList(t *testing.T) {
	v, err := ParseList(ParseInt, "3,1,2,1", ",")
	require.NoError(t, err)
	assert.Equal(t, value.Set(value.Int(1), value.Int(2), value.Int(3)), v)

	_, err = ParseList(ParseInt, "1,x", ",")
	assert.Error(t, err)
}

func TestRecord(t *testing.T) {
	rec := NewBuilder().
		Set(RefContigID, value.Int(1)).
		Set(Confidence, value.Float(6.65)).
		Record()

	v, ok := rec.Get(RefContigID)
	require.True(t, ok)
	assert.Equal(t, value.Int(1), v)

	f, ok := rec.Float(Confidence)
	require.True(t, ok)
	assert.InDelta(t, 6.65, f, 1e-12)

	assert.False(t, rec.Has(QryContigID))
	_, ok = rec.Get(NumFields)
	assert.False(t, ok)

	assert.ErrorIs(t, rec.SetMeta(RefContigID, value.Int(2)), ErrSchema)
	assert.Equal(t, value.Int(1), rec.Value(RefContigID))

	require.NoError(t, rec.SetMeta(NumQryMatches, value.Int(3)))
	assert.Equal(t, value.Int(3), rec.Value(NumQryMatches))
}
