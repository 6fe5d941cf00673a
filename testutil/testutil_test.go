package testutil

import (
	"strings"
	"testing"

	"github.com/sauloal/opticalmapping/alignment"
	"github.com/sauloal/opticalmapping/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlignments(t *testing.T) {
	rng := NewRNG(4711)

	rows := rng.Alignments(60, 3, 10)
	require.Len(t, rows, 60)

	for i, a := range rows {
		assert.Equal(t, int64(i+1), a.EntryID)
		assert.GreaterOrEqual(t, a.RefContigID, int64(1))
		assert.LessOrEqual(t, a.RefContigID, int64(3))
		assert.GreaterOrEqual(t, a.QryContigID, int64(1))
		assert.LessOrEqual(t, a.QryContigID, int64(10))
		assert.LessOrEqual(t, a.QryStartPos, a.QryEndPos)
		assert.LessOrEqual(t, a.RefStartPos, a.RefEndPos)
		assert.Contains(t, []string{"+", "-"}, a.Orientation)

		hit, err := alignment.DecodeHitEnum(a.HitEnum)
		require.NoError(t, err, a.HitEnum)
		assert.Positive(t, hit.Matches)

		_, err = alignment.DecodeLabelPairs(a.Alignment)
		require.NoError(t, err, a.Alignment)

		assert.Len(t, a.Cells(), len(SourceNames))
	}
}

func TestReset(t *testing.T) {
	rng := NewRNG(4711)
	a := rng.Alignments(5, 2, 2)

	rng.Reset()
	b := rng.Alignments(5, 2, 2)

	assert.Equal(t, a, b)
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestXMAP(t *testing.T) {
	rows := NewRNG(1).Alignments(3, 2, 2)
	text := XMAP(rows)

	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	require.Len(t, lines, 6+3)
	assert.True(t, strings.HasPrefix(lines[4], "#h XmapEntryID\t"))
	assert.True(t, strings.HasPrefix(lines[5], "#f int\t"))
	assert.Len(t, strings.Split(lines[6], "\t"), len(SourceNames))
}

func TestRecord(t *testing.T) {
	a := NewRNG(2).Alignments(1, 1, 1)[0]
	rec := a.Record()

	reg := schema.Default()
	for i, cell := range a.Cells() {
		spec, ok := reg.Lookup(SourceNames[i])
		require.True(t, ok)

		want, err := reg.Parse(spec.ID, cell)
		require.NoError(t, err)
		assert.Equal(t, want, rec.Value(spec.ID), spec.Name)
	}
}
