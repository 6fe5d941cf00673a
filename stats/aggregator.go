package stats

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/sauloal/opticalmapping/alignment"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// GroupStats summarizes the alignments of one query contig against one
// reference contig.
type GroupStats struct {
	Ref     value.Value
	Qry     value.Value
	Members int

	// Gapped lengths span min(start) to max(end) over the group, internal
	// gaps included. No-gap lengths sum the span of every alignment.
	LenRefMatchGapped float64
	LenRefMatchNoGap  float64
	LenQryMatchGapped float64
	LenQryMatchNoGap  float64

	// NumQryMatches counts the distinct references the query aligns to
	// within the valid subset.
	NumQryMatches   int
	NumOrientations int

	// MaxConfidenceForQry is the best confidence of the query across every
	// reference; MaxConfidenceForQryChrom is the reference holding it.
	MaxConfidenceForQry        float64
	MaxConfidenceForQryChrom   value.Value
	IsMaxConfidenceForQryChrom bool
	QryMatches                 string

	ProportionSizesGapped float64
	ProportionSizesNoGap  float64
}

// Aggregator computes group statistics over a parsed dataset. It only reads
// the records and indices it is given.
type Aggregator struct {
	records []*schema.Record
	idx     *index.Index
	groups  *index.GroupIndex
}

// NewAggregator returns an aggregator over records. idx must index
// XmapEntryID and groups must hold the QryContigID:RefContigID and
// QryContigID:XmapEntryID pairs.
func NewAggregator(records []*schema.Record, idx *index.Index, groups *index.GroupIndex) (*Aggregator, error) {
	if !idx.Has(schema.XmapEntryID) {
		return nil, fmt.Errorf("%w: statistics need an XmapEntryID index", schema.ErrSchema)
	}
	for _, p := range []index.Pair{index.QryRef, index.QryEntry} {
		if !groups.Has(p) {
			return nil, fmt.Errorf("%w: statistics need group pair %d:%d", schema.ErrSchema, p.A, p.B)
		}
	}
	return &Aggregator{records: records, idx: idx, groups: groups}, nil
}

// Compute summarizes the group (ref, qry). members are the positions of the
// group to summarize; valid restricts the cross-reference lookups (matches
// and best confidence) to the positions currently under consideration.
//
// Compute is a pure function of its inputs.
func (a *Aggregator) Compute(ref, qry value.Value, members, valid *index.PositionSet) (GroupStats, error) {
	st := GroupStats{Ref: ref, Qry: qry, Members: members.Cardinality()}
	if members.IsEmpty() {
		return GroupStats{}, &GroupError{Ref: ref, Qry: qry, Reason: "no member records"}
	}

	var (
		refMin, qryMin = math.Inf(1), math.Inf(1)
		refMax, qryMax = math.Inf(-1), math.Inf(-1)
		orientations   = make(map[string]struct{}, 2)
	)
	for pos := range members.All() {
		rec := a.records[pos]

		rs, re, err := span(rec, schema.RefStartPos, schema.RefEndPos)
		if err != nil {
			return GroupStats{}, &GroupError{Ref: ref, Qry: qry, Reason: err.Error()}
		}
		qs, qe, err := span(rec, schema.QryStartPos, schema.QryEndPos)
		if err != nil {
			return GroupStats{}, &GroupError{Ref: ref, Qry: qry, Reason: err.Error()}
		}

		st.LenRefMatchNoGap += re - rs
		st.LenQryMatchNoGap += qe - qs
		refMin, refMax = min(refMin, rs), max(refMax, re)
		qryMin, qryMax = min(qryMin, qs), max(qryMax, qe)

		orientations[rec.Value(schema.Orientation).Key()] = struct{}{}
	}
	st.LenRefMatchGapped = refMax - refMin
	st.LenQryMatchGapped = qryMax - qryMin
	st.NumOrientations = len(orientations)

	matched := make(map[string]struct{})
	for _, r := range a.groups.Secondary(index.QryRef, qry) {
		if !index.Intersect(a.groups.Get(index.QryRef, qry, r), valid).IsEmpty() {
			matched[r.Key()] = struct{}{}
		}
	}
	st.NumQryMatches = len(matched)

	best, refs, ok := a.bestConfidence(qry, valid)
	if !ok {
		return GroupStats{}, &GroupError{Ref: ref, Qry: qry, Reason: "no valid alignment of the query"}
	}
	st.MaxConfidenceForQry = best.confidence
	st.MaxConfidenceForQryChrom = best.ref
	st.IsMaxConfidenceForQryChrom = value.Equal(best.ref, ref)
	st.QryMatches = refs

	if st.LenQryMatchGapped == 0 || st.LenQryMatchNoGap == 0 {
		return GroupStats{}, &GroupError{Ref: ref, Qry: qry, Reason: "zero query match length"}
	}
	st.ProportionSizesGapped = st.LenRefMatchGapped / st.LenQryMatchGapped
	st.ProportionSizesNoGap = st.LenRefMatchNoGap / st.LenQryMatchNoGap

	return st, nil
}

type candidate struct {
	confidence float64
	ref        value.Value
}

// bestConfidence scans every alignment of qry, across all references, that
// lies in valid. Ties on confidence go to the lowest reference. It also
// returns the sorted distinct references of those alignments, comma joined.
func (a *Aggregator) bestConfidence(qry value.Value, valid *index.PositionSet) (candidate, string, bool) {
	var (
		best  candidate
		found bool
		refs  []value.Value
		seen  = make(map[string]struct{})
	)
	// Entry IDs restart in every merged shard, so resolve them per query.
	for _, entry := range a.groups.Secondary(index.QryEntry, qry) {
		for pos := range a.groups.Get(index.QryEntry, qry, entry).All() {
			if !valid.Contains(pos) {
				continue
			}
			rec := a.records[pos]
			conf, ok := rec.Float(schema.Confidence)
			if !ok {
				continue
			}
			c := candidate{confidence: conf, ref: rec.Value(schema.RefContigID)}

			if !found || c.confidence > best.confidence ||
				(c.confidence == best.confidence && value.Order(c.ref, best.ref) < 0) {
				best = c
				found = true
			}
			if _, dup := seen[c.ref.Key()]; !dup {
				seen[c.ref.Key()] = struct{}{}
				refs = append(refs, c.ref)
			}
		}
	}

	slices.SortFunc(refs, value.Order)
	parts := make([]string, len(refs))
	for i, r := range refs {
		parts[i] = r.String()
	}
	return best, strings.Join(parts, ","), found
}

// span returns the (min, max) of the start and end fields of rec.
func span(rec *schema.Record, startField, endField schema.FieldID) (float64, float64, error) {
	s, ok := rec.Float(startField)
	if !ok {
		return 0, 0, fmt.Errorf("record has no numeric field %d", startField)
	}
	e, ok := rec.Float(endField)
	if !ok {
		return 0, 0, fmt.Errorf("record has no numeric field %d", endField)
	}
	return min(s, e), max(s, e), nil
}

type metaValue struct {
	id schema.FieldID
	v  value.Value
}

// Annotate writes the derived fields of rec: the group statistics of st, the
// decoded HitEnum and Alignment counts, and the proportions of the query
// length covered by the group. Nothing is written when decoding fails.
func (a *Aggregator) Annotate(rec *schema.Record, st GroupStats) error {
	qryLen, ok := rec.Float(schema.QryLen)
	if !ok || qryLen == 0 {
		return &GroupError{Ref: st.Ref, Qry: st.Qry, Reason: "zero query length"}
	}

	meta := []metaValue{
		{schema.IsMaxConfidenceForQryChrom, value.Bool(st.IsMaxConfidenceForQryChrom)},
		{schema.LenRefMatchGapped, value.Float(st.LenRefMatchGapped)},
		{schema.LenRefMatchNoGap, value.Float(st.LenRefMatchNoGap)},
		{schema.LenQryMatchGapped, value.Float(st.LenQryMatchGapped)},
		{schema.LenQryMatchNoGap, value.Float(st.LenQryMatchNoGap)},
		{schema.MaxConfidenceForQry, value.Float(st.MaxConfidenceForQry)},
		{schema.MaxConfidenceForQryChrom, st.MaxConfidenceForQryChrom},
		{schema.NumOrientations, value.Int(int64(st.NumOrientations))},
		{schema.NumQryMatches, value.Int(int64(st.NumQryMatches))},
		{schema.QryMatches, value.String(st.QryMatches)},
		{schema.ProportionSizesGapped, value.Float(st.ProportionSizesGapped)},
		{schema.ProportionSizesNoGap, value.Float(st.ProportionSizesNoGap)},
		{schema.ProportionQueryLenGapped, value.Float(st.LenQryMatchGapped / qryLen)},
		{schema.ProportionQueryLenNoGap, value.Float(st.LenQryMatchNoGap / qryLen)},
	}

	if code, ok := rec.Get(schema.HitEnum); ok {
		s, _ := code.AsString()
		hit, err := alignment.DecodeHitEnum(s)
		if err != nil {
			return err
		}
		meta = append(meta,
			metaValue{schema.CigarMatches, value.Int(int64(hit.Matches))},
			metaValue{schema.CigarInsertions, value.Int(int64(hit.Insertions))},
			metaValue{schema.CigarDeletions, value.Int(int64(hit.Deletions))},
		)
	}

	if pairs, ok := rec.Get(schema.Alignment); ok {
		s, _ := pairs.AsString()
		lc, err := alignment.DecodeLabelPairs(s)
		if err != nil {
			return err
		}
		meta = append(meta,
			metaValue{schema.AlignmentCountRefs, value.Int(int64(lc.RefLabels))},
			metaValue{schema.AlignmentCountQueries, value.Int(int64(lc.QryLabels))},
			metaValue{schema.AlignmentCountRefsCollapses, value.Int(int64(lc.RefCollapses))},
			metaValue{schema.AlignmentCountQueriesCollapses, value.Int(int64(lc.QryCollapses))},
		)
	}

	for _, m := range meta {
		if err := rec.SetMeta(m.id, m.v); err != nil {
			return err
		}
	}
	return nil
}
