package schema

// FieldID identifies an XMAP field. The set of fields is closed; a Registry
// maps a subset (normally all) of them to names, types and parsers.
type FieldID uint8

// Source fields, in XMAP column order.
const (
	XmapEntryID FieldID = iota
	QryContigID
	RefContigID
	QryStartPos
	QryEndPos
	RefStartPos
	RefEndPos
	Orientation
	Confidence
	HitEnum
	QryLen
	RefLen
	LabelChannel
	Alignment

	// Derived fields, written by the statistics aggregator.
	AlignmentCountQueries
	AlignmentCountQueriesCollapses
	AlignmentCountRefs
	AlignmentCountRefsCollapses
	CigarDeletions
	CigarInsertions
	CigarMatches
	IsMaxConfidenceForQryChrom
	LenQryMatchGapped
	LenQryMatchNoGap
	LenRefMatchGapped
	LenRefMatchNoGap
	MaxConfidenceForQry
	MaxConfidenceForQryChrom
	NumOrientations
	NumQryMatches
	QryMatches
	ProportionQueryLenGapped
	ProportionQueryLenNoGap
	ProportionSizesGapped
	ProportionSizesNoGap

	// NumFields is the number of known fields.
	NumFields
)

// MetaPrefix namespaces derived field names.
const MetaPrefix = "_meta_"

// IsMeta reports whether id is a derived field.
func (id FieldID) IsMeta() bool {
	return id >= AlignmentCountQueries && id < NumFields
}

// Valid reports whether id is a known field.
func (id FieldID) Valid() bool {
	return id < NumFields
}

// Default returns a registry of every XMAP field, source fields first.
func Default() *Registry {
	r, err := NewRegistry(xmapFields())
	if err != nil {
		panic(err) // the built-in table is static
	}
	return r
}

func xmapFields() []FieldSpec {
	return []FieldSpec{
		{XmapEntryID, "XmapEntryID", FieldTypeInt, ParseInt, "A unique line number for the data lines in the XMAP file. Note: For 2-color, the XmapEntryID will begin with the number 2."},

		{QryContigID, "QryContigID", FieldTypeInt, ParseInt, "Map ID of query map (Contig ID from .cmap file for query)"},
		{RefContigID, "RefContigID", FieldTypeInt, ParseInt, "Map ID of the reference map from the .cmap reference file (the .cmap file may contain multiple reference maps). Note: RefContigIDs must be integers, but they need not be sequential."},

		{QryStartPos, "QryStartPos", FieldTypeFloat, ParseFloat, "Coordinates of the first aligned label on the query map (Start position of hit on query map)"},
		{QryEndPos, "QryEndPos", FieldTypeFloat, ParseFloat, "Coordinates of the last aligned label on the query map (Stop position of hit on query map)"},
		{RefStartPos, "RefStartPos", FieldTypeFloat, ParseFloat, "Coordinates of the first aligned label on the reference or anchor map"},
		{RefEndPos, "RefEndPos", FieldTypeFloat, ParseFloat, "Coordinates of the last aligned label on the reference or anchor map"},

		{Orientation, "Orientation", FieldTypeString, ParseOrientation, "The relative orientation of the query map relative to the reference: forward (+) or reverse (-). The convention is that the reference is always positive orientation, so if the query aligns in reverse, it is shown as having negative (-) orientation. Note: For 2-color, the orientation will be the same."},
		{Confidence, "Confidence", FieldTypeFloat, ParseFloat, "Statistical Confidence of result: Negative Log10 of p-value of alignment (without Bonferroni Correction for multiple experiments). Note: For 2-color, the confidence number is the combined confidence of the alignment for both colors."},
		{HitEnum, "HitEnum", FieldTypeString, ParseHitEnum, "Pseudo-CIGAR string representing matches (M), insertions (I), or deletions (D) of label sites with respect to the reference or anchor map. Count begins at the leftmost anchor label of that color. Note: When 2 or more anchor sites resolve into a single query site, only the rightmost anchor site is shown matched with the query site and the leftmost associated anchor sites are shown as deletions."},
		{QryLen, "QryLen", FieldTypeFloat, ParseFloat, "Length of query map from _q.cmap."},
		{RefLen, "RefLen", FieldTypeFloat, ParseFloat, "Length of reference map from _r.cmap."},
		{LabelChannel, "LabelChannel", FieldTypeInt, ParseInt, "Color channel of alignment from cmap files. For 1-color data, LabelChannel is 1. For 2-color data: Using -usecolor N, the LabelChannel is N (N = 1 or 2), and there is only one XMAP entry per alignment for the color channel specified by N. Without -usecolor N, LabelChannel is 1 or 2. In this case, there are two XMAP entries (two lines), one for each color channel."},
		{Alignment, "Alignment", FieldTypeString, ParseAlignment, `Indices of the aligned site ID pairs. (When the query orientation is reversed ("-"), the query IDs are in descending order.) Count begins at the leftmost anchor label of that color. Note: When two sites in the reference align with the same site in the query, it is an indication that the two sites in the reference failed to resolve. Alignment provides a view of aligned pairs which would normally be ignored by HitEnum (CIGAR string).`},

		{AlignmentCountQueries, MetaPrefix + "alignment_count_queries", FieldTypeInt, ParseInt, "Number of query labels in alignment"},
		{AlignmentCountQueriesCollapses, MetaPrefix + "alignment_count_queries_colapses", FieldTypeInt, ParseInt, "Number of query label collapses in alignment. A collapse happens when a label matches more than once a reference label"},
		{AlignmentCountRefs, MetaPrefix + "alignment_count_refs", FieldTypeInt, ParseInt, "Number of reference labels in alignment"},
		{AlignmentCountRefsCollapses, MetaPrefix + "alignment_count_refs_colapses", FieldTypeInt, ParseInt, "Number of reference label collapses in alignment. A collapse happens when a label matches more than once a query label"},

		{CigarDeletions, MetaPrefix + "cigar_deletions", FieldTypeInt, ParseInt, "Number of deleted labels in CIGAR string"},
		{CigarInsertions, MetaPrefix + "cigar_insertions", FieldTypeInt, ParseInt, "Number of inserted labels in CIGAR string"},
		{CigarMatches, MetaPrefix + "cigar_matches", FieldTypeInt, ParseInt, "Number of match labels in CIGAR string"},

		{IsMaxConfidenceForQryChrom, MetaPrefix + "is_max_confidence_for_qry_chrom", FieldTypeBool, ParseBool, "Whether the current RefContigID is the highest confidence match for this QryContigID"},

		{LenQryMatchGapped, MetaPrefix + "len_qry_match_gapped", FieldTypeFloat, ParseFloat, "Length of the query match including gaps"},
		{LenQryMatchNoGap, MetaPrefix + "len_qry_match_no_gap", FieldTypeFloat, ParseFloat, "Length of the query match excluding gaps"},
		{LenRefMatchGapped, MetaPrefix + "len_ref_match_gapped", FieldTypeFloat, ParseFloat, "Length of the reference match including gaps"},
		{LenRefMatchNoGap, MetaPrefix + "len_ref_match_no_gap", FieldTypeFloat, ParseFloat, "Length of the reference match excluding gaps"},

		{MaxConfidenceForQry, MetaPrefix + "max_confidence_for_qry", FieldTypeFloat, ParseFloat, "What is the highest confidence for this QryContigID"},
		{MaxConfidenceForQryChrom, MetaPrefix + "max_confidence_for_qry_chrom", FieldTypeInt, ParseInt, "Which RefContigID is the highest confidence for this QryContigID"},

		{NumOrientations, MetaPrefix + "num_orientations", FieldTypeInt, ParseInt, "Number of orientations for this QryContigID"},
		{NumQryMatches, MetaPrefix + "num_qry_matches", FieldTypeInt, ParseInt, "Number of RefContigID matches for this QryContigID"},
		{QryMatches, MetaPrefix + "qry_matches", FieldTypeString, ParseString, "Which chromosomes this QryContigID matches"},

		{ProportionQueryLenGapped, MetaPrefix + "proportion_query_len_gapped", FieldTypeFloat, ParseFloat, "_meta_len_qry_match_gapped / QryLen"},
		{ProportionQueryLenNoGap, MetaPrefix + "proportion_query_len_no_gap", FieldTypeFloat, ParseFloat, "_meta_len_qry_match_no_gap / QryLen"},
		{ProportionSizesGapped, MetaPrefix + "proportion_sizes_gapped", FieldTypeFloat, ParseFloat, "_meta_len_ref_match_gapped / _meta_len_qry_match_gapped"},
		{ProportionSizesNoGap, MetaPrefix + "proportion_sizes_no_gap", FieldTypeFloat, ParseFloat, "_meta_len_ref_match_no_gap / _meta_len_qry_match_no_gap"},
	}
}
