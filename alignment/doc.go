// Package alignment decodes the two compact alignment encodings carried by
// XMAP records.
//
// HitEnum is a run-length pseudo-CIGAR over matches (M), insertions (I) and
// deletions (D) of label sites:
//
//	counts, err := alignment.DecodeHitEnum("4M2D2M")
//	// counts == HitCounts{Matches: 6, Deletions: 2}
//
// Alignment is a list of aligned (reference label, query label) pairs:
//
//	c, err := alignment.DecodeLabelPairs(`"(1,2)(2,2)(3,3)"`)
//	// c.RefLabels == 3, c.QryLabels == 2, c.QryCollapses == 2
//
// Both decoders validate before decoding and fail with ErrMalformedCode; a
// partially decoded count is never returned.
package alignment
