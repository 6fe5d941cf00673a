// Package stats derives per-group statistics from parsed XMAP records.
//
// A group is the set of alignments of one query contig against one reference
// contig. Some statistics look beyond the group: the best confidence of a
// query is taken across every reference it aligns to, restricted to the
// positions the caller considers valid (all of them when augmenting, the
// filter survivors when filtering).
//
// Ties on best confidence are broken by the lowest reference contig ID.
// Requests over empty groups, or that would divide by a zero length, fail
// with ErrEmptyGroup instead of producing NaN ratios.
package stats
