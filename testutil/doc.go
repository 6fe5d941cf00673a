// Package testutil provides testing utilities for opticalmapping.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random generator and helpers for producing synthetic
// XMAP alignments, either as typed records or as XMAP file text.
//
// # Synthetic Alignments
//
//	rng := testutil.NewRNG(seed)
//	rows := rng.Alignments(100, 4, 20) // 100 lines, 4 references, 20 queries
//	text := testutil.XMAP(rows)
//	recs := testutil.Records(rows)
//
// Keys repeat on purpose: with few references and queries every
// (reference, query) group holds several alignments.
package testutil
