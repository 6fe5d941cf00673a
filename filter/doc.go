// Package filter parses and evaluates field predicates over XMAP records.
//
// An expression has three ':' separated parts, field, operator and value:
//
//	Confidence:ge:10.0
//	RefContigID:in:1,2,3
//	_meta_qry_matches:contains:1,2
//
// The value is parsed with the field's own parser when the predicate is
// built. The list operators (in, contains) split it on ',' first and parse
// every element.
//
// A Chain is the conjunction of its predicates. Its HistoryLines are the
// "# FILTER :" header lines of a filtered file; the xmap parser returns them
// as expressions, so a recorded chain can be rebuilt with Engine.ParseAll.
package filter
