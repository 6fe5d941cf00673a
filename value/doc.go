// Package value provides the typed cell values stored in XMAP records.
//
// A Value is one of:
//
//   - Int: value.Int(141)
//   - Float: value.Float(6.65)
//   - String: value.String("4M2D2M")
//   - Bool: value.Bool(true)
//   - Set: value.Set(value.Int(1), value.Int(2))
//
// Values have a stable Key for use in inverted indices, a total Order for
// sorting index keys, and numeric-aware Equal/Compare used by filter
// operators.
package value
