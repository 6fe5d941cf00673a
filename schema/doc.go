// Package schema is the field schema registry for XMAP alignment records.
//
// The set of fields is a closed enumeration (FieldID). A Registry binds each
// field to a name, a declared type tag, a parser that converts and validates
// cell text, and documentation. Default returns the registry for the Bionano
// XMAP format including the derived "_meta_" fields:
//
//	reg := schema.Default()
//	spec, _ := reg.Lookup("Confidence")
//	v, err := reg.Parse(spec.ID, "6.65")
//
// Records are fixed-shape and addressed by FieldID, never by free-form
// string keys.
package schema
