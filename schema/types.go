package schema

import (
	"fmt"
	"strings"
)

// FieldType is the declared type tag of an XMAP column, as written on the
// "#f" header line.
type FieldType uint8

const (
	FieldTypeInvalid FieldType = iota
	FieldTypeInt
	FieldTypeFloat
	FieldTypeString
	FieldTypeBool
)

// String returns the type tag as spelled in XMAP headers.
func (t FieldType) String() string {
	switch t {
	case FieldTypeInt:
		return "int"
	case FieldTypeFloat:
		return "float"
	case FieldTypeString:
		return "string"
	case FieldTypeBool:
		return "bool"
	default:
		return "invalid"
	}
}

// ParseFieldType parses a "#f" header type tag.
func ParseFieldType(tag string) (FieldType, error) {
	switch strings.TrimSpace(tag) {
	case "int":
		return FieldTypeInt, nil
	case "float":
		return FieldTypeFloat, nil
	case "string":
		return FieldTypeString, nil
	case "bool":
		return FieldTypeBool, nil
	default:
		return FieldTypeInvalid, fmt.Errorf("%w: unknown type tag %q", ErrSchema, tag)
	}
}
