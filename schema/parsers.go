package schema

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sauloal/opticalmapping/alignment"
	"github.com/sauloal/opticalmapping/value"
)

// ParseFunc converts and validates the text of one cell.
type ParseFunc func(string) (value.Value, error)

// ParseInt parses a decimal integer cell.
func ParseInt(s string) (value.Value, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return value.Value{}, err
	}
	return value.Int(n), nil
}

// ParseFloat parses a floating point cell.
func ParseFloat(s string) (value.Value, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return value.Value{}, err
	}
	return value.Float(f), nil
}

// ParseString accepts any cell text.
func ParseString(s string) (value.Value, error) {
	return value.String(s), nil
}

// ParseBool accepts t/true/1 and f/false/0, case-insensitively.
func ParseBool(s string) (value.Value, error) {
	switch strings.ToLower(s) {
	case "t", "true", "1":
		return value.Bool(true), nil
	case "f", "false", "0":
		return value.Bool(false), nil
	default:
		return value.Value{}, fmt.Errorf("invalid bool %q", s)
	}
}

// ParseOrientation accepts "+" or "-".
func ParseOrientation(s string) (value.Value, error) {
	o, err := alignment.ParseOrientation(s)
	if err != nil {
		return value.Value{}, err
	}
	return value.String(o), nil
}

// ParseHitEnum validates a HitEnum pseudo-CIGAR and keeps it verbatim.
func ParseHitEnum(s string) (value.Value, error) {
	if err := alignment.ValidateHitEnum(s); err != nil {
		return value.Value{}, err
	}
	return value.String(s), nil
}

// ParseAlignment strips the surrounding quotes of a label pair list and
// validates it.
func ParseAlignment(s string) (value.Value, error) {
	s = alignment.StripQuotes(s)
	if _, err := alignment.ParseLabelPairs(s); err != nil {
		return value.Value{}, err
	}
	return value.String(s), nil
}

// ParseList splits s on sep and parses every element with parse, returning
// the elements as a set. It backs the list-literal filter operators.
func ParseList(parse ParseFunc, s, sep string) (value.Value, error) {
	parts := strings.Split(s, sep)
	members := make([]value.Value, 0, len(parts))
	for _, p := range parts {
		v, err := parse(strings.TrimSpace(p))
		if err != nil {
			return value.Value{}, err
		}
		members = append(members, v)
	}
	return value.Set(members...), nil
}
