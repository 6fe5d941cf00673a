package alignment

const (
	// Forward is the orientation of a query aligned in reference direction.
	Forward = "+"
	// Reverse is the orientation of a query aligned against the reference.
	Reverse = "-"
)

// ParseOrientation accepts only "+" and "-". The AGP placeholders "?", "0"
// and "na" are rejected rather than defaulted.
func ParseOrientation(s string) (string, error) {
	switch s {
	case Forward, Reverse:
		return s, nil
	default:
		return "", malformed("orientation", s, -1, `expected "+" or "-"`)
	}
}
