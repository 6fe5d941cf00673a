package alignment

import "strconv"

const hitEnumKind = "hit enum"

// HitCounts is the decoded content of a HitEnum pseudo-CIGAR string.
type HitCounts struct {
	Matches    int
	Insertions int
	Deletions  int
}

// Total returns the sum of all run lengths.
func (h HitCounts) Total() int {
	return h.Matches + h.Insertions + h.Deletions
}

// DecodeHitEnum sums the match (M), insertion (I) and deletion (D) runs of a
// HitEnum string such as "4M2D2M".
//
// The whole string is checked against the [0-9MID] alphabet before any run is
// decoded. Empty codes, operators without a run length and trailing digits are
// rejected.
func DecodeHitEnum(code string) (HitCounts, error) {
	if code == "" {
		return HitCounts{}, malformed(hitEnumKind, code, -1, "empty code")
	}
	for i := 0; i < len(code); i++ {
		if !isDigit(code[i]) && !isHitOp(code[i]) {
			return HitCounts{}, malformed(hitEnumKind, code, i, "unexpected character "+strconv.QuoteRune(rune(code[i])))
		}
	}

	var counts HitCounts
	start := 0
	for i := 0; i < len(code); i++ {
		c := code[i]
		if isDigit(c) {
			continue
		}
		if i == start {
			return HitCounts{}, malformed(hitEnumKind, code, i, "operator without run length")
		}
		n, err := strconv.Atoi(code[start:i])
		if err != nil {
			return HitCounts{}, malformed(hitEnumKind, code, start, "run length out of range")
		}
		switch c {
		case 'M':
			counts.Matches += n
		case 'I':
			counts.Insertions += n
		case 'D':
			counts.Deletions += n
		}
		start = i + 1
	}
	if start != len(code) {
		return HitCounts{}, malformed(hitEnumKind, code, start, "run length without operator")
	}

	return counts, nil
}

// ValidateHitEnum reports whether code decodes cleanly.
func ValidateHitEnum(code string) error {
	_, err := DecodeHitEnum(code)
	return err
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHitOp(c byte) bool { return c == 'M' || c == 'I' || c == 'D' }
