package alignment

import (
	"strconv"
	"strings"
)

const labelsKind = "alignment"

// LabelPair is one aligned (reference label, query label) site pair.
type LabelPair struct {
	Ref uint64
	Qry uint64
}

// LabelCounts summarizes a label pair list.
//
// A collapse is a label on one side aligned to more than one label on the
// other side; a label occurring k > 1 times adds k to the collapse count.
type LabelCounts struct {
	RefLabels    int
	QryLabels    int
	RefCollapses int
	QryCollapses int
}

// ParseLabelPairs decodes an Alignment column such as
// "(1,34)(2,34)(3,35)". Surrounding double quotes are stripped first and the
// remainder is checked against the [0-9(),] alphabet before decoding.
func ParseLabelPairs(s string) ([]LabelPair, error) {
	s = StripQuotes(s)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !isDigit(c) && c != '(' && c != ')' && c != ',' {
			return nil, malformed(labelsKind, s, i, "unexpected character "+strconv.QuoteRune(rune(c)))
		}
	}

	pairs := make([]LabelPair, 0, strings.Count(s, "("))
	i := 0
	for i < len(s) {
		if s[i] != '(' {
			return nil, malformed(labelsKind, s, i, "expected '('")
		}
		i++
		ref, next, err := readLabel(s, i)
		if err != nil {
			return nil, err
		}
		i = next
		if i >= len(s) || s[i] != ',' {
			return nil, malformed(labelsKind, s, i, "expected ','")
		}
		i++
		qry, next, err := readLabel(s, i)
		if err != nil {
			return nil, err
		}
		i = next
		if i >= len(s) || s[i] != ')' {
			return nil, malformed(labelsKind, s, i, "expected ')'")
		}
		i++
		pairs = append(pairs, LabelPair{Ref: ref, Qry: qry})
	}

	return pairs, nil
}

func readLabel(s string, start int) (uint64, int, error) {
	end := start
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	if end == start {
		return 0, start, malformed(labelsKind, s, start, "expected label id")
	}
	n, err := strconv.ParseUint(s[start:end], 10, 64)
	if err != nil {
		return 0, start, malformed(labelsKind, s, start, "label id out of range")
	}
	return n, end, nil
}

// CountLabelPairs computes distinct label and collapse counts for pairs.
func CountLabelPairs(pairs []LabelPair) LabelCounts {
	refs := make(map[uint64]int, len(pairs))
	qrys := make(map[uint64]int, len(pairs))
	for _, p := range pairs {
		refs[p.Ref]++
		qrys[p.Qry]++
	}

	return LabelCounts{
		RefLabels:    len(refs),
		QryLabels:    len(qrys),
		RefCollapses: collapses(refs),
		QryCollapses: collapses(qrys),
	}
}

// DecodeLabelPairs parses and counts an Alignment column in one step.
func DecodeLabelPairs(s string) (LabelCounts, error) {
	pairs, err := ParseLabelPairs(s)
	if err != nil {
		return LabelCounts{}, err
	}
	return CountLabelPairs(pairs), nil
}

// StripQuotes removes surrounding double quotes.
func StripQuotes(s string) string {
	return strings.Trim(s, `"`)
}

func collapses(counts map[uint64]int) int {
	total := 0
	for _, k := range counts {
		if k > 1 {
			total += k
		}
	}
	return total
}
