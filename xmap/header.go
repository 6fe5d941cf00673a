package xmap

import (
	"slices"
	"strings"

	"github.com/sauloal/opticalmapping/schema"
)

const (
	filterMarker    = "FILTER :"
	refMapsMarker   = "Reference Maps From:"
	queryMapsMarker = "Query Maps From:"
)

// Header holds the metadata lines of an XMAP file.
type Header struct {
	// Names is the active "#h" column ordering.
	Names []string
	// Fields are the registry IDs of Names.
	Fields []schema.FieldID
	// Types are the declared "#f" types.
	Types []schema.FieldType
	// Comments holds every '#' line verbatim, in file order.
	Comments []string
	// ReferenceMapsFrom and QueryMapsFrom are the provenance values of the
	// "Reference Maps From:" and "Query Maps From:" lines.
	ReferenceMapsFrom string
	QueryMapsFrom     string
	// Filters are the "field:op:value" expressions of "# FILTER :" lines
	// written by a previous filtering pass.
	Filters []string
}

// Provenance returns the comment lines other than "#h" and "#f".
func (h *Header) Provenance() []string {
	out := make([]string, 0, len(h.Comments))
	for _, c := range h.Comments {
		if isNamesLine(c) || isTypesLine(c) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Ordinal returns the column position of field, or -1.
func (h *Header) Ordinal(field schema.FieldID) int {
	return slices.Index(h.Fields, field)
}

func isNamesLine(line string) bool { return len(line) > 1 && line[1] == 'h' }
func isTypesLine(line string) bool { return len(line) > 1 && line[1] == 'f' }

// isFilterLine reports whether line is a "# FILTER :" history line.
func isFilterLine(line string) bool {
	return len(line) >= 2+len(filterMarker) && line[2:2+len(filterMarker)] == filterMarker
}

// parseFilterLine turns "# FILTER : Confidence   :  ge : 10.0" into
// "Confidence:ge:10.0".
func parseFilterLine(line string) string {
	cols := strings.Split(line[2:], ":")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return strings.Join(cols[1:], ":")
}

// markerValue returns the trimmed text after marker.
func markerValue(line, marker string) string {
	_, after, _ := strings.Cut(line, marker)
	return strings.TrimSpace(after)
}

// tagBody returns the text of a "#h" or "#f" line after the tag and one
// space or tab separator.
func tagBody(line string) string {
	body := line[2:]
	if body != "" && (body[0] == ' ' || body[0] == '\t') {
		body = body[1:]
	}
	return body
}

// splitColumns splits a tab separated line and trims every column.
func splitColumns(s string) []string {
	cols := strings.Split(s, "\t")
	for i := range cols {
		cols[i] = strings.TrimSpace(cols[i])
	}
	return cols
}
