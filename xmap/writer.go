package xmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/sauloal/opticalmapping/schema"
)

// Writer writes augmented XMAP text: every registry field, source and
// derived, one record per line. Its output can be read back by Parser.
type Writer struct {
	w   *bufio.Writer
	reg *schema.Registry
	buf []string
}

// NewWriter creates a Writer for the fields of reg.
func NewWriter(w io.Writer, reg *schema.Registry) *Writer {
	return &Writer{
		w:   bufio.NewWriter(w),
		reg: reg,
		buf: make([]string, reg.Len()),
	}
}

// WriteHeader writes the provenance comments, the "# FIELDS:" help block, the
// "# FILTERS:" block when history is non-empty, and the "#h"/"#f" lines.
//
// history holds complete "# FILTER :" lines.
func (w *Writer) WriteHeader(provenance, history []string) error {
	for _, c := range provenance {
		w.w.WriteString(c)
		w.w.WriteByte('\n')
	}
	w.w.WriteString("#\n# FIELDS:\n")
	for _, spec := range w.reg.Fields() {
		fmt.Fprintf(w.w, "# %-39s: %s\n", spec.Name, w.reg.CommentHelp(spec.Name))
	}
	w.w.WriteString("#\n")

	if len(history) > 0 {
		w.w.WriteString("# FILTERS:\n")
		for _, l := range history {
			w.w.WriteString(l)
			w.w.WriteByte('\n')
		}
		w.w.WriteString("#\n")
	}

	specs := w.reg.Fields()
	for i, spec := range specs {
		w.buf[i] = fmt.Sprintf("%-39s", spec.Name)
	}
	w.w.WriteString("#h " + strings.Join(w.buf, "\t") + "\n")
	for i, spec := range specs {
		w.buf[i] = fmt.Sprintf("%-39s", spec.Type)
	}
	_, err := w.w.WriteString("#f " + strings.Join(w.buf, "\t") + "\n")
	return err
}

// WriteRecord writes rec as one data line. Absent fields are written empty.
func (w *Writer) WriteRecord(rec *schema.Record) error {
	for i, spec := range w.reg.Fields() {
		v, ok := rec.Get(spec.ID)
		if !ok {
			w.buf[i] = ""
			continue
		}
		w.buf[i] = v.String()
	}
	_, err := w.w.WriteString(strings.Join(w.buf, "\t") + "\n")
	return err
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}
