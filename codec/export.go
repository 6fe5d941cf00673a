package codec

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/stats"
	"github.com/sauloal/opticalmapping/value"
)

// Document is a record keyed by field name.
type Document map[string]any

// NewDocument converts rec into a Document using the names of reg.
func NewDocument(reg *schema.Registry, rec *schema.Record) Document {
	doc := make(Document, reg.Len())
	for _, spec := range reg.Fields() {
		if v, ok := rec.Get(spec.ID); ok {
			doc[spec.Name] = v.Interface()
		}
	}
	return doc
}

// EncodeRecords writes recs to w as JSON Lines.
func EncodeRecords(w io.Writer, c Codec, reg *schema.Registry, recs []*schema.Record) error {
	if c == nil {
		c = Default
	}
	bw := bufio.NewWriter(w)
	for i, rec := range recs {
		b, err := c.Marshal(NewDocument(reg, rec))
		if err != nil {
			return fmt.Errorf("codec %s: record %d: %w", c.Name(), i, err)
		}
		if _, err := bw.Write(b); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// DecodeDocuments reads JSON Lines written by EncodeRecords. Numbers decode
// as float64.
func DecodeDocuments(r io.Reader, c Codec) ([]Document, error) {
	if c == nil {
		c = Default
	}
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16<<20)

	var docs []Document
	for line := 1; sc.Scan(); line++ {
		b := bytes.TrimSpace(sc.Bytes())
		if len(b) == 0 {
			continue
		}
		var doc Document
		if err := c.Unmarshal(b, &doc); err != nil {
			return nil, fmt.Errorf("codec %s: line %d: %w", c.Name(), line, err)
		}
		docs = append(docs, doc)
	}
	return docs, sc.Err()
}

// SummaryDocument is the export shape of stats.Summary.
type SummaryDocument struct {
	Records    int                `json:"records"`
	References []ReferenceSummary `json:"references"`
	Queries    []QuerySummary     `json:"queries"`
}

// ReferenceSummary counts the queries aligned to one reference.
type ReferenceSummary struct {
	Ref     any `json:"ref"`
	Queries int `json:"queries"`
}

// QuerySummary lists the confidences of one query.
type QuerySummary struct {
	Qry           any       `json:"qry"`
	References    int       `json:"references"`
	Confidences   []float64 `json:"confidences"`
	MaxConfidence float64   `json:"max_confidence"`
	MaxRef        any       `json:"max_ref,omitempty"`
}

// NewSummaryDocument converts a summary for export.
func NewSummaryDocument(sum stats.Summary) SummaryDocument {
	doc := SummaryDocument{
		Records:    sum.Records,
		References: make([]ReferenceSummary, len(sum.References)),
		Queries:    make([]QuerySummary, len(sum.Queries)),
	}
	for i, rc := range sum.References {
		doc.References[i] = ReferenceSummary{Ref: plain(rc.Ref), Queries: rc.Queries}
	}
	for i, qc := range sum.Queries {
		doc.Queries[i] = QuerySummary{
			Qry:           plain(qc.Qry),
			References:    qc.References,
			Confidences:   qc.Confidences,
			MaxConfidence: qc.MaxConfidence,
			MaxRef:        plain(qc.MaxRef),
		}
	}
	return doc
}

func plain(v value.Value) any {
	if !v.IsValid() {
		return nil
	}
	return v.Interface()
}
