package stats

import (
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// RefCount is the number of distinct queries aligned to a reference.
type RefCount struct {
	Ref     value.Value
	Queries int
}

// QryConfidence lists the alignments of one query across references.
type QryConfidence struct {
	Qry        value.Value
	References int
	// Confidences are ordered by XmapEntryID.
	Confidences   []float64
	MaxConfidence float64
	MaxRef        value.Value
}

// Summary is the dataset-wide count and confidence overview.
type Summary struct {
	Records    int
	References []RefCount
	Queries    []QryConfidence
}

// Summary walks every reference and query of the dataset in ascending order.
// All records are considered valid. References are listed only when groups
// holds the RefContigID:QryContigID pair.
func (a *Aggregator) Summary() Summary {
	sum := Summary{Records: len(a.records)}

	for _, ref := range a.groups.Primary(index.RefQry) {
		sum.References = append(sum.References, RefCount{
			Ref:     ref,
			Queries: len(a.groups.Secondary(index.RefQry, ref)),
		})
	}

	all := index.NewPositionSet()
	for i := range a.records {
		all.Add(uint32(i))
	}

	for _, qry := range a.groups.Primary(index.QryRef) {
		qc := QryConfidence{
			Qry:        qry,
			References: len(a.groups.Secondary(index.QryRef, qry)),
		}
		for _, entry := range a.groups.Secondary(index.QryEntry, qry) {
			for pos := range a.groups.Get(index.QryEntry, qry, entry).All() {
				if conf, ok := a.records[pos].Float(schema.Confidence); ok {
					qc.Confidences = append(qc.Confidences, conf)
				}
			}
		}
		if best, _, ok := a.bestConfidence(qry, all); ok {
			qc.MaxConfidence = best.confidence
			qc.MaxRef = best.ref
		}
		sum.Queries = append(sum.Queries, qc)
	}

	return sum
}
