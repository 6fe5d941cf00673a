package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/value"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Alignment is one synthetic XMAP line.
type Alignment struct {
	EntryID      int64
	QryContigID  int64
	RefContigID  int64
	QryStartPos  float64
	QryEndPos    float64
	RefStartPos  float64
	RefEndPos    float64
	Orientation  string
	Confidence   float64
	HitEnum      string
	QryLen       float64
	RefLen       float64
	LabelChannel int64
	Alignment    string
}

// Alignments generates n alignments over refs reference contigs and qrys
// query contigs. Contig IDs start at 1; entry IDs are 1..n.
//
// Values are rounded to the precision they are printed with, so records built
// from the structs equal records parsed from XMAP text.
func (r *RNG) Alignments(n, refs, qrys int) []Alignment {
	r.mu.Lock()
	defer r.mu.Unlock()

	qryLens := make([]float64, qrys)
	for i := range qryLens {
		qryLens[i] = round1(100000 + r.rand.Float64()*900000)
	}
	refLens := make([]float64, refs)
	for i := range refLens {
		refLens[i] = round1(10000000 + r.rand.Float64()*90000000)
	}

	out := make([]Alignment, n)
	for i := range out {
		q := r.rand.Intn(qrys)
		ref := r.rand.Intn(refs)

		qLen := qryLens[q]
		qStart := round1(r.rand.Float64() * qLen / 2)
		qEnd := round1(qStart + r.rand.Float64()*(qLen-qStart))

		rStart := round1(r.rand.Float64() * refLens[ref] / 2)
		rEnd := round1(rStart + (qEnd - qStart) + r.rand.Float64()*1000)

		orientation := "+"
		if r.rand.Intn(2) == 1 {
			orientation = "-"
		}

		hit, pairs := r.codesLocked(orientation)

		out[i] = Alignment{
			EntryID:      int64(i + 1),
			QryContigID:  int64(q + 1),
			RefContigID:  int64(ref + 1),
			QryStartPos:  qStart,
			QryEndPos:    qEnd,
			RefStartPos:  rStart,
			RefEndPos:    rEnd,
			Orientation:  orientation,
			Confidence:   round2(5 + r.rand.Float64()*30),
			HitEnum:      hit,
			QryLen:       qLen,
			RefLen:       refLens[ref],
			LabelChannel: 1,
			Alignment:    pairs,
		}
	}

	return out
}

// codesLocked builds a HitEnum and a matching label pair list. Collapses are
// introduced by occasionally repeating a query label. Caller must hold r.mu.
func (r *RNG) codesLocked(orientation string) (string, string) {
	var hit, pairs strings.Builder

	ref := uint64(1 + r.rand.Intn(50))
	qry := uint64(100 + r.rand.Intn(50))
	runs := 1 + r.rand.Intn(4)

	for i := range runs {
		if i > 0 {
			gap := 1 + r.rand.Intn(3)
			op := "D"
			if r.rand.Intn(2) == 1 {
				op = "I"
				qry += uint64(gap)
			} else {
				ref += uint64(gap)
			}
			hit.WriteString(strconv.Itoa(gap))
			hit.WriteString(op)
		}

		m := 1 + r.rand.Intn(5)
		hit.WriteString(strconv.Itoa(m))
		hit.WriteByte('M')
		for range m {
			pairs.WriteString("(" + strconv.FormatUint(ref, 10) + "," + strconv.FormatUint(qry, 10) + ")")
			ref++
			if r.rand.Intn(6) != 0 {
				if orientation == "-" && qry > 1 {
					qry--
				} else {
					qry++
				}
			}
		}
	}

	return hit.String(), pairs.String()
}

// Cells returns the XMAP cell text of a in column order.
func (a Alignment) Cells() []string {
	return []string{
		strconv.FormatInt(a.EntryID, 10),
		strconv.FormatInt(a.QryContigID, 10),
		strconv.FormatInt(a.RefContigID, 10),
		formatFloat(a.QryStartPos),
		formatFloat(a.QryEndPos),
		formatFloat(a.RefStartPos),
		formatFloat(a.RefEndPos),
		a.Orientation,
		formatFloat(a.Confidence),
		a.HitEnum,
		formatFloat(a.QryLen),
		formatFloat(a.RefLen),
		strconv.FormatInt(a.LabelChannel, 10),
		a.Alignment,
	}
}

// Record returns a as a typed record.
func (a Alignment) Record() *schema.Record {
	return schema.NewBuilder().
		Set(schema.XmapEntryID, value.Int(a.EntryID)).
		Set(schema.QryContigID, value.Int(a.QryContigID)).
		Set(schema.RefContigID, value.Int(a.RefContigID)).
		Set(schema.QryStartPos, value.Float(a.QryStartPos)).
		Set(schema.QryEndPos, value.Float(a.QryEndPos)).
		Set(schema.RefStartPos, value.Float(a.RefStartPos)).
		Set(schema.RefEndPos, value.Float(a.RefEndPos)).
		Set(schema.Orientation, value.String(a.Orientation)).
		Set(schema.Confidence, value.Float(a.Confidence)).
		Set(schema.HitEnum, value.String(a.HitEnum)).
		Set(schema.QryLen, value.Float(a.QryLen)).
		Set(schema.RefLen, value.Float(a.RefLen)).
		Set(schema.LabelChannel, value.Int(a.LabelChannel)).
		Set(schema.Alignment, value.String(a.Alignment)).
		Record()
}

// Records converts rows to typed records.
func Records(rows []Alignment) []*schema.Record {
	out := make([]*schema.Record, len(rows))
	for i, a := range rows {
		out[i] = a.Record()
	}
	return out
}

// SourceNames are the XMAP source column names.
var SourceNames = []string{
	"XmapEntryID", "QryContigID", "RefContigID", "QryStartPos", "QryEndPos",
	"RefStartPos", "RefEndPos", "Orientation", "Confidence", "HitEnum",
	"QryLen", "RefLen", "LabelChannel", "Alignment",
}

// SourceTypes are the declared types of SourceNames.
var SourceTypes = []string{
	"int", "int", "int", "float", "float",
	"float", "float", "string", "float", "string",
	"float", "float", "int", "string",
}

// Header returns a minimal XMAP header: provenance comments followed by the
// "#h" and "#f" lines.
func Header() string {
	var b strings.Builder
	b.WriteString("# XMAP File Version:\t0.2\n")
	b.WriteString("# Label Channels:\t1\n")
	b.WriteString("# Reference Maps From:\tsynthetic_r.cmap\n")
	b.WriteString("# Query Maps From:\tsynthetic_q.cmap\n")
	b.WriteString("#h " + strings.Join(SourceNames, "\t") + "\n")
	b.WriteString("#f " + strings.Join(SourceTypes, "\t") + "\n")
	return b.String()
}

// XMAP renders rows as a complete XMAP file.
func XMAP(rows []Alignment) string {
	var b strings.Builder
	b.WriteString(Header())
	for _, a := range rows {
		b.WriteString(strings.Join(a.Cells(), "\t"))
		b.WriteByte('\n')
	}
	return b.String()
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func round1(f float64) float64 {
	return float64(int64(f*10)) / 10
}

func round2(f float64) float64 {
	return float64(int64(f*100)) / 100
}
