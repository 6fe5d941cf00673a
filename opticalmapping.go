package opticalmapping

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sauloal/opticalmapping/blobstore"
	"github.com/sauloal/opticalmapping/codec"
	"github.com/sauloal/opticalmapping/filter"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/internal/conv"
	"github.com/sauloal/opticalmapping/internal/resource"
	"github.com/sauloal/opticalmapping/schema"
	"github.com/sauloal/opticalmapping/stats"
	"github.com/sauloal/opticalmapping/value"
	"github.com/sauloal/opticalmapping/xmap"
)

// Dataset is a parsed XMAP file: its header, records in input order, and the
// indices built over them.
//
// A Dataset is never modified after it is built. Augment and Filter return
// new datasets, so a Dataset is safe for concurrent reads.
type Dataset struct {
	header  xmap.Header
	records []*schema.Record
	idx     *index.Index
	groups  *index.GroupIndex
	// applied is the filter chain of every Filter call that produced this
	// dataset, oldest first.
	applied filter.Chain
	opts    options
}

// Read parses XMAP text from r. Compressed input is detected and decoded.
func Read(ctx context.Context, r io.Reader, optFns ...Option) (*Dataset, error) {
	o := applyOptions(optFns)

	start := time.Now()
	dec, _, err := blobstore.NewReader(r)
	if err != nil {
		return nil, translateError(err)
	}
	defer dec.Close()

	res, err := o.parse(ctx, dec)
	o.metricsCollector.RecordLoad(resultLen(res), 0, time.Since(start), err)
	o.logger.LogLoad(ctx, "reader", resultLen(res), time.Since(start), err)
	if err != nil {
		return nil, translateError(err)
	}
	return newDataset(res, o), nil
}

// Load parses the blob name of store.
func Load(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Dataset, error) {
	o := applyOptions(optFns)

	res, err := o.load(ctx, store, name, o.controller())
	if err != nil {
		return nil, err
	}
	return newDataset(res, o), nil
}

// LoadShards parses every named blob of store and merges them, in the order
// given, into one dataset. The result equals a single parse of the shards
// concatenated; the header is the first shard's.
//
// Up to WithConcurrency shards are parsed at once. The first failure cancels
// the remaining loads.
func LoadShards(ctx context.Context, store blobstore.BlobStore, names []string, optFns ...Option) (*Dataset, error) {
	if len(names) == 0 {
		return nil, ErrNoInputs
	}
	o := applyOptions(optFns)
	rc := o.controller()

	results := make([]*xmap.Result, len(names))
	g, gctx := errgroup.WithContext(ctx)
	for i, name := range names {
		g.Go(func() error {
			if err := rc.AcquireLoad(gctx); err != nil {
				return err
			}
			defer rc.ReleaseLoad()

			res, err := o.load(gctx, store, name, rc)
			if err != nil {
				return &ShardError{Shard: i, Name: name, cause: err}
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	merged := results[0]
	for i, res := range results[1:] {
		offset, err := conv.Position(len(merged.Records))
		if err != nil {
			return nil, &ShardError{Shard: i + 1, Name: names[i+1], cause: err}
		}
		if err := merged.Index.Merge(res.Index, offset); err != nil {
			return nil, &ShardError{Shard: i + 1, Name: names[i+1], cause: err}
		}
		if err := merged.Groups.Merge(res.Groups, offset); err != nil {
			return nil, &ShardError{Shard: i + 1, Name: names[i+1], cause: err}
		}
		merged.Records = append(merged.Records, res.Records...)
		merged.Lines += res.Lines
	}
	o.logger.LogMerge(ctx, len(names), len(merged.Records))

	return newDataset(merged, o), nil
}

func (o *options) parse(ctx context.Context, r io.Reader) (*xmap.Result, error) {
	return xmap.Parse(ctx, o.registry, r,
		xmap.WithLogger(o.logger.Logger),
		xmap.WithIndexFields(o.indexFields...),
		xmap.WithGroupPairs(o.groupPairs...),
		xmap.WithMaxLineSize(o.maxLineSize),
	)
}

func (o *options) load(ctx context.Context, store blobstore.BlobStore, name string, rc *resource.Controller) (res *xmap.Result, err error) {
	start := time.Now()
	var size int64
	defer func() {
		o.metricsCollector.RecordLoad(resultLen(res), size, time.Since(start), err)
		o.logger.LogLoad(ctx, name, resultLen(res), time.Since(start), err)
	}()

	r, err := blobstore.OpenReader(ctx, store, name, blobstore.WithController(rc))
	if err != nil {
		return nil, translateError(err)
	}
	defer r.Close()
	size = r.Size()

	res, err = o.parse(ctx, r)
	if err != nil {
		return nil, translateError(fmt.Errorf("%s: %w", name, err))
	}
	return res, nil
}

func resultLen(res *xmap.Result) int {
	if res == nil {
		return 0
	}
	return len(res.Records)
}

func newDataset(res *xmap.Result, o options) *Dataset {
	return &Dataset{
		header:  res.Header,
		records: res.Records,
		idx:     res.Index,
		groups:  res.Groups,
		opts:    o,
	}
}

// derive returns an empty dataset sharing d's header and configuration.
func (d *Dataset) derive(capacity int) *Dataset {
	return &Dataset{
		header:  d.header,
		records: make([]*schema.Record, 0, capacity),
		idx:     index.NewIndex(d.opts.indexFields...),
		groups:  index.NewGroupIndex(d.opts.groupPairs...),
		applied: d.applied,
		opts:    d.opts,
	}
}

func (d *Dataset) add(rec *schema.Record) error {
	pos, err := conv.Position(len(d.records))
	if err != nil {
		return err
	}
	d.idx.Add(pos, rec)
	d.groups.Add(pos, rec)
	d.records = append(d.records, rec)
	return nil
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.records) }

// Record returns the record at position pos.
func (d *Dataset) Record(pos int) *schema.Record { return d.records[pos] }

// Records returns every record in position order. The slice must not be
// modified.
func (d *Dataset) Records() []*schema.Record { return d.records }

// Index returns the single-column index.
func (d *Dataset) Index() *index.Index { return d.idx }

// Groups returns the two-column group index.
func (d *Dataset) Groups() *index.GroupIndex { return d.groups }

// Header returns the header of the input.
func (d *Dataset) Header() xmap.Header { return d.header }

// Registry returns the field registry records are addressed by.
func (d *Dataset) Registry() *schema.Registry { return d.opts.registry }

// Engine returns a filter engine over the dataset's registry.
func (d *Dataset) Engine() *filter.Engine { return filter.NewEngine(d.opts.registry) }

// Aggregator returns a statistics aggregator over the dataset.
func (d *Dataset) Aggregator() (*stats.Aggregator, error) {
	return stats.NewAggregator(d.records, d.idx, d.groups)
}

// GroupStats computes the statistics of the (ref, qry) group with every
// alignment of qry considered valid.
func (d *Dataset) GroupStats(ref, qry value.Value) (stats.GroupStats, error) {
	agg, err := d.Aggregator()
	if err != nil {
		return stats.GroupStats{}, err
	}
	return agg.Compute(ref, qry,
		d.groups.Get(index.RefQry, ref, qry),
		d.groups.Positions(index.QryRef, qry),
	)
}

// Summary returns the per reference and per query overview of the dataset.
func (d *Dataset) Summary() (stats.Summary, error) {
	agg, err := d.Aggregator()
	if err != nil {
		return stats.Summary{}, err
	}
	return agg.Summary(), nil
}

// Augment annotates every record with the statistics of its (reference,
// query) group. Every alignment of a query is valid for the cross-reference
// fields.
//
// Records of the result are ordered by reference, then query, then input
// position. Records without both contig IDs are dropped.
func (d *Dataset) Augment(ctx context.Context) (*Dataset, error) {
	start := time.Now()
	out, groups, err := d.annotate(ctx, nil)
	d.opts.metricsCollector.RecordStats(groups, time.Since(start), err)
	d.opts.logger.LogAugment(ctx, groups, out.Len(), err)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Filter keeps the records matching chain.
//
// Statistics are recomputed over the matching records only, so the
// cross-reference fields (best confidence, matched references) describe the
// filtered dataset. Records are annotated with the new values and kept only
// if they still match chain. Result order is as for Augment.
//
// The chain is appended to the dataset's filter history.
func (d *Dataset) Filter(ctx context.Context, chain filter.Chain) (*Dataset, error) {
	start := time.Now()
	out, groups, err := d.annotate(ctx, chain)
	d.opts.metricsCollector.RecordStats(groups, time.Since(start), err)
	d.opts.metricsCollector.RecordFilter(d.Len(), out.Len(), time.Since(start), err)
	d.opts.logger.LogFilter(ctx, chain.Strings(), d.Len(), out.Len(), err)
	if err != nil {
		return nil, err
	}
	out.applied = append(append(filter.Chain(nil), d.applied...), chain...)
	return out, nil
}

// FilterExprs parses exprs as "field:operator:value" predicates and filters
// the dataset with their conjunction.
func (d *Dataset) FilterExprs(ctx context.Context, exprs ...string) (*Dataset, error) {
	chain, err := d.Engine().ParseAll(exprs)
	if err != nil {
		return nil, err
	}
	return d.Filter(ctx, chain)
}

// annotate walks the groups in reference then query order and emits
// annotated copies of their members. A nil chain keeps everything.
func (d *Dataset) annotate(ctx context.Context, chain filter.Chain) (*Dataset, int, error) {
	out := d.derive(len(d.records))

	agg, err := d.Aggregator()
	if err != nil {
		return out, 0, err
	}

	var valid *index.PositionSet
	if chain != nil {
		valid = index.NewPositionSet()
		for pos, rec := range d.records {
			if chain.Matches(rec) {
				valid.Add(uint32(pos))
			}
		}
	}

	groups := 0
	for _, ref := range d.groups.Primary(index.RefQry) {
		for _, qry := range d.groups.Secondary(index.RefQry, ref) {
			if err := ctx.Err(); err != nil {
				return out, groups, err
			}

			members := d.groups.Get(index.RefQry, ref, qry)
			qryValid := d.groups.Positions(index.QryRef, qry)
			if valid != nil {
				qryValid = index.Intersect(qryValid, valid)
				members = index.Intersect(members, qryValid)
				if members.IsEmpty() {
					continue
				}
			}

			st, err := agg.Compute(ref, qry, members, qryValid)
			if err != nil {
				return out, groups, err
			}
			groups++

			for pos := range members.All() {
				rec := *d.records[pos]
				if err := agg.Annotate(&rec, st); err != nil {
					return out, groups, fmt.Errorf("record %d: %w", pos, err)
				}
				if !chain.Matches(&rec) {
					continue
				}
				if err := out.add(&rec); err != nil {
					return out, groups, err
				}
			}
		}
	}
	return out, groups, nil
}

// Applied returns the chains applied by Filter since the dataset was loaded.
func (d *Dataset) Applied() filter.Chain { return d.applied }

// PriorFilters returns the filter history of the dataset: the "# FILTER :"
// lines of its header followed by the chains applied since it was loaded.
func (d *Dataset) PriorFilters() (filter.Chain, error) {
	chain, err := d.Engine().ParseAll(d.header.Filters)
	if err != nil {
		return nil, err
	}
	return append(chain, d.applied...), nil
}

// WriteTo writes the dataset as XMAP text with every registry field. The
// header keeps the input's comments and records the applied filters.
func (d *Dataset) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	xw := xmap.NewWriter(cw, d.opts.registry)
	if err := xw.WriteHeader(d.header.Provenance(), d.applied.HistoryLines()); err != nil {
		return cw.n, err
	}
	for _, rec := range d.records {
		if err := xw.WriteRecord(rec); err != nil {
			return cw.n, err
		}
	}
	err := xw.Flush()
	return cw.n, err
}

// Save writes the dataset to store under name. The output is compressed per
// WithCompression, or per the extension of name.
func (d *Dataset) Save(ctx context.Context, store blobstore.WritableStore, name string) (err error) {
	defer func() {
		d.opts.logger.LogSave(ctx, name, d.Len(), err)
	}()

	c := blobstore.CompressionForName(name)
	if d.opts.compression != nil {
		c = *d.opts.compression
	}

	var buf bytes.Buffer
	cw, err := blobstore.NewWriter(&buf, c)
	if err != nil {
		return err
	}
	if _, err := d.WriteTo(cw); err != nil {
		cw.Close()
		return err
	}
	if err := cw.Close(); err != nil {
		return err
	}
	return store.Put(ctx, name, buf.Bytes())
}

// Export writes every record as one JSON document per line.
func (d *Dataset) Export(w io.Writer) error {
	return codec.EncodeRecords(w, d.opts.codec, d.opts.registry, d.records)
}

// ExportSummary writes the dataset summary as one JSON document.
func (d *Dataset) ExportSummary(w io.Writer) error {
	sum, err := d.Summary()
	if err != nil {
		return err
	}
	data, err := d.opts.codec.Marshal(codec.NewSummaryDocument(sum))
	if err != nil {
		return err
	}
	_, err = w.Write(append(data, '\n'))
	return err
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
