package opticalmapping

import (
	"log/slog"
	"slices"

	"github.com/sauloal/opticalmapping/blobstore"
	"github.com/sauloal/opticalmapping/codec"
	"github.com/sauloal/opticalmapping/index"
	"github.com/sauloal/opticalmapping/internal/resource"
	"github.com/sauloal/opticalmapping/schema"
)

type options struct {
	registry         *schema.Registry
	indexFields      []schema.FieldID
	groupPairs       []index.Pair
	maxLineSize      int
	concurrency      int
	readRateLimit    int64
	memoryLimit      int64
	codec            codec.Codec
	compression      *blobstore.Compression
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures how datasets are loaded, processed and written.
type Option func(*options)

// WithRegistry sets the field registry. Defaults to schema.Default().
func WithRegistry(reg *schema.Registry) Option {
	return func(o *options) {
		if reg != nil {
			o.registry = reg
		}
	}
}

// WithIndexFields sets the columns of the single-column index. XmapEntryID
// is always added because statistics resolve entries through it.
func WithIndexFields(fields ...schema.FieldID) Option {
	return func(o *options) {
		o.indexFields = fields
	}
}

// WithGroupPairs sets the column pairs of the group index. The
// RefContigID:QryContigID, QryContigID:RefContigID and
// QryContigID:XmapEntryID pairs are always added.
func WithGroupPairs(pairs ...index.Pair) Option {
	return func(o *options) {
		o.groupPairs = pairs
	}
}

// WithMaxLineSize sets the longest accepted input line in bytes.
func WithMaxLineSize(n int) Option {
	return func(o *options) {
		o.maxLineSize = n
	}
}

// WithConcurrency bounds how many shards LoadShards parses at once.
// Defaults to 1.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}

// WithReadRateLimit throttles source reads to bytesPerSec. Zero disables
// throttling.
func WithReadRateLimit(bytesPerSec int64) Option {
	return func(o *options) {
		o.readRateLimit = bytesPerSec
	}
}

// WithMemoryLimit caps the summed raw size of inputs open at once. A load
// that would exceed it fails with ErrMemoryLimitExceeded.
func WithMemoryLimit(bytes int64) Option {
	return func(o *options) {
		o.memoryLimit = bytes
	}
}

// WithCodec configures the codec used by Export.
//
// If nil is passed, codec.Default is used.
func WithCodec(c codec.Codec) Option {
	return func(o *options) {
		if c == nil {
			c = codec.Default
		}
		o.codec = c
	}
}

// WithCompression forces the compression of Save output. By default it is
// chosen from the name's extension.
func WithCompression(c blobstore.Compression) Option {
	return func(o *options) {
		o.compression = &c
	}
}

// WithMetricsCollector configures metrics collection for loads, statistics
// and filters.
//
// Example:
//
//	metrics := &opticalmapping.BasicMetricsCollector{}
//	ds, _ := opticalmapping.Load(ctx, store, "sample.xmap", opticalmapping.WithMetricsCollector(metrics))
//	fmt.Println(metrics.GetStats().RecordsLoaded)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := opticalmapping.NewJSONLogger(slog.LevelInfo)
//	ds, _ := opticalmapping.Load(ctx, store, name, opticalmapping.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		registry:         schema.Default(),
		indexFields:      index.DefaultFields(),
		groupPairs:       index.DefaultPairs(),
		concurrency:      1,
		codec:            codec.Default,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	o.indexFields = withRequiredFields(o.indexFields)
	o.groupPairs = withRequiredPairs(o.groupPairs)
	return o
}

func withRequiredFields(fields []schema.FieldID) []schema.FieldID {
	if slices.Contains(fields, schema.XmapEntryID) {
		return fields
	}
	return append(slices.Clip(fields), schema.XmapEntryID)
}

func withRequiredPairs(pairs []index.Pair) []index.Pair {
	out := slices.Clip(pairs)
	for _, req := range []index.Pair{index.RefQry, index.QryRef, index.QryEntry} {
		if !slices.Contains(pairs, req) {
			out = append(out, req)
		}
	}
	return out
}

func (o *options) controller() *resource.Controller {
	return resource.NewController(resource.Config{
		MemoryLimitBytes:   o.memoryLimit,
		MaxConcurrentLoads: int64(o.concurrency),
		IOLimitBytesPerSec: o.readRateLimit,
	})
}
