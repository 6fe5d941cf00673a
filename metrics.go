package opticalmapping

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
type MetricsCollector interface {
	// RecordLoad is called after each input is parsed. bytes is the raw
	// (possibly compressed) input size.
	RecordLoad(records int, bytes int64, duration time.Duration, err error)

	// RecordStats is called after an augment or filter pass computed the
	// statistics of groups groups.
	RecordStats(groups int, duration time.Duration, err error)

	// RecordFilter is called after each filter pass.
	RecordFilter(in, out int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordLoad(int, int64, time.Duration, error) {}
func (NoopMetricsCollector) RecordStats(int, time.Duration, error) {}
func (NoopMetricsCollector) RecordFilter(int, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	LoadCount       atomic.Int64
	LoadErrors      atomic.Int64
	LoadTotalNanos  atomic.Int64
	RecordsLoaded   atomic.Int64
	BytesLoaded     atomic.Int64
	StatsPasses     atomic.Int64
	StatsErrors     atomic.Int64
	GroupsComputed  atomic.Int64
	FilterCount     atomic.Int64
	FilterErrors    atomic.Int64
	RecordsFiltered atomic.Int64
	RecordsKept     atomic.Int64
}

// RecordLoad implements MetricsCollector.
func (b *BasicMetricsCollector) RecordLoad(records int, bytes int64, duration time.Duration, err error) {
	b.LoadCount.Add(1)
	b.LoadTotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.LoadErrors.Add(1)
		return
	}
	b.RecordsLoaded.Add(int64(records))
	b.BytesLoaded.Add(bytes)
}

// RecordStats implements MetricsCollector.
func (b *BasicMetricsCollector) RecordStats(groups int, duration time.Duration, err error) {
	b.StatsPasses.Add(1)
	b.GroupsComputed.Add(int64(groups))
	if err != nil {
		b.StatsErrors.Add(1)
	}
}

// RecordFilter implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFilter(in, out int, duration time.Duration, err error) {
	b.FilterCount.Add(1)
	if err != nil {
		b.FilterErrors.Add(1)
		return
	}
	b.RecordsFiltered.Add(int64(in))
	b.RecordsKept.Add(int64(out))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		LoadCount:       b.LoadCount.Load(),
		LoadErrors:      b.LoadErrors.Load(),
		LoadAvgNanos:    b.getAvgLoadNanos(),
		RecordsLoaded:   b.RecordsLoaded.Load(),
		BytesLoaded:     b.BytesLoaded.Load(),
		StatsPasses:     b.StatsPasses.Load(),
		StatsErrors:     b.StatsErrors.Load(),
		GroupsComputed:  b.GroupsComputed.Load(),
		FilterCount:     b.FilterCount.Load(),
		FilterErrors:    b.FilterErrors.Load(),
		RecordsFiltered: b.RecordsFiltered.Load(),
		RecordsKept:     b.RecordsKept.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgLoadNanos() int64 {
	count := b.LoadCount.Load()
	if count == 0 {
		return 0
	}
	return b.LoadTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	LoadCount       int64
	LoadErrors      int64
	LoadAvgNanos    int64
	RecordsLoaded   int64
	BytesLoaded     int64
	StatsPasses     int64
	StatsErrors     int64
	GroupsComputed  int64
	FilterCount     int64
	FilterErrors    int64
	RecordsFiltered int64
	RecordsKept     int64
}
