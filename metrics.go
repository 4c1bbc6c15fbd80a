package memcopy

import (
	"sync/atomic"
)

// MetricsCollector defines an interface for collecting copier metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// RecordCopy sits on the copy hot path; implementations should be cheap.
type MetricsCollector interface {
	// RecordAlloc is called after each allocation. bytes is the capacity
	// handed out (0 on failure), err is nil if successful.
	RecordAlloc(bytes int, err error)

	// RecordFree is called after each release with the released capacity.
	RecordFree(bytes int)

	// RecordCopy is called after each copy with the number of bytes written.
	// Fan-out copies are recorded once per chunk by the wrapped copier.
	RecordCopy(bytes int)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordAlloc(int, error) {}
func (NoopMetricsCollector) RecordFree(int)         {}
func (NoopMetricsCollector) RecordCopy(int)         {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// CopyBytes is the bytes-processed counter a throughput harness reports.
type BasicMetricsCollector struct {
	AllocCount  atomic.Int64
	AllocErrors atomic.Int64
	AllocBytes  atomic.Int64
	FreeCount   atomic.Int64
	FreeBytes   atomic.Int64
	CopyCount   atomic.Int64
	CopyBytes   atomic.Int64
}

// RecordAlloc implements MetricsCollector.
func (b *BasicMetricsCollector) RecordAlloc(bytes int, err error) {
	b.AllocCount.Add(1)
	if err != nil {
		b.AllocErrors.Add(1)
		return
	}
	b.AllocBytes.Add(int64(bytes))
}

// RecordFree implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFree(bytes int) {
	b.FreeCount.Add(1)
	b.FreeBytes.Add(int64(bytes))
}

// RecordCopy implements MetricsCollector.
func (b *BasicMetricsCollector) RecordCopy(bytes int) {
	b.CopyCount.Add(1)
	b.CopyBytes.Add(int64(bytes))
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		AllocCount:  b.AllocCount.Load(),
		AllocErrors: b.AllocErrors.Load(),
		AllocBytes:  b.AllocBytes.Load(),
		FreeCount:   b.FreeCount.Load(),
		FreeBytes:   b.FreeBytes.Load(),
		CopyCount:   b.CopyCount.Load(),
		CopyBytes:   b.CopyBytes.Load(),
	}
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	AllocCount  int64
	AllocErrors int64
	AllocBytes  int64
	FreeCount   int64
	FreeBytes   int64
	CopyCount   int64
	CopyBytes   int64
}

// LiveBytes returns allocated minus freed capacity.
func (s BasicMetricsStats) LiveBytes() int64 {
	return s.AllocBytes - s.FreeBytes
}
