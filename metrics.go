package spatialjoin

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like
// Prometheus.
type MetricsCollector interface {
	// RecordBuild is called once per invocation, after the build side has
	// been fully materialized into the spatial index. count is the number
	// of geometries inserted.
	RecordBuild(count int, duration time.Duration)

	// RecordBatch is called after each batch population attempt. streamed
	// is the number of stream geometries consumed by the attempt, size the
	// number of pairs buffered (0 when the attempt drained the stream).
	RecordBatch(streamed, size int, duration time.Duration)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordBuild(int, time.Duration)      {}
func (NoopMetricsCollector) RecordBatch(int, int, time.Duration) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
// Safe for use across concurrently running invocations.
type BasicMetricsCollector struct {
	BuildCount      atomic.Int64
	BuildShapes     atomic.Int64
	BuildTotalNanos atomic.Int64
	BatchCount      atomic.Int64
	BatchPairs      atomic.Int64
	StreamedShapes  atomic.Int64
	BatchTotalNanos atomic.Int64
}

// RecordBuild implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBuild(count int, duration time.Duration) {
	b.BuildCount.Add(1)
	b.BuildShapes.Add(int64(count))
	b.BuildTotalNanos.Add(duration.Nanoseconds())
}

// RecordBatch implements MetricsCollector.
func (b *BasicMetricsCollector) RecordBatch(streamed, size int, duration time.Duration) {
	b.BatchCount.Add(1)
	b.BatchPairs.Add(int64(size))
	b.StreamedShapes.Add(int64(streamed))
	b.BatchTotalNanos.Add(duration.Nanoseconds())
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		BuildCount:     b.BuildCount.Load(),
		BuildShapes:    b.BuildShapes.Load(),
		BuildAvgNanos:  b.getAvgBuildNanos(),
		BatchCount:     b.BatchCount.Load(),
		BatchPairs:     b.BatchPairs.Load(),
		StreamedShapes: b.StreamedShapes.Load(),
	}
}

func (b *BasicMetricsCollector) getAvgBuildNanos() int64 {
	count := b.BuildCount.Load()
	if count == 0 {
		return 0
	}
	return b.BuildTotalNanos.Load() / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	BuildCount     int64
	BuildShapes    int64
	BuildAvgNanos  int64
	BatchCount     int64
	BatchPairs     int64
	StreamedShapes int64
}
