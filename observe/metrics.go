package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics records cache operation metrics.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must return quickly; recording never blocks the operation.
// - Errors: implementations must not panic.
type Metrics interface {
	// RecordOp records a cache operation with its duration, hit flag, and
	// backend error status.
	RecordOp(ctx context.Context, meta OpMeta, duration time.Duration, hit bool, err error)
}

// metricsImpl is the concrete implementation of Metrics.
type metricsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	hitCount     metric.Int64Counter
	missCount    metric.Int64Counter
	durationHist metric.Float64Histogram
}

// newMetrics creates a new Metrics instance with the given meter.
func newMetrics(meter metric.Meter) (*metricsImpl, error) {
	totalCount, err := meter.Int64Counter(
		"cache.op.total",
		metric.WithDescription("Total number of cache operations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"cache.op.errors",
		metric.WithDescription("Total number of cache backend errors"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	hitCount, err := meter.Int64Counter(
		"cache.hits",
		metric.WithDescription("Total number of cache hits"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	missCount, err := meter.Int64Counter(
		"cache.misses",
		metric.WithDescription("Total number of cache misses"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"cache.op.duration_ms",
		metric.WithDescription("Cache operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &metricsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		hitCount:     hitCount,
		missCount:    missCount,
		durationHist: durationHist,
	}, nil
}

// RecordOp records metrics for a cache operation.
func (m *metricsImpl) RecordOp(ctx context.Context, meta OpMeta, duration time.Duration, hit bool, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("cache.op", meta.Op),
		attribute.String("cache.namespace", meta.Namespace),
		attribute.String("cache.backend", meta.Backend),
	}

	opt := metric.WithAttributes(attrs...)

	m.totalCount.Add(ctx, 1, opt)

	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	// Hit/miss ratios only make sense for read operations.
	if meta.Op == "get" || meta.Op == "get_or_set" {
		if hit {
			m.hitCount.Add(ctx, 1, opt)
		} else {
			m.missCount.Add(ctx, 1, opt)
		}
	}

	m.durationHist.Record(ctx, float64(duration.Milliseconds()), opt)
}

// noopMetrics is a metrics implementation that does nothing.
type noopMetrics struct{}

func (m *noopMetrics) RecordOp(ctx context.Context, meta OpMeta, duration time.Duration, hit bool, err error) {
}
