package observe

import (
	"context"
	"time"
)

// OpFunc is the signature for an instrumented cache operation. It reports
// whether the operation hit the cache and any backend error.
type OpFunc func(ctx context.Context) (hit bool, err error)

// Instrumenter wraps cache operations with tracing, metrics, and logging.
//
// Contract:
//   - Concurrency: Do is safe for concurrent use.
//   - Context: propagates context through tracing spans.
//   - Errors: backend errors are recorded and logged at warn level; Do never
//     returns them. The caller decides how the operation degrades.
type Instrumenter struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewInstrumenter creates an Instrumenter from explicit components.
func NewInstrumenter(tracer Tracer, metrics Metrics, logger Logger) *Instrumenter {
	return &Instrumenter{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// InstrumenterFromObserver creates an Instrumenter from an Observer.
// This is the common construction path.
func InstrumenterFromObserver(obs Observer) (*Instrumenter, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewInstrumenter(newTracer(obs.Tracer()), metrics, obs.Logger()), nil
}

// NewNoopInstrumenter returns an Instrumenter that discards all telemetry.
func NewNoopInstrumenter() *Instrumenter {
	return NewInstrumenter(newNoopTracer(), &noopMetrics{}, &noopLogger{})
}

// Logger returns the logger the Instrumenter writes through.
func (in *Instrumenter) Logger() Logger {
	return in.logger
}

// Do runs fn inside a span, records metrics, and logs backend failures.
// It reports whether the operation was a hit.
func (in *Instrumenter) Do(ctx context.Context, meta OpMeta, fn OpFunc) bool {
	ctx, span := in.tracer.StartOp(ctx, meta)

	start := time.Now()
	hit, err := fn(ctx)
	duration := time.Since(start)

	in.tracer.EndOp(span, hit, err)
	in.metrics.RecordOp(ctx, meta, duration, hit, err)

	if err != nil {
		in.logger.Warn(ctx, "cache backend operation failed",
			F("op", meta.Op),
			F("namespace", meta.Namespace),
			F("backend", meta.Backend),
			F("error", err.Error()),
		)
	} else {
		in.logger.Debug(ctx, "cache operation",
			F("op", meta.Op),
			F("namespace", meta.Namespace),
			F("backend", meta.Backend),
			F("hit", hit),
			F("duration_ms", float64(duration.Milliseconds())),
		)
	}

	return hit
}
