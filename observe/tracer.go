package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// OpMeta describes one cache operation for telemetry purposes.
type OpMeta struct {
	Op        string // get, set, delete, get_or_set, invalidate_pattern
	Namespace string // cache namespace the operation targets
	Backend   string // backend name the manager routed to
}

// SpanName returns the deterministic span name for this operation.
// Format: cache.<op>
func (m OpMeta) SpanName() string {
	return "cache." + m.Op
}

// Tracer wraps OpenTelemetry tracing with cache-operation span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Errors: EndOp must be best-effort and must not panic.
type Tracer interface {
	// StartOp starts a new span for a cache operation.
	StartOp(ctx context.Context, meta OpMeta) (context.Context, trace.Span)

	// EndOp ends the span, recording the hit flag and any backend error.
	EndOp(span trace.Span, hit bool, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// newTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func newTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartOp starts a new span with operation metadata as attributes.
func (t *tracerImpl) StartOp(ctx context.Context, meta OpMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("cache.op", meta.Op),
		attribute.String("cache.namespace", meta.Namespace),
		attribute.String("cache.backend", meta.Backend),
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindInternal),
	)

	return ctx, span
}

// EndOp ends the span and records hit/error attributes.
func (t *tracerImpl) EndOp(span trace.Span, hit bool, err error) {
	span.SetAttributes(attribute.Bool("cache.hit", hit))
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// newNoopTracer creates a no-op tracer.
func newNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartOp(ctx context.Context, meta OpMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndOp(span trace.Span, hit bool, err error) {
	span.End()
}
