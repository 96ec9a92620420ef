// Package tracing provides a minimal span/observer hook the Query core
// opens at the entry of its blocking operations (init, process, finalize)
// and closes on exit, replacing macro-bracketed stats regions with an
// explicit object whose lifetime mirrors the operation it measures.
package tracing

import (
	"context"

	opentracing "github.com/opentracing/opentracing-go"
)

// GlobalTracer is a single, global instance of Tracer. It defaults to a
// no-op so the core costs nothing unless a caller wires in a backend.
var GlobalTracer Tracer = NopTracer()

// Tracer starts spans from a context.
type Tracer interface {
	StartSpanFromContext(ctx context.Context, operationName string) (Span, context.Context)
}

// Span represents a single span in a distributed trace.
type Span interface {
	// Finish sets the end timestamp and finalizes the span.
	Finish()
	// LogKV attaches key/value pairs to the span.
	LogKV(alternatingKeyValues ...interface{})
}

// StartSpanFromContext returns a new child span and context using the
// global tracer.
func StartSpanFromContext(ctx context.Context, operationName string) (Span, context.Context) {
	return GlobalTracer.StartSpanFromContext(ctx, operationName)
}

// NopTracer returns a Tracer whose spans do nothing.
func NopTracer() Tracer {
	return nopTracer{}
}

type nopTracer struct{}

func (nopTracer) StartSpanFromContext(ctx context.Context, operationName string) (Span, context.Context) {
	return nopSpan{}, ctx
}

type nopSpan struct{}

func (nopSpan) Finish()                                 {}
func (nopSpan) LogKV(alternatingKeyValues ...interface{}) {}

// Ensure our opentracing-backed Tracer satisfies the interface.
var _ Tracer = (*otTracer)(nil)

// otTracer wraps an opentracing.Tracer so it can back the core's spans.
type otTracer struct {
	tracer opentracing.Tracer
}

// NewTracer returns a Tracer backed by the given opentracing.Tracer.
func NewTracer(tracer opentracing.Tracer) Tracer {
	return &otTracer{tracer: tracer}
}

func (t *otTracer) StartSpanFromContext(ctx context.Context, operationName string) (Span, context.Context) {
	var opts []opentracing.StartSpanOption
	if parent := opentracing.SpanFromContext(ctx); parent != nil {
		opts = append(opts, opentracing.ChildOf(parent.Context()))
	}
	span := t.tracer.StartSpan(operationName, opts...)
	return otSpan{span}, opentracing.ContextWithSpan(ctx, span)
}

type otSpan struct {
	span opentracing.Span
}

func (s otSpan) Finish() { s.span.Finish() }
func (s otSpan) LogKV(alternatingKeyValues ...interface{}) {
	s.span.LogKV(alternatingKeyValues...)
}
