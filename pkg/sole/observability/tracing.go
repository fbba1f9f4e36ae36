package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the sole tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("sole")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartObtainSpan starts a span for the locked phase of an obtain call.
	// Fast-path hits are not traced.
	StartObtainSpan(ctx context.Context, typeName string) (context.Context, trace.Span)

	// StartConstructSpan starts a span for a single construction attempt.
	// The construct span should be a child of the obtain span.
	StartConstructSpan(ctx context.Context, typeName, constructID string) (context.Context, trace.Span)

	// EndSpanWithError completes a span, optionally recording an error.
	EndSpanWithError(span trace.Span, err error)

	// AddSpanEvent adds an event to the current span in context.
	AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue)
}

// otelSpanManager implements SpanManager using OpenTelemetry.
type otelSpanManager struct{}

// NewSpanManager returns a SpanManager that uses OpenTelemetry.
//
// The span manager uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func NewSpanManager() SpanManager {
	return &otelSpanManager{}
}

// StartObtainSpan starts a span for the locked phase of an obtain call.
func (m *otelSpanManager) StartObtainSpan(ctx context.Context, typeName string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "sole.obtain",
		trace.WithAttributes(
			attribute.String("type.name", typeName),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartConstructSpan starts a span for a construction attempt.
func (m *otelSpanManager) StartConstructSpan(ctx context.Context, typeName, constructID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "sole.construct",
		trace.WithAttributes(
			attribute.String("type.name", typeName),
			attribute.String("construct.id", constructID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func (m *otelSpanManager) EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// AddSpanEvent adds an event to the current span.
func (m *otelSpanManager) AddSpanEvent(ctx context.Context, name string, attrs ...attribute.KeyValue) {
	span := trace.SpanFromContext(ctx)
	if span == nil || !span.IsRecording() {
		return
	}
	span.AddEvent(name, trace.WithAttributes(attrs...))
}
