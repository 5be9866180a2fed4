package observability

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the ruleflow tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("ruleflow")

// SpanManager handles trace span lifecycle.
// Use NewSpanManager() for OTel tracing or NoopSpanManager{} when disabled.
type SpanManager interface {
	// StartCompileSpan starts a span for a rule compilation.
	// Returns the context with span and the span itself.
	StartCompileSpan(ctx context.Context, ruleLen int) (context.Context, trace.Span)

	// StartCombineSpan starts a span for a batch combination.
	StartCombineSpan(ctx context.Context, batchID string, ruleCount int) (context.Context, trace.Span)

	// StartEvalSpan starts a span for a tree evaluation.
	StartEvalSpan(ctx context.Context) (context.Context, trace.Span)

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

// StartCompileSpan starts a span for a rule compilation.
func (m *otelSpanManager) StartCompileSpan(ctx context.Context, ruleLen int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "ruleflow.compile",
		trace.WithAttributes(
			attribute.Int("rule.length", ruleLen),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartCombineSpan starts a span for a batch combination.
func (m *otelSpanManager) StartCombineSpan(ctx context.Context, batchID string, ruleCount int) (context.Context, trace.Span) {
	return tracer.Start(ctx, "ruleflow.combine",
		trace.WithAttributes(
			attribute.String("batch.id", batchID),
			attribute.Int("batch.rules", ruleCount),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// StartEvalSpan starts a span for a tree evaluation.
func (m *otelSpanManager) StartEvalSpan(ctx context.Context) (context.Context, trace.Span) {
	return tracer.Start(ctx, "ruleflow.evaluate",
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
