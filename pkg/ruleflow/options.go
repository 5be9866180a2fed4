package ruleflow

import (
	"log/slog"

	"github.com/randalmurphal/ruleflow/pkg/ruleflow/observability"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for compile, combine, and evaluate
// diagnostics. Passing nil disables logging entirely.
//
// Default: slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMetrics enables OpenTelemetry metrics using the global meter
// provider. Configure the provider before creating the engine:
//
//	otel.SetMeterProvider(yourProvider)
//	eng := ruleflow.New(ruleflow.WithMetrics())
func WithMetrics() Option {
	return func(e *Engine) {
		e.metrics = observability.NewMetricsRecorder()
	}
}

// WithMetricsRecorder sets a custom metrics recorder.
// Useful for testing or alternative metrics backends.
func WithMetricsRecorder(m observability.MetricsRecorder) Option {
	return func(e *Engine) {
		if m == nil {
			m = observability.NoopMetrics{}
		}
		e.metrics = m
	}
}

// WithTracing enables OpenTelemetry spans around compile, combine, and
// evaluate operations, using the global tracer provider.
func WithTracing() Option {
	return func(e *Engine) {
		e.spans = observability.NewSpanManager()
		e.tracingEnabled = true
	}
}

// WithSpanManager sets a custom span manager and enables tracing.
func WithSpanManager(s observability.SpanManager) Option {
	return func(e *Engine) {
		if s == nil {
			e.spans = observability.NoopSpanManager{}
			e.tracingEnabled = false
			return
		}
		e.spans = s
		e.tracingEnabled = true
	}
}
