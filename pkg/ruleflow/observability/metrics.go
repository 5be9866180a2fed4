package observability

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// MetricsRecorder records ruleflow metrics.
// Use NewMetricsRecorder() for OTel metrics or NoopMetrics{} when disabled.
type MetricsRecorder interface {
	// RecordCompile records a rule compilation with its duration and
	// error status.
	RecordCompile(ctx context.Context, duration time.Duration, err error)

	// RecordEvaluation records a tree evaluation with its result,
	// duration, and error status.
	RecordEvaluation(ctx context.Context, result bool, duration time.Duration, err error)

	// RecordBatch records a batch combination: how many rules were
	// folded in and how many were skipped.
	RecordBatch(ctx context.Context, combined, skipped int)
}

// otelMetrics implements MetricsRecorder using OpenTelemetry.
type otelMetrics struct {
	compiles       metric.Int64Counter
	compileLatency metric.Float64Histogram
	compileErrors  metric.Int64Counter
	evaluations    metric.Int64Counter
	evalLatency    metric.Float64Histogram
	evalErrors     metric.Int64Counter
	batchCombined  metric.Int64Counter
	batchSkipped   metric.Int64Counter
}

var (
	defaultMetrics     *otelMetrics
	defaultMetricsOnce sync.Once
	defaultMetricsErr  error
)

// getDefaultMetrics returns the default OTel metrics instance.
// Lazily initializes the metrics on first call.
func getDefaultMetrics() (*otelMetrics, error) {
	defaultMetricsOnce.Do(func() {
		defaultMetrics, defaultMetricsErr = newOtelMetrics()
	})
	return defaultMetrics, defaultMetricsErr
}

// newOtelMetrics creates a new OTel metrics instance.
func newOtelMetrics() (*otelMetrics, error) {
	meter := otel.Meter("ruleflow")

	compiles, err := meter.Int64Counter("ruleflow.compile.total",
		metric.WithDescription("Number of rule compilations"),
	)
	if err != nil {
		return nil, err
	}

	compileLatency, err := meter.Float64Histogram("ruleflow.compile.latency_ms",
		metric.WithDescription("Rule compilation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	compileErrors, err := meter.Int64Counter("ruleflow.compile.errors",
		metric.WithDescription("Number of rule compilation errors"),
	)
	if err != nil {
		return nil, err
	}

	evaluations, err := meter.Int64Counter("ruleflow.eval.total",
		metric.WithDescription("Number of rule evaluations"),
	)
	if err != nil {
		return nil, err
	}

	evalLatency, err := meter.Float64Histogram("ruleflow.eval.latency_ms",
		metric.WithDescription("Rule evaluation latency in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	evalErrors, err := meter.Int64Counter("ruleflow.eval.errors",
		metric.WithDescription("Number of rule evaluation errors"),
	)
	if err != nil {
		return nil, err
	}

	batchCombined, err := meter.Int64Counter("ruleflow.batch.combined",
		metric.WithDescription("Number of rules folded into combined trees"),
	)
	if err != nil {
		return nil, err
	}

	batchSkipped, err := meter.Int64Counter("ruleflow.batch.skipped",
		metric.WithDescription("Number of rules skipped during batch combination"),
	)
	if err != nil {
		return nil, err
	}

	return &otelMetrics{
		compiles:       compiles,
		compileLatency: compileLatency,
		compileErrors:  compileErrors,
		evaluations:    evaluations,
		evalLatency:    evalLatency,
		evalErrors:     evalErrors,
		batchCombined:  batchCombined,
		batchSkipped:   batchSkipped,
	}, nil
}

// NewMetricsRecorder returns a MetricsRecorder that uses OpenTelemetry.
// If metrics initialization fails, returns a no-op recorder.
//
// The recorder uses the global OTel meter provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetMeterProvider(yourProvider)
func NewMetricsRecorder() MetricsRecorder {
	m, err := getDefaultMetrics()
	if err != nil {
		slog.Warn("metrics initialization failed, using no-op recorder",
			slog.String("error", err.Error()))
		return NoopMetrics{}
	}
	return m
}

// RecordCompile records a rule compilation.
func (m *otelMetrics) RecordCompile(ctx context.Context, duration time.Duration, err error) {
	m.compiles.Add(ctx, 1)
	m.compileLatency.Record(ctx, float64(duration.Milliseconds()))
	if err != nil {
		m.compileErrors.Add(ctx, 1)
	}
}

// RecordEvaluation records a tree evaluation.
func (m *otelMetrics) RecordEvaluation(ctx context.Context, result bool, duration time.Duration, err error) {
	attrs := []attribute.KeyValue{
		attribute.Bool("result", result),
	}
	m.evaluations.Add(ctx, 1, metric.WithAttributes(attrs...))
	m.evalLatency.Record(ctx, float64(duration.Milliseconds()), metric.WithAttributes(attrs...))
	if err != nil {
		m.evalErrors.Add(ctx, 1)
	}
}

// RecordBatch records a batch combination.
func (m *otelMetrics) RecordBatch(ctx context.Context, combined, skipped int) {
	m.batchCombined.Add(ctx, int64(combined))
	m.batchSkipped.Add(ctx, int64(skipped))
}
