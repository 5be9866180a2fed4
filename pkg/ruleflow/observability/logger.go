// Package observability provides production-grade observability features
// for ruleflow: structured logging, metrics, and distributed tracing.
//
// Features:
//   - Structured logging via slog (Go stdlib)
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// All features are opt-in and have no-op implementations when disabled.
package observability

import (
	"log/slog"
	"time"
)

// EnrichLogger adds batch context to a logger.
// Returns a new logger with a batch_id field.
//
// Example:
//
//	enriched := EnrichLogger(logger, "batch-123")
//	enriched.Info("combining rules") // includes batch_id
func EnrichLogger(logger *slog.Logger, batchID string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(slog.String("batch_id", batchID))
}

// LogRuleCompiled logs a successful rule compilation.
func LogRuleCompiled(logger *slog.Logger, tokenCount int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("rule compiled",
		slog.Int("tokens", tokenCount),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogRuleError logs a rule compilation failure.
func LogRuleError(logger *slog.Logger, rule string, err error) {
	if logger == nil {
		return
	}
	logger.Error("rule compilation failed",
		slog.String("rule", rule),
		slog.String("error", err.Error()),
	)
}

// LogRuleSkipped logs a rule skipped during batch combination.
// Skipped rules are a diagnostic side channel, not a batch failure.
func LogRuleSkipped(logger *slog.Logger, rule string, err error) {
	if logger == nil {
		return
	}
	logger.Warn("skipping rule that failed to parse",
		slog.String("rule", rule),
		slog.String("error", err.Error()),
	)
}

// LogBatchStart logs the start of a rule batch combination.
func LogBatchStart(logger *slog.Logger, batchID string, ruleCount int) {
	if logger == nil {
		return
	}
	logger.Info("combining rule batch",
		slog.String("batch_id", batchID),
		slog.Int("rules", ruleCount),
	)
}

// LogBatchComplete logs a finished batch combination.
func LogBatchComplete(logger *slog.Logger, batchID string, combined, skipped int, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Info("rule batch combined",
		slog.String("batch_id", batchID),
		slog.Int("combined", combined),
		slog.Int("skipped", skipped),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluation logs a tree evaluation.
func LogEvaluation(logger *slog.Logger, result bool, durationMs float64) {
	if logger == nil {
		return
	}
	logger.Debug("rule evaluated",
		slog.Bool("result", result),
		slog.Float64("duration_ms", durationMs),
	)
}

// LogEvaluationError logs a tree evaluation failure.
func LogEvaluationError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("rule evaluation failed",
		slog.String("error", err.Error()),
	)
}

// TimedOperation measures the duration of an operation.
// Returns a function that, when called, returns the elapsed time in milliseconds.
//
// Example:
//
//	done := TimedOperation()
//	// ... do work ...
//	durationMs := done()
func TimedOperation() func() float64 {
	start := time.Now()
	return func() float64 {
		return float64(time.Since(start).Milliseconds())
	}
}
