package ruleflow

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/randalmurphal/ruleflow/pkg/ruleflow/observability"
)

// Engine wraps the pure compile/combine/evaluate functions with
// structured logging, metrics, and tracing. A new Engine logs through
// slog.Default and records nothing else unless metrics or tracing are
// enabled.
//
// An Engine holds no mutable state and is safe for concurrent use.
type Engine struct {
	logger         *slog.Logger
	metrics        observability.MetricsRecorder
	spans          observability.SpanManager
	tracingEnabled bool
}

// New creates an Engine with the given options.
//
// Example:
//
//	eng := ruleflow.New(
//	    ruleflow.WithLogger(myLogger),
//	    ruleflow.WithMetrics(),
//	    ruleflow.WithTracing(),
//	)
func New(opts ...Option) *Engine {
	e := &Engine{
		logger:  slog.Default(),
		metrics: observability.NoopMetrics{},
		spans:   observability.NoopSpanManager{},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateRule compiles rule text into an abstract syntax tree.
// Semantics match the package-level CreateRule.
func (e *Engine) CreateRule(ctx context.Context, rule string) (node *Node, err error) {
	done := observability.TimedOperation()
	start := time.Now()

	if e.tracingEnabled {
		spanCtx, compileSpan := e.spans.StartCompileSpan(ctx, len(rule))
		ctx = spanCtx
		defer func() {
			e.spans.EndSpanWithError(compileSpan, err)
		}()
	}

	tokens, err := Tokenize(rule)
	if err == nil && len(tokens) == 0 {
		err = ErrNoTokens
	}
	if err == nil {
		node, err = Parse(tokens)
	}

	e.metrics.RecordCompile(ctx, time.Since(start), err)
	if err != nil {
		observability.LogRuleError(e.logger, rule, err)
		return nil, err
	}
	observability.LogRuleCompiled(e.logger, len(tokens), done())
	return node, nil
}

// CombineRules compiles a batch of rule texts and folds them with OR.
// Each batch is tagged with a generated batch ID in log records and
// trace attributes. Semantics match the package-level CombineRules:
// per-rule parse failures are logged and skipped, and an all-failing
// batch returns ErrNoValidRules.
func (e *Engine) CombineRules(ctx context.Context, rules []string) (node *Node, err error) {
	batchID := uuid.New().String()
	log := observability.EnrichLogger(e.logger, batchID)
	done := observability.TimedOperation()

	if e.tracingEnabled {
		spanCtx, combineSpan := e.spans.StartCombineSpan(ctx, batchID, len(rules))
		ctx = spanCtx
		defer func() {
			e.spans.EndSpanWithError(combineSpan, err)
		}()
	}

	observability.LogBatchStart(e.logger, batchID, len(rules))

	node, folded, skipped, err := combineRules(rules, func(rule string, cause error) {
		observability.LogRuleSkipped(log, rule, cause)
	})

	e.metrics.RecordBatch(ctx, folded, skipped)
	if err != nil {
		return nil, err
	}
	observability.LogBatchComplete(e.logger, batchID, folded, skipped, done())
	return node, nil
}

// Evaluate walks a compiled tree against a record.
// Semantics match the package-level Evaluate.
func (e *Engine) Evaluate(ctx context.Context, node *Node, record map[string]any) (result bool, err error) {
	done := observability.TimedOperation()
	start := time.Now()

	if e.tracingEnabled {
		spanCtx, evalSpan := e.spans.StartEvalSpan(ctx)
		ctx = spanCtx
		defer func() {
			e.spans.EndSpanWithError(evalSpan, err)
		}()
	}

	result, err = Evaluate(node, record)

	e.metrics.RecordEvaluation(ctx, result, time.Since(start), err)
	if err != nil {
		observability.LogEvaluationError(e.logger, err)
		return false, err
	}
	observability.LogEvaluation(e.logger, result, done())
	return result, nil
}
