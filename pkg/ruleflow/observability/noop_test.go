package observability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNoopMetrics(t *testing.T) {
	m := NoopMetrics{}
	ctx := context.Background()

	t.Run("RecordCompile does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordCompile(ctx, time.Millisecond, nil)
			m.RecordCompile(ctx, time.Millisecond, errors.New("bad rule"))
		})
	})

	t.Run("RecordEvaluation does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordEvaluation(ctx, true, time.Millisecond, nil)
			m.RecordEvaluation(ctx, false, time.Millisecond, errors.New("missing field"))
		})
	})

	t.Run("RecordBatch does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordBatch(ctx, 3, 1)
		})
	})

	t.Run("nil context does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			m.RecordCompile(nil, time.Millisecond, nil) //nolint:staticcheck
		})
	})
}

func TestNoopSpanManager(t *testing.T) {
	sm := NoopSpanManager{}
	ctx := context.Background()

	t.Run("StartCompileSpan returns context unchanged", func(t *testing.T) {
		newCtx, span := sm.StartCompileSpan(ctx, 10)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("StartCombineSpan returns context unchanged", func(t *testing.T) {
		newCtx, span := sm.StartCombineSpan(ctx, "batch-1", 2)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("StartEvalSpan returns context unchanged", func(t *testing.T) {
		newCtx, span := sm.StartEvalSpan(ctx)
		assert.Equal(t, ctx, newCtx)
		assert.NotNil(t, span)
		assert.False(t, span.IsRecording())
	})

	t.Run("EndSpanWithError does not panic", func(t *testing.T) {
		_, span := sm.StartEvalSpan(ctx)
		assert.NotPanics(t, func() {
			sm.EndSpanWithError(span, errors.New("eval failed"))
			sm.EndSpanWithError(nil, nil)
		})
	})

	t.Run("AddSpanEvent does not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			sm.AddSpanEvent(ctx, "event")
		})
	})
}
