package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	appctx "paydash/internal/core/context"
)

func observed() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{zap.New(core).Sugar()}, logs
}

func TestWithContext_AddsTraceFields(t *testing.T) {
	log, logs := observed()
	ctx := appctx.WithTrace(context.Background(), &appctx.TraceContext{TraceID: "t-42", RequestID: "r-7"})

	log.WithContext(ctx).WithComponent("filter.store").Infow("reset", "category", "offers")

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "t-42", fields["trace_id"])
	assert.Equal(t, "r-7", fields["request_id"])
	assert.Equal(t, "filter.store", fields["component"])
	assert.Equal(t, "offers", fields["category"])
}

func TestFromContext_UsesAttachedLogger(t *testing.T) {
	log, logs := observed()
	ctx := WithLogger(context.Background(), log)

	Debug(ctx, "projected", "rows", 3)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "projected", logs.All()[0].Message)
	assert.EqualValues(t, 3, logs.All()[0].ContextMap()["rows"])
}

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log, err := New(Config{Level: "loud", OutputPaths: []string{"stderr"}})
	require.NoError(t, err)
	assert.False(t, log.Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, log.Desugar().Core().Enabled(zapcore.InfoLevel))
}

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, Default(), Default())

	log := FromContext(context.Background())
	require.NotNil(t, log)
	assert.Same(t, Default().SugaredLogger, log.SugaredLogger)

	traced := FromContext(appctx.WithTrace(context.Background(), appctx.NewTraceContext()))
	assert.NotSame(t, Default().SugaredLogger, traced.SugaredLogger)
}

func TestNewNop_Discards(t *testing.T) {
	log := NewNop()
	assert.False(t, log.Desugar().Core().Enabled(zapcore.ErrorLevel))
	Info(WithLogger(context.Background(), log), "dropped")
}
