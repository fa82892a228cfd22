package observability_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/davidbz/codecraft/internal/observability"
)

func TestContextValues(t *testing.T) {
	t.Run("should round-trip correlation values", func(t *testing.T) {
		ctx := context.Background()
		ctx = observability.WithTraceID(ctx, "trace")
		ctx = observability.WithSpanID(ctx, "span")
		ctx = observability.WithRequestID(ctx, "request")
		ctx = observability.WithProvider(ctx, "openrouter")
		ctx = observability.WithModel(ctx, "mistralai/mistral-nemo")

		require.Equal(t, "trace", observability.GetTraceID(ctx))
		require.Equal(t, "span", observability.GetSpanID(ctx))
		require.Equal(t, "request", observability.GetRequestID(ctx))
		require.Equal(t, "openrouter", observability.GetProvider(ctx))
		require.Equal(t, "mistralai/mistral-nemo", observability.GetModel(ctx))
	})

	t.Run("should return empty strings when unset", func(t *testing.T) {
		require.Empty(t, observability.GetTraceID(context.Background()))
		require.Empty(t, observability.GetModel(context.Background()))
	})

	t.Run("should generate ids of the expected size", func(t *testing.T) {
		require.Len(t, observability.GenerateTraceID(), 32)
		require.Len(t, observability.GenerateSpanID(), 16)
		require.Len(t, observability.GenerateRequestID(), 36)
		require.NotEqual(t, observability.GenerateTraceID(), observability.GenerateTraceID())
	})
}

func TestInitLogger(t *testing.T) {
	t.Run("should reject unknown levels", func(t *testing.T) {
		_, err := observability.InitLogger(&observability.Config{Level: "chatty", Development: false})

		require.Error(t, err)
	})

	t.Run("should honor the configured level", func(t *testing.T) {
		logger, err := observability.InitLogger(&observability.Config{Level: "warn", Development: true})
		t.Cleanup(func() { observability.SetLogger(nil) })

		require.NoError(t, err)
		require.False(t, logger.Core().Enabled(zapcore.InfoLevel))
		require.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	})
}

func TestFromContext(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	observability.SetLogger(zap.New(core))
	t.Cleanup(func() { observability.SetLogger(nil) })

	ctx := observability.WithRequestID(context.Background(), "req-1")
	ctx = observability.WithModel(ctx, "qwen/qwen2.5-coder-32b-instruct")

	observability.FromContext(ctx).Info("hello")

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "req-1", fields["request_id"])
	require.Equal(t, "qwen/qwen2.5-coder-32b-instruct", fields["model"])
	require.NotContains(t, fields, "trace_id")
}

func TestEventBus_Publish(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	bus := observability.NewEventBus(zap.New(core))

	ctx := observability.WithTraceID(context.Background(), "trace-1")
	bus.Publish(ctx, "generation.succeeded", map[string]interface{}{
		"model":          "llama-3-70b",
		"document_bytes": 512,
	})

	entries := logs.FilterMessage("generation.succeeded").All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	require.Equal(t, "generation.succeeded", fields["event"])
	require.Equal(t, "trace-1", fields["trace_id"])
	require.Equal(t, "llama-3-70b", fields["model"])
	require.EqualValues(t, 512, fields["document_bytes"])
}
