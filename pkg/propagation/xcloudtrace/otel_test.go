package xcloudtrace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"

	"github.com/omeyang/tracekit/pkg/propagation/xcloudtrace"
)

// =============================================================================
// OpenTelemetry 适配测试
// =============================================================================

func TestSpanContext_OTel(t *testing.T) {
	sc := xcloudtrace.SpanContext{
		TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
		SpanID:  42,
		Sampled: true,
	}

	otelSC, ok := sc.OTel()
	require.True(t, ok)
	assert.True(t, otelSC.IsValid())
	assert.True(t, otelSC.IsRemote())
	assert.True(t, otelSC.IsSampled())

	// 十六进制呈现必须与本包的规范形式一致
	assert.Equal(t, validTraceID, otelSC.TraceID().String())
	assert.Equal(t, "000000000000002a", otelSC.SpanID().String())
}

func TestSpanContext_OTel_NotSampled(t *testing.T) {
	sc := xcloudtrace.SpanContext{
		TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
		SpanID:  42,
		Sampled: false,
	}

	otelSC, ok := sc.OTel()
	require.True(t, ok)
	assert.False(t, otelSC.IsSampled())
}

// TestSpanContext_OTel_ZeroSpanID span ID 为 0 对本格式合法，
// 但 otel 视全零 span ID 为无效，转换必须失败。
func TestSpanContext_OTel_ZeroSpanID(t *testing.T) {
	sc := xcloudtrace.SpanContext{
		TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
		SpanID:  0,
		Sampled: true,
	}

	otelSC, ok := sc.OTel()
	assert.False(t, ok)
	assert.Zero(t, otelSC)
}

func TestContextWithRemote(t *testing.T) {
	t.Run("有效上下文注入为远端 span context", func(t *testing.T) {
		sc := xcloudtrace.SpanContext{
			TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
			SpanID:  42,
			Sampled: true,
		}

		ctx := xcloudtrace.ContextWithRemote(context.Background(), sc)
		got := trace.SpanContextFromContext(ctx)
		require.True(t, got.IsValid())
		assert.True(t, got.IsRemote())
		assert.Equal(t, validTraceID, got.TraceID().String())
	})

	t.Run("转换失败时原样返回 ctx", func(t *testing.T) {
		sc := xcloudtrace.SpanContext{
			TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
			SpanID:  0, // otel 视为无效
		}

		ctx := xcloudtrace.ContextWithRemote(context.Background(), sc)
		assert.False(t, trace.SpanContextFromContext(ctx).IsValid())
	})
}
