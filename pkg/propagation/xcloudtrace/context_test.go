package xcloudtrace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omeyang/tracekit/pkg/propagation/xcloudtrace"
)

// =============================================================================
// Context 存取测试
// =============================================================================

func TestContextWithSpanContext(t *testing.T) {
	sc := xcloudtrace.SpanContext{
		TraceID: xcloudtrace.TraceID{High: 1, Low: 123},
		SpanID:  42,
		Sampled: true,
	}

	ctx, err := xcloudtrace.ContextWithSpanContext(context.Background(), sc)
	require.NoError(t, err)

	got, ok := xcloudtrace.SpanContextFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, sc, got)
}

func TestContextWithSpanContext_NilContext(t *testing.T) {
	//nolint:staticcheck // 刻意传入 nil context 验证防御分支
	ctx, err := xcloudtrace.ContextWithSpanContext(nil, xcloudtrace.SpanContext{})
	require.ErrorIs(t, err, xcloudtrace.ErrNilContext)
	assert.Nil(t, ctx)
}

func TestSpanContextFromContext_Missing(t *testing.T) {
	_, ok := xcloudtrace.SpanContextFromContext(context.Background())
	assert.False(t, ok)

	//nolint:staticcheck // 刻意传入 nil context 验证防御分支
	_, ok = xcloudtrace.SpanContextFromContext(nil)
	assert.False(t, ok)
}

// TestContextWithSpanContext_Overwrite 后写入的值覆盖先写入的值。
func TestContextWithSpanContext_Overwrite(t *testing.T) {
	first := xcloudtrace.SpanContext{TraceID: xcloudtrace.TraceID{High: 1, Low: 1}, SpanID: 1, Sampled: true}
	second := xcloudtrace.SpanContext{TraceID: xcloudtrace.TraceID{High: 2, Low: 2}, SpanID: 2}

	ctx, err := xcloudtrace.ContextWithSpanContext(context.Background(), first)
	require.NoError(t, err)
	ctx, err = xcloudtrace.ContextWithSpanContext(ctx, second)
	require.NoError(t, err)

	got, ok := xcloudtrace.SpanContextFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, second, got)
}
