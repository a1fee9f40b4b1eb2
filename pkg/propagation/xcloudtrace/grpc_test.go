package xcloudtrace_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/omeyang/tracekit/pkg/propagation/xcloudtrace"
)

// =============================================================================
// gRPC Metadata 载体测试
// =============================================================================

func TestMetadataCarrier_Get(t *testing.T) {
	md := metadata.Pairs(xcloudtrace.Header, validTraceID+"/7")
	carrier := xcloudtrace.MetadataCarrier(md)

	// metadata.MD 内部统一小写，Header 常量可直接使用
	assert.Equal(t, validTraceID+"/7", carrier.Get(xcloudtrace.Header))
	assert.Equal(t, validTraceID+"/7", carrier.Get("x-cloud-trace-context"))
	assert.Empty(t, carrier.Get("x-other"))
}

func TestMetadataCarrier_Get_MultiValue(t *testing.T) {
	md := metadata.Pairs(
		xcloudtrace.Header, validTraceID+"/1",
		xcloudtrace.Header, validTraceID+"/2",
	)
	carrier := xcloudtrace.MetadataCarrier(md)

	// 同名多值取第一个
	assert.Equal(t, validTraceID+"/1", carrier.Get(xcloudtrace.Header))
}

func TestExtractFromIncomingContext(t *testing.T) {
	t.Run("metadata 中存在头", func(t *testing.T) {
		md := metadata.Pairs(xcloudtrace.Header, validTraceID+"/42;o=1")
		ctx := metadata.NewIncomingContext(context.Background(), md)

		sc, ok := xcloudtrace.ExtractFromIncomingContext(ctx)
		require.True(t, ok)
		assert.Equal(t, xcloudtrace.TraceID{High: 1, Low: 123}, sc.TraceID)
		assert.Equal(t, uint64(42), sc.SpanID)
		assert.True(t, sc.Sampled)
	})

	t.Run("无 metadata 返回 Empty", func(t *testing.T) {
		_, ok := xcloudtrace.ExtractFromIncomingContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("metadata 中无头返回 Empty", func(t *testing.T) {
		ctx := metadata.NewIncomingContext(context.Background(), metadata.MD{})
		_, ok := xcloudtrace.ExtractFromIncomingContext(ctx)
		assert.False(t, ok)
	})
}
