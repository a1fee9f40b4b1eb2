package xcloudtrace

import (
	"context"

	"google.golang.org/grpc/metadata"
)

// =============================================================================
// gRPC Metadata 载体
// =============================================================================

// MetadataCarrier 将 gRPC metadata.MD 适配为 Carrier。
//
// metadata.MD 的键统一为小写，Get 内部做小写化查找，因此可直接使用
// Header 常量。同名多值时取第一个值。
type MetadataCarrier metadata.MD

// Get 实现 Carrier。
func (mc MetadataCarrier) Get(key string) string {
	values := metadata.MD(mc).Get(key)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// ExtractFromIncomingContext 使用默认配置从 gRPC incoming context 的
// metadata 提取追踪上下文。
//
// 仅做载体查找——拦截器、认证等传输层装配不在本包职责内。
func ExtractFromIncomingContext(ctx context.Context) (SpanContext, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return SpanContext{}, false
	}
	return Extract(MetadataCarrier(md))
}
