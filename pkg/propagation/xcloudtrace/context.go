package xcloudtrace

import (
	"context"
	"errors"
)

// =============================================================================
// Context 存取
// =============================================================================

// ErrNilContext 表示传入的 context 为 nil。
var ErrNilContext = errors.New("xcloudtrace: nil context")

// 设计决策: contextKey 使用 string 而非 int+iota——包私有类型不会与
// 其他包的 context key 冲突，字符串值在调试时可读性更高。
type contextKey string

const keySpanContext = contextKey("xcloudtrace:span_context")

// ContextWithSpanContext 将解码结果注入 context。
//
// 如果 ctx 为 nil，返回 ErrNilContext。
func ContextWithSpanContext(ctx context.Context, sc SpanContext) (context.Context, error) {
	if ctx == nil {
		return nil, ErrNilContext
	}
	return context.WithValue(ctx, keySpanContext, sc), nil
}

// SpanContextFromContext 从 context 提取解码结果。
//
// ok=false 表示 context 中没有注入过追踪上下文（或 ctx 为 nil）。
func SpanContextFromContext(ctx context.Context) (SpanContext, bool) {
	if ctx == nil {
		return SpanContext{}, false
	}
	sc, ok := ctx.Value(keySpanContext).(SpanContext)
	return sc, ok
}
