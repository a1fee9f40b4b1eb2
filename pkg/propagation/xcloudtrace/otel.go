package xcloudtrace

import (
	"context"
	"encoding/binary"

	"go.opentelemetry.io/otel/trace"
)

// =============================================================================
// OpenTelemetry 适配
// =============================================================================

// OTel 将解码结果转换为 OpenTelemetry 的远端 span context。
//
// 转换规则：
//   - TraceID 两个半段按大端序写入 otel 的 16 字节 trace ID
//   - SpanID 按大端序写入 8 字节 span ID
//   - Sampled 映射为 trace.FlagsSampled
//   - Remote 恒为 true（来自上游头的上下文）
//
// 设计决策: 本格式的 span ID 为十进制无符号整数，0 是结构上合法的
// 取值；但 otel 视全零 span ID 为无效，此时返回 ok=false，调用方应
// 退化为不接入 otel。
func (sc SpanContext) OTel() (trace.SpanContext, bool) {
	var traceID trace.TraceID
	binary.BigEndian.PutUint64(traceID[:8], sc.TraceID.High)
	binary.BigEndian.PutUint64(traceID[8:], sc.TraceID.Low)

	var spanID trace.SpanID
	binary.BigEndian.PutUint64(spanID[:], sc.SpanID)

	var flags trace.TraceFlags
	if sc.Sampled {
		flags = trace.FlagsSampled
	}

	otelSC := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: flags,
		Remote:     true,
	})
	if !otelSC.IsValid() {
		return trace.SpanContext{}, false
	}
	return otelSC, true
}

// ContextWithRemote 将解码结果作为 OpenTelemetry 远端 span context
// 注入 ctx，使下游通过 otel SDK 创建的 span 延续该链路。
//
// 转换失败时（见 OTel）原样返回 ctx。
func ContextWithRemote(ctx context.Context, sc SpanContext) context.Context {
	otelSC, ok := sc.OTel()
	if !ok {
		return ctx
	}
	return trace.ContextWithRemoteSpanContext(ctx, otelSC)
}
