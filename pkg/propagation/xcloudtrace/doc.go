// Package xcloudtrace 解码 Google Cloud 旧版 X-Cloud-Trace-Context 追踪头。
//
// # 头格式
//
// 头值遵循以下三种形式之一：
//
//	TRACE_ID
//	TRACE_ID/SPAN_ID
//	TRACE_ID/SPAN_ID;o=FLAGS
//
// 其中 TRACE_ID 是恰好 32 位的小写十六进制字符串（128-bit，按高低两个
// 64 位半段解析），SPAN_ID 是无符号 64 位整数的十进制表示，FLAGS 段
// 仅有一个定位式的采样位判定（见下文"兼容性怪癖"）。
//
// # 提取契约
//
// 提取操作只有两种结果：成功的 SpanContext，或"无追踪上下文"（ok=false）。
// 任何格式错误——长度不符、非法字符、span ID 溢出——都在提取边界被吸收，
// 永不向调用方返回错误。底层解析函数（ParseTraceID、ParseUint64）保持
// 独立严格：ParseUint64 对非法输入返回类型化的 *FormatError，供需要
// 严格校验的调用方单独使用。
//
// # 兼容性怪癖
//
// 为与 zipkin 的 propagation-stackdriver 提取器保持逐字节兼容，本包
// 刻意保留两个非常规行为：
//
//  1. 零半段即非法：trace ID 任一 64 位半段解码为 0 时整个 ID 视为非法。
//     宽松十六进制解码对非法字符同样返回 0，因此"真正全零的半段"与
//     "含非法字符的半段"不可区分。不要"修复"这一合并。
//  2. 定位式采样位：采样判定不做 key=value 语义解析，只检查自 ';' 起的
//     剩余长度是否恰为 4 且偏移 3 处字符是否为 '1'。因此 ";x=1" 与
//     ";o=1" 等效；其他长度的尾部一律维持默认的已采样判定。
//
// # 使用方式
//
// 服务端入口使用 HTTPMiddleware 自动提取并注入 context：
//
//	handler := xcloudtrace.HTTPMiddleware()(mux)
//
// 手动提取使用 Extract 配合任意 Carrier 适配器（HeaderCarrier、
// MetadataCarrier），或直接用 ExtractValue 解析单个头值。
//
// # OpenTelemetry 集成
//
// SpanContext.OTel 将解码结果转换为 otel 的远端 span context，
// ContextWithRemote 将其注入 context，使下游 otel span 延续该链路。
package xcloudtrace
