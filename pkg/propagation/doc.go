// Package propagation 提供追踪上下文跨服务传播的子包。
//
// 子包列表：
//   - xcloudtrace: Google Cloud 旧版 X-Cloud-Trace-Context 头的解码与传播
//
// 设计原则：
//   - 提取操作永不失败：格式错误一律降级为"无追踪上下文"
//   - 与 OpenTelemetry 语义对齐，解码结果可直接接入 otel 生态
//   - 纯函数实现，无共享状态，天然并发安全
package propagation
