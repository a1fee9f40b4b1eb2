package xcloudtrace

import (
	"log/slog"
	"net/http"
)

// =============================================================================
// HTTP Header 载体
// =============================================================================

// HeaderCarrier 将 http.Header 适配为 Carrier。
//
// Get 使用 http.Header 的规范化键查找，因此大小写不敏感。
type HeaderCarrier http.Header

// Get 实现 Carrier。
func (hc HeaderCarrier) Get(key string) string {
	return http.Header(hc).Get(key)
}

// ExtractFromRequest 使用默认配置从 HTTP 请求提取追踪上下文。
// r 为 nil 时返回 ok=false。
func ExtractFromRequest(r *http.Request) (SpanContext, bool) {
	if r == nil {
		return SpanContext{}, false
	}
	return Extract(HeaderCarrier(r.Header))
}

// =============================================================================
// HTTP 中间件
// =============================================================================

// HTTPMiddleware 返回 HTTP 中间件。
//
// 自动从请求头提取追踪上下文并注入 request context，默认同时注入
// OpenTelemetry 远端 span context（可用 WithOTel(false) 关闭）。
// 头缺失或格式非法时不做任何注入，请求原样下传。
//
// 本中间件只做提取，不自动生成缺失的追踪 ID——生成属于上游
// （负载均衡器/网关）的职责。
func HTTPMiddleware(opts ...Option) func(http.Handler) http.Handler {
	cfg := applyOptions(opts)
	e := cfg.newExtractor()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sc, ok := e.Extract(HeaderCarrier(r.Header))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			ctx, err := ContextWithSpanContext(r.Context(), sc)
			if err != nil { // 防御性处理：正常流程不会触发（仅 nil context）
				e.log().Warn("xcloudtrace: failed to inject span context",
					slog.Any("error", err))
				next.ServeHTTP(w, r)
				return
			}
			if cfg.installOTel {
				ctx = ContextWithRemote(ctx, sc)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
