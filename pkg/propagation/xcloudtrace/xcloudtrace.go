package xcloudtrace

import (
	"log/slog"
	"strings"
)

// =============================================================================
// 常量
// =============================================================================

// Header 默认的追踪头名称。
const Header = "X-Cloud-Trace-Context"

// 日志属性 Key 常量，遵循 OpenTelemetry 语义约定（下划线分隔）
const (
	KeyTraceID = "trace_id"
	KeySpanID  = "span_id"
	KeySampled = "sampled"
)

// defaultSpanIDText 头中缺少 span 段时的默认 span ID 文本。
// 与 zipkin propagation-stackdriver 一致：缺省值走同一条十进制解析
// 路径，而非直接取整数 1。
const defaultSpanIDText = "1"

// =============================================================================
// Carrier 载体抽象
// =============================================================================

// Carrier 外部载体的取值能力。
//
// 载体是头值的来源（HTTP Header、gRPC Metadata 等），本包不关心其
// 传输方式，只依赖按 key 读取的能力。返回空字符串表示 key 不存在。
//
// 适配器见 HeaderCarrier（HTTP）与 MetadataCarrier（gRPC）。
type Carrier interface {
	Get(key string) string
}

// =============================================================================
// SpanContext 解码结果
// =============================================================================

// SpanContext 从头值解码出的追踪上下文。
//
// 不可变值类型，每次提取重新构造，无共享状态。
//
// 设计决策: 提取结果不携带原始 FLAGS 文本——zipkin 的提取器除采样位外丢弃
// 全部标志内容，保持该行为以免下游依赖未定义的扩展位。
type SpanContext struct {
	TraceID TraceID
	SpanID  uint64
	Sampled bool
}

// LogAttrs 返回用于结构化日志的 slog 属性。
// trace ID 以规范 32 位十六进制呈现，span ID 以十进制呈现（与头中
// 的传输形式一致）。
func (sc SpanContext) LogAttrs() []slog.Attr {
	return []slog.Attr{
		slog.String(KeyTraceID, sc.TraceID.String()),
		slog.Uint64(KeySpanID, sc.SpanID),
		slog.Bool(KeySampled, sc.Sampled),
	}
}

// =============================================================================
// 选项配置（Extractor 与 HTTP 中间件共用）
// =============================================================================

// Option 提取器/中间件选项。
// 共用同一套选项类型，避免重复定义。
type Option func(*config)

type config struct {
	header      string       // 追踪头名称
	logger      *slog.Logger // 诊断日志；nil 表示使用 slog.Default()
	installOTel bool         // 中间件是否注入 otel 远端 span context
}

// WithHeader 设置追踪头名称。
//
// 默认为 Header（"X-Cloud-Trace-Context"）。用于头名称非标准的网关场景。
func WithHeader(name string) Option {
	return func(cfg *config) {
		cfg.header = name
	}
}

// WithLogger 设置诊断日志的 logger。
//
// trace ID 十六进制校验失败时会产生一条 Debug 级别的诊断日志，仅用于
// 可观测性，不影响控制流和返回值。默认使用 slog.Default()。
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithOTel 设置 HTTPMiddleware 是否将解码结果注入为 OpenTelemetry
// 远端 span context。
//
// 默认为 true。仅对中间件生效，对手动 Extract 无影响。
func WithOTel(enabled bool) Option {
	return func(cfg *config) {
		cfg.installOTel = enabled
	}
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		header:      Header,
		installOTel: true, // 默认接入 otel
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	return cfg
}

// =============================================================================
// Extractor 提取器
// =============================================================================

// Extractor 从载体中提取追踪上下文。
//
// 纯函数式实现：无共享可变状态，可被任意多个 goroutine 并发使用。
type Extractor struct {
	header string
	logger *slog.Logger
}

// NewExtractor 创建提取器。
func NewExtractor(opts ...Option) *Extractor {
	cfg := applyOptions(opts)
	return cfg.newExtractor()
}

func (cfg *config) newExtractor() *Extractor {
	return &Extractor{
		header: cfg.header,
		logger: cfg.logger,
	}
}

// defaultExtractor 包级便捷函数使用的默认提取器。
var defaultExtractor = NewExtractor()

// Extract 使用默认配置从载体提取追踪上下文。
func Extract(carrier Carrier) (SpanContext, bool) {
	return defaultExtractor.Extract(carrier)
}

// ExtractValue 使用默认配置解析单个头值。
func ExtractValue(value string) (SpanContext, bool) {
	return defaultExtractor.ExtractValue(value)
}

// Extract 按 X-Cloud-Trace-Context 约定从载体提取追踪上下文。
//
// 返回 ok=false 表示"无追踪上下文"：头缺失，或头值的任何部分不符合
// 格式。提取永不返回错误——所有格式问题都在此边界被吸收。
//
// 契约：carrier 不可为 nil，违反时 panic。载体本身缺失属于调用方的
// 契约错误，与"头缺失"的正常降级语义不同。
func (e *Extractor) Extract(carrier Carrier) (SpanContext, bool) {
	if carrier == nil {
		panic("xcloudtrace: nil carrier")
	}
	value := carrier.Get(e.header)
	if value == "" {
		return SpanContext{}, false
	}
	return e.ExtractValue(value)
}

// ExtractValue 解析单个头值。
//
// 语法：TRACE_ID | TRACE_ID/SPAN_ID | TRACE_ID/SPAN_ID;o=FLAGS。
// trace ID 非法时整个头作废（无论 span 段内容如何）；span 段缺失时
// span ID 取默认值 1，采样判定默认为已采样。
func (e *Extractor) ExtractValue(value string) (SpanContext, bool) {
	tokens := splitSegments(value)
	if len(tokens) == 0 {
		return SpanContext{}, false
	}

	traceID, ok := ParseTraceID(tokens[0])
	if !ok {
		// 诊断性旁路日志：不影响控制流和返回值
		e.log().Debug("xcloudtrace: trace id is not a valid lower-hex string",
			slog.String(KeyTraceID, tokens[0]))
		return SpanContext{}, false
	}

	spanText := defaultSpanIDText
	sampled := true
	if len(tokens) >= 2 {
		spanText, sampled = splitSpanAndFlags(tokens[1])
	}

	spanID, err := ParseUint64(spanText)
	if err != nil {
		// 格式错误在提取边界被吸收，符合"提取永不失败"契约
		return SpanContext{}, false
	}

	return SpanContext{TraceID: traceID, SpanID: spanID, Sampled: sampled}, true
}

// log 返回诊断日志的 logger。
//
// 设计决策: logger 为 nil 时延迟解析 slog.Default() 而非构造时固化，
// 使运行期通过 slog.SetDefault 更换全局 logger 对已创建的提取器生效。
func (e *Extractor) log() *slog.Logger {
	if e.logger != nil {
		return e.logger
	}
	return slog.Default()
}

// =============================================================================
// 内部辅助函数 — 头值切分
// =============================================================================

// splitSegments 按 '/' 切分头值并丢弃尾部空段。
//
// 丢弃尾部空段与 zipkin propagation-stackdriver 的切分语义一致：
// "abc…/" 等价于只有 trace-id
// 段（span ID 走默认值），而 "abc…//2" 的中间空段保留并在 span 解析时
// 判为非法。全部为空段的输入（如 "/"）返回空切片，由调用方降级为
// "无追踪上下文"。
func splitSegments(value string) []string {
	tokens := strings.Split(value, "/")
	for len(tokens) > 0 && tokens[len(tokens)-1] == "" {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// splitSpanAndFlags 从第二段中切出 span ID 文本并应用定位式采样判定。
//
// 采样判定是精确的定位检查而非 key=value 语义解析：
//   - 无 ';'：整段为 span ID 文本，维持默认已采样
//   - 有 ';'：span ID 文本为 ';' 之前的子串；仅当自 ';' 起的剩余长度
//     恰为 4 且偏移 3 处字符不为 '1' 时判定为未采样，其他长度一律
//     维持已采样
//
// 因此 ";x=1" 与 ";o=1" 等效，";o=0"、";0=0" 判定为未采样，而 ";o=11"
// 或 ";abc…" 这类长度不为 4 的尾部不改变判定。必须按定位规则原样
// 实现，不得替换为语义化的 key=value 解析。
func splitSpanAndFlags(segment string) (spanText string, sampled bool) {
	pos := strings.IndexByte(segment, ';')
	if pos == -1 {
		return segment, true
	}
	rest := len(segment) - pos
	return segment[:pos], rest != 4 || segment[pos+3] == '1'
}
