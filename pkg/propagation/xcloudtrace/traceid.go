package xcloudtrace

// =============================================================================
// TraceID 类型
// =============================================================================

// TraceIDHexLen trace ID 的规范十六进制长度：128-bit -> 32 个小写十六进制字符
const TraceIDHexLen = 32

// TraceID 128-bit 追踪 ID，以高低两个无符号 64 位半段表示。
//
// 有效性约束：两个半段均不为零。这不是通用的"128 位全零检查"——
// 单个半段为零即非法，详见包文档的"兼容性怪癖"。
type TraceID struct {
	High uint64
	Low  uint64
}

// IsValid 报告两个半段是否均不为零。
func (t TraceID) IsValid() bool {
	return t.High != 0 && t.Low != 0
}

// String 渲染为 32 位小写十六进制的规范形式。
// 对 ParseTraceID 接受的输入满足往返一致：ParseTraceID(s) 成功时
// 结果的 String() 与 s 相同。
func (t TraceID) String() string {
	var buf [TraceIDHexLen]byte
	putLowerHex(buf[:16], t.High)
	putLowerHex(buf[16:], t.Low)
	return string(buf[:])
}

// =============================================================================
// 解析
// =============================================================================

// ParseTraceID 解析 32 位小写十六进制的 trace ID。
//
// 校验规则：
//   - 长度必须恰好为 32，否则非法
//   - 前 16 个字符为高位半段，后 16 个为低位半段
//   - 每个半段按宽松小写十六进制解码；任一半段为零即整体非法
//
// 返回 ok=false 表示非法。本函数是纯校验，不产生日志；
// 提取边界（Extractor.Extract）在此失败时负责诊断性日志。
func ParseTraceID(s string) (TraceID, bool) {
	if len(s) != TraceIDHexLen {
		return TraceID{}, false
	}

	// 左侧字符为高位半段；半段边界为 max(0, len-16)，长度已限定 32，
	// 边界固定在 16。
	const boundary = TraceIDHexLen - 16

	high := lenientLowerHex(s[:boundary])
	if high == 0 {
		return TraceID{}, false
	}
	low := lenientLowerHex(s[boundary:])
	if low == 0 {
		return TraceID{}, false
	}
	return TraceID{High: high, Low: low}, true
}

// lenientLowerHex 宽松小写十六进制解码。
//
// 任何非 [0-9a-f] 字符（包括大写十六进制）都使整段结果为 0，而非返回
// 错误。全零段与非法段因此共享同一个返回值——调用方以"结果为零"
// 统一判定非法。必须原样保留该合并行为以保证兼容。
func lenientLowerHex(s string) uint64 {
	var v uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		v <<= 4
		switch {
		case c >= '0' && c <= '9':
			v |= uint64(c - '0')
		case c >= 'a' && c <= 'f':
			v |= uint64(c-'a') + 10
		default:
			return 0
		}
	}
	return v
}

const lowerHexDigits = "0123456789abcdef"

// putLowerHex 将 v 以定长小写十六进制写入 dst（高位在前，零填充）。
// 使用固定大小缓冲区，避免 fmt 的反射开销。
func putLowerHex(dst []byte, v uint64) {
	for i := len(dst) - 1; i >= 0; i-- {
		dst[i] = lowerHexDigits[v&0xf]
		v >>= 4
	}
}
