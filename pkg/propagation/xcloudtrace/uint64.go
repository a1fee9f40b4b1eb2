package xcloudtrace

import "strconv"

// =============================================================================
// 无符号 64 位十进制解析
// =============================================================================

// FormatError 表示十进制文本不符合无符号 64 位整数格式。
//
// ParseUint64 对外返回 *FormatError，供需要严格校验的调用方通过
// errors.As 识别。提取边界（Extractor.Extract）会吸收该错误并降级为
// "无追踪上下文"。
type FormatError struct {
	Input  string // 原始输入
	Reason string // 失败原因描述
}

func (e *FormatError) Error() string {
	return "xcloudtrace: invalid uint64 " + strconv.Quote(e.Input) + ": " + e.Reason
}

const (
	// maxUint64Digits uint64 最大值 18446744073709551615 共 20 位
	maxUint64Digits = 20

	// safeDigits 有符号 64 位累加器可无条件容纳的位数：
	// int64 最大值 9223372036854775807 共 19 位，18 位前缀绝对安全
	safeDigits = 18

	// maxUint64Prefix / maxUint64Suffix uint64 最大值按 18+2 位切分：
	// 184467440737095516 | 15
	maxUint64Prefix = 184467440737095516
	maxUint64Suffix = 15
)

// ParseUint64 将十进制字符串精确解析为无符号 64 位整数。
//
// 失败条件（均返回 *FormatError）：
//   - 输入为空
//   - 长度超过 20
//   - 含非数字字符（不接受符号、空白、下划线）
//   - 数值超过 18446744073709551615
//
// 算法采用两段式策略：前 18 位在有符号累加器内直接累加（绝对不会
// 溢出），第 19、20 位逐字符查表后做显式上界检查。整个过程不依赖
// 任何"有符号溢出后再修正"的捷径，也不做宽位运算。
func ParseUint64(s string) (uint64, error) {
	n := len(s)
	if n == 0 {
		return 0, &FormatError{Input: s, Reason: "empty input"}
	}
	if n > maxUint64Digits {
		return 0, &FormatError{Input: s, Reason: "too long for uint64"}
	}

	prefix := n
	if prefix > safeDigits {
		prefix = safeDigits
	}
	var left int64
	for i := 0; i < prefix; i++ {
		d, err := digitAt(s, i)
		if err != nil {
			return 0, err
		}
		left = left*10 + int64(d)
	}
	if n <= safeDigits {
		return uint64(left), nil
	}

	digit19, err := digitAt(s, safeDigits)
	if err != nil {
		return 0, err
	}
	if n == safeDigits+1 {
		// 19 位最大值 9999999999999999999 仍低于 uint64 上限
		return uint64(left)*10 + uint64(digit19), nil
	}

	digit20, err := digitAt(s, safeDigits+1)
	if err != nil {
		return 0, err
	}
	right := digit19*10 + digit20
	if left > maxUint64Prefix || (left == maxUint64Prefix && right > maxUint64Suffix) {
		return 0, &FormatError{Input: s, Reason: "out of range for uint64"}
	}
	return uint64(left)*100 + uint64(right), nil
}

// digitAt 读取 s[i] 处的十进制数字，非数字字符返回 *FormatError。
func digitAt(s string, i int) (int, error) {
	c := s[i]
	if c < '0' || c > '9' {
		return 0, &FormatError{
			Input:  s,
			Reason: "non-digit character at position " + strconv.Itoa(i),
		}
	}
	return int(c - '0'), nil
}
