package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/tracekit/pkg/propagation/xcloudtrace"
)

// =============================================================================
// 错误类型
// =============================================================================

// emptyError 头值中无可用追踪上下文（退出码 1）。
type emptyError struct {
	value string
}

func (e *emptyError) Error() string {
	return fmt.Sprintf("头值 %q 不含可用的追踪上下文", e.value)
}

// usageError 参数错误（退出码 2）。
type usageError struct {
	msg string
}

func (e *usageError) Error() string {
	return e.msg
}

// =============================================================================
// decode 命令
// =============================================================================

// decodeResult decode 命令的 JSON 输出结构。
type decodeResult struct {
	TraceID string `json:"trace_id"`
	SpanID  uint64 `json:"span_id"`
	Sampled bool   `json:"sampled"`
}

func decodeCommand() *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "解码单个 X-Cloud-Trace-Context 头值",
		ArgsUsage: "<头值>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: runDecode,
	}
}

func runDecode(_ context.Context, cmd *cli.Command) error {
	value := cmd.Args().First()
	if value == "" {
		return &usageError{msg: "缺少头值参数，用法: xctcctl decode <头值>"}
	}

	sc, ok := xcloudtrace.ExtractValue(value)
	if !ok {
		return &emptyError{value: value}
	}

	out := commandWriter(cmd)
	if cmd.Bool("json") {
		return json.NewEncoder(out).Encode(decodeResult{
			TraceID: sc.TraceID.String(),
			SpanID:  sc.SpanID,
			Sampled: sc.Sampled,
		})
	}

	fmt.Fprintln(out, "trace_id:", sc.TraceID)
	fmt.Fprintln(out, "span_id:", sc.SpanID)
	fmt.Fprintln(out, "sampled:", sc.Sampled)
	return nil
}

// commandWriter 返回命令的输出目标，未设置时回退到标准输出。
// 测试通过设置根命令的 Writer 捕获输出。
func commandWriter(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
