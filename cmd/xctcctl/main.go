// xctcctl 是 X-Cloud-Trace-Context 头值的命令行解码工具。
//
// 用法:
//
//	xctcctl <命令> [命令参数]
//
// 命令:
//
//	decode <头值>   解码单个头值并输出 trace_id / span_id / sampled
//	  --json        以 JSON 输出
//	help            显示帮助信息
//
// 退出码:
//
//	0: 解码成功
//	1: 头值中无可用追踪上下文
//	2: 参数错误（缺少头值、未知命令等）
//
// 示例:
//
//	xctcctl decode "0000000000000001000000000000007b/123;o=1"
//	xctcctl decode --json "463ac35c9f6413ad48485a3953bb6124"
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入，例如:
//
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD)"
//
// ）。
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

func main() {
	os.Exit(run())
}

// createApp 创建 CLI 应用。
func createApp() *cli.Command {
	return &cli.Command{
		Name:    "xctcctl",
		Usage:   "X-Cloud-Trace-Context 头值解码工具",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands: []*cli.Command{
			decodeCommand(),
		},
		DefaultCommand: "help",
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
	}
}

func run() int {
	app := createApp()

	if err := app.Run(context.Background(), os.Args); err != nil {
		var emptyErr *emptyError
		if errors.As(err, &emptyErr) {
			fmt.Fprintf(os.Stderr, "无追踪上下文: %v\n", emptyErr)
			return 1
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（未知 flag、未知命令）同样映射为退出码 2
		if _, ok := err.(cli.ExitCoder); ok {
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 2
	}

	return 0
}
