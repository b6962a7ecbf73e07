// addrctl 是地址解析与派生的命令行工具。
//
// 用法:
//
//	addrctl <命令> [命令参数]
//
// 命令:
//
//	mcastmac <ip>          计算多播 IP 对应的组播 MAC 地址
//	eui64 [mac...]         由 MAC 与 /64 前缀合成 IPv6 地址（EUI-64）
//	network <addr/len>     计算带前缀地址的网络地址
//	inspect <addr>         解析地址并输出分类信息
//	help                   显示帮助信息
//
// eui64 命令说明:
//
//	MAC 可作为参数直接给出，也可通过 --input 从文件读取（每行一条，
//	"-" 表示标准输入）。--inventory 指定 yaml 或 json 时输出 Ansible
//	清单（all.children.remotes.hosts 层级），否则逐行输出合成地址。
//	无效的 MAC 记录会被跳过并在 stderr 提示，不中断整批处理。
//
// 退出码:
//
//	0: 命令执行成功
//	1: 命令执行失败（地址无效、文件不可读等）
//	2: 参数错误（缺少必需参数、未知命令等）
//
// 示例:
//
//	addrctl mcastmac 239.1.1.1                       # 01:00:5e:01:01:01
//	addrctl eui64 --prefix 2001:db8:: 00:11:22:33:44:55
//	addrctl eui64 --prefix fe80:: --input macs.txt --inventory yaml
//	addrctl network 20.54.55.68/28                   # 20.54.55.64/28
//	addrctl inspect --json ff02:0000:0000:0000:0000:0000:0000:0001
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
//	go build -ldflags "-X main.Version=1.0.0 -X main.GitCommit=$(git rev-parse --short HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
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
		Name:           "addrctl",
		Usage:          "网络地址解析与派生工具",
		Version:        fmt.Sprintf("%s (commit: %s, built: %s)", Version, GitCommit, BuildTime),
		Commands:       createCommands(),
		DefaultCommand: "help",
		Authors: []any{
			"AddrKit Team",
		},
		// 设计决策: 禁止 urfave/cli 直接调用 os.Exit，
		// 由 run() 统一处理退出码映射，确保与文档退出码契约一致。
		ExitErrHandler: func(_ context.Context, _ *cli.Command, err error) {
			// ExitCoder 错误（如未知命令）的消息需在此输出，
			// 替代 HandleExitCoder 的默认 os.Exit 行为。
			if _, ok := err.(cli.ExitCoder); ok {
				fmt.Fprintln(os.Stderr, err)
			}
		},
		Description: `addrctl 基于 xaddr/xderive 包，提供 MAC、IPv4、IPv6 三类地址的
解析、分类、网络地址计算，以及 RFC 1112/2464 的多播 MAC 映射和
RFC 4291 的 EUI-64 地址合成。

地址族自动识别规则:
  含三个 "." 的点分十进制        IPv4
  五个 ":" 分隔的两位十六进制组  MAC
  其余含 ":" 的形式              IPv6
  可通过 --family 显式指定 (mac/ipv4/ipv6)`,
	}
}

func run() int {
	app := createApp()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	setupSignalHandler(cancel)

	if err := app.Run(ctx, os.Args); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "参数错误: %v\n", usageErr)
			return 2
		}
		// CLI 框架产生的参数错误（如未知 flag、未知命令）也返回退出码 2，
		// 与文档契约"参数错误 → 退出码 2"保持一致。
		if isCLIUsageError(err) {
			// ExitErrHandler 或 flag 解析器已向 stderr 输出错误详情，此处仅设置退出码
			return 2
		}
		fmt.Fprintf(os.Stderr, "错误: %v\n", err)
		return 1
	}

	return 0
}
