package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/omeyang/addrkit/internal/inventory"
	"github.com/omeyang/addrkit/pkg/util/xaddr"
	"github.com/omeyang/addrkit/pkg/util/xderive"
)

// exitError 表示需要非零退出码但已完成输出的场景。
// 命令内部已完成所有输出，main 只需设置退出码。
type exitError struct {
	code int
}

func (e *exitError) Error() string { return "" }

// usageError 表示参数错误，映射到退出码 2。
type usageError struct {
	msg string
}

func (e *usageError) Error() string { return e.msg }

// isCLIUsageError 识别 urfave/cli 框架产生的参数类错误。
func isCLIUsageError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "flag provided but not defined") ||
		strings.Contains(msg, "No help topic for") ||
		strings.Contains(msg, "Required flag") ||
		strings.Contains(msg, "invalid value")
}

// 创建所有子命令。
func createCommands() []*cli.Command {
	return []*cli.Command{
		createMcastmacCommand(),
		createEUI64Command(),
		createNetworkCommand(),
		createInspectCommand(),
	}
}

// createMcastmacCommand 创建 mcastmac 子命令。
func createMcastmacCommand() *cli.Command {
	return &cli.Command{
		Name:      "mcastmac",
		Aliases:   []string{"m"},
		Usage:     "计算多播 IP 对应的组播 MAC 地址",
		ArgsUsage: "<ip> [ip...]",
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdMcastmac(os.Stdout, os.Stderr, cmd.Args().Slice())
		},
	}
}

// createEUI64Command 创建 eui64 子命令。
func createEUI64Command() *cli.Command {
	return &cli.Command{
		Name:      "eui64",
		Aliases:   []string{"e"},
		Usage:     "由 MAC 与 /64 前缀合成 IPv6 地址",
		ArgsUsage: "[mac...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "prefix",
				Aliases:  []string{"p"},
				Usage:    "IPv6 前缀（如 2001:db8:: 或 2001:db8::/64）",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "MAC 列表文件，每行一条，\"-\" 表示标准输入",
			},
			&cli.StringFlag{
				Name:  "inventory",
				Usage: "输出 Ansible 清单格式（yaml 或 json）",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "输出文件路径，默认标准输出",
			},
			&cli.IntFlag{
				Name:  "parallel",
				Usage: "并行度（0 表示 GOMAXPROCS）",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			macs, err := collectMACs(cmd.String("input"), cmd.Args().Slice())
			if err != nil {
				return err
			}

			out, closeFn, err := openOutput(cmd.String("output"))
			if err != nil {
				return err
			}
			defer closeFn()

			return cmdEUI64(ctx, out, os.Stderr, macs,
				cmd.String("prefix"), cmd.String("inventory"), int(cmd.Int("parallel")))
		},
	}
}

// createNetworkCommand 创建 network 子命令。
func createNetworkCommand() *cli.Command {
	return &cli.Command{
		Name:      "network",
		Aliases:   []string{"n"},
		Usage:     "计算带前缀地址的网络地址",
		ArgsUsage: "<addr/len> [addr/len...]",
		Flags: []cli.Flag{
			createFamilyFlag(),
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			return cmdNetwork(os.Stdout, cmd.String("family"), cmd.Args().Slice())
		},
	}
}

// createInspectCommand 创建 inspect 子命令。
func createInspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "解析地址并输出分类信息",
		ArgsUsage: "<addr>",
		Flags: []cli.Flag{
			createFamilyFlag(),
			&cli.BoolFlag{
				Name:  "json",
				Usage: "以 JSON 输出",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			args := cmd.Args().Slice()
			if len(args) != 1 {
				return &usageError{msg: "inspect 命令需要且仅需要一个地址参数"}
			}
			return cmdInspect(os.Stdout, cmd.String("family"), cmd.Bool("json"), args[0])
		},
	}
}

func createFamilyFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "family",
		Aliases: []string{"f"},
		Usage:   "地址族（mac/ipv4/ipv6），默认自动识别",
	}
}

// cmdMcastmac 逐条计算多播 MAC 并输出。
// 非多播地址跳过并在 stderr 提示；解析失败则整体出错。
func cmdMcastmac(w, errW io.Writer, ips []string) error {
	if len(ips) == 0 {
		return &usageError{msg: "mcastmac 命令需要至少一个 IP 地址参数"}
	}

	for _, text := range ips {
		ip, err := parseIP(text)
		if err != nil {
			return err
		}
		mac, err := xderive.MulticastMAC(ip)
		if errors.Is(err, xderive.ErrNotMulticast) {
			fmt.Fprintf(errW, "跳过 %q: %v\n", text, err)
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", text, err)
		}
		fmt.Fprintln(w, mac)
	}
	return nil
}

// cmdEUI64 批量合成 EUI-64 地址并按请求的格式输出。
// 无效记录写入 stderr 提示后跳过，不中断整批处理。
func cmdEUI64(ctx context.Context, w, errW io.Writer, macs []string, prefixText, invFormat string, parallel int) error {
	if len(macs) == 0 {
		return &usageError{msg: "eui64 命令需要至少一个 MAC（参数或 --input）"}
	}

	results, err := xderive.BatchEUI64(ctx, macs, prefixText,
		xderive.WithParallelism(parallel))
	if err != nil {
		if errorsIsAny(err, xderive.ErrInvalidPrefix, xderive.ErrPrefixTooLong) {
			return &usageError{msg: err.Error()}
		}
		return err
	}

	if invFormat != "" {
		inv := inventory.Build(results)
		out, err := inv.Marshal(inventory.Format(invFormat))
		if err != nil {
			if errorsIsAny(err, inventory.ErrUnsupportedFormat) {
				return &usageError{msg: err.Error()}
			}
			return err
		}
		_, err = w.Write(out)
		return err
	}

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(errW, "跳过第 %d 条 %q: %v\n", r.Index+1, r.Input, r.Err)
			continue
		}
		fmt.Fprintln(w, r.Addr)
	}
	return nil
}

// cmdNetwork 逐条计算网络地址并输出。
func cmdNetwork(w io.Writer, familyFlag string, args []string) error {
	if len(args) == 0 {
		return &usageError{msg: "network 命令需要至少一个 addr/len 参数"}
	}

	for _, text := range args {
		addr, err := parseAddr(familyFlag, text)
		if err != nil {
			return err
		}
		n := addr.Network()
		fmt.Fprintf(w, "%s/%d\n", n, n.PrefixLen())
	}
	return nil
}

// inspectReport 是 inspect 命令的输出结构。
type inspectReport struct {
	Input     string `json:"input"`
	Family    string `json:"family"`
	Address   string `json:"address"`
	Prefix    int    `json:"prefix_len"`
	Network   string `json:"network"`
	Class     string `json:"class"`
	Unicast   bool   `json:"unicast"`
	Multicast bool   `json:"multicast"`
}

// cmdInspect 解析单个地址并输出分类信息。
func cmdInspect(w io.Writer, familyFlag string, jsonOut bool, text string) error {
	addr, err := parseAddr(familyFlag, text)
	if err != nil {
		return err
	}

	c := xaddr.Classify(addr)
	report := inspectReport{
		Input:     text,
		Family:    addr.Family().String(),
		Address:   addr.String(),
		Prefix:    addr.PrefixLen(),
		Network:   addr.Network().String(),
		Class:     c.String(),
		Unicast:   c.IsUnicast,
		Multicast: c.IsMulticast,
	}

	if jsonOut {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	fmt.Fprintf(w, "输入:     %s\n", report.Input)
	fmt.Fprintf(w, "地址族:   %s\n", report.Family)
	fmt.Fprintf(w, "地址:     %s\n", report.Address)
	fmt.Fprintf(w, "前缀长度: %d\n", report.Prefix)
	fmt.Fprintf(w, "网络地址: %s\n", report.Network)
	fmt.Fprintf(w, "分类:     %s\n", report.Class)
	return nil
}

// parseIP 自动识别 IPv4/IPv6 并解析（不接受 MAC）。
func parseIP(text string) (xaddr.Addr, error) {
	if strings.Contains(text, ":") {
		return xaddr.ParseIPv6(text)
	}
	return xaddr.ParseIPv4(text)
}

// parseAddr 按 --family 或自动识别规则解析地址。
func parseAddr(familyFlag, text string) (xaddr.Addr, error) {
	family, err := resolveFamily(familyFlag, text)
	if err != nil {
		return xaddr.Addr{}, err
	}
	return xaddr.Parse(family, text)
}

// resolveFamily 将 --family 取值或文本形态映射到地址族。
func resolveFamily(familyFlag, text string) (xaddr.Family, error) {
	switch strings.ToLower(familyFlag) {
	case "mac":
		return xaddr.FamilyMAC, nil
	case "ipv4", "4":
		return xaddr.FamilyIPv4, nil
	case "ipv6", "6":
		return xaddr.FamilyIPv6, nil
	case "":
		return detectFamily(text)
	default:
		return xaddr.FamilyInvalid, &usageError{
			msg: fmt.Sprintf("未知地址族 %q（可选: mac/ipv4/ipv6）", familyFlag),
		}
	}
}

// detectFamily 根据文本形态推断地址族。
// 点分十进制判定为 IPv4；五个 ":" 分隔的两位十六进制组判定为 MAC；
// 其余含 ":" 的形式判定为 IPv6。
func detectFamily(text string) (xaddr.Family, error) {
	addrText := text
	if i := strings.LastIndexByte(addrText, '/'); i >= 0 {
		addrText = addrText[:i]
	}

	switch {
	case strings.Count(addrText, ".") == 3 && !strings.Contains(addrText, ":"):
		return xaddr.FamilyIPv4, nil
	case looksLikeMAC(addrText):
		return xaddr.FamilyMAC, nil
	case strings.Contains(addrText, ":"):
		return xaddr.FamilyIPv6, nil
	default:
		return xaddr.FamilyInvalid, &usageError{
			msg: fmt.Sprintf("无法识别 %q 的地址族，请使用 --family 指定", text),
		}
	}
}

// looksLikeMAC 判断文本是否为六组两位十六进制的 MAC 形式。
func looksLikeMAC(text string) bool {
	groups := strings.Split(text, ":")
	if len(groups) != 6 {
		return false
	}
	for _, g := range groups {
		if len(g) != 2 {
			return false
		}
	}
	return true
}

// collectMACs 合并命令行参数与 --input 文件中的 MAC 列表。
// 文件中空行与 "#" 开头的行被忽略。
func collectMACs(inputPath string, args []string) ([]string, error) {
	macs := append([]string(nil), args...)
	if inputPath == "" {
		return macs, nil
	}

	var r io.Reader
	if inputPath == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(inputPath)
		if err != nil {
			return nil, fmt.Errorf("无法读取输入文件: %w", err)
		}
		defer func() { _ = f.Close() }() //nolint:errcheck // defer cleanup: 只读文件的 Close 错误可忽略
		r = f
	}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		macs = append(macs, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("读取输入失败: %w", err)
	}
	return macs, nil
}

// openOutput 打开输出目标，返回 writer 与清理函数。
func openOutput(path string) (io.Writer, func(), error) {
	if path == "" || path == "-" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("无法创建输出文件: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// errorsIsAny 判断 err 是否匹配任一目标错误。
func errorsIsAny(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// setupSignalHandler 设置信号处理。
// 设计决策: 第一次信号优雅取消，第二次信号强制退出（退出码 130 = 128 + SIGINT）。
func setupSignalHandler(cancel context.CancelFunc) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel() // 第一次信号: 优雅取消

		<-sigCh
		signal.Stop(sigCh) // 回收订阅
		os.Exit(130) // 第二次信号: 强制退出
	}()
}
