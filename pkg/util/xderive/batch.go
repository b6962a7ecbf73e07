package xderive

import (
	"context"
	"fmt"
	"net/netip"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/omeyang/addrkit/pkg/util/xaddr"
)

// Result 是批量 EUI-64 转换中单条记录的结果。
// Err 非 nil 时 Addr 为零值；Index 是记录在输入切片中的位置。
type Result struct {
	// Index 是输入切片中的下标（0 起始）。
	Index int

	// Input 是原始 MAC 文本。
	Input string

	// Addr 是派生出的 EUI-64 IPv6 地址。
	Addr xaddr.Addr

	// Err 是该条记录的转换错误（如无效 MAC）。
	Err error
}

// batchOptions 控制批量转换行为。
type batchOptions struct {
	parallelism int
}

// BatchOption 配置 [BatchEUI64]。
type BatchOption func(*batchOptions)

// WithParallelism 设置批量转换的最大并行度。
// n ≤ 0 时使用 GOMAXPROCS。
func WithParallelism(n int) BatchOption {
	return func(o *batchOptions) {
		o.parallelism = n
	}
}

// BatchEUI64 对一组 MAC 文本并行执行 EUI-64 转换。
//
// 返回的切片与 macs 等长且顺序一致：results[i] 对应 macs[i]
// （下游按输入位置分配节点编号，顺序是契约的一部分）。
// 单条记录的失败只记录在 Result.Err 中，不影响其他记录；
// 跳过还是中止由调用方决定。
//
// 前缀文本解析失败或 ctx 被取消时整批失败，返回 (nil, error)。
//
// 设计决策: 每条记录是独立的纯计算，worker 只写自己下标的槽位，
// 无共享可变状态，因此除 errgroup 外不需要任何同步原语。
func BatchEUI64(ctx context.Context, macs []string, prefixText string, opts ...BatchOption) ([]Result, error) {
	prefix, err := ParsePrefix64(prefixText)
	if err != nil {
		return nil, err
	}

	o := &batchOptions{parallelism: runtime.GOMAXPROCS(0)}
	for _, opt := range opts {
		opt(o)
	}
	if o.parallelism <= 0 {
		o.parallelism = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(macs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.parallelism)
	for i, macText := range macs {
		i, macText := i, macText
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return fmt.Errorf("batch EUI-64 canceled at record %d: %w", i, err)
			}
			addr, err := derive64(macText, prefix)
			results[i] = Result{Index: i, Input: macText, Addr: addr, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// derive64 是批量路径的单条转换：宽松解析 MAC 后套用已解析的前缀。
func derive64(macText string, prefix netip.Prefix) (xaddr.Addr, error) {
	mac, err := xaddr.ParseMACLoose(macText)
	if err != nil {
		return xaddr.Addr{}, fmt.Errorf("%w: %w", ErrUnicastMACRequired, err)
	}
	return EUI64FromAddr(mac, prefix)
}
