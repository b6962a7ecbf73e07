// Package xderive 提供跨地址族的派生算法。
//
// xderive 基于 [xaddr] 的地址模型实现两类确定性派生：
//
//   - [MulticastMAC]: 多播 IPv4 地址 → 以太网多播 MAC（RFC 1112），
//     多播 IPv6 地址 → 以太网多播 MAC（RFC 2464）
//   - [EUI64]: 48 位单播 MAC + IPv6 前缀 → Modified EUI-64 主机地址
//     （RFC 4291 §2.5.1）
//
// # 位映射规则
//
// IPv4 → MAC（RFC 1112）：28 位多播组 ID 中只有低 23 位进入 MAC，
// 第二八位组的最高位被丢弃：
//
//	239.1.1.1 → 01:00:5e:01:01:01
//
// IPv6 → MAC（RFC 2464）：多播地址的低 32 位拼在固定前缀 33:33 之后：
//
//	ff02::1:ff00:1 → 33:33:01:ff:00:01
//
// MAC → EUI-64（RFC 4291）：MAC 两半之间插入 ff:fe，再翻转首字节的
// U/L 位（第 7 位，XOR 0x02），与 64 位前缀拼接：
//
//	00:11:22:33:44:55 + 2001:db8::/64 → 2001:0db8:0000:0000:0211:22ff:fe33:4455
//
// # 批量转换
//
// [BatchEUI64] 对一组 MAC 文本做并行 EUI-64 转换：
//   - 结果顺序与输入顺序一致（下游按输入位置分配节点编号）
//   - 单条记录的失败只记录在该条 [Result].Err 中，不中断整批
//     （跳过还是中止由调用方决定）
//   - 并行度经 errgroup.SetLimit 约束，context 取消会中断整批
//
// # 设计决策
//
//   - 派生是纯函数：输入地址不被修改，输出是独立的新 [xaddr.Addr]，
//     源地址与派生地址之间无共享状态，可从任意多个 goroutine 并发调用
//   - 前置条件不满足即报错而非静默放过：非多播输入返回 [ErrNotMulticast]，
//     无效或非单播 MAC 返回 [ErrUnicastMACRequired]
//   - EUI-64 的前缀用 [net/netip] 解析，接受压缩形式（"2001:db8::"）；
//     前缀长度超过 64 位返回 [ErrPrefixTooLong]，超出前缀长度的主机位
//     会被掩码清零后再拼接
package xderive
