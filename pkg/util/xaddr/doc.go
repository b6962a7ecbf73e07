// Package xaddr 提供 MAC / IPv4 / IPv6 三族统一的网络地址模型。
//
// xaddr 以单一可比较值类型 [Addr]（族标签 + 定长八位组缓冲 + 前缀长度）
// 建模三种地址族，提供严格解析、1 起始的八位组访问、规范化格式化、
// 地址分类判断和前缀（网络）计算，并通过 convert.go 与标准库
// [net/netip]、[net.HardwareAddr] 及社区库 [go4.org/netipx] 互通。
//
// # 核心功能
//
//   - family.go: 地址族类型 [Family]（MAC=6 字节、IPv4=4 字节、IPv6=16 字节）
//     及各族的八位组数、最大前缀长度常量
//   - addr.go: [Addr] 值类型，八位组访问（1 起始索引）、前缀长度管理
//   - parse.go: 严格的按族解析（[ParseMAC] / [ParseIPv4] / [ParseIPv6]），
//     可选 "/n" 前缀长度后缀；[ParseMACLoose] 接受 -/:/. 分隔及裸 12 位十六进制
//   - format.go: 规范字符串及备选格式（MAC 的 Cisco 点分、IPv4 的连续十六进制）
//   - classify.go: 单播/多播/实验/链路本地/私有/6to4/ULA/IG/UL 位判断，
//     以及聚合的 [Classify]
//   - network.go: 按前缀长度计算网络地址（始终返回新值，不修改输入）
//   - convert.go: 与 netip.Addr / netip.Prefix / netipx.IPRange /
//     net.HardwareAddr 的桥接
//
// # 快速示例
//
// 解析并分类：
//
//	addr, _ := xaddr.ParseIPv4("239.1.1.1")
//	fmt.Println(addr.IsMulticast())  // true
//	fmt.Println(addr)                // 239.1.1.1
//
// 网络地址计算：
//
//	addr, _ := xaddr.ParseIPv4("20.54.55.68/28")
//	fmt.Println(addr.Network())      // 20.54.55.64
//
// MAC 的两种格式：
//
//	mac, _ := xaddr.ParseMAC("00:11:22:33:44:55")
//	fmt.Println(mac)                         // 00:11:22:33:44:55
//	s, _ := mac.Format(xaddr.StyleCisco)
//	fmt.Println(s)                           // 0011.2233.4455
//
// # 设计决策
//
//   - [Addr] 是可比较值类型，可做 map key，零值无效（IsValid 返回 false），
//     与 netip.Addr 的建模方式一致
//   - 三族共用一个带族标签的结构体而非接口层级，穷举 switch 可被编译器检查
//   - 八位组访问采用网络惯例的 1 起始索引（"第 1 个八位组"即最先传输的字节）；
//     越界返回显式错误 [ErrOctetIndex] 而非哨兵值，0 值八位组与错误不再混淆
//   - [Addr.Network] 在八位组数组的副本上运算，输入值不会被观察到任何修改
//   - IPv6 解析仅接受完全展开的 8 组 16 位十六进制形式（不支持 "::" 压缩）；
//     需要压缩形式时经 [FromNetIP] 从 netip.Addr 转入
//   - 所有可失败函数返回 error，预定义错误变量支持 errors.Is
//
// # 错误处理
//
//	_, err := xaddr.ParseIPv4("1.2.3.256")
//	if errors.Is(err, xaddr.ErrInvalidAddress) {
//	    // 处理解析失败
//	}
package xaddr
