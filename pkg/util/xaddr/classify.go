package xaddr

// 分类判断均按"第 1 个八位组"（最先传输的字节）上的位规则实现：
//
//	IPv4: <224 单播；224–239 多播（Class D）；≥240 实验（Class E）
//	IPv6: 0xFF 多播，其余单播
//	MAC : I/G 位（八位组 1 的最低位）清零为单播，置位为多播
//
// 不适用于当前地址族的判断一律返回 false（与 xkit 分类函数对无效
// netip.Addr 返回 false 的约定一致），调用方无需先检查族。

// IsUnicast 报告 a 是否为单播地址。
//   - MAC: I/G 位清零
//   - IPv4: 首八位组 < 224（Class A/B/C）
//   - IPv6: 首八位组 ≠ 0xFF
//
// 无效地址返回 false。
func (a Addr) IsUnicast() bool {
	switch a.family {
	case FamilyMAC:
		return a.octets[0]&0x01 == 0
	case FamilyIPv4:
		return a.octets[0] < 224
	case FamilyIPv6:
		return a.octets[0] != 0xFF
	default:
		return false
	}
}

// IsMulticast 报告 a 是否为多播地址。
//   - MAC: I/G 位置位
//   - IPv4: 首八位组在 [224, 239]（Class D）
//   - IPv6: 首八位组为 0xFF
//
// 无效地址返回 false。
func (a Addr) IsMulticast() bool {
	switch a.family {
	case FamilyMAC:
		return a.octets[0]&0x01 != 0
	case FamilyIPv4:
		return a.octets[0] >= 224 && a.octets[0] <= 239
	case FamilyIPv6:
		return a.octets[0] == 0xFF
	default:
		return false
	}
}

// IsExperimental 报告 a 是否为 IPv4 实验地址（Class E，240.0.0.0/4）。
// 仅适用于 IPv4，其他族返回 false。
func (a Addr) IsExperimental() bool {
	return a.family == FamilyIPv4 && a.octets[0] > 239
}

// IsLinkLocal 报告 a 是否为链路本地地址。
//   - IPv4: 169.254.0.0/16（单播 LLA）或 224.0.0.0/24（链路本地多播）
//   - IPv6: fe80::/10（首八位组 0xFE 且第二八位组在 [0x80, 0xBF]）
//
// MAC 和无效地址返回 false。
func (a Addr) IsLinkLocal() bool {
	switch a.family {
	case FamilyIPv4:
		if a.octets[0] == 169 && a.octets[1] == 254 {
			return true
		}
		return a.octets[0] == 224 && a.octets[1] == 0 && a.octets[2] == 0
	case FamilyIPv6:
		return a.octets[0] == 0xFE && a.octets[1] >= 0x80 && a.octets[1] <= 0xBF
	default:
		return false
	}
}

// IsPrivate 报告 a 是否为 IPv4 私有地址：RFC 1918 的 10.0.0.0/8、
// 172.16.0.0/12、192.168.0.0/16，以及管理范围多播 239.0.0.0/8。
// 仅适用于 IPv4，其他族返回 false。
func (a Addr) IsPrivate() bool {
	if a.family != FamilyIPv4 {
		return false
	}
	switch {
	case a.octets[0] == 10:
		return true
	case a.octets[0] == 172 && a.octets[1] >= 16 && a.octets[1] <= 31:
		return true
	case a.octets[0] == 192 && a.octets[1] == 168:
		return true
	case a.octets[0] == 239:
		return true
	default:
		return false
	}
}

// Is6to4 报告 a 是否为 6to4 地址（2002::/16）。
// 仅适用于 IPv6，其他族返回 false。
func (a Addr) Is6to4() bool {
	return a.family == FamilyIPv6 && a.octets[0] == 0x20 && a.octets[1] == 0x02
}

// IsUniqueLocal 报告 a 是否为 IPv6 唯一本地地址（ULA，FC00::/7，
// 即首八位组为 0xFC 或 0xFD）。仅适用于 IPv6，其他族返回 false。
func (a Addr) IsUniqueLocal() bool {
	return a.family == FamilyIPv6 && (a.octets[0] == 0xFC || a.octets[0] == 0xFD)
}

// IsIGBitSet 报告 MAC 地址的 I/G（Individual/Group）位是否置位，
// 即首八位组的最低位（最先传输的位）。置位表示组播 MAC。
// 仅适用于 MAC，其他族返回 false。
func (a Addr) IsIGBitSet() bool {
	return a.family == FamilyMAC && a.octets[0]&0x01 != 0
}

// IsULBitSet 报告 MAC 地址的 U/L（Universal/Local）位是否置位，
// 即首八位组的次低位。置位表示本地管理地址。
// 仅适用于 MAC，其他族返回 false。
func (a Addr) IsULBitSet() bool {
	return a.family == FamilyMAC && a.octets[0]&0x02 != 0
}

// Classify 一次性返回 a 的全部分类信息。
func Classify(a Addr) Classification {
	return Classification{
		Family:         a.family,
		IsValid:        a.IsValid(),
		IsUnicast:      a.IsUnicast(),
		IsMulticast:    a.IsMulticast(),
		IsExperimental: a.IsExperimental(),
		IsLinkLocal:    a.IsLinkLocal(),
		IsPrivate:      a.IsPrivate(),
		Is6to4:         a.Is6to4(),
		IsUniqueLocal:  a.IsUniqueLocal(),
		IGBitSet:       a.IsIGBitSet(),
		ULBitSet:       a.IsULBitSet(),
	}
}

// Classification 包含地址的各种分类信息。
//
// 设计决策: 使用扁平的导出字段而非位标志，值类型结构体添加字段向后兼容，
// 调用方直接访问 c.IsMulticast 比标志位运算更符合 Go 惯用法。
// 标志不互斥：239.1.1.1 同时满足 IsMulticast 和 IsPrivate。
type Classification struct {
	// Family 是地址族。
	Family Family

	// IsValid 表示地址是否有效。
	IsValid bool

	// IsUnicast 表示是否为单播地址。
	IsUnicast bool

	// IsMulticast 表示是否为多播地址。
	IsMulticast bool

	// IsExperimental 表示是否为 IPv4 实验地址（Class E）。
	IsExperimental bool

	// IsLinkLocal 表示是否为链路本地地址。
	IsLinkLocal bool

	// IsPrivate 表示是否为 IPv4 私有地址（含管理范围多播）。
	IsPrivate bool

	// Is6to4 表示是否为 6to4 地址（2002::/16，仅 IPv6）。
	Is6to4 bool

	// IsUniqueLocal 表示是否为唯一本地地址（FC00::/7，仅 IPv6）。
	IsUniqueLocal bool

	// IGBitSet 表示 MAC 的 I/G 位是否置位（仅 MAC）。
	IGBitSet bool

	// ULBitSet 表示 MAC 的 U/L 位是否置位（仅 MAC）。
	ULBitSet bool
}

// String 返回分类的字符串表示。
// 优先级：越特殊的分类越靠前（如 link-local > multicast > unicast）。
func (c Classification) String() string {
	if !c.IsValid {
		return "invalid"
	}

	labels := [...]struct {
		flag  bool
		label string
	}{
		{c.IsLinkLocal, "link-local"},
		{c.IsUniqueLocal, "unique-local"},
		{c.Is6to4, "6to4"},
		{c.IsExperimental, "experimental"},
		{c.IsPrivate && c.IsMulticast, "admin-scoped-multicast"},
		{c.IsMulticast, "multicast"},
		{c.IsPrivate, "private"},
		{c.IsUnicast, "unicast"},
	}

	for _, e := range labels {
		if e.flag {
			return e.label
		}
	}
	return "unknown"
}
