package xaddr

// Family 表示地址族。
type Family uint8

const (
	// FamilyInvalid 表示无效或未知的地址族（Addr 零值的族）。
	FamilyInvalid Family = 0
	// FamilyMAC 表示 48 位链路层地址。
	FamilyMAC Family = 1
	// FamilyIPv4 表示 IPv4。
	FamilyIPv4 Family = 4
	// FamilyIPv6 表示 IPv6。
	FamilyIPv6 Family = 6
)

// String 返回地址族的字符串表示。
func (f Family) String() string {
	switch f {
	case FamilyMAC:
		return "MAC"
	case FamilyIPv4:
		return "IPv4"
	case FamilyIPv6:
		return "IPv6"
	default:
		return "invalid"
	}
}

// Size 返回该族地址的八位组数（MAC=6、IPv4=4、IPv6=16）。
// 无效族返回 0。
func (f Family) Size() int {
	switch f {
	case FamilyMAC:
		return 6
	case FamilyIPv4:
		return 4
	case FamilyIPv6:
		return 16
	default:
		return 0
	}
}

// MaxPrefixLen 返回该族允许的最大前缀长度（48/32/128），即 Size()*8。
// 无效族返回 0。
func (f Family) MaxPrefixLen() int {
	return f.Size() * 8
}
