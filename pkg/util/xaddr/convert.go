package xaddr

import (
	"fmt"
	"net"
	"net/netip"

	"go4.org/netipx"
)

// ToNetIP 将 IPv4/IPv6 地址转换为 [netip.Addr]。
// MAC 和无效地址返回 (netip.Addr{}, false)。
func (a Addr) ToNetIP() (netip.Addr, bool) {
	switch a.family {
	case FamilyIPv4:
		var b [4]byte
		copy(b[:], a.octets[:4])
		return netip.AddrFrom4(b), true
	case FamilyIPv6:
		return netip.AddrFrom16(a.octets), true
	default:
		return netip.Addr{}, false
	}
}

// FromNetIP 从 [netip.Addr] 构造地址，前缀长度取族上限。
// IPv4-mapped IPv6 地址归一化为纯 IPv4。
// 无效地址或带 zone ID 的地址返回 [ErrInvalidAddress]。
//
// 设计决策: 拒绝 zone ID 而非静默丢弃——八位组模型无处存放 zone，
// 丢弃会让 fe80::1%eth0 与 fe80::1%eth1 变得无法区分。
func FromNetIP(addr netip.Addr) (Addr, error) {
	if !addr.IsValid() {
		return Addr{}, fmt.Errorf("%w: invalid netip.Addr", ErrInvalidAddress)
	}
	if addr.Zone() != "" {
		return Addr{}, fmt.Errorf("%w: IPv6 zone ID is not supported: %s", ErrInvalidAddress, addr)
	}
	if addr.Is4() || addr.Is4In6() {
		b := addr.Unmap().As4()
		return FromOctets(FamilyIPv4, b[:])
	}
	b := addr.As16()
	return FromOctets(FamilyIPv6, b[:])
}

// ToPrefix 将 IPv4/IPv6 地址与其前缀长度转换为 [netip.Prefix]。
// MAC 和无效地址返回 (netip.Prefix{}, false)。
func (a Addr) ToPrefix() (netip.Prefix, bool) {
	ip, ok := a.ToNetIP()
	if !ok {
		return netip.Prefix{}, false
	}
	return netip.PrefixFrom(ip, int(a.prefixLen)), true
}

// RangeOf 返回地址所在网络覆盖的 [netipx.IPRange]
// （从网络地址到该前缀的最后一个地址）。
// MAC 和无效地址返回 (netipx.IPRange{}, false)。
func (a Addr) RangeOf() (netipx.IPRange, bool) {
	p, ok := a.ToPrefix()
	if !ok {
		return netipx.IPRange{}, false
	}
	return netipx.RangeOfPrefix(p.Masked()), true
}

// ToHardwareAddr 将 MAC 地址转换为 [net.HardwareAddr]。
// 非 MAC 地址返回 (nil, false)。返回值是副本，修改不影响 a。
func (a Addr) ToHardwareAddr() (net.HardwareAddr, bool) {
	if a.family != FamilyMAC {
		return nil, false
	}
	hw := make(net.HardwareAddr, 6)
	copy(hw, a.octets[:6])
	return hw, true
}

// FromHardwareAddr 从 [net.HardwareAddr] 构造 MAC 地址。
// 仅接受 48 位（6 字节）硬件地址；EUI-64 与 InfiniBand 形式返回
// [ErrInvalidAddress]。
func FromHardwareAddr(hw net.HardwareAddr) (Addr, error) {
	if len(hw) != 6 {
		return Addr{}, fmt.Errorf("%w: hardware address must be 6 bytes, got %d", ErrInvalidAddress, len(hw))
	}
	return FromOctets(FamilyMAC, hw)
}
