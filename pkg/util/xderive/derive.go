package xderive

import (
	"fmt"
	"net/netip"
	"strings"

	"github.com/omeyang/addrkit/pkg/util/xaddr"
)

// ipv4MulticastOUI 是 IPv4 多播 MAC 的固定前三字节（RFC 1112）。
var ipv4MulticastOUI = [3]byte{0x01, 0x00, 0x5E}

// ipv6MulticastPrefix 是 IPv6 多播 MAC 的固定前两字节（RFC 2464）。
var ipv6MulticastPrefix = [2]byte{0x33, 0x33}

// MulticastMAC 将多播 IPv4/IPv6 地址映射为对应的以太网多播 MAC。
//
//   - IPv4（RFC 1112）：01:00:5e:(八位组2 mod 128):八位组3:八位组4。
//     28 位多播组 ID 只有低 23 位可进入 MAC，第二八位组的最高位被丢弃，
//     因此 32 个 IPv4 多播地址共享同一个 MAC。
//   - IPv6（RFC 2464）：33:33:八位组13:八位组14:八位组15:八位组16。
//
// 非多播输入返回 [ErrNotMulticast]；MAC 或无效输入返回 [ErrNotIP]。
func MulticastMAC(a xaddr.Addr) (xaddr.Addr, error) {
	switch a.Family() {
	case xaddr.FamilyIPv4:
		if !a.IsMulticast() {
			return xaddr.Addr{}, fmt.Errorf("%w: %s", ErrNotMulticast, a)
		}
		b := a.Octets()
		return xaddr.FromOctets(xaddr.FamilyMAC, []byte{
			ipv4MulticastOUI[0], ipv4MulticastOUI[1], ipv4MulticastOUI[2],
			b[1] & 0x7F, b[2], b[3],
		})
	case xaddr.FamilyIPv6:
		if !a.IsMulticast() {
			return xaddr.Addr{}, fmt.Errorf("%w: %s", ErrNotMulticast, a)
		}
		b := a.Octets()
		return xaddr.FromOctets(xaddr.FamilyMAC, []byte{
			ipv6MulticastPrefix[0], ipv6MulticastPrefix[1],
			b[12], b[13], b[14], b[15],
		})
	default:
		return xaddr.Addr{}, fmt.Errorf("%w: got %s", ErrNotIP, a.Family())
	}
}

// InterfaceID 从单播 MAC 计算 Modified EUI-64 接口标识的 8 个字节：
// MAC 两半之间插入 ff:fe，首字节的 U/L 位（第 7 位）经 XOR 0x02 翻转。
//
// mac 必须是非全零、I/G 位清零的 MAC 地址，否则返回 [ErrUnicastMACRequired]。
func InterfaceID(mac xaddr.Addr) ([8]byte, error) {
	if mac.Family() != xaddr.FamilyMAC {
		return [8]byte{}, fmt.Errorf("%w: got %s", ErrUnicastMACRequired, mac.Family())
	}
	if !mac.IsUnicast() {
		return [8]byte{}, fmt.Errorf("%w: I/G bit set in %s", ErrUnicastMACRequired, mac)
	}
	b := mac.Octets()
	allZero := true
	for _, v := range b {
		if v != 0 {
			allZero = false
			break
		}
	}
	if allZero {
		return [8]byte{}, fmt.Errorf("%w: all-zero MAC", ErrUnicastMACRequired)
	}
	return [8]byte{b[0] ^ 0x02, b[1], b[2], 0xFF, 0xFE, b[3], b[4], b[5]}, nil
}

// EUI64 从宽松形式的 MAC 文本和 IPv6 前缀文本计算 Modified EUI-64 地址。
//
// macText 接受 [xaddr.ParseMACLoose] 支持的全部形式；prefixText 接受
// 压缩或展开的 IPv6 文本，可带 "/n"（n ≤ 64）后缀，缺省按 /64 处理。
// 前缀中超出前缀长度的主机位被清零后再与接口标识拼接。
//
// 返回的地址前缀长度为 128（主机地址）。
func EUI64(macText, prefixText string) (xaddr.Addr, error) {
	mac, err := xaddr.ParseMACLoose(macText)
	if err != nil {
		return xaddr.Addr{}, fmt.Errorf("%w: %w", ErrUnicastMACRequired, err)
	}
	prefix, err := ParsePrefix64(prefixText)
	if err != nil {
		return xaddr.Addr{}, err
	}
	return EUI64FromAddr(mac, prefix)
}

// EUI64FromAddr 从已解析的 MAC 和 IPv6 前缀计算 Modified EUI-64 地址。
// prefix 的长度必须 ≤ 64，否则返回 [ErrPrefixTooLong]。
func EUI64FromAddr(mac xaddr.Addr, prefix netip.Prefix) (xaddr.Addr, error) {
	if !prefix.IsValid() || !prefix.Addr().Is6() || prefix.Addr().Is4In6() {
		return xaddr.Addr{}, fmt.Errorf("%w: %s", ErrInvalidPrefix, prefix)
	}
	if prefix.Bits() > 64 {
		return xaddr.Addr{}, fmt.Errorf("%w: /%d", ErrPrefixTooLong, prefix.Bits())
	}

	host, err := InterfaceID(mac)
	if err != nil {
		return xaddr.Addr{}, err
	}

	pb := prefix.Masked().Addr().As16()
	var out [16]byte
	copy(out[:8], pb[:8])
	copy(out[8:], host[:])
	return xaddr.FromOctets(xaddr.FamilyIPv6, out[:])
}

// ParsePrefix64 解析 EUI-64 派生用的 IPv6 前缀文本。
// 接受 "2001:db8::"（按 /64 处理）或 "2001:db8::/48" 形式；
// 带 zone ID、非 IPv6 或前缀长度超过 64 的输入报错。
func ParsePrefix64(s string) (netip.Prefix, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return netip.Prefix{}, fmt.Errorf("%w: empty input", ErrInvalidPrefix)
	}

	var prefix netip.Prefix
	if strings.Contains(s, "/") {
		p, err := netip.ParsePrefix(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidPrefix, err)
		}
		prefix = p
	} else {
		addr, err := netip.ParseAddr(s)
		if err != nil {
			return netip.Prefix{}, fmt.Errorf("%w: %v", ErrInvalidPrefix, err)
		}
		if addr.Zone() != "" {
			return netip.Prefix{}, fmt.Errorf("%w: zone ID is not supported: %s", ErrInvalidPrefix, s)
		}
		prefix = netip.PrefixFrom(addr, 64)
	}

	if !prefix.Addr().Is6() || prefix.Addr().Is4In6() {
		return netip.Prefix{}, fmt.Errorf("%w: not an IPv6 prefix: %s", ErrInvalidPrefix, s)
	}
	if prefix.Bits() > 64 {
		return netip.Prefix{}, fmt.Errorf("%w: /%d", ErrPrefixTooLong, prefix.Bits())
	}
	return prefix.Masked(), nil
}
