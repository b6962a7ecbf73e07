package xaddr

import (
	"encoding/hex"
	"fmt"
	"strconv"
)

// Style 表示地址的文本格式。
type Style uint8

const (
	// StyleCanonical 是各族的规范格式：MAC 为小写冒分十六进制
	// （"00:11:22:33:44:55"），IPv4 为点分十进制（"192.168.1.1"），
	// IPv6 为完全展开的 8 组格式（"2001:0db8:...:0001"）。
	StyleCanonical Style = iota
	// StyleCisco 是 MAC 的 Cisco 点分格式（"0011.2233.4455"）。仅 MAC 支持。
	StyleCisco
	// StyleHex 是 IPv4 的连续十六进制格式（"0xc0a80101"）。仅 IPv4 支持。
	StyleHex
)

// String 返回格式名称。
func (s Style) String() string {
	switch s {
	case StyleCanonical:
		return "canonical"
	case StyleCisco:
		return "cisco"
	case StyleHex:
		return "hex"
	default:
		return "unknown"
	}
}

// String 返回地址的规范文本形式。无效地址返回空字符串
// （与 netip.Addr.String 对零值的行为一致）。
//
// IPv6 始终输出完全展开的 8 组零填充格式，不做 "::" 压缩，
// 保证 String 的输出总能被 [ParseIPv6] 原样解析。
func (a Addr) String() string {
	switch a.family {
	case FamilyMAC:
		return a.formatMAC()
	case FamilyIPv4:
		return a.formatIPv4()
	case FamilyIPv6:
		return a.formatIPv6()
	default:
		return ""
	}
}

// Format 按指定格式返回地址文本。
// 格式与地址族不匹配（非 MAC 的 StyleCisco、非 IPv4 的 StyleHex）
// 返回 [ErrFamily]。
func (a Addr) Format(style Style) (string, error) {
	if !a.IsValid() {
		return "", fmt.Errorf("%w: zero Addr", ErrInvalidAddress)
	}
	switch style {
	case StyleCanonical:
		return a.String(), nil
	case StyleCisco:
		if a.family != FamilyMAC {
			return "", fmt.Errorf("%w: cisco style needs MAC, got %s", ErrFamily, a.family)
		}
		return a.formatCisco(), nil
	case StyleHex:
		if a.family != FamilyIPv4 {
			return "", fmt.Errorf("%w: hex style needs IPv4, got %s", ErrFamily, a.family)
		}
		return "0x" + hex.EncodeToString(a.octets[:4]), nil
	default:
		return "", fmt.Errorf("%w: unknown style %d", ErrFamily, style)
	}
}

// formatMAC 输出 "xx:xx:xx:xx:xx:xx"。
func (a Addr) formatMAC() string {
	// 手写格式化避免 fmt.Sprintf 的反射开销。
	var buf [17]byte
	for i := 0; i < 6; i++ {
		off := i * 3
		if i > 0 {
			buf[off-1] = ':'
		}
		hex.Encode(buf[off:off+2], a.octets[i:i+1])
	}
	return string(buf[:])
}

// formatCisco 输出 "xxxx.xxxx.xxxx"。
func (a Addr) formatCisco() string {
	var buf [14]byte
	for i := 0; i < 3; i++ {
		off := i * 5
		if i > 0 {
			buf[off-1] = '.'
		}
		hex.Encode(buf[off:off+4], a.octets[i*2:i*2+2])
	}
	return string(buf[:])
}

// formatIPv4 输出 "d.d.d.d"。
func (a Addr) formatIPv4() string {
	b := make([]byte, 0, 15)
	for i := 0; i < 4; i++ {
		if i > 0 {
			b = append(b, '.')
		}
		b = strconv.AppendUint(b, uint64(a.octets[i]), 10)
	}
	return string(b)
}

// formatIPv6 输出完全展开的 "xxxx:xxxx:xxxx:xxxx:xxxx:xxxx:xxxx:xxxx"。
func (a Addr) formatIPv6() string {
	var buf [39]byte
	for i := 0; i < 8; i++ {
		off := i * 5
		if i > 0 {
			buf[off-1] = ':'
		}
		hex.Encode(buf[off:off+4], a.octets[i*2:i*2+2])
	}
	return string(buf[:])
}
