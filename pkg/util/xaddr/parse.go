package xaddr

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
)

// ParseMAC 解析 EUI 格式的 MAC 地址：六个冒号分隔的十六进制八位组，
// 如 "00:11:22:33:44:55"。可带 "/n" 后缀指定前缀长度（0 ≤ n ≤ 48），
// 缺省为 48。
//
// 输入会自动去除首尾空白。解析失败返回 [ErrInvalidAddress]，
// 前缀长度越界返回 [ErrPrefixLen]。
func ParseMAC(s string) (Addr, error) {
	return parseAddr(FamilyMAC, s)
}

// ParseIPv4 解析点分十进制 IPv4 地址，如 "192.168.1.1"。
// 可带 "/n" 后缀指定前缀长度（0 ≤ n ≤ 32），缺省为 32。
func ParseIPv4(s string) (Addr, error) {
	return parseAddr(FamilyIPv4, s)
}

// ParseIPv6 解析完全展开的 IPv6 地址：八个冒号分隔的 16 位十六进制组，
// 如 "2001:0db8:0000:0000:0000:0000:0000:0001"。不支持 "::" 压缩形式
// （压缩形式经 [FromNetIP] 转入）。可带 "/n" 后缀指定前缀长度
// （0 ≤ n ≤ 128），缺省为 128。
func ParseIPv6(s string) (Addr, error) {
	return parseAddr(FamilyIPv6, s)
}

// Parse 按 f 指定的地址族解析 s，等价于调用对应的 Parse* 函数。
func Parse(f Family, s string) (Addr, error) {
	switch f {
	case FamilyMAC, FamilyIPv4, FamilyIPv6:
		return parseAddr(f, s)
	default:
		return Addr{}, fmt.Errorf("%w: %v", ErrFamily, f)
	}
}

// MustParse 与 [Parse] 相同，失败时 panic。用于测试和常量输入。
func MustParse(f Family, s string) Addr {
	a, err := Parse(f, s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustParseMAC 与 [ParseMAC] 相同，失败时 panic。用于测试和常量输入。
func MustParseMAC(s string) Addr {
	a, err := ParseMAC(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustParseIPv4 与 [ParseIPv4] 相同，失败时 panic。
func MustParseIPv4(s string) Addr {
	a, err := ParseIPv4(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustParseIPv6 与 [ParseIPv6] 相同，失败时 panic。
func MustParseIPv6(s string) Addr {
	a, err := ParseIPv6(s)
	if err != nil {
		panic(err)
	}
	return a
}

// parseAddr 是三族共用的解析入口：剥离 "/n" 后缀，按族分派字段解析，
// 最后套用前缀长度。
func parseAddr(f Family, s string) (Addr, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Addr{}, fmt.Errorf("%w: empty input", ErrInvalidAddress)
	}

	addrPart := s
	prefixLen := f.MaxPrefixLen()
	if idx := strings.LastIndexByte(s, '/'); idx >= 0 {
		addrPart = s[:idx]
		n, err := strconv.Atoi(s[idx+1:])
		if err != nil {
			return Addr{}, fmt.Errorf("%w: invalid prefix length %q", ErrInvalidAddress, s[idx+1:])
		}
		if n < 0 || n > f.MaxPrefixLen() {
			return Addr{}, fmt.Errorf("%w: %d not in [0, %d]", ErrPrefixLen, n, f.MaxPrefixLen())
		}
		prefixLen = n
	}

	var (
		a   Addr
		err error
	)
	switch f {
	case FamilyMAC:
		a, err = parseHexOctets(FamilyMAC, addrPart, ":", 6)
	case FamilyIPv4:
		a, err = parseDottedDecimal(addrPart)
	case FamilyIPv6:
		a, err = parseExpandedIPv6(addrPart)
	}
	if err != nil {
		return Addr{}, err
	}
	return a.WithPrefixLen(prefixLen)
}

// parseHexOctets 解析 delim 分隔的 count 个十六进制八位组。
func parseHexOctets(f Family, s, delim string, count int) (Addr, error) {
	fields := strings.Split(s, delim)
	if len(fields) != count {
		return Addr{}, fmt.Errorf("%w: %q has %d fields, want %d", ErrInvalidAddress, s, len(fields), count)
	}
	b := make([]byte, count)
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 16, 8)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: octet %q: %v", ErrInvalidAddress, field, err)
		}
		b[i] = byte(v)
	}
	return FromOctets(f, b)
}

// parseDottedDecimal 解析四段点分十进制 IPv4。
func parseDottedDecimal(s string) (Addr, error) {
	fields := strings.Split(s, ".")
	if len(fields) != 4 {
		return Addr{}, fmt.Errorf("%w: %q has %d fields, want 4", ErrInvalidAddress, s, len(fields))
	}
	var b [4]byte
	for i, field := range fields {
		// 严格模式：ParseUint 拒绝空段、空白、+/- 前缀和超过 255 的值。
		v, err := strconv.ParseUint(field, 10, 8)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: octet %q: %v", ErrInvalidAddress, field, err)
		}
		b[i] = byte(v)
	}
	return FromOctets(FamilyIPv4, b[:])
}

// parseExpandedIPv6 解析完全展开的 8 组 16 位十六进制 IPv6。
// 每组拆分为高字节在前的两个八位组。
func parseExpandedIPv6(s string) (Addr, error) {
	fields := strings.Split(s, ":")
	if len(fields) != 8 {
		return Addr{}, fmt.Errorf("%w: %q has %d groups, want 8", ErrInvalidAddress, s, len(fields))
	}
	var b [16]byte
	for i, field := range fields {
		v, err := strconv.ParseUint(field, 16, 16)
		if err != nil {
			return Addr{}, fmt.Errorf("%w: group %q: %v", ErrInvalidAddress, field, err)
		}
		b[i*2] = byte(v >> 8)
		b[i*2+1] = byte(v)
	}
	return FromOctets(FamilyIPv6, b[:])
}

// ParseMACLoose 解析宽松形式的 MAC 地址：接受 ":"、"-"、"." 任意分隔
// 或完全无分隔的 12 位十六进制（如 "0011.2233.4455"、"00-11-22-33-44-55"、
// "001122334455"），大小写不敏感。前缀长度固定为 48。
//
// 剥离分隔符后必须恰为 12 个十六进制字符，否则返回 [ErrInvalidAddress]。
func ParseMACLoose(s string) (Addr, error) {
	cleaned := strings.ToLower(strings.TrimSpace(s))
	for _, delim := range []string{"-", ":", "."} {
		cleaned = strings.ReplaceAll(cleaned, delim, "")
	}
	if len(cleaned) != 12 {
		return Addr{}, fmt.Errorf("%w: %q is not 12 hex digits", ErrInvalidAddress, s)
	}
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return Addr{}, fmt.Errorf("%w: %q: %v", ErrInvalidAddress, s, err)
	}
	return FromOctets(FamilyMAC, b)
}
