package xderive

import "errors"

var (
	// ErrNotMulticast 表示对非多播地址请求了多播 MAC 派生。
	ErrNotMulticast = errors.New("xderive: address is not multicast")

	// ErrNotIP 表示多播 MAC 派生的输入不是 IPv4/IPv6 地址。
	ErrNotIP = errors.New("xderive: derivation requires an IPv4 or IPv6 address")

	// ErrUnicastMACRequired 表示 EUI-64 派生的 MAC 无效、全零或 I/G 位置位。
	ErrUnicastMACRequired = errors.New("xderive: valid unicast MAC required")

	// ErrInvalidPrefix 表示 IPv6 前缀文本无法解析或不是 IPv6。
	ErrInvalidPrefix = errors.New("xderive: invalid IPv6 prefix")

	// ErrPrefixTooLong 表示 IPv6 前缀长度超过 64 位，没有空间容纳
	// EUI-64 接口标识。
	ErrPrefixTooLong = errors.New("xderive: IPv6 prefix longer than 64 bits")
)
