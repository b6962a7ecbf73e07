package xaddr

import "errors"

var (
	// ErrInvalidAddress 表示无法解析的地址文本：空输入、字段数不符、
	// 非数字字段或字段值越界。
	ErrInvalidAddress = errors.New("xaddr: invalid address text")

	// ErrPrefixLen 表示前缀长度为负或超过地址族上限（48/32/128）。
	ErrPrefixLen = errors.New("xaddr: prefix length out of range")

	// ErrOctetIndex 表示八位组索引超出 [1, Len()] 范围。
	ErrOctetIndex = errors.New("xaddr: octet index out of range")

	// ErrFamily 表示操作不适用于该地址族（如对 IPv4 使用 Cisco 格式）。
	ErrFamily = errors.New("xaddr: operation not supported for address family")
)
