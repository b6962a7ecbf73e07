package xaddr

import "fmt"

// Addr 是一个不可变的网络地址值：族标签、定长八位组序列和前缀长度。
//
// 设计决策: 使用单一可比较结构体承载三族，而非每族一个类型或接口层级：
//   - 值类型可用 == 比较、可做 map key（与 netip.Addr 一致）
//   - 族内不足 16 字节的部分恒为零，由构造函数保证，等值比较因此成立
//   - 跨族共用的算法（八位组访问、网络计算）直接按 Family 常量参数化
//
// 零值 Addr 无效（IsValid 返回 false），所有访问器对无效值返回错误或 false。
type Addr struct {
	octets    [16]byte
	family    Family
	prefixLen uint8
}

// IsValid 报告 a 是否为某个地址族的有效地址。零值返回 false。
func (a Addr) IsValid() bool {
	return a.family != FamilyInvalid
}

// Family 返回地址族。
func (a Addr) Family() Family {
	return a.family
}

// Len 返回地址的八位组数（6、4 或 16）。无效地址返回 0。
func (a Addr) Len() int {
	return a.family.Size()
}

// PrefixLen 返回前缀长度。
func (a Addr) PrefixLen() int {
	return int(a.prefixLen)
}

// WithPrefixLen 返回前缀长度为 n 的新地址。
// n 为负或超过族上限时返回 [ErrPrefixLen]。
func (a Addr) WithPrefixLen(n int) (Addr, error) {
	if !a.IsValid() {
		return Addr{}, fmt.Errorf("%w: zero Addr", ErrInvalidAddress)
	}
	if n < 0 || n > a.family.MaxPrefixLen() {
		return Addr{}, fmt.Errorf("%w: %d not in [0, %d]", ErrPrefixLen, n, a.family.MaxPrefixLen())
	}
	a.prefixLen = uint8(n)
	return a, nil
}

// Octet 返回第 i 个八位组，i 为 1 起始的规范索引
// （"第 1 个八位组"即最先传输的字节）。
// i 超出 [1, Len()] 时返回 [ErrOctetIndex]。
func (a Addr) Octet(i int) (uint8, error) {
	if i < 1 || i > a.Len() {
		return 0, fmt.Errorf("%w: %d not in [1, %d]", ErrOctetIndex, i, a.Len())
	}
	return a.octets[i-1], nil
}

// MustOctet 与 [Addr.Octet] 相同，索引越界时 panic。
// 用于索引已知合法的场景（如测试和常量索引）。
func (a Addr) MustOctet(i int) uint8 {
	v, err := a.Octet(i)
	if err != nil {
		panic(err)
	}
	return v
}

// Octets 返回八位组的副本切片，长度为 Len()。
// 无效地址返回 nil。修改返回值不影响 a。
func (a Addr) Octets() []byte {
	if !a.IsValid() {
		return nil
	}
	b := make([]byte, a.Len())
	copy(b, a.octets[:a.Len()])
	return b
}

// FromOctets 从八位组序列构造地址，前缀长度取族上限。
// b 的长度必须等于族的 Size()，否则返回 [ErrInvalidAddress]。
func FromOctets(f Family, b []byte) (Addr, error) {
	if f.Size() == 0 {
		return Addr{}, fmt.Errorf("%w: %v", ErrFamily, f)
	}
	if len(b) != f.Size() {
		return Addr{}, fmt.Errorf("%w: %s needs %d octets, got %d", ErrInvalidAddress, f, f.Size(), len(b))
	}
	a := Addr{family: f, prefixLen: uint8(f.MaxPrefixLen())}
	copy(a.octets[:], b)
	return a, nil
}
