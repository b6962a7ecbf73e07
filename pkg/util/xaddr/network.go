package xaddr

// Network 返回地址所在网络的起始地址（前缀地址），前缀长度不变。
// 例如 20.54.55.68/28 → 20.54.55.64/28。
//
// 算法：host_len = 族上限 − 前缀长度。先整体清零低位的 host_len/8 个
// 八位组，再对跨越前缀边界的那个八位组套掩码
// ((1 << (host_len mod 8)) − 1) XOR 0xFF，清除其低位。
//
// 边界：前缀长度等于族上限时返回与 a 相等的地址；为 0 时返回全零地址。
//
// 计算在八位组数组的副本上进行（Go 数组按值复制），a 本身不会被修改；
// 返回值是独立的新地址。无效地址返回零值 Addr。
func (a Addr) Network() Addr {
	if !a.IsValid() {
		return Addr{}
	}

	out := a
	size := a.family.Size()
	hostLen := a.family.MaxPrefixLen() - int(a.prefixLen)

	// 整八位组清零。
	octetsToClear := hostLen / 8
	for i := size - octetsToClear; i < size; i++ {
		out.octets[i] = 0
	}
	if octetsToClear == size {
		return out
	}

	// 跨越前缀边界的八位组按位清零。
	remainingBits := hostLen % 8
	if remainingBits > 0 {
		mask := byte(((1 << remainingBits) - 1) ^ 0xFF)
		out.octets[size-octetsToClear-1] &= mask
	}
	return out
}
