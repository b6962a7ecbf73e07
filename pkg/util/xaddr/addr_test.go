package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOctetOneBased(t *testing.T) {
	a := MustParseIPv4("239.1.2.3")

	v, err := a.Octet(1)
	require.NoError(t, err)
	assert.Equal(t, uint8(239), v)

	v, err = a.Octet(4)
	require.NoError(t, err)
	assert.Equal(t, uint8(3), v)
}

func TestOctetOutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		addr  Addr
		index int
	}{
		{name: "zero index", addr: MustParseIPv4("10.0.0.1"), index: 0},
		{name: "negative index", addr: MustParseIPv4("10.0.0.1"), index: -1},
		{name: "past end IPv4", addr: MustParseIPv4("10.0.0.1"), index: 5},
		{name: "past end MAC", addr: MustParseMAC("00:11:22:33:44:55"), index: 7},
		{name: "past end IPv6", addr: MustParseIPv6("2001:0db8:0000:0000:0000:0000:0000:0001"), index: 17},
		{name: "zero Addr", addr: Addr{}, index: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.addr.Octet(tt.index)
			assert.ErrorIs(t, err, ErrOctetIndex)
		})
	}
}

func TestMustOctetPanics(t *testing.T) {
	a := MustParseIPv4("10.0.0.1")
	assert.Equal(t, uint8(10), a.MustOctet(1))
	assert.Panics(t, func() { a.MustOctet(0) })
	assert.Panics(t, func() { a.MustOctet(5) })
}

func TestWithPrefixLen(t *testing.T) {
	tests := []struct {
		name    string
		addr    Addr
		n       int
		wantErr bool
	}{
		{name: "IPv4 zero", addr: MustParseIPv4("10.0.0.1"), n: 0},
		{name: "IPv4 max", addr: MustParseIPv4("10.0.0.1"), n: 32},
		{name: "IPv4 over max", addr: MustParseIPv4("10.0.0.1"), n: 33, wantErr: true},
		{name: "IPv4 negative", addr: MustParseIPv4("10.0.0.1"), n: -1, wantErr: true},
		{name: "IPv6 max", addr: MustParseIPv6("2001:0db8:0000:0000:0000:0000:0000:0001"), n: 128},
		{name: "IPv6 over max", addr: MustParseIPv6("2001:0db8:0000:0000:0000:0000:0000:0001"), n: 129, wantErr: true},
		{name: "MAC max", addr: MustParseMAC("00:11:22:33:44:55"), n: 48},
		{name: "MAC over max", addr: MustParseMAC("00:11:22:33:44:55"), n: 49, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.addr.WithPrefixLen(tt.n)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrPrefixLen)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.n, got.PrefixLen())
			// 前缀长度之外不变
			assert.Equal(t, tt.addr.Octets(), got.Octets())
		})
	}
}

func TestFromOctets(t *testing.T) {
	a, err := FromOctets(FamilyMAC, []byte{0x01, 0x00, 0x5e, 0x01, 0x01, 0x01})
	require.NoError(t, err)
	assert.Equal(t, "01:00:5e:01:01:01", a.String())
	assert.Equal(t, 48, a.PrefixLen())

	_, err = FromOctets(FamilyIPv4, []byte{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidAddress)

	_, err = FromOctets(FamilyInvalid, []byte{1, 2, 3, 4})
	assert.ErrorIs(t, err, ErrFamily)
}

func TestOctetsReturnsCopy(t *testing.T) {
	a := MustParseIPv4("10.0.0.1")
	b := a.Octets()
	b[0] = 99
	assert.Equal(t, uint8(10), a.MustOctet(1))

	var zero Addr
	assert.Nil(t, zero.Octets())
}

func TestAddrComparable(t *testing.T) {
	a := MustParseIPv4("10.0.0.1")
	b := MustParseIPv4("10.0.0.1")
	c := MustParseIPv4("10.0.0.2")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)

	// 前缀长度参与等值比较
	d, err := a.WithPrefixLen(24)
	require.NoError(t, err)
	assert.NotEqual(t, a, d)

	// 可做 map key
	m := map[Addr]string{a: "first"}
	assert.Equal(t, "first", m[b])
}

func TestZeroAddrInvalid(t *testing.T) {
	var a Addr
	assert.False(t, a.IsValid())
	assert.Equal(t, FamilyInvalid, a.Family())
	assert.Equal(t, 0, a.Len())
	assert.Equal(t, "", a.String())

	_, err := a.WithPrefixLen(0)
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

func TestFamilyConstants(t *testing.T) {
	tests := []struct {
		family    Family
		size      int
		maxPrefix int
		str       string
	}{
		{FamilyMAC, 6, 48, "MAC"},
		{FamilyIPv4, 4, 32, "IPv4"},
		{FamilyIPv6, 16, 128, "IPv6"},
		{FamilyInvalid, 0, 0, "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.str, func(t *testing.T) {
			assert.Equal(t, tt.size, tt.family.Size())
			assert.Equal(t, tt.maxPrefix, tt.family.MaxPrefixLen())
			assert.Equal(t, tt.str, tt.family.String())
		})
	}
}
