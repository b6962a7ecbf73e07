package xaddr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIPv4(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOctets []byte
		wantPrefix int
		wantErr    error
	}{
		{
			name:       "multicast address",
			input:      "239.1.1.1",
			wantOctets: []byte{239, 1, 1, 1},
			wantPrefix: 32,
		},
		{
			name:       "with prefix length",
			input:      "20.54.55.68/28",
			wantOctets: []byte{20, 54, 55, 68},
			wantPrefix: 28,
		},
		{
			name:       "zero address",
			input:      "0.0.0.0",
			wantOctets: []byte{0, 0, 0, 0},
			wantPrefix: 32,
		},
		{
			name:       "broadcast",
			input:      "255.255.255.255",
			wantOctets: []byte{255, 255, 255, 255},
			wantPrefix: 32,
		},
		{
			name:       "surrounding whitespace",
			input:      "  10.0.0.1  ",
			wantOctets: []byte{10, 0, 0, 1},
			wantPrefix: 32,
		},
		{name: "empty", input: "", wantErr: ErrInvalidAddress},
		{name: "octet out of range", input: "1.2.3.256", wantErr: ErrInvalidAddress},
		{name: "too few fields", input: "1.2.3", wantErr: ErrInvalidAddress},
		{name: "too many fields", input: "1.2.3.4.5", wantErr: ErrInvalidAddress},
		{name: "non numeric field", input: "1.2.x.4", wantErr: ErrInvalidAddress},
		{name: "empty field", input: "1..3.4", wantErr: ErrInvalidAddress},
		{name: "negative octet", input: "1.2.-3.4", wantErr: ErrInvalidAddress},
		{name: "inner whitespace", input: "1.2.3. 4", wantErr: ErrInvalidAddress},
		{name: "prefix too long", input: "10.0.0.1/33", wantErr: ErrPrefixLen},
		{name: "negative prefix", input: "10.0.0.1/-1", wantErr: ErrPrefixLen},
		{name: "garbage prefix", input: "10.0.0.1/abc", wantErr: ErrInvalidAddress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseIPv4(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FamilyIPv4, a.Family())
			assert.Equal(t, tt.wantOctets, a.Octets())
			assert.Equal(t, tt.wantPrefix, a.PrefixLen())
		})
	}
}

func TestParseMAC(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOctets []byte
		wantPrefix int
		wantErr    error
	}{
		{
			name:       "lowercase",
			input:      "00:11:22:33:44:55",
			wantOctets: []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			wantPrefix: 48,
		},
		{
			name:       "uppercase",
			input:      "01:00:5E:01:01:01",
			wantOctets: []byte{0x01, 0x00, 0x5E, 0x01, 0x01, 0x01},
			wantPrefix: 48,
		},
		{
			name:       "with prefix length",
			input:      "00:11:22:33:44:55/24",
			wantOctets: []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55},
			wantPrefix: 24,
		},
		{
			name:       "single hex digit fields",
			input:      "0:1:2:3:4:5",
			wantOctets: []byte{0, 1, 2, 3, 4, 5},
			wantPrefix: 48,
		},
		{name: "empty", input: "", wantErr: ErrInvalidAddress},
		{name: "too few fields", input: "00:11:22:33:44", wantErr: ErrInvalidAddress},
		{name: "too many fields", input: "00:11:22:33:44:55:66", wantErr: ErrInvalidAddress},
		{name: "field out of range", input: "100:11:22:33:44:55", wantErr: ErrInvalidAddress},
		{name: "non hex field", input: "zz:11:22:33:44:55", wantErr: ErrInvalidAddress},
		{name: "dotted form rejected by strict parse", input: "0011.2233.4455", wantErr: ErrInvalidAddress},
		{name: "prefix too long", input: "00:11:22:33:44:55/49", wantErr: ErrPrefixLen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseMAC(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FamilyMAC, a.Family())
			assert.Equal(t, tt.wantOctets, a.Octets())
			assert.Equal(t, tt.wantPrefix, a.PrefixLen())
		})
	}
}

func TestParseIPv6(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		wantOctets []byte
		wantPrefix int
		wantErr    error
	}{
		{
			name:  "documentation address",
			input: "2001:0db8:0000:0000:0000:0000:0000:0001",
			wantOctets: []byte{
				0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0x01,
			},
			wantPrefix: 128,
		},
		{
			name:  "solicited node multicast",
			input: "ff02:0000:0000:0000:0000:0001:ff00:0001",
			wantOctets: []byte{
				0xff, 0x02, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0x01, 0xff, 0x00, 0x00, 0x01,
			},
			wantPrefix: 128,
		},
		{
			name:  "unpadded groups",
			input: "fe80:0:0:0:0:0:0:1",
			wantOctets: []byte{
				0xfe, 0x80, 0, 0, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0x01,
			},
			wantPrefix: 128,
		},
		{
			name:  "with prefix length",
			input: "2001:0db8:0000:0000:0000:0000:0000:0000/64",
			wantOctets: []byte{
				0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0,
				0, 0, 0, 0, 0, 0, 0, 0,
			},
			wantPrefix: 64,
		},
		{name: "empty", input: "", wantErr: ErrInvalidAddress},
		{name: "compressed form rejected", input: "2001:db8::1", wantErr: ErrInvalidAddress},
		{name: "too few groups", input: "2001:0db8:0:0:0:0:1", wantErr: ErrInvalidAddress},
		{name: "group out of range", input: "12001:0db8:0:0:0:0:0:1", wantErr: ErrInvalidAddress},
		{name: "non hex group", input: "zzzz:0db8:0:0:0:0:0:1", wantErr: ErrInvalidAddress},
		{name: "prefix too long", input: "2001:0db8:0:0:0:0:0:1/129", wantErr: ErrPrefixLen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseIPv6(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FamilyIPv6, a.Family())
			assert.Equal(t, tt.wantOctets, a.Octets())
			assert.Equal(t, tt.wantPrefix, a.PrefixLen())
		})
	}
}

func TestParseDispatch(t *testing.T) {
	a, err := Parse(FamilyIPv4, "10.0.0.1")
	require.NoError(t, err)
	assert.Equal(t, FamilyIPv4, a.Family())

	a, err = Parse(FamilyMAC, "00:11:22:33:44:55")
	require.NoError(t, err)
	assert.Equal(t, FamilyMAC, a.Family())

	_, err = Parse(FamilyInvalid, "10.0.0.1")
	assert.ErrorIs(t, err, ErrFamily)
}

func TestParseMACLoose(t *testing.T) {
	want := []byte{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "colon delimited", input: "00:11:22:33:44:55"},
		{name: "dash delimited", input: "00-11-22-33-44-55"},
		{name: "cisco dotted", input: "0011.2233.4455"},
		{name: "bare hex", input: "001122334455"},
		{name: "surrounding whitespace", input: "  00:11:22:33:44:55  "},
		{name: "too short", input: "0011223344", wantErr: true},
		{name: "too long", input: "00112233445566", wantErr: true},
		{name: "non hex", input: "00:11:22:33:44:zz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := ParseMACLoose(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAddress)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, FamilyMAC, a.Family())
			assert.Equal(t, want, a.Octets())
		})
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() { MustParseIPv4("1.2.3.256") })
	assert.Panics(t, func() { MustParseMAC("not-a-mac") })
	assert.Panics(t, func() { MustParseIPv6("::1") })
	assert.NotPanics(t, func() { MustParseIPv4("10.0.0.1") })
}
