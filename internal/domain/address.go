package domain

import (
	"strconv"
	"strings"
)

// Address is a validated IPv4 address held as its four octets.
// The zero value is 0.0.0.0.
type Address [4]uint8

// ParseAddress parses a dotted-quad into an Address.
// It requires exactly four dot-separated parts, each an integer in [0,255],
// and reports false for anything else.
func ParseAddress(s string) (Address, bool) {
	var a Address
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return a, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 || n > 255 {
			return a, false
		}
		a[i] = uint8(n)
	}
	return a, true
}

// Uint32 returns the address as a big-endian 32-bit number.
func (a Address) Uint32() uint32 {
	return uint32(a[0])<<24 | uint32(a[1])<<16 | uint32(a[2])<<8 | uint32(a[3])
}

// Compare returns -1, 0 or +1 comparing a and b octet by octet.
func (a Address) Compare(b Address) int {
	x, y := a.Uint32(), b.Uint32()
	switch {
	case x < y:
		return -1
	case x > y:
		return 1
	default:
		return 0
	}
}
