// Package bits reads bit fields the way ISO/IEC 7816 and EMV number them:
// bit 1 is the least significant bit, bit 8 the most significant.
package bits

// Bit returns a byte with only bit n (1 to 8) set, or 0 when n is out of range.
func Bit(n uint) byte {
	if n < 1 || n > 8 {
		return 0
	}
	return 1 << (n - 1)
}

// IsSet reports whether bit n of b is set.
func IsSet(b byte, n uint) bool {
	return b&Bit(n) != 0
}

// Field extracts bits high..low of b, shifted down to bit 1.
// Field(0b0110_0000, 8, 7) returns 0b01.
func Field(b byte, high, low uint) byte {
	if high < low || high > 8 || low < 1 {
		return 0
	}

	width := high - low + 1
	mask := byte(1<<width - 1)

	return (b >> (low - 1)) & mask
}
