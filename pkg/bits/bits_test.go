package bits

import "testing"

func TestBit(t *testing.T) {
	tests := []struct {
		n        uint
		expected byte
	}{
		{1, 0x01}, {6, 0x20}, {8, 0x80},
		{0, 0x00}, {9, 0x00}, // out of range
	}

	for _, tt := range tests {
		if res := Bit(tt.n); res != tt.expected {
			t.Errorf("Bit(%d) = 0x%02X; want 0x%02X", tt.n, res, tt.expected)
		}
	}
}

func TestIsSet(t *testing.T) {
	// 0x6F: FCI template, application class, constructed
	if !IsSet(0x6F, 6) {
		t.Error("bit 6 of 0x6F should be set")
	}
	// 0x5F: application class, primitive
	if IsSet(0x5F, 6) {
		t.Error("bit 6 of 0x5F should NOT be set")
	}
	if IsSet(0x5F, 0) {
		t.Error("bit 0 does not exist")
	}
}

func TestField(t *testing.T) {
	tests := []struct {
		name      string
		b         byte
		high, low uint
		want      byte
	}{
		{"Upper Two Bits Of 9F", 0x9F, 8, 7, 0x02},
		{"Upper Two Bits Of DF", 0xDF, 8, 7, 0x03},
		{"Tag Number Bits Of 5F", 0x5F, 5, 1, 0x1F},
		{"Single Bit", 0x20, 6, 6, 0x01},
		{"Full Byte", 0xA5, 8, 1, 0xA5},
		{"Reversed Range", 0xFF, 1, 8, 0x00},
		{"Out Of Range", 0xFF, 9, 1, 0x00},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Field(tt.b, tt.high, tt.low); got != tt.want {
				t.Errorf("Field(0x%02X, %d, %d) = 0x%02X; want 0x%02X", tt.b, tt.high, tt.low, got, tt.want)
			}
		})
	}
}
