package tlv

import (
	"testing"
)

func TestHex(t *testing.T) {
	tests := []struct {
		name      string
		inputs    []string
		want      string
		wantPanic bool
	}{
		{
			name:   "Simple Join",
			inputs: []string{"5F2A", "02", "0840"},
			want:   "5F2A020840",
		},
		{
			name:   "With Spaces",
			inputs: []string{"9F02 06", " 000000000600 "},
			want:   "9F0206000000000600",
		},
		{
			name:   "Case Preserved",
			inputs: []string{"9f", "1A"},
			want:   "9f1A",
		},
		{
			name:      "Invalid Hex",
			inputs:    []string{"ZZ"},
			wantPanic: true,
		},
		{
			name:      "Odd Length",
			inputs:    []string{"123"},
			wantPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Errorf("Hex() panic = %v, wantPanic %v", r, tt.wantPanic)
				}
			}()

			got := Hex(tt.inputs...)
			if got != tt.want {
				t.Errorf("Hex() = %s, want %s", got, tt.want)
			}
		})
	}
}
