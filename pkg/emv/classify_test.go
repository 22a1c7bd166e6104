package emv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		name    string
		tag     string
		want    TagInfo
		wantErr bool
	}{
		{name: "Universal", tag: "02", want: TagInfo{Class: ClassUniversal}},
		{name: "Application Primitive", tag: "5F2A", want: TagInfo{Class: ClassApplication}},
		{name: "Application Constructed", tag: "6F", want: TagInfo{Class: ClassApplication, Constructed: true}},
		{name: "Context Specific", tag: "9F02", want: TagInfo{Class: ClassContextSpecific}},
		{name: "Context Constructed", tag: "A5", want: TagInfo{Class: ClassContextSpecific, Constructed: true}},
		{name: "Private", tag: "DF79", want: TagInfo{Class: ClassPrivate}},
		{name: "Lower Case", tag: "bf0c", want: TagInfo{Class: ClassContextSpecific, Constructed: true}},
		{name: "Not Hex", tag: "ZZ", wantErr: true},
		{name: "Odd Length", tag: "9F0", wantErr: true},
		{name: "Empty", tag: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTag(tt.tag)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseTag(%q) error = %v, wantErr %v", tt.tag, err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseTag(%q) mismatch (-want +got):\n%s", tt.tag, diff)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := map[string]string{
		"9F02": "context-specific, primitive",
		"70":   "application, constructed",
		"DF79": "private, primitive",
		"XY":   "",
	}

	for tag, want := range tests {
		if got := Classify(tag); got != want {
			t.Errorf("Classify(%q) = %q, want %q", tag, got, want)
		}
	}
}
