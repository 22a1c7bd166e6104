package tlv

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/moov-io/bertlv"
)

func TestRecordSetKeepsFirstPosition(t *testing.T) {
	rec := NewRecord()
	rec.Set("9C", "01")
	rec.Set("9A", "250325")
	rec.Set("9C", "02")

	if diff := cmp.Diff([]string{"9C", "9A"}, rec.Tags()); diff != "" {
		t.Errorf("Tags mismatch (-want +got):\n%s", diff)
	}

	got, ok := rec.Get("9C")
	if !ok || got != "02" {
		t.Errorf("Get(9C) = %q, %v; want 02, true", got, ok)
	}
	if !rec.Has("9A") || rec.Has("95") {
		t.Errorf("Has() reports wrong membership")
	}
	if rec.Len() != 2 {
		t.Errorf("Len() = %d, want 2", rec.Len())
	}
}

// TestEncodeBERMatchesReference re-encodes the sample transaction and reads it
// back with the bertlv decoder, which must see the same primitive fields.
func TestEncodeBERMatchesReference(t *testing.T) {
	rec, err := Decode(sampleTransaction, sampleTags)
	if err != nil {
		t.Fatalf("Decode() failed: %v", err)
	}

	data, err := rec.EncodeBER()
	if err != nil {
		t.Fatalf("EncodeBER() failed: %v", err)
	}

	// Every sample value is shorter than 128 bytes, so BER and the flat
	// format share the same bytes.
	if got := strings.ToUpper(hex.EncodeToString(data)); got != sampleTransaction {
		t.Errorf("EncodeBER() = %s, want %s", got, sampleTransaction)
	}

	packets, err := bertlv.Decode(data)
	if err != nil {
		t.Fatalf("bertlv.Decode() failed: %v", err)
	}

	var got []Field
	for _, p := range packets {
		got = append(got, Field{
			Tag:   strings.ToUpper(p.Tag),
			Value: strings.ToUpper(hex.EncodeToString(p.Value)),
		})
	}

	if diff := cmp.Diff(sampleFields, got); diff != "" {
		t.Errorf("bertlv view mismatch (-want +got):\n%s", diff)
	}
}

func TestEncodeBERLongForm(t *testing.T) {
	rec := NewRecord()
	rec.Set("DF79", strings.Repeat("AB", 200))

	data, err := rec.EncodeBER()
	if err != nil {
		t.Fatalf("EncodeBER() failed: %v", err)
	}

	if got := strings.ToUpper(hex.EncodeToString(data[:4])); got != "DF7981C8" {
		t.Errorf("header = %s, want DF7981C8", got)
	}
	if len(data) != 4+200 {
		t.Errorf("len = %d, want %d", len(data), 204)
	}
}

func TestPacketsRejectsNonHex(t *testing.T) {
	tests := []struct {
		name  string
		tag   string
		value string
	}{
		{name: "Bad Value", tag: "9C", value: "0G"},
		{name: "Odd Value", tag: "9C", value: "012"},
		{name: "Bad Tag", tag: "ZZ", value: "01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord()
			rec.Set(tt.tag, tt.value)

			if _, err := rec.Packets(); err == nil {
				t.Error("Packets() succeeded, want error")
			}
			if _, err := rec.EncodeBER(); err == nil {
				t.Error("EncodeBER() succeeded, want error")
			}
		})
	}
}
