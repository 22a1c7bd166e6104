package tlv

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// UnknownName is displayed for tags the Namer has no entry for.
const UnknownName = "Unknown"

// Namer resolves a tag to its display name.
type Namer interface {
	Name(tag string) (string, bool)
}

// DescribeOptions tunes the report produced by DescribeWith.
type DescribeOptions struct {
	// ASCII appends the printable rendering of each value.
	ASCII bool
	// Classify, when set, appends its result for each tag.
	Classify func(tag string) string
}

// Describe renders one "TAG NAME VALUE" line per field, without a trailing newline.
func Describe(rec *Record, names Namer) string {
	return DescribeWith(rec, names, DescribeOptions{})
}

// DescribeWith is Describe with optional value and tag annotations.
func DescribeWith(rec *Record, names Namer, opts DescribeOptions) string {
	lines := make([]string, 0, rec.Len())

	for _, f := range rec.Fields() {
		lines = append(lines, formatField(f, lookupName(names, f.Tag), opts))
	}

	return strings.Join(lines, "\n")
}

func lookupName(names Namer, tag string) string {
	if names == nil {
		return UnknownName
	}
	if name, ok := names.Name(tag); ok {
		return name
	}
	return UnknownName
}

func formatField(f Field, name string, opts DescribeOptions) string {
	line := fmt.Sprintf("%-6s %-40s %s", f.Tag, name, f.Value)

	if opts.ASCII && f.Value != "" {
		if data, err := hex.DecodeString(f.Value); err == nil {
			line += fmt.Sprintf(" (%q)", MakeSafeASCII(data))
		}
	}

	if opts.Classify != nil {
		if class := opts.Classify(f.Tag); class != "" {
			line += fmt.Sprintf(" [%s]", class)
		}
	}

	return line
}

// MakeSafeASCII replaces every non-printable byte with a dot.
func MakeSafeASCII(data []byte) string {
	return strings.Map(func(r rune) rune {
		if r >= 32 && r <= 126 {
			return r
		}
		return '.'
	}, string(data))
}
