package emv

import (
	"encoding/hex"
	"fmt"

	"github.com/bytePro05541/tlvParser/pkg/bits"
)

// TAG CLASSIFICATION:
// The first byte of a BER tag carries its class in bits 8-7 and whether the
// value is a nested template in bit 6:
//
//	b8 b7  class              b6  form
//	0  0   universal          0   primitive
//	0  1   application        1   constructed
//	1  0   context-specific
//	1  1   private
//
// The flat decoder never descends into constructed values; the form is only
// reported so readers know a value holds further TLV data.

// Class is the BER class of a tag.
type Class byte

const (
	ClassUniversal Class = iota
	ClassApplication
	ClassContextSpecific
	ClassPrivate
)

func (c Class) String() string {
	switch c {
	case ClassUniversal:
		return "universal"
	case ClassApplication:
		return "application"
	case ClassContextSpecific:
		return "context-specific"
	case ClassPrivate:
		return "private"
	default:
		return fmt.Sprintf("Class(%d)", byte(c))
	}
}

// TagInfo describes the first byte of a tag.
type TagInfo struct {
	Class       Class
	Constructed bool
}

func (i TagInfo) String() string {
	form := "primitive"
	if i.Constructed {
		form = "constructed"
	}
	return fmt.Sprintf("%s, %s", i.Class, form)
}

// ParseTag classifies a hex tag identifier such as "9F02".
func ParseTag(tag string) (TagInfo, error) {
	raw, err := hex.DecodeString(tag)
	if err != nil {
		return TagInfo{}, fmt.Errorf("invalid tag %q: %w", tag, err)
	}
	if len(raw) == 0 {
		return TagInfo{}, fmt.Errorf("empty tag")
	}

	first := raw[0]
	return TagInfo{
		Class:       Class(bits.Field(first, 8, 7)),
		Constructed: bits.IsSet(first, 6),
	}, nil
}

// Classify returns a short description of tag, or "" when it is not hex.
// It fits tlv.DescribeOptions.Classify.
func Classify(tag string) string {
	info, err := ParseTag(tag)
	if err != nil {
		return ""
	}
	return info.String()
}
