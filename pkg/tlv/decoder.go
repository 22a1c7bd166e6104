// Package tlv decodes flat, hex-encoded EMV Tag-Length-Value streams.
//
// A stream is a sequence of segments, each made of a tag (2 or 4 hex digits),
// a one-byte length (2 hex digits) and a value of 2*length hex digits. Tags
// have no self-describing width here, so the decoder asks a TagSet which
// identifiers exist and prefers the 4-digit form when both match.
package tlv

import (
	"encoding/hex"
)

const (
	longTagLen  = 4
	shortTagLen = 2
	lengthLen   = 2
)

// TagSet reports which tag identifiers are known.
// Lookups compare the exact characters of the input, so casing must match.
type TagSet interface {
	Contains(tag string) bool
}

// Decode parses a hex-digit string into an ordered Record.
// It stops at the first malformed segment and returns no partial result.
func Decode(data string, tags TagSet) (*Record, error) {
	return DecodeBytes([]byte(data), tags)
}

// DecodeBytes is Decode over the raw characters of the stream.
func DecodeBytes(data []byte, tags TagSet) (*Record, error) {
	c := &cursor{data: data}
	rec := NewRecord()

	for !c.done() {
		tag, ok := c.tag(tags)
		if !ok {
			return nil, &DecodeError{Kind: UnknownTag, Index: c.pos}
		}

		raw, ok := c.take(lengthLen)
		if !ok {
			return nil, &DecodeError{Kind: IncompleteLength, Index: c.pos, Tag: tag}
		}
		var length [1]byte
		if _, err := hex.Decode(length[:], raw); err != nil {
			return nil, &DecodeError{Kind: MalformedLength, Index: c.pos, Tag: tag, Err: err}
		}
		c.advance(lengthLen)

		valueLen := int(length[0]) * 2
		value, ok := c.take(valueLen)
		if !ok {
			return nil, &DecodeError{Kind: IncompleteValue, Index: c.pos, Tag: tag}
		}
		c.advance(valueLen)

		rec.Set(tag, string(value))
	}

	return rec, nil
}

// cursor walks the stream in fixed-width chunks.
type cursor struct {
	data []byte
	pos  int
}

func (c *cursor) done() bool {
	return c.pos >= len(c.data)
}

// take returns the next n characters without consuming them.
func (c *cursor) take(n int) ([]byte, bool) {
	if c.pos+n > len(c.data) {
		return nil, false
	}
	return c.data[c.pos : c.pos+n], true
}

func (c *cursor) advance(n int) {
	c.pos += n
}

// tag resolves the identifier at the cursor, longest match first.
// The cursor only moves when a tag is found.
func (c *cursor) tag(tags TagSet) (string, bool) {
	for _, n := range [...]int{longTagLen, shortTagLen} {
		raw, ok := c.take(n)
		if !ok {
			continue
		}
		if tag := string(raw); tags.Contains(tag) {
			c.advance(n)
			return tag, true
		}
	}
	return "", false
}
