package tlv

import (
	"encoding/hex"
	"fmt"

	"github.com/elliotchance/orderedmap/v3"
	"github.com/moov-io/bertlv"
)

// Field is a single decoded (tag, value) pair. Both are hex-digit text.
type Field struct {
	Tag   string
	Value string
}

// Record is the ordered result of one decode call.
// Tags keep the order of their first occurrence; a repeated tag replaces the
// earlier value without moving it.
type Record struct {
	fields *orderedmap.OrderedMap[string, string]
}

// NewRecord returns an empty record.
func NewRecord() *Record {
	return &Record{fields: orderedmap.NewOrderedMap[string, string]()}
}

// Set stores value under tag, overwriting any previous value in place.
func (r *Record) Set(tag, value string) {
	r.fields.Set(tag, value)
}

// Get returns the value stored for tag.
func (r *Record) Get(tag string) (string, bool) {
	return r.fields.Get(tag)
}

// Has reports whether tag was decoded.
func (r *Record) Has(tag string) bool {
	return r.fields.Has(tag)
}

// Len returns the number of distinct tags.
func (r *Record) Len() int {
	return r.fields.Len()
}

// Tags returns the tags in first-occurrence order.
func (r *Record) Tags() []string {
	tags := make([]string, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		tags = append(tags, el.Key)
	}
	return tags
}

// Fields returns the (tag, value) pairs in first-occurrence order.
func (r *Record) Fields() []Field {
	fields := make([]Field, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		fields = append(fields, Field{Tag: el.Key, Value: el.Value})
	}
	return fields
}

// Packets converts the record into binary BER-TLV packets.
// It fails if a tag or value is not valid hex.
func (r *Record) Packets() ([]bertlv.TLV, error) {
	packets := make([]bertlv.TLV, 0, r.fields.Len())
	for el := r.fields.Front(); el != nil; el = el.Next() {
		if _, err := hex.DecodeString(el.Key); err != nil {
			return nil, fmt.Errorf("tag %q is not hex: %w", el.Key, err)
		}
		value, err := hex.DecodeString(el.Value)
		if err != nil {
			return nil, fmt.Errorf("value of tag %s is not hex: %w", el.Key, err)
		}
		packets = append(packets, bertlv.TLV{Tag: el.Key, Value: value})
	}
	return packets, nil
}

// EncodeBER re-encodes the record as BER-TLV bytes.
// Values longer than 127 bytes get the long length form (81 xx).
func (r *Record) EncodeBER() ([]byte, error) {
	packets, err := r.Packets()
	if err != nil {
		return nil, err
	}
	data, err := bertlv.Encode(packets)
	if err != nil {
		return nil, fmt.Errorf("bertlv encode failed: %w", err)
	}
	return data, nil
}
