package tlv

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which field of a segment could not be decoded.
type ErrorKind int

const (
	// UnknownTag means neither the 4 nor the 2 characters at the cursor are a known tag.
	UnknownTag ErrorKind = iota + 1
	// IncompleteLength means fewer than 2 characters remain for the length field.
	IncompleteLength
	// IncompleteValue means fewer than 2*length characters remain for the value.
	IncompleteValue
	// MalformedLength means the length field holds non-hex characters.
	MalformedLength
)

// Sentinels matched by errors.Is against a *DecodeError of the same kind.
var (
	ErrUnknownTag       = errors.New("unknown tag")
	ErrIncompleteLength = errors.New("incomplete length")
	ErrIncompleteValue  = errors.New("incomplete value")
	ErrMalformedLength  = errors.New("malformed length")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case UnknownTag:
		return ErrUnknownTag
	case IncompleteLength:
		return ErrIncompleteLength
	case IncompleteValue:
		return ErrIncompleteValue
	case MalformedLength:
		return ErrMalformedLength
	default:
		return nil
	}
}

// String returns the lower-case name used in error messages.
func (k ErrorKind) String() string {
	if s := k.sentinel(); s != nil {
		return s.Error()
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// DecodeError reports the first malformed segment of a TLV stream.
// Index is the cursor position (in hex characters) where the failing field starts.
type DecodeError struct {
	Kind  ErrorKind
	Index int
	Tag   string // tag of the segment being read, empty for UnknownTag
	Err   error  // underlying cause, if any
}

func (e *DecodeError) Error() string {
	msg := fmt.Sprintf("%s at index %d", e.Kind, e.Index)
	if e.Tag != "" {
		msg = fmt.Sprintf("%s (tag %s)", msg, e.Tag)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

// Unwrap exposes the underlying cause.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the sentinel of this error's kind.
func (e *DecodeError) Is(target error) bool {
	return target != nil && target == e.Kind.sentinel()
}
