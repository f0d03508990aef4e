package reader

import (
	"errors"
	"strconv"
	"strings"
)

// ErrParseFailure indicates markup the reader could not turn into a document.
var ErrParseFailure = errors.New("nexgraph: parse failure")

// ParseError describes where and why reading stopped.
type ParseError struct {
	Element string // element being read
	Offset  int64  // byte offset of the token at fault
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	var b strings.Builder
	b.WriteString("nexgraph: parse failure at offset ")
	b.WriteString(strconv.FormatInt(e.Offset, 10))
	if e.Element != "" {
		b.WriteString(" in <")
		b.WriteString(e.Element)
		b.WriteString(">")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is ErrParseFailure.
func (e *ParseError) Is(target error) bool {
	return target == ErrParseFailure
}

// IsParseFailure reports whether err is or wraps ErrParseFailure.
func IsParseFailure(err error) bool {
	return errors.Is(err, ErrParseFailure)
}
