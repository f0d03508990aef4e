// Package cursor provides a forward-only position over a markup token
// stream. It exposes only what the reader needs: the kind of the current
// token, the local name of the current element and its attributes.
package cursor

import (
	"encoding/xml"
	"io"
)

// Kind classifies the current token.
type Kind int

const (
	// Other covers text, comments, processing instructions and directives.
	Other Kind = iota
	// StartElement is an opening (or self-closing) element tag.
	StartElement
	// EndElement is a closing tag. Self-closing elements produce one too.
	EndElement
)

func (k Kind) String() string {
	switch k {
	case StartElement:
		return "start"
	case EndElement:
		return "end"
	default:
		return "other"
	}
}

// Cursor walks tokens one at a time and never moves backwards.
type Cursor struct {
	src    io.Reader
	dec    *xml.Decoder
	kind   Kind
	name   string
	attrs  []xml.Attr
	level  int
	depth  int
	offset int64
	closed bool
}

// New creates a cursor positioned before the first token.
func New(r io.Reader) *Cursor {
	dec := xml.NewDecoder(r)
	dec.Strict = true
	return &Cursor{src: r, dec: dec}
}

// Next advances to the following token. It returns io.EOF at a clean end of
// input and the decoder's error for malformed or truncated input.
func (c *Cursor) Next() error {
	offset := c.dec.InputOffset()
	tok, err := c.dec.Token()
	if err != nil {
		c.kind, c.name, c.attrs = Other, "", nil
		return err
	}
	c.offset = offset
	switch t := tok.(type) {
	case xml.StartElement:
		c.level++
		c.kind, c.name, c.attrs, c.depth = StartElement, t.Name.Local, t.Attr, c.level
	case xml.EndElement:
		c.kind, c.name, c.attrs, c.depth = EndElement, t.Name.Local, nil, c.level
		c.level--
	default:
		c.kind, c.name, c.attrs, c.depth = Other, "", nil, c.level
	}
	return nil
}

// Kind returns the kind of the current token.
func (c *Cursor) Kind() Kind { return c.kind }

// Name returns the local name of the current element, without any prefix.
func (c *Cursor) Name() string { return c.name }

// Attr returns the value of the named attribute of the current start element.
// Namespace prefixes are ignored.
func (c *Cursor) Attr(name string) (string, bool) {
	for _, a := range c.attrs {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Is reports whether the current token is of kind k and named name.
func (c *Cursor) Is(k Kind, name string) bool {
	return c.kind == k && c.name == name
}

// Depth returns the nesting depth of the current element; the document
// element is at depth 1. Start and end tags of one element share a depth.
func (c *Cursor) Depth() int { return c.depth }

// Offset returns the byte offset at which the current token starts.
func (c *Cursor) Offset() int64 { return c.offset }

// Close closes the underlying reader if it is an io.Closer. It is safe to
// call more than once.
func (c *Cursor) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if closer, ok := c.src.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
