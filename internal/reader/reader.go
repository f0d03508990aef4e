package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/nexgraph/internal/ctxlog"
	"github.com/specialistvlad/nexgraph/internal/cursor"
	"github.com/specialistvlad/nexgraph/internal/idgen"
	"github.com/specialistvlad/nexgraph/internal/nexml"
)

// Options controls how markup becomes a document.
type Options struct {
	// ResolveReferences turns identifier attributes into object links.
	ResolveReferences bool
	// GenerateMissingIDs assigns identifiers to elements without one instead
	// of failing.
	GenerateMissingIDs bool
	// IDs generates the missing identifiers. Defaults to idgen.NewUUID("").
	IDs idgen.Generator
}

// Read consumes r and returns the document it describes. r is closed on
// return if it implements io.Closer.
func Read(ctx context.Context, r io.Reader, opts Options) (*nexml.Document, error) {
	cur := cursor.New(r)
	defer cur.Close()

	if opts.GenerateMissingIDs && opts.IDs == nil {
		opts.IDs = idgen.NewUUID("")
	}
	rd := &reader{
		ctx:    ctx,
		logger: ctxlog.FromContext(ctx),
		cur:    cur,
		opts:   opts,
	}
	return rd.document()
}

// ReadFile opens and reads the document at path.
func ReadFile(ctx context.Context, path string, opts Options) (*nexml.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open document: %w", err)
	}
	doc, err := Read(ctxlog.With(ctx, "file", path), f, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return doc, nil
}

type reader struct {
	ctx    context.Context
	logger *slog.Logger
	cur    *cursor.Cursor
	opts   Options
}

// fail builds a ParseError positioned at the current token.
func (rd *reader) fail(element string, cause error, format string, args ...any) error {
	return &ParseError{
		Element: element,
		Offset:  rd.cur.Offset(),
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// advance moves one token forward. Running out of input is a parse failure
// attributed to the element still open.
func (rd *reader) advance(open string) error {
	err := rd.cur.Next()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return rd.fail(open, nil, "unexpected end of input")
	default:
		return rd.fail(open, err, "malformed markup")
	}
}

// nextChild advances to the next element directly inside parent, which is
// open at depth. It reports false once parent closes. The caller must
// consume or skip each child it is handed.
func (rd *reader) nextChild(parent string, depth int) (bool, error) {
	if err := rd.ctx.Err(); err != nil {
		return false, err
	}
	for {
		if err := rd.advance(parent); err != nil {
			return false, err
		}
		switch rd.cur.Kind() {
		case cursor.StartElement:
			return true, nil
		case cursor.EndElement:
			if rd.cur.Depth() <= depth {
				return false, nil
			}
		}
	}
}

// scanTo advances to the next child of parent named name, skipping other
// children. Reaching parent's close first is a parse failure.
func (rd *reader) scanTo(name, parent string, depth int) error {
	for {
		ok, err := rd.nextChild(parent, depth)
		if err != nil {
			return err
		}
		if !ok {
			return rd.fail(parent, nil, "expected <%s>", name)
		}
		if rd.cur.Name() == name {
			return nil
		}
		if err := rd.skip(); err != nil {
			return err
		}
	}
}

// skip consumes the current element through its closing tag.
func (rd *reader) skip() error {
	name, depth := rd.cur.Name(), rd.cur.Depth()
	for {
		if err := rd.advance(name); err != nil {
			return err
		}
		if rd.cur.Kind() == cursor.EndElement && rd.cur.Depth() == depth {
			return nil
		}
	}
}

// attrs collects the named attributes present on the current element.
func (rd *reader) attrs(names ...string) map[string]string {
	props := make(map[string]string, len(names))
	for _, name := range names {
		if v, ok := rd.cur.Attr(name); ok {
			props[name] = v
		}
	}
	return props
}

// id returns the current element's identifier, generating one if allowed.
func (rd *reader) id(kind string) (string, error) {
	if id, ok := rd.cur.Attr("id"); ok && id != "" {
		return id, nil
	}
	if !rd.opts.GenerateMissingIDs {
		return "", rd.fail(kind, nil, "missing id attribute")
	}
	id := rd.opts.IDs.NewID(kind)
	rd.logger.Debug("Generated missing identifier.", "element", kind, "id", id)
	return id, nil
}
