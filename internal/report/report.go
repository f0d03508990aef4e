// Package report renders the outcome of reading a batch of documents.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/specialistvlad/nexgraph/internal/nexml"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for an unsupported format name.
var ErrUnknownFormat = errors.New("unknown report format")

// Report lists one entry per document, in discovery order.
type Report struct {
	Documents []Entry `yaml:"documents" json:"documents"`
}

// Entry is the outcome for one document: a summary, or the error that
// stopped it from being read.
type Entry struct {
	Path     string         `yaml:"path" json:"path"`
	Error    string         `yaml:"error,omitempty" json:"error,omitempty"`
	Document *nexml.Summary `yaml:"document,omitempty" json:"document,omitempty"`
}

// Failed returns the number of entries carrying an error.
func (r *Report) Failed() int {
	n := 0
	for _, e := range r.Documents {
		if e.Error != "" {
			n++
		}
	}
	return n
}

// Write encodes r to w as "yaml" or "json".
func Write(w io.Writer, format string, r *Report) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
