package config

import (
	"errors"
	"fmt"
	"slices"
)

// ErrInvalidConfig is returned (wrapped) by Validate.
var ErrInvalidConfig = errors.New("invalid configuration")

// Accepted values for the enumerated settings.
var (
	LogLevels  = []string{"debug", "info", "warn", "error"}
	LogFormats = []string{"text", "json"}
	Outputs    = []string{"yaml", "json"}
)

// Model is the unified, format-agnostic representation of the application
// configuration.
type Model struct {
	Log     Log
	Reader  Reader
	Workers int
	Output  string
}

// Log configures the application logger.
type Log struct {
	Level  string
	Format string
}

// Reader configures how documents are read.
type Reader struct {
	// ResolveReferences turns identifier attributes into object references
	// and rejects documents with dangling ones.
	ResolveReferences bool
	// GenerateMissingIDs assigns identifiers to elements without an id
	// attribute instead of failing.
	GenerateMissingIDs bool
	// IDPrefix is prepended to generated identifiers.
	IDPrefix string
}

// Default returns the configuration used when nothing else is set.
func Default() *Model {
	return &Model{
		Log:     Log{Level: "info", Format: "text"},
		Workers: 4,
		Output:  "yaml",
	}
}

// Validate checks every enumerated field and the worker count.
func (m *Model) Validate() error {
	if !slices.Contains(LogLevels, m.Log.Level) {
		return fmt.Errorf("%w: log level %q, want one of %v", ErrInvalidConfig, m.Log.Level, LogLevels)
	}
	if !slices.Contains(LogFormats, m.Log.Format) {
		return fmt.Errorf("%w: log format %q, want one of %v", ErrInvalidConfig, m.Log.Format, LogFormats)
	}
	if !slices.Contains(Outputs, m.Output) {
		return fmt.Errorf("%w: output %q, want one of %v", ErrInvalidConfig, m.Output, Outputs)
	}
	if m.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1, got %d", ErrInvalidConfig, m.Workers)
	}
	return nil
}
