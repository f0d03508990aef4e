package app

import (
	"errors"

	"github.com/specialistvlad/nexgraph/internal/config"
)

// Config holds what an entrypoint passes to the App. Zero values leave the
// corresponding setting to the configuration files.
type Config struct {
	DocumentPath string   // document file or directory
	ConfigPaths  []string // hcl files or directories

	LogFormat          string
	LogLevel           string
	Workers            int
	Output             string
	ResolveReferences  bool
	GenerateMissingIDs bool
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}
	return &cfg, nil
}

// apply writes the non-zero overrides onto m.
func (c *Config) apply(m *config.Model) {
	if c.LogLevel != "" {
		m.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		m.Log.Format = c.LogFormat
	}
	if c.Workers > 0 {
		m.Workers = c.Workers
	}
	if c.Output != "" {
		m.Output = c.Output
	}
	if c.ResolveReferences {
		m.Reader.ResolveReferences = true
	}
	if c.GenerateMissingIDs {
		m.Reader.GenerateMissingIDs = true
	}
}
