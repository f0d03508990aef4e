package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/nexgraph/internal/config"
	"github.com/specialistvlad/nexgraph/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *config.Model
	documents string
}

// NewApp is the constructor for the main application. Reports go to outW and
// logs to logW. It fails if the configuration cannot be loaded or is invalid
// once the overrides in appConfig are applied.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	// The files may change the level, so start from the overrides alone.
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)

	cfgModel, err := loader.Load(ctx, appConfig.ConfigPaths...)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	appConfig.apply(cfgModel)
	if err := cfgModel.Validate(); err != nil {
		return nil, err
	}

	logger = newLogger(cfgModel.Log.Level, cfgModel.Log.Format, logW)
	logger.Debug("Configuration loaded.",
		"workers", cfgModel.Workers,
		"output", cfgModel.Output,
		"resolve_references", cfgModel.Reader.ResolveReferences,
		"generate_missing_ids", cfgModel.Reader.GenerateMissingIDs,
	)

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfgModel,
		documents: appConfig.DocumentPath,
	}, nil
}

// Config returns the effective configuration. This is primarily for testing.
func (a *App) Config() *config.Model {
	return a.config
}
