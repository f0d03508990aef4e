package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"

	"github.com/specialistvlad/nexgraph/internal/app"
	"github.com/specialistvlad/nexgraph/internal/config"
)

// DefaultConfigPath is loaded when no -config flag is given. It may be absent.
const DefaultConfigPath = "nexgraph.hcl"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("nexgraph", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
nexgraph - Reads NeXML phylogenetic documents and reports what they contain.

Usage:
  nexgraph [options] [PATH]

Arguments:
  PATH
    Path to a single document or a directory of .xml/.nexml documents.

Options:
`)
		flagSet.PrintDefaults()
	}

	var configPaths []string
	flagSet.Func("config", "Path to an .hcl config file or directory. May be repeated. (default \""+DefaultConfigPath+"\")", func(v string) error {
		configPaths = append(configPaths, v)
		return nil
	})
	documentsFlag := flagSet.String("documents", "", "Path to the document file or directory.")
	dFlag := flagSet.String("d", "", "Path to the document file or directory (shorthand).")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Overrides the config file.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Overrides the config file.")
	workersFlag := flagSet.Int("workers", 0, "Number of documents read concurrently. 0 keeps the config file value.")
	outputFlag := flagSet.String("output", "", "Report format. Options: 'yaml' or 'json'. Overrides the config file.")
	resolveFlag := flagSet.Bool("resolve", false, "Resolve identifier references and reject dangling ones.")
	generateFlag := flagSet.Bool("generate-ids", false, "Generate identifiers for elements without an id attribute.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	path := ""
	if *documentsFlag != "" {
		path = *documentsFlag
	} else if *dFlag != "" {
		path = *dFlag
	} else if flagSet.NArg() > 0 {
		path = flagSet.Arg(0)
	}
	slog.Debug("Document path determined.", "path", path)

	if path == "" {
		slog.Debug("No document path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "" && !slices.Contains(config.LogFormats, logFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if logLevel != "" && !slices.Contains(config.LogLevels, logLevel) {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	outputFormat := strings.ToLower(*outputFlag)
	if outputFormat != "" && !slices.Contains(config.Outputs, outputFormat) {
		return nil, false, &ExitError{Code: 2, Message: "invalid output: must be 'yaml' or 'json'"}
	}

	if *workersFlag < 0 {
		return nil, false, &ExitError{Code: 2, Message: "invalid workers: must not be negative"}
	}
	slog.Debug("CLI parameter validation complete.")

	if len(configPaths) == 0 {
		configPaths = []string{DefaultConfigPath}
	}

	cfg, err := app.NewConfig(app.Config{
		DocumentPath:       path,
		ConfigPaths:        configPaths,
		LogFormat:          logFormat,
		LogLevel:           logLevel,
		Workers:            *workersFlag,
		Output:             outputFormat,
		ResolveReferences:  *resolveFlag,
		GenerateMissingIDs: *generateFlag,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
