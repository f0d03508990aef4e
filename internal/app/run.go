package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/specialistvlad/nexgraph/internal/ctxlog"
	"github.com/specialistvlad/nexgraph/internal/fsutil"
	"github.com/specialistvlad/nexgraph/internal/idgen"
	"github.com/specialistvlad/nexgraph/internal/reader"
	"github.com/specialistvlad/nexgraph/internal/report"
	"golang.org/x/sync/errgroup"
)

// ErrDocumentsFailed is returned by Run when at least one document could not
// be read. The report has still been written.
var ErrDocumentsFailed = errors.New("some documents could not be read")

// DocumentExtensions are the file extensions Run picks up in a directory.
var DocumentExtensions = []string{".xml", ".nexml"}

// Run reads every document under the configured path and writes the report.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	files, err := fsutil.FindFilesByExtension(a.documents, DocumentExtensions...)
	if err != nil {
		return fmt.Errorf("failed to find documents: %w", err)
	}
	if len(files) == 0 {
		a.logger.Warn("No documents found.", "path", a.documents)
	}
	a.logger.Info("Reading documents.", "count", len(files), "workers", a.config.Workers)

	rep := &report.Report{Documents: make([]report.Entry, len(files))}
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.config.Workers)

	for i, path := range files {
		g.Go(func() error {
			rep.Documents[i].Path = path
			doc, err := reader.ReadFile(gctx, path, a.readerOptions())
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				a.logger.Warn("Document could not be read.", "file", path, "error", err)
				rep.Documents[i].Error = err.Error()
				return nil
			}
			summary := doc.Summary()
			rep.Documents[i].Document = &summary
			a.logger.Debug("Document read.", "file", path, "otus", doc.NumberOfOtus(), "trees", doc.NumberOfTrees())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("reading interrupted: %w", err)
	}

	if err := report.Write(a.outW, a.config.Output, rep); err != nil {
		return err
	}

	failed := rep.Failed()
	a.logger.Info("Finished.", "documents", len(files), "failed", failed)
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrDocumentsFailed, failed, len(files))
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// readerOptions builds the options for reading one document.
func (a *App) readerOptions() reader.Options {
	opts := reader.Options{
		ResolveReferences:  a.config.Reader.ResolveReferences,
		GenerateMissingIDs: a.config.Reader.GenerateMissingIDs,
	}
	if opts.GenerateMissingIDs {
		opts.IDs = idgen.NewUUID(a.config.Reader.IDPrefix)
	}
	return opts
}
