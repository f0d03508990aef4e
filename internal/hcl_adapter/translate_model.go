// This file contains the logic for merging decoded HCL schema structs into
// the format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"

	"github.com/specialistvlad/nexgraph/internal/config"
	"github.com/specialistvlad/nexgraph/internal/ctxlog"
)

// mergeInto copies every field the file set onto model.
func mergeInto(ctx context.Context, model *config.Model, root *fileRoot) {
	logger := ctxlog.FromContext(ctx)

	if root.Log != nil {
		setString(&model.Log.Level, root.Log.Level)
		setString(&model.Log.Format, root.Log.Format)
		logger.Debug("Merged log block.", "level", model.Log.Level, "format", model.Log.Format)
	}
	if root.Reader != nil {
		setBool(&model.Reader.ResolveReferences, root.Reader.ResolveReferences)
		setBool(&model.Reader.GenerateMissingIDs, root.Reader.GenerateMissingIDs)
		setString(&model.Reader.IDPrefix, root.Reader.IDPrefix)
		logger.Debug("Merged reader block.",
			"resolve_references", model.Reader.ResolveReferences,
			"generate_missing_ids", model.Reader.GenerateMissingIDs,
		)
	}
	if root.Workers != nil {
		model.Workers = *root.Workers
	}
	setString(&model.Output, root.Output)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func setBool(dst *bool, src *bool) {
	if src != nil {
		*dst = *src
	}
}
