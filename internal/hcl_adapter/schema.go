package hcl_adapter

// fileRoot is the schema of a configuration file. Every field is optional so
// that a file only overrides what it mentions.
type fileRoot struct {
	Log     *logBlock    `hcl:"log,block"`
	Reader  *readerBlock `hcl:"reader,block"`
	Workers *int         `hcl:"workers,optional"`
	Output  *string      `hcl:"output,optional"`
}

// logBlock is the `log` block.
type logBlock struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// readerBlock is the `reader` block.
type readerBlock struct {
	ResolveReferences  *bool   `hcl:"resolve_references,optional"`
	GenerateMissingIDs *bool   `hcl:"generate_missing_ids,optional"`
	IDPrefix           *string `hcl:"id_prefix,optional"`
}
