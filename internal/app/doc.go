// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle, decoupled
// from any specific entrypoint like a CLI or server.
//
// # Lifecycle
//
//   - **NewApp** loads the configuration files through a config.Loader,
//     applies the entrypoint's overrides and builds the logger.
//   - **Run** discovers the documents, reads them concurrently (bounded by the
//     configured worker count, one graph per document) and writes a single
//     report to the output writer.
package app
