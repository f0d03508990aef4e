// Package reader builds a nexml.Document from markup in a single forward
// pass.
//
// # How It Works
//
// The reader holds one cursor position and never moves back. Every scan is
// bounded by the element that encloses it: nextChild stops when the parent
// closes, and scanTo fails with ErrParseFailure rather than run past the
// parent or the end of input. Elements the reader does not model
// (characters, meta, ...) are skipped as whole subtrees.
//
// Each element becomes an entity through its factory, and is attached to its
// owner through the relation engine, so the document is consistent in both
// directions when Read returns.
//
// # References
//
// By default edge endpoints, node taxa and tree-collection taxon sets are
// kept as raw identifiers. With Options.ResolveReferences they are resolved
// to objects while reading, and a dangling identifier is a parse failure.
//
// # Errors
//
// Every failure is a *ParseError carrying the element and byte offset.
// Failures raised by the graph, such as a second edge into one node of a
// tree, are wrapped, so errors.Is matches both ErrParseFailure and the
// graph's sentinel.
package reader
