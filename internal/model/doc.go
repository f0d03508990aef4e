// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model holds the taxon side of the phylogenetic object graph:
// operational taxonomic units (Otu) and the taxon sets that own them (Otus).
//
// # Core Concepts
//
//   - Otu: a single taxon, identified by id and optionally labelled. It belongs
//     to at most one Otus.
//
//   - Otus: a taxon set. It owns its Otu members through the relation engine,
//     so AddOtu, SetOtus and Otu.SetOtus all keep both sides in step.
//
//   - Holder: whatever owns taxon sets. The document root implements it; the
//     interface keeps this package free of a dependency on the root.
//
// # Properties
//
// Every entity accepts a fixed set of named properties through SetProperty and
// SetProperties, and its factory takes an initial property map. Naming a
// property the entity does not declare fails with ErrUnconfiguredProperty.
// A batch is validated in full before anything is assigned.
package model
