package graph

import (
	"errors"
	"strings"
)

// Sentinel errors for graph failures.
var (
	// ErrStructuralViolation indicates a mutation that would break a tree's shape.
	ErrStructuralViolation = errors.New("nexgraph: structural violation")
	// ErrUnrootedTree indicates a root-relative query with no root available.
	ErrUnrootedTree = errors.New("nexgraph: unrooted tree")
	// ErrNodeNotFound indicates a node that is not part of the queried graph.
	ErrNodeNotFound = errors.New("nexgraph: node not found")
)

// StructuralError describes a rejected edge.
type StructuralError struct {
	Kind      string // "tree" or "network", when known
	Phylogeny string // graph identifier, when known
	Edge      string // rejected edge
	Reason    string
}

// Error implements the error interface.
func (e *StructuralError) Error() string {
	var b strings.Builder
	b.WriteString("nexgraph: structural violation")
	if e.Phylogeny != "" {
		b.WriteString(" in ")
		b.WriteString(e.Kind)
		b.WriteString(" ")
		b.WriteString(e.Phylogeny)
	}
	if e.Edge != "" {
		b.WriteString(": edge ")
		b.WriteString(e.Edge)
	}
	if e.Reason != "" {
		b.WriteString(" ")
		b.WriteString(e.Reason)
	}
	return b.String()
}

// Is reports whether target is ErrStructuralViolation.
func (e *StructuralError) Is(target error) bool {
	return target == ErrStructuralViolation
}

// IsStructuralViolation reports whether err is or wraps ErrStructuralViolation.
func IsStructuralViolation(err error) bool {
	return errors.Is(err, ErrStructuralViolation)
}

// IsUnrooted reports whether err is or wraps ErrUnrootedTree.
func IsUnrooted(err error) bool {
	return errors.Is(err, ErrUnrootedTree)
}
