// Package idgen supplies identifiers for markup elements that lack one.
package idgen

import (
	"strconv"

	"github.com/google/uuid"
)

// Generator returns a fresh identifier for an element of the given kind
// ("otu", "node", ...).
type Generator interface {
	NewID(kind string) string
}

// UUID generates identifiers of the form <prefix><kind>-<uuid>.
type UUID struct {
	Prefix string
}

// NewUUID creates a random-identifier generator.
func NewUUID(prefix string) *UUID {
	return &UUID{Prefix: prefix}
}

// NewID implements Generator.
func (g *UUID) NewID(kind string) string {
	return g.Prefix + kind + "-" + uuid.NewString()
}

// Sequence generates <prefix><kind><n>, counting separately per kind. It is
// deterministic and not safe for concurrent use.
type Sequence struct {
	Prefix string
	next   map[string]int
}

// NewSequence creates a counting generator.
func NewSequence(prefix string) *Sequence {
	return &Sequence{Prefix: prefix, next: make(map[string]int)}
}

// NewID implements Generator.
func (g *Sequence) NewID(kind string) string {
	g.next[kind]++
	return g.Prefix + kind + strconv.Itoa(g.next[kind])
}
