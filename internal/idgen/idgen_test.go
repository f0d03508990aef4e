package idgen

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUID(t *testing.T) {
	g := NewUUID("x-")
	a, b := g.NewID("node"), g.NewID("node")

	assert.NotEqual(t, a, b)
	require.True(t, strings.HasPrefix(a, "x-node-"))
	_, err := uuid.Parse(strings.TrimPrefix(a, "x-node-"))
	assert.NoError(t, err)
}

func TestSequence(t *testing.T) {
	g := NewSequence("gen.")
	assert.Equal(t, "gen.node1", g.NewID("node"))
	assert.Equal(t, "gen.node2", g.NewID("node"))
	assert.Equal(t, "gen.edge1", g.NewID("edge"))
}
