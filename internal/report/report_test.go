package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/nexgraph/internal/nexml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sample() *Report {
	return &Report{Documents: []Entry{
		{
			Path: "a.xml",
			Document: &nexml.Summary{
				Version: "0.9",
				Otus:    []nexml.OtusSummary{{ID: "taxa1", Otus: []string{"t1", "t2"}}},
				Trees: []nexml.TreesSummary{{
					ID:   "trees1",
					Otus: "taxa1",
					Phylogenies: []nexml.PhylogenySummary{{
						ID: "tree1", Kind: "tree", Nodes: 3, Edges: 2, Roots: []string{"n1"},
					}},
				}},
			},
		},
		{Path: "b.xml", Error: "failed to read b.xml: unexpected end of document"},
	}}
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "yaml", sample()))

	out := buf.String()
	assert.Contains(t, out, "documents:")
	assert.Contains(t, out, "path: a.xml")
	assert.Contains(t, out, "failed to read b.xml")

	var decoded Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	if diff := cmp.Diff(sample(), &decoded); diff != "" {
		t.Errorf("decoded report mismatch (-want +got):\n%s", diff)
	}
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "json", sample()))

	var decoded map[string][]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	docs := decoded["documents"]
	require.Len(t, docs, 2)
	assert.Equal(t, "a.xml", docs[0]["path"])
	assert.NotContains(t, docs[0], "error")
	assert.NotContains(t, docs[1], "document")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, "toml", sample())
	require.ErrorIs(t, err, ErrUnknownFormat)
}

func TestFailed(t *testing.T) {
	assert.Equal(t, 1, sample().Failed())
	assert.Equal(t, 0, (&Report{}).Failed())
}
