package main

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/nexgraph/internal/app"
	"github.com/specialistvlad/nexgraph/internal/cli"
	"github.com/specialistvlad/nexgraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

func TestRun_ReadsDocuments(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"docs/tree.xml": testutil.TreeDocument,
		"nexgraph.hcl": `
log {
  level = "debug"
}
output = "json"
`,
	})
	out, logs := &bytes.Buffer{}, &testutil.SafeBuffer{}

	err := run(context.Background(), out, logs, []string{
		"-config", filepath.Join(dir, "nexgraph.hcl"),
		filepath.Join(dir, "docs"),
	})

	require.NoError(t, err)
	require.Contains(t, out.String(), `"id": "tree1"`)
	testutil.AssertLogged(t, logs.String(), "Configuration loaded.", "output=json")
}

func TestRun_ConfigError(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{
		"bad.hcl": "log {\n  level = \n",
		"doc.xml": testutil.TaxaDocument,
	})

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-config", filepath.Join(dir, "bad.hcl"),
		filepath.Join(dir, "doc.xml"),
	})

	var exitErr *cli.ExitError
	require.ErrorAs(t, err, &exitErr)
	require.Equal(t, 2, exitErr.Code)
	require.Contains(t, exitErr.Message, "failed to parse HCL file")
}

func TestRun_DocumentFailure(t *testing.T) {
	t.Parallel()

	dir := testutil.WriteFiles(t, map[string]string{"broken.xml": testutil.BrokenDocument})

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{
		"-config", filepath.Join(dir, "none.hcl"),
		dir,
	})

	require.ErrorIs(t, err, app.ErrDocumentsFailed)
}

func TestRun_ShouldExit(t *testing.T) {
	t.Parallel()

	// The "-h" (help) flag should cause cli.Parse to return `shouldExit=true`.
	out := &bytes.Buffer{}
	err := run(context.Background(), out, &bytes.Buffer{}, []string{"-h"})

	require.NoError(t, err, "run() should return a nil error when shouldExit is true")
	require.Contains(t, out.String(), "Usage:", "Expected help text to be printed to the output buffer")
}

func TestRun_ParseError(t *testing.T) {
	t.Parallel()

	err := run(context.Background(), &bytes.Buffer{}, &bytes.Buffer{}, []string{"--this-is-not-a-valid-flag"})

	require.Error(t, err, "run() should return an error when argument parsing fails")
	require.Contains(t, err.Error(), "flag provided but not defined: -this-is-not-a-valid-flag")
}
