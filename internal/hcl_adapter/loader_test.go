package hcl_adapter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/nexgraph/internal/config"
	"github.com/specialistvlad/nexgraph/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_NoFiles(t *testing.T) {
	got, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "missing.hcl"))
	require.NoError(t, err)
	if diff := cmp.Diff(config.Default(), got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FullFile(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"nexgraph.hcl": `
log {
  level  = "debug"
  format = "json"
}

reader {
  resolve_references   = true
  generate_missing_ids = true
  id_prefix            = lower(env.PREFIX)
}

workers = 8
output  = "json"
`,
	})
	ctx, logs := testutil.NewContext(t)

	got, err := NewLoaderWithEnv([]string{"PREFIX=NX-", "IGNORED"}).Load(ctx, dir)
	require.NoError(t, err)

	want := &config.Model{
		Log:     config.Log{Level: "debug", Format: "json"},
		Reader:  config.Reader{ResolveReferences: true, GenerateMissingIDs: true, IDPrefix: "nx-"},
		Workers: 8,
		Output:  "json",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Load() mismatch (-want +got):\n%s", diff)
	}
	testutil.AssertLogged(t, logs.String(), "Discovered HCL files.", "count=1")
}

func TestLoad_LaterFilesOverride(t *testing.T) {
	dir := testutil.WriteFiles(t, map[string]string{
		"a.hcl": "workers = 2\nlog {\n  format = \"json\"\n}\n",
		"b.hcl": "workers = 6\n",
	})

	got, err := NewLoaderWithEnv(nil).Load(context.Background(),
		filepath.Join(dir, "a.hcl"), filepath.Join(dir, "b.hcl"))
	require.NoError(t, err)
	assert.Equal(t, 6, got.Workers)
	assert.Equal(t, "json", got.Log.Format)
	assert.Equal(t, "info", got.Log.Level)
}

func TestLoad_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		message string
	}{
		{"syntax", "log {\n", "failed to parse HCL file"},
		{"unknown attribute", "threads = 3\n", "failed to decode HCL file"},
		{"wrong type", "workers = \"many\"\n", "failed to decode HCL file"},
		{"unset env var", "reader {\n  id_prefix = env.NOPE\n}\n", "failed to decode HCL file"},
		{"invalid value", "output = \"csv\"\n", "invalid configuration"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := testutil.WriteFiles(t, map[string]string{"c.hcl": tc.content})
			_, err := NewLoaderWithEnv(nil).Load(context.Background(), dir)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}
