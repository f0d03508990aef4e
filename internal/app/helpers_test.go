package app

import (
	"context"
	"os"
	"testing"

	"github.com/specialistvlad/nexgraph/internal/config"
	"github.com/specialistvlad/nexgraph/internal/testutil"
	"github.com/stretchr/testify/require"
)

// stubLoader returns a fixed model, or a fixed error.
type stubLoader struct {
	model *config.Model
	err   error
	paths []string
}

func (l *stubLoader) Load(_ context.Context, paths ...string) (*config.Model, error) {
	l.paths = paths
	if l.err != nil {
		return nil, l.err
	}
	m := *l.model
	return &m, nil
}

// setupAppTest creates an App with a debug logger over documents, returning
// the app, its report output and its logs.
func setupAppTest(t *testing.T, appConfig *Config, loader config.Loader) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	out, logs := &testutil.SafeBuffer{}, &testutil.SafeBuffer{}
	appConfig.LogLevel = "debug"
	testApp, err := NewApp(out, logs, appConfig, loader)
	require.NoError(t, err)

	t.Cleanup(func() {
		if os.Getenv("NEXGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})

	return testApp, out, logs
}
