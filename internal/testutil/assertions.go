package testutil

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertLogged checks that some line of the captured text-handler output
// contains message together with every given key=value fragment.
func AssertLogged(t *testing.T, logs, message string, fragments ...string) {
	t.Helper()

	for _, line := range strings.Split(logs, "\n") {
		if !strings.Contains(line, message) {
			continue
		}
		matched := true
		for _, f := range fragments {
			if !strings.Contains(line, f) {
				matched = false
				break
			}
		}
		if matched {
			return
		}
	}
	require.Failf(t, "log line not found", "no line contains %q with %v in:\n%s", message, fragments, logs)
}
