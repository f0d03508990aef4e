package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	m := Default()
	require.NoError(t, m.Validate())
	assert.Equal(t, "info", m.Log.Level)
	assert.Equal(t, "text", m.Log.Format)
	assert.Equal(t, "yaml", m.Output)
	assert.Equal(t, 4, m.Workers)
	assert.False(t, m.Reader.ResolveReferences)
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(m *Model)
		field  string
	}{
		{"unknown level", func(m *Model) { m.Log.Level = "trace" }, "log level"},
		{"unknown format", func(m *Model) { m.Log.Format = "xml" }, "log format"},
		{"unknown output", func(m *Model) { m.Output = "csv" }, "output"},
		{"zero workers", func(m *Model) { m.Workers = 0 }, "workers"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			m := Default()
			tc.mutate(m)
			err := m.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tc.field)
		})
	}
}
