package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, "./refdata.sqlite", cfg.Store.Path)
	assert.Equal(t, 10_000_000.0, cfg.Limits.MaxLegNotional)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		errMsg string
	}{
		{
			name:   "missing store path",
			mutate: func(c *Config) { c.Store.Path = "" },
			errMsg: "store.path is required",
		},
		{
			name:   "non-positive notional",
			mutate: func(c *Config) { c.Limits.MaxLegNotional = 0 },
			errMsg: "limits.max_leg_notional must be positive",
		},
		{
			name:   "bad log level",
			mutate: func(c *Config) { c.Logging.Level = "loud" },
			errMsg: "logging.level must be one of",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tc.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.errMsg)
		})
	}
}

func TestLoadFromFileYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	data := `
store:
  path: /tmp/refdata-test.db
limits:
  max_leg_notional: 5000000
logging:
  level: debug
  development: true
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/refdata-test.db", cfg.Store.Path)
	assert.Equal(t, 5_000_000.0, cfg.Limits.MaxLegNotional)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Logging.Development)
}

func TestSaveAndReload(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	cfg := Default()
	cfg.Limits.MaxLegNotional = 123456

	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, 123456.0, got.Limits.MaxLegNotional)
}

func TestLoadRejectsGarbage(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{{{not config"), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
}
