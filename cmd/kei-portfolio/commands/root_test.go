package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kei-portfolio/internal/config"
	"kei-portfolio/internal/logger"
)

func execute(t *testing.T, args ...string) (config.Config, error) {
	t.Helper()

	var got config.Config
	cmd := NewRootCommand(func(cfg config.Config, _ logger.Logger) error {
		got = cfg
		return nil
	})
	cmd.SetArgs(args)
	cmd.SetOut(os.Stderr)
	err := cmd.Execute()
	return got, err
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "warn"

[splash]
greeting = "Welcome"
`), 0o600))

	cfg, err := execute(t, "--config", path, "--log-level", "debug", "--json-logs")
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "Welcome", cfg.Splash.Greeting)
}

func TestConfigFileUsedWhenFlagsUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[log]\nlevel = \"warn\"\n"), 0o600))

	cfg, err := execute(t, "--config", path)
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestInvalidLogLevelFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	_, err := execute(t, "--config", path, "--log-level", "loud")
	assert.ErrorContains(t, err, "log.level")
}

func TestMissingExplicitConfigFails(t *testing.T) {
	_, err := execute(t, "--config", filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorContains(t, err, "read config")
}
