package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// clearEnv blanks every override so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"FLAVORSCAPE_BACKEND", "FLAVORSCAPE_CURRENCY", "FLAVORSCAPE_LOG_LEVEL", "FLAVORSCAPE_LOG_FILE"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)
}

func TestLoadReadsFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), `backend: SQLite
currency: "$"
log:
  level: debug
  file: /tmp/fs.log
`)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, types.Config{
		Backend:  types.BackendSQLite,
		Currency: "$",
		Log:      types.LogConfig{Level: "debug", File: "/tmp/fs.log"},
	}, cfg)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "config.yaml"), "backend: sqlite\ncurrency: R\n")

	t.Setenv("FLAVORSCAPE_BACKEND", "memory")
	t.Setenv("FLAVORSCAPE_LOG_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, types.BackendMemory, cfg.Backend)
	assert.Equal(t, "R", cfg.Currency)
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	clearEnv(t)

	t.Run("unknown backend", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "backend: postgres\n")
		_, err := Load(dir)
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		dir := t.TempDir()
		writeFile(t, filepath.Join(dir, "config.yaml"), "backend: [unclosed\n")
		_, err := Load(dir)
		assert.Error(t, err)
	})
}

func TestWriteDefault(t *testing.T) {
	clearEnv(t)
	dir := filepath.Join(t.TempDir(), "nested", "cfg")

	path, created, err := WriteDefault(dir, types.DefaultConfig())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, filepath.Join(dir, "config.yaml"), path)

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, types.DefaultConfig(), cfg)

	// Existing file is left untouched.
	writeFile(t, path, "backend: sqlite\n")
	_, created, err = WriteDefault(dir, types.DefaultConfig())
	require.NoError(t, err)
	assert.False(t, created)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "backend: sqlite\n", string(data))
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	envFile := filepath.Join(dir, "test.env")
	writeFile(t, envFile, "FLAVORSCAPE_CURRENCY=EUR\n")

	require.NoError(t, LoadDotEnv(filepath.Join(dir, "missing.env"), envFile))
	t.Cleanup(func() { os.Unsetenv("FLAVORSCAPE_CURRENCY") })

	cfg, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Currency)
}
