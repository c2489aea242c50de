package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/flavorscape/internal/paths"
	"github.com/mesh-intelligence/flavorscape/internal/shell"
	"github.com/mesh-intelligence/flavorscape/pkg/menu"
	"github.com/mesh-intelligence/flavorscape/pkg/types"
)

// run executes the root command with args and stdin, returning stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"BACKEND", "CURRENCY", "LOG_LEVEL", "LOG_FILE", "CONFIG_DIR"} {
		t.Setenv("FLAVORSCAPE_"+k, "")
	}

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(append([]string{"--env-file", ""}, args...))
	err := root.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "flavorscape v"+menu.Version+"\nmodule: "+modulePath+"\n", out)

	out, err = run(t, "", "--json", "version")
	require.NoError(t, err)
	var v map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, menu.Version, v["version"])
}

func TestInitWritesConfigOnce(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "cfg")

	out, err := run(t, "", "--config-dir", dir, "--backend", "sqlite", "init")
	require.NoError(t, err)
	path := paths.ConfigFile(dir)
	assert.Equal(t, "Wrote "+path+"\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "backend: sqlite")
	assert.Contains(t, string(data), "currency: R")

	out, err = run(t, "", "--config-dir", dir, "init")
	require.NoError(t, err)
	assert.Equal(t, "Config already exists at "+path+"\n", out)
}

func TestShellSession(t *testing.T) {
	for _, backend := range []string{types.BackendMemory, types.BackendSQLite} {
		t.Run(backend, func(t *testing.T) {
			script := "add Soup Hot Starters R50\nstats\nquit\n"
			out, err := run(t, script, "--config-dir", t.TempDir(), "--backend", backend, "--log-file", filepath.Join(t.TempDir(), "log.json"), "shell")
			require.NoError(t, err)

			assert.Contains(t, out, "Added ")
			assert.Contains(t, out, "Total Menu Items: 1")
			assert.Contains(t, out, "Starters Avg Price: R50.00")
			assert.Contains(t, out, "Mains Avg Price: N/A")
			assert.Contains(t, out, "Dessert Avg Price: N/A")
		})
	}
}

func TestShellUsesConfiguredCurrency(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("currency: $\n"), 0o644))

	out, err := run(t, "add Steak Rare mains $120\nstats\n", "--config-dir", dir, "--log-file", filepath.Join(t.TempDir(), "log.json"), "shell")
	require.NoError(t, err)
	assert.Contains(t, out, "Mains Avg Price: $120.00")
}

func TestShellJSON(t *testing.T) {
	out, err := run(t, "add Soup Hot Starters 50\nstats\n", "--config-dir", t.TempDir(), "--json", "--log-file", filepath.Join(t.TempDir(), "log.json"), "shell")
	require.NoError(t, err)

	dec := json.NewDecoder(strings.NewReader(out))
	var item types.MenuItem
	require.NoError(t, dec.Decode(&item))
	assert.Equal(t, "Soup", item.Name)

	var totals menu.Totals
	require.NoError(t, dec.Decode(&totals))
	assert.Equal(t, 1, totals.TotalItems)
}

func TestUnknownBackendIsUserError(t *testing.T) {
	_, err := run(t, "", "--config-dir", t.TempDir(), "--backend", "redis", "shell")
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrBackendUnknown)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestBackendFlagIsNormalized(t *testing.T) {
	tests := []struct {
		name    string
		backend string
	}{
		{name: "mixed case", backend: "SQLite"},
		{name: "surrounding space", backend: " memory "},
		{name: "upper case", backend: "MEMORY"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := run(t, "stats\n", "--config-dir", t.TempDir(), "--backend", tt.backend, "--log-file", filepath.Join(t.TempDir(), "log.json"), "shell")
			require.NoError(t, err)
			assert.Contains(t, out, "Total Menu Items: 0")
		})
	}
}

func TestShellLineTooLongIsUserError(t *testing.T) {
	line := "add " + strings.Repeat("a", 2<<20) + " Hot starters 50\n"
	_, err := run(t, line, "--config-dir", t.TempDir(), "--log-file", filepath.Join(t.TempDir(), "log.json"), "shell")
	require.Error(t, err)
	assert.ErrorIs(t, err, shell.ErrLineTooLong)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestBadConfigFileIsUserError(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(paths.ConfigFile(dir), []byte("backend: [unclosed\n"), 0o644))

	_, err := run(t, "", "--config-dir", dir, "shell")
	require.Error(t, err)
	assert.Equal(t, exitUserError, exitCode(err))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitSuccess, exitCode(nil))
	assert.Equal(t, exitUserError, exitCode(errors.New("plain")))
	assert.Equal(t, exitSysError, exitCode(sysError(errors.New("disk"))))
	assert.Equal(t, exitUserError, exitCode(userError(errors.New("typo"))))
}
