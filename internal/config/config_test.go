package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, ".", cfg.Package)
	assert.Empty(t, cfg.Directives)
	assert.Empty(t, cfg.Out)
	assert.Equal(t, DefaultRuntimeImport, cfg.RuntimeImport)
	assert.True(t, cfg.RequireExternal)
	assert.False(t, cfg.Log.JSON)
	assert.False(t, cfg.Log.Verbose)
}

func TestLoad_ConfigFileInWorkingDir(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".pbconvert-generator.yaml"), []byte(`
package: ./model
out: ./gen
require_external: false
log:
  verbose: true
`), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.Equal(t, "./model", cfg.Package)
	assert.Equal(t, "./gen", cfg.Out)
	assert.False(t, cfg.RequireExternal)
	assert.True(t, cfg.Log.Verbose)
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PBCONVERT_LOG_JSON", "true")
	t.Setenv("PBCONVERT_DIRECTIVES", "custom.yaml")

	cfg, err := Load(New(), "")
	require.NoError(t, err)

	assert.True(t, cfg.Log.JSON)
	assert.Equal(t, "custom.yaml", cfg.Directives)
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("runtime_import: example.com/rt\n"), 0o644))

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, "example.com/rt", cfg.RuntimeImport)

	_, err = Load(New(), filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read config file")
}

func TestLoad_Invalid(t *testing.T) {
	t.Chdir(t.TempDir())

	v := New()
	v.Set(KeyPackage, " ")

	_, err := Load(v, "")
	assert.ErrorContains(t, err, "package must not be empty")
}
