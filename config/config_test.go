package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"ORGANIZER_CONFIG", "DATABASE_URL", "ORGANIZER_BACKEND", "ORGANIZER_DATA_DIR", "MENU_PATH", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
}

func TestLoadWithoutFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.DataDir)
	assert.Equal(t, BackendFile, cfg.Backend)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "notes.json", cfg.Files["notes"])
	assert.Equal(t, "finance.json", cfg.Files["finance"])
	assert.Equal(t, "organizer.db", cfg.SQLiteFile())
	assert.Equal(t, "organizer.log", cfg.LogPath())
}

func TestLoadFromXDG(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	require.NoError(t, os.MkdirAll(filepath.Join(home, "organizer"), 0o755))
	content := `data_dir: /srv/organizer
backend: sqlite
files:
  notes: my-notes.json
export_dir: exports
log_level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "organizer", "config.yaml"), []byte(content), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, BackendSQLite, cfg.Backend)
	assert.Equal(t, "my-notes.json", cfg.Files["notes"])
	assert.Equal(t, "tasks.json", cfg.Files["tasks"], "unset entries fall back to defaults")
	assert.Equal(t, filepath.Join("/srv/organizer", "exports"), cfg.ExportPath())
	assert.Equal(t, filepath.Join("/srv/organizer", "organizer.db"), cfg.SQLiteFile())
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("backend: sqlite\ndata_dir: a\n"), 0o644))
	t.Setenv("ORGANIZER_BACKEND", "postgres")
	t.Setenv("DATABASE_URL", "postgres://localhost/organizer")
	t.Setenv("ORGANIZER_DATA_DIR", "b")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, BackendPostgres, cfg.Backend)
	assert.Equal(t, "postgres://localhost/organizer", cfg.DatabaseURL)
	assert.Equal(t, "b", cfg.DataDir)
}

func TestConfigFromEnvPath(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(path, []byte("menu_path: custom.json\n"), 0o644))
	t.Setenv("ORGANIZER_CONFIG", path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "custom.json", cfg.MenuPath)
}

func TestLoadRejects(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("backend: [\n"), 0o644))
	_, err := Load(bad)
	assert.Error(t, err)

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, []byte("backend: redis\n"), 0o644))
	_, err = Load(unknown)
	assert.ErrorIs(t, err, ErrUnknownBackend)
}
