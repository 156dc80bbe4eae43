package di

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"organizer/config"
	"organizer/menu"
)

func fileConfig(dir string) *config.Config {
	cfg := config.Default()
	cfg.DataDir = dir
	return cfg
}

func TestBuildCreatesCollectionsOnce(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := fileConfig(dir)

	var out bytes.Buffer
	app, err := Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &out))
	require.NoError(t, err)
	app.Close()

	for _, name := range []string{"notes.json", "tasks.json", "contacts.json", "finance.json"} {
		path := filepath.Join(dir, name)
		assert.Contains(t, out.String(), "Создан файл: "+path)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "[]", string(data))
	}

	out.Reset()
	app, err = Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &out))
	require.NoError(t, err)
	defer app.Close()
	assert.Empty(t, out.String())
}

func TestBuildUsesConfiguredFileNames(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := fileConfig(dir)
	cfg.Files["notes"] = "my-notes.json"

	var out bytes.Buffer
	app, err := Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &out))
	require.NoError(t, err)
	defer app.Close()

	_, err = app.Deps.Notes.Add(ctx, "t", "c")
	require.NoError(t, err)
	data, err := os.ReadFile(filepath.Join(dir, "my-notes.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"title": "t"`)
}

func TestBuildSQLite(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	cfg := fileConfig(dir)
	cfg.Backend = config.BackendSQLite

	var out bytes.Buffer
	app, err := Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &out))
	require.NoError(t, err)
	defer app.Close()

	assert.Equal(t, 4, strings.Count(out.String(), "Создан файл: sqlite:"))
	c, err := app.Deps.Contacts.Add(ctx, "Anna", "1", "a@example.com")
	require.NoError(t, err)
	assert.Equal(t, 1, c.ID)
	_, err = os.Stat(filepath.Join(dir, "organizer.db"))
	assert.NoError(t, err)
}

func TestBuildErrors(t *testing.T) {
	ctx := context.Background()

	cfg := fileConfig(t.TempDir())
	cfg.Backend = config.BackendPostgres
	cfg.DatabaseURL = ""
	_, err := Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &bytes.Buffer{}))
	assert.Error(t, err)

	cfg = fileConfig(t.TempDir())
	cfg.MenuPath = filepath.Join(t.TempDir(), "missing.json")
	_, err = Build(ctx, cfg, menu.NewConsole(strings.NewReader(""), &bytes.Buffer{}))
	assert.Error(t, err)
}
