package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("ROUTINES_CONFIG", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", "routines", "routines.sqlite"), cfg.Database.Path)
	assert.Equal(t, filepath.Join(home, ".local", "state", "routines", "routines.log"), cfg.Log.Path)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoadFromFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, `
[database]
path = "/tmp/custom.sqlite"

[log]
level = "debug"
`)

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/custom.sqlite", cfg.Database.Path)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, slog.LevelDebug, cfg.Log.SlogLevel())
}

func TestLoadEnvOverridesFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ROUTINES_DATABASE_PATH", "/env/routines.sqlite")
	path := writeConfig(t, `
[database]
path = "/tmp/custom.sqlite"
`)

	cfg, err := load(path)
	require.NoError(t, err)
	assert.Equal(t, "/env/routines.sqlite", cfg.Database.Path)
}

func TestLoadMalformedFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	path := writeConfig(t, "[database\npath = ")

	_, err := load(path)
	assert.Error(t, err)
}

func TestSlogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"INFO":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"warning": slog.LevelWarn,
		" error ": slog.LevelError,
		"":        slog.LevelInfo,
		"verbose": slog.LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, LogConfig{Level: in}.SlogLevel(), "level %q", in)
	}
}
