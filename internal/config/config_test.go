package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/session"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEV_MODE", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.DB.ConnectionString)
	assert.Equal(t, session.DefaultWeightStep, cfg.Session.WeightStep)
}

func TestLoadConfigFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEV_MODE", "")

	dir := filepath.Join(home, ".config", "ironlog")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `
[database]
connection_string = "libsql://example.turso.io?authToken=tok"

[session]
weight_step = 5.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "libsql://example.turso.io?authToken=tok", cfg.DB.ConnectionString)
	assert.Equal(t, 5.0, cfg.Session.WeightStep)
}

func TestLoadConfigRejectsNonPositiveWeightStep(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("DEV_MODE", "")

	dir := filepath.Join(home, ".config", "ironlog")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := `
[session]
weight_step = -1.0
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, session.DefaultWeightStep, cfg.Session.WeightStep)
}

func TestLoadConfigDevMode(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("DEV_MODE", "true")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "file:./local.db?cache=shared&mode=rwc", cfg.DB.ConnectionString)
}
