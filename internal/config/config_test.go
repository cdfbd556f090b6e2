package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "ledger", cfg.Engine.Binary)
	require.Empty(t, cfg.Engine.Options)
	require.Empty(t, cfg.Log.Path)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	dir := filepath.Join(home, ".config", "regdel")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := "[engine]\nbinary = \"hledger\"\noptions = [\"--no-color\"]\n\n[log]\npath = \"/tmp/regdel.log\"\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "hledger", cfg.Engine.Binary)
	require.Equal(t, []string{"--no-color"}, cfg.Engine.Options)
	require.Equal(t, "/tmp/regdel.log", cfg.Log.Path)
}
