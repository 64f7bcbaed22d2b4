package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".config", "chatlens", "chatlens.db"), cfg.DBPath)
	assert.Equal(t, 20, cfg.TopN)
	assert.Equal(t, 3, cfg.MinWordLength)
	assert.Empty(t, cfg.ScorerURL)
}

func TestLoadFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "chatlens")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	content := `db_path = "~/data/lens.db"
scorer_url = "http://localhost:5000/score"
top_n = 50
stop_words = ["lol", "omg"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "lens.db"), cfg.DBPath)
	assert.Equal(t, "http://localhost:5000/score", cfg.ScorerURL)
	assert.Equal(t, 50, cfg.TopN)
	assert.Equal(t, []string{"lol", "omg"}, cfg.StopWords)
}

func TestExpandHome(t *testing.T) {
	assert.Equal(t, "/home/u/x", expandHome("~/x", "/home/u"))
	assert.Equal(t, "/abs/x", expandHome("/abs/x", "/home/u"))
	assert.Equal(t, "~", expandHome("~", "/home/u"))
}
