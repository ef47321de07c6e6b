package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Source.Words)
	assert.Nil(t, cfg.Practice.Mode)
}

func TestLoadConfigEmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfigValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[source]
words = "https://example.com/words"
library = true
timeout-sec = 5

[practice]
mode = "meaning"
seed = 42

[log]
file = "/tmp/vocard.log"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.NotNil(t, cfg.Source.Words)
	assert.Equal(t, "https://example.com/words", *cfg.Source.Words)
	require.NotNil(t, cfg.Source.Library)
	assert.True(t, *cfg.Source.Library)
	require.NotNil(t, cfg.Source.TimeoutSec)
	assert.Equal(t, 5, *cfg.Source.TimeoutSec)
	require.NotNil(t, cfg.Practice.Mode)
	assert.Equal(t, "meaning", *cfg.Practice.Mode)
	require.NotNil(t, cfg.Practice.Seed)
	assert.Equal(t, int64(42), *cfg.Practice.Seed)
	assert.Nil(t, cfg.Practice.MockMode)
	assert.Nil(t, cfg.Log.Level)
}

func TestLoadConfigUnknownKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[practice]\nwords = 25\n"), 0o644))
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "practice.words")
}

func TestParseEnvAndOverlay(t *testing.T) {
	t.Setenv("VOCARD_WORDS", "/srv/words")
	t.Setenv("VOCARD_SEED", "7")
	t.Setenv("VOCARD_LIBRARY", "false")

	e, err := ParseEnv()
	require.NoError(t, err)
	require.NotNil(t, e.Words)
	assert.Nil(t, e.Mode)

	fileWords := "/home/me/words"
	fileMode := "meaning"
	yes := true
	merged := Overlay(FileConfig{
		Source:   SourceConfig{Words: &fileWords, Library: &yes},
		Practice: PracticeConfig{Mode: &fileMode},
	}, e)
	assert.Equal(t, "/srv/words", *merged.Source.Words)
	assert.False(t, *merged.Source.Library)
	assert.Equal(t, "meaning", *merged.Practice.Mode)
	assert.Equal(t, int64(7), *merged.Practice.Seed)
}

func TestParseEnvInvalidValue(t *testing.T) {
	t.Setenv("VOCARD_TIMEOUT_SEC", "soon")
	_, err := ParseEnv()
	assert.Error(t, err)
}

func TestDefaultPathsFollowXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	assert.Equal(t, filepath.Join("/cfg", "vocard", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/cfg", "vocard", "words"), DefaultWordsDir())
	assert.Equal(t, filepath.Join("/data", "vocard", "library.db"), DefaultLibraryPath())
}
