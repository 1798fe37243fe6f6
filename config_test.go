package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig(t *testing.T) {
	rc := `
# cardsmith settings
save_directory = ~/cards
confirmations = false
font = Go Mono
logfile = ~/cardsmith.log
debug = TRUE
unknown = ignored
not a pair
`
	cfg := parseConfig(strings.NewReader(rc), "/home/ada")

	assert.Equal(t, filepath.Join("/home/ada", "cards"), cfg.SaveDirectory)
	assert.False(t, cfg.Confirmations)
	assert.Equal(t, "Go Mono", cfg.Font)
	assert.Equal(t, filepath.Join("/home/ada", "cardsmith.log"), cfg.LogFile)
	assert.True(t, cfg.Debug)
}

func TestParseConfig_Defaults(t *testing.T) {
	cfg := parseConfig(strings.NewReader(""), "/home/ada")
	assert.True(t, cfg.Confirmations)
	assert.Empty(t, cfg.SaveDirectory)
	assert.Empty(t, cfg.LogFile)
	assert.False(t, cfg.Debug)
}

func TestGetSavePath(t *testing.T) {
	cfg := defaultConfig()
	path, err := cfg.GetSavePath("card.png")
	require.NoError(t, err)
	assert.Equal(t, "card.png", path)

	dir := filepath.Join(t.TempDir(), "out")
	cfg.SaveDirectory = dir
	path, err = cfg.GetSavePath("card.png")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "card.png"), path)
	assert.DirExists(t, dir)
}

func TestGetSavePath_DirectoryBlockedByFile(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "taken")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	cfg := defaultConfig()
	cfg.SaveDirectory = filepath.Join(blocker, "cards")
	_, err := cfg.GetSavePath("card.png")
	assert.Error(t, err)
}

func TestOpenLogger(t *testing.T) {
	cfg := defaultConfig()
	logger, closer, err := cfg.openLogger()
	require.NoError(t, err)
	logger.Info("dropped")
	require.NoError(t, closer.Close())

	cfg.LogFile = filepath.Join(t.TempDir(), "cardsmith.log")
	cfg.Debug = true
	logger, closer, err = cfg.openLogger()
	require.NoError(t, err)
	logger.Debug("commit", "op", "content")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "msg=commit")
	assert.Contains(t, string(data), "op=content")
}

func TestOpenLogger_BadPath(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "missing", "dir", "log")
	_, _, err := cfg.openLogger()
	assert.Error(t, err)
}
