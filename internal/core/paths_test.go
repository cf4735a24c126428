package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPathsUnder(t *testing.T) {
	p := PathsUnder("/home/someone")

	assert.Equal(t, Paths{
		DataDir:    filepath.Join("/home/someone", ".autocomplete"),
		LogFile:    filepath.Join("/home/someone", ".autocomplete", "autocomplete.log"),
		ConfigFile: filepath.Join("/home/someone", ".autocomplete", "config.yaml"),
	}, p)
}

func TestDefaultPathsUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	ResetPaths()
	t.Cleanup(ResetPaths)

	assert.Equal(t, filepath.Join(home, ".autocomplete", "autocomplete.log"), LogFile())
	assert.Equal(t, filepath.Join(home, ".autocomplete", "config.yaml"), ConfigFile())

	info, err := os.Stat(filepath.Join(home, ".autocomplete"))
	require.NoError(t, err)
	assert.True(t, info.IsDir(), "data dir should be created")
}

func TestResetPaths(t *testing.T) {
	first := t.TempDir()
	t.Setenv("HOME", first)
	ResetPaths()
	t.Cleanup(ResetPaths)
	require.Equal(t, filepath.Join(first, ".autocomplete", "config.yaml"), ConfigFile())

	second := t.TempDir()
	t.Setenv("HOME", second)
	assert.Equal(t, filepath.Join(first, ".autocomplete", "config.yaml"), ConfigFile(), "paths are cached")

	ResetPaths()
	assert.Equal(t, filepath.Join(second, ".autocomplete", "config.yaml"), ConfigFile())
}
