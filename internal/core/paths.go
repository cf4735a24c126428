// Package core resolves the per-user files the CLI reads and writes.
package core

import (
	"os"
	"path/filepath"
)

const dataDirName = ".autocomplete"

// Paths are the files kept under the user's data directory.
type Paths struct {
	DataDir    string
	LogFile    string
	ConfigFile string
}

// PathsUnder lays out the data directory inside home.
func PathsUnder(home string) Paths {
	dataDir := filepath.Join(home, dataDirName)
	return Paths{
		DataDir:    dataDir,
		LogFile:    filepath.Join(dataDir, "autocomplete.log"),
		ConfigFile: filepath.Join(dataDir, "config.yaml"),
	}
}

var defaultPaths *Paths

// paths resolves the default paths on first use and creates the data dir.
func paths() *Paths {
	if defaultPaths != nil {
		return defaultPaths
	}

	home, err := os.UserHomeDir()
	if err != nil {
		panic(err)
	}

	p := PathsUnder(home)
	if err := os.MkdirAll(p.DataDir, 0755); err != nil {
		panic(err)
	}
	defaultPaths = &p
	return defaultPaths
}

func LogFile() string {
	return paths().LogFile
}

func ConfigFile() string {
	return paths().ConfigFile
}

// ResetPaths clears the cached paths so the next call resolves them again.
// Tests use it after changing HOME.
func ResetPaths() {
	defaultPaths = nil
}
