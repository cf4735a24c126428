package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atinylittleshell/autocomplete/internal/config"
	"github.com/atinylittleshell/autocomplete/internal/core"
	"github.com/atinylittleshell/autocomplete/internal/suggest"
	"github.com/atinylittleshell/autocomplete/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func noEnv(string) string { return "" }

func useTempHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	core.ResetPaths()
	t.Cleanup(core.ResetPaths)
	return home
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestEmbeddedCandidates(t *testing.T) {
	candidates, err := suggest.ParseCandidates([]byte(defaultCandidates))
	require.NoError(t, err)
	assert.Contains(t, candidates, "Germany")
	assert.Contains(t, candidates, "Greece")
	assert.Equal(t, []string{"France"}, suggest.Filter("Fr", candidates))
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name            string
		config          string
		opts            options
		env             map[string]string
		wantCandidates  []string
		wantPlaceholder string
		wantLogLevel    string
		wantErrors      int
	}{
		{
			name:            "list flag replaces configured candidates",
			config:          "candidates: [Spain]\n",
			opts:            options{list: `["Germany", "Greece"]`},
			wantCandidates:  []string{"Germany", "Greece"},
			wantPlaceholder: "Country",
			wantLogLevel:    "info",
		},
		{
			name:            "malformed list flag leaves no suggestions",
			opts:            options{list: `["Germany", 3]`},
			wantCandidates:  []string{},
			wantPlaceholder: "Country",
			wantLogLevel:    "info",
			wantErrors:      1,
		},
		{
			name:            "placeholder flag wins over the file",
			config:          "placeholder: Pick one\ncandidates: [Spain]\n",
			opts:            options{placeholder: "Where?"},
			wantCandidates:  []string{"Spain"},
			wantPlaceholder: "Where?",
			wantLogLevel:    "info",
		},
		{
			name:            "environment sets the log level",
			config:          "candidates: [Spain]\nlogLevel: warn\n",
			env:             map[string]string{"AUTOCOMPLETE_LOG_LEVEL": "debug"},
			wantCandidates:  []string{"Spain"},
			wantPlaceholder: "Country",
			wantLogLevel:    "debug",
		},
		{
			name:            "invalid config candidates are not replaced by the built-in list",
			config:          "candidates: {a: b}\n",
			wantCandidates:  []string{},
			wantPlaceholder: "Country",
			wantLogLevel:    "info",
			wantErrors:      1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := tt.opts
			if tt.config != "" {
				opts.configPath = writeConfig(t, tt.config)
			} else {
				opts.configPath = filepath.Join(t.TempDir(), "missing.yaml")
			}
			getenv := func(key string) string { return tt.env[key] }

			result, err := loadConfig(opts, getenv, zaptest.NewLogger(t))
			require.NoError(t, err)

			assert.Equal(t, tt.wantCandidates, result.Config.Candidates)
			assert.Equal(t, tt.wantPlaceholder, result.Config.Placeholder)
			assert.Equal(t, tt.wantLogLevel, result.Config.LogLevel)
			assert.Len(t, result.Errors, tt.wantErrors)
		})
	}
}

func TestLoadConfigFallsBackToCountries(t *testing.T) {
	opts := options{configPath: filepath.Join(t.TempDir(), "missing.yaml")}

	result, err := loadConfig(opts, noEnv, nil)
	require.NoError(t, err)
	assert.Empty(t, result.Errors)
	assert.Contains(t, result.Config.Candidates, "France")
}

func TestLoadConfigUnreadableFile(t *testing.T) {
	// A directory can't be read as a file
	opts := options{configPath: t.TempDir()}

	_, err := loadConfig(opts, noEnv, nil)
	assert.Error(t, err)
}

func TestReportConfigErrors(t *testing.T) {
	useTempHome(t)

	var buf bytes.Buffer
	reportConfigErrors(&buf, nil, zaptest.NewLogger(t))
	assert.Empty(t, buf.String())

	reportConfigErrors(&buf, []error{
		errors.New("width must not be negative, got -1"),
		errors.New("list: invalid candidate list"),
	}, zaptest.NewLogger(t))

	out := ansi.Strip(buf.String())
	assert.Contains(t, out, "2 problem(s) in configuration:")
	assert.Contains(t, out, "  width must not be negative, got -1")
	assert.Contains(t, out, "  list: invalid candidate list")
	assert.Contains(t, out, core.LogFile())
}

func TestInitializeLogger(t *testing.T) {
	home := useTempHome(t)

	result, err := loadConfig(options{configPath: core.ConfigFile()}, noEnv, nil)
	require.NoError(t, err)

	logger, err := initializeLogger(result.Config)
	require.NoError(t, err)
	logger.Info("hello")
	_ = logger.Sync()

	data, err := os.ReadFile(filepath.Join(home, ".autocomplete", "autocomplete.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestBuildKeyMapFromConfig(t *testing.T) {
	opts := options{configPath: writeConfig(t, `
candidates: [Spain]
keys:
  select: [ctrl+y]
  teleport: [t]
extraKeys:
  next: [ctrl+j]
`)}

	result, err := loadConfig(opts, noEnv, nil)
	require.NoError(t, err)

	keymap, errs := buildKeyMap(result.Config)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Error(), "teleport")

	assert.Equal(t, widget.ActionSelect, keymap.Lookup(tea.KeyMsg{Type: tea.KeyCtrlY}))
	assert.Equal(t, widget.ActionNone, keymap.Lookup(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Equal(t, widget.ActionNext, keymap.Lookup(tea.KeyMsg{Type: tea.KeyCtrlJ}))
	assert.Equal(t, widget.ActionNext, keymap.Lookup(tea.KeyMsg{Type: tea.KeyDown}))
}

func TestPrintKeyBindings(t *testing.T) {
	keymap, errs := buildKeyMap(&config.Config{
		Keys: map[string][]string{"paste": {}},
	})
	require.Empty(t, errs)

	var buf bytes.Buffer
	printKeyBindings(&buf, keymap)

	out := buf.String()
	assert.Contains(t, out, "next       down, ctrl+n, tab\n")
	assert.Contains(t, out, "select     enter\n")
	assert.NotContains(t, out, "paste", "unbound actions are not listed")
}

func TestLoadConfigMarginTop(t *testing.T) {
	opts := options{configPath: writeConfig(t, "marginTop: 4\n")}

	result, err := loadConfig(opts, noEnv, nil)
	require.NoError(t, err)
	assert.Equal(t, 4, result.Config.MarginTop)
}
