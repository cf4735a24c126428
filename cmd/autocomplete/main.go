package main

import (
	_ "embed"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atinylittleshell/autocomplete/internal/config"
	"github.com/atinylittleshell/autocomplete/internal/core"
	"github.com/atinylittleshell/autocomplete/internal/form"
	"github.com/atinylittleshell/autocomplete/internal/styles"
	"github.com/atinylittleshell/autocomplete/internal/suggest"
	"github.com/atinylittleshell/autocomplete/internal/widget"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

var BUILD_VERSION = "dev"

//go:embed countries.json
var defaultCandidates string

var configPath = flag.String("config", "", "path to a YAML config file (default ~/.autocomplete/config.yaml)")
var listFlag = flag.String("list", "", "candidate list as a JSON array of strings")
var placeholderFlag = flag.String("placeholder", "", "placeholder shown while the input is empty")
var keysFlag = flag.Bool("keys", false, "print the effective key bindings and exit")

var helpFlag = flag.Bool("h", false, "display help information")
var versionFlag = flag.Bool("ver", false, "display build version")

const helpText = `autocomplete - A text input with prefix suggestions

USAGE:
  autocomplete [options]

  Type to see candidates that start with what you typed. Use Up/Down or
  Tab/Shift+Tab to move through suggestions, Enter to select one, Esc to
  close the list, and Enter again to submit. The submitted value is
  printed to stdout.

  Without -list or a configured list, a built-in list of countries is used.

OPTIONS:
`

// exitInterrupted is the conventional status for a process stopped by Ctrl+C.
const exitInterrupted = 130

var (
	errNotTerminal = errors.New("stdin is not a terminal")
	errInterrupted = errors.New("interrupted")
)

type options struct {
	configPath  string
	list        string
	placeholder string
}

func main() {
	flag.Parse()

	if *versionFlag {
		fmt.Println(BUILD_VERSION)
		return
	}

	if *helpFlag {
		fmt.Print(helpText)
		flag.PrintDefaults()
		return
	}

	opts := options{
		configPath:  *configPath,
		list:        *listFlag,
		placeholder: *placeholderFlag,
	}
	if opts.configPath == "" {
		opts.configPath = core.ConfigFile()
	}

	result, err := loadConfig(opts, os.Getenv, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, styles.New(os.Stderr).Error(err.Error()))
		os.Exit(1)
	}

	logger, err := initializeLogger(result.Config)
	if err != nil {
		panic(err)
	}
	defer logger.Sync() // Flush any buffered log entries

	logger.Info("-------- new autocomplete session --------", zap.Any("args", os.Args))

	keymap, keyErrs := buildKeyMap(result.Config)
	reportConfigErrors(os.Stderr, append(result.Errors, keyErrs...), logger)

	if *keysFlag {
		printKeyBindings(os.Stdout, keymap)
		return
	}

	value, err := run(result.Config, keymap, logger)
	if errors.Is(err, errInterrupted) {
		logger.Info("interrupted")
		logger.Sync()
		os.Exit(exitInterrupted)
	}
	if err != nil {
		logger.Error("unhandled error", zap.Error(err))
		fmt.Fprintln(os.Stderr, styles.New(os.Stderr).Error(err.Error()))
		logger.Sync()
		os.Exit(1)
	}

	fmt.Println(value)
}

// loadConfig merges the config file, command line overrides and the
// environment. The built-in country list is used when nothing supplies
// candidates.
func loadConfig(opts options, getenv func(string) string, logger *zap.Logger) (*config.LoadResult, error) {
	loader := config.NewLoader(logger)

	result, err := loader.LoadFromFile(opts.configPath)
	if err != nil {
		return nil, err
	}

	if opts.list != "" {
		loader.ApplyCandidateAttribute(result, opts.list)
	}
	if opts.placeholder != "" {
		result.Config.Placeholder = opts.placeholder
	}
	loader.ApplyEnvironment(result, getenv)

	if result.Config.Candidates == nil {
		candidates, err := suggest.ParseCandidates([]byte(defaultCandidates))
		if err != nil {
			return nil, fmt.Errorf("built-in candidate list: %w", err)
		}
		result.Config.Candidates = candidates
	}

	return result, nil
}

// buildKeyMap applies the configured key overrides to the default bindings.
func buildKeyMap(cfg *config.Config) (*widget.KeyMap, []error) {
	keymap := widget.DefaultKeyMap()
	errs := keymap.Apply(cfg.Keys, cfg.ExtraKeys)
	return keymap, errs
}

func printKeyBindings(w io.Writer, keymap *widget.KeyMap) {
	for _, b := range keymap.Bindings() {
		if len(b.Keys) == 0 {
			continue
		}
		fmt.Fprintf(w, "%-10s %s\n", strings.ToLower(b.Action.String()), strings.Join(b.Keys, ", "))
	}
}

func initializeLogger(cfg *config.Config) (*zap.Logger, error) {
	logLevel := cfg.ZapLevel()
	if BUILD_VERSION == "dev" {
		logLevel = zap.NewAtomicLevelAt(zap.DebugLevel)
	}

	loggerConfig := zap.NewProductionConfig()
	loggerConfig.Level = logLevel
	// Logs go to a file so they don't interfere with the Bubble Tea UI.
	// Use `tail -f ~/.autocomplete/autocomplete.log` to follow them.
	loggerConfig.OutputPaths = []string{
		core.LogFile(),
	}

	return loggerConfig.Build()
}

// reportConfigErrors prints problems found while loading configuration.
// None of them are fatal.
func reportConfigErrors(w io.Writer, errs []error, logger *zap.Logger) {
	if len(errs) == 0 {
		return
	}

	palette := styles.New(w)
	fmt.Fprintln(w, palette.Warning(fmt.Sprintf("%d problem(s) in configuration:", len(errs))))
	for _, err := range errs {
		logger.Warn("configuration problem", zap.Error(err))
		fmt.Fprintln(w, palette.Error("  "+err.Error()))
	}
	fmt.Fprintln(w, palette.Hint("  see "+core.LogFile()+" for details"))
}

func run(cfg *config.Config, keymap *widget.KeyMap, logger *zap.Logger) (string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return "", errNotTerminal
	}

	m := form.New(form.Config{
		Label: cfg.Label,
		Widget: widget.Config{
			Prompt:      cfg.Prompt,
			Placeholder: cfg.Placeholder,
			Candidates:  cfg.Candidates,
			KeyMap:      keymap,
		},
		MaxWidth:  cfg.Width,
		MarginTop: cfg.MarginTop,
		Logger:    logger,
	})
	defer m.Close()

	// The alternate screen pins the form to the top row, so mouse rows can be
	// hit-tested against the layout.
	p := tea.NewProgram(m,
		tea.WithOutput(os.Stderr),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
	)
	final, err := p.Run()
	if err != nil {
		return "", err
	}

	result := final.(form.Model).Result()
	if result.Type != form.ResultSubmit {
		return "", errInterrupted
	}
	return result.Value, nil
}
