package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atinylittleshell/autocomplete/internal/suggest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

// Loader handles loading and validating configuration.
type Loader struct {
	logger *zap.Logger
}

// NewLoader creates a new configuration loader.
func NewLoader(logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		logger: logger,
	}
}

// LoadResult contains the result of loading configuration.
// Errors are non-fatal: the affected settings keep their defaults.
type LoadResult struct {
	Config *Config
	Errors []error
}

// fileConfig is the on-disk layout of config.yaml.
type fileConfig struct {
	Prompt         *string             `yaml:"prompt"`
	Placeholder    *string             `yaml:"placeholder"`
	Label          *string             `yaml:"label"`
	Width          *int                `yaml:"width"`
	MarginTop      *int                `yaml:"marginTop"`
	LogLevel       *string             `yaml:"logLevel"`
	Candidates     yaml.Node           `yaml:"candidates"`
	CandidatesFile string              `yaml:"candidatesFile"`
	Keys           map[string][]string `yaml:"keys"`
	ExtraKeys      map[string][]string `yaml:"extraKeys"`
}

// LoadFromFile loads configuration from a YAML file.
// If the file doesn't exist, returns default configuration with no error.
func (l *Loader) LoadFromFile(path string) (*LoadResult, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &LoadResult{Config: DefaultConfig()}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return l.load(string(content), filepath.Dir(path)), nil
}

// LoadFromString loads configuration from YAML source. A relative
// candidatesFile is resolved against the working directory.
func (l *Loader) LoadFromString(source string) (*LoadResult, error) {
	return l.load(source, ""), nil
}

func (l *Loader) load(source string, baseDir string) *LoadResult {
	result := &LoadResult{
		Config: DefaultConfig(),
	}

	var fc fileConfig
	if err := yaml.Unmarshal([]byte(source), &fc); err != nil {
		// Continue with defaults on parse errors
		result.Errors = append(result.Errors, fmt.Errorf("parse error: %w", err))
		return result
	}

	cfg := result.Config
	if fc.Prompt != nil {
		cfg.Prompt = *fc.Prompt
	}
	if fc.Placeholder != nil {
		cfg.Placeholder = *fc.Placeholder
	}
	if fc.Label != nil {
		cfg.Label = *fc.Label
	}
	if fc.Width != nil {
		if *fc.Width < 0 {
			result.Errors = append(result.Errors, fmt.Errorf("width must not be negative, got %d", *fc.Width))
		} else {
			cfg.Width = *fc.Width
		}
	}
	if fc.MarginTop != nil {
		if *fc.MarginTop < 0 {
			result.Errors = append(result.Errors, fmt.Errorf("marginTop must not be negative, got %d", *fc.MarginTop))
		} else {
			cfg.MarginTop = *fc.MarginTop
		}
	}
	if fc.LogLevel != nil {
		l.setLogLevel(result, *fc.LogLevel, "logLevel")
	}
	cfg.Keys = fc.Keys
	cfg.ExtraKeys = fc.ExtraKeys

	switch {
	case fc.Candidates.Kind != 0:
		if fc.CandidatesFile != "" {
			result.Errors = append(result.Errors, errors.New("both candidates and candidatesFile are set, using candidates"))
		}
		candidates, err := suggest.CandidatesFromNode(&fc.Candidates)
		l.setCandidates(result, candidates, err, "candidates")

	case fc.CandidatesFile != "":
		path := fc.CandidatesFile
		if !filepath.IsAbs(path) && baseDir != "" {
			path = filepath.Join(baseDir, path)
		}
		data, err := os.ReadFile(path)
		if err != nil {
			result.Errors = append(result.Errors, fmt.Errorf("candidatesFile: %w", err))
			cfg.Candidates = []string{}
			break
		}
		candidates, err := suggest.ParseCandidates(data)
		l.setCandidates(result, candidates, err, path)
	}

	return result
}

// ApplyCandidateAttribute replaces the candidate list with raw, a serialized
// array of strings. A malformed list is recorded as an error and leaves an
// empty candidate list.
func (l *Loader) ApplyCandidateAttribute(result *LoadResult, raw string) {
	candidates, err := suggest.ParseCandidates([]byte(raw))
	l.setCandidates(result, candidates, err, "list")
}

// ApplyEnvironment applies environment overrides using getenv.
func (l *Loader) ApplyEnvironment(result *LoadResult, getenv func(string) string) {
	if level := getenv(LogLevelEnv); level != "" {
		l.setLogLevel(result, level, LogLevelEnv)
	}
}

func (l *Loader) setCandidates(result *LoadResult, candidates []string, err error, source string) {
	if err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("%s: %w", source, err))
		result.Config.Candidates = []string{}
		l.logger.Warn("invalid candidate list, falling back to no suggestions",
			zap.String("source", source),
			zap.Error(err),
		)
		return
	}

	result.Config.Candidates = candidates
	l.logger.Debug("candidate list loaded",
		zap.String("source", source),
		zap.Int("count", len(candidates)),
	)
}

func (l *Loader) setLogLevel(result *LoadResult, level string, source string) {
	if _, err := zapcore.ParseLevel(level); err != nil {
		result.Errors = append(result.Errors, fmt.Errorf("%s: %w", source, err))
		return
	}
	result.Config.LogLevel = level
}
