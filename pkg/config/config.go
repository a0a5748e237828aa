package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/aretw0/arbor/internal/logging"
	"github.com/aretw0/arbor/pkg/activator"
	"github.com/aretw0/arbor/pkg/selection"
	"gopkg.in/yaml.v3"
)

// DefaultFile is the configuration file looked up by the CLI.
const DefaultFile = "arbor.yaml"

// Config is the engine configuration file (arbor.yaml).
type Config struct {
	Selection SelectionConfig `yaml:"selection" json:"selection"`
	Patterns  PatternConfig   `yaml:"patterns" json:"patterns"`
	Log       LogConfig       `yaml:"log" json:"log"`
}

// SelectionConfig configures the ranking strategy.
type SelectionConfig struct {
	Strategy      string  `yaml:"strategy" json:"strategy"`
	StepUpPenalty float64 `yaml:"step_up_penalty" json:"step_up_penalty"`
	TopN          int     `yaml:"top_n" json:"top_n"`
}

// PatternConfig configures how regex rules are compiled.
type PatternConfig struct {
	Dialect      string        `yaml:"dialect" json:"dialect"`
	MatchTimeout time.Duration `yaml:"match_timeout" json:"match_timeout"`
}

// LogConfig configures the application logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Selection: SelectionConfig{
			Strategy:      selection.StrategyContextPenalty,
			StepUpPenalty: selection.DefaultStepUpPenalty,
			TopN:          selection.DefaultTopN,
		},
		Patterns: PatternConfig{
			Dialect: string(activator.DialectRE2),
		},
		Log: LogConfig{
			Level:  "info",
			Format: logging.FormatText,
		},
	}
}

// Load reads a YAML file on top of the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and reports all failures at once.
func (c Config) Validate() error {
	var errs []error

	if _, err := selection.New(c.Selection.Strategy, c.Selection.StepUpPenalty); err != nil {
		errs = append(errs, err)
	}
	if c.Selection.StepUpPenalty < 0 {
		errs = append(errs, fmt.Errorf("step_up_penalty must not be negative, got %v", c.Selection.StepUpPenalty))
	}
	if _, err := activator.ParseDialect(c.Patterns.Dialect); err != nil {
		errs = append(errs, err)
	}
	if c.Patterns.MatchTimeout < 0 {
		errs = append(errs, fmt.Errorf("match_timeout must not be negative, got %v", c.Patterns.MatchTimeout))
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	if c.Log.Format != "" && c.Log.Format != logging.FormatText && c.Log.Format != logging.FormatJSON {
		errs = append(errs, fmt.Errorf("unknown log format %q", c.Log.Format))
	}

	return errors.Join(errs...)
}

// Strategy builds the configured ranking strategy.
func (c Config) Strategy() (selection.Strategy, error) {
	return selection.New(c.Selection.Strategy, c.Selection.StepUpPenalty)
}

// RegexOptions translates the pattern settings into activator options.
func (c Config) RegexOptions() ([]activator.RegexOption, error) {
	d, err := activator.ParseDialect(c.Patterns.Dialect)
	if err != nil {
		return nil, err
	}
	return []activator.RegexOption{
		activator.WithDialect(d),
		activator.WithMatchTimeout(c.Patterns.MatchTimeout),
	}, nil
}
