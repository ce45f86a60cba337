package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// EnvPrefix is prepended to every environment variable name
const EnvPrefix = "MEMORYMATCH_"

// Config holds the player's preferences. None of it is game state.
type Config struct {
	DeckSize      int           `yaml:"deck_size" env:"DECK_SIZE"`              // Preselected deck size, 0 for none
	Duration      int           `yaml:"duration" env:"DURATION"`                // Preselected countdown, 0 for untimed
	Symbols       []string      `yaml:"symbols" env:"SYMBOLS" envSeparator:","` // Card alphabet
	MismatchDelay time.Duration `yaml:"mismatch_delay" env:"MISMATCH_DELAY"`    // How long a mismatch stays visible
	Seed          uint64        `yaml:"seed" env:"SEED"`                        // Fixed deal seed, 0 for random
	Debug         bool          `yaml:"debug" env:"DEBUG"`                      // Show the debug panel
	LogLevel      string        `yaml:"log_level" env:"LOG_LEVEL"`              // zerolog level name
	LogFile       string        `yaml:"log_file" env:"LOG_FILE"`                // Empty disables logging
}

// Paths lists where Load looks for settings. Empty entries are skipped.
type Paths struct {
	Global  string // ~/.memorymatch/config.yaml
	Project string // .memorymatch/config.yaml in cwd
	DotEnv  string // .env in cwd
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Symbols:       []string{"A", "B", "C", "D", "E", "F", "G", "H"},
		MismatchDelay: time.Second,
		LogLevel:      "info",
	}
}

// globalConfigDir returns the global config directory path (~/.memorymatch)
func globalConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".memorymatch"), nil
}

// DefaultPaths returns the standard lookup locations
func DefaultPaths() Paths {
	p := Paths{
		Project: filepath.Join(".memorymatch", "config.yaml"),
		DotEnv:  ".env",
	}
	if dir, err := globalConfigDir(); err == nil {
		p.Global = filepath.Join(dir, "config.yaml")
	}
	return p
}

// Load reads configuration from the standard locations
func Load() (*Config, error) {
	return LoadFrom(DefaultPaths())
}

// LoadFrom builds the configuration in order of increasing precedence:
// defaults, global file, project file, environment. A .env file feeds the
// environment without overriding variables that are already set.
func LoadFrom(paths Paths) (*Config, error) {
	cfg := Default()

	for _, path := range []string{paths.Global, paths.Project} {
		if err := overlayFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if paths.DotEnv != "" {
		if err := godotenv.Load(paths.DotEnv); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to load %s: %w", paths.DotEnv, err)
		}
	}

	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// overlayFile decodes a YAML file onto cfg. Keys absent from the file
// keep their current values. A missing file is not an error.
func overlayFile(cfg *Config, path string) error {
	if path == "" {
		return nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}

// Validate checks the configuration for values the game cannot use
func (c *Config) Validate() error {
	if c.DeckSize != 0 && DeckOptionIndex(c.DeckSize) < 0 {
		return fmt.Errorf("deck_size %d is not one of the deck options", c.DeckSize)
	}
	if c.Duration != 0 && DurationOptionIndex(c.Duration) < 0 {
		return fmt.Errorf("duration %d is not one of the duration options", c.Duration)
	}

	seen := make(map[string]struct{}, len(c.Symbols))
	for _, s := range c.Symbols {
		if s == "" {
			return fmt.Errorf("symbols must not contain empty entries")
		}
		if _, dup := seen[s]; dup {
			return fmt.Errorf("symbol %q is listed twice", s)
		}
		seen[s] = struct{}{}
	}
	if need := maxDeckOption() / 2; len(c.Symbols) < need {
		return fmt.Errorf("symbols must hold at least %d entries, got %d", need, len(c.Symbols))
	}

	if c.MismatchDelay <= 0 {
		return fmt.Errorf("mismatch_delay must be positive, got %s", c.MismatchDelay)
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}
