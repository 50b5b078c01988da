package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config is the root configuration schema for the uerr CLI.
//
// All fields are optional; a missing config file yields Default() so the CLI
// works with zero setup.
type Config struct {
	Version int         `yaml:"version"`
	Prefix  string      `yaml:"prefix"`
	Code    int         `yaml:"code"`
	Check   CheckConfig `yaml:"check"`
	Help    []string    `yaml:"help"`
}

// CheckConfig controls 'uerr check'.
type CheckConfig struct {
	Root        string   `yaml:"root"`
	NoGitignore bool     `yaml:"no_gitignore"`
	Require     []string `yaml:"require"`
	Ignore      []string `yaml:"ignore"`
}

// Default returns a conservative default config.
func Default() Config {
	return Config{
		Version: 1,
		Prefix:  "",
		Code:    1,
		Check: CheckConfig{
			Root: ".",
		},
	}
}

// Load reads and validates a config file. A missing file is not an error:
// it yields Default().
func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	if cfg.Version != 1 {
		return Config{}, fmt.Errorf("unsupported config version %d", cfg.Version)
	}
	cfg = mergeDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeDefaults(cfg Config) Config {
	def := Default()

	if cfg.Check.Root == "" {
		cfg.Check.Root = def.Check.Root
	}
	if cfg.Code == 0 {
		cfg.Code = def.Code
	}
	return cfg
}

// Validate enforces basic schema constraints.
func Validate(cfg Config) error {
	if cfg.Version != 1 {
		return fmt.Errorf("version must be 1")
	}

	// Multi-line values would corrupt the single-line block format.
	if strings.ContainsAny(cfg.Prefix, "\r\n") {
		return fmt.Errorf("prefix must not contain newlines")
	}
	for _, h := range cfg.Help {
		if strings.ContainsAny(h, "\r\n") {
			return fmt.Errorf("help entries must not contain newlines")
		}
	}

	for _, pat := range cfg.Check.Require {
		if strings.TrimSpace(pat) == "" {
			return fmt.Errorf("check.require patterns cannot be empty")
		}
	}
	for _, pat := range cfg.Check.Ignore {
		if strings.TrimSpace(pat) == "" {
			return fmt.Errorf("check.ignore patterns cannot be empty")
		}
	}
	return nil
}

// EffectiveRoot resolves the effective check root directory.
func EffectiveRoot(cfg Config, override string) (string, error) {
	r := cfg.Check.Root
	if override != "" {
		r = override
	}
	if r == "" {
		r = "."
	}
	abs, err := filepath.Abs(r)
	if err != nil {
		return "", fmt.Errorf("abs root: %w", err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return "", fmt.Errorf("stat root: %w", err)
	}
	if !st.IsDir() {
		return "", fmt.Errorf("root is not a directory: %s", abs)
	}
	return abs, nil
}
