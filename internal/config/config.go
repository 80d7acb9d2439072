// Package config provides reading and writing of pathcalc configuration.
// Supports both global (~/.pathcalc/config.yaml) and local (.pathcalc/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.pathcalc/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is directory-specific config in .pathcalc/config.yaml
	ScopeLocal
)

// Valid platform values. "native" defers to the build target at startup.
var validPlatforms = []string{"generic", "windows", "native"}

// Config contains configuration for pathcalc.
type Config struct {
	// Platform is the default variant applied when --platform is not given:
	// "generic", "windows" or "native". Empty means native.
	Platform string `yaml:"platform,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// Validate checks that all configured values are acceptable.
func (c *Config) Validate() error {
	if c.Platform == "" {
		return nil
	}
	for _, p := range validPlatforms {
		if c.Platform == p {
			return nil
		}
	}
	return fmt.Errorf("%w: platform must be one of %v, got %q",
		ErrInvalidValue, validPlatforms, c.Platform)
}

// Scope returns the scope this config was loaded from or will save to.
func (c *Config) Scope() Scope {
	return c.scope
}

// globalPath returns the global config file path.
func globalPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoConfigPath, err)
	}
	return filepath.Join(home, ".pathcalc", "config.yaml"), nil
}

// localPath returns the local config file path relative to the working
// directory.
func localPath() string {
	return filepath.Join(".pathcalc", "config.yaml")
}

// Load reads configuration, preferring local over global.
// A missing file is not an error; it yields an empty config bound to the
// global scope so that Save works.
func Load() (*Config, error) {
	if cfg, err := load(localPath(), ScopeLocal); err == nil {
		return cfg, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	gp, err := globalPath()
	if err != nil {
		return nil, err
	}
	cfg, err := load(gp, ScopeGlobal)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: gp, scope: ScopeGlobal}, nil
	}
	return cfg, err
}

// LoadScope reads configuration from a specific scope. A missing file
// yields an empty config bound to that scope.
func LoadScope(scope Scope) (*Config, error) {
	p := localPath()
	if scope == ScopeGlobal {
		var err error
		if p, err = globalPath(); err != nil {
			return nil, err
		}
	}
	cfg, err := load(p, scope)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: p, scope: scope}, nil
	}
	return cfg, err
}

func load(path string, scope Scope) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := &Config{path: path, scope: scope}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save validates and writes the config back to the file it was loaded from,
// creating the containing directory when needed.
func (c *Config) Save() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
