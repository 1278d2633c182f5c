package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Dir returns the per-user rodent directory (~/.rodent).
func Dir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".rodent"
	}
	return filepath.Join(homeDir, ".rodent")
}

// DefaultConfigPath returns the default CLI config file path.
func DefaultConfigPath() string {
	return filepath.Join(Dir(), "cli.yaml")
}

// DefaultHistoryPath returns the default REPL history file path.
func DefaultHistoryPath() string {
	return filepath.Join(Dir(), "history")
}

// Load reads the CLI configuration from path, filling unset fields from
// Default(). An empty path selects DefaultConfigPath().
func Load(path string) (*CLIConfig, error) {
	if path == "" {
		path = DefaultConfigPath()
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg to path with 0600 permissions, creating the directory.
func Save(cfg *CLIConfig, path string) error {
	if path == "" {
		path = DefaultConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}

// Overrides holds values given on the command line. Zero fields are left
// untouched by Merge.
type Overrides struct {
	Host   string
	Port   int
	Output string
}

// Merge applies flag overrides to cfg and returns it.
func Merge(cfg *CLIConfig, o Overrides) *CLIConfig {
	if o.Host != "" {
		cfg.Host = o.Host
	}
	if o.Port != 0 {
		cfg.Port = o.Port
	}
	if o.Output != "" {
		cfg.Output = o.Output
	}
	return cfg
}

// HistoryPath returns the configured history file or the default one.
func (c *CLIConfig) HistoryPath() string {
	if c.History != "" {
		return c.History
	}
	return DefaultHistoryPath()
}
