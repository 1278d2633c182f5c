package config

import (
	"fmt"
	"net"
	"strconv"
)

// Defaults shared with rodent-server.
const (
	DefaultHost   = "127.0.0.1"
	DefaultPort   = 6380
	DefaultOutput = "raw"
)

// CLIConfig is the configuration for rodent-cli.
type CLIConfig struct {
	Host   string `yaml:"host"`
	Port   int    `yaml:"port"`
	Output string `yaml:"output"` // raw, json, yaml

	// History is the REPL history file. Empty selects ~/.rodent/history.
	History string `yaml:"history,omitempty"`
}

// Default returns the default CLI configuration.
func Default() *CLIConfig {
	return &CLIConfig{
		Host:   DefaultHost,
		Port:   DefaultPort,
		Output: DefaultOutput,
	}
}

// Address returns host:port.
func (c *CLIConfig) Address() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Verify checks the configuration for obvious mistakes.
func (c *CLIConfig) Verify() error {
	if c.Host == "" {
		return fmt.Errorf("host must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Output {
	case "raw", "json", "yaml":
	default:
		return fmt.Errorf("unknown output format %q", c.Output)
	}
	return nil
}
