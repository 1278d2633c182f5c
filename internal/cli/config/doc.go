// Package config provides rodent-cli configuration.
//
//   - spec.go: CLIConfig struct (~/.rodent/cli.yaml)
//   - loader.go: loading, saving and flag overrides
//
// A missing file is not an error; Load returns Default().
package config
