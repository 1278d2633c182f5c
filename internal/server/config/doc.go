// Package config defines the rodent-server configuration structure.
//
// Values come from, in increasing priority: Default, a YAML file,
// RODENT_* environment variables and command-line flags. Loading is done
// by infra/confloader; this package only owns the shape, the defaults and
// Verify.
package config
