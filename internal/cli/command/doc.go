// Package command defines the rodent-cli application using urfave/cli/v2.
//
//   - root.go: the app, global flags and the send/REPL mode switch
//   - config.go: the config subcommand for ~/.rodent/cli.yaml
//
// With positional arguments the app sends them as one command and prints
// the reply. Without arguments it starts the REPL.
package command
