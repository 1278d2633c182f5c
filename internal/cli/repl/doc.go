// Package repl implements the interactive mode of rodent-cli.
//
//   - repl.go: the read-eval-print loop and built-in commands
//   - completer.go: prefix matching over command names
//   - history.go: history persistence in ~/.rodent/history
package repl
