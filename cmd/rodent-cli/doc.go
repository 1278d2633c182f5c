// Package main provides the entry point for rodent-cli.
//
// Usage:
//
//	rodent-cli [--host H] [--port P] [--output raw|json|yaml]
//	rodent-cli SET foo bar
//	rodent-cli config show
//
// Without a command the CLI starts an interactive session whose prompt
// is the server address.
package main
