// Package output renders server replies for rodent-cli.
//
//   - formatter.go: Formatter interface, factory and the reply document
//   - raw.go: plain rendering in the style of redis-cli
//   - json.go, yaml.go: machine-readable rendering
package output
