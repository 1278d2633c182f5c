package repl

import (
	"sort"
	"strings"
)

// Builtins are handled by the REPL itself and never sent to the server.
var Builtins = []string{"connect", "exit", "help", "quit"}

// Completer provides command completion for the REPL.
type Completer struct {
	commands []string
}

// NewCompleter creates a Completer over the server command names and
// the REPL built-ins.
func NewCompleter(serverCommands []string) *Completer {
	cmds := make([]string, 0, len(serverCommands)+len(Builtins))
	cmds = append(cmds, serverCommands...)
	cmds = append(cmds, Builtins...)
	sort.Strings(cmds)
	return &Completer{commands: cmds}
}

// Complete returns the commands starting with prefix, ignoring case.
func (c *Completer) Complete(prefix string) []string {
	prefix = strings.ToLower(prefix)
	var suggestions []string
	for _, cmd := range c.commands {
		if strings.HasPrefix(cmd, prefix) {
			suggestions = append(suggestions, cmd)
		}
	}
	return suggestions
}
