package repl

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/yndnr/rodent-go/internal/cli/connection"
	"github.com/yndnr/rodent-go/internal/cli/output"
	"github.com/yndnr/rodent-go/internal/core/command"
	"github.com/yndnr/rodent-go/pkg/resp"
)

// Session is the connection the REPL talks through.
type Session interface {
	Do(args ...string) (resp.Value, error)
	Connect(ctx context.Context, addr string) error
	Peer() string
}

// Config wires a REPL.
type Config struct {
	Input     io.Reader
	Output    io.Writer
	Session   Session
	Formatter output.Formatter
	History   *History
}

// REPL represents the Read-Eval-Print Loop.
type REPL struct {
	input     io.Reader
	output    io.Writer
	session   Session
	formatter output.Formatter
	completer *Completer
	history   *History
}

// New creates a REPL. Nil Formatter and History select raw output and
// in-memory history.
func New(cfg Config) *REPL {
	r := &REPL{
		input:     cfg.Input,
		output:    cfg.Output,
		session:   cfg.Session,
		formatter: cfg.Formatter,
		completer: NewCompleter(command.Names()),
		history:   cfg.History,
	}
	if r.formatter == nil {
		r.formatter = &output.RawFormatter{}
	}
	if r.history == nil {
		r.history = NewHistory("")
	}
	return r
}

// Prompt returns the prompt for the current connection.
func (r *REPL) Prompt() string {
	peer := r.session.Peer()
	if peer == "" {
		peer = "not connected"
	}
	return peer + "> "
}

// Run reads lines until exit, quit or end of input. Errors of single
// commands are printed and the loop continues; only input and output
// failures end it.
func (r *REPL) Run(ctx context.Context) error {
	reader := bufio.NewReader(r.input)

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if _, err := io.WriteString(r.output, r.Prompt()); err != nil {
			return err
		}

		line, err := reader.ReadString('\n')
		if errors.Is(err, io.EOF) && line == "" {
			fmt.Fprintln(r.output)
			return nil
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r.history.Add(line)

		args := strings.Fields(line)
		switch strings.ToLower(args[0]) {
		case "exit", "quit":
			return nil
		case "help":
			r.help(args[1:])
		case "connect":
			r.connect(ctx, args[1:])
		default:
			if err := r.execute(args); err != nil {
				fmt.Fprintf(r.output, "Error: %v\n", err)
			}
		}
	}
}

func (r *REPL) execute(args []string) error {
	v, err := r.session.Do(args...)
	if err != nil {
		return err
	}
	return r.formatter.Format(r.output, v)
}

func (r *REPL) connect(ctx context.Context, args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.output, "usage: connect HOST:PORT")
		return
	}
	if err := r.session.Connect(ctx, args[0]); err != nil {
		fmt.Fprintf(r.output, "Error: %v\n", err)
	}
}

// help lists commands, or only those starting with the given prefix.
func (r *REPL) help(args []string) {
	prefix := ""
	if len(args) > 0 {
		prefix = args[0]
	}

	arity := make(map[string]int)
	for _, s := range command.Specs() {
		arity[s.Name] = s.Arity
	}

	for _, name := range r.completer.Complete(prefix) {
		if n, ok := arity[name]; ok {
			fmt.Fprintf(r.output, "  %-8s %d argument(s)\n", name, n-1)
		} else {
			fmt.Fprintf(r.output, "  %-8s (built-in)\n", name)
		}
	}
}

// Close saves the history.
func (r *REPL) Close() error {
	return r.history.Save()
}

var _ Session = (*connection.Manager)(nil)
