package command

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/rodent-go/internal/cli/config"
	"github.com/yndnr/rodent-go/internal/cli/connection"
	"github.com/yndnr/rodent-go/internal/cli/output"
	"github.com/yndnr/rodent-go/internal/cli/repl"
	"github.com/yndnr/rodent-go/internal/infra/buildinfo"
)

const dialTimeout = 5 * time.Second

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:      "rodent-cli",
		Usage:     "command-line client for rodent-server",
		UsageText: "rodent-cli [global options] [COMMAND [ARGS...]]",
		Version:   buildinfo.String(),
		Flags:     globalFlags(),
		Commands: []*cli.Command{
			ConfigCommand(),
		},
		Action: rootAction,
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Usage:   "server host",
			EnvVars: []string{"RODENT_HOST"},
			Value:   config.DefaultHost,
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "server port",
			EnvVars: []string{"RODENT_PORT"},
			Value:   config.DefaultPort,
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format: raw, json, yaml",
			Value:   config.DefaultOutput,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "CLI config file",
			Value:   config.DefaultConfigPath(),
		},
	}
}

// Settings resolves the effective configuration: defaults, then the config
// file, then flags that were set explicitly.
func Settings(c *cli.Context) (*config.CLIConfig, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	var o config.Overrides
	if c.IsSet("host") {
		o.Host = c.String("host")
	}
	if c.IsSet("port") {
		o.Port = c.Int("port")
	}
	if c.IsSet("output") {
		o.Output = c.String("output")
	}
	config.Merge(cfg, o)

	if err := cfg.Verify(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func rootAction(c *cli.Context) error {
	cfg, err := Settings(c)
	if err != nil {
		return err
	}

	formatter, err := output.NewFormatter(output.Format(cfg.Output))
	if err != nil {
		return err
	}

	ctx := c.Context
	if ctx == nil {
		ctx = context.Background()
	}

	mgr := connection.NewManager(connection.Options{DialTimeout: dialTimeout})
	if err := mgr.Connect(ctx, cfg.Address()); err != nil {
		return err
	}
	defer mgr.Disconnect()

	if c.NArg() > 0 {
		return sendOnce(c, mgr, formatter)
	}
	return interactive(ctx, c, mgr, formatter, cfg.HistoryPath())
}

func sendOnce(c *cli.Context, mgr *connection.Manager, formatter output.Formatter) error {
	v, err := mgr.Do(c.Args().Slice()...)
	if err != nil {
		return err
	}
	return formatter.Format(c.App.Writer, v)
}

func interactive(ctx context.Context, c *cli.Context, mgr *connection.Manager, formatter output.Formatter, historyPath string) error {
	history := repl.NewHistory(historyPath)
	if err := history.Load(); err != nil {
		PrintError("load history: %v", err)
	}

	input := c.App.Reader
	if input == nil {
		input = os.Stdin
	}

	r := repl.New(repl.Config{
		Input:     input,
		Output:    c.App.Writer,
		Session:   mgr,
		Formatter: formatter,
		History:   history,
	})
	runErr := r.Run(ctx)
	if err := r.Close(); err != nil {
		PrintError("save history: %v", err)
	}
	return runErr
}

// PrintError prints an error message to stderr.
func PrintError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
}
