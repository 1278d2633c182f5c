package command

import (
	"fmt"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/yndnr/rodent-go/internal/cli/config"
)

// ConfigCommand returns the config subcommand group.
func ConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "CLI configuration management",
		Subcommands: []*cli.Command{
			{
				Name:   "show",
				Usage:  "Show the effective CLI configuration",
				Action: configShow,
			},
			{
				Name:   "save",
				Usage:  "Write the effective configuration to the config file",
				Action: configSave,
			},
		},
	}
}

func configShow(c *cli.Context) error {
	cfg, err := Settings(c)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "# %s\n", c.String("config"))
	enc := yaml.NewEncoder(c.App.Writer)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return err
	}
	return enc.Close()
}

func configSave(c *cli.Context) error {
	cfg, err := Settings(c)
	if err != nil {
		return err
	}

	path := c.String("config")
	if err := config.Save(cfg, path); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	fmt.Fprintf(c.App.Writer, "saved %s\n", path)
	return nil
}
