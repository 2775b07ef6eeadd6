package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/inspector/internal/printer"
	"github.com/colonyops/inspector/internal/tui/controls"
	"github.com/colonyops/inspector/pkg/iojson"
)

type ControlsCmd struct {
	flags  *Flags
	format string
}

// NewControlsCmd creates a new controls command.
func NewControlsCmd(flags *Flags) *ControlsCmd {
	return &ControlsCmd{flags: flags}
}

// Register adds the controls command to the application.
func (cmd *ControlsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "controls",
		Usage:     "List registered control types",
		UsageText: "inspector controls [options]",
		Flags: []cli.Flag{
			formatFlag(&cmd.format),
		},
		Action: cmd.run,
	})
	return app
}

type controlUsage struct {
	Type       string   `json:"type"`
	Properties []string `json:"properties"`
}

func (cmd *ControlsCmd) run(ctx context.Context, c *cli.Command) error {
	var usage []controlUsage
	for _, t := range controls.Types() {
		u := controlUsage{Type: t, Properties: []string{}}
		for _, p := range cmd.flags.Config.Entity.Properties {
			if p.Control == t {
				u.Properties = append(u.Properties, p.Name)
			}
		}
		usage = append(usage, u)
	}

	if cmd.format == "json" {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, usage)
	}

	p := printer.Ctx(ctx)
	for _, u := range usage {
		p.Infof("%s", u.Type)
		for _, name := range u.Properties {
			p.Printf("  %s", name)
		}
	}
	return nil
}

func formatFlag(dest *string) *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "format",
		Usage:       "output format (text, json)",
		Value:       "text",
		Destination: dest,
	}
}
