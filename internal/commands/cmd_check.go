package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/inspector/internal/printer"
	"github.com/colonyops/inspector/internal/tui/controls"
	"github.com/colonyops/inspector/pkg/iojson"
)

type CheckCmd struct {
	flags    *Flags
	property string
	value    string
	format   string
}

// NewCheckCmd creates a new check command.
func NewCheckCmd(flags *Flags) *CheckCmd {
	return &CheckCmd{flags: flags}
}

// Register adds the check command to the application.
func (cmd *CheckCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "check",
		Usage:     "Check whether a property's control can display a value",
		UsageText: "inspector check --property <name> [--value <value>]",
		Description: `Reports whether the control configured for a property can show the value
as a selection. Values it cannot display are shown raw in the inspector.

Without --value the property's current value is checked.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "property",
				Aliases:     []string{"p"},
				Usage:       "property name",
				Required:    true,
				Destination: &cmd.property,
			},
			&cli.StringFlag{
				Name:        "value",
				Usage:       "value to check (defaults to the current value)",
				Destination: &cmd.value,
			},
			formatFlag(&cmd.format),
		},
		Action: cmd.run,
	})
	return app
}

type checkResult struct {
	Property    string `json:"property"`
	Control     string `json:"control"`
	Value       string `json:"value"`
	Displayable bool   `json:"displayable"`
}

func (cmd *CheckCmd) run(ctx context.Context, c *cli.Command) error {
	prop, ok := cmd.flags.Config.Entity.Property(cmd.property)
	if !ok {
		return fmt.Errorf("unknown property %q", cmd.property)
	}

	value := cmd.value
	if !c.IsSet("value") {
		value = cmd.flags.Entity.Value(prop.Name)
	}

	res := checkResult{Property: prop.Name, Control: prop.Control, Value: value}
	if d, ok := controls.Lookup(prop.Control); ok {
		res.Displayable = d.CanDisplayValue(prop, value)
	}

	if cmd.format == "json" {
		return iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res)
	}

	p := printer.Ctx(ctx)
	if res.Displayable {
		p.Successf("%s can display %q", prop.Control, value)
		return nil
	}
	p.Warnf("%s cannot display %q; it will be shown raw", prop.Control, value)
	return cli.Exit("", 1)
}
