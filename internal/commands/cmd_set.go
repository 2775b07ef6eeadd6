package commands

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/inspector/internal/core/logging"
	"github.com/colonyops/inspector/internal/printer"
)

type SetCmd struct {
	flags    *Flags
	property string
	value    string
	keyboard bool
}

// NewSetCmd creates a new set command.
func NewSetCmd(flags *Flags) *SetCmd {
	return &SetCmd{flags: flags}
}

// Register adds the set command to the application.
func (cmd *SetCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "set",
		Usage:     "Select an option of a property",
		UsageText: "inspector set --property <name> --value <option>",
		Description: `Activates an option the same way the inspector does. Selecting the option
that is already active resets the property to its default.`,
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
				Usage:       "option value to select",
				Required:    true,
				Destination: &cmd.value,
			},
			&cli.BoolFlag{
				Name:        "keyboard",
				Usage:       "record the change as keyboard-driven",
				Destination: &cmd.keyboard,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *SetCmd) run(ctx context.Context, _ *cli.Command) error {
	p := printer.Ctx(ctx)

	before := cmd.flags.Entity.Value(cmd.property)
	after, err := selectOption(cmd.flags, cmd.property, cmd.value, cmd.keyboard)
	if err != nil {
		return err
	}

	if err := saveEntity(cmd.flags); err != nil {
		return err
	}

	log.Info().
		Ctx(logging.WithProperty(ctx, cmd.property)).
		Str("old", before).
		Str("new", after).
		Bool("keyboard", cmd.keyboard).
		Msg("option selected")

	if after == "" {
		p.Successf("%s cleared (was %q)", cmd.property, before)
		return nil
	}
	p.Successf("%s = %s (was %q)", cmd.property, after, before)
	return nil
}
