package commands

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/colonyops/inspector/internal/tui/inspector"
)

type TuiCmd struct {
	flags *Flags
}

// NewTuiCmd creates a new tui command
func NewTuiCmd(flags *Flags) *TuiCmd {
	return &TuiCmd{flags: flags}
}

// Register adds the tui command to the application.
func (cmd *TuiCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "tui",
		Usage:     "Open the property inspector",
		UsageText: "inspector tui",
		Action:    cmd.run,
	})
	return app
}

// Run executes the TUI. Exported for use as default command.
func (cmd *TuiCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *TuiCmd) run(_ context.Context, _ *cli.Command) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("inspector requires a terminal; use 'inspector set' or 'inspector apply' for scripted edits")
	}

	cfg := cmd.flags.Config

	m := inspector.New(inspector.Options{
		Entity:     cmd.flags.Entity,
		Properties: cfg.Entity.Properties,
		Reporter:   cmd.flags.Reporter(),
		Width:      cfg.TUI.Width,
		SavePath:   cfg.EntityFile(),
	})

	finalModel, err := tea.NewProgram(m).Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	final, ok := finalModel.(inspector.Model)
	if !ok {
		return nil
	}

	log.Debug().
		Int("reported", final.Reported()).
		Int("unhandled", final.Unhandled()).
		Msg("inspector closed")

	return final.Err()
}
