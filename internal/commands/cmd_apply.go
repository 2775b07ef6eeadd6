package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/inspector/pkg/iojson"
)

// Update is one option activation read by the apply command.
type Update struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Keyboard bool   `json:"keyboard"`
}

// UpdateResult reports the value a property holds after an update.
type UpdateResult struct {
	Property string `json:"property"`
	Value    string `json:"value"`
	Error    string `json:"error,omitempty"`
}

type ApplyCmd struct {
	flags  *Flags
	reader iojson.FileReader[[]Update]
}

// NewApplyCmd creates a new apply command.
func NewApplyCmd(flags *Flags) *ApplyCmd {
	return &ApplyCmd{flags: flags}
}

// Register adds the apply command to the application.
func (cmd *ApplyCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "apply",
		Usage:     "Apply a batch of option selections from JSON",
		UsageText: "inspector apply [-f file]",
		Description: `Reads a JSON array of updates from a file or stdin:

  [{"property": "textAlign", "value": "RIGHT", "keyboard": false}]

Each update activates an option as the inspector would, so selecting the
active option resets the property to its default. Results are written as JSON.`,
		Flags: []cli.Flag{
			cmd.reader.Flag(),
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *ApplyCmd) run(_ context.Context, c *cli.Command) error {
	updates, err := cmd.reader.Read()
	if err != nil {
		return err
	}

	results, failed := applyUpdates(cmd.flags, updates)

	if err := saveEntity(cmd.flags); err != nil {
		return err
	}

	if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, results); err != nil {
		return err
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d update(s) failed", failed, len(updates))
	}
	return nil
}

// applyUpdates applies every update in order. Failed updates are reported in
// their result and do not stop the batch.
func applyUpdates(flags *Flags, updates []Update) ([]UpdateResult, int) {
	results := make([]UpdateResult, len(updates))
	failed := 0
	for i, u := range updates {
		value, err := selectOption(flags, u.Property, u.Value, u.Keyboard)
		results[i] = UpdateResult{Property: u.Property, Value: value}
		if err != nil {
			results[i].Error = err.Error()
			results[i].Value = flags.Entity.Value(u.Property)
			failed++
		}
	}
	return results, failed
}
