package commands

import (
	"context"
	"errors"

	"github.com/hay-kot/criterio"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/printer"
	"github.com/colonyops/inspector/internal/tui/controls"
	"github.com/colonyops/inspector/pkg/iojson"
)

type ConfigValidateCmd struct {
	flags  *Flags
	format string
}

// NewConfigValidateCmd creates a new config validate command.
func NewConfigValidateCmd(flags *Flags) *ConfigValidateCmd {
	return &ConfigValidateCmd{flags: flags}
}

// Register adds the config validate command to the application.
func (cmd *ConfigValidateCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "config",
		Usage: "Configuration management commands",
		Commands: []*cli.Command{
			{
				Name:        "validate",
				Usage:       "Validate configuration file",
				UsageText:   "inspector config validate [options]",
				Description: "Validates the configuration file, checking file access, property schemas, and control types.",
				Flags: []cli.Flag{
					formatFlag(&cmd.format),
				},
				Action: cmd.run,
			},
		},
	})

	return app
}

type fieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type validateResult struct {
	Valid    bool                       `json:"valid"`
	Errors   []fieldError               `json:"errors,omitempty"`
	Warnings []config.ValidationWarning `json:"warnings,omitempty"`
}

func (cmd *ConfigValidateCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	res := validateResult{Warnings: cfg.Warnings()}
	if err := cfg.ValidateDeep(cmd.flags.ConfigPath, controls.Known); err != nil {
		res.Errors = toFieldErrors(err)
	}
	res.Valid = len(res.Errors) == 0

	if cmd.format == "json" {
		if err := iojson.WriteWith(c.Root().Writer, c.Root().ErrWriter, res); err != nil {
			return err
		}
		if !res.Valid {
			return cli.Exit("", 1)
		}
		return nil
	}

	p := printer.Ctx(ctx)
	for _, w := range res.Warnings {
		p.Warnf("%s: %s", w.Category, w.Message)
		if w.Item != "" {
			p.Printf("  Item: %s", w.Item)
		}
	}
	for _, e := range res.Errors {
		p.Errorf("%s: %s", e.Field, e.Message)
	}

	p.Printf("")
	if res.Valid {
		p.Successf("Configuration is valid")
		return nil
	}

	p.Errorf("%d error(s) found", len(res.Errors))
	return cli.Exit("", 1)
}

func toFieldErrors(err error) []fieldError {
	var fe criterio.FieldErrors
	if !errors.As(err, &fe) {
		return []fieldError{{Field: "config", Message: err.Error()}}
	}

	out := make([]fieldError, len(fe))
	for i, e := range fe {
		out[i] = fieldError{Field: e.Field, Message: e.Err.Error()}
	}
	return out
}
