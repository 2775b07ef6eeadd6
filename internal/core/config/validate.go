package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/inspector/internal/core/styles"
	"github.com/colonyops/inspector/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	return criterio.ValidateStruct(
		criterio.Run("tui.theme", c.TUI.Theme, themeExists),
		criterio.Run("tui.colors", c.TUI.Colors, validColors),
		criterio.Run("tui.width", c.TUI.Width, positive),
		criterio.Run("data_dir", c.DataDir, notEmpty),
		criterio.Run("entity.name", c.Entity.Name, notEmpty),
		c.validateProperties(),
		c.validateValues(),
	)
}

// ValidateDeep runs Validate and additionally checks file access and that
// every property names a known control type.
func (c *Config) ValidateDeep(configPath string, knownControl func(string) bool) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		c.validateControls(knownControl),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	for _, p := range c.Entity.Properties {
		v, ok := c.Entity.Values[p.Name]
		if ok && v != "" && !slices.Contains(p.OptionValues(), v) {
			warnings = append(warnings, ValidationWarning{
				Category: "Values",
				Item:     p.Name,
				Message:  fmt.Sprintf("value %q matches no option and will be shown raw", v),
			})
		}
	}

	return warnings
}

func (c *Config) validateProperties() error {
	var errs criterio.FieldErrorsBuilder

	if len(c.Entity.Properties) == 0 {
		return criterio.NewFieldErrors("entity.properties", errors.New("at least one property is required"))
	}

	names := make(map[string]bool, len(c.Entity.Properties))
	for i, p := range c.Entity.Properties {
		field := fmt.Sprintf("entity.properties[%d]", i)

		if err := validate.PropertyName(p.Name); err != nil {
			errs = errs.Append(field+".name", err)
		} else if names[p.Name] {
			errs = errs.Append(field+".name", fmt.Errorf("duplicate property name %q", p.Name))
		}
		names[p.Name] = true

		if p.Control == "" {
			errs = errs.Append(field+".control", errors.New("control is required"))
		}

		if len(p.Options) == 0 {
			errs = errs.Append(field+".options", errors.New("at least one option is required"))
		}

		seen := make(map[string]bool, len(p.Options))
		for j, o := range p.Options {
			optField := fmt.Sprintf("%s.options[%d].value", field, j)
			switch {
			case o.Value == "":
				errs = errs.Append(optField, errors.New("value is required"))
			case seen[o.Value]:
				errs = errs.Append(optField, fmt.Errorf("duplicate option value %q", o.Value))
			}
			seen[o.Value] = true
		}
	}

	return errs.ToError()
}

func (c *Config) validateValues() error {
	var errs criterio.FieldErrorsBuilder
	for name := range c.Entity.Values {
		if _, ok := c.Entity.Property(name); !ok {
			errs = errs.Append(fmt.Sprintf("entity.values[%q]", name), errors.New("no such property"))
		}
	}
	return errs.ToError()
}

func (c *Config) validateControls(knownControl func(string) bool) error {
	if knownControl == nil {
		return nil
	}

	var errs criterio.FieldErrorsBuilder
	for i, p := range c.Entity.Properties {
		if !knownControl(p.Control) {
			errs = errs.Append(fmt.Sprintf("entity.properties[%d].control", i), fmt.Errorf("unknown control type %q", p.Control))
		}
	}
	return errs.ToError()
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

func themeExists(name string) error {
	if _, ok := styles.GetPalette(name); !ok {
		return fmt.Errorf("unknown theme %q (available: %v)", name, styles.ThemeNames())
	}
	return nil
}

func validColors(c styles.Colors) error {
	return c.Validate()
}

func positive(n int) error {
	if n < 1 {
		return errors.New("must be at least 1")
	}
	return nil
}

func notEmpty(s string) error {
	if s == "" {
		return errors.New("cannot be empty")
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return errors.New("exists but is not a directory")
	}
	return nil
}
