package commands

import (
	"fmt"
	"slices"

	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/internal/tui/components/form"
	"github.com/colonyops/inspector/internal/tui/controls"
)

// optionSelector is implemented by controls that commit through option
// activation.
type optionSelector interface {
	SelectOption(value string, viaKeyboard bool)
}

// selectOption activates value on the named property's control without a
// terminal, as if the user had picked it, and returns the resulting value.
func selectOption(flags *Flags, name, value string, viaKeyboard bool) (string, error) {
	prop, ok := flags.Config.Entity.Property(name)
	if !ok {
		return "", fmt.Errorf("unknown property %q", name)
	}

	d, ok := controls.Lookup(prop.Control)
	if !ok {
		return "", fmt.Errorf("property %q uses unknown control %q", name, prop.Control)
	}

	if !slices.Contains(prop.OptionValues(), value) {
		return "", fmt.Errorf("%q is not an option of %s (options: %v)", value, name, prop.OptionValues())
	}

	field := d.New(controls.Deps{
		Property: prop,
		Host:     flags.Entity.Bind(prop.Name, prop.Default),
		Reporter: flags.Reporter(),
		Parent:   interaction.NewNode("cli", nil),
		Width:    flags.Config.TUI.Width,
	})

	sel, ok := field.(optionSelector)
	if !ok {
		return "", fmt.Errorf("control %q cannot select options", prop.Control)
	}

	if m, ok := field.(form.Mounter); ok {
		m.Mount()
		defer m.Unmount()
	}

	sel.SelectOption(value, viaKeyboard)
	return flags.Entity.Value(name), nil
}

// saveEntity writes the entity snapshot to the data dir.
func saveEntity(flags *Flags) error {
	if err := flags.Entity.Save(flags.Config.EntityFile()); err != nil {
		return fmt.Errorf("save entity: %w", err)
	}
	return nil
}
