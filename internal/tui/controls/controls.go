// Package controls maps property control types to the form fields that edit
// them.
package controls

import (
	"slices"

	"github.com/colonyops/inspector/internal/core/analytics"
	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/internal/core/property"
	"github.com/colonyops/inspector/internal/tui/components/form"
)

// Deps is what a control needs to be built for one property row.
type Deps struct {
	Property config.Property
	Host     property.Host
	Reporter analytics.Reporter
	Parent   *interaction.Node // node the control's node is attached under
	Width    int
}

// Descriptor is the registry entry of a control type.
type Descriptor struct {
	Type string

	// CanDisplayValue reports whether the control can show value as a
	// selection for prop. When it cannot, the inspector shows the value raw.
	CanDisplayValue func(prop config.Property, value any) bool

	// New builds an unmounted field for a property row.
	New func(Deps) form.Field
}

var registry = map[string]Descriptor{
	form.IconTabControlType: iconTabs,
}

// Lookup returns the descriptor registered for a control type.
func Lookup(controlType string) (Descriptor, bool) {
	d, ok := registry[controlType]
	return d, ok
}

// Known reports whether a control type is registered.
func Known(controlType string) bool {
	_, ok := registry[controlType]
	return ok
}

// Types returns the registered control types, sorted.
func Types() []string {
	types := make([]string, 0, len(registry))
	for t := range registry {
		types = append(types, t)
	}
	slices.Sort(types)
	return types
}

// Options converts configured options into form options.
func Options(opts []config.Option) []form.Option {
	out := make([]form.Option, len(opts))
	for i, o := range opts {
		out[i] = form.Option{
			Value:   o.Value,
			Label:   o.DisplayLabel(),
			Icon:    o.Icon,
			Tooltip: o.Tooltip,
		}
	}
	return out
}
