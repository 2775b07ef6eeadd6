package controls

import (
	"github.com/colonyops/inspector/internal/core/config"
	"github.com/colonyops/inspector/internal/tui/components/form"
)

var iconTabs = Descriptor{
	Type: form.IconTabControlType,
	CanDisplayValue: func(prop config.Property, value any) bool {
		return form.CanDisplayIconTabValue(Options(prop.Options), value)
	},
	New: func(d Deps) form.Field {
		return NewIconTabs(d)
	},
}

// NewIconTabs builds the icon-tab field for a property row.
func NewIconTabs(d Deps) *form.IconTabField {
	return form.NewIconTabField(form.IconTabConfig{
		Name:      d.Property.Name,
		Label:     d.Property.DisplayLabel(),
		Options:   Options(d.Property.Options),
		FullWidth: d.Property.FullWidth,
		Width:     d.Width,
	}, d.Host, d.Reporter, d.Parent)
}
