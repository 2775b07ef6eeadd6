// Package config handles configuration loading and validation for the
// inspector.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/inspector/internal/core/styles"
)

// Config holds the application configuration.
type Config struct {
	TUI         TUIConfig       `yaml:"tui"`
	Analytics   AnalyticsConfig `yaml:"analytics"`
	Entity      EntityConfig    `yaml:"entity"`
	ValuesFiles []string        `yaml:"values_files,omitempty"` // YAML maps merged into entity values, in order
	DataDir     string          `yaml:"-"`            // set by caller, not from config file
}

// TUIConfig holds panel presentation settings.
type TUIConfig struct {
	Theme  string        `yaml:"theme"`
	Colors styles.Colors `yaml:"colors,omitempty"` // per-color overrides of the theme
	Width  int           `yaml:"width"`            // panel width used for full-width controls
}

// Palette returns the configured theme with color overrides applied.
func (t TUIConfig) Palette() styles.Palette {
	return styles.ResolvePalette(t.Theme, t.Colors)
}

// AnalyticsConfig controls interaction analytics collection.
type AnalyticsConfig struct {
	Enabled *bool `yaml:"enabled,omitempty"` // nil = enabled
}

// IsEnabled reports whether analytics collection is on.
func (a AnalyticsConfig) IsEnabled() bool {
	return a.Enabled == nil || *a.Enabled
}

// EntityConfig describes the edited entity: its property schema and the
// initial property values.
type EntityConfig struct {
	Name       string            `yaml:"name"`
	Properties []Property        `yaml:"properties"`
	Values     map[string]string `yaml:"values"`
}

// Property is the schema of one inspector row.
type Property struct {
	Name      string   `yaml:"name"`       // key used when committing
	Label     string   `yaml:"label"`      // row label
	Control   string   `yaml:"control"`    // control type, e.g. ICON_TABS
	Default   string   `yaml:"default"`    // committed when the active option is toggled off
	FullWidth bool     `yaml:"full_width"` // layout hint
	Help      string   `yaml:"help"`       // markdown help text
	Options   []Option `yaml:"options"`
}

// Option is one selectable entry of an option-based control. Only Value has
// meaning to the control; the rest is presentation.
type Option struct {
	Value   string `yaml:"value"`
	Label   string `yaml:"label"`
	Icon    string `yaml:"icon"`
	Tooltip string `yaml:"tooltip"`
}

// DisplayLabel returns the label, falling back to the value.
func (o Option) DisplayLabel() string {
	if o.Label != "" {
		return o.Label
	}
	return o.Value
}

// OptionValues returns the option values in declaration order.
func (p Property) OptionValues() []string {
	values := make([]string, len(p.Options))
	for i, o := range p.Options {
		values[i] = o.Value
	}
	return values
}

// DisplayLabel returns the label, falling back to the property name.
func (p Property) DisplayLabel() string {
	if p.Label != "" {
		return p.Label
	}
	return p.Name
}

// Property returns the schema for the named property.
func (e EntityConfig) Property(name string) (Property, bool) {
	i := slices.IndexFunc(e.Properties, func(p Property) bool { return p.Name == name })
	if i < 0 {
		return Property{}, false
	}
	return e.Properties[i], true
}

// DefaultConfig returns a Config with a sample text entity.
func DefaultConfig() Config {
	return Config{
		TUI: TUIConfig{
			Theme: styles.DefaultTheme,
			Width: 48,
		},
		Entity: EntityConfig{
			Name: "Text1",
			Properties: []Property{
				{
					Name:      "textAlign",
					Label:     "Text alignment",
					Control:   "ICON_TABS",
					Default:   "LEFT",
					FullWidth: true,
					Help:      "Sets the horizontal alignment of the **text**. Selecting the active option resets it to `LEFT`.",
					Options: []Option{
						{Value: "LEFT", Label: "Left", Icon: "⇤", Tooltip: "Align left"},
						{Value: "CENTER", Label: "Center", Icon: "↔", Tooltip: "Align center"},
						{Value: "RIGHT", Label: "Right", Icon: "⇥", Tooltip: "Align right"},
					},
				},
				{
					Name:    "verticalAlignment",
					Label:   "Vertical alignment",
					Control: "ICON_TABS",
					Default: "CENTER",
					Help:    "Sets the vertical position of the text inside the widget.",
					Options: []Option{
						{Value: "TOP", Label: "Top", Icon: "⤒", Tooltip: "Align top"},
						{Value: "CENTER", Label: "Middle", Icon: "↕", Tooltip: "Align middle"},
						{Value: "BOTTOM", Label: "Bottom", Icon: "⤓", Tooltip: "Align bottom"},
					},
				},
			},
			Values: map[string]string{
				"textAlign": "CENTER",
			},
		},
	}
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			// A config file describing its own entity replaces the sample one.
			cfg.Entity = EntityConfig{}
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir

			if len(cfg.ValuesFiles) > 0 {
				values, err := loadValuesFiles(filepath.Dir(configPath), cfg.ValuesFiles)
				if err != nil {
					return nil, err
				}
				cfg.Entity.Values = mergeValues(cfg.Entity.Values, values)
			}
		}
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.Width == 0 {
		c.TUI.Width = defaults.TUI.Width
	}
	if c.Entity.Name == "" {
		c.Entity.Name = defaults.Entity.Name
	}
	if c.Entity.Values == nil {
		c.Entity.Values = map[string]string{}
	}
}

// EntityFile returns the path of the saved entity snapshot.
func (c *Config) EntityFile() string {
	return filepath.Join(c.DataDir, "entity.yaml")
}

// Marshal renders the config as YAML.
func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}
