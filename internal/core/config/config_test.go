package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_defaults_when_missing(t *testing.T) {
	dataDir := t.TempDir()

	cfg, err := Load(filepath.Join(dataDir, "absent.yaml"), dataDir)
	require.NoError(t, err)

	assert.Equal(t, dataDir, cfg.DataDir)
	assert.Equal(t, "Text1", cfg.Entity.Name)
	require.NotEmpty(t, cfg.Entity.Properties)
	assert.Equal(t, "ICON_TABS", cfg.Entity.Properties[0].Control)
	assert.Equal(t, filepath.Join(dataDir, "entity.yaml"), cfg.EntityFile())
	assert.True(t, cfg.Analytics.IsEnabled())
}

func TestLoad_file_replaces_sample_entity(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
tui:
  theme: gruvbox
analytics:
  enabled: false
entity:
  name: Button1
  properties:
    - name: iconAlign
      control: ICON_TABS
      default: left
      options:
        - value: left
        - value: right
  values:
    iconAlign: right
`)

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, 48, cfg.TUI.Width, "zero width takes the default")
	assert.False(t, cfg.Analytics.IsEnabled())
	assert.Equal(t, "Button1", cfg.Entity.Name)
	require.Len(t, cfg.Entity.Properties, 1)

	p, ok := cfg.Entity.Property("iconAlign")
	require.True(t, ok)
	assert.Equal(t, []string{"left", "right"}, p.OptionValues())
	assert.Equal(t, "iconAlign", p.DisplayLabel())
	assert.Equal(t, "right", cfg.Entity.Values["iconAlign"])

	_, ok = cfg.Entity.Property("missing")
	assert.False(t, ok)
}

func TestLoad_values_files(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("textAlign: LEFT\nverticalAlignment: TOP\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("verticalAlignment: BOTTOM\n"), 0o644))

	path := writeConfig(t, dir, `
values_files: [a.yaml, b.yaml]
entity:
  properties:
    - name: textAlign
      control: ICON_TABS
      options: [{value: LEFT}, {value: RIGHT}]
    - name: verticalAlignment
      control: ICON_TABS
      options: [{value: TOP}, {value: BOTTOM}]
  values:
    textAlign: RIGHT
`)

	cfg, err := Load(path, dir)
	require.NoError(t, err)

	assert.Equal(t, "RIGHT", cfg.Entity.Values["textAlign"], "inline values win")
	assert.Equal(t, "BOTTOM", cfg.Entity.Values["verticalAlignment"], "later files win")
}

func TestLoad_values_file_missing(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "values_files: [nope.yaml]\n")

	_, err := Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read values file")
}

func TestLoad_invalid_yaml(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "tui: [")

	_, err := Load(path, dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config file")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{
			name:      "unknown theme",
			mutate:    func(c *Config) { c.TUI.Theme = "neon" },
			wantField: "tui.theme",
		},
		{
			name:      "invalid color override",
			mutate:    func(c *Config) { c.TUI.Colors.Primary = "not-a-color" },
			wantField: "tui.colors",
		},
		{
			name:      "empty data dir",
			mutate:    func(c *Config) { c.DataDir = "" },
			wantField: "data_dir",
		},
		{
			name:      "missing property name",
			mutate:    func(c *Config) { c.Entity.Properties[0].Name = "" },
			wantField: "entity.properties[0].name",
		},
		{
			name: "duplicate property name",
			mutate: func(c *Config) {
				c.Entity.Properties[1].Name = c.Entity.Properties[0].Name
			},
			wantField: "entity.properties[1].name",
		},
		{
			name:      "missing control",
			mutate:    func(c *Config) { c.Entity.Properties[0].Control = "" },
			wantField: "entity.properties[0].control",
		},
		{
			name:      "no options",
			mutate:    func(c *Config) { c.Entity.Properties[0].Options = nil },
			wantField: "entity.properties[0].options",
		},
		{
			name: "duplicate option value",
			mutate: func(c *Config) {
				c.Entity.Properties[0].Options[1].Value = c.Entity.Properties[0].Options[0].Value
			},
			wantField: "entity.properties[0].options[1].value",
		},
		{
			name:      "empty option value",
			mutate:    func(c *Config) { c.Entity.Properties[0].Options[2].Value = "" },
			wantField: "entity.properties[0].options[2].value",
		},
		{
			name:      "value for undeclared property",
			mutate:    func(c *Config) { c.Entity.Values["fontSize"] = "S" },
			wantField: `entity.values["fontSize"]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.DataDir = t.TempDir()
			tt.mutate(&cfg)

			err := cfg.Validate()

			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)

			var fields []string
			for _, fe := range fieldErrs {
				fields = append(fields, fe.Field)
			}
			assert.Contains(t, fields, tt.wantField)
		})
	}

	t.Run("default config is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DataDir = t.TempDir()
		assert.NoError(t, cfg.Validate())
	})
}

func TestValidateDeep_unknown_control(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()
	cfg.Entity.Properties[1].Control = "DROP_DOWN"

	known := func(s string) bool { return s == "ICON_TABS" }

	err := cfg.ValidateDeep("", known)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 1)
	assert.Equal(t, "entity.properties[1].control", fieldErrs[0].Field)
	assert.Contains(t, fieldErrs[0].Err.Error(), "DROP_DOWN")
}

func TestValidateDeep_config_path_is_dir(t *testing.T) {
	cfg := DefaultConfig()
	cfg.DataDir = t.TempDir()

	err := cfg.ValidateDeep(t.TempDir(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestWarnings(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Entity.Values["verticalAlignment"] = "{{ Text1.isVisible ? 'TOP' : 'BOTTOM' }}"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, "verticalAlignment", warnings[0].Item)
	assert.Contains(t, warnings[0].Message, "shown raw")
}

func TestOption_DisplayLabel(t *testing.T) {
	assert.Equal(t, "Left", Option{Value: "LEFT", Label: "Left"}.DisplayLabel())
	assert.Equal(t, "LEFT", Option{Value: "LEFT"}.DisplayLabel())
}
