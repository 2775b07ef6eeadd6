package styles

import (
	"fmt"
	"image/color"
	"slices"
	"strings"

	glamouransi "github.com/charmbracelet/glamour/ansi"
	glamourstyles "github.com/charmbracelet/glamour/styles"
	"github.com/lucasb-eyer/go-colorful"
)

// Palette is the set of semantic colors every style is derived from.
type Palette struct {
	Primary    color.Color
	Secondary  color.Color
	Foreground color.Color
	Muted      color.Color
	Background color.Color
	Surface    color.Color
	Success    color.Color
	Warning    color.Color
	Error      color.Color
}

// Colors is a palette written as hex strings, the form used by built-in
// themes and by color overrides in the config file. Empty entries are unset.
type Colors struct {
	Primary    string `yaml:"primary,omitempty"`
	Secondary  string `yaml:"secondary,omitempty"`
	Foreground string `yaml:"foreground,omitempty"`
	Muted      string `yaml:"muted,omitempty"`
	Background string `yaml:"background,omitempty"`
	Surface    string `yaml:"surface,omitempty"`
	Success    string `yaml:"success,omitempty"`
	Warning    string `yaml:"warning,omitempty"`
	Error      string `yaml:"error,omitempty"`
}

// DefaultTheme is the name of the default theme.
const DefaultTheme = "tokyo-night"

var themes = map[string]Colors{
	"tokyo-night": {
		Primary: "#7aa2f7", Secondary: "#7dcfff", Foreground: "#c0caf5",
		Muted: "#565f89", Background: "#1a1b26", Surface: "#3b4261",
		Success: "#9ece6a", Warning: "#e0af68", Error: "#f7768e",
	},
	"gruvbox": {
		Primary: "#83a598", Secondary: "#8ec07c", Foreground: "#ebdbb2",
		Muted: "#665c54", Background: "#282828", Surface: "#3c3836",
		Success: "#b8bb26", Warning: "#fabd2f", Error: "#fb4934",
	},
	"catppuccin": {
		Primary: "#89b4fa", Secondary: "#94e2d5", Foreground: "#cdd6f4",
		Muted: "#6c7086", Background: "#1e1e2e", Surface: "#313244",
		Success: "#a6e3a1", Warning: "#f9e2af", Error: "#f38ba8",
	},
	"nord": {
		Primary: "#88c0d0", Secondary: "#81a1c1", Foreground: "#d8dee9",
		Muted: "#4c566a", Background: "#2e3440", Surface: "#3b4252",
		Success: "#a3be8c", Warning: "#ebcb8b", Error: "#bf616a",
	},
}

// entries pairs each color name with its slot, in declaration order.
func (c *Colors) entries() []struct {
	name string
	hex  *string
} {
	return []struct {
		name string
		hex  *string
	}{
		{"primary", &c.Primary},
		{"secondary", &c.Secondary},
		{"foreground", &c.Foreground},
		{"muted", &c.Muted},
		{"background", &c.Background},
		{"surface", &c.Surface},
		{"success", &c.Success},
		{"warning", &c.Warning},
		{"error", &c.Error},
	}
}

// Merge returns c with every non-empty entry of o applied over it.
func (c Colors) Merge(o Colors) Colors {
	dst := c.entries()
	for i, e := range o.entries() {
		if *e.hex != "" {
			*dst[i].hex = *e.hex
		}
	}
	return c
}

// Validate returns an error naming the first entry that is not a valid hex
// color. Empty entries are valid.
func (c Colors) Validate() error {
	for _, e := range c.entries() {
		if *e.hex == "" {
			continue
		}
		if _, err := colorful.Hex(*e.hex); err != nil {
			return fmt.Errorf("%s: invalid hex color %q", e.name, *e.hex)
		}
	}
	return nil
}

// Palette converts the hex entries to colors. Entries that fail to parse are
// left nil; call Validate first to reject them.
func (c Colors) Palette() Palette {
	parse := func(hex string) color.Color {
		cc, err := colorful.Hex(hex)
		if err != nil {
			return nil
		}
		return cc
	}

	return Palette{
		Primary:    parse(c.Primary),
		Secondary:  parse(c.Secondary),
		Foreground: parse(c.Foreground),
		Muted:      parse(c.Muted),
		Background: parse(c.Background),
		Surface:    parse(c.Surface),
		Success:    parse(c.Success),
		Warning:    parse(c.Warning),
		Error:      parse(c.Error),
	}
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	c, ok := themes[strings.ToLower(name)]
	if !ok {
		return Palette{}, false
	}
	return c.Palette(), true
}

// ResolvePalette returns the named theme with overrides applied. Unknown
// theme names fall back to the default theme.
func ResolvePalette(name string, overrides Colors) Palette {
	base, ok := themes[strings.ToLower(name)]
	if !ok {
		base = themes[DefaultTheme]
	}
	return base.Merge(overrides).Palette()
}

func colorHexPtr(c color.Color) *string {
	if c == nil {
		return nil
	}
	cc, ok := colorful.MakeColor(c)
	if !ok {
		return nil
	}
	hex := cc.Hex()
	return &hex
}

// GlamourStyle returns a glamour style config derived from the active theme,
// used to render property help.
func GlamourStyle() glamouransi.StyleConfig {
	cfg := glamourstyles.DarkStyleConfig

	fg := colorHexPtr(ColorForeground)
	primary := colorHexPtr(ColorPrimary)
	secondary := colorHexPtr(ColorSecondary)
	muted := colorHexPtr(ColorMuted)

	cfg.Document.Color = fg
	cfg.Paragraph.Color = fg

	for _, h := range []*glamouransi.StyleBlock{&cfg.Heading, &cfg.H1, &cfg.H2, &cfg.H3} {
		h.Color = primary
		h.BackgroundColor = nil
	}

	cfg.Strong.Color = primary
	cfg.Emph.Color = secondary
	cfg.BlockQuote.Color = muted
	cfg.Link.Color = secondary
	cfg.LinkText.Color = secondary
	cfg.Code.Color = secondary
	cfg.Code.BackgroundColor = nil

	return cfg
}
