package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/rs/zerolog"

	"github.com/colonyops/inspector/internal/core/analytics"
	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/internal/core/logging"
	"github.com/colonyops/inspector/internal/core/property"
	"github.com/colonyops/inspector/internal/core/styles"
)

// IconTabControlType identifies the icon-tab control in property schemas.
const IconTabControlType = "ICON_TABS"

// IconTabConfig is the static configuration of an icon-tab field.
type IconTabConfig struct {
	Name      string // property name
	Label     string
	Options   []Option
	FullWidth bool
	Width     int
}

// IconTabField renders a property as a segmented group of options. Selecting
// the active option resets the property to its default.
//
// While mounted the field listens on its root node for keypress signals from
// its button group, reports them to analytics and stops them there.
type IconTabField struct {
	cfg      IconTabConfig
	host     property.Host
	reporter analytics.Reporter
	node     *interaction.Node
	group    *ButtonGroup
	logger   zerolog.Logger

	sub     *interaction.Subscription
	focused bool
}

var (
	_ Field   = (*IconTabField)(nil)
	_ Mounter = (*IconTabField)(nil)
	_ Clicker = (*IconTabField)(nil)
)

// NewIconTabField creates an unmounted icon-tab field bound to host. The
// field's node is created under parent. A nil reporter discards reports.
func NewIconTabField(cfg IconTabConfig, host property.Host, reporter analytics.Reporter, parent *interaction.Node) *IconTabField {
	if reporter == nil {
		reporter = analytics.Nop{}
	}

	f := &IconTabField{
		cfg:      cfg,
		host:     host,
		reporter: reporter,
		node:     interaction.NewNode(cfg.Name, parent),
		logger:   logging.Control(IconTabControlType, cfg.Name),
	}

	f.group = NewButtonGroup(ButtonGroupProps{
		Options:   cfg.Options,
		Values:    f.values(),
		FullWidth: cfg.FullWidth,
		Width:     cfg.Width,
		OnSelect:  f.SelectOption,
		Node:      interaction.NewNode("button-group", f.node),
	})

	return f
}

// ToggleValue returns the value to commit when selected is activated while
// the property holds current: the default when selected is already active,
// selected otherwise.
func ToggleValue(current, selected, def string) string {
	if selected == current {
		return def
	}
	return selected
}

// CanDisplayIconTabValue reports whether value is one of the option values,
// so the control can show it as a selection. Non-string values never match.
func CanDisplayIconTabValue(options []Option, value any) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	for _, o := range options {
		if o.Value == s {
			return true
		}
	}
	return false
}

// Mount attaches the interaction listener. Mounting a mounted field is a
// no-op.
func (f *IconTabField) Mount() {
	if f.sub != nil {
		return
	}
	f.sub = f.node.Listen(f.handleSignal)
	f.logger.Debug().Msg("mounted")
}

// Unmount releases the interaction listener. Unmounting an unmounted field is
// a no-op.
func (f *IconTabField) Unmount() {
	if f.sub == nil {
		return
	}
	f.sub.Close()
	f.sub = nil
	f.logger.Debug().Msg("unmounted")
}

// Mounted reports whether the listener is attached.
func (f *IconTabField) Mounted() bool { return f.sub != nil }

// Node returns the field's root interaction node.
func (f *IconTabField) Node() *interaction.Node { return f.node }

// SelectOption commits the result of activating value. It is the button
// group's select callback and does nothing while unmounted.
func (f *IconTabField) SelectOption(value string, viaKeyboard bool) {
	if f.sub == nil {
		return
	}

	next := ToggleValue(f.host.Value(), value, f.host.Default())
	f.host.Commit(next, viaKeyboard)
	f.group.SetValues(f.values())
}

func (f *IconTabField) handleSignal(sig *interaction.Signal) {
	if sig.Component != interaction.ComponentButtonGroup || sig.Kind != interaction.KindKeypress {
		return
	}

	f.reporter.Emit(f.node, analytics.Payload{Key: sig.Meta.Key})
	sig.StopPropagation()
}

func (f *IconTabField) values() []string {
	return []string{f.host.Value()}
}

// SetWidth sets the width used for full-width layout.
func (f *IconTabField) SetWidth(w int) {
	f.cfg.Width = w
	f.group.SetWidth(w)
}

func (f *IconTabField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	f.group.SetValues(f.values())
	return f, f.group.Update(msg)
}

// Click activates the segment under (x, y). The segments sit on the second
// line, after the field frame's left border and padding.
func (f *IconTabField) Click(x, y int) bool {
	if y != 1 {
		return false
	}

	frame := styles.FormFieldStyle.GetBorderLeftSize() + styles.FormFieldStyle.GetPaddingLeft()
	idx, ok := f.group.SegmentAt(x - frame)
	if !ok {
		return false
	}

	f.group.Click(idx)
	return true
}

func (f *IconTabField) View() string {
	f.group.SetValues(f.values())

	titleStyle := styles.FormTitleBlurredStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	parts := []string{titleStyle.Render(f.cfg.Label), f.group.View()}
	if f.focused {
		if tip := f.group.Tooltip(); tip != "" {
			parts = append(parts, styles.SegmentTooltipStyle.Render(tip))
		}
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (f *IconTabField) Focus() tea.Cmd {
	f.focused = true
	f.group.Focus()
	return nil
}

func (f *IconTabField) Blur() {
	f.focused = false
	f.group.Blur()
}

func (f *IconTabField) Focused() bool { return f.focused }
func (f *IconTabField) Value() any    { return f.host.Value() }
func (f *IconTabField) Label() string { return f.cfg.Label }

// Group exposes the nested button group.
func (f *IconTabField) Group() *ButtonGroup { return f.group }
