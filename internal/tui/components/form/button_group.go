package form

import (
	"slices"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inspector/internal/core/interaction"
	"github.com/colonyops/inspector/internal/core/styles"
)

// Option is one segment of a ButtonGroup. Icon, Label and Tooltip are
// presentation only.
type Option struct {
	Value   string
	Label   string
	Icon    string
	Tooltip string
}

func (o Option) text() string {
	label := o.Label
	if label == "" {
		label = o.Value
	}
	if o.Icon == "" {
		return label
	}
	return o.Icon + " " + label
}

// SelectFunc is called when the user activates a segment.
type SelectFunc func(value string, viaKeyboard bool)

// ButtonGroupProps configures a ButtonGroup.
type ButtonGroupProps struct {
	Options   []Option
	Values    []string // selected option values
	FullWidth bool
	Width     int // available width when FullWidth is set
	OnSelect  SelectFunc
	Node      *interaction.Node // node interaction signals are dispatched on
}

type buttonGroupKeyMap struct {
	Prev     key.Binding
	Next     key.Binding
	First    key.Binding
	Last     key.Binding
	Activate key.Binding
}

func defaultButtonGroupKeys() buttonGroupKeyMap {
	return buttonGroupKeyMap{
		Prev:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev")),
		Next:     key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next")),
		First:    key.NewBinding(key.WithKeys("home"), key.WithHelp("home", "first")),
		Last:     key.NewBinding(key.WithKeys("end"), key.WithHelp("end", "last")),
		Activate: key.NewBinding(key.WithKeys("enter", "space"), key.WithHelp("enter/space", "select")),
	}
}

// ButtonGroup is a horizontal segmented control. Segments whose value is in
// Values render as active; the cursor marks the segment keyboard activation
// applies to. Every key the group handles is reported on its node as a
// keypress signal before it is acted on.
type ButtonGroup struct {
	options   []Option
	values    []string
	fullWidth bool
	width     int
	onSelect  SelectFunc
	node      *interaction.Node
	keys      buttonGroupKeyMap

	cursor  int
	focused bool
}

// NewButtonGroup creates a button group with the cursor on the first selected
// option, or on the first option when none is selected.
func NewButtonGroup(p ButtonGroupProps) *ButtonGroup {
	g := &ButtonGroup{
		options:   p.Options,
		values:    p.Values,
		fullWidth: p.FullWidth,
		width:     p.Width,
		onSelect:  p.OnSelect,
		node:      p.Node,
		keys:      defaultButtonGroupKeys(),
	}
	g.cursor = max(g.selectedIndex(), 0)
	return g
}

// SetValues replaces the selected values. When the group is not focused the
// cursor follows the selection.
func (g *ButtonGroup) SetValues(values []string) {
	g.values = values
	if !g.focused {
		g.cursor = max(g.selectedIndex(), 0)
	}
}

// SetWidth sets the width used for full-width layout.
func (g *ButtonGroup) SetWidth(w int) { g.width = w }

// Node returns the node signals are dispatched on.
func (g *ButtonGroup) Node() *interaction.Node { return g.node }

// Cursor returns the index of the segment under the cursor.
func (g *ButtonGroup) Cursor() int { return g.cursor }

// Focus gives the group keyboard focus.
func (g *ButtonGroup) Focus() {
	g.focused = true
	g.node.Dispatch(interaction.NewSignal(interaction.ComponentButtonGroup, interaction.KindFocus, interaction.Meta{}))
}

// Blur removes keyboard focus.
func (g *ButtonGroup) Blur() { g.focused = false }

// Focused reports whether the group has keyboard focus.
func (g *ButtonGroup) Focused() bool { return g.focused }

// Update handles key input while focused.
func (g *ButtonGroup) Update(msg tea.Msg) tea.Cmd {
	if !g.focused || len(g.options) == 0 {
		return nil
	}

	keyMsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, g.keys.Prev):
		g.report(keyMsg)
		g.cursor = max(g.cursor-1, 0)
	case key.Matches(keyMsg, g.keys.Next):
		g.report(keyMsg)
		g.cursor = min(g.cursor+1, len(g.options)-1)
	case key.Matches(keyMsg, g.keys.First):
		g.report(keyMsg)
		g.cursor = 0
	case key.Matches(keyMsg, g.keys.Last):
		g.report(keyMsg)
		g.cursor = len(g.options) - 1
	case key.Matches(keyMsg, g.keys.Activate):
		g.report(keyMsg)
		g.activate(g.cursor, true)
	}

	return nil
}

// Click activates the segment at index as a pointer interaction.
func (g *ButtonGroup) Click(index int) {
	if index < 0 || index >= len(g.options) {
		return
	}
	g.node.Dispatch(interaction.NewSignal(interaction.ComponentButtonGroup, interaction.KindClick, interaction.Meta{}))
	g.cursor = index
	g.activate(index, false)
}

// SegmentAt returns the index of the segment rendered at column x.
func (g *ButtonGroup) SegmentAt(x int) (int, bool) {
	if x < 0 {
		return 0, false
	}
	offset := 0
	for i, seg := range g.renderSegments() {
		w := lipgloss.Width(seg)
		if x < offset+w {
			return i, true
		}
		offset += w
	}
	return 0, false
}

// View renders the segments on one line.
func (g *ButtonGroup) View() string {
	if len(g.options) == 0 {
		return styles.TextMutedStyle.Render("(no options)")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, g.renderSegments()...)
}

// Tooltip returns the tooltip of the segment under the cursor.
func (g *ButtonGroup) Tooltip() string {
	if g.cursor < 0 || g.cursor >= len(g.options) {
		return ""
	}
	return g.options[g.cursor].Tooltip
}

// KeyBindings returns the bindings shown in help.
func (g *ButtonGroup) KeyBindings() []key.Binding {
	return []key.Binding{g.keys.Prev, g.keys.Next, g.keys.Activate}
}

func (g *ButtonGroup) renderSegments() []string {
	segWidth := 0
	if g.fullWidth && g.width > 0 && len(g.options) > 0 {
		segWidth = g.width / len(g.options)
	}

	segments := make([]string, len(g.options))
	for i, opt := range g.options {
		style := styles.SegmentStyle
		if g.isSelected(opt.Value) {
			style = styles.SegmentActiveStyle
		}
		if segWidth > 0 {
			style = style.Width(segWidth).Align(lipgloss.Center)
		}

		text := opt.text()
		if g.focused && i == g.cursor {
			text = styles.SegmentCursorStyle.Render(text)
		}
		segments[i] = style.Render(text)
	}
	return segments
}

func (g *ButtonGroup) activate(index int, viaKeyboard bool) {
	if g.onSelect == nil {
		return
	}
	g.onSelect(g.options[index].Value, viaKeyboard)
}

func (g *ButtonGroup) report(msg tea.KeyPressMsg) {
	g.node.Dispatch(interaction.Keypress(interaction.ComponentButtonGroup, keyName(msg.String())))
}

func (g *ButtonGroup) isSelected(value string) bool {
	return slices.Contains(g.values, value)
}

func (g *ButtonGroup) selectedIndex() int {
	return slices.IndexFunc(g.options, func(o Option) bool { return g.isSelected(o.Value) })
}

// keyName normalizes a key string to the names analytics reports use.
func keyName(k string) string {
	switch k {
	case "enter":
		return "Enter"
	case "space":
		return "Space"
	case "left", "h":
		return "ArrowLeft"
	case "right", "l":
		return "ArrowRight"
	case "home":
		return "Home"
	case "end":
		return "End"
	default:
		return k
	}
}
