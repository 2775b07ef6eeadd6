package form

import (
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"

	"github.com/colonyops/inspector/internal/core/styles"
)

// RawField shows a property value the property's control cannot display,
// such as a value outside the control's option set. It is read-only.
type RawField struct {
	label   string
	value   func() string
	focused bool
}

// NewRawField creates a raw row reading its value from value.
func NewRawField(label string, value func() string) *RawField {
	return &RawField{label: label, value: value}
}

func (f *RawField) Update(tea.Msg) (Field, tea.Cmd) { return f, nil }

func (f *RawField) View() string {
	titleStyle := styles.FormTitleBlurredStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}

	v := f.value()
	body := styles.RawValueStyle.Render(v)
	if v == "" {
		body = styles.TextMutedStyle.Render("(unset)")
	}

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(f.label),
		body,
	))
}

func (f *RawField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *RawField) Blur()         { f.focused = false }
func (f *RawField) Focused() bool { return f.focused }
func (f *RawField) Value() any    { return f.value() }
func (f *RawField) Label() string { return f.label }
