package form

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
)

// Stack is a vertical list of fields with focus cycling. It owns the mount
// lifecycle of its fields: fields are mounted when added and unmounted when
// replaced or when the stack is closed.
type Stack struct {
	fields       []Field
	keys         []string // parallel slice: property name for each field
	focusedField int
	closed       bool
}

// NewStack creates a stack with the given fields and keys, mounts every field
// and focuses the first one.
func NewStack(fields []Field, keys []string) *Stack {
	s := &Stack{fields: fields, keys: keys}
	for _, f := range fields {
		mount(f)
	}
	if len(fields) > 0 {
		fields[0].Focus()
	}
	return s
}

// Update handles focus cycling and forwards everything else to the focused
// field.
func (s *Stack) Update(msg tea.Msg) (*Stack, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyMsg.String() {
		case "tab", "down":
			return s, s.moveFocus(1)
		case "shift+tab", "up":
			return s, s.moveFocus(-1)
		}
	}

	return s.updateFocusedField(msg)
}

// View renders all fields vertically separated by blank lines.
func (s *Stack) View() string {
	parts := make([]string, 0, len(s.fields)*2)
	for i, field := range s.fields {
		if i > 0 {
			parts = append(parts, "")
		}
		parts = append(parts, field.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// Values returns a map of keys to field values.
func (s *Stack) Values() map[string]any {
	result := make(map[string]any, len(s.fields))
	for i, field := range s.fields {
		result[s.keys[i]] = field.Value()
	}
	return result
}

// Len returns the number of fields.
func (s *Stack) Len() int { return len(s.fields) }

// Field returns the field at index i.
func (s *Stack) Field(i int) Field { return s.fields[i] }

// Key returns the key of the field at index i.
func (s *Stack) Key(i int) string { return s.keys[i] }

// FocusedIndex returns the index of the focused field.
func (s *Stack) FocusedIndex() int { return s.focusedField }

// Focused returns the focused field, or nil for an empty stack.
func (s *Stack) Focused() Field {
	if len(s.fields) == 0 {
		return nil
	}
	return s.fields[s.focusedField]
}

// Replace swaps the field at index i. The old field is unmounted, the new one
// mounted, and focus carries over.
func (s *Stack) Replace(i int, f Field) {
	old := s.fields[i]
	wasFocused := old.Focused()
	old.Blur()
	unmount(old)

	s.fields[i] = f
	if !s.closed {
		mount(f)
	}
	if wasFocused {
		f.Focus()
	}
}

// Close unmounts every field. It is safe to call more than once.
func (s *Stack) Close() {
	if s.closed {
		return
	}
	s.closed = true
	for _, f := range s.fields {
		unmount(f)
	}
}

// FieldAt maps a line of the rendered view to the field drawn there and the
// line relative to that field's top.
func (s *Stack) FieldAt(line int) (int, int, bool) {
	top := 0
	for i, f := range s.fields {
		if i > 0 {
			top++ // blank separator
		}
		h := strings.Count(f.View(), "\n") + 1
		if line >= top && line < top+h {
			return i, line - top, true
		}
		top += h
	}
	return 0, 0, false
}

// FocusIndex moves focus to the field at index i.
func (s *Stack) FocusIndex(i int) tea.Cmd {
	if i < 0 || i >= len(s.fields) || i == s.focusedField {
		return nil
	}
	s.fields[s.focusedField].Blur()
	s.focusedField = i
	return s.fields[i].Focus()
}

func (s *Stack) moveFocus(delta int) tea.Cmd {
	n := len(s.fields)
	if n == 0 {
		return nil
	}
	return s.FocusIndex((s.focusedField + delta + n) % n)
}

func (s *Stack) updateFocusedField(msg tea.Msg) (*Stack, tea.Cmd) {
	if len(s.fields) == 0 {
		return s, nil
	}

	var cmd tea.Cmd
	s.fields[s.focusedField], cmd = s.fields[s.focusedField].Update(msg)
	return s, cmd
}

func mount(f Field) {
	if m, ok := f.(Mounter); ok {
		m.Mount()
	}
}

func unmount(f Field) {
	if m, ok := f.(Mounter); ok {
		m.Unmount()
	}
}
