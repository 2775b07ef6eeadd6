package form

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/inspector/pkg/tuitest"
)

// stubField is a minimal Field that counts mounts and forwarded messages.
type stubField struct {
	label    string
	focused  bool
	mounts   int
	unmounts int
	updates  int
	lines    int
}

func (f *stubField) Update(tea.Msg) (Field, tea.Cmd) {
	f.updates++
	return f, nil
}

func (f *stubField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *stubField) View() string {
	v := f.label
	for i := 1; i < f.lines; i++ {
		v += "\n" + f.label
	}
	return v
}

func (f *stubField) Blur()         { f.focused = false }
func (f *stubField) Focused() bool { return f.focused }
func (f *stubField) Value() any    { return f.label }
func (f *stubField) Label() string { return f.label }
func (f *stubField) Mount()        { f.mounts++ }
func (f *stubField) Unmount()      { f.unmounts++ }
func (f *stubField) mounted() bool { return f.mounts > f.unmounts }

func newStubStack(n int) (*Stack, []*stubField) {
	stubs := make([]*stubField, n)
	fields := make([]Field, n)
	keys := make([]string, n)
	for i := range n {
		stubs[i] = &stubField{label: string(rune('a' + i)), lines: 2}
		fields[i] = stubs[i]
		keys[i] = stubs[i].label
	}
	return NewStack(fields, keys), stubs
}

func TestStack_mounts_and_focuses_first(t *testing.T) {
	s, stubs := newStubStack(3)

	for _, f := range stubs {
		assert.True(t, f.mounted())
	}
	assert.True(t, stubs[0].focused)
	assert.Equal(t, 0, s.FocusedIndex())
	assert.Same(t, stubs[0], s.Focused())
}

func TestStack_focus_cycling(t *testing.T) {
	s, stubs := newStubStack(3)

	s.Update(tuitest.KeyTab())
	assert.Equal(t, 1, s.FocusedIndex())
	assert.False(t, stubs[0].focused)
	assert.True(t, stubs[1].focused)

	s.Update(tuitest.KeyTab())
	s.Update(tuitest.KeyTab())
	assert.Equal(t, 0, s.FocusedIndex(), "tab wraps to the first field")

	s.Update(tuitest.KeyShiftTab())
	assert.Equal(t, 2, s.FocusedIndex(), "shift+tab wraps to the last field")
}

func TestStack_forwards_to_focused_field(t *testing.T) {
	s, stubs := newStubStack(2)

	s.Update(tuitest.KeyEnter())
	s.Update(tuitest.KeyPress('x'))

	assert.Equal(t, 2, stubs[0].updates)
	assert.Zero(t, stubs[1].updates)
}

func TestStack_Replace(t *testing.T) {
	s, stubs := newStubStack(2)
	next := &stubField{label: "z", lines: 1}

	s.Replace(0, next)

	assert.False(t, stubs[0].mounted())
	assert.False(t, stubs[0].focused)
	assert.True(t, next.mounted())
	assert.True(t, next.focused, "focus carries over")
	assert.Same(t, next, s.Field(0))
	assert.Equal(t, "a", s.Key(0))

	other := &stubField{label: "y"}
	s.Replace(1, other)
	assert.False(t, other.focused)
}

func TestStack_Close(t *testing.T) {
	s, stubs := newStubStack(2)

	s.Close()
	s.Close()

	for _, f := range stubs {
		assert.Equal(t, 1, f.unmounts)
		assert.False(t, f.mounted())
	}

	late := &stubField{label: "z"}
	s.Replace(0, late)
	assert.Zero(t, late.mounts, "closed stack does not mount replacements")
}

func TestStack_FieldAt(t *testing.T) {
	s, _ := newStubStack(2)

	// a: lines 0-1, blank: 2, b: lines 3-4
	tests := []struct {
		line    int
		wantIdx int
		wantRel int
		wantOK  bool
	}{
		{0, 0, 0, true},
		{1, 0, 1, true},
		{2, 0, 0, false},
		{3, 1, 0, true},
		{4, 1, 1, true},
		{5, 0, 0, false},
	}

	for _, tt := range tests {
		idx, rel, ok := s.FieldAt(tt.line)
		require.Equal(t, tt.wantOK, ok, "line %d", tt.line)
		if ok {
			assert.Equal(t, tt.wantIdx, idx, "line %d", tt.line)
			assert.Equal(t, tt.wantRel, rel, "line %d", tt.line)
		}
	}
}

func TestStack_Values(t *testing.T) {
	s, _ := newStubStack(2)
	assert.Equal(t, map[string]any{"a": "a", "b": "b"}, s.Values())
	assert.Equal(t, 2, s.Len())
}

func TestStack_empty(t *testing.T) {
	s := NewStack(nil, nil)
	assert.Nil(t, s.Focused())
	assert.NotPanics(t, func() {
		s.Update(tuitest.KeyTab())
		s.Update(tuitest.KeyEnter())
	})
}

func TestRawField(t *testing.T) {
	value := "justify"
	f := NewRawField("Text align", func() string { return value })

	view := tuitest.StripANSI(f.View())
	assert.Contains(t, view, "Text align")
	assert.Contains(t, view, "justify")
	assert.Equal(t, "justify", f.Value())

	value = ""
	assert.Contains(t, tuitest.StripANSI(f.View()), "(unset)")

	f.Focus()
	assert.True(t, f.Focused())
	f.Blur()
	assert.False(t, f.Focused())
}
