package form

import tea "charm.land/bubbletea/v2"

// Field is the interface implemented by every inspector row.
type Field interface {
	Update(msg tea.Msg) (Field, tea.Cmd)
	View() string
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Value() any    // current bound value
	Label() string // Display label for the field
}

// Mounter is implemented by fields that hold resources for as long as they are
// on screen. Mount and Unmount are each effective at most once per cycle.
type Mounter interface {
	Mount()
	Unmount()
}

// Clicker is implemented by fields that accept pointer input. x and y are
// relative to the top-left corner of the field's rendered view.
type Clicker interface {
	Click(x, y int) bool
}
