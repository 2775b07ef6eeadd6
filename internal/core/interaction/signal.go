// Package interaction provides the typed channel nested widgets use to report
// low-level interactions (key presses, clicks) to the controls that host them.
//
// Signals are dispatched on a Node and bubble up through its ancestors until a
// handler stops propagation, mirroring how a DOM event bubbles through the
// element tree.
package interaction

// Component identifies the widget that originated a signal.
type Component int

const (
	ComponentUnknown Component = iota
	ComponentButtonGroup
	ComponentInspector
	ComponentOther
)

func (c Component) String() string {
	switch c {
	case ComponentButtonGroup:
		return "ButtonGroup"
	case ComponentInspector:
		return "Inspector"
	case ComponentOther:
		return "Other"
	default:
		return "Unknown"
	}
}

// Kind is the type of interaction a signal describes.
type Kind int

const (
	KindKeypress Kind = iota
	KindClick
	KindFocus
)

func (k Kind) String() string {
	switch k {
	case KindKeypress:
		return "KEYPRESS"
	case KindClick:
		return "CLICK"
	case KindFocus:
		return "FOCUS"
	default:
		return "UNKNOWN"
	}
}

// Meta carries interaction details. Key is set for KindKeypress signals.
type Meta struct {
	Key string
}

// Signal is a single interaction report. It only lives for the duration of a
// Dispatch call.
type Signal struct {
	Component Component
	Kind      Kind
	Meta      Meta

	stopped bool
}

// NewSignal creates a signal ready for dispatch.
func NewSignal(component Component, kind Kind, meta Meta) *Signal {
	return &Signal{Component: component, Kind: kind, Meta: meta}
}

// Keypress is shorthand for a keypress signal from component.
func Keypress(component Component, key string) *Signal {
	return NewSignal(component, KindKeypress, Meta{Key: key})
}

// StopPropagation prevents the signal from reaching ancestor nodes. Handlers
// registered on the current node still run.
func (s *Signal) StopPropagation() { s.stopped = true }

// Stopped reports whether a handler stopped propagation.
func (s *Signal) Stopped() bool { return s.stopped }
