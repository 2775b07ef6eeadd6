// Package property holds the values of the entity being edited in the
// inspector and the bindings property controls commit through.
package property

import (
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/colonyops/inspector/internal/core/logging"
	"github.com/colonyops/inspector/pkg/kv"
)

// DefaultGroupWindow is the window in which consecutive keyboard edits of the
// same property collapse into a single undo step.
const DefaultGroupWindow = time.Second

// Change describes a single update of a property value. An empty value means
// the property is absent.
type Change struct {
	Property    string
	Old         string
	New         string
	ViaKeyboard bool
	At          time.Time
}

// ChangeFunc is called after every applied change, including undo and redo.
type ChangeFunc func(Change)

// Entity is the edited entity: a flat set of string property values plus an
// undo history.
type Entity struct {
	name   string
	values *kv.Store[string, string]
	logger zerolog.Logger

	// GroupWindow controls keyboard edit grouping. Zero disables grouping.
	GroupWindow time.Duration
	now         func() time.Time

	mu        sync.Mutex
	undo      []Change
	redo      []Change
	listeners []ChangeFunc
}

// NewEntity creates an entity with the given initial values.
func NewEntity(name string, values map[string]string) *Entity {
	store := kv.New[string, string]()
	for k, v := range values {
		if v != "" {
			store.Set(k, v)
		}
	}

	return &Entity{
		name:        name,
		values:      store,
		logger:      logging.Component("property").With().Str("entity", name).Logger(),
		GroupWindow: DefaultGroupWindow,
		now:         time.Now,
	}
}

// Name returns the entity name.
func (e *Entity) Name() string { return e.name }

// Value returns the current value of a property, or "" when absent.
func (e *Entity) Value(name string) string {
	v, _ := e.values.Get(name)
	return v
}

// Values returns a copy of all present property values.
func (e *Entity) Values() map[string]string {
	return e.values.Snapshot()
}

// OnChange registers fn to be called after every applied change.
func (e *Entity) OnChange(fn ChangeFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

// Update sets a property value. It is the commit entry point used by
// bindings. Setting "" removes the property. Returns false when the value did
// not change, in which case nothing is recorded.
func (e *Entity) Update(name, value string, viaKeyboard bool) bool {
	old := e.set(name, value)
	if old == value {
		return false
	}

	c := Change{
		Property:    name,
		Old:         old,
		New:         value,
		ViaKeyboard: viaKeyboard,
		At:          e.now(),
	}

	e.mu.Lock()
	e.record(c)
	e.redo = nil
	e.mu.Unlock()

	e.logger.Debug().
		Str("property", name).
		Str("old", old).
		Str("new", value).
		Bool("keyboard", viaKeyboard).
		Msg("property updated")

	e.notify(c)
	return true
}

// record pushes c onto the undo stack, merging it into the previous step when
// both are keyboard edits of the same property inside the group window.
func (e *Entity) record(c Change) {
	if n := len(e.undo); n > 0 && e.GroupWindow > 0 && c.ViaKeyboard {
		last := &e.undo[n-1]
		if last.ViaKeyboard && last.Property == c.Property && c.At.Sub(last.At) <= e.GroupWindow {
			last.New = c.New
			last.At = c.At
			if last.Old == last.New {
				e.undo = e.undo[:n-1]
			}
			return
		}
	}
	e.undo = append(e.undo, c)
}

// Undo reverts the most recent undo step. Returns false if there is nothing
// to undo.
func (e *Entity) Undo() bool {
	e.mu.Lock()
	n := len(e.undo)
	if n == 0 {
		e.mu.Unlock()
		return false
	}
	step := e.undo[n-1]
	e.undo = e.undo[:n-1]
	e.redo = append(e.redo, step)
	e.mu.Unlock()

	current := e.set(step.Property, step.Old)
	e.notify(Change{Property: step.Property, Old: current, New: step.Old, At: e.now()})
	return true
}

// Redo reapplies the most recently undone step. Returns false if there is
// nothing to redo.
func (e *Entity) Redo() bool {
	e.mu.Lock()
	n := len(e.redo)
	if n == 0 {
		e.mu.Unlock()
		return false
	}
	step := e.redo[n-1]
	e.redo = e.redo[:n-1]
	e.undo = append(e.undo, step)
	e.mu.Unlock()

	current := e.set(step.Property, step.New)
	e.notify(Change{Property: step.Property, Old: current, New: step.New, At: e.now()})
	return true
}

// CanUndo reports whether an undo step is available.
func (e *Entity) CanUndo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.undo) > 0
}

// CanRedo reports whether a redo step is available.
func (e *Entity) CanRedo() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.redo) > 0
}

// Bind returns the host binding for a single property.
func (e *Entity) Bind(name, defaultValue string) *Binding {
	return &Binding{entity: e, name: name, def: defaultValue}
}

func (e *Entity) set(name, value string) string {
	if value == "" {
		old, _ := e.values.Delete(name)
		return old
	}
	old, _ := e.values.Set(name, value)
	return old
}

func (e *Entity) notify(c Change) {
	e.mu.Lock()
	fns := make([]ChangeFunc, len(e.listeners))
	copy(fns, e.listeners)
	e.mu.Unlock()

	for _, fn := range fns {
		fn(c)
	}
}
