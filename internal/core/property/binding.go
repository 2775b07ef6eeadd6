package property

// Host is the capability a property control needs from whatever owns the
// edited property: read the current value and the configured default, and
// commit a new value.
type Host interface {
	Value() string
	Default() string
	Commit(value string, viaKeyboard bool)
}

// Binding is a Host bound to one property of an Entity.
type Binding struct {
	entity *Entity
	name   string
	def    string
}

var _ Host = (*Binding)(nil)

// Name returns the bound property name.
func (b *Binding) Name() string { return b.name }

// Value returns the current value of the bound property.
func (b *Binding) Value() string { return b.entity.Value(b.name) }

// Default returns the value committed when the active option is toggled off.
func (b *Binding) Default() string { return b.def }

// Commit writes value to the bound property.
func (b *Binding) Commit(value string, viaKeyboard bool) {
	b.entity.Update(b.name, value, viaKeyboard)
}
