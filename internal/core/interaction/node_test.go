package interaction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNode_Path(t *testing.T) {
	root := NewNode("inspector", nil)
	row := NewNode("textAlign", root)
	widget := NewNode("button-group", row)

	assert.Equal(t, "inspector/textAlign/button-group", widget.Path())
	assert.Equal(t, "inspector", root.Path())
	assert.Same(t, row, widget.Parent())

	var nilNode *Node
	assert.Empty(t, nilNode.Path())
	assert.Empty(t, nilNode.Name())
}

func TestNode_Dispatch_bubbles_to_ancestors(t *testing.T) {
	root := NewNode("root", nil)
	child := NewNode("child", root)

	var order []string
	root.Listen(func(*Signal) { order = append(order, "root") })
	child.Listen(func(*Signal) { order = append(order, "child") })

	child.Dispatch(Keypress(ComponentButtonGroup, "Enter"))

	assert.Equal(t, []string{"child", "root"}, order)
}

func TestNode_Dispatch_stop_propagation(t *testing.T) {
	root := NewNode("root", nil)
	child := NewNode("child", root)

	rootCalls := 0
	siblingCalls := 0
	root.Listen(func(*Signal) { rootCalls++ })
	child.Listen(func(s *Signal) { s.StopPropagation() })
	child.Listen(func(*Signal) { siblingCalls++ })

	sig := Keypress(ComponentButtonGroup, "Enter")
	child.Dispatch(sig)

	assert.True(t, sig.Stopped())
	assert.Equal(t, 1, siblingCalls, "handlers on the same node still run")
	assert.Equal(t, 0, rootCalls)
}

func TestSubscription_Close(t *testing.T) {
	n := NewNode("n", nil)

	calls := 0
	sub := n.Listen(func(*Signal) { calls++ })
	require.NotNil(t, sub)
	assert.Equal(t, 1, n.ListenerCount())

	sub.Close()
	sub.Close()
	assert.Equal(t, 0, n.ListenerCount())

	n.Dispatch(NewSignal(ComponentOther, KindClick, Meta{}))
	assert.Equal(t, 0, calls)
}

func TestSubscription_Close_only_removes_own_handler(t *testing.T) {
	n := NewNode("n", nil)

	a, b := 0, 0
	subA := n.Listen(func(*Signal) { a++ })
	n.Listen(func(*Signal) { b++ })

	subA.Close()
	n.Dispatch(Keypress(ComponentOther, "x"))

	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)
}

func TestNilGuards(t *testing.T) {
	var n *Node
	sub := n.Listen(func(*Signal) {})
	assert.Nil(t, sub)
	assert.NotPanics(t, func() { sub.Close() })
	assert.NotPanics(t, func() { n.Dispatch(Keypress(ComponentOther, "x")) })
	assert.Equal(t, 0, n.ListenerCount())

	node := NewNode("real", nil)
	assert.Nil(t, node.Listen(nil))
	assert.NotPanics(t, func() { node.Dispatch(nil) })
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ButtonGroup", ComponentButtonGroup.String())
	assert.Equal(t, "Unknown", Component(99).String())
	assert.Equal(t, "KEYPRESS", KindKeypress.String())
	assert.Equal(t, "CLICK", KindClick.String())
	assert.Equal(t, "UNKNOWN", Kind(42).String())
}
