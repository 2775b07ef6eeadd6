package interaction

import (
	"strings"
	"sync"
)

// Handler receives signals dispatched on, or bubbled through, a node.
type Handler func(*Signal)

// Node is a point in the interaction tree. Widgets dispatch on their own node
// and signals bubble toward the root.
type Node struct {
	name   string
	parent *Node

	mu       sync.Mutex
	handlers []registration
	nextID   uint64
}

type registration struct {
	id uint64
	fn Handler
}

// NewNode creates a node. parent may be nil for a root.
func NewNode(name string, parent *Node) *Node {
	return &Node{name: name, parent: parent}
}

// Name returns the node name.
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

// Parent returns the parent node, or nil for a root.
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

// Path returns the slash-joined names from the root to n.
func (n *Node) Path() string {
	if n == nil {
		return ""
	}

	var parts []string
	for cur := n; cur != nil; cur = cur.parent {
		parts = append(parts, cur.name)
	}

	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return strings.Join(parts, "/")
}

// Listen registers fn on the node. The returned subscription is the only way
// to remove it. Listening on a nil node is a no-op and returns nil.
func (n *Node) Listen(fn Handler) *Subscription {
	if n == nil || fn == nil {
		return nil
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextID++
	id := n.nextID
	n.handlers = append(n.handlers, registration{id: id, fn: fn})

	return &Subscription{node: n, id: id}
}

// ListenerCount returns the number of handlers currently registered on n.
func (n *Node) ListenerCount() int {
	if n == nil {
		return 0
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.handlers)
}

// Dispatch delivers sig to the handlers of n in registration order, then to
// each ancestor in turn until a handler stops propagation.
func (n *Node) Dispatch(sig *Signal) {
	if sig == nil {
		return
	}

	for cur := n; cur != nil; cur = cur.parent {
		for _, fn := range cur.snapshot() {
			fn(sig)
		}
		if sig.Stopped() {
			return
		}
	}
}

func (n *Node) snapshot() []Handler {
	n.mu.Lock()
	defer n.mu.Unlock()

	fns := make([]Handler, len(n.handlers))
	for i, r := range n.handlers {
		fns[i] = r.fn
	}
	return fns
}

func (n *Node) remove(id uint64) {
	n.mu.Lock()
	defer n.mu.Unlock()

	for i, r := range n.handlers {
		if r.id == id {
			n.handlers = append(n.handlers[:i], n.handlers[i+1:]...)
			return
		}
	}
}

// Subscription is an owned listener registration.
type Subscription struct {
	node *Node
	id   uint64
	once sync.Once
}

// Close removes the listener. It is safe to call more than once and on a nil
// subscription.
func (s *Subscription) Close() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.node.remove(s.id)
	})
}
