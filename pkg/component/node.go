package component

import (
	"sync"
	"sync/atomic"

	"github.com/glintui/glint/pkg/events"
)

// nodeIDs assigns process-unique node identifiers. Identifiers increase
// monotonically and are never reused within a process lifetime.
var nodeIDs atomic.Uint64

// Node is a position in the UI composition tree. A node owns zero or one
// component instance and an ordered sequence of children; child order defines
// render and propagation order. Each node carries an event delegate that
// mirrors its position in the tree.
type Node struct {
	mu         sync.Mutex
	id         uint64
	component  *Instance
	attributes map[string]string
	children   []*Node
	delegate   *events.Delegate
}

// NewNode creates a node owning the given instance. Pass nil for a node with
// no component (a plain element).
func NewNode(instance *Instance) *Node {
	id := nodeIDs.Add(1)
	return &Node{
		id:         id,
		component:  instance,
		attributes: make(map[string]string),
		delegate:   events.NewDelegate(id),
	}
}

// ID reports the node's process-unique identifier.
func (n *Node) ID() uint64 { return n.id }

// Component returns the owned instance, or nil.
func (n *Node) Component() *Instance { return n.component }

// Delegate returns the node's event delegate.
func (n *Node) Delegate() *events.Delegate { return n.delegate }

// AddChild appends child to the node's child sequence and wires the
// delegation link in both directions: the child's delegate records the
// parent's as a non-owning back-reference, and the parent's delegate records
// the child's for the capture descent.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	child.delegate.SetParent(n.delegate)
	n.delegate.AddChild(child.delegate)
	n.children = append(n.children, child)
}

// Children returns a copy of the ordered child list.
func (n *Node) Children() []*Node {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// SetAttribute stores an attribute value.
func (n *Node) SetAttribute(key, value string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.attributes[key] = value
}

// Attribute looks up an attribute value.
func (n *Node) Attribute(key string) (string, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	value, ok := n.attributes[key]
	return value, ok
}

// Attributes returns a copy of the attribute map.
func (n *Node) Attributes() map[string]string {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make(map[string]string, len(n.attributes))
	for k, v := range n.attributes {
		out[k] = v
	}
	return out
}

// Dispatch propagates an event through the delegation chain with this node
// as the target.
func (n *Node) Dispatch(event any) *events.Propagation {
	return n.delegate.Dispatch(event, n.id)
}

// Walk visits the node and its descendants depth-first in child order.
// Returning false from visit stops the walk.
func (n *Node) Walk(visit func(*Node) bool) bool {
	if !visit(n) {
		return false
	}
	for _, child := range n.Children() {
		if !child.Walk(visit) {
			return false
		}
	}
	return true
}
