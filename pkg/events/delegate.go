package events

import (
	"reflect"
	"sync"
)

// PropagationPhase identifies where an event is in its traversal of the
// delegate tree.
type PropagationPhase int

const (
	// PhaseCapture is the root-to-target descent.
	PhaseCapture PropagationPhase = iota
	// PhaseTarget is delivery at the originating delegate.
	PhaseTarget
	// PhaseBubble is the target-to-root ascent.
	PhaseBubble
)

func (p PropagationPhase) String() string {
	switch p {
	case PhaseCapture:
		return "capture"
	case PhaseTarget:
		return "target"
	case PhaseBubble:
		return "bubble"
	}
	return "unknown"
}

// Propagation carries traversal state for one dispatched event. Handlers
// receive it and may stop further delivery or flag the default action as
// prevented.
type Propagation struct {
	phase            PropagationPhase
	stopped          bool
	defaultPrevented bool
	targetID         uint64
	currentID        uint64
}

// Phase reports the current propagation phase.
func (p *Propagation) Phase() PropagationPhase { return p.phase }

// TargetID reports the node the event was dispatched at.
func (p *Propagation) TargetID() uint64 { return p.targetID }

// CurrentID reports the node whose handlers are currently running.
func (p *Propagation) CurrentID() uint64 { return p.currentID }

// StopPropagation halts delivery after the current handler returns.
func (p *Propagation) StopPropagation() { p.stopped = true }

// PreventDefault flags the default action as prevented. The runtime does not
// interpret this; it is advisory state for whatever drives the tree.
func (p *Propagation) PreventDefault() { p.defaultPrevented = true }

// Stopped reports whether propagation has been stopped.
func (p *Propagation) Stopped() bool { return p.stopped }

// DefaultPrevented reports whether a handler prevented the default action.
func (p *Propagation) DefaultPrevented() bool { return p.defaultPrevented }

type delegateHandler struct {
	id int
	fn func(any, *Propagation)
}

// Delegate is a node's position in the event-propagation tree. The delegate
// tree mirrors the composition tree: the parent pointer is a non-owning
// back-reference used only for bubbling, and children are held for the
// capture descent. A delegate never outlives its node.
type Delegate struct {
	mu       sync.RWMutex
	nodeID   uint64
	parent   *Delegate
	children []*Delegate
	nextID   int
	capture  map[reflect.Type][]delegateHandler
	target   map[reflect.Type][]delegateHandler
	bubble   map[reflect.Type][]delegateHandler
}

// NewDelegate creates a delegate owned by the node with the given id.
func NewDelegate(nodeID uint64) *Delegate {
	return &Delegate{
		nodeID:  nodeID,
		capture: make(map[reflect.Type][]delegateHandler),
		target:  make(map[reflect.Type][]delegateHandler),
		bubble:  make(map[reflect.Type][]delegateHandler),
	}
}

// NodeID reports the id of the owning node.
func (d *Delegate) NodeID() uint64 {
	return d.nodeID
}

// SetParent records the parent delegate for bubbling. The reference is
// non-owning; the parent must not be freed while this delegate is reachable.
func (d *Delegate) SetParent(parent *Delegate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.parent = parent
}

// Parent returns the parent delegate, or nil at the propagation root.
func (d *Delegate) Parent() *Delegate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.parent
}

// AddChild records a child delegate for the capture descent.
func (d *Delegate) AddChild(child *Delegate) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.children = append(d.children, child)
}

// Children returns a copy of the child delegate list.
func (d *Delegate) Children() []*Delegate {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]*Delegate, len(d.children))
	copy(out, d.children)
	return out
}

// OnCapture registers a handler for events of type E during the capture
// phase. Returns an unsubscribe function.
func OnCapture[E any](d *Delegate, handler func(E, *Propagation)) func() {
	return d.register(&d.capture, typedHandler(handler))
}

// OnTarget registers a handler invoked only when this delegate's node is the
// dispatch target. Returns an unsubscribe function.
func OnTarget[E any](d *Delegate, handler func(E, *Propagation)) func() {
	return d.register(&d.target, typedHandler(handler))
}

// OnBubble registers a handler for events of type E during the bubble phase.
// Returns an unsubscribe function.
func OnBubble[E any](d *Delegate, handler func(E, *Propagation)) func() {
	return d.register(&d.bubble, typedHandler(handler))
}

type typedEntry struct {
	eventType reflect.Type
	fn        func(any, *Propagation)
}

func typedHandler[E any](handler func(E, *Propagation)) typedEntry {
	return typedEntry{
		eventType: reflect.TypeOf((*E)(nil)).Elem(),
		fn: func(event any, prop *Propagation) {
			if typed, ok := event.(E); ok {
				handler(typed, prop)
			}
		},
	}
}

func (d *Delegate) register(table *map[reflect.Type][]delegateHandler, entry typedEntry) func() {
	d.mu.Lock()
	d.nextID++
	id := d.nextID
	(*table)[entry.eventType] = append((*table)[entry.eventType], delegateHandler{id: id, fn: entry.fn})
	d.mu.Unlock()

	return func() {
		d.mu.Lock()
		defer d.mu.Unlock()
		handlers := (*table)[entry.eventType]
		for i, h := range handlers {
			if h.id == id {
				(*table)[entry.eventType] = append(handlers[:i:i], handlers[i+1:]...)
				return
			}
		}
	}
}

// Dispatch propagates the event through the delegate chain with this
// delegate's node as the target. Capture handlers run from the propagation
// root down to the target, target handlers run at the target, and bubble
// handlers run from the target back up to the root. A handler calling
// StopPropagation halts all further delivery.
func (d *Delegate) Dispatch(event any, targetID uint64) *Propagation {
	prop := &Propagation{targetID: targetID}
	if event == nil {
		return prop
	}

	// Path from target up to the propagation root.
	path := []*Delegate{d}
	for parent := d.Parent(); parent != nil; parent = parent.Parent() {
		path = append(path, parent)
	}

	prop.phase = PhaseCapture
	for i := len(path) - 1; i >= 0; i-- {
		prop.currentID = path[i].nodeID
		path[i].invoke(path[i].capture, event, prop)
		if prop.stopped {
			return prop
		}
	}

	prop.phase = PhaseTarget
	prop.currentID = d.nodeID
	d.invoke(d.target, event, prop)
	if prop.stopped {
		return prop
	}

	prop.phase = PhaseBubble
	for _, current := range path {
		prop.currentID = current.nodeID
		current.invoke(current.bubble, event, prop)
		if prop.stopped {
			return prop
		}
	}
	return prop
}

func (d *Delegate) invoke(table map[reflect.Type][]delegateHandler, event any, prop *Propagation) {
	d.mu.RLock()
	handlers := table[reflect.TypeOf(event)]
	snapshot := make([]delegateHandler, len(handlers))
	copy(snapshot, handlers)
	d.mu.RUnlock()

	for _, h := range snapshot {
		h.fn(event, prop)
		if prop.stopped {
			return
		}
	}
}
