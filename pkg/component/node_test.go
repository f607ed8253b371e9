package component

import (
	"reflect"
	"testing"

	"github.com/glintui/glint/pkg/events"
)

type clickEvent struct {
	X, Y int
}

func TestNodeIDsAreUnique(t *testing.T) {
	seen := make(map[uint64]bool)
	var last uint64
	for i := 0; i < 100; i++ {
		n := NewNode(nil)
		if seen[n.ID()] {
			t.Fatalf("id %d reused", n.ID())
		}
		if n.ID() <= last {
			t.Fatalf("id %d not monotonic after %d", n.ID(), last)
		}
		seen[n.ID()] = true
		last = n.ID()
	}
}

func TestNodeAttributes(t *testing.T) {
	n := NewNode(nil)
	n.SetAttribute("role", "button")
	n.SetAttribute("label", "OK")

	if got, ok := n.Attribute("role"); !ok || got != "button" {
		t.Errorf("Attribute(role) = %q, %v", got, ok)
	}
	if _, ok := n.Attribute("missing"); ok {
		t.Error("missing attribute reported present")
	}

	attrs := n.Attributes()
	attrs["role"] = "mutated"
	if got, _ := n.Attribute("role"); got != "button" {
		t.Error("Attributes() must return a copy")
	}
}

func TestNodeChildrenReturnsCopy(t *testing.T) {
	parent := NewNode(nil)
	child := NewNode(nil)
	parent.AddChild(child)
	parent.AddChild(nil) // ignored

	children := parent.Children()
	if len(children) != 1 || children[0] != child {
		t.Fatalf("children = %v", children)
	}
	children[0] = nil
	if parent.Children()[0] != child {
		t.Error("Children() must return a copy")
	}
}

func TestNodeWalkDepthFirst(t *testing.T) {
	root := NewNode(nil)
	a := NewNode(nil)
	b := NewNode(nil)
	aa := NewNode(nil)
	root.AddChild(a)
	root.AddChild(b)
	a.AddChild(aa)

	var order []uint64
	root.Walk(func(n *Node) bool {
		order = append(order, n.ID())
		return true
	})
	want := []uint64{root.ID(), a.ID(), aa.ID(), b.ID()}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("walk order %v, want %v", order, want)
	}

	var visited int
	root.Walk(func(*Node) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Errorf("walk continued after stop: %d visits", visited)
	}
}

// A dispatch on a nested child runs capture handlers root-to-target, then the
// target's own handlers, then bubble handlers target-to-root.
func TestNodeDispatchPhases(t *testing.T) {
	root := NewNode(nil)
	mid := NewNode(nil)
	leaf := NewNode(nil)
	root.AddChild(mid)
	mid.AddChild(leaf)

	var order []string
	events.OnCapture(root.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "capture-root") })
	events.OnCapture(mid.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "capture-mid") })
	events.OnTarget(leaf.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "target-leaf") })
	events.OnBubble(mid.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "bubble-mid") })
	events.OnBubble(root.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "bubble-root") })

	prop := leaf.Dispatch(clickEvent{X: 1, Y: 2})
	if prop.Stopped() {
		t.Fatal("propagation stopped unexpectedly")
	}

	want := []string{"capture-root", "capture-mid", "target-leaf", "bubble-mid", "bubble-root"}
	if !reflect.DeepEqual(order, want) {
		t.Errorf("dispatch order %v, want %v", order, want)
	}
}

// Two siblings under a shared parent: dispatching on B must run B's handler
// and then the parent's bubble handler, never touching A.
func TestNodeDispatchSiblingIsolation(t *testing.T) {
	parent := NewNode(nil)
	a := NewNode(nil)
	b := NewNode(nil)
	parent.AddChild(a)
	parent.AddChild(b)

	var order []string
	events.OnTarget(a.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "a") })
	events.OnTarget(b.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "b") })
	events.OnBubble(parent.Delegate(), func(clickEvent, *events.Propagation) { order = append(order, "parent") })

	b.Dispatch(clickEvent{})
	if want := []string{"b", "parent"}; !reflect.DeepEqual(order, want) {
		t.Errorf("order %v, want %v", order, want)
	}
}

func TestNodeComponentAccess(t *testing.T) {
	c := newTestCounter(counterProps{Start: 7}, nil)
	inst := NewInstance(c, counterProps{Start: 7})
	n := NewNode(inst)
	if n.Component() != inst {
		t.Error("Component() should return the owned instance")
	}
	if NewNode(nil).Component() != nil {
		t.Error("plain node should have nil component")
	}
}
