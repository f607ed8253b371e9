package events

import (
	"reflect"
	"testing"
)

// buildChain wires root -> middle -> leaf the way component nodes do.
func buildChain() (root, middle, leaf *Delegate) {
	root = NewDelegate(1)
	middle = NewDelegate(2)
	leaf = NewDelegate(3)

	middle.SetParent(root)
	root.AddChild(middle)
	leaf.SetParent(middle)
	middle.AddChild(leaf)
	return root, middle, leaf
}

func TestBubbleVisitsTargetThenAncestors(t *testing.T) {
	_, _, leaf := buildChain()
	root, middle := leaf.Parent().Parent(), leaf.Parent()

	var visited []uint64
	record := func(e clickEvent, p *Propagation) {
		visited = append(visited, p.CurrentID())
	}
	OnBubble(leaf, record)
	OnBubble(middle, record)
	OnBubble(root, record)

	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	want := []uint64{3, 2, 1}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("bubble order %v, want %v", visited, want)
	}
}

func TestCaptureVisitsRootThenDescendants(t *testing.T) {
	root, middle, leaf := buildChain()

	var visited []uint64
	record := func(e clickEvent, p *Propagation) {
		visited = append(visited, p.CurrentID())
	}
	OnCapture(root, record)
	OnCapture(middle, record)
	OnCapture(leaf, record)

	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	want := []uint64{1, 2, 3}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("capture order %v, want %v", visited, want)
	}
}

func TestPhaseOrderingAcrossOneDispatch(t *testing.T) {
	root, _, leaf := buildChain()

	var phases []PropagationPhase
	OnCapture(root, func(e clickEvent, p *Propagation) { phases = append(phases, p.Phase()) })
	OnTarget(leaf, func(e clickEvent, p *Propagation) { phases = append(phases, p.Phase()) })
	OnBubble(root, func(e clickEvent, p *Propagation) { phases = append(phases, p.Phase()) })

	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	want := []PropagationPhase{PhaseCapture, PhaseTarget, PhaseBubble}
	if !reflect.DeepEqual(phases, want) {
		t.Errorf("phase order %v, want %v", phases, want)
	}
}

func TestTargetHandlersOnlyFireAtTarget(t *testing.T) {
	_, middle, leaf := buildChain()

	middleCalls := 0
	OnTarget(middle, func(e clickEvent, p *Propagation) { middleCalls++ })
	leafCalls := 0
	OnTarget(leaf, func(e clickEvent, p *Propagation) { leafCalls++ })

	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	if middleCalls != 0 {
		t.Errorf("middle target handler fired %d times for a leaf dispatch", middleCalls)
	}
	if leafCalls != 1 {
		t.Errorf("leaf target handler fired %d times, want 1", leafCalls)
	}
}

func TestStopPropagationHaltsBubble(t *testing.T) {
	root, middle, leaf := buildChain()

	var visited []uint64
	OnBubble(leaf, func(e clickEvent, p *Propagation) {
		visited = append(visited, p.CurrentID())
	})
	OnBubble(middle, func(e clickEvent, p *Propagation) {
		visited = append(visited, p.CurrentID())
		p.StopPropagation()
	})
	OnBubble(root, func(e clickEvent, p *Propagation) {
		visited = append(visited, p.CurrentID())
	})

	prop := leaf.Dispatch(clickEvent{}, leaf.NodeID())

	want := []uint64{3, 2}
	if !reflect.DeepEqual(visited, want) {
		t.Errorf("bubble visited %v, want %v", visited, want)
	}
	if !prop.Stopped() {
		t.Error("propagation should report stopped")
	}
}

func TestStopPropagationDuringCaptureSkipsTarget(t *testing.T) {
	root, _, leaf := buildChain()

	OnCapture(root, func(e clickEvent, p *Propagation) { p.StopPropagation() })
	targetCalls := 0
	OnTarget(leaf, func(e clickEvent, p *Propagation) { targetCalls++ })

	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	if targetCalls != 0 {
		t.Errorf("target handler ran %d times after capture stopped propagation", targetCalls)
	}
}

func TestHandlersMatchedByConcreteType(t *testing.T) {
	_, _, leaf := buildChain()

	clicks, keys := 0, 0
	OnBubble(leaf, func(e clickEvent, p *Propagation) { clicks++ })
	OnBubble(leaf, func(e keyEvent, p *Propagation) { keys++ })

	leaf.Dispatch(keyEvent{Code: "Enter"}, leaf.NodeID())

	if clicks != 0 || keys != 1 {
		t.Errorf("got clicks=%d keys=%d, want clicks=0 keys=1", clicks, keys)
	}
}

func TestPreventDefaultIsAdvisory(t *testing.T) {
	_, _, leaf := buildChain()

	OnBubble(leaf, func(e clickEvent, p *Propagation) { p.PreventDefault() })
	prop := leaf.Dispatch(clickEvent{}, leaf.NodeID())

	if !prop.DefaultPrevented() {
		t.Error("expected default-prevented flag")
	}
	if prop.Stopped() {
		t.Error("prevent default must not stop propagation")
	}
}

func TestDelegateWithNoParentIsPropagationRoot(t *testing.T) {
	solo := NewDelegate(9)
	calls := 0
	OnBubble(solo, func(e clickEvent, p *Propagation) { calls++ })
	OnTarget(solo, func(e clickEvent, p *Propagation) { calls++ })

	prop := solo.Dispatch(clickEvent{}, solo.NodeID())

	if calls != 2 {
		t.Errorf("expected target and bubble handlers to run, got %d calls", calls)
	}
	if prop.TargetID() != 9 {
		t.Errorf("target id %d, want 9", prop.TargetID())
	}
}

func TestDelegateUnsubscribe(t *testing.T) {
	_, _, leaf := buildChain()
	calls := 0
	unsubscribe := OnBubble(leaf, func(e clickEvent, p *Propagation) { calls++ })

	leaf.Dispatch(clickEvent{}, leaf.NodeID())
	unsubscribe()
	leaf.Dispatch(clickEvent{}, leaf.NodeID())

	if calls != 1 {
		t.Errorf("expected 1 call after unsubscribe, got %d", calls)
	}
}
