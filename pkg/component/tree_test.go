package component

import (
	"errors"
	"reflect"
	"testing"

	glinterrors "github.com/glintui/glint/pkg/errors"
)

func newTestTree(t *testing.T) *Tree {
	t.Helper()
	r := NewRegistry()
	Register(r, "counter", newTestCounter)
	Register(r, "label", newTestLabel)
	return NewTree(r, NewContext())
}

func TestTreeNewNode(t *testing.T) {
	tree := newTestTree(t)

	node, err := tree.NewNode(TypeKey[*testCounter](), NewProps(counterProps{Start: 4}), map[string]string{"role": "counter"})
	if err != nil {
		t.Fatalf("NewNode: %v", err)
	}
	if got, _ := node.Attribute("role"); got != "counter" {
		t.Errorf("attribute role = %q", got)
	}

	manager := tree.ManagerFor(node.ID())
	if manager == nil {
		t.Fatal("no manager recorded for created node")
	}
	counter := manager.Instance().Unwrap().(*testCounter)
	if counter.initCalls != 1 {
		t.Errorf("initCalls = %d, want 1", counter.initCalls)
	}
	if counter.count != 4 {
		t.Errorf("count = %d, want 4", counter.count)
	}
}

func TestTreeNewNodeByName(t *testing.T) {
	tree := newTestTree(t)

	node, err := tree.NewNodeByName("label", NewProps(labelProps{Text: "hi"}), nil)
	if err != nil {
		t.Fatalf("NewNodeByName: %v", err)
	}
	if node.Component().Unwrap().(*testLabel).text != "hi" {
		t.Error("label text not set from props")
	}

	_, err = tree.NewNodeByName("missing", NewProps(labelProps{}), nil)
	var notFound *glinterrors.TypeNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TypeNotFoundError, got %v", err)
	}
	if notFound.Key != "missing" {
		t.Errorf("error key %q", notFound.Key)
	}
}

func buildThreeNodeTree(t *testing.T, tree *Tree) (root, mid, leaf *Node) {
	t.Helper()
	var err error
	root, err = tree.NewNodeByName("counter", NewProps(counterProps{Start: 1}), nil)
	if err != nil {
		t.Fatal(err)
	}
	mid, err = tree.NewNodeByName("counter", NewProps(counterProps{Start: 2}), nil)
	if err != nil {
		t.Fatal(err)
	}
	leaf, err = tree.NewNodeByName("counter", NewProps(counterProps{Start: 3}), nil)
	if err != nil {
		t.Fatal(err)
	}
	root.AddChild(mid)
	mid.AddChild(leaf)
	tree.SetRoot(root)
	return root, mid, leaf
}

func TestTreeMountAllParentsFirst(t *testing.T) {
	tree := newTestTree(t)
	root, mid, leaf := buildThreeNodeTree(t, tree)

	if err := tree.MountAll(); err != nil {
		t.Fatalf("MountAll: %v", err)
	}
	for _, n := range []*Node{root, mid, leaf} {
		if phase := tree.ManagerFor(n.ID()).Phase(); phase != PhaseMounted {
			t.Errorf("node %d phase %v, want Mounted", n.ID(), phase)
		}
	}
	// Parent-first ordering is observable through mount counters sharing the
	// walk: the root's component must have mounted before the leaf's.
	rootCounter := root.Component().Unwrap().(*testCounter)
	leafCounter := leaf.Component().Unwrap().(*testCounter)
	if rootCounter.mountCalls != 1 || leafCounter.mountCalls != 1 {
		t.Errorf("mountCalls root=%d leaf=%d, want 1 each", rootCounter.mountCalls, leafCounter.mountCalls)
	}
}

func TestTreeMountAllStopsOnFailure(t *testing.T) {
	tree := newTestTree(t)
	root, mid, leaf := buildThreeNodeTree(t, tree)

	mid.Component().Unwrap().(*testCounter).failMount = true

	if err := tree.MountAll(); !errors.Is(err, errFailedMount) {
		t.Fatalf("MountAll error = %v", err)
	}
	if phase := tree.ManagerFor(root.ID()).Phase(); phase != PhaseMounted {
		t.Errorf("root phase %v, want Mounted", phase)
	}
	if phase := tree.ManagerFor(mid.ID()).Phase(); phase != PhaseCreated {
		t.Errorf("mid phase %v, want Created after failed mount", phase)
	}
	if phase := tree.ManagerFor(leaf.ID()).Phase(); phase != PhaseCreated {
		t.Errorf("leaf phase %v, want Created (walk stopped)", phase)
	}
}

func TestTreeUnmountAllChildrenFirst(t *testing.T) {
	tree := newTestTree(t)
	root, mid, leaf := buildThreeNodeTree(t, tree)
	if err := tree.MountAll(); err != nil {
		t.Fatal(err)
	}

	// The hook receives the component being unmounted; the counters were
	// seeded 1, 2, 3 from root to leaf.
	var unmountOrder []int
	tree.ManagerFor(root.ID()).Context().OnUnmount(func(c AnyComponent) error {
		unmountOrder = append(unmountOrder, c.Unwrap().(*testCounter).count)
		return nil
	})
	if err := tree.UnmountAll(); err != nil {
		t.Fatalf("UnmountAll: %v", err)
	}
	for _, n := range []*Node{leaf, mid, root} {
		if phase := tree.ManagerFor(n.ID()).Phase(); phase != PhaseUnmounted {
			t.Errorf("node %d phase %v, want Unmounted", n.ID(), phase)
		}
	}
	if root.Component().Unwrap().(*testCounter).unmountCalls != 1 {
		t.Error("root component not unmounted exactly once")
	}
	if want := []int{3, 2, 1}; !reflect.DeepEqual(unmountOrder, want) {
		t.Errorf("unmount order %v, want %v", unmountOrder, want)
	}
}

func TestTreeUpdateAndRenderByID(t *testing.T) {
	tree := newTestTree(t)
	node, err := tree.NewNodeByName("counter", NewProps(counterProps{Start: 0}), nil)
	if err != nil {
		t.Fatal(err)
	}
	tree.SetRoot(node)
	if err := tree.MountAll(); err != nil {
		t.Fatal(err)
	}

	if err := tree.Update(node.ID(), NewProps(counterProps{Start: 5})); err != nil {
		t.Fatalf("Update: %v", err)
	}
	children, err := tree.Render(node.ID())
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got, _ := children[0].Attribute("count"); got != "5" {
		t.Errorf("rendered count = %q, want 5", got)
	}

	// A mismatched update fails and leaves the stored props intact.
	err = tree.Update(node.ID(), NewProps(labelProps{Text: "no"}))
	var mismatch *glinterrors.PropsMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected PropsMismatchError, got %v", err)
	}
	children, err = tree.Render(node.ID())
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := children[0].Attribute("count"); got != "5" {
		t.Errorf("count after failed update = %q, want 5", got)
	}
}

func TestTreeUnknownNode(t *testing.T) {
	tree := newTestTree(t)

	var notFound *glinterrors.TypeNotFoundError
	if err := tree.Update(999, NewProps(counterProps{})); !errors.As(err, &notFound) {
		t.Errorf("Update unknown node: %v", err)
	}
	if _, err := tree.Render(999); !errors.As(err, &notFound) {
		t.Errorf("Render unknown node: %v", err)
	}
}

func TestTreeMismatchedPropsCreateNothing(t *testing.T) {
	tree := newTestTree(t)

	_, err := tree.NewNode(TypeKey[*testCounter](), NewProps(labelProps{Text: "x"}), nil)
	var mismatch *glinterrors.PropsMismatchError
	if !errors.As(err, &mismatch) {
		t.Fatalf("expected PropsMismatchError, got %v", err)
	}
	if mismatch.Expected == "" || mismatch.Got == "" || mismatch.Expected == mismatch.Got {
		t.Errorf("mismatch should carry both identities: %q vs %q", mismatch.Expected, mismatch.Got)
	}
}
