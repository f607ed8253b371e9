package component

// Component is the strongly-typed contract a component author implements,
// parameterized over exactly one props type P. Construction happens through
// a factory func(P, *Context) C supplied at registration; it must be pure
// apart from registering state slots.
//
// Every hook reports failure through its error return rather than aborting.
// A failing hook leaves the tree in a consistent (if degraded) state; the
// runtime propagates the error and the caller decides whether to retry,
// skip, or give up.
type Component[P any] interface {
	// Initialize is called exactly once, immediately after construction and
	// before mount. Failure aborts the instantiation.
	Initialize() error

	// Mount is called when the component is first attached to the live tree.
	Mount() error

	// BeforeUpdate inspects the incoming, not-yet-applied props. Returning
	// an error vetoes the update: Update will not run.
	BeforeUpdate(next P) error

	// Update applies new props. This is the only hook without a default
	// no-op; every component must define how it reacts to new input.
	Update(next P) error

	// AfterUpdate runs once Update has committed.
	AfterUpdate() error

	// BeforeUnmount runs before the component is detached.
	BeforeUnmount() error

	// Unmount runs when the component is removed from the tree.
	Unmount() error

	// Render returns child descriptors as a pure function of current state.
	// It must not mutate state.
	Render() ([]*Node, error)
}

// Base provides no-op defaults for every Component hook except Update.
// Embed it in a component struct to keep the implementation to the hooks the
// component actually cares about:
//
//	type Label struct {
//	    component.Base[LabelProps]
//	    text string
//	}
type Base[P any] struct{}

func (Base[P]) Initialize() error        { return nil }
func (Base[P]) Mount() error             { return nil }
func (Base[P]) BeforeUpdate(P) error     { return nil }
func (Base[P]) AfterUpdate() error       { return nil }
func (Base[P]) BeforeUnmount() error     { return nil }
func (Base[P]) Unmount() error           { return nil }
func (Base[P]) Render() ([]*Node, error) { return nil, nil }
