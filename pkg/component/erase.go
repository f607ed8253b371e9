package component

import (
	"reflect"

	"github.com/glintui/glint/pkg/errors"
)

// AnyComponent is the type-erased, runtime-facing view of a component. The
// tree and lifecycle layers drive arbitrary mixes of component types through
// this interface without knowing their concrete types.
//
// The two props-bearing hooks take erased Props and verify the concrete type
// at the boundary: feeding a component props of the wrong shape fails with a
// props-mismatch error carrying both type identities. Static typing is never
// trusted across the erasure boundary.
type AnyComponent interface {
	Initialize() error
	Mount() error
	// BeforeUpdate downcasts next to the component's props type and forwards
	// it read-only. A downcast failure is a props-mismatch error.
	BeforeUpdate(next Props) error
	// UpdateProps downcasts next to the component's props type and applies
	// it. A downcast failure is a props-mismatch error.
	UpdateProps(next Props) error
	AfterUpdate() error
	BeforeUnmount() error
	Unmount() error
	Render() ([]*Node, error)

	// PropsType reports the concrete props type the component declares.
	PropsType() reflect.Type
	// Unwrap returns the underlying strongly-typed component.
	Unwrap() any
}

// Erase adapts a strongly-typed component to the runtime-facing interface.
// Every concrete component gains the erased view through this one adapter;
// authors never implement AnyComponent directly.
func Erase[P any](c Component[P]) AnyComponent {
	return &erased[P]{inner: c}
}

type erased[P any] struct {
	inner Component[P]
}

func (e *erased[P]) Initialize() error { return e.inner.Initialize() }
func (e *erased[P]) Mount() error      { return e.inner.Mount() }

func (e *erased[P]) BeforeUpdate(next Props) error {
	typed, ok := As[P](next)
	if !ok {
		return e.mismatch(next)
	}
	return e.inner.BeforeUpdate(typed)
}

func (e *erased[P]) UpdateProps(next Props) error {
	typed, ok := As[P](next)
	if !ok {
		return e.mismatch(next)
	}
	return e.inner.Update(typed)
}

func (e *erased[P]) AfterUpdate() error       { return e.inner.AfterUpdate() }
func (e *erased[P]) BeforeUnmount() error     { return e.inner.BeforeUnmount() }
func (e *erased[P]) Unmount() error           { return e.inner.Unmount() }
func (e *erased[P]) Render() ([]*Node, error) { return e.inner.Render() }

func (e *erased[P]) PropsType() reflect.Type {
	return reflect.TypeOf((*P)(nil)).Elem()
}

func (e *erased[P]) Unwrap() any {
	return e.inner
}

func (e *erased[P]) mismatch(next Props) error {
	got := "<nil>"
	if next != nil {
		got = next.TypeName()
	}
	return &errors.PropsMismatchError{Expected: typeName[P](), Got: got}
}
