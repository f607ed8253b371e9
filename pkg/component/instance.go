package component

import (
	"reflect"
	"sync"

	"github.com/glintui/glint/pkg/errors"
)

// Instance owns one live component together with its current erased props.
// The node holding the instance is its sole owner; the runtime reaches the
// component only through the instance's lock, so lifecycle dispatch and
// concurrent inspection stay serialized.
//
// The instance records the component and props type keys at construction and
// rejects any update whose incoming props type disagrees. The check is
// deliberately redundant with the erasure adapter's: the instance is the
// boundary that callers holding partial static type information go through.
type Instance struct {
	mu            sync.Mutex
	inner         AnyComponent
	props         Props
	componentType reflect.Type
	propsType     reflect.Type
}

// NewInstance wraps a strongly-typed component with its initial props.
func NewInstance[P any, C Component[P]](c C, initial P) *Instance {
	return &Instance{
		inner:         Erase[P](c),
		props:         NewProps(initial),
		componentType: reflect.TypeOf(c),
		propsType:     reflect.TypeOf((*P)(nil)).Elem(),
	}
}

// newInstanceFromErased wraps an already-erased component. The registry uses
// this after constructing through a factory entry.
func newInstanceFromErased(c AnyComponent, props Props, componentType reflect.Type) *Instance {
	return &Instance{
		inner:         c,
		props:         props.Clone(),
		componentType: componentType,
		propsType:     c.PropsType(),
	}
}

// ComponentType reports the recorded component type key.
func (inst *Instance) ComponentType() reflect.Type { return inst.componentType }

// PropsType reports the props type the component declares.
func (inst *Instance) PropsType() reflect.Type { return inst.propsType }

// Props returns the current erased props.
func (inst *Instance) Props() Props {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.props
}

// Unwrap returns the underlying strongly-typed component. Callers must not
// invoke lifecycle hooks on it directly; go through the instance instead.
func (inst *Instance) Unwrap() any {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	return inst.inner.Unwrap()
}

// withComponent runs fn with the instance lock held. A panic inside fn is
// recovered into an error so the instance stays usable; the Go analog of a
// poisoned lock surfaces as a value, not an abort.
func (inst *Instance) withComponent(op string, fn func(AnyComponent) error) (err error) {
	inst.mu.Lock()
	defer inst.mu.Unlock()
	defer errors.RecoverToError(op, &err)
	return fn(inst.inner)
}

// Initialize runs the component's initialize hook.
func (inst *Instance) Initialize() error {
	return inst.withComponent("component.Instance.Initialize", func(c AnyComponent) error {
		return c.Initialize()
	})
}

// Mount runs the component's mount hook.
func (inst *Instance) Mount() error {
	return inst.withComponent("component.Instance.Mount", func(c AnyComponent) error {
		return c.Mount()
	})
}

// UpdateProps applies new erased props: the props type is verified against
// the recorded key, BeforeUpdate may veto, then the cloned props are
// committed and forwarded to the component's Update, followed by
// AfterUpdate. A veto or mismatch leaves the stored props untouched.
func (inst *Instance) UpdateProps(next Props) error {
	incoming := propsTypeOf(next)
	if incoming != inst.propsType {
		got := "<nil>"
		if next != nil {
			got = next.TypeName()
		}
		return &errors.PropsMismatchError{Expected: inst.propsType.String(), Got: got}
	}
	return inst.withComponent("component.Instance.UpdateProps", func(c AnyComponent) error {
		if err := c.BeforeUpdate(next); err != nil {
			return err
		}
		inst.props = next.Clone()
		if err := c.UpdateProps(next); err != nil {
			return err
		}
		return c.AfterUpdate()
	})
}

// Update applies a strongly-typed props value. It exists for callers that do
// have static type information and applies identical validation.
func Update[P any](inst *Instance, next P) error {
	if reflect.TypeOf((*P)(nil)).Elem() != inst.propsType {
		return &errors.PropsMismatchError{
			Expected: inst.propsType.String(),
			Got:      typeName[P](),
		}
	}
	return inst.UpdateProps(NewProps(next))
}

// BeforeUnmount runs the component's before-unmount hook.
func (inst *Instance) BeforeUnmount() error {
	return inst.withComponent("component.Instance.BeforeUnmount", func(c AnyComponent) error {
		return c.BeforeUnmount()
	})
}

// Unmount runs the component's unmount hook.
func (inst *Instance) Unmount() error {
	return inst.withComponent("component.Instance.Unmount", func(c AnyComponent) error {
		return c.Unmount()
	})
}

// Render returns the component's child descriptors.
func (inst *Instance) Render() (children []*Node, err error) {
	err = inst.withComponent("component.Instance.Render", func(c AnyComponent) error {
		var renderErr error
		children, renderErr = c.Render()
		return renderErr
	})
	return children, err
}
