package component

import "reflect"

// Props is the erased view of a component's configuration value. A props
// value is immutable per update cycle: it is replaced wholesale on update,
// never patched in place.
//
// Any cloneable value type works as props without boilerplate; wrap it with
// NewProps. Keep props to plain value types (structs of scalars, strings,
// small slices treated as immutable) so Clone's copy semantics hold.
type Props interface {
	// TypeName reports the concrete props type for diagnostics.
	TypeName() string
	// Clone returns an owned duplicate behind the same erased interface.
	Clone() Props
	// Value returns the underlying concrete value for downcasting.
	Value() any
}

type propsValue struct {
	v any
}

func (p propsValue) TypeName() string {
	if p.v == nil {
		return "<nil>"
	}
	return reflect.TypeOf(p.v).String()
}

func (p propsValue) Clone() Props {
	return propsValue{v: p.v}
}

func (p propsValue) Value() any {
	return p.v
}

// NewProps wraps a concrete props value behind the erased interface.
func NewProps[T any](value T) Props {
	return propsValue{v: value}
}

// FromValue wraps an already-erased value, such as props decoded from a
// blueprint document. The value's dynamic type is its type identity.
func FromValue(value any) Props {
	return propsValue{v: value}
}

// As recovers the concrete props type from an erased value. The second
// return reports whether the downcast succeeded.
func As[P any](p Props) (P, bool) {
	var zero P
	if p == nil {
		return zero, false
	}
	typed, ok := p.Value().(P)
	if !ok {
		return zero, false
	}
	return typed, true
}

// propsTypeOf reports the dynamic type of the boxed value, or nil.
func propsTypeOf(p Props) reflect.Type {
	if p == nil {
		return nil
	}
	return reflect.TypeOf(p.Value())
}

// typeName reports the reflect name of T for diagnostics.
func typeName[T any]() string {
	return reflect.TypeOf((*T)(nil)).Elem().String()
}
