package component

import (
	"reflect"
	"sync"

	"github.com/glintui/glint/pkg/errors"
)

type factoryFunc func(Props, *Context) (AnyComponent, error)

type registryEntry struct {
	name          string
	componentType reflect.Type
	propsType     reflect.Type
	construct     factoryFunc
}

// Registry maps component type keys to factories. It is populated once at
// startup per component type and read thereafter; its lifetime matches the
// hosting application or context. Registering a type twice silently replaces
// the prior factory.
type Registry struct {
	mu     sync.RWMutex
	byType map[reflect.Type]*registryEntry
	byName map[string]*registryEntry
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]*registryEntry),
		byName: make(map[string]*registryEntry),
	}
}

// TypeKey reports the registry key for component type C.
func TypeKey[C any]() reflect.Type {
	return reflect.TypeOf((*C)(nil)).Elem()
}

// Register installs a factory for component type C under the given name.
// The name is a secondary index used by declarative documents; the primary
// key is C's reflect type. Last write wins for both.
func Register[P any, C Component[P]](r *Registry, name string, factory func(P, *Context) C) {
	componentType := TypeKey[C]()
	propsType := reflect.TypeOf((*P)(nil)).Elem()

	entry := &registryEntry{
		name:          name,
		componentType: componentType,
		propsType:     propsType,
		construct: func(props Props, ctx *Context) (AnyComponent, error) {
			typed, ok := As[P](props)
			if !ok {
				got := "<nil>"
				if props != nil {
					got = props.TypeName()
				}
				return nil, &errors.PropsMismatchError{Expected: propsType.String(), Got: got}
			}
			return Erase[P](factory(typed, ctx)), nil
		},
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if prior, ok := r.byType[componentType]; ok && prior.name != name {
		delete(r.byName, prior.name)
	}
	r.byType[componentType] = entry
	r.byName[name] = entry
}

// CreateInstance constructs a wrapped instance for the component registered
// under the given type key. The erased props are downcast to the registered
// props type; a mismatch fails without constructing anything.
func (r *Registry) CreateInstance(key reflect.Type, props Props, ctx *Context) (*Instance, error) {
	r.mu.RLock()
	entry := r.byType[key]
	r.mu.RUnlock()

	if entry == nil {
		name := "<nil>"
		if key != nil {
			name = key.String()
		}
		return nil, &errors.TypeNotFoundError{Key: name}
	}
	return entry.instantiate(props, ctx)
}

// CreateByName is CreateInstance keyed by registered name.
func (r *Registry) CreateByName(name string, props Props, ctx *Context) (*Instance, error) {
	r.mu.RLock()
	entry := r.byName[name]
	r.mu.RUnlock()

	if entry == nil {
		return nil, &errors.TypeNotFoundError{Key: name}
	}
	return entry.instantiate(props, ctx)
}

func (e *registryEntry) instantiate(props Props, ctx *Context) (*Instance, error) {
	c, err := e.construct(props, ctx)
	if err != nil {
		return nil, err
	}
	return newInstanceFromErased(c, props, e.componentType), nil
}

// CreateTyped constructs a component for callers with full static type
// information, going through the same erased factory and validation, then
// downcasting the result back to C. A downcast failure means the registry
// holds a factory that produces a different type than it was registered
// under; that is a programming error, not a recoverable condition.
func CreateTyped[P any, C Component[P]](r *Registry, props P, ctx *Context) (C, error) {
	var zero C
	key := TypeKey[C]()

	r.mu.RLock()
	entry := r.byType[key]
	r.mu.RUnlock()

	if entry == nil {
		return zero, &errors.TypeNotFoundError{Key: key.String()}
	}

	c, err := entry.construct(NewProps(props), ctx)
	if err != nil {
		return zero, err
	}
	typed, ok := c.Unwrap().(C)
	if !ok {
		return zero, &errors.DowncastError{
			Expected: key.String(),
			Got:      reflect.TypeOf(c.Unwrap()).String(),
		}
	}
	return typed, nil
}

// PropsTypeFor reports the registered props type for a component name.
// Blueprint building uses it to decode document props into a fresh value.
func (r *Registry) PropsTypeFor(name string) (reflect.Type, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry := r.byName[name]
	if entry == nil {
		return nil, false
	}
	return entry.propsType, true
}
