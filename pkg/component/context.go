package component

import (
	"reflect"
	"sync"

	"github.com/glintui/glint/pkg/events"
	"github.com/glintui/glint/pkg/state"
)

// Context supplies a component the collaborator capabilities it may use:
// a state-container factory, an event emitter, the lifecycle hook registry,
// and a parent-linked provider for typed shared values. The runtime treats
// all of them as opaque; components interact with them directly.
type Context struct {
	mu       sync.Mutex
	phase    Phase
	state    *state.Container
	events   *events.Emitter
	hooks    *LifecycleHooks
	provider *Provider
}

// NewContext creates a root context in the Created phase.
func NewContext() *Context {
	return &Context{
		phase:    PhaseCreated,
		state:    state.NewContainer(),
		events:   events.NewEmitter(),
		hooks:    NewLifecycleHooks(),
		provider: NewProvider(nil),
	}
}

// NewChildContext creates a context whose provider chains to the parent's,
// so values provided by ancestors remain visible. State, events, and hooks
// are fresh: those are per-component.
func NewChildContext(parent *Context) *Context {
	ctx := NewContext()
	if parent != nil {
		ctx.provider = NewProvider(parent.provider)
	}
	return ctx
}

// State returns the context's state container.
func (ctx *Context) State() *state.Container { return ctx.state }

// Events returns the context's event emitter.
func (ctx *Context) Events() *events.Emitter { return ctx.events }

// Hooks returns the context's lifecycle hook registry.
func (ctx *Context) Hooks() *LifecycleHooks { return ctx.hooks }

// Phase reports the lifecycle phase the owning component is in.
func (ctx *Context) Phase() Phase {
	ctx.mu.Lock()
	defer ctx.mu.Unlock()
	return ctx.phase
}

func (ctx *Context) setPhase(phase Phase) {
	ctx.mu.Lock()
	ctx.phase = phase
	ctx.mu.Unlock()
}

// OnMount registers fn to run when the component transitions into Mounted.
func (ctx *Context) OnMount(fn HookFunc) error {
	return ctx.hooks.On(PhaseMounted, fn)
}

// OnBeforeUpdate registers fn to run before new props are applied.
func (ctx *Context) OnBeforeUpdate(fn HookFunc) error {
	return ctx.hooks.On(PhaseBeforeUpdate, fn)
}

// OnUpdate registers fn to run after new props have been committed.
func (ctx *Context) OnUpdate(fn HookFunc) error {
	return ctx.hooks.On(PhaseUpdating, fn)
}

// OnBeforeUnmount registers fn to run before the component detaches.
func (ctx *Context) OnBeforeUnmount(fn HookFunc) error {
	return ctx.hooks.On(PhaseBeforeUnmount, fn)
}

// OnUnmount registers fn to run while the component detaches.
func (ctx *Context) OnUnmount(fn HookFunc) error {
	return ctx.hooks.On(PhaseUnmounting, fn)
}

// UseState creates typed state in the context's container.
func UseState[T any](ctx *Context, initial T) *state.State[T] {
	return state.Create(ctx.state, initial)
}

// Provider is typed, parent-linked value sharing between components. A child
// context resolves values it does not hold locally through its ancestors.
type Provider struct {
	mu     sync.RWMutex
	parent *Provider
	values map[reflect.Type]any
}

// NewProvider creates a provider with an optional parent.
func NewProvider(parent *Provider) *Provider {
	return &Provider{parent: parent, values: make(map[reflect.Type]any)}
}

// Provide stores a value in the context's own provider, shadowing any value
// of the same type provided by an ancestor.
func Provide[T any](ctx *Context, value T) {
	key := reflect.TypeOf((*T)(nil)).Elem()
	ctx.provider.mu.Lock()
	ctx.provider.values[key] = value
	ctx.provider.mu.Unlock()
}

// Shared resolves a value of type T, walking up the provider chain. The
// second return reports whether any ancestor provided one.
func Shared[T any](ctx *Context) (T, bool) {
	var zero T
	key := reflect.TypeOf((*T)(nil)).Elem()
	for p := ctx.provider; p != nil; p = p.parent {
		p.mu.RLock()
		value, ok := p.values[key]
		p.mu.RUnlock()
		if ok {
			typed, _ := value.(T)
			return typed, true
		}
	}
	return zero, false
}
