package component

import (
	"sync"

	"github.com/glintui/glint/pkg/errors"
)

// Phase is one discrete stage in a component's existence. Created is the
// unique initial state and Unmounted is terminal.
type Phase int

const (
	// PhaseCreated: constructed but not yet mounted.
	PhaseCreated Phase = iota
	// PhaseMounting: attachment to the live tree is in progress.
	PhaseMounting
	// PhaseMounted: fully attached and operational.
	PhaseMounted
	// PhaseBeforeUpdate: new props are being inspected.
	PhaseBeforeUpdate
	// PhaseUpdating: new props are being applied.
	PhaseUpdating
	// PhaseBeforeUnmount: detachment is about to begin.
	PhaseBeforeUnmount
	// PhaseUnmounting: detachment is in progress.
	PhaseUnmounting
	// PhaseUnmounted: detached; no further transitions are legal.
	PhaseUnmounted
)

func (p Phase) String() string {
	switch p {
	case PhaseCreated:
		return "Created"
	case PhaseMounting:
		return "Mounting"
	case PhaseMounted:
		return "Mounted"
	case PhaseBeforeUpdate:
		return "BeforeUpdate"
	case PhaseUpdating:
		return "Updating"
	case PhaseBeforeUnmount:
		return "BeforeUnmount"
	case PhaseUnmounting:
		return "Unmounting"
	case PhaseUnmounted:
		return "Unmounted"
	}
	return "Unknown"
}

// HookFunc is a lifecycle callback registered for one phase. It receives the
// erased component whose transition is executing. The runtime propagates a
// hook's error without interpreting it.
type HookFunc func(AnyComponent) error

// LifecycleHooks holds registered hook callbacks per phase. Registration is
// additive; hooks run in FIFO order within a phase. One lock guards the
// registry for the duration of an entire dispatch, so registering a hook
// from inside a running hook is rejected rather than left undefined.
type LifecycleHooks struct {
	mu    sync.Mutex
	hooks map[Phase][]HookFunc
}

// NewLifecycleHooks creates an empty hook registry.
func NewLifecycleHooks() *LifecycleHooks {
	return &LifecycleHooks{hooks: make(map[Phase][]HookFunc)}
}

// On registers fn for the given phase. It fails with a lock error when a
// dispatch currently holds the registry; registration is never silently
// dropped.
func (h *LifecycleHooks) On(phase Phase, fn HookFunc) error {
	if fn == nil {
		return nil
	}
	if !h.mu.TryLock() {
		return &errors.LockError{Op: "hook registration"}
	}
	defer h.mu.Unlock()
	h.hooks[phase] = append(h.hooks[phase], fn)
	return nil
}

// Count reports the number of hooks registered for a phase.
func (h *LifecycleHooks) Count(phase Phase) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.hooks[phase])
}

// execute runs all hooks for the phase in registration order, holding the
// registry lock until the last hook returns. The first failing hook aborts
// the rest and is wrapped with its phase and index.
func (h *LifecycleHooks) execute(phase Phase, c AnyComponent) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	for i, fn := range h.hooks[phase] {
		if err := fn(c); err != nil {
			return &errors.HookError{Phase: phase.String(), Index: i, Err: err}
		}
	}
	return nil
}

// LifecycleManager drives one Instance through the lifecycle state machine,
// executing the context's registered hooks for each phase before a
// transition is reported complete.
//
// Error policy: when a transition fails before its effect is committed, the
// phase reverts to what it was at entry and the error propagates. A hook that
// fails after the commit (a Mounted or Updating hook) is reported and
// returned but the transition stands. The runtime performs no compensation;
// a hook that failed after mutating state leaves that mutation in place.
type LifecycleManager struct {
	mu          sync.Mutex
	phase       Phase
	initialized bool
	instance    *Instance
	ctx         *Context
}

// NewLifecycleManager creates a manager in the Created phase.
func NewLifecycleManager(instance *Instance, ctx *Context) *LifecycleManager {
	return &LifecycleManager{phase: PhaseCreated, instance: instance, ctx: ctx}
}

// Phase reports the current lifecycle phase.
func (m *LifecycleManager) Phase() Phase {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.phase
}

// Instance returns the managed instance.
func (m *LifecycleManager) Instance() *Instance {
	return m.instance
}

// Context returns the component's context.
func (m *LifecycleManager) Context() *Context {
	return m.ctx
}

// Initialize runs the component's initialize hook. It is legal exactly once,
// from the Created phase; failure aborts the instantiation.
func (m *LifecycleManager) Initialize() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseCreated || m.initialized {
		return &errors.TransitionError{Phase: m.phase.String(), Op: "initialize"}
	}
	if err := m.instance.Initialize(); err != nil {
		return err
	}
	m.initialized = true
	return nil
}

// Mount attaches the component: Created -> Mounting -> Mounted. Hooks
// registered for the Mounted phase run after the component's own mount hook.
// A failing component mount reverts the phase to Created. A failing Mounted
// hook runs after the component is already attached, so the transition
// completes anyway: the error is reported and returned, and the caller
// reacts explicitly rather than the runtime un-mounting.
func (m *LifecycleManager) Mount() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseCreated {
		return &errors.TransitionError{Phase: m.phase.String(), Op: "mount"}
	}

	m.setPhase(PhaseMounting)
	if err := m.instance.Mount(); err != nil {
		m.setPhase(PhaseCreated)
		return err
	}
	err := m.runHooks(PhaseMounted)
	m.setPhase(PhaseMounted)
	if err != nil {
		reportHookFailure("component.LifecycleManager.Mount", err)
	}
	return err
}

// Update applies new erased props: Mounted -> BeforeUpdate -> Updating ->
// Mounted. Hooks for BeforeUpdate run before the component sees the incoming
// props; a veto from either aborts the update with the stored props
// untouched. Hooks for Updating run after the commit. On failure the phase
// reverts to Mounted so further updates stay possible.
func (m *LifecycleManager) Update(next Props) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseMounted {
		return &errors.TransitionError{Phase: m.phase.String(), Op: "update"}
	}

	m.setPhase(PhaseBeforeUpdate)
	if err := m.runHooks(PhaseBeforeUpdate); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}

	m.setPhase(PhaseUpdating)
	if err := m.instance.UpdateProps(next); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}
	err := m.runHooks(PhaseUpdating)
	m.setPhase(PhaseMounted)
	if err != nil {
		// The props are already committed; the hook failure is post-commit.
		reportHookFailure("component.LifecycleManager.Update", err)
	}
	return err
}

func reportHookFailure(op string, err error) {
	errors.Report(&errors.RuntimeError{Op: op, Kind: errors.KindHook, Err: err})
}

// Unmount detaches the component: Mounted -> BeforeUnmount -> Unmounting ->
// Unmounted. Unmounted is terminal.
func (m *LifecycleManager) Unmount() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseMounted {
		return &errors.TransitionError{Phase: m.phase.String(), Op: "unmount"}
	}

	m.setPhase(PhaseBeforeUnmount)
	if err := m.runHooks(PhaseBeforeUnmount); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}
	if err := m.instance.BeforeUnmount(); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}

	m.setPhase(PhaseUnmounting)
	if err := m.runHooks(PhaseUnmounting); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}
	if err := m.instance.Unmount(); err != nil {
		m.setPhase(PhaseMounted)
		return err
	}
	m.setPhase(PhaseUnmounted)
	return nil
}

// Render returns the component's children. It is legal only while Mounted.
func (m *LifecycleManager) Render() ([]*Node, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.phase != PhaseMounted {
		return nil, &errors.TransitionError{Phase: m.phase.String(), Op: "render"}
	}
	return m.instance.Render()
}

func (m *LifecycleManager) setPhase(phase Phase) {
	m.phase = phase
	if m.ctx != nil {
		m.ctx.setPhase(phase)
	}
}

func (m *LifecycleManager) runHooks(phase Phase) error {
	if m.ctx == nil {
		return nil
	}
	return m.instance.withComponent("component.LifecycleHooks.execute", func(c AnyComponent) error {
		return m.ctx.hooks.execute(phase, c)
	})
}
