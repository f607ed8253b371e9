// Package errors provides structured error handling for the Glint runtime.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindTypeNotFound indicates a registry lookup by type key failed.
	KindTypeNotFound
	// KindPropsMismatch indicates an erased props value did not match the
	// component's declared props type.
	KindPropsMismatch
	// KindDowncast indicates a typed convenience path failed to recover the
	// concrete type after construction.
	KindDowncast
	// KindLock indicates exclusive access could not be acquired.
	KindLock
	// KindTransition indicates an illegal lifecycle transition.
	KindTransition
	// KindHook indicates a lifecycle hook returned an error.
	KindHook
	// KindPanic indicates a recovered panic.
	KindPanic
	// KindBlueprint indicates a blueprint document error.
	KindBlueprint
)

func (k ErrorKind) String() string {
	switch k {
	case KindTypeNotFound:
		return "type-not-found"
	case KindPropsMismatch:
		return "props-mismatch"
	case KindDowncast:
		return "downcast"
	case KindLock:
		return "lock"
	case KindTransition:
		return "transition"
	case KindHook:
		return "hook"
	case KindPanic:
		return "panic"
	case KindBlueprint:
		return "blueprint"
	default:
		return "unknown"
	}
}

// RuntimeError represents a structured error in the Glint runtime.
type RuntimeError struct {
	// Op is the operation that failed (e.g., "component.Registry.CreateInstance").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *RuntimeError) Unwrap() error {
	return e.Err
}

// TypeNotFoundError reports a registry lookup for an unregistered component
// type key.
type TypeNotFoundError struct {
	// Key is the component type key that was requested.
	Key string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("component type %q not registered", e.Key)
}

// PropsMismatchError reports an erased props value whose concrete type
// disagrees with the type a component declared. It carries both identities
// so callers can diagnose which side is wrong.
type PropsMismatchError struct {
	// Expected is the props type the component declared.
	Expected string
	// Got is the concrete type of the incoming props value.
	Got string
}

func (e *PropsMismatchError) Error() string {
	return fmt.Sprintf("props type mismatch: expected %s, got %s", e.Expected, e.Got)
}

// DowncastError reports a failure to recover a concrete component type after
// constructing it through the registry. This indicates a registry/factory
// mismatch and is a programming error, not a recoverable runtime condition.
type DowncastError struct {
	// Expected is the concrete type the caller asked for.
	Expected string
	// Got is the dynamic type the factory produced.
	Got string
}

func (e *DowncastError) Error() string {
	return fmt.Sprintf("downcast failed: expected %s, factory produced %s", e.Expected, e.Got)
}

// LockError reports that a required exclusive-access lock could not be
// acquired, for example because hook registration was attempted while a
// dispatch holds the hook registry for the whole transition.
type LockError struct {
	// Op is the operation that needed the lock.
	Op string
}

func (e *LockError) Error() string {
	return fmt.Sprintf("lock unavailable during %s", e.Op)
}

// TransitionError reports an operation attempted from a lifecycle phase that
// does not permit it.
type TransitionError struct {
	// Phase is the phase the component was in.
	Phase string
	// Op is the attempted operation (e.g., "mount", "update").
	Op string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("cannot %s while in %s phase", e.Op, e.Phase)
}

// HookError wraps an error returned by a registered lifecycle hook. The
// runtime does not interpret hook errors beyond propagating them.
type HookError struct {
	// Phase is the lifecycle phase whose hooks were executing.
	Phase string
	// Index is the registration-order index of the failing hook.
	Index int
	// Err is the hook's error.
	Err error
}

func (e *HookError) Error() string {
	return fmt.Sprintf("hook %d for phase %s failed: %v", e.Index, e.Phase, e.Err)
}

func (e *HookError) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "component.Instance.UpdateProps").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// BlueprintError reports a declarative document that cannot be parsed or
// built. Path locates the offending node within the document.
type BlueprintError struct {
	// Path is the document location, e.g. "root.children[1]".
	Path string
	// Reason describes what is wrong with the document.
	Reason string
	// Err is the underlying error, if any.
	Err error
}

func (e *BlueprintError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("blueprint %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("blueprint %s: %s", e.Path, e.Reason)
}

func (e *BlueprintError) Unwrap() error {
	return e.Err
}

// ErrorHandler receives errors reported by the Glint runtime.
type ErrorHandler interface {
	// HandleError is called when an error is reported.
	HandleError(err *RuntimeError)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
