// Package state provides the type-keyed state container consumed by
// component contexts.
//
// A Container holds one value slot per concrete Go type. Create returns a
// typed State handle over a slot; Set replaces the slot's value and notifies
// subscribers registered for that type. The container is safe for concurrent
// use and is the "state-container factory" capability a Context exposes to
// components.
package state

import (
	"reflect"
	"sync"
)

type subscriber struct {
	id int
	fn func()
}

// Container stores state values keyed by their concrete type.
type Container struct {
	mu          sync.Mutex
	nextID      int
	values      map[reflect.Type]any
	subscribers map[reflect.Type][]subscriber
}

// NewContainer creates an empty state container.
func NewContainer() *Container {
	return &Container{
		values:      make(map[reflect.Type]any),
		subscribers: make(map[reflect.Type][]subscriber),
	}
}

// State is a typed handle to one slot in a Container.
type State[T any] struct {
	container *Container
	key       reflect.Type
}

// Create stores the initial value for type T and returns a typed handle.
// Creating a second state of the same type replaces the stored value.
func Create[T any](c *Container, initial T) *State[T] {
	key := reflect.TypeOf((*T)(nil)).Elem()
	c.mu.Lock()
	c.values[key] = initial
	c.mu.Unlock()
	return &State[T]{container: c, key: key}
}

// Get returns the current value.
func (s *State[T]) Get() T {
	s.container.mu.Lock()
	value := s.container.values[s.key]
	s.container.mu.Unlock()

	typed, _ := value.(T)
	return typed
}

// Set replaces the current value and notifies subscribers for type T.
// Subscribers run after the lock is released, in registration order.
func (s *State[T]) Set(value T) {
	s.container.mu.Lock()
	s.container.values[s.key] = value
	subs := s.container.subscribers[s.key]
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	s.container.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn()
	}
}

// Update applies fn to the current value and stores the result.
func (s *State[T]) Update(fn func(T) T) {
	s.container.mu.Lock()
	current, _ := s.container.values[s.key].(T)
	next := fn(current)
	s.container.values[s.key] = next
	subs := s.container.subscribers[s.key]
	snapshot := make([]subscriber, len(subs))
	copy(snapshot, subs)
	s.container.mu.Unlock()

	for _, sub := range snapshot {
		sub.fn()
	}
}

// Subscribe registers fn to run whenever the value for type T changes.
// Returns an unsubscribe function.
func Subscribe[T any](c *Container, fn func()) func() {
	key := reflect.TypeOf((*T)(nil)).Elem()

	c.mu.Lock()
	c.nextID++
	id := c.nextID
	c.subscribers[key] = append(c.subscribers[key], subscriber{id: id, fn: fn})
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		subs := c.subscribers[key]
		for i, sub := range subs {
			if sub.id == id {
				c.subscribers[key] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}
