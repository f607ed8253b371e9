package events

import (
	"reflect"
	"sync"
)

type subscription struct {
	id int
	fn func(any)
}

// Emitter delivers events to handlers registered for the event's concrete
// type. It is safe for concurrent use.
type Emitter struct {
	mu       sync.RWMutex
	nextID   int
	handlers map[reflect.Type][]subscription
}

// NewEmitter creates an empty emitter.
func NewEmitter() *Emitter {
	return &Emitter{handlers: make(map[reflect.Type][]subscription)}
}

// On registers a handler for events of type E.
// Returns an unsubscribe function; calling it more than once is safe.
func On[E any](em *Emitter, handler func(E)) func() {
	eventType := reflect.TypeOf((*E)(nil)).Elem()

	em.mu.Lock()
	em.nextID++
	id := em.nextID
	em.handlers[eventType] = append(em.handlers[eventType], subscription{
		id: id,
		fn: func(event any) {
			if typed, ok := event.(E); ok {
				handler(typed)
			}
		},
	})
	em.mu.Unlock()

	return func() {
		em.mu.Lock()
		defer em.mu.Unlock()
		subs := em.handlers[eventType]
		for i, sub := range subs {
			if sub.id == id {
				em.handlers[eventType] = append(subs[:i:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Emit delivers the event to every handler registered for its concrete type,
// in registration order.
func (em *Emitter) Emit(event any) {
	if event == nil {
		return
	}
	em.mu.RLock()
	subs := em.handlers[reflect.TypeOf(event)]
	snapshot := make([]subscription, len(subs))
	copy(snapshot, subs)
	em.mu.RUnlock()

	for _, sub := range snapshot {
		sub.fn(event)
	}
}

// ListenerCount reports the number of handlers registered for the given
// event type.
func (em *Emitter) ListenerCount(eventType reflect.Type) int {
	em.mu.RLock()
	defer em.mu.RUnlock()
	return len(em.handlers[eventType])
}

// Clear removes all registered handlers.
func (em *Emitter) Clear() {
	em.mu.Lock()
	defer em.mu.Unlock()
	em.handlers = make(map[reflect.Type][]subscription)
}
