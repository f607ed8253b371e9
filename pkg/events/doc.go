// Package events provides typed event dispatch for the Glint runtime.
//
// Two mechanisms live here. Emitter is a flat publish/subscribe surface:
// handlers subscribe to a concrete event type and receive every emitted
// value of that type. Delegate is the hierarchical counterpart: delegates
// mirror the composition tree and propagate a dispatched event through the
// DOM-style capture, target, and bubble phases.
//
// Events are plain Go values. A handler is matched by the event's concrete
// type, so no marker interface is required:
//
//	unsubscribe := events.On(emitter, func(e ClickEvent) {
//	    // ...
//	})
//	emitter.Emit(ClickEvent{X: 10, Y: 20})
package events
