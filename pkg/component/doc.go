// Package component provides the Glint component runtime: typed component
// and props contracts, the type-erasure layer that lets heterogeneous
// component types share one tree, the lifecycle state machine, and the node
// tree with hierarchical event delegation.
//
// # Contracts
//
// A component author implements Component[P] for exactly one props type P.
// Embedding Base[P] supplies no-op defaults for every hook except Update,
// which each component must define:
//
//	type CounterProps struct {
//	    Start int
//	}
//
//	type Counter struct {
//	    component.Base[CounterProps]
//	    count int
//	}
//
//	func NewCounter(props CounterProps, ctx *component.Context) *Counter {
//	    return &Counter{count: props.Start}
//	}
//
//	func (c *Counter) Update(next CounterProps) error {
//	    c.count = next.Start
//	    return nil
//	}
//
// # Type erasure
//
// The runtime never sees concrete component types. Erase adapts a
// Component[P] to AnyComponent, the uniform runtime-facing interface; the
// two props-bearing hooks downcast incoming erased props back to P and fail
// with a props-mismatch error when the concrete type disagrees. Instance
// wraps an erased component with its current props behind a lock and checks
// the props type a second time at its own boundary.
//
// # Registry and tree
//
// A Registry maps component type keys to factories. Tree asks the registry
// to instantiate nodes from erased props, wires each node into the event
// delegation graph, and drives lifecycle transitions through a
// LifecycleManager per node. Registered lifecycle hooks run in FIFO order
// within a phase; a transition is not complete until all its hooks have run.
package component
