package component

import (
	"reflect"
	"strconv"
	"sync"

	"github.com/glintui/glint/pkg/errors"
)

// Tree composes registry-built nodes and drives their lifecycles. It keeps a
// lifecycle manager per node it created; callers needing tree-wide ordering
// beyond what MountAll and UnmountAll provide sequence transitions
// themselves through ManagerFor.
type Tree struct {
	mu       sync.Mutex
	registry *Registry
	ctx      *Context
	root     *Node
	managers map[uint64]*LifecycleManager
}

// NewTree creates a tree building against the given registry and context.
func NewTree(registry *Registry, ctx *Context) *Tree {
	return &Tree{
		registry: registry,
		ctx:      ctx,
		managers: make(map[uint64]*LifecycleManager),
	}
}

// Registry returns the registry the tree builds against.
func (t *Tree) Registry() *Registry { return t.registry }

// NewNode instantiates the component registered under the type key, runs its
// initialize hook, and wraps it in a fresh node carrying the given
// attributes. Initialization failure aborts: no node is produced and no
// manager is retained.
func (t *Tree) NewNode(key reflect.Type, props Props, attrs map[string]string) (*Node, error) {
	instance, err := t.registry.CreateInstance(key, props, t.ctx)
	if err != nil {
		return nil, err
	}
	return t.adopt(instance, attrs)
}

// NewNodeByName is NewNode keyed by registered component name.
func (t *Tree) NewNodeByName(name string, props Props, attrs map[string]string) (*Node, error) {
	instance, err := t.registry.CreateByName(name, props, t.ctx)
	if err != nil {
		return nil, err
	}
	return t.adopt(instance, attrs)
}

func (t *Tree) adopt(instance *Instance, attrs map[string]string) (*Node, error) {
	manager := NewLifecycleManager(instance, t.ctx)
	if err := manager.Initialize(); err != nil {
		return nil, err
	}
	node := NewNode(instance)
	for key, value := range attrs {
		node.SetAttribute(key, value)
	}
	t.mu.Lock()
	t.managers[node.ID()] = manager
	t.mu.Unlock()
	return node, nil
}

// SetRoot installs the root node.
func (t *Tree) SetRoot(root *Node) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.root = root
}

// Root returns the root node, or nil.
func (t *Tree) Root() *Node {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.root
}

// ManagerFor returns the lifecycle manager for a node id, or nil for nodes
// the tree did not create.
func (t *Tree) ManagerFor(id uint64) *LifecycleManager {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.managers[id]
}

// MountAll mounts every component in the tree, parents before children in
// child order. The first failure stops the walk and propagates.
func (t *Tree) MountAll() error {
	root := t.Root()
	if root == nil {
		return nil
	}
	var mountErr error
	root.Walk(func(n *Node) bool {
		if manager := t.ManagerFor(n.ID()); manager != nil {
			if err := manager.Mount(); err != nil {
				mountErr = err
				return false
			}
		}
		return true
	})
	return mountErr
}

// UnmountAll unmounts every component in the tree, children before parents.
// All nodes are attempted; the first error is reported after the walk.
func (t *Tree) UnmountAll() error {
	root := t.Root()
	if root == nil {
		return nil
	}
	var order []*Node
	root.Walk(func(n *Node) bool {
		order = append(order, n)
		return true
	})

	var unmountErr error
	for i := len(order) - 1; i >= 0; i-- {
		if manager := t.ManagerFor(order[i].ID()); manager != nil {
			if err := manager.Unmount(); err != nil && unmountErr == nil {
				unmountErr = err
			}
		}
	}
	return unmountErr
}

// Update applies new erased props to the component at the given node.
func (t *Tree) Update(id uint64, props Props) error {
	manager := t.ManagerFor(id)
	if manager == nil {
		return &errors.TypeNotFoundError{Key: "node " + nodeKey(id)}
	}
	return manager.Update(props)
}

// Render returns the child descriptors of the component at the given node.
func (t *Tree) Render(id uint64) ([]*Node, error) {
	manager := t.ManagerFor(id)
	if manager == nil {
		return nil, &errors.TypeNotFoundError{Key: "node " + nodeKey(id)}
	}
	return manager.Render()
}

func nodeKey(id uint64) string {
	return strconv.FormatUint(id, 10)
}
