package ktree

import (
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
)

// Tree is a k-ary tree, in which each node has at most k children, where k is the arity of the tree.
// The zero value is not usable, use [New].
//
// Nodes can be located either by value, using the first matching node in pre-order,
// or by a handle returned from an earlier insertion.
// Value lookup is ambiguous if values are not unique, prefer handles in that case.
type Tree[T comparable] struct {
	root   *Node[T]
	owner  *owner // nil exactly when root is nil
	arity  int
	logger hclog.Logger
}

// New returns a new empty tree.
// Without options, the tree is binary and does not log.
func New[T comparable](opts ...Option) *Tree[T] {
	c := newConfig(opts)
	return &Tree[T]{
		arity:  c.arity,
		logger: c.logger.Named("ktree"),
	}
}

// Arity returns the maximum number of children of each node in t.
func (t *Tree[T]) Arity() int {
	return t.arity
}

// Root returns the root of t, or nil if t is empty.
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Empty returns whether t has no root.
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Len returns the number of nodes in t.
func (t *Tree[T]) Len() int {
	if t.root == nil {
		return 0
	}
	count := 0
	for range preOrder(t.root, nodeAdj[T]) {
		count++
	}
	return count
}

// AddRoot replaces the contents of t with a single root node holding value, returning the new root.
// Nodes previously returned by t become stale and are no longer accepted by [Tree.AddChild].
func (t *Tree[T]) AddRoot(value T) *Node[T] {
	t.owner = &owner{}
	t.root = &Node[T]{value: value, owner: t.owner}
	t.root.ResizeChildren(t.arity)
	t.logger.Trace("added root", "value", value)
	return t.root
}

// AddSubNode adds a new node holding childValue under the first node in pre-order holding parentValue.
// Returns the new node, or an error if no node was added.
//
// Returns ErrUninitializedTree if t is empty, ErrParentNotFound if no node holds parentValue,
// or ErrCapacityExceeded if the parent already has Arity children.
func (t *Tree[T]) AddSubNode(parentValue, childValue T) (*Node[T], error) {
	return t.AddNode(parentValue, NewNode(childValue))
}

// AddNode adds a new node built from proto under the first node in pre-order holding parentValue.
// The new node holds proto's value, and proto's children are moved onto it, leaving proto with no child slots.
// Every moved node is resized to Arity slots.
// Returns the new node, or an error if no node was added, in which case neither t nor proto is changed.
//
// Returns ErrUninitializedTree if t is empty, ErrNodeAttached if proto belongs to a tree or has a parent,
// ErrParentNotFound if no node holds parentValue,
// or ErrCapacityExceeded if the parent already has Arity children or any node under proto has more than Arity.
func (t *Tree[T]) AddNode(parentValue T, proto *Node[T]) (*Node[T], error) {
	if t.root == nil {
		return nil, t.fail(errors.Wrapf(ErrUninitializedTree, "adding %v under %v", proto.value, parentValue))
	}
	if proto.owner != nil || proto.parent != nil {
		return nil, t.fail(errors.Wrapf(ErrNodeAttached, "adding %v under %v", proto.value, parentValue))
	}
	parent, ok := t.Find(parentValue)
	if !ok {
		return nil, t.fail(errors.Wrapf(ErrParentNotFound, "adding %v under %v", proto.value, parentValue))
	}
	if parent.Degree() >= t.arity {
		return nil, t.fail(errors.Wrapf(ErrCapacityExceeded, "adding %v under %v, arity %d",
			proto.value, parentValue, t.arity))
	}
	for n := range preOrder(proto, nodeAdj[T]) {
		if n.Degree() > t.arity {
			return nil, t.fail(errors.Wrapf(ErrCapacityExceeded, "moving children of %v, %d > arity %d",
				n.value, n.Degree(), t.arity))
		}
	}

	child := &Node[T]{value: proto.value, children: proto.children}
	proto.children = nil
	for _, grandchild := range child.children {
		if grandchild != nil {
			grandchild.parent = child
		}
	}
	for n := range preOrder(child, nodeAdj[T]) {
		n.owner = t.owner
		n.compact(t.arity)
	}
	if !parent.attach(child, t.arity) {
		panic("unreachable")
	}
	t.logger.Trace("added node", "parent", parentValue, "value", child.value)
	return child, nil
}

// AddChild adds a new node holding value under parent, which must be a node of t.
// Returns the new node, or an error if no node was added.
//
// Returns ErrUninitializedTree if t is empty, ErrParentNotFound if parent is not a current node of t,
// or ErrCapacityExceeded if parent already has Arity children.
func (t *Tree[T]) AddChild(parent *Node[T], value T) (*Node[T], error) {
	if t.root == nil {
		return nil, t.fail(errors.Wrapf(ErrUninitializedTree, "adding %v", value))
	}
	if parent == nil || parent.owner != t.owner {
		return nil, t.fail(errors.Wrapf(ErrParentNotFound, "adding %v under a node not in this tree", value))
	}
	if parent.Degree() >= t.arity {
		return nil, t.fail(errors.Wrapf(ErrCapacityExceeded, "adding %v under %v, arity %d",
			value, parent.value, t.arity))
	}
	child := &Node[T]{value: value, owner: t.owner}
	child.ResizeChildren(t.arity)
	if !parent.attach(child, t.arity) {
		panic("unreachable")
	}
	t.logger.Trace("added node", "parent", parent.value, "value", value)
	return child, nil
}

// Find returns the first node in pre-order holding value, and whether one was found.
func (t *Tree[T]) Find(value T) (*Node[T], bool) {
	if t.root == nil {
		return nil, false
	}
	for n := range preOrder(t.root, nodeAdj[T]) {
		if n.value == value {
			return n, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of t.
// The copy has the same shape and equal values, but shares no nodes with t.
func (t *Tree[T]) Clone() *Tree[T] {
	clone := &Tree[T]{
		arity:  t.arity,
		logger: t.logger,
	}
	if t.root != nil {
		clone.owner = &owner{}
		clone.root = cloneNode(t.root, nil, clone.owner)
	}
	return clone
}

func cloneNode[T any](n, parent *Node[T], own *owner) *Node[T] {
	clone := &Node[T]{value: n.value, parent: parent, owner: own}
	if n.children != nil {
		clone.children = make([]*Node[T], len(n.children))
		for i, child := range n.children {
			if child != nil {
				clone.children[i] = cloneNode(child, clone, own)
			}
		}
	}
	return clone
}

// Move returns a new tree holding the contents of t, leaving t empty.
// Nodes previously returned by t are nodes of the returned tree.
func (t *Tree[T]) Move() *Tree[T] {
	moved := &Tree[T]{
		root:   t.root,
		owner:  t.owner,
		arity:  t.arity,
		logger: t.logger,
	}
	t.root = nil
	t.owner = nil
	return moved
}

func (t *Tree[T]) fail(err error) error {
	t.logger.Debug("insert failed", "error", err)
	return err
}
