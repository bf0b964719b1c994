package ktree

import (
	"github.com/pkg/errors"
)

// BeginPreOrder returns an iterator over the values of t, each node before its children,
// and children from first to last.
func (t *Tree[T]) BeginPreOrder() Iterator[T] {
	return newStackIterator(t.root)
}

// BeginPostOrder returns an iterator over the values of t, each node after its children,
// and children from first to last.
func (t *Tree[T]) BeginPostOrder() Iterator[T] {
	return newListIterator(t.root, postOrder[*Node[T]])
}

// BeginInOrder returns an iterator over the values of t in in-order.
// For each node this is the subtree of its first child, then the node itself,
// then the subtrees of its remaining children in order.
// For a binary tree this is the usual left, node, right order.
func (t *Tree[T]) BeginInOrder() Iterator[T] {
	return newListIterator(t.root, inOrder[*Node[T]])
}

// BeginBFS returns an iterator over the values of t level by level, from first to last within each level.
func (t *Tree[T]) BeginBFS() Iterator[T] {
	it := &queueIterator[T]{}
	if t.root != nil {
		it.queue = append(it.queue, t.root)
	}
	return it
}

// BeginDFS returns an iterator over the values of t depth first, exploring the first child first.
// The order is the same as [Tree.BeginPreOrder].
func (t *Tree[T]) BeginDFS() Iterator[T] {
	return newStackIterator(t.root)
}

func exhausted[T any]() (T, error) {
	var zero T
	return zero, errors.WithStack(ErrIteratorExhausted)
}

// Pops a node, then pushes its children last to first, so the first child is next.
type stackIterator[T any] struct {
	stack []*Node[T]
}

func newStackIterator[T any](root *Node[T]) *stackIterator[T] {
	it := &stackIterator[T]{}
	if root != nil {
		it.stack = append(it.stack, root)
	}
	return it
}

func (it *stackIterator[T]) HasNext() bool {
	return len(it.stack) > 0
}

func (it *stackIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	last := len(it.stack) - 1
	n := it.stack[last]
	it.stack[last] = nil
	it.stack = it.stack[:last]
	for i := len(n.children) - 1; i >= 0; i-- {
		if child := n.children[i]; child != nil {
			it.stack = append(it.stack, child)
		}
	}
	return n.value, nil
}

// Dequeues a node, then enqueues its children first to last.
type queueIterator[T any] struct {
	queue []*Node[T]
}

func (it *queueIterator[T]) HasNext() bool {
	return len(it.queue) > 0
}

func (it *queueIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	n := it.queue[0]
	it.queue[0] = nil
	it.queue = it.queue[1:]
	for _, child := range n.children {
		if child != nil {
			it.queue = append(it.queue, child)
		}
	}
	return n.value, nil
}

// The order is computed entirely when the iterator is created.
type listIterator[T any] struct {
	nodes []*Node[T]
	index int
}

func newListIterator[T any](root *Node[T], traverse traverser[*Node[T]]) *listIterator[T] {
	it := &listIterator[T]{}
	if root == nil {
		return it
	}
	for n := range traverse(root, nodeAdj[T]) {
		it.nodes = append(it.nodes, n)
	}
	return it
}

func (it *listIterator[T]) HasNext() bool {
	return it.index < len(it.nodes)
}

func (it *listIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	n := it.nodes[it.index]
	it.nodes[it.index] = nil
	it.index++
	return n.value, nil
}
