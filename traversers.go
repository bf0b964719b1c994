package ktree

import (
	"iter"
)

// An adjacency function from nodes to their children, in order.
// Adjacency functions should be idempotent.
type adjFunction[T any] func(T) iter.Seq[T]

// A traverser returns a sequence of nodes given a root node and an adjacency function.
// Traversers should be idempotent.
type traverser[T any] func(T, adjFunction[T]) iter.Seq[T]

func emptySeq[T any](_ func(T) bool) {}

// nodeAdj is the adjacency function of a tree's node graph, skipping empty slots.
func nodeAdj[T any](n *Node[T]) iter.Seq[*Node[T]] {
	if len(n.children) == 0 {
		return emptySeq
	}
	return func(yield func(*Node[T]) bool) {
		for _, child := range n.children {
			if child != nil && !yield(child) {
				return
			}
		}
	}
}

func preOrder[T any](root T, adj adjFunction[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		preOrderRecurse(root, adj, yield)
	}
}

// Returns true if done (some yield has returned false).
func preOrderRecurse[T any](node T, adj adjFunction[T], yield func(T) bool) bool {
	if !yield(node) {
		return true
	}
	for child := range adj(node) {
		if preOrderRecurse(child, adj, yield) {
			return true
		}
	}
	return false
}

func postOrder[T any](root T, adj adjFunction[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		postOrderRecurse(root, adj, yield)
	}
}

// Returns true if done (some yield has returned false).
func postOrderRecurse[T any](node T, adj adjFunction[T], yield func(T) bool) bool {
	for child := range adj(node) {
		if postOrderRecurse(child, adj, yield) {
			return true
		}
	}
	return !yield(node)
}

// In-order is only well-defined for binary trees.
// This yields the first child's subtree, then node, then the subtrees of all remaining children.
func inOrder[T any](root T, adj adjFunction[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		inOrderRecurse(root, adj, yield)
	}
}

// Returns true if done (some yield has returned false).
func inOrderRecurse[T any](node T, adj adjFunction[T], yield func(T) bool) bool {
	visited := false
	for child := range adj(node) {
		if inOrderRecurse(child, adj, yield) {
			return true
		}
		if !visited {
			visited = true
			if !yield(node) {
				return true
			}
		}
	}
	return !visited && !yield(node)
}
