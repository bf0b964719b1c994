package ktree

import (
	"github.com/pkg/errors"
)

// Errors returned by this package. Returned errors may wrap these with additional context,
// use errors.Is to test for them.
var (
	// ErrUninitializedTree is returned when inserting a child into a tree without a root.
	ErrUninitializedTree = errors.New("root node is not initialized")

	// ErrParentNotFound is returned when the requested parent is not part of the tree.
	ErrParentNotFound = errors.New("parent node not found")

	// ErrCapacityExceeded is returned when a node would have more children than the tree's arity.
	ErrCapacityExceeded = errors.New("node has reached maximum number of children")

	// ErrNodeAttached is returned when a node given as a prototype already belongs to a tree or parent.
	ErrNodeAttached = errors.New("node is already attached")

	// ErrIteratorExhausted is returned by Iterator.Next when there are no more values.
	ErrIteratorExhausted = errors.New("no more elements")
)
