// Package ktree provides a generic k-ary tree, a tree in which each node has at most k children,
// along with iterators for six traversal orders.
//
// Trees are not safe for concurrent use.
// No tree may be structurally mutated while one of its iterators is in use.
package ktree

import (
	"iter"
)

// DefaultArity is the arity of a [Tree] created without [WithArity], making it a binary tree.
const DefaultArity = 2

// Iterator is the type returned by the Begin methods of [Tree].
// Iterators are single use and cannot be restarted.
type Iterator[T any] interface {
	// HasNext returns whether a call to Next would return a value.
	HasNext() bool

	// Next returns the next value, or ErrIteratorExhausted if there are none.
	Next() (T, error)
}

// Collect drains it, returning the remaining values in order.
// The result is empty but non-nil if it has no remaining values.
func Collect[T any](it Iterator[T]) []T {
	values := []T{}
	for it.HasNext() {
		v, err := it.Next()
		if err != nil {
			// HasNext was true
			panic(err)
		}
		values = append(values, v)
	}
	return values
}

// All adapts it to a single-use sequence.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.HasNext() {
			v, err := it.Next()
			if err != nil {
				panic(err)
			}
			if !yield(v) {
				return
			}
		}
	}
}
