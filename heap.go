package ktree

import (
	"cmp"
	"container/heap"

	"golang.org/x/exp/constraints"
)

// BeginHeap returns an iterator over the values of t in ascending order, regardless of the shape of t.
func BeginHeap[T constraints.Ordered](t *Tree[T]) Iterator[T] {
	return t.BeginHeapFunc(cmp.Compare[T])
}

// BeginHeapFunc returns an iterator over the values of t in ascending order as determined by compare,
// regardless of the shape of t.
// compare must return a negative number if a < b, a positive number if a > b, and zero otherwise.
// The order of values comparing equal is unspecified.
func (t *Tree[T]) BeginHeapFunc(compare func(a, b T) int) Iterator[T] {
	it := &heapIterator[T]{nodeHeap[T]{compare: compare}}
	if t.root != nil {
		for n := range preOrder(t.root, nodeAdj[T]) {
			it.h.nodes = append(it.h.nodes, n)
		}
		heap.Init(&it.h)
	}
	return it
}

// A binary min-heap of nodes, ordered by value.
type nodeHeap[T any] struct {
	nodes   []*Node[T]
	compare func(a, b T) int
}

func (h *nodeHeap[T]) Len() int {
	return len(h.nodes)
}

func (h *nodeHeap[T]) Less(i, j int) bool {
	return h.compare(h.nodes[i].value, h.nodes[j].value) < 0
}

func (h *nodeHeap[T]) Swap(i, j int) {
	h.nodes[i], h.nodes[j] = h.nodes[j], h.nodes[i]
}

func (h *nodeHeap[T]) Push(x any) {
	//nolint:forcetypeassert
	h.nodes = append(h.nodes, x.(*Node[T]))
}

func (h *nodeHeap[T]) Pop() any {
	last := len(h.nodes) - 1
	n := h.nodes[last]
	h.nodes[last] = nil
	h.nodes = h.nodes[:last]
	return n
}

type heapIterator[T any] struct {
	h nodeHeap[T]
}

func (it *heapIterator[T]) HasNext() bool {
	return it.h.Len() > 0
}

func (it *heapIterator[T]) Next() (T, error) {
	if !it.HasNext() {
		return exhausted[T]()
	}
	//nolint:forcetypeassert
	n := heap.Pop(&it.h).(*Node[T])
	return n.value, nil
}
