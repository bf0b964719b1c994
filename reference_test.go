package ktree_test

import (
	"slices"
)

// reference is a deliberately naive tree of int values, used as the expected value to compare against a Tree.
// All traversals are recursive and computed eagerly.
type reference struct {
	value    int
	children []*reference
}

func (r *reference) preOrder() []int {
	values := []int{r.value}
	for _, child := range r.children {
		values = append(values, child.preOrder()...)
	}
	return values
}

func (r *reference) postOrder() []int {
	values := []int{}
	for _, child := range r.children {
		values = append(values, child.postOrder()...)
	}
	return append(values, r.value)
}

func (r *reference) inOrder() []int {
	if len(r.children) == 0 {
		return []int{r.value}
	}
	values := r.children[0].inOrder()
	values = append(values, r.value)
	for _, child := range r.children[1:] {
		values = append(values, child.inOrder()...)
	}
	return values
}

// Within a level, left-to-right order is the same as pre-order.
func (r *reference) bfs() []int {
	type entry struct {
		value, depth int
	}
	var entries []entry
	var walk func(*reference, int)
	walk = func(node *reference, depth int) {
		entries = append(entries, entry{node.value, depth})
		for _, child := range node.children {
			walk(child, depth+1)
		}
	}
	walk(r, 0)
	slices.SortStableFunc(entries, func(a, b entry) int {
		return a.depth - b.depth
	})
	values := make([]int, len(entries))
	for i, e := range entries {
		values[i] = e.value
	}
	return values
}

func (r *reference) sorted() []int {
	values := r.preOrder()
	slices.Sort(values)
	return values
}
