package ktree

// owner identifies the node graph of one tree.
// It must not be zero-sized, distinct pointers to zero-sized values may compare equal.
type owner struct {
	_ byte
}

// Node is a single vertex of a tree, holding a value and an ordered sequence of child slots.
// A slot either holds a child or is empty.
//
// A Node created by [NewNode] is detached and arity-agnostic.
// Nodes returned by [Tree] methods belong to that tree, and have exactly as many slots as the tree's arity.
type Node[T any] struct {
	value    T
	children []*Node[T] // nil is an empty slot
	parent   *Node[T]
	owner    *owner // non-nil only if this node belongs to a tree
}

// NewNode returns a new detached node holding value.
// Each of children occupies the next slot in order, a nil child is an empty slot.
// NewNode will panic if a child already has a parent or belongs to a tree.
func NewNode[T any](value T, children ...*Node[T]) *Node[T] {
	n := &Node[T]{value: value}
	if len(children) == 0 {
		return n
	}
	n.children = make([]*Node[T], len(children))
	for i, child := range children {
		if child == nil {
			continue
		}
		if child.parent != nil || child.owner != nil {
			panic("child node is already attached")
		}
		child.parent = n
		n.children[i] = child
	}
	return n
}

// Value returns the value held by n.
func (n *Node[T]) Value() T {
	return n.value
}

// SetData replaces the value held by n. Children are not affected.
func (n *Node[T]) SetData(value T) {
	n.value = value
}

// ResizeChildren sets the number of child slots to k, padding with empty slots or truncating.
// Truncating drops any children in the removed slots along with their subtrees,
// so callers must not pass a k that would do so unless that is the intent.
// ResizeChildren will panic if k is negative.
func (n *Node[T]) ResizeChildren(k int) {
	if k < 0 {
		panic("number of children must be non-negative")
	}
	if k <= len(n.children) {
		for _, child := range n.children[k:] {
			if child != nil {
				child.parent = nil
			}
		}
		clear(n.children[k:])
		n.children = n.children[:k]
		return
	}
	n.children = append(n.children, make([]*Node[T], k-len(n.children))...)
}

// Children returns the occupied slots of n, in order.
func (n *Node[T]) Children() []*Node[T] {
	children := make([]*Node[T], 0, len(n.children))
	for _, child := range n.children {
		if child != nil {
			children = append(children, child)
		}
	}
	return children
}

// Slots returns the number of child slots of n, occupied or not.
func (n *Node[T]) Slots() int {
	return len(n.children)
}

// Degree returns the number of occupied child slots of n.
func (n *Node[T]) Degree() int {
	count := 0
	for _, child := range n.children {
		if child != nil {
			count++
		}
	}
	return count
}

// Parent returns the parent of n, or nil if n is a root or detached.
func (n *Node[T]) Parent() *Node[T] {
	return n.parent
}

// Returns true if child was placed, false if n has no empty slot and at least limit children.
func (n *Node[T]) attach(child *Node[T], limit int) bool {
	child.parent = n
	for i, slot := range n.children {
		if slot == nil {
			n.children[i] = child
			return true
		}
	}
	if len(n.children) >= limit {
		child.parent = nil
		return false
	}
	n.children = append(n.children, child)
	return true
}

// Moves the occupied slots of n to the front, then resizes to k slots.
// The caller must ensure k >= n.Degree().
func (n *Node[T]) compact(k int) {
	i := 0
	for _, child := range n.children {
		if child != nil {
			n.children[i] = child
			i++
		}
	}
	clear(n.children[i:])
	n.children = n.children[:i]
	n.ResizeChildren(k)
}
