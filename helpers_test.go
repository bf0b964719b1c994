package ktree_test

import (
	rand "math/rand/v2"
	"testing"

	"github.com/phiryll/ktree"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// This file contains things that help in writing tests.
// There are no top-level tests here.

type (
	intTree = ktree.Tree[int]
	intNode = ktree.Node[int]
)

var collect = ktree.Collect[int]

// Creates a fresh iterator of each kind, keyed by name.
var iteratorFactories = map[string]func(*intTree) ktree.Iterator[int]{
	"pre-order":  (*intTree).BeginPreOrder,
	"post-order": (*intTree).BeginPostOrder,
	"in-order":   (*intTree).BeginInOrder,
	"bfs":        (*intTree).BeginBFS,
	"dfs":        (*intTree).BeginDFS,
	"heap":       ktree.BeginHeap[int],
}

// iterators returns a fresh iterator of each kind over tree, keyed by name.
func iterators(tree *intTree) map[string]ktree.Iterator[int] {
	its := map[string]ktree.Iterator[int]{}
	for name, factory := range iteratorFactories {
		its[name] = factory(tree)
	}
	return its
}

// binaryScenario returns the tree
//
//	    1
//	   / \
//	  2   3
//	 / \
//	4   5
func binaryScenario(t *testing.T) *intTree {
	tree := ktree.New[int]()
	tree.AddRoot(1)
	addAll(t, tree, [][2]int{{1, 2}, {1, 3}, {2, 4}, {2, 5}})
	return tree
}

// addAll adds each {parent, child} pair by value, requiring success.
func addAll(t *testing.T, tree *intTree, pairs [][2]int) {
	t.Helper()
	for _, pair := range pairs {
		_, err := tree.AddSubNode(pair[0], pair[1])
		require.NoError(t, err, "adding %d under %d", pair[1], pair[0])
	}
}

// values returns the values of nodes.
func values[T comparable](nodes []*ktree.Node[T]) []T {
	return lo.Map(nodes, func(n *ktree.Node[T], _ int) T {
		return n.Value()
	})
}

// randomTree builds a tree and a matching reference with size nodes, holding the unique values 0 to size-1.
// Every node is added under a random parent that still has room,
// alternating between adding by value and adding by handle.
func randomTree(t testing.TB, arity, size int, random *rand.Rand) (*intTree, *reference) {
	t.Helper()
	tree := ktree.New[int](ktree.WithArity(arity))
	ref := &reference{value: 0}
	open := []*reference{ref}
	handles := map[int]*intNode{0: tree.AddRoot(0)}
	for value := 1; value < size; value++ {
		i := random.IntN(len(open))
		parent := open[i]
		var node *intNode
		var err error
		if random.IntN(2) == 0 {
			node, err = tree.AddSubNode(parent.value, value)
		} else {
			node, err = tree.AddChild(handles[parent.value], value)
		}
		require.NoError(t, err)
		handles[value] = node
		child := &reference{value: value}
		parent.children = append(parent.children, child)
		if len(parent.children) == arity {
			open = append(open[:i], open[i+1:]...)
		}
		open = append(open, child)
	}
	return tree, ref
}
