package ktree_test

import (
	"testing"

	"github.com/phiryll/ktree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Go's fuzzing can generate []byte inputs, but not trees.
// The fuzzed bytes here are parent choices: the i'th byte adds the value i+1
// under the node holding the byte's value modulo the number of nodes so far,
// which may fail if that parent is full.

func FuzzTree(f *testing.F) {
	f.Add(byte(2), []byte{})
	f.Add(byte(2), []byte{0, 0, 1, 1})
	f.Add(byte(2), []byte{0, 0, 0, 1, 1, 1})
	f.Add(byte(3), []byte{0, 0, 0, 1, 2})
	f.Add(byte(1), []byte{0, 1, 2, 3, 4, 5})
	f.Add(byte(4), []byte{0xFF, 0x7F, 0x00, 0x10, 0x42})
	f.Fuzz(func(t *testing.T, fuzzArity byte, parents []byte) {
		arity := int(fuzzArity%8) + 1
		tree := ktree.New[int](ktree.WithArity(arity))
		tree.AddRoot(0)
		refs := []*reference{{value: 0}}
		for i, b := range parents {
			value := i + 1
			parent := refs[int(b)%len(refs)]
			_, err := tree.AddSubNode(parent.value, value)
			if len(parent.children) == arity {
				require.ErrorIs(t, err, ktree.ErrCapacityExceeded)
				continue
			}
			require.NoError(t, err)
			child := &reference{value: value}
			parent.children = append(parent.children, child)
			refs = append(refs, child)
		}
		ref := refs[0]
		require.Equal(t, len(refs), tree.Len())
		assert.Equal(t, ref.preOrder(), collect(tree.BeginPreOrder()))
		assert.Equal(t, ref.postOrder(), collect(tree.BeginPostOrder()))
		assert.Equal(t, ref.inOrder(), collect(tree.BeginInOrder()))
		assert.Equal(t, ref.bfs(), collect(tree.BeginBFS()))
		assert.Equal(t, ref.preOrder(), collect(tree.BeginDFS()))
		assert.Equal(t, ref.sorted(), collect(ktree.BeginHeap(tree)))
		assert.Equal(t, tree.String(), tree.Clone().String())
	})
}
