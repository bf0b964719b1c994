package ktree

// Things that need to be exported for testing, but should not be part of the public API.
// The identifiers are in the ktree package, but the filename ends in _test.go,
// preventing their inclusion in the public API.

type (
	TestingAdjFunction = adjFunction[int]
	TestingTraverser   = traverser[int]
)

var (
	TestingPreOrder  = preOrder[int]
	TestingPostOrder = postOrder[int]
	TestingInOrder   = inOrder[int]
)
