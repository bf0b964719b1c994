package ktree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/shivamMg/ppds/tree"
)

func indent(n int) string {
	const (
		indent         = "  "
		repeatedIndent = "                                                                                "
	)
	if 2*n > len(repeatedIndent) {
		return strings.Repeat(indent, n)
	}
	return repeatedIndent[:2*n]
}

// Fprint writes t to w, one value per line in pre-order, each indented two spaces per level of depth.
// Values are printed using the `%v` format specifier.
// Writes nothing to w if t is empty.
func (t *Tree[T]) Fprint(w io.Writer) (int, error) {
	if t.root == nil {
		return 0, nil
	}
	return fprintNode(w, t.root, 0)
}

func fprintNode[T any](w io.Writer, n *Node[T], depth int) (int, error) {
	total, err := fmt.Fprintf(w, "%s%v\n", indent(depth), n.value)
	if err != nil {
		//nolint:wrapcheck
		return total, err
	}
	for _, child := range n.children {
		if child == nil {
			continue
		}
		bytesWritten, err := fprintNode(w, child, depth+1)
		total += bytesWritten
		if err != nil {
			return total, err
		}
	}
	return total, nil
}

// Print writes t to standard output, as [Tree.Fprint] does.
func (t *Tree[T]) Print() {
	if _, err := t.Fprint(os.Stdout); err != nil {
		panic(err)
	}
}

func (t *Tree[T]) String() string {
	var s strings.Builder
	if _, err := t.Fprint(&s); err != nil {
		panic(err)
	}
	return s.String()
}

// Diagram returns a drawing of t with box-drawing characters, with the root at the top.
// Returns an empty string if t is empty.
func (t *Tree[T]) Diagram() string {
	if t.root == nil {
		return ""
	}
	return tree.Sprint(diagramNode[T]{t.root})
}

// Adapts a Node to the ppds tree.Node interface.
type diagramNode[T any] struct {
	n *Node[T]
}

func (d diagramNode[T]) Data() interface{} {
	return d.n.value
}

func (d diagramNode[T]) Children() []tree.Node {
	children := []tree.Node{}
	for _, child := range d.n.children {
		if child != nil {
			children = append(children, diagramNode[T]{child})
		}
	}
	return children
}
