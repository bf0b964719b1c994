// Package main provides a demo driver for the ktree package.
// It builds a sample tree of floats and prints every traversal of it.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/go-hclog"
	"github.com/phiryll/ktree"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the CLI and returns an exit code.
// This is separated from main() to facilitate testing.
func run(args []string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		return 1
	}
	return 0
}

type options struct {
	arity    int
	logLevel string
	diagram  bool
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var opts options
	cmd := &cobra.Command{
		Use:   "ktree",
		Short: "Build a sample k-ary tree and print its traversals",
		Example: `ktree
ktree --arity 3 --diagram`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger := hclog.New(&hclog.LoggerOptions{
				Name:   "ktree-demo",
				Output: stderr,
				Level:  hclog.LevelFromString(opts.logLevel),
			})
			return demo(stdout, logger, opts)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.Flags().IntVar(&opts.arity, "arity", ktree.DefaultArity, "maximum number of children per node")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "log level (trace, debug, info, warn, error)")
	cmd.Flags().BoolVar(&opts.diagram, "diagram", false, "also draw the tree")
	return cmd
}

// Binary trees get two children under the root, wider trees get three.
//
//	binary:       1.1          wider:       1.1
//	            /     \                  /   |   \
//	          1.2     1.3              1.2  1.3  1.4
//	         /   \    /                 |    |
//	       1.4  1.5  1.6               1.5  1.6
func samplePairs(arity int) [][2]float64 {
	if arity <= 2 {
		return [][2]float64{{1.1, 1.2}, {1.1, 1.3}, {1.2, 1.4}, {1.2, 1.5}, {1.3, 1.6}}
	}
	return [][2]float64{{1.1, 1.2}, {1.1, 1.3}, {1.1, 1.4}, {1.2, 1.5}, {1.3, 1.6}}
}

func demo(w io.Writer, logger hclog.Logger, opts options) error {
	if opts.arity < 1 {
		return errors.Errorf("arity must be positive, got %d", opts.arity)
	}
	tree := ktree.New[float64](ktree.WithArity(opts.arity), ktree.WithLogger(logger))
	tree.AddRoot(1.1)
	for _, pair := range samplePairs(opts.arity) {
		if _, err := tree.AddSubNode(pair[0], pair[1]); err != nil {
			return errors.Wrap(err, "building sample tree")
		}
	}
	logger.Info("built sample tree", "arity", tree.Arity(), "nodes", tree.Len())

	traversals := []struct {
		name string
		it   ktree.Iterator[float64]
	}{
		{"Pre-Order", tree.BeginPreOrder()},
		{"Post-Order", tree.BeginPostOrder()},
		{"In-Order", tree.BeginInOrder()},
		{"BFS", tree.BeginBFS()},
		{"DFS", tree.BeginDFS()},
		{"Heap", ktree.BeginHeap(tree)},
	}
	for _, traversal := range traversals {
		formatted := lo.Map(ktree.Collect(traversal.it), func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'g', -1, 64)
		})
		if _, err := fmt.Fprintf(w, "%s Traversal: %s\n", traversal.name, strings.Join(formatted, " ")); err != nil {
			return errors.Wrap(err, "writing traversal")
		}
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	if _, err := tree.Fprint(w); err != nil {
		return errors.Wrap(err, "writing tree")
	}
	if opts.diagram {
		if _, err := fmt.Fprintf(w, "\n%s", tree.Diagram()); err != nil {
			return errors.Wrap(err, "writing diagram")
		}
	}
	return nil
}
