// Command random builds a random binary search tree and prints it,
// optionally rebuilt to minimum height.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/binary"
)

func main() {
	var (
		seed     int64
		num      int
		balanced bool
		rebuild  bool
		timeout  time.Duration
		dotFile  string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Print a random binary search tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if seed == 0 {
				seed = time.Now().UnixNano()
			}

			var tr *binary.Tree[int]
			attempts := 0

			if balanced {
				ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
				defer cancel()

				var err error
				tr, attempts, err = binary.BuildRandomBalanced(ctx, num, seed)
				if err != nil {
					return err
				}
			} else {
				tr = binary.BuildRandom(num, seed)
			}

			out := cmd.OutOrStdout()
			show := func(tr *binary.Tree[int]) {
				preorder := make([]int, 0, num)
				tr.PreOrder(func(k int) bool {
					preorder = append(preorder, k)
					return true
				})

				inorder := make([]int, 0, num)
				for n := range tr.InOrderCoroutine(cmd.Context()).Items() {
					inorder = append(inorder, n)
				}

				fmt.Fprintln(out, "preorder:", preorder)
				fmt.Fprintln(out, "inorder:", inorder)

				fmt.Fprintln(out, "tree:")
				fmt.Fprintln(out, tr.String())

				actual, ideal := tr.Height()
				fmt.Fprintln(out, "height:", actual, "ideal:", ideal)
			}

			fmt.Fprintln(out, "seed:", seed)
			show(tr)

			if balanced {
				fmt.Fprintln(out, "attempts:", attempts)
			}

			if rebuild {
				rebuilt := tr.Clone()
				rebuilt.Balance()
				fmt.Fprintln(out, "after Balance:")
				show(rebuilt)
			}

			if dotFile != "" {
				f, err := os.Create(dotFile)
				if err != nil {
					return err
				}
				err = tr.WriteDOT(f)
				if cerr := f.Close(); err == nil {
					err = cerr
				}
				return err
			}
			return nil
		},
	}

	cmd.Flags().Int64VarP(&seed, "seed", "s", 0, "seed (default current unix time in ns)")
	cmd.Flags().IntVarP(&num, "num", "n", 10, "number of nodes in the tree")
	cmd.Flags().BoolVarP(&balanced, "balanced", "b", false, "keep building the tree until it is balanced")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "give up on --balanced after this long")
	cmd.Flags().BoolVarP(&rebuild, "rebuild", "r", false, "also print the tree after rebuilding it with Balance")
	cmd.Flags().StringVar(&dotFile, "dot", "", "write the generated tree to this file in Graphviz DOT format")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
