package main

import (
	"fmt"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/bench"
)

func newShowCmd() *cobra.Command {
	var (
		impl    string
		size    int
		seed    int64
		dotFile string
	)

	cmd := &cobra.Command{
		Use:   "show [KEY...]",
		Short: "Insert keys into a tree and print it",
		Long: "Insert the given integer keys, or --size random keys in [1, size] " +
			"if there are none, into a tree and print its shape.",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := bench.NewSet(impl)
			if err != nil {
				return err
			}
			st, ok := s.(fmt.Stringer)
			if !ok {
				return fmt.Errorf("%s can't be printed", impl)
			}

			keys := make([]int, 0, len(args))
			for _, a := range args {
				k, err := strconv.Atoi(a)
				if err != nil {
					return fmt.Errorf("bad key %q: %w", a, err)
				}
				keys = append(keys, k)
			}
			if len(keys) == 0 {
				if !cmd.Flags().Changed("seed") {
					seed = time.Now().UnixNano()
				}
				log.WithField("seed", seed).Debug("random keys")
				rd := rand.New(rand.NewSource(seed))
				for i := 0; i < size; i++ {
					keys = append(keys, rd.Intn(size)+1)
				}
			}

			for _, k := range keys {
				if err := s.Insert(k); err != nil {
					return err
				}
			}
			if rb, ok := s.(bench.Rebuilder); ok {
				rb.Rebuild()
			}
			if c, ok := s.(bench.Checker); ok {
				if err := c.Check(); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "keys: %v\n", keys)
			fmt.Fprintf(out, "size: %d\n", s.Len())
			fmt.Fprint(out, st.String())

			if dotFile != "" {
				d, ok := s.(bench.Dotter)
				if !ok {
					return fmt.Errorf("%s can't be exported", impl)
				}
				f, err := os.Create(dotFile)
				if err != nil {
					return err
				}
				return closeDOT(f, d.WriteDOT(f))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&impl, "impl", "avl", "avl, avl-rec, avl-pool, bst or bst-balanced")
	f.IntVarP(&size, "size", "n", 20, "number of random keys when none are given")
	f.Int64VarP(&seed, "seed", "s", 0, "random seed (default current time)")
	f.StringVar(&dotFile, "dot", "", "also write the tree in Graphviz DOT format to this file")

	return cmd
}

func newImplsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "impls",
		Short: "List the implementations",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range bench.Impls() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}
