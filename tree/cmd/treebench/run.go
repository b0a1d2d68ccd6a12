package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/bench"
)

type runOptions struct {
	size     int
	seed     int64
	impls    []string
	trials   int
	workers  int
	dotFile  string
	check    bool
	progress bool
}

func newRunCmd() *cobra.Command {
	var o runOptions

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the workload against one or more implementations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("seed") {
				o.seed = time.Now().UnixNano()
			}

			runs := make([]bench.Run, 0, len(o.impls))
			for _, impl := range o.impls {
				runs = append(runs, bench.Run{
					Impl:   impl,
					Size:   o.size,
					Seed:   o.seed,
					Trials: o.trials,
				})
			}

			log.WithField("seed", o.seed).Info("starting")
			return execute(cmd, runs, o.workers, o)
		},
	}

	f := cmd.Flags()
	f.IntVarP(&o.size, "size", "n", 20, "number of keys per phase")
	f.Int64VarP(&o.seed, "seed", "s", 0, "random seed (default current time)")
	f.StringSliceVar(&o.impls, "impl", []string{"avl"}, "implementation to run, repeatable (see impls)")
	f.IntVar(&o.trials, "trials", 1, "trials per implementation, seeds counting up from --seed")
	f.IntVar(&o.workers, "workers", 1, "trials to run at once")
	addCommonFlags(cmd, &o)

	return cmd
}

func addCommonFlags(cmd *cobra.Command, o *runOptions) {
	f := cmd.Flags()
	f.StringVar(&o.dotFile, "dot", "", "write the first trial's tree after inserting, in Graphviz DOT format")
	f.BoolVar(&o.check, "check", false, "verify tree invariants after every phase")
	f.BoolVar(&o.progress, "progress", false, "show a progress bar")
}

// closeDOT closes a DOT output file. A failed close is only reported
// when err, the result of writing it, is nil.
func closeDOT(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("write dot: %w", cerr)
	}
	return err
}

func execute(cmd *cobra.Command, runs []bench.Run, workers int, o runOptions) error {
	r := &bench.Runner{
		Workers: workers,
		Check:   o.check,
	}
	if o.progress {
		r.Progress = cmd.ErrOrStderr()
	}

	var dot *os.File
	if o.dotFile != "" {
		f, err := os.Create(o.dotFile)
		if err != nil {
			return err
		}
		dot, r.DOT = f, f
	}

	results, err := r.Execute(cmd.Context(), runs)
	if dot != nil {
		err = closeDOT(dot, err)
	}
	if err != nil {
		return err
	}

	return bench.WriteTable(cmd.OutOrStdout(), bench.Summarize(results))
}
