// Command treebench times random insert, lookup and delete workloads
// against the trees in this module and a few third-party ones.
//
//	treebench run -n 100000 --impl avl --impl btree --trials 5
//	treebench plan plan.yaml
//	treebench show -n 10 --impl avl-rec
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/bench"
)

var log = bench.Log

func newRootCmd() *cobra.Command {
	var verbose, jsonLogs bool

	root := &cobra.Command{
		Use:           "treebench",
		Short:         "Benchmark ordered set implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if jsonLogs {
				log.SetFormatter(&logrus.JSONFormatter{})
			}
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every phase of every trial")
	root.PersistentFlags().BoolVar(&jsonLogs, "json", false, "log as JSON")

	root.AddCommand(newRunCmd(), newPlanCmd(), newShowCmd(), newImplsCmd())
	return root
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		log.WithError(err).Error("treebench failed")
		stop()
		os.Exit(1)
	}
}
