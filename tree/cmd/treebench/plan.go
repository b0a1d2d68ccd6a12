package main

import (
	"github.com/spf13/cobra"
	"go.lepak.sg/trees/tree/bench"
)

func newPlanCmd() *cobra.Command {
	var o runOptions
	var workers int

	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Run every workload listed in a YAML plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := bench.LoadPlan(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("workers") {
				p.Workers = workers
			}

			data, err := p.Marshal()
			if err != nil {
				return err
			}
			log.WithField("plan", string(data)).Debug("normalized plan")
			log.WithField("runs", len(p.Runs)).Info("starting plan")
			return execute(cmd, p.Runs, p.Workers, o)
		},
	}

	cmd.Flags().IntVar(&workers, "workers", 0, "override the plan's workers")
	addCommonFlags(cmd, &o)

	return cmd
}
