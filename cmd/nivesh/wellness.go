package main

import (
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/spf13/cobra"
)

func newWellnessCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "wellness",
		Short: "Score financial wellness from savings rate, emergency fund and retirement progress",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan, err := opts.loadPlan()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderWellness(planner.WellnessScore(plan.Snapshot())))
			return nil
		},
	}
}
