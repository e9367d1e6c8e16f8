package main

import (
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/spf13/cobra"
)

func newInflationCmd(opts *options) *cobra.Command {
	var years int

	cmd := &cobra.Command{
		Use:   "inflation",
		Short: "Show what today's monthly expenses will cost after inflation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if years < 1 || years > service.MaxInflationYears {
				return fmt.Errorf("--years must be between 1 and %d, got %d", service.MaxInflationYears, years)
			}

			plan, err := opts.loadPlan()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderInflation(plan.Snapshot().Expenses, planner.DefaultExpenseInflation, years))
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", 10, "Years ahead")
	return cmd
}
