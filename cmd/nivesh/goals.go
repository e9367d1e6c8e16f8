package main

import (
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/spf13/cobra"
)

func newGoalsCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "goals [goal-id]",
		Short: "Show progress, required contribution and required return per goal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			plan, err := opts.loadPlan()
			if err != nil {
				return err
			}

			s := plan.Snapshot()
			year := opts.currentYear()
			report := planner.Report{BaseYear: year}

			if len(args) == 1 {
				g, ok := s.Goal(args[0])
				if !ok {
					return fmt.Errorf("%s: %w", args[0], domain.ErrGoalNotFound)
				}
				report.Goals = []planner.GoalComputation{planner.EvaluateGoal(s, g, year)}
			} else {
				report = planner.Evaluate(s, year)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("GOALS  as of %d", year)))
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  Saving %s a month at %s expected return\n\n",
				cli.FormatINR(s.MonthlySavings()), cli.FormatRate(s.InvestmentReturnRate))
			fmt.Fprint(out, cli.RenderGoals(plan, report))
			return nil
		},
	}
}
