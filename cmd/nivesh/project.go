package main

import (
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/planner"
	"github.com/dafibh/nivesh/nivesh-backend/internal/service"
	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newProjectCmd(opts *options) *cobra.Command {
	var (
		years     int
		step      int
		chartPath string
	)

	cmd := &cobra.Command{
		Use:   "project",
		Short: "Project portfolio value year by year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if years < 1 {
				return fmt.Errorf("--years must be at least 1, got %d", years)
			}

			plan, err := opts.loadPlan()
			if err != nil {
				return err
			}

			s := plan.Snapshot()
			baseYear := opts.currentYear()
			points := planner.ProjectWealthN(s, baseYear, years)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out)
			fmt.Fprintln(out, cli.RenderTitle(fmt.Sprintf("WEALTH PROJECTION  %d-%d", baseYear+1, baseYear+years)))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderSummary(plan, s))
			fmt.Fprintln(out)
			fmt.Fprint(out, cli.RenderProjection(points, step))

			if chartPath != "" {
				if err := imaging.Save(service.RenderProjectionChart(points), chartPath); err != nil {
					return fmt.Errorf("failed to write chart: %w", err)
				}
				log.Info().Str("path", chartPath).Msg("Wrote projection chart")
				fmt.Fprintf(out, "\n  Chart written to %s\n", chartPath)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&years, "years", planner.ProjectionYears, "Projection horizon in years")
	cmd.Flags().IntVar(&step, "step", 1, "Show every n-th year")
	cmd.Flags().StringVar(&chartPath, "chart", "", "Also write a PNG bar chart to this path")
	return cmd
}
