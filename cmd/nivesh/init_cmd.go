package main

import (
	"fmt"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/spf13/cobra"
)

func newInitCmd(opts *options) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default plan as a starting plan file",
		Long:  "Write the default plan to --plan, or to stdout when no plan path is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			plan := domain.DefaultPlan(0)
			if opts.planPath == "" {
				return cli.WritePlan(cmd.OutOrStdout(), plan)
			}

			if err := cli.WritePlanFile(opts.planPath, plan, force); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default plan to %s\n", opts.planPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing plan file")
	return cmd
}
