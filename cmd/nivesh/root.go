package main

import (
	"os"

	"github.com/dafibh/nivesh/nivesh-backend/internal/cli"
	"github.com/dafibh/nivesh/nivesh-backend/internal/domain"
	"github.com/dafibh/nivesh/nivesh-backend/internal/util"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options are the persistent flags shared by every subcommand
type options struct {
	planPath string
	year     int
	verbose  bool
}

// currentYear is the base year of projections; --year overrides the system clock
func (o *options) currentYear() int {
	var clock util.Clock = util.SystemClock
	if o.year > 0 {
		clock = util.FixedClock(o.year)
	}
	return clock.CurrentYear()
}

func (o *options) loadPlan() (*domain.Plan, error) {
	plan, err := cli.LoadPlan(o.planPath)
	if err != nil {
		return nil, err
	}
	if o.planPath == "" {
		log.Debug().Msg("No plan file given, using the default plan")
	} else {
		log.Debug().Str("path", o.planPath).Int("goals", len(plan.Goals)).Msg("Loaded plan file")
	}
	return plan, nil
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:          "nivesh",
		Short:        "Personal finance projections",
		Long:         "Project wealth, evaluate savings goals and score financial wellness from a TOML plan file.",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()}).
				Level(level).
				With().Timestamp().Logger()
		},
	}

	defaultPlan := os.Getenv("NIVESH_PLAN")
	root.PersistentFlags().StringVarP(&opts.planPath, "plan", "p", defaultPlan, "Plan file (TOML); the default plan when empty")
	root.PersistentFlags().IntVarP(&opts.year, "year", "y", 0, "Base year (defaults to the current year)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging to stderr")

	root.AddCommand(
		newProjectCmd(opts),
		newGoalsCmd(opts),
		newWellnessCmd(opts),
		newInflationCmd(opts),
		newInitCmd(opts),
	)
	return root
}
