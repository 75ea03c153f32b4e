package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/store"
)

// ChartOptions holds flags for the chart command.
type ChartOptions struct {
	*RootOptions
	Output string
}

// NewChartCommand creates the chart command.
func NewChartCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ChartOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Export the progress chart without recording a session",
		Long: `Export the progress chart for the existing history.

The chart is a line plot of every session in order: circle markers, a grid,
"Workout Number" on the x-axis and "Weight (lbs)" on the y-axis. The format
follows the output extension (.png or .svg).

Example:
  cyclops chart
  cyclops chart --output squat.svg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", chart.DefaultPath, "chart export path (.png or .svg)")

	return cmd
}

func runChart(opts *ChartOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	formatter := newFormatter(opts.RootOptions, cmd)

	label, err := resolveLabel(opts.Label)
	if err != nil {
		return WrapExitError(ExitCommandError, "no label", err)
	}

	renderer, err := chart.NewFileRenderer(opts.Output)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --output", err)
	}

	// Chart only: the console summary belongs to log and report.
	res, err := newTracker(opts.RootOptions, store.New(opts.Data), renderer, logger, nil).Report(label)
	return finishSession(formatter, res, err)
}
