package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/store"
)

// NewReportCommand creates the report command.
func NewReportCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Show the summary without recording a session",
		Long: `Show sessions, average and personal record for the existing history.

The history file is read but never written.

Example:
  cyclops report
  cyclops report --format json`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReport(rootOpts, cmd)
		},
	}

	return cmd
}

func runReport(opts *RootOptions, cmd *cobra.Command) error {
	logger := newLogger(opts, cmd.ErrOrStderr())
	formatter := newFormatter(opts, cmd)

	label, err := resolveLabel(opts.Label)
	if err != nil {
		return WrapExitError(ExitCommandError, "no label", err)
	}

	res, err := newTracker(opts, store.New(opts.Data), chart.Nop{}, logger, summaryWriter(opts, cmd)).Report(label)
	return finishSession(formatter, res, err)
}
