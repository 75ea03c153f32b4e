package cli

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/input"
	"github.com/roach88/cyclops/internal/store"
)

// LogOptions holds flags for the log command.
type LogOptions struct {
	*RootOptions
	Weight    float64
	ChartPath string
	NoChart   bool
}

// NewLogCommand creates the log command.
func NewLogCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &LogOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Record today's weight and show progress",
		Long: `Record today's weight for the lift and show progress.

Loads the history file (starting empty if it does not exist), asks for
today's weight unless --weight is given, appends it, saves the full history,
prints the summary and exports the progress chart.

A weight that is not a number aborts the run before anything is saved.
A malformed history file aborts the run and is left untouched.

Example:
  cyclops log
  cyclops log --weight 150 --label squat
  cyclops log --data squat.yaml --chart squat.svg`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(opts, cmd)
		},
	}

	addLogFlags(cmd, opts)

	return cmd
}

// addLogFlags registers the log flags on cmd. The root command carries them
// too, since running it bare records a session.
func addLogFlags(cmd *cobra.Command, opts *LogOptions) {
	cmd.Flags().Float64Var(&opts.Weight, "weight", 0, "today's weight; skips the prompt")
	cmd.Flags().StringVar(&opts.ChartPath, "chart", chart.DefaultPath, "chart export path (.png or .svg)")
	cmd.Flags().BoolVar(&opts.NoChart, "no-chart", false, "skip chart export")
}

func runLog(opts *LogOptions, cmd *cobra.Command) error {
	logger := newLogger(opts.RootOptions, cmd.ErrOrStderr())
	formatter := newFormatter(opts.RootOptions, cmd)

	label, err := resolveLabel(opts.Label)
	if err != nil {
		return WrapExitError(ExitCommandError, "no label", err)
	}

	renderer, err := newRenderer(opts.ChartPath, opts.NoChart)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --chart", err)
	}

	var acq input.Acquirer
	if cmd.Flags().Changed("weight") {
		acq = input.Fixed(opts.Weight)
	} else {
		// The prompt must not corrupt JSON on stdout.
		var promptOut io.Writer = cmd.OutOrStdout()
		if opts.Format == "json" {
			promptOut = cmd.ErrOrStderr()
		}
		acq = input.NewPrompter(cmd.InOrStdin(), promptOut)
	}

	st := store.New(opts.Data)
	if exists, err := st.Exists(); err == nil && !exists {
		logger.Debug("no history yet, starting a new one", "data", st.Path())
	}
	logger.Debug("logging session", "label", label, "data", st.Path(), "format", st.Format())

	res, err := newTracker(opts.RootOptions, st, renderer, logger, summaryWriter(opts.RootOptions, cmd)).Record(label, acq)
	return finishSession(formatter, res, err)
}
