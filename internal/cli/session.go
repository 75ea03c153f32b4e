package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/tracker"
)

// newLogger configures logging based on the verbose flag.
// Diagnostics always go to stderr so the report and JSON output stay clean.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	logLevel := slog.LevelWarn
	if opts.Verbose {
		logLevel = slog.LevelDebug
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logLevel,
	})
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(), // Verbose logs go to stderr to avoid corrupting JSON
		Verbose:   opts.Verbose,
	}
}

// resolveLabel returns the explicit label, or the working directory's base
// name when none was given.
func resolveLabel(label string) (string, error) {
	if label = strings.TrimSpace(label); label != "" {
		return label, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("determine lift label: %w", err)
	}
	return filepath.Base(wd), nil
}

// newRenderer picks the chart surface: a file export, or nothing.
func newRenderer(path string, disabled bool) (chart.Renderer, error) {
	if disabled {
		return chart.Nop{}, nil
	}
	return chart.NewFileRenderer(path)
}

// summaryWriter is where the console summary goes: stdout in text mode,
// nowhere in JSON mode.
func summaryWriter(opts *RootOptions, cmd *cobra.Command) io.Writer {
	if opts.Format == "json" {
		return nil
	}
	return cmd.OutOrStdout()
}

// newTracker builds a tracker for one command invocation.
// A nil summary writer suppresses the console summary.
func newTracker(opts *RootOptions, st tracker.SampleStore, r chart.Renderer, logger *slog.Logger, summary io.Writer) *tracker.Tracker {
	trackerOpts := []tracker.Option{tracker.WithLogger(logger)}
	if opts.IDGenerator != nil {
		trackerOpts = append(trackerOpts, tracker.WithIDGenerator(opts.IDGenerator))
	}
	if summary != nil {
		trackerOpts = append(trackerOpts, tracker.WithSummaryWriter(summary))
	}
	return tracker.New(st, r, trackerOpts...)
}

// finishSession writes the outcome of a tracker call in the configured
// format and converts failures into ExitErrors.
func finishSession(f *OutputFormatter, res *tracker.Result, err error) error {
	if err != nil {
		code, exit, message := classifyError(err)
		// In text mode the returned error is the report; main prints it.
		if f.Format == "json" {
			var details interface{}
			if res != nil {
				details = res
			}
			if encErr := f.Error(code, fmt.Sprintf("%s: %v", message, err), details); encErr != nil {
				return WrapExitError(ExitFailure, "write output", encErr)
			}
		}
		return WrapExitError(exit, message, err)
	}

	if f.Format == "json" {
		return f.Success(res)
	}

	if res.Chart.Path != "" {
		if err := f.Success("\nChart saved to " + res.Chart.Path); err != nil {
			return WrapExitError(ExitFailure, "write output", err)
		}
	}
	f.VerboseLog("run %s: %d session(s), chart=%s", res.RunID, res.Summary.Count, res.Chart.Format)
	return nil
}
