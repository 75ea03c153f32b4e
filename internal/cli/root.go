package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/cyclops/internal/store"
	"github.com/roach88/cyclops/internal/tracker"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Data    string // store file
	Label   string // lift name; defaults to the working directory name

	// IDGenerator allows overriding the run ID generator (for testing).
	// If nil, defaults to tracker.UUIDv7Generator.
	IDGenerator tracker.IDGenerator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the cyclops CLI.
//
// Run without a subcommand it behaves like "cyclops log".
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	logOpts := &LogOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "cyclops",
		Short: "CYCLOPS - one eye on your lifts",
		Long: `A personal workout-weight logger.

Each run asks for today's weight, appends it to the lift's history file,
prints the session count, average and personal record, and exports a
progress chart. Keep one directory per lift; the directory name is the
lift's label.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLog(logOpts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Data, "data", store.DefaultPath, "history file (.json, .yaml or .yml)")
	cmd.PersistentFlags().StringVar(&opts.Label, "label", "", "lift name (default: working directory name)")

	// "cyclops --weight 150" is "cyclops log --weight 150"
	addLogFlags(cmd, logOpts)

	// Add subcommands
	cmd.AddCommand(NewLogCommand(opts))
	cmd.AddCommand(NewReportCommand(opts))
	cmd.AddCommand(NewChartCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
