package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/roach88/cyclops/internal/chart"
	"github.com/roach88/cyclops/internal/input"
	"github.com/roach88/cyclops/internal/stats"
	"github.com/roach88/cyclops/internal/store"
	"github.com/roach88/cyclops/internal/tracker"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // Successful execution
	ExitFailure      = 1 // Runtime failure (history could not be saved, chart could not be written)
	ExitCommandError = 2 // Command error (bad flags, bad input, unreadable history)
)

// Error codes used in JSON error responses.
const (
	ErrCodeInput   = "E001" // weight was not a number
	ErrCodeParse   = "E002" // history file is malformed
	ErrCodeStoreIO = "E003" // history file could not be read or written
	ErrCodeEmpty   = "E004" // no sessions recorded yet
	ErrCodeChart   = "E005" // chart could not be rendered
	ErrCodeGeneric = "E999"
)

// ExitError represents an error with a specific exit code.
// Use this to return errors with meaningful exit codes from CLI commands.
type ExitError struct {
	Code    int    // Exit code (use ExitFailure or ExitCommandError)
	Message string // Error message
	Err     error  // Underlying error (optional)
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error.
// Returns ExitSuccess for nil and ExitFailure if the error is not an ExitError.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}

// classifyError maps a session error to its JSON error code, exit code and
// a short message for the user.
func classifyError(err error) (code string, exit int, message string) {
	switch {
	case errors.Is(err, input.ErrInvalidInput):
		return ErrCodeInput, ExitCommandError, "no weight recorded"
	case errors.Is(err, store.ErrMalformed):
		return ErrCodeParse, ExitCommandError, "history file is malformed; fix or move it aside"
	case errors.Is(err, stats.ErrEmpty):
		return ErrCodeEmpty, ExitCommandError, "no sessions recorded yet"
	case errors.Is(err, chart.ErrNoData), errors.Is(err, chart.ErrUnsupportedFormat):
		return ErrCodeChart, ExitCommandError, "chart not rendered"
	}

	if tracker.Persisted(err) {
		return ErrCodeChart, ExitFailure, "history saved, but the report could not be completed"
	}

	switch tracker.StageOf(err) {
	case tracker.StageLoad, tracker.StageSave:
		return ErrCodeStoreIO, ExitFailure, "history file could not be accessed"
	default:
		return ErrCodeGeneric, ExitFailure, "command failed"
	}
}

// OutputFormatter handles JSON vs text output for CLI commands.
type OutputFormatter struct {
	Format    string
	Writer    io.Writer
	ErrWriter io.Writer // Separate writer for verbose/diagnostic output (defaults to Writer)
	Verbose   bool
}

// CLIResponse is the standard JSON response format for CLI output.
type CLIResponse struct {
	Status string      `json:"status"`          // "ok" or "error"
	Data   interface{} `json:"data,omitempty"`  // success payload
	Error  *CLIError   `json:"error,omitempty"` // error details
}

// CLIError is the error structure for CLI responses.
type CLIError struct {
	Code    string      `json:"code"`              // "E001", "E002", etc.
	Message string      `json:"message"`           // human-readable message
	Details interface{} `json:"details,omitempty"` // additional context
}

// Success outputs a successful result in the configured format.
func (f *OutputFormatter) Success(data interface{}) error {
	if f.Format == "json" {
		return json.NewEncoder(f.Writer).Encode(CLIResponse{
			Status: "ok",
			Data:   data,
		})
	}

	// Human-readable text output
	_, err := fmt.Fprintln(f.Writer, data)
	return err
}

// Error writes a JSON error response.
// Text-mode errors are printed by main from the returned ExitError.
func (f *OutputFormatter) Error(code, message string, details interface{}) error {
	return json.NewEncoder(f.Writer).Encode(CLIResponse{
		Status: "error",
		Error: &CLIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

// VerboseLog outputs a message only if verbose mode is enabled.
// Uses ErrWriter if set, otherwise falls back to Writer.
// When format is JSON, verbose logs go to ErrWriter to avoid corrupting JSON output.
func (f *OutputFormatter) VerboseLog(format string, args ...interface{}) {
	if !f.Verbose {
		return
	}
	w := f.ErrWriter
	if w == nil {
		w = f.Writer
	}
	fmt.Fprintf(w, format+"\n", args...)
}
