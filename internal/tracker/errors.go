package tracker

import (
	"errors"
	"fmt"
)

// Stage identifies the session phase an error came from.
type Stage string

const (
	StageLoad      Stage = "LOAD"
	StageAcquire   Stage = "ACQUIRE"
	StageSave      Stage = "SAVE"
	StageSummarize Stage = "SUMMARIZE"
	StagePrint     Stage = "PRINT"
	StageRender    Stage = "RENDER"
)

// StageError wraps a failure with the phase that produced it.
type StageError struct {
	Stage Stage
	RunID string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// StageOf returns the phase a session error came from.
// Returns "" for errors not produced by a Tracker.
func StageOf(err error) Stage {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage
	}
	return ""
}

// Persisted reports whether a Record error happened after the history was saved.
func Persisted(err error) bool {
	switch StageOf(err) {
	case StagePrint, StageRender:
		return true
	default:
		return false
	}
}
