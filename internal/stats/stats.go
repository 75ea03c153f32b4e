// Package stats computes the summary shown after every logged session.
package stats

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// ErrEmpty is returned when there are no samples to summarize.
var ErrEmpty = errors.New("no samples to summarize")

// Summary is the aggregate view of a lift's history.
type Summary struct {
	Count          int     `json:"sessions"`
	Average        float64 `json:"average"`
	PersonalRecord float64 `json:"personal_record"`
}

// Summarize computes count, arithmetic mean and maximum over samples.
// The personal record is the maximum over the whole history, not the
// latest value.
func Summarize(samples []float64) (Summary, error) {
	if len(samples) == 0 {
		return Summary{}, ErrEmpty
	}

	return Summary{
		Count:          len(samples),
		Average:        floats.Sum(samples) / float64(len(samples)),
		PersonalRecord: floats.Max(samples),
	}, nil
}
