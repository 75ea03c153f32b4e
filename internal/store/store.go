package store

import (
	"errors"
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// DefaultPath is the store file used when the caller does not name one.
const DefaultPath = "data.json"

// Format identifies the on-disk encoding of a store file.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

var (
	// ErrMalformed matches any *ParseError via errors.Is.
	ErrMalformed = errors.New("malformed store file")

	// ErrInvalidSample is returned by Save for values that cannot be persisted.
	ErrInvalidSample = errors.New("invalid sample")
)

// ParseError reports a store file whose contents are not an array of numbers.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrMalformed) match every ParseError.
func (e *ParseError) Is(target error) bool {
	return target == ErrMalformed
}

// Samples is the chronological weight history of a single lift.
type Samples []float64

// Append returns a new sequence with x added at the end.
// The receiver is never modified.
func (s Samples) Append(x float64) Samples {
	out := make(Samples, len(s), len(s)+1)
	copy(out, s)
	return append(out, x)
}

// Last returns the most recent sample.
// Returns false if the sequence is empty.
func (s Samples) Last() (float64, bool) {
	if len(s) == 0 {
		return 0, false
	}
	return s[len(s)-1], true
}

// Store persists Samples to a single file.
type Store struct {
	path   string
	format Format
}

// New binds a store to path. The file is not touched until Load or Save.
// An empty path selects DefaultPath.
func New(path string) *Store {
	if path == "" {
		path = DefaultPath
	}
	return &Store{path: path, format: formatFor(path)}
}

// Path returns the file the store reads and writes.
func (s *Store) Path() string {
	return s.path
}

// Format returns the codec selected for the store file.
func (s *Store) Format() Format {
	return s.format
}

// formatFor picks the codec from the file extension.
func formatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// validate rejects values that have no JSON or YAML number representation.
func validate(samples Samples) error {
	for i, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: sample %d is %v", ErrInvalidSample, i+1, v)
		}
	}
	return nil
}
