package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Load reads the full sample history.
//
// A missing file is an empty history, not an error. Contents that are not
// an array of finite numbers produce a *ParseError; the caller should abort
// rather than overwrite the file and lose history.
func (s *Store) Load() (Samples, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Samples{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}

	samples, err := unmarshalSamples(s.format, data)
	if err != nil {
		return nil, &ParseError{Path: s.path, Err: err}
	}
	return samples, nil
}

// Exists reports whether the store file is present.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", s.path, err)
	}
	return true, nil
}
