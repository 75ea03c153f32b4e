package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// filePerm matches what a plain create would give a user-owned data file.
const filePerm = 0o644

// Save replaces the store file with the full sequence.
//
// The new contents are written to a temp file in the same directory,
// synced, and renamed over the target. If any step fails the previous
// file is left as it was.
func (s *Store) Save(samples Samples) error {
	if err := validate(samples); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	data, err := marshalSamples(s.format, samples)
	if err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}

	if err := WriteFileAtomic(s.path, data); err != nil {
		return fmt.Errorf("save %s: %w", s.path, err)
	}
	return nil
}

// WriteFileAtomic writes data to path via temp file and rename.
// Also used for chart exports so a half-written image never replaces a good one.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()

	// Any early return below leaves no temp file behind.
	committed := false
	defer func() {
		if !committed {
			tmp.Close()
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace file: %w", err)
	}

	committed = true
	return nil
}
