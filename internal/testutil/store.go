package testutil

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/roach88/cyclops/internal/store"
)

// ErrSaveFailed is what MemoryStore.Save returns when FailSave is set.
var ErrSaveFailed = errors.New("save failed")

// MemoryStore is an in-process store that can be told to fail.
//
// Implements tracker.SampleStore.
type MemoryStore struct {
	Samples  store.Samples
	LoadErr  error
	FailSave bool
	Saves    int
}

// NewMemoryStore returns a store holding samples.
func NewMemoryStore(samples ...float64) *MemoryStore {
	return &MemoryStore{Samples: append(store.Samples{}, samples...)}
}

// Load returns a copy of the held samples, or LoadErr.
func (m *MemoryStore) Load() (store.Samples, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append(store.Samples{}, m.Samples...), nil
}

// Save replaces the held samples unless FailSave is set.
func (m *MemoryStore) Save(samples store.Samples) error {
	if m.FailSave {
		return ErrSaveFailed
	}
	m.Saves++
	m.Samples = append(store.Samples{}, samples...)
	return nil
}

// Path identifies the store in log lines.
func (m *MemoryStore) Path() string {
	return "memory"
}

// WriteStoreFile writes body to name inside dir and returns the full path.
func WriteStoreFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile(%s) failed: %v", path, err)
	}
	return path
}

// ReadStoreFile returns the body of a store file.
func ReadStoreFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile(%s) failed: %v", path, err)
	}
	return string(data)
}
