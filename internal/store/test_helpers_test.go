package store

import (
	"os"
	"path/filepath"
	"testing"
)

// createTestStore creates a store backed by a file in a fresh temp dir.
func createTestStore(t *testing.T, name string) *Store {
	t.Helper()
	return New(filepath.Join(t.TempDir(), name))
}

// writeRaw writes a store file body directly, bypassing Save.
func writeRaw(t *testing.T, s *Store, body string) {
	t.Helper()
	if err := os.WriteFile(s.Path(), []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}
}

// readRaw returns the store file body.
func readRaw(t *testing.T, s *Store) string {
	t.Helper()
	data, err := os.ReadFile(s.Path())
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	return string(data)
}
