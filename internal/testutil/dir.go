// Package testutil holds shared fixtures for store and API tests.
package testutil

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
)

// NewDataDir returns an empty temp directory to use as a store data dir.
func NewDataDir(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}

// WriteCSV writes records (header included) as a CSV file under dir,
// bypassing the stores. Used to seed fixtures with exact file contents.
func WriteCSV(t *testing.T, dir, name string, records [][]string) {
	t.Helper()
	f, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("create %s: %v", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(records); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	w.Flush()
	if err := w.Error(); err != nil {
		t.Fatalf("flush %s: %v", name, err)
	}
}

// ReadFile returns the raw bytes of a file under dir as a string.
func ReadFile(t *testing.T, dir, name string) string {
	t.Helper()
	b, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read %s: %v", name, err)
	}
	return string(b)
}
