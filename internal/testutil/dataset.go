package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// DatasetHeader is the minimal CSV header accepted by the loader.
const DatasetHeader = "Category,Sub_category,type,generated_conversation\n"

// WriteFile writes content to name inside a per-test temporary directory and
// returns the full path.
func WriteFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	Rewrite(t, path, content)
	return path
}

// Rewrite replaces the contents of an existing fixture file.
func Rewrite(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write fixture %s: %v", path, err)
	}
}

// WriteDataset writes a CSV dataset made of DatasetHeader followed by rows.
func WriteDataset(t *testing.T, rows string) string {
	t.Helper()
	return WriteFile(t, "data.csv", DatasetHeader+rows)
}

// MissingPath returns a path in a temporary directory that does not exist.
func MissingPath(t *testing.T, name string) string {
	t.Helper()
	return filepath.Join(t.TempDir(), name)
}
