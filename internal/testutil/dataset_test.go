package testutil

import (
	"os"
	"strings"
	"testing"
)

func TestWriteDataset(t *testing.T) {
	path := WriteDataset(t, "Physical,Trauma,res,Doctor: hi\n")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !strings.HasPrefix(string(data), DatasetHeader) || !strings.HasSuffix(string(data), "Doctor: hi\n") {
		t.Fatalf("unexpected fixture contents %q", data)
	}
	Rewrite(t, path, "x")
	if data, _ := os.ReadFile(path); string(data) != "x" {
		t.Fatalf("expected rewrite, got %q", data)
	}
}

func TestMissingPath(t *testing.T) {
	if _, err := os.Stat(MissingPath(t, "nope.csv")); !os.IsNotExist(err) {
		t.Fatalf("expected missing path, got %v", err)
	}
}
