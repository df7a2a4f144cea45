package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteFile writes payload to name inside a fresh temp dir and returns the path.
func WriteFile(t testing.TB, name, payload string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}
