// Package testutil provides shared helpers for tests: real temp-dir trees
// and afero-backed in-memory filesystems.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"github.com/arthur-debert/globber/pkg/filesystem"
)

// CreateFile creates a file with the given content in the specified directory.
// It fails the test if the file cannot be created.
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create parent directories for %s: %v", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create file %s: %v", path, err)
	}

	return path
}

// CreateDir creates a directory in the specified parent directory.
// It fails the test if the directory cannot be created.
func CreateDir(t *testing.T, parent, name string) string {
	t.Helper()

	path := filepath.Join(parent, name)

	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("Failed to create directory %s: %v", path, err)
	}

	return path
}

// MemoryFS builds an in-memory filesystem from directory paths and
// file paths. Afero lists entries lexicographically, which keeps
// traversal tests deterministic.
func MemoryFS(t *testing.T, dirs []string, files []string) filesystem.FS {
	t.Helper()

	mem := afero.NewMemMapFs()
	for _, d := range dirs {
		if err := mem.MkdirAll(d, 0755); err != nil {
			t.Fatalf("Failed to create directory %s: %v", d, err)
		}
	}
	for _, f := range files {
		if err := afero.WriteFile(mem, f, []byte("test content"), 0644); err != nil {
			t.Fatalf("Failed to create file %s: %v", f, err)
		}
	}
	return filesystem.NewAferoFS(mem)
}
