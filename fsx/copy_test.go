package fsx

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, content string, perm os.FileMode) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), perm); err != nil {
		t.Fatal(err)
	}
	if err := os.Chmod(path, perm); err != nil {
		t.Fatal(err)
	}
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func TestCopyTree(t *testing.T) {
	src := t.TempDir()
	writeFile(t, filepath.Join(src, "root.txt"), "root", 0o644)
	writeFile(t, filepath.Join(src, "sub", "nested.txt"), "nested", 0o640)
	writeFile(t, filepath.Join(src, "sub", "deeper", "leaf.txt"), "leaf", 0o600)
	if err := os.Mkdir(filepath.Join(src, "empty"), 0o755); err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "copy")
	if err := CopyTree(src, dst, false); err != nil {
		t.Fatalf("CopyTree() error: %v", err)
	}

	if got := readFile(t, filepath.Join(dst, "root.txt")); got != "root" {
		t.Errorf("root.txt = %q", got)
	}
	if got := readFile(t, filepath.Join(dst, "sub", "deeper", "leaf.txt")); got != "leaf" {
		t.Errorf("leaf.txt = %q", got)
	}
	if info, err := os.Stat(filepath.Join(dst, "empty")); err != nil || !info.IsDir() {
		t.Errorf("empty directory not copied: %v", err)
	}

	info, err := os.Stat(filepath.Join(dst, "sub", "nested.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o640 {
		t.Errorf("nested.txt mode = %v, want 0640", info.Mode().Perm())
	}
}

func TestCopyTree_Overwrite(t *testing.T) {
	src := t.TempDir()
	dst := t.TempDir()
	writeFile(t, filepath.Join(src, "file.txt"), "new", 0o644)
	writeFile(t, filepath.Join(dst, "file.txt"), "old", 0o644)

	err := CopyTree(src, dst, false)
	if !errors.Is(err, ErrFileExists) {
		t.Fatalf("CopyTree(no overwrite) error = %v, want ErrFileExists", err)
	}
	if got := readFile(t, filepath.Join(dst, "file.txt")); got != "old" {
		t.Errorf("file.txt = %q, want untouched", got)
	}

	if err := CopyTree(src, dst, true); err != nil {
		t.Fatalf("CopyTree(overwrite) error: %v", err)
	}
	if got := readFile(t, filepath.Join(dst, "file.txt")); got != "new" {
		t.Errorf("file.txt = %q, want %q", got, "new")
	}
}

func TestCopyTree_Errors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	if err := CopyTree(missing, t.TempDir(), false); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("CopyTree(missing) error = %v, want fs.ErrNotExist", err)
	}

	file := filepath.Join(t.TempDir(), "plain.txt")
	writeFile(t, file, "x", 0o644)
	if err := CopyTree(file, t.TempDir(), false); err == nil {
		t.Error("CopyTree(file) should fail for a non-directory source")
	}

	if err := CopyTree(t.TempDir(), filepath.Join(t.TempDir(), "a<b"), false); !errors.Is(err, ErrInvalidPath) {
		t.Errorf("CopyTree(invalid dst) error = %v, want ErrInvalidPath", err)
	}
}
