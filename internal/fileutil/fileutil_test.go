package fileutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b", "c")
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	exists, err := DirExists(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Fatalf("expected %s to exist", dir)
	}

	// Creating an existing directory is fine.
	if err := EnsureDir(dir); err != nil {
		t.Fatal(err)
	}
	if err := EnsureDir(""); err != nil {
		t.Fatalf("empty dir should be a no-op: %v", err)
	}
}

func TestDirExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if ok, err := DirExists(file); err != nil || ok {
		t.Fatalf("DirExists(file) = %v, %v", ok, err)
	}
	if ok, err := DirExists(filepath.Join(dir, "absent")); err != nil || ok {
		t.Fatalf("DirExists(absent) = %v, %v", ok, err)
	}
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "f.txt")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	if ok, err := FileExists(file); err != nil || !ok {
		t.Fatalf("FileExists(file) = %v, %v", ok, err)
	}
	if ok, err := FileExists(dir); err != nil || ok {
		t.Fatalf("FileExists(dir) = %v, %v", ok, err)
	}
}
