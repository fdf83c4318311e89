package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRepoRootFrom(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "go.mod"), []byte("module x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}

	got, err := repoRootFrom(nested)
	if err != nil {
		t.Fatalf("repoRootFrom: %v", err)
	}
	if got != root {
		t.Errorf("root = %s, want %s", got, root)
	}
}

func TestFindLoader(t *testing.T) {
	goroot := t.TempDir()
	if _, err := findLoader(goroot); err == nil {
		t.Fatal("expected an error without wasm_exec.js")
	}

	legacy := filepath.Join(goroot, "misc", "wasm", "wasm_exec.js")
	if err := os.MkdirAll(filepath.Dir(legacy), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(legacy, []byte("//"), 0644); err != nil {
		t.Fatal(err)
	}
	got, err := findLoader(goroot)
	if err != nil || got != legacy {
		t.Errorf("findLoader = %s, %v", got, err)
	}
}

func TestCopyFile(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.js")
	dst := filepath.Join(dir, "out", "dst.js")
	if err := os.WriteFile(src, []byte("loader"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := copyFile(src, dst); err != nil {
		t.Fatalf("copyFile: %v", err)
	}
	data, err := os.ReadFile(dst)
	if err != nil || string(data) != "loader" {
		t.Errorf("copied %q, %v", data, err)
	}
}
