package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

func TestLocalSourceFSAdapter_IsDir(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	nested := filepath.Join(root, "Include")
	mustMkdir(t, nested)
	file := filepath.Join(root, "x.cpp")
	writeTestFile(t, file, "int x;\n")

	if !adapter.IsDir(m.Path(nested)) {
		t.Fatalf("IsDir(%s) = false, want true", nested)
	}

	if adapter.IsDir(m.Path(file)) {
		t.Fatalf("IsDir(%s) = true for a regular file", file)
	}

	if adapter.IsDir(m.Path(filepath.Join(root, "missing"))) {
		t.Fatalf("IsDir() = true for a missing path")
	}
}

func TestLocalSourceFSAdapter_IsFile(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	root := t.TempDir()
	file := filepath.Join(root, "x.h")
	writeTestFile(t, file, "#pragma once\n")

	if !adapter.IsFile(m.Path(file)) {
		t.Fatalf("IsFile(%s) = false, want true", file)
	}

	if adapter.IsFile(m.Path(root)) {
		t.Fatalf("IsFile(%s) = true for a directory", root)
	}

	t.Run("errors are reported as missing", func(t *testing.T) {
		// A file used as a directory component makes stat fail with ENOTDIR.
		bogus := filepath.Join(file, "child.h")
		if adapter.IsFile(m.Path(bogus)) {
			t.Fatalf("IsFile(%s) = true, want false", bogus)
		}

		if adapter.IsDir(m.Path(bogus)) {
			t.Fatalf("IsDir(%s) = true, want false", bogus)
		}
	})
}

func TestSourceFSAdapter_MemMapFs(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("/repo/Include/lib", 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if err := afero.WriteFile(fs, "/repo/Include/lib/x.h", []byte("x"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	adapter := NewSourceFSAdapter(fs)

	if !adapter.IsDir("/repo/Include") {
		t.Fatalf("IsDir(/repo/Include) = false, want true")
	}

	if !adapter.IsFile("/repo/Include/lib/x.h") {
		t.Fatalf("IsFile(/repo/Include/lib/x.h) = false, want true")
	}

	if adapter.IsFile("/repo/Include/lib/x.hpp") {
		t.Fatalf("IsFile(/repo/Include/lib/x.hpp) = true, want false")
	}
}

func TestLocalSourceFSAdapter_Abs(t *testing.T) {
	adapter := NewLocalSourceFSAdapter()

	got, err := adapter.Abs("/repo/Source/../Source/lib/x.cpp")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}

	if got != m.Path("/repo/Source/lib/x.cpp") {
		t.Fatalf("Abs() = %s, want /repo/Source/lib/x.cpp", got)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}

	got, err = adapter.Abs("lib/x.cpp")
	if err != nil {
		t.Fatalf("Abs() error = %v", err)
	}

	if want := m.Path(filepath.Join(wd, "lib", "x.cpp")); got != want {
		t.Fatalf("Abs() = %s, want %s", got, want)
	}
}

func writeTestFile(t *testing.T, path, contents string) {
	t.Helper()

	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
}

func mustMkdir(t *testing.T, path string) {
	t.Helper()

	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("failed to create dir %s: %v", path, err)
	}
}
