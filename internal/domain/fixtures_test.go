package domain

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"

	"neogoto.dev/pkg/neogoto/internal/adapter"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// basicTree mirrors a typical C++ repository with split include/source trees.
var basicTree = []string{
	"/data/repo_root/Include/lib1/lib1_file1.h",
	"/data/repo_root/Source/lib1/lib1_file1.cpp",
	"/data/repo_root/Include/lib1/lib1_file2.hpp",
	"/data/repo_root/Source/lib1/lib1_file2.cpp",
	"/data/repo_root/Include/file1.h",
	"/data/repo_root/Source/file1.cpp",
	"/data/repo_root/Source/lib2/lib2_file1.h",
	"/data/repo_root/Source/lib2/lib2_file1.cpp",
	"/data/repo_root/UnitTest/lib2/Testlib2_file1.cpp",
	"/data/repo_root/UnitTest/Testfile1.cpp",
}

func newMemFS(t *testing.T, files ...string) afero.Fs {
	t.Helper()

	fs := afero.NewMemMapFs()
	for _, file := range files {
		require.NoError(t, fs.MkdirAll(filepath.Dir(file), 0o755))
		require.NoError(t, afero.WriteFile(fs, file, []byte(file), 0o644))
	}

	return fs
}

func newMemResolver(t *testing.T, files ...string) *Resolver {
	t.Helper()

	return NewResolver(adapter.NewSourceFSAdapter(newMemFS(t, files...)))
}

func headerMapping() m.CategoryMapping {
	return m.CategoryMapping{
		Name:       m.Header,
		Dirs:       []string{"Include", "Impl"},
		Extensions: []string{"h", "hpp"},
	}
}

func unitTestMapping() m.CategoryMapping {
	return m.CategoryMapping{
		Name:       m.Test,
		Dirs:       []string{"UnitTest"},
		Extensions: []string{"cpp"},
		Prefix:     "Test",
	}
}

// scenarioRegistry is the header/source pair with symmetric switches.
func scenarioRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewRegistry([]m.CategoryMapping{
		{Name: m.Header, Dirs: []string{"Include", "Impl"}, Extensions: []string{"h", "hpp"}, SwitchTo: m.Source},
		{Name: m.Source, Dirs: []string{"Source", "src"}, Extensions: []string{"cpp", "c"}, SwitchTo: m.Header},
	})
	require.NoError(t, err)

	return registry
}
