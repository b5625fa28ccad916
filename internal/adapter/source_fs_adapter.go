// Package adapter contains the filesystem and editor adapters for the neogoto CLI.
package adapter

import (
	"log/slog"
	"path/filepath"

	"github.com/spf13/afero"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// SourceFSAdapter abstracts the read-only filesystem probes the resolver relies
// on. Probes never fail: any error from the underlying filesystem is reported
// as "does not exist".
type SourceFSAdapter interface {
	// IsDir reports whether path exists and is a directory.
	IsDir(path m.Path) bool

	// IsFile reports whether path exists and is a regular file.
	IsFile(path m.Path) bool

	// Abs returns a cleaned absolute version of path.
	Abs(path m.Path) (m.Path, error)
}

// LocalSourceFSAdapter implements SourceFSAdapter on top of an afero filesystem.
type LocalSourceFSAdapter struct {
	fs afero.Fs
}

// NewLocalSourceFSAdapter constructs an adapter backed by the OS filesystem.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return NewSourceFSAdapter(afero.NewOsFs())
}

// NewSourceFSAdapter constructs an adapter backed by fs.
func NewSourceFSAdapter(fs afero.Fs) *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{fs: fs}
}

// IsDir reports whether path exists and is a directory.
func (a *LocalSourceFSAdapter) IsDir(path m.Path) bool {
	info, err := a.fs.Stat(string(path))
	if err != nil {
		slog.Debug("stat failed", "path", path, "error", err)
		return false
	}

	return info.IsDir()
}

// IsFile reports whether path exists and is a regular file.
func (a *LocalSourceFSAdapter) IsFile(path m.Path) bool {
	info, err := a.fs.Stat(string(path))
	if err != nil {
		slog.Debug("stat failed", "path", path, "error", err)
		return false
	}

	return info.Mode().IsRegular()
}

// Abs returns a cleaned absolute version of path. Paths that are already
// absolute are only cleaned.
func (a *LocalSourceFSAdapter) Abs(path m.Path) (m.Path, error) {
	if filepath.IsAbs(string(path)) {
		return m.Path(filepath.Clean(string(path))), nil
	}

	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}
