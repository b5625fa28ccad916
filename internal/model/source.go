// Package model defines the values passed between neogoto's layers.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// Base returns the last element of the path.
func (p Path) Base() string {
	return filepath.Base(string(p))
}

// Dir returns all but the last element of the path.
func (p Path) Dir() Path {
	return Path(filepath.Dir(string(p)))
}

// Ext returns the final extension of the filename without the leading dot.
// Dot files such as ".bashrc" have no extension.
func (p Path) Ext() string {
	base := p.Base()

	ext := filepath.Ext(base)
	if ext == base {
		return ""
	}

	return strings.TrimPrefix(ext, ".")
}

// Stem returns the filename with its final extension stripped.
func (p Path) Stem() string {
	base := p.Base()
	ext := p.Ext()

	if ext == "" {
		return base
	}

	return strings.TrimSuffix(base, "."+ext)
}
