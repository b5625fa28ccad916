package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_Parts(t *testing.T) {
	tests := []struct {
		name string
		path Path
		base string
		dir  Path
		ext  string
		stem string
	}{
		{name: "source file", path: "/repo/Source/foo.cpp", base: "foo.cpp", dir: "/repo/Source", ext: "cpp", stem: "foo"},
		{name: "double extension", path: "/repo/lib/foo.tar.gz", base: "foo.tar.gz", dir: "/repo/lib", ext: "gz", stem: "foo.tar"},
		{name: "no extension", path: "/repo/Makefile", base: "Makefile", dir: "/repo", ext: "", stem: "Makefile"},
		{name: "dot file", path: "/home/.bashrc", base: ".bashrc", dir: "/home", ext: "", stem: ".bashrc"},
		{name: "relative", path: "foo.h", base: "foo.h", dir: ".", ext: "h", stem: "foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.base, tt.path.Base())
			assert.Equal(t, tt.dir, tt.path.Dir())
			assert.Equal(t, tt.ext, tt.path.Ext())
			assert.Equal(t, tt.stem, tt.path.Stem())
			assert.Equal(t, string(tt.path), tt.path.String())
		})
	}
}

func TestCategoryMapping_HasExtension(t *testing.T) {
	mapping := CategoryMapping{Name: Header, Extensions: []string{"hpp", "h"}}

	assert.True(t, mapping.HasExtension("h"))
	assert.True(t, mapping.HasExtension("hpp"))
	assert.False(t, mapping.HasExtension("cpp"))
	assert.False(t, mapping.HasExtension(""))
}

func TestResolution_Found(t *testing.T) {
	assert.True(t, Resolution{Target: "/repo/foo.h"}.Found())
	assert.False(t, Resolution{}.Found())
	assert.False(t, Resolution{Target: "/repo/foo.h", Err: errors.New("boom")}.Found())
}
