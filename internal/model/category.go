package model

// CategoryName identifies a class of file such as a header or a unit test.
type CategoryName string

// Built-in category names.
const (
	Header CategoryName = "header"
	Source CategoryName = "source"
	Test   CategoryName = "test"
)

// CategoryMapping describes where files of a category live and how they are named.
type CategoryMapping struct {
	Name CategoryName
	// Dirs are candidate directory names, searched in order after ".".
	Dirs []string
	// Extensions are accepted file extensions without the dot, searched in order.
	Extensions []string
	// Prefix is prepended to the stem of files in this category (e.g. "Test").
	Prefix string
	// SwitchTo names the counterpart category. Empty means no counterpart.
	SwitchTo CategoryName
}

// HasExtension reports whether ext is one of the mapping's extensions.
func (c CategoryMapping) HasExtension(ext string) bool {
	for _, candidate := range c.Extensions {
		if candidate == ext {
			return true
		}
	}

	return false
}
