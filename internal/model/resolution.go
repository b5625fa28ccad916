package model

// Resolution is the outcome of resolving one category for one file.
type Resolution struct {
	Source   Path
	Category CategoryName
	// Current is the category the source file was classified as, if any.
	Current CategoryName
	// Target is empty when nothing was found.
	Target Path
	Err    error
}

// Found reports whether the resolution produced a file.
func (r Resolution) Found() bool {
	return r.Err == nil && r.Target != ""
}
