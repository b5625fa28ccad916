// Package controller renders neogoto results on the terminal.
package controller

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

// ErrNothingToPick is returned by Pick when no resolution found a file.
var ErrNothingToPick = errors.New("no related files found")

// UI defines how command results are presented.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayCategories(ctx context.Context, mappings []m.CategoryMapping) error
	DisplayRelated(ctx context.Context, results []m.Resolution) error
	// Pick lets the user choose one of the found targets.
	Pick(ctx context.Context, results []m.Resolution) (m.Path, error)
}

// NewUI returns a TUI when output is a terminal and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is an interactive terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

func foundTargets(results []m.Resolution) []m.Resolution {
	found := make([]m.Resolution, 0, len(results))
	for _, result := range results {
		if result.Found() {
			found = append(found, result)
		}
	}

	return found
}
