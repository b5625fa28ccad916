package adapter

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// TerminalEditor is the editor used when neogoto runs outside of an editor.
// The current file is fixed at construction, opening a file prints its path
// and status messages go to the error stream.
type TerminalEditor struct {
	current m.Path
	out     io.Writer
	errOut  io.Writer
	styled  bool
}

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))

// NewTerminalEditor creates a TerminalEditor. When styled is true status
// messages are colored for a terminal.
func NewTerminalEditor(current m.Path, out, errOut io.Writer, styled bool) *TerminalEditor {
	return &TerminalEditor{
		current: current,
		out:     out,
		errOut:  errOut,
		styled:  styled,
	}
}

// CurrentPath returns the path the editor was created with.
func (e *TerminalEditor) CurrentPath(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return e.current, nil
}

// Open prints path. Placement has no meaning outside an editor.
func (e *TerminalEditor) Open(ctx context.Context, path m.Path, _ m.Placement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := fmt.Fprintln(e.out, path)

	return err
}

// Status writes text to the error stream.
func (e *TerminalEditor) Status(_ context.Context, text string) {
	if e.styled {
		text = statusStyle.Render(text)
	}

	_, _ = fmt.Fprintln(e.errOut, text)
}
