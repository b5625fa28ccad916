package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/neovim/go-client/nvim"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// NvimClient is the subset of *nvim.Nvim used by NvimEditor.
type NvimClient interface {
	Call(fname string, result interface{}, args ...interface{}) error
	Command(cmd string) error
}

// NvimEditor drives a running Neovim instance over its RPC socket.
type NvimEditor struct {
	client NvimClient
	closer func() error
}

// DialNvimEditor connects to the Neovim server listening on address
// (the value of $NVIM inside a Neovim terminal).
func DialNvimEditor(address string) (*NvimEditor, error) {
	client, err := nvim.Dial(address)
	if err != nil {
		return nil, fmt.Errorf("dial nvim at %s: %w", address, err)
	}

	return &NvimEditor{client: client, closer: client.Close}, nil
}

// NewNvimEditor wraps an existing client.
func NewNvimEditor(client NvimClient) *NvimEditor {
	return &NvimEditor{client: client}
}

// Close releases the RPC connection when the editor owns it.
func (e *NvimEditor) Close() error {
	if e.closer == nil {
		return nil
	}

	return e.closer()
}

// CurrentPath returns expand('%:p').
func (e *NvimEditor) CurrentPath(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	var path string
	if err := e.client.Call("expand", &path, "%:p"); err != nil {
		return "", fmt.Errorf("expand current path: %w", err)
	}

	return m.Path(path), nil
}

// Open edits path in the window selected by placement, leaving a jump mark
// behind so <C-o> returns to the previous file.
func (e *NvimEditor) Open(ctx context.Context, path m.Path, placement m.Placement) error {
	current, err := e.CurrentPath(ctx)
	if err != nil {
		return err
	}

	if current == path {
		return nil
	}

	var escaped string
	if err := e.client.Call("fnameescape", &escaped, string(path)); err != nil {
		return fmt.Errorf("escape %s: %w", path, err)
	}

	verb, err := e.openVerb(placement)
	if err != nil {
		return err
	}

	if err := e.client.Command("normal! m`"); err != nil {
		return fmt.Errorf("set jump mark: %w", err)
	}

	if err := e.client.Command(verb + " " + escaped); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}

	return nil
}

func (e *NvimEditor) openVerb(placement m.Placement) (string, error) {
	switch placement {
	case m.ReuseCurrent:
		return "edit", nil
	case m.SplitLeft:
		return "leftabove vsplit", nil
	case m.SplitRight:
		return "rightbelow vsplit", nil
	case m.FocusLeft:
		return e.focusOrSplit("h", "leftabove vsplit")
	case m.FocusRight:
		return e.focusOrSplit("l", "rightbelow vsplit")
	}

	return "", fmt.Errorf("unsupported placement %s", placement)
}

// focusOrSplit moves to the neighbouring window in direction when there is
// one and returns "edit"; otherwise it returns the split command.
func (e *NvimEditor) focusOrSplit(direction, split string) (string, error) {
	var current, neighbour int
	if err := e.client.Call("winnr", &current); err != nil {
		return "", fmt.Errorf("query window: %w", err)
	}

	if err := e.client.Call("winnr", &neighbour, direction); err != nil {
		return "", fmt.Errorf("query window %s: %w", direction, err)
	}

	if neighbour == current {
		return split, nil
	}

	if err := e.client.Command("wincmd " + direction); err != nil {
		return "", fmt.Errorf("focus window %s: %w", direction, err)
	}

	return "edit", nil
}

// Status echoes text into the message history.
func (e *NvimEditor) Status(_ context.Context, text string) {
	if err := e.client.Command("echomsg " + vimString(text)); err != nil {
		slog.Warn("failed to show status message", "text", text, "error", err)
	}
}

func vimString(text string) string {
	return "'" + strings.ReplaceAll(text, "'", "''") + "'"
}
