package adapter

import (
	"context"
	"sync"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

// OpenCall records one effective Open on a MemoryEditor.
type OpenCall struct {
	Path      m.Path
	Placement m.Placement
}

// MemoryEditor is a deterministic in-memory editor. It models a single row of
// vertical windows with one active window.
type MemoryEditor struct {
	mu       sync.Mutex
	windows  []m.Path
	active   int
	opened   []OpenCall
	messages []string
}

// NewMemoryEditor creates an editor with one window showing current.
func NewMemoryEditor(current m.Path) *MemoryEditor {
	return &MemoryEditor{windows: []m.Path{current}}
}

// CurrentPath returns the file in the active window.
func (e *MemoryEditor) CurrentPath(ctx context.Context) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	return e.windows[e.active], nil
}

// Open places path according to placement.
func (e *MemoryEditor) Open(ctx context.Context, path m.Path, placement m.Placement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.windows[e.active] == path {
		return nil
	}

	switch placement {
	case m.ReuseCurrent:
		e.windows[e.active] = path
	case m.SplitLeft:
		e.insertWindow(e.active, path)
	case m.SplitRight:
		e.insertWindow(e.active+1, path)
	case m.FocusLeft:
		if e.active == 0 {
			e.insertWindow(0, path)
			break
		}

		e.active--
		e.windows[e.active] = path
	case m.FocusRight:
		if e.active == len(e.windows)-1 {
			e.insertWindow(e.active+1, path)
			break
		}

		e.active++
		e.windows[e.active] = path
	default:
		e.windows[e.active] = path
	}

	e.opened = append(e.opened, OpenCall{Path: path, Placement: placement})

	return nil
}

func (e *MemoryEditor) insertWindow(index int, path m.Path) {
	e.windows = append(e.windows, "")
	copy(e.windows[index+1:], e.windows[index:])
	e.windows[index] = path
	e.active = index
}

// Status records text.
func (e *MemoryEditor) Status(_ context.Context, text string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.messages = append(e.messages, text)
}

// Windows returns the files shown in each window, left to right.
func (e *MemoryEditor) Windows() []m.Path {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]m.Path(nil), e.windows...)
}

// ActiveWindow returns the index of the active window.
func (e *MemoryEditor) ActiveWindow() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.active
}

// Opened returns every Open call that changed a window.
func (e *MemoryEditor) Opened() []OpenCall {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]OpenCall(nil), e.opened...)
}

// Messages returns every status message in order.
func (e *MemoryEditor) Messages() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.messages...)
}

// Focus makes the window at index active. Out of range indexes are ignored.
func (e *MemoryEditor) Focus(index int) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if index >= 0 && index < len(e.windows) {
		e.active = index
	}
}

// Split opens path in a new window to the right of the active one and
// focuses it, like ":vsplit" with splitright.
func (e *MemoryEditor) Split(path m.Path) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.insertWindow(e.active+1, path)
}
