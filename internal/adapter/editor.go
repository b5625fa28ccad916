package adapter

import (
	"context"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

// Editor is the host editor as seen by the navigator.
type Editor interface {
	// CurrentPath returns the absolute path of the file in the active window.
	CurrentPath(ctx context.Context) (m.Path, error)

	// Open shows path according to placement. Opening the file that is
	// already current is a no-op.
	Open(ctx context.Context, path m.Path, placement m.Placement) error

	// Status shows a best-effort message to the user.
	Status(ctx context.Context, text string)
}
