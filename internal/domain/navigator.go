package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"neogoto.dev/pkg/neogoto/internal/adapter"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// GotoArgs contains the arguments for jumping to a counterpart file.
type GotoArgs struct {
	// Category is the target category. It is ignored when Switch is set.
	Category  m.CategoryName
	Switch    bool
	Placement m.Placement
	// Debug echoes every probe through the editor's status line.
	Debug bool
}

// RelatedArgs contains the arguments for listing counterparts of many files.
type RelatedArgs struct {
	Paths    []m.Path
	Parallel int
}

// Navigator connects the resolver to an editor.
type Navigator interface {
	Goto(ctx context.Context, editor adapter.Editor, args GotoArgs) (m.Path, error)
	Related(ctx context.Context, args RelatedArgs) ([]m.Resolution, error)
}

type navigator struct {
	fs       adapter.SourceFSAdapter
	resolver *Resolver
	registry *Registry
}

// NewNavigator creates a Navigator resolving against registry.
func NewNavigator(fs adapter.SourceFSAdapter, registry *Registry) Navigator {
	return &navigator{
		fs:       fs,
		resolver: NewResolver(fs),
		registry: registry,
	}
}

// Goto resolves the counterpart of the editor's current file and opens it.
// Failures are shown as a status message and returned.
func (n *navigator) Goto(ctx context.Context, editor adapter.Editor, args GotoArgs) (m.Path, error) {
	current, err := editor.CurrentPath(ctx)
	if err != nil {
		return "", fmt.Errorf("get current file: %w", err)
	}

	if current == "" {
		editor.Status(ctx, "No file in the current window")
		return "", ErrEmptyPath
	}

	current, err = n.fs.Abs(current)
	if err != nil {
		return "", fmt.Errorf("absolute path of %s: %w", current, err)
	}

	var opts []ResolveOption
	if args.Debug {
		opts = append(opts, WithTrace(func(message string) {
			editor.Status(ctx, message)
		}))
	}

	var target m.Path
	if args.Switch {
		target, err = n.resolver.ResolveSwitch(current, n.registry, opts...)
	} else {
		target, err = n.resolver.ResolveCategory(current, n.registry, args.Category, opts...)
	}

	if err != nil {
		editor.Status(ctx, failureMessage(current, args, err))
		slog.Info("no counterpart", "path", current, "category", args.Category, "switch", args.Switch, "error", err)

		return "", err
	}

	slog.Info("opening counterpart", "path", current, "target", target, "placement", args.Placement.String())

	if err := editor.Open(ctx, target, args.Placement); err != nil {
		return "", fmt.Errorf("open %s: %w", target, err)
	}

	return target, nil
}

func failureMessage(path m.Path, args GotoArgs, err error) string {
	switch {
	case errors.Is(err, ErrUnknownCategory) && args.Switch:
		return fmt.Sprintf("Unknown category for %s", path)
	case errors.Is(err, ErrUnknownCategory):
		return fmt.Sprintf("Unknown category %q for %s", args.Category, path)
	case args.Switch:
		return fmt.Sprintf("No counterpart file found for %s", path)
	default:
		return fmt.Sprintf("No %s file found for %s", args.Category, path)
	}
}

// Related classifies every path and resolves it against every other
// registered category. Paths are processed concurrently; results keep the
// order of args.Paths and then registration order.
func (n *navigator) Related(ctx context.Context, args RelatedArgs) ([]m.Resolution, error) {
	perPath := make([][]m.Resolution, len(args.Paths))

	var group errgroup.Group
	if args.Parallel > 0 {
		group.SetLimit(args.Parallel)
	}

	for i, path := range args.Paths {
		i, path := i, path
		group.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resolutions, err := n.relatedFor(path)
			if err != nil {
				return err
			}

			perPath[i] = resolutions

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	var results []m.Resolution
	for _, resolutions := range perPath {
		results = append(results, resolutions...)
	}

	return results, nil
}

func (n *navigator) relatedFor(path m.Path) ([]m.Resolution, error) {
	abs, err := n.fs.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("absolute path of %s: %w", path, err)
	}

	var currentName m.CategoryName
	if current, ok := Classify(abs, n.registry); ok {
		currentName = current.Name
	}

	resolutions := make([]m.Resolution, 0, n.registry.Len())

	for _, name := range n.registry.Names() {
		if name == currentName {
			continue
		}

		target, err := n.resolver.ResolveCounterpart(abs, n.registry, name)
		resolutions = append(resolutions, m.Resolution{
			Source:   abs,
			Category: name,
			Current:  currentName,
			Target:   target,
			Err:      err,
		})
	}

	return resolutions, nil
}
