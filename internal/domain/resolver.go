package domain

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"neogoto.dev/pkg/neogoto/internal/adapter"
	m "neogoto.dev/pkg/neogoto/internal/model"
)

// sameDir is always the first directory name tried at every ancestor level.
const sameDir = "."

// Ancestor is one step of the outward walk from a file's directory. Dir is
// the directory searched for candidate folders and Suffix is re-appended under
// a folder found there.
type Ancestor struct {
	Dir    m.Path
	Suffix m.Path
}

// AncestorWalk lists the (directory, suffix) pairs searched for path, nearest
// first. For /a/b/c/file.ext it yields
//
//	(/a/b/c, .) (/a/b, .) (/a, c) (/, b/c)
//
// At each level the folder directly below Dir is the one replaced by a
// candidate folder; everything below that is kept as the suffix.
func AncestorWalk(path m.Path) []Ancestor {
	parts := splitDir(filepath.Dir(filepath.Clean(string(path))))
	walk := make([]Ancestor, 0, len(parts))

	for i := range parts {
		end := len(parts) - i

		var rest []string
		if end+1 <= len(parts) {
			rest = parts[end+1:]
		}

		walk = append(walk, Ancestor{
			Dir:    joinParts(parts[:end]),
			Suffix: joinParts(rest),
		})
	}

	return walk
}

// splitDir breaks dir into its components, keeping the root ("/" or a volume)
// as the first component of absolute paths.
func splitDir(dir string) []string {
	if dir == "" || dir == "." {
		return nil
	}

	sep := string(filepath.Separator)
	volume := filepath.VolumeName(dir)
	rest := dir[len(volume):]

	var parts []string

	switch {
	case strings.HasPrefix(rest, sep):
		parts = append(parts, volume+sep)
		rest = strings.TrimLeft(rest, sep)
	case volume != "":
		parts = append(parts, volume)
	}

	for _, part := range strings.Split(rest, sep) {
		if part != "" {
			parts = append(parts, part)
		}
	}

	return parts
}

func joinParts(parts []string) m.Path {
	if len(parts) == 0 {
		return sameDir
	}

	return m.Path(filepath.Join(parts...))
}

// TraceFunc receives a human readable line for every probe the resolver makes.
type TraceFunc func(message string)

// ResolveOption configures a single resolution.
type ResolveOption func(*resolveConfig)

type resolveConfig struct {
	trace TraceFunc
}

// WithTrace reports every directory and file probe to fn.
func WithTrace(fn TraceFunc) ResolveOption {
	return func(c *resolveConfig) {
		c.trace = fn
	}
}

func newResolveConfig(opts []ResolveOption) *resolveConfig {
	cfg := &resolveConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	return cfg
}

func (c *resolveConfig) tracef(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	slog.Debug(message)

	if c.trace != nil {
		c.trace(message)
	}
}

// Resolver finds counterpart files by probing the filesystem.
type Resolver struct {
	fs adapter.SourceFSAdapter
}

// NewResolver constructs a Resolver that probes through fs.
func NewResolver(fs adapter.SourceFSAdapter) *Resolver {
	return &Resolver{fs: fs}
}

// Resolve locates the file of category mapping that corresponds to path.
//
// Ancestor levels are visited nearest first. At each level the directory
// names "." and then mapping.Dirs are tried in order; for every one that
// exists, the mapping's extensions are tried in order against
// prefix+stem under that directory and the ancestor's suffix. The first
// regular file found wins. ErrNoMatchFound is returned when nothing exists.
func (r *Resolver) Resolve(path m.Path, mapping m.CategoryMapping, opts ...ResolveOption) (m.Path, error) {
	if strings.TrimSpace(string(path)) == "" {
		return "", ErrEmptyPath
	}

	cfg := newResolveConfig(opts)
	if target, ok := r.probe(path, mapping, cfg); ok {
		return target, nil
	}

	return "", noMatch(mapping.Name, path)
}

// ResolveCategory resolves path as is against the category registered as name.
func (r *Resolver) ResolveCategory(path m.Path, registry *Registry, name m.CategoryName, opts ...ResolveOption) (m.Path, error) {
	mapping, ok := registry.Lookup(name)
	if !ok {
		return "", unknownCategory(name, "not registered")
	}

	return r.Resolve(path, mapping, opts...)
}

// ResolveCounterpart resolves the counterpart of path in the category
// registered as name. The prefix of path's own category is dropped first
// ("Testfoo.cpp" looks for "foo.h"); when that finds nothing the unmodified
// name is tried. path itself is never returned.
func (r *Resolver) ResolveCounterpart(path m.Path, registry *Registry, name m.CategoryName, opts ...ResolveOption) (m.Path, error) {
	if strings.TrimSpace(string(path)) == "" {
		return "", ErrEmptyPath
	}

	mapping, ok := registry.Lookup(name)
	if !ok {
		return "", unknownCategory(name, "not registered")
	}

	return r.counterpart(path, registry, mapping, newResolveConfig(opts))
}

// ResolveSwitch resolves path against the switch target of its own category.
func (r *Resolver) ResolveSwitch(path m.Path, registry *Registry, opts ...ResolveOption) (m.Path, error) {
	if strings.TrimSpace(string(path)) == "" {
		return "", ErrEmptyPath
	}

	current, ok := Classify(path, registry)
	if !ok {
		return "", unknownCategory("", "no category for %s", path)
	}

	if current.SwitchTo == "" {
		return "", unknownCategory(current.Name, "no switch target")
	}

	target, ok := registry.Lookup(current.SwitchTo)
	if !ok {
		return "", unknownCategory(current.SwitchTo, "switch target of %q is not registered", current.Name)
	}

	slog.Debug("switching category", "path", path, "from", current.Name, "to", target.Name)

	return r.counterpart(path, registry, target, newResolveConfig(opts))
}

func (r *Resolver) counterpart(path m.Path, registry *Registry, mapping m.CategoryMapping, cfg *resolveConfig) (m.Path, error) {
	candidates := []m.Path{path}
	if base := counterpartBase(path, registry); base != path {
		candidates = []m.Path{base, path}
	}

	for _, candidate := range candidates {
		// A file is never its own counterpart.
		if target, ok := r.probe(candidate, mapping, cfg); ok && target != path {
			return target, nil
		}
	}

	return "", noMatch(mapping.Name, path)
}

func (r *Resolver) probe(path m.Path, mapping m.CategoryMapping, cfg *resolveConfig) (m.Path, bool) {
	stem := path.Stem()
	dirs := append([]string{sameDir}, mapping.Dirs...)

	cfg.tracef("mapping dirs %v", dirs)

	for _, ancestor := range AncestorWalk(path) {
		for _, dir := range dirs {
			folder := filepath.Join(string(ancestor.Dir), dir)
			if !r.fs.IsDir(m.Path(folder)) {
				continue
			}

			cfg.tracef("found valid dir %s", folder)

			for _, ext := range mapping.Extensions {
				name := mapping.Prefix + stem + "." + ext
				candidate := m.Path(filepath.Join(folder, string(ancestor.Suffix), name))

				cfg.tracef("trying file %s", candidate)

				if r.fs.IsFile(candidate) {
					cfg.tracef("found matching file %s", candidate)
					return candidate, true
				}
			}
		}
	}

	return "", false
}

func noMatch(name m.CategoryName, path m.Path) error {
	return fmt.Errorf("%w: no %s file for %s", ErrNoMatchFound, name, path)
}

// counterpartBase drops the prefix of the category path belongs to. Paths
// whose stem would become empty are returned unchanged.
func counterpartBase(path m.Path, registry *Registry) m.Path {
	current, ok := Classify(path, registry)
	if !ok || current.Prefix == "" {
		return path
	}

	stem := path.Stem()
	if !strings.HasPrefix(stem, current.Prefix) || len(stem) == len(current.Prefix) {
		return path
	}

	name := strings.TrimPrefix(stem, current.Prefix)
	if ext := path.Ext(); ext != "" {
		name += "." + ext
	}

	return m.Path(filepath.Join(string(path.Dir()), name))
}
