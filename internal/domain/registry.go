// Package domain implements category classification and counterpart resolution.
package domain

import (
	"strings"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

// Registry is an ordered, immutable set of category mappings. Registration
// order is significant: it breaks classification ties.
type Registry struct {
	order  []m.CategoryName
	byName map[m.CategoryName]m.CategoryMapping
}

// DefaultMappings returns the built-in header/source/test categories.
func DefaultMappings() []m.CategoryMapping {
	return []m.CategoryMapping{
		{
			Name:       m.Header,
			Dirs:       []string{"Include", "include", "Impl", "impl"},
			Extensions: []string{"hpp", "h"},
			SwitchTo:   m.Source,
		},
		{
			Name:       m.Source,
			Dirs:       []string{"Source", "source", "src"},
			Extensions: []string{"cpp", "c"},
			SwitchTo:   m.Header,
		},
		{
			Name:       m.Test,
			Dirs:       []string{"UnitTest", "UnitTests", "test"},
			Extensions: []string{"cpp", "c"},
			Prefix:     "Test",
			SwitchTo:   m.Source,
		},
	}
}

// DefaultRegistry returns a registry built from DefaultMappings.
func DefaultRegistry() *Registry {
	registry, err := NewRegistry(DefaultMappings())
	if err != nil {
		panic(err)
	}

	return registry
}

// NewRegistry validates mappings and builds a registry from them. Leading dots
// on extensions are dropped. The mappings are copied, so later changes to the
// argument do not affect the registry.
func NewRegistry(mappings []m.CategoryMapping) (*Registry, error) {
	registry := &Registry{
		order:  make([]m.CategoryName, 0, len(mappings)),
		byName: make(map[m.CategoryName]m.CategoryMapping, len(mappings)),
	}

	for _, mapping := range mappings {
		normalized, err := normalizeMapping(mapping)
		if err != nil {
			return nil, err
		}

		if _, exists := registry.byName[normalized.Name]; exists {
			return nil, malformed(normalized.Name, "registered more than once")
		}

		registry.order = append(registry.order, normalized.Name)
		registry.byName[normalized.Name] = normalized
	}

	for _, name := range registry.order {
		target := registry.byName[name].SwitchTo
		if target == "" {
			continue
		}

		if _, ok := registry.byName[target]; !ok {
			return nil, malformed(name, "switches to unregistered category %q", target)
		}
	}

	return registry, nil
}

func normalizeMapping(mapping m.CategoryMapping) (m.CategoryMapping, error) {
	name := m.CategoryName(strings.TrimSpace(string(mapping.Name)))
	if name == "" {
		return m.CategoryMapping{}, malformed("", "category without a name")
	}

	if len(mapping.Extensions) == 0 {
		return m.CategoryMapping{}, malformed(name, "no extensions")
	}

	extensions := make([]string, 0, len(mapping.Extensions))
	for _, ext := range mapping.Extensions {
		ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
		if ext == "" {
			return m.CategoryMapping{}, malformed(name, "empty extension")
		}

		extensions = append(extensions, ext)
	}

	dirs := make([]string, 0, len(mapping.Dirs))
	for _, dir := range mapping.Dirs {
		if strings.TrimSpace(dir) == "" {
			return m.CategoryMapping{}, malformed(name, "empty directory name")
		}

		dirs = append(dirs, dir)
	}

	return m.CategoryMapping{
		Name:       name,
		Dirs:       dirs,
		Extensions: extensions,
		Prefix:     mapping.Prefix,
		SwitchTo:   m.CategoryName(strings.TrimSpace(string(mapping.SwitchTo))),
	}, nil
}

// Lookup returns the mapping registered under name.
func (r *Registry) Lookup(name m.CategoryName) (m.CategoryMapping, bool) {
	mapping, ok := r.byName[name]
	if !ok {
		return m.CategoryMapping{}, false
	}

	return cloneMapping(mapping), true
}

// Names returns the registered category names in registration order.
func (r *Registry) Names() []m.CategoryName {
	return append([]m.CategoryName(nil), r.order...)
}

// Mappings returns copies of every mapping in registration order.
func (r *Registry) Mappings() []m.CategoryMapping {
	mappings := make([]m.CategoryMapping, 0, len(r.order))
	for _, name := range r.order {
		mappings = append(mappings, cloneMapping(r.byName[name]))
	}

	return mappings
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	return len(r.order)
}

func cloneMapping(mapping m.CategoryMapping) m.CategoryMapping {
	mapping.Dirs = append([]string(nil), mapping.Dirs...)
	mapping.Extensions = append([]string(nil), mapping.Extensions...)

	return mapping
}
