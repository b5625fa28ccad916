package domain

import (
	"log/slog"
	"strings"

	m "neogoto.dev/pkg/neogoto/internal/model"
)

// Classify returns the category that most plausibly owns path.
//
// Every category listing the path's extension is a candidate with a score of
// one; a declared prefix adds one when the stem starts with it and subtracts
// one otherwise. The highest score wins and ties go to the category
// registered first.
func Classify(path m.Path, registry *Registry) (m.CategoryMapping, bool) {
	ext := path.Ext()
	stem := path.Stem()

	var (
		best      m.CategoryMapping
		bestScore int
		found     bool
	)

	for _, name := range registry.order {
		mapping := registry.byName[name]
		if !mapping.HasExtension(ext) {
			continue
		}

		score := categoryScore(stem, mapping)
		slog.Debug("category candidate", "path", path, "category", name, "score", score)

		if !found || score > bestScore {
			best, bestScore, found = mapping, score, true
		}
	}

	if !found {
		return m.CategoryMapping{}, false
	}

	return cloneMapping(best), true
}

func categoryScore(stem string, mapping m.CategoryMapping) int {
	score := 1
	if mapping.Prefix == "" {
		return score
	}

	if strings.HasPrefix(stem, mapping.Prefix) {
		return score + 1
	}

	return score - 1
}
