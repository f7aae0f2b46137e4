// Package textedit merges offset-based replacements into a base text.
//
// Replacements are applied in descending start-offset order so that the
// offsets of yet-unapplied replacements stay valid. Overlap policy: when
// two replacements overlap, the one with the larger start offset is
// applied and the overlapping one is skipped. Adjacent but
// non-overlapping replacements are kept distinct. Ties on start offset
// are broken by larger end offset first; remaining ties keep
// registration order, which for two insertions at the same offset
// places the later-registered text before the earlier-registered text
// in the output. The policy is deterministic for identical input.
package textedit

import (
	"fmt"
	"sort"

	"github.com/danielsogl/relint/internal/types"
)

// Apply merges the given replacements into base and returns the new
// text. Replacements with offsets outside the base text are an error;
// stale offsets must never be committed silently.
func Apply(base string, replacements []types.Replacement) (string, error) {
	if len(replacements) == 0 {
		return base, nil
	}

	ordered := make([]types.Replacement, len(replacements))
	copy(ordered, replacements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start == ordered[j].Start {
			return ordered[i].End > ordered[j].End
		}
		return ordered[i].Start > ordered[j].Start
	})

	text := []byte(base)
	// Start offset of the most recently applied replacement. Anything
	// reaching past it overlaps and is dropped.
	limit := len(base) + 1

	for _, rep := range ordered {
		if rep.Start < 0 || rep.End < rep.Start || rep.End > len(base) {
			return "", fmt.Errorf("replacement range [%d,%d) is outside text of length %d", rep.Start, rep.End, len(base))
		}
		if overlaps(rep, limit) {
			continue
		}
		suffix := append([]byte(nil), text[rep.End:]...)
		text = append(append(text[:rep.Start], []byte(rep.Text)...), suffix...)
		limit = rep.Start
	}

	return string(text), nil
}

// overlaps reports whether the replacement reaches into the region
// already rewritten by previously applied replacements. A pure
// insertion exactly at the boundary does not overlap.
func overlaps(rep types.Replacement, limit int) bool {
	if rep.IsInsertion() {
		return rep.Start > limit
	}
	return rep.End > limit
}

// GroupByPath partitions replacements by their target file path,
// preserving order within each group
func GroupByPath(replacements []types.Replacement) map[string][]types.Replacement {
	groups := make(map[string][]types.Replacement)
	for _, rep := range replacements {
		groups[rep.Path] = append(groups[rep.Path], rep)
	}
	return groups
}
