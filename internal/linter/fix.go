package linter

import (
	"fmt"
	"os"
	"sort"

	"github.com/danielsogl/relint/internal/annotation"
	"github.com/danielsogl/relint/internal/rules"
	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/textedit"
	"github.com/danielsogl/relint/internal/types"
)

// applyFixes is a single left-to-right sweep over the rules that had a
// fixable failure in the original batch, in dispatch order.
//
// Each rule is re-executed against the current view rather than the
// stale batch: earlier rules in the same sweep may already have moved
// text around, and a fix is only trustworthy when computed against text
// that reflects every committed edit. Suppression is re-filtered per
// rule for the same reason.
//
// This is deliberately not a fixed-point loop. A fix from a later rule
// that re-introduces an earlier rule's fixable failure is left for the
// next invocation; converging further would change observable output.
//
// Type information is not refreshed for views re-derived mid-sweep, so
// type-aware rules see the pre-fix semantic context.
func (l *Linter) applyFixes(view *source.View, enabled []rules.ResolvedRule, batch []*types.Failure) (*source.View, []*types.Failure, error) {
	fixableRules := make(map[string]bool)
	for _, f := range batch {
		if f.HasFix() {
			fixableRules[f.RuleName] = true
		}
	}

	originalText := view.Text

	for _, rr := range enabled {
		if !fixableRules[rr.Rule.Name()] {
			continue
		}

		fresh := annotation.Filter(view, l.execute(rr, view))

		var selected []types.Replacement
		for _, f := range fresh {
			if !f.HasFix() {
				continue
			}
			// Fixes are recorded for reporting regardless of which
			// file they target.
			l.fixes = append(l.fixes, f.Fix)
			selected = append(selected, f.Fix.Replacements...)
		}

		byPath := textedit.GroupByPath(selected)
		local := byPath[view.Path]
		delete(byPath, view.Path)

		// Cross-file replacements commit immediately, before the next
		// rule runs. No batching across files.
		for _, path := range sortedKeys(byPath) {
			if err := l.commitFile(path, byPath[path]); err != nil {
				return nil, nil, err
			}
			l.logger.Debug("applied cross-file fix", "rule", rr.Rule.Name(), "path", path)
		}

		if len(local) > 0 {
			newText, err := textedit.Apply(view.Text, local)
			if err != nil {
				return nil, nil, fmt.Errorf("failed to merge fixes from rule %q into %s: %w", rr.Rule.Name(), view.Path, err)
			}
			next, err := source.Parse(view.Path, newText)
			if err != nil {
				return nil, nil, fmt.Errorf("fixes from rule %q produced unparsable source: %w", rr.Rule.Name(), err)
			}
			view = next
		}
	}

	if view.Text != originalText {
		if err := writeFile(view.Path, view.Text); err != nil {
			return nil, nil, fmt.Errorf("failed to write fixed file %s: %w", view.Path, err)
		}
	}

	// The pre-fix batch is stale now. Recompute everything against the
	// final view: all enabled rules, fresh suppression.
	final := l.collect(view, enabled)
	return view, final, nil
}

// commitFile merges replacements into a file other than the one being
// linted: read its current text, merge, write back. Failures here are
// fatal; no partial-state repair is attempted.
func (l *Linter) commitFile(path string, replacements []types.Replacement) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read fix target %s: %w", path, err)
	}

	merged, err := textedit.Apply(string(data), replacements)
	if err != nil {
		return fmt.Errorf("failed to merge fixes into %s: %w", path, err)
	}

	return writeFile(path, merged)
}

// writeFile overwrites a file, preserving its mode when it exists
func writeFile(path, text string) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, []byte(text), mode)
}

func sortedKeys(m map[string][]types.Replacement) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
