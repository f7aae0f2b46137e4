package annotation

import (
	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// Filter returns the subset of failures not covered by suppression
// directives in the view. Directives are positional, so the caller must
// re-run the filter against any re-derived view after the text changes.
func Filter(view *source.View, failures []*types.Failure) []*types.Failure {
	if len(failures) == 0 {
		return failures
	}

	directives := ParseDirectives(view)
	if len(directives) == 0 {
		return failures
	}

	kept := make([]*types.Failure, 0, len(failures))
	for _, f := range failures {
		if !suppressed(directives, f.RuleName, f.Start.Line) {
			kept = append(kept, f)
		}
	}
	return kept
}

// suppressed reports whether a failure of the given rule on the given
// line is covered by any directive. Block directives are replayed in
// line order up to the failure's line; later directives win.
func suppressed(directives []Directive, ruleName string, line int) bool {
	disabled := false

	for _, d := range directives {
		if !d.Matches(ruleName) {
			continue
		}

		switch d.Scope {
		case ScopeLine:
			if d.Line == line {
				return true
			}
		case ScopeNextLine:
			if d.Line == line-1 {
				return true
			}
		case ScopeDisable:
			if d.Line <= line {
				disabled = true
			}
		case ScopeEnable:
			if d.Line <= line {
				disabled = false
			}
		}
	}

	return disabled
}
