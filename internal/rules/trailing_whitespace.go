package rules

import (
	"strings"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// TrailingWhitespace flags whitespace at the end of a line
type TrailingWhitespace struct{}

func init() {
	Register(&TrailingWhitespace{})
}

func (r *TrailingWhitespace) Name() string {
	return "no-trailing-whitespace"
}

func (r *TrailingWhitespace) Description() string {
	return "Lines must not end in whitespace characters"
}

func (r *TrailingWhitespace) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *TrailingWhitespace) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	var failures []*types.Failure

	offset := 0
	for _, line := range view.Lines() {
		trimmed := strings.TrimRight(line, " \t")
		if len(trimmed) < len(line) {
			start := offset + len(trimmed)
			end := offset + len(line)
			failure := types.NewFailure(
				r.Name(),
				view.Path,
				view.PositionAt(start),
				view.PositionAt(end),
				"trailing whitespace",
			).WithFix(&types.Fix{
				RuleName: r.Name(),
				Replacements: []types.Replacement{
					{Path: view.Path, Start: start, End: end, Text: ""},
				},
			})
			failures = append(failures, failure)
		}
		offset += len(line) + 1
	}

	return failures, nil
}
