package rules

import (
	"strings"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// FinalNewline flags files that do not end with a newline
type FinalNewline struct{}

func init() {
	Register(&FinalNewline{})
}

func (r *FinalNewline) Name() string {
	return "final-newline"
}

func (r *FinalNewline) Description() string {
	return "Files must end with a single trailing newline"
}

func (r *FinalNewline) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *FinalNewline) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	if view.Text == "" || strings.HasSuffix(view.Text, "\n") {
		return nil, nil
	}

	end := len(view.Text)
	failure := types.NewFailure(
		r.Name(),
		view.Path,
		view.PositionAt(end),
		view.PositionAt(end),
		"file must end with a newline",
	).WithFix(&types.Fix{
		RuleName: r.Name(),
		Replacements: []types.Replacement{
			{Path: view.Path, Start: end, End: end, Text: "\n"},
		},
	})

	return []*types.Failure{failure}, nil
}
