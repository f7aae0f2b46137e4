package rules

import (
	"fmt"
	"unicode/utf8"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

// defaultLineLimit is used when the "limit" option is not configured
const defaultLineLimit = 120

// MaxLineLength flags lines exceeding a configured character limit
type MaxLineLength struct{}

func init() {
	Register(&MaxLineLength{})
}

func (r *MaxLineLength) Name() string {
	return "max-line-length"
}

func (r *MaxLineLength) Description() string {
	return "Lines must not exceed the configured character limit"
}

func (r *MaxLineLength) DefaultSeverity() types.Severity {
	return types.SeverityWarning
}

func (r *MaxLineLength) Check(view *source.View, opts Options) ([]*types.Failure, error) {
	limit := opts.Int("limit", defaultLineLimit)
	if limit <= 0 {
		return nil, fmt.Errorf("invalid limit option: %d", limit)
	}

	var failures []*types.Failure

	offset := 0
	for _, line := range view.Lines() {
		if length := utf8.RuneCountInString(line); length > limit {
			failures = append(failures, types.NewFailure(
				r.Name(),
				view.Path,
				view.PositionAt(offset),
				view.PositionAt(offset+len(line)),
				fmt.Sprintf("line is %d characters, limit is %d", length, limit),
			))
		}
		offset += len(line) + 1
	}

	return failures, nil
}
