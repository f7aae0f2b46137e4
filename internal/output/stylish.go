package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/danielsogl/relint/internal/types"
)

func init() {
	Register("stylish", &StylishFormatter{ColorEnabled: true})
}

// StylishFormatter renders failures grouped by file in a
// human-readable layout
type StylishFormatter struct {
	ColorEnabled bool
}

// Format writes the result grouped by file path
func (f *StylishFormatter) Format(w io.Writer, result *types.LintResult) error {
	if !f.ColorEnabled {
		color.NoColor = true
	}

	byFile := groupByPath(result.Failures)
	for _, group := range byFile {
		fmt.Fprintf(w, "%s\n", color.New(color.Underline).Sprint(group.path))
		for _, failure := range group.failures {
			fmt.Fprintf(w, "  %d:%d  %s  %s  %s\n",
				failure.Start.Line,
				failure.Start.Column,
				f.colorSeverity(failure.Severity),
				failure.Message,
				color.New(color.Faint).Sprint(failure.RuleName),
			)
		}
		fmt.Fprintln(w)
	}

	f.renderSummary(w, result)
	return nil
}

func (f *StylishFormatter) renderSummary(w io.Writer, result *types.LintResult) {
	parts := []string{}
	if result.ErrorCount > 0 {
		parts = append(parts, fmt.Sprintf("%d error", result.ErrorCount))
	}
	if result.WarningCount > 0 {
		parts = append(parts, fmt.Sprintf("%d warning", result.WarningCount))
	}
	if len(parts) == 0 {
		parts = append(parts, "no issues found")
	}
	if len(result.Fixes) > 0 {
		parts = append(parts, fmt.Sprintf("%d fix applied", len(result.Fixes)))
	}
	fmt.Fprintf(w, "Summary: %s\n", strings.Join(parts, ", "))
}

func (f *StylishFormatter) colorSeverity(s types.Severity) string {
	str := s.String()
	if !f.ColorEnabled {
		return str
	}

	switch s {
	case types.SeverityError:
		return color.New(color.FgRed, color.Bold).Sprint(str)
	case types.SeverityWarning:
		return color.New(color.FgYellow).Sprint(str)
	default:
		return str
	}
}

type fileGroup struct {
	path     string
	failures []*types.Failure
}

// groupByPath groups failures by file, preserving first-seen file order
// and failure order within each file
func groupByPath(failures []*types.Failure) []fileGroup {
	index := make(map[string]int)
	var groups []fileGroup
	for _, failure := range failures {
		i, ok := index[failure.Path]
		if !ok {
			i = len(groups)
			index[failure.Path] = i
			groups = append(groups, fileGroup{path: failure.Path})
		}
		groups[i].failures = append(groups[i].failures, failure)
	}
	return groups
}
