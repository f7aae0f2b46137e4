// Package types defines the data model shared by the lint engine, rules and output.
package types

// Position is a location within a file's text
type Position struct {
	// Offset is the 0-based byte offset into the file's text
	Offset int `json:"offset"`

	// Line is the 1-based line number
	Line int `json:"line"`

	// Column is the 1-based column number
	Column int `json:"column"`
}

// Replacement is a single text edit: the half-open byte range
// [Start, End) of the target file is replaced with Text.
// Offsets address the file's current text at the time the
// replacement is merged, never a superseded state.
type Replacement struct {
	// Path is the file the edit applies to
	Path string `json:"path"`

	// Start is the 0-based byte offset where the edit begins (inclusive)
	Start int `json:"start"`

	// End is the 0-based byte offset where the edit ends (exclusive)
	End int `json:"end"`

	// Text is the replacement text
	Text string `json:"text"`
}

// IsInsertion reports whether the replacement inserts without removing text
func (r Replacement) IsInsertion() bool {
	return r.Start == r.End
}

// Fix is one atomic set of replacements repairing a single failure.
// The replacements may target more than one file.
type Fix struct {
	// RuleName identifies the rule that produced the fix
	RuleName string `json:"rule_name"`

	// Replacements are the edits, in the order the rule registered them
	Replacements []Replacement `json:"replacements"`
}

// Paths returns the distinct file paths targeted by the fix, in first-seen order
func (f *Fix) Paths() []string {
	seen := make(map[string]bool)
	var paths []string
	for _, r := range f.Replacements {
		if !seen[r.Path] {
			seen[r.Path] = true
			paths = append(paths, r.Path)
		}
	}
	return paths
}

// Failure represents a single rule violation
type Failure struct {
	// RuleName is the name of the rule that produced this failure
	RuleName string `json:"rule_name"`

	// Path is the file the failure was found in
	Path string `json:"path"`

	// Start is where the violation begins
	Start Position `json:"start"`

	// End is where the violation ends
	End Position `json:"end"`

	// Message is a human-readable description of the violation
	Message string `json:"message"`

	// Severity is resolved from configuration after collection
	Severity Severity `json:"severity"`

	// Fix is the optional automatic repair for this failure
	Fix *Fix `json:"fix,omitempty"`
}

// NewFailure creates a new Failure with the given parameters
func NewFailure(ruleName, path string, start, end Position, message string) *Failure {
	return &Failure{
		RuleName: ruleName,
		Path:     path,
		Start:    start,
		End:      end,
		Message:  message,
	}
}

// WithFix attaches a fix and returns the failure for chaining
func (f *Failure) WithFix(fix *Fix) *Failure {
	f.Fix = fix
	return f
}

// HasFix reports whether the failure carries an automatic repair
func (f *Failure) HasFix() bool {
	return f.Fix != nil && len(f.Fix.Replacements) > 0
}
