package types

// LintResult is the summarized outcome of a lint session
type LintResult struct {
	// Failures is the accumulated list of reported failures
	Failures []*Failure `json:"failures"`

	// Fixes is the accumulated list of applied fixes
	Fixes []*Fix `json:"fixes"`

	// ErrorCount is the number of failures with error severity
	ErrorCount int `json:"error_count"`

	// WarningCount is the number of remaining failures
	WarningCount int `json:"warning_count"`

	// Output is the formatted textual report
	Output string `json:"-"`
}

// NewLintResult computes counts for the given failures and fixes
func NewLintResult(failures []*Failure, fixes []*Fix) *LintResult {
	result := &LintResult{
		Failures: failures,
		Fixes:    fixes,
	}
	for _, f := range failures {
		if f.Severity == SeverityError {
			result.ErrorCount++
		} else {
			result.WarningCount++
		}
	}
	return result
}

// HasErrors reports whether any failure has error severity
func (r *LintResult) HasErrors() bool {
	return r.ErrorCount > 0
}
