package types

import "testing"

func TestFailureHasFix(t *testing.T) {
	failure := NewFailure("some-rule", "main.go", Position{}, Position{}, "msg")
	if failure.HasFix() {
		t.Error("failure without fix reports HasFix")
	}

	failure.WithFix(&Fix{RuleName: "some-rule"})
	if failure.HasFix() {
		t.Error("fix without replacements reports HasFix")
	}

	failure.WithFix(&Fix{
		RuleName:     "some-rule",
		Replacements: []Replacement{{Path: "main.go", Start: 0, End: 1}},
	})
	if !failure.HasFix() {
		t.Error("failure with replacements does not report HasFix")
	}
}

func TestFixPaths(t *testing.T) {
	fix := &Fix{
		RuleName: "some-rule",
		Replacements: []Replacement{
			{Path: "a.go"},
			{Path: "b.go"},
			{Path: "a.go"},
		},
	}

	paths := fix.Paths()
	if len(paths) != 2 {
		t.Fatalf("expected 2 paths, got %d", len(paths))
	}
	if paths[0] != "a.go" || paths[1] != "b.go" {
		t.Errorf("paths = %v, want [a.go b.go]", paths)
	}
}

func TestNewLintResultCounts(t *testing.T) {
	failures := []*Failure{
		{RuleName: "x", Severity: SeverityError},
		{RuleName: "y", Severity: SeverityWarning},
		{RuleName: "y", Severity: SeverityWarning},
	}

	result := NewLintResult(failures, nil)
	if result.ErrorCount != 1 {
		t.Errorf("ErrorCount = %d, want 1", result.ErrorCount)
	}
	if result.WarningCount != 2 {
		t.Errorf("WarningCount = %d, want 2", result.WarningCount)
	}
	if !result.HasErrors() {
		t.Error("HasErrors() = false, want true")
	}
}

func TestReplacementIsInsertion(t *testing.T) {
	if !(Replacement{Start: 5, End: 5}).IsInsertion() {
		t.Error("zero-width replacement is not an insertion")
	}
	if (Replacement{Start: 5, End: 6}).IsInsertion() {
		t.Error("non-empty range reported as insertion")
	}
}
