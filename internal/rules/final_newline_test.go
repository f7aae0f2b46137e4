package rules

import "testing"

func TestFinalNewline(t *testing.T) {
	rule := &FinalNewline{}
	view := mustParse(t, "package main")

	failures, err := rule.Check(view, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}

	rep := failures[0].Fix.Replacements[0]
	if !rep.IsInsertion() {
		t.Error("expected an insertion")
	}
	if rep.Start != len("package main") || rep.Text != "\n" {
		t.Errorf("replacement = %+v, want newline inserted at end", rep)
	}
}

func TestFinalNewline_TerminatedFile(t *testing.T) {
	rule := &FinalNewline{}
	view := mustParse(t, "package main\n")

	failures, err := rule.Check(view, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 0 {
		t.Errorf("expected no failures, got %d", len(failures))
	}
}
