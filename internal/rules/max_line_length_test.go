package rules

import (
	"strings"
	"testing"
)

func TestMaxLineLength(t *testing.T) {
	rule := &MaxLineLength{}
	view := mustParse(t, "package main\n\nvar aLongVariableName = 1\n")

	failures, err := rule.Check(view, Options{"limit": 20})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failures))
	}
	if failures[0].Start.Line != 3 {
		t.Errorf("failure on line %d, want 3", failures[0].Start.Line)
	}
	if !strings.Contains(failures[0].Message, "limit is 20") {
		t.Errorf("message %q does not mention the limit", failures[0].Message)
	}
	if failures[0].HasFix() {
		t.Error("long lines must not carry a fix")
	}
}

func TestMaxLineLength_DefaultLimit(t *testing.T) {
	rule := &MaxLineLength{}
	view := mustParse(t, "package main\n")

	failures, err := rule.Check(view, Options{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(failures) != 0 {
		t.Errorf("expected no failures under the default limit, got %d", len(failures))
	}
}

func TestMaxLineLength_InvalidLimit(t *testing.T) {
	rule := &MaxLineLength{}
	view := mustParse(t, "package main\n")

	if _, err := rule.Check(view, Options{"limit": -1}); err == nil {
		t.Error("expected error for non-positive limit, got nil")
	}
}
