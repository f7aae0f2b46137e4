package annotation

import (
	"testing"

	"github.com/danielsogl/relint/internal/source"
	"github.com/danielsogl/relint/internal/types"
)

func mustParse(t *testing.T, text string) *source.View {
	t.Helper()
	view, err := source.Parse("main.go", text)
	if err != nil {
		t.Fatalf("failed to parse: %v", err)
	}
	return view
}

func failureAt(rule string, line int) *types.Failure {
	return &types.Failure{
		RuleName: rule,
		Path:     "main.go",
		Start:    types.Position{Line: line, Column: 1},
		End:      types.Position{Line: line, Column: 2},
		Message:  "violation",
	}
}

func TestFilter_NoDirectivesKeepsAll(t *testing.T) {
	view := mustParse(t, "package main\n\nfunc main() {}\n")
	failures := []*types.Failure{failureAt("some-rule", 3)}

	kept := Filter(view, failures)
	if len(kept) != 1 {
		t.Errorf("expected 1 failure, got %d", len(kept))
	}
}

func TestFilter_DisableNextLine(t *testing.T) {
	view := mustParse(t, `package main

//relint:disable-next-line some-rule
func main() {}
`)

	tests := []struct {
		name string
		rule string
		line int
		want bool // kept
	}{
		{"matching rule on next line", "some-rule", 4, false},
		{"other rule on next line", "other-rule", 4, true},
		{"matching rule elsewhere", "some-rule", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := Filter(view, []*types.Failure{failureAt(tt.rule, tt.line)})
			if got := len(kept) == 1; got != tt.want {
				t.Errorf("kept = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_DisableLine(t *testing.T) {
	view := mustParse(t, `package main

func main() {} //relint:disable-line
`)

	kept := Filter(view, []*types.Failure{failureAt("any-rule", 3)})
	if len(kept) != 0 {
		t.Errorf("expected failure on directive line to be suppressed, got %d", len(kept))
	}
}

func TestFilter_DisableEnableBlock(t *testing.T) {
	view := mustParse(t, `package main

//relint:disable some-rule
var a = 1

//relint:enable some-rule
var b = 2
`)

	tests := []struct {
		name string
		line int
		want bool // kept
	}{
		{"inside disabled region", 4, false},
		{"after enable", 7, true},
		{"before disable", 1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept := Filter(view, []*types.Failure{failureAt("some-rule", tt.line)})
			if got := len(kept) == 1; got != tt.want {
				t.Errorf("kept = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilter_DisableAllRules(t *testing.T) {
	view := mustParse(t, `package main

//relint:disable
var a = 1
`)

	kept := Filter(view, []*types.Failure{
		failureAt("rule-one", 4),
		failureAt("rule-two", 4),
	})
	if len(kept) != 0 {
		t.Errorf("expected all failures suppressed, got %d", len(kept))
	}
}

func TestFilter_RuleListWithCommas(t *testing.T) {
	view := mustParse(t, `package main

//relint:disable rule-one, rule-two
var a = 1
`)

	kept := Filter(view, []*types.Failure{
		failureAt("rule-one", 4),
		failureAt("rule-two", 4),
		failureAt("rule-three", 4),
	})
	if len(kept) != 1 {
		t.Fatalf("expected 1 failure kept, got %d", len(kept))
	}
	if kept[0].RuleName != "rule-three" {
		t.Errorf("kept rule = %q, want %q", kept[0].RuleName, "rule-three")
	}
}

func TestParseDirectives_IgnoresUnrelatedComments(t *testing.T) {
	view := mustParse(t, `package main

// ordinary comment
//relint:bogus-keyword
var a = 1
`)

	if directives := ParseDirectives(view); len(directives) != 0 {
		t.Errorf("expected no directives, got %d", len(directives))
	}
}
