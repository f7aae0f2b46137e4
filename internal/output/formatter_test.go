package output

import (
	"io"
	"testing"

	"github.com/danielsogl/relint/internal/types"
)

func TestLookup_Builtins(t *testing.T) {
	for _, name := range []string{"stylish", "json", "compact", "checkstyle"} {
		if _, ok := Lookup(name); !ok {
			t.Errorf("built-in formatter %q not registered", name)
		}
	}
}

func TestLookup_Unknown(t *testing.T) {
	if _, ok := Lookup("no-such-formatter"); ok {
		t.Error("unknown formatter found")
	}
}

type nopFormatter struct{}

func (nopFormatter) Format(w io.Writer, result *types.LintResult) error { return nil }

func TestRegister(t *testing.T) {
	Register("nop-for-test", nopFormatter{})

	if _, ok := Lookup("nop-for-test"); !ok {
		t.Fatal("registered formatter not found")
	}

	found := false
	for _, name := range Names() {
		if name == "nop-for-test" {
			found = true
		}
	}
	if !found {
		t.Error("registered formatter missing from Names()")
	}
}

func sampleResult() *types.LintResult {
	failures := []*types.Failure{
		{
			RuleName: "no-trailing-whitespace",
			Path:     "a.go",
			Start:    types.Position{Offset: 12, Line: 1, Column: 13},
			End:      types.Position{Offset: 13, Line: 1, Column: 14},
			Message:  "trailing whitespace",
			Severity: types.SeverityWarning,
		},
		{
			RuleName: "no-float-equality",
			Path:     "b.go",
			Start:    types.Position{Offset: 20, Line: 3, Column: 5},
			End:      types.Position{Offset: 26, Line: 3, Column: 11},
			Message:  "floating point comparison with ==",
			Severity: types.SeverityError,
		},
	}
	return types.NewLintResult(failures, nil)
}
