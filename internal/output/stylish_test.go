package output

import (
	"strings"
	"testing"

	"github.com/danielsogl/relint/internal/types"
)

func TestStylishFormatter(t *testing.T) {
	var buf strings.Builder
	f := &StylishFormatter{ColorEnabled: false}
	if err := f.Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := `a.go
  1:13  warning  trailing whitespace  no-trailing-whitespace

b.go
  3:5  error  floating point comparison with ==  no-float-equality

Summary: 1 error, 1 warning
`
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestStylishFormatter_CleanResult(t *testing.T) {
	var buf strings.Builder
	f := &StylishFormatter{ColorEnabled: false}
	if err := f.Format(&buf, types.NewLintResult(nil, nil)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if buf.String() != "Summary: no issues found\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestStylishFormatter_ReportsFixes(t *testing.T) {
	result := types.NewLintResult(nil, []*types.Fix{
		{RuleName: "final-newline"},
	})

	var buf strings.Builder
	f := &StylishFormatter{ColorEnabled: false}
	if err := f.Format(&buf, result); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(buf.String(), "1 fix applied") {
		t.Errorf("output %q does not report the applied fix", buf.String())
	}
}
