package output

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestJSONFormatter(t *testing.T) {
	var buf strings.Builder
	if err := (&JSONFormatter{}).Format(&buf, sampleResult()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var decoded struct {
		Version  string `json:"version"`
		Failures []struct {
			RuleName string `json:"rule_name"`
			Severity string `json:"severity"`
		} `json:"failures"`
		ErrorCount   int `json:"error_count"`
		WarningCount int `json:"warning_count"`
	}
	if err := json.Unmarshal([]byte(buf.String()), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if decoded.Version != "1.0" {
		t.Errorf("version = %q, want 1.0", decoded.Version)
	}
	if len(decoded.Failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(decoded.Failures))
	}
	if decoded.Failures[0].Severity != "warning" {
		t.Errorf("severity = %q, want warning", decoded.Failures[0].Severity)
	}
	if decoded.ErrorCount != 1 || decoded.WarningCount != 1 {
		t.Errorf("counts = %d/%d, want 1/1", decoded.ErrorCount, decoded.WarningCount)
	}
}
