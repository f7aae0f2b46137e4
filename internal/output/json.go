package output

import (
	"encoding/json"
	"io"

	"github.com/danielsogl/relint/internal/types"
)

func init() {
	Register("json", &JSONFormatter{})
}

// JSONFormatter renders the result as machine-readable JSON
type JSONFormatter struct{}

// jsonOutput is the structure for JSON output
type jsonOutput struct {
	Version      string           `json:"version"`
	Failures     []*types.Failure `json:"failures"`
	Fixes        []*types.Fix     `json:"fixes"`
	ErrorCount   int              `json:"error_count"`
	WarningCount int              `json:"warning_count"`
}

// Format writes the result in JSON format
func (f *JSONFormatter) Format(w io.Writer, result *types.LintResult) error {
	out := jsonOutput{
		Version:      "1.0",
		Failures:     result.Failures,
		Fixes:        result.Fixes,
		ErrorCount:   result.ErrorCount,
		WarningCount: result.WarningCount,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
