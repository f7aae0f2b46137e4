package output

import (
	"fmt"
	"io"

	"github.com/danielsogl/relint/internal/types"
)

func init() {
	Register("compact", &CompactFormatter{})
}

// CompactFormatter renders one line per failure, suitable for editors
// and grep
type CompactFormatter struct{}

// Format writes failures as path:line:column: severity: message (rule)
func (f *CompactFormatter) Format(w io.Writer, result *types.LintResult) error {
	for _, failure := range result.Failures {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s (%s)\n",
			failure.Path,
			failure.Start.Line,
			failure.Start.Column,
			failure.Severity,
			failure.Message,
			failure.RuleName,
		)
	}
	return nil
}
