package output

import (
	"encoding/xml"
	"io"

	"github.com/danielsogl/relint/internal/types"
)

func init() {
	Register("checkstyle", &CheckstyleFormatter{})
}

// CheckstyleFormatter renders the result in checkstyle XML format for
// CI systems that consume it
type CheckstyleFormatter struct{}

type checkstyleDoc struct {
	XMLName xml.Name         `xml:"checkstyle"`
	Version string           `xml:"version,attr"`
	Files   []checkstyleFile `xml:"file"`
}

type checkstyleFile struct {
	Name   string            `xml:"name,attr"`
	Errors []checkstyleError `xml:"error"`
}

type checkstyleError struct {
	Line     int    `xml:"line,attr"`
	Column   int    `xml:"column,attr"`
	Severity string `xml:"severity,attr"`
	Message  string `xml:"message,attr"`
	Source   string `xml:"source,attr"`
}

// Format writes the result as checkstyle XML
func (f *CheckstyleFormatter) Format(w io.Writer, result *types.LintResult) error {
	doc := checkstyleDoc{Version: "4.3"}

	for _, group := range groupByPath(result.Failures) {
		file := checkstyleFile{Name: group.path}
		for _, failure := range group.failures {
			file.Errors = append(file.Errors, checkstyleError{
				Line:     failure.Start.Line,
				Column:   failure.Start.Column,
				Severity: failure.Severity.String(),
				Message:  failure.Message,
				Source:   "relint." + failure.RuleName,
			})
		}
		doc.Files = append(doc.Files, file)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	encoder := xml.NewEncoder(w)
	encoder.Indent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}
