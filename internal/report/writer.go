package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/sgreport/internal/model"
)

// Writer defines the interface for report output.
// Implementations render a model.Report in a given format.
//
// Design decision: Writers only write to an io.Writer and never touch the
// filesystem. Rendering stays a pure function of the report, and Save is
// the single place that creates directories and files.
type Writer interface {
	// Write renders the report to the configured destination.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// timestampLayout is the layout used for the generation timestamp.
const timestampLayout = "2006-01-02 15:04:05 MST"

// NewWriter returns the Writer for a format name (html, markdown or json).
func NewWriter(format string, output io.Writer) (Writer, error) {
	switch strings.ToLower(format) {
	case "html":
		return NewHTMLWriter(output), nil
	case "markdown", "md":
		return NewMarkdownWriter(output), nil
	case "json":
		return NewJSONWriter(output, WithPrettyPrint()), nil
	default:
		return nil, fmt.Errorf("unsupported report format %q", format)
	}
}

// upperLabel normalizes a raw severity label for display.
func upperLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}
