package report

import (
	"bytes"
	_ "embed"
	"html/template"
	"io"

	"github.com/nao1215/sgreport/internal/model"
)

//go:embed templates/report.html.tmpl
var htmlTemplateText string

var htmlTemplate = template.Must(template.New("report").Parse(htmlTemplateText))

// HTMLWriter renders a self-contained HTML document: inline CSS, no scripts
// and no external assets, so the file can be archived as a CI artifact and
// opened anywhere.
type HTMLWriter struct {
	baseWriter

	// timeLayout formats the generation timestamp.
	timeLayout string
}

// HTMLWriterOption configures an HTMLWriter.
type HTMLWriterOption func(*HTMLWriter)

// WithTimeLayout sets the layout used for the generation timestamp.
func WithTimeLayout(layout string) HTMLWriterOption {
	return func(w *HTMLWriter) {
		w.timeLayout = layout
	}
}

// NewHTMLWriter creates an HTMLWriter that outputs to the given writer.
func NewHTMLWriter(output io.Writer, opts ...HTMLWriterOption) *HTMLWriter {
	w := &HTMLWriter{
		baseWriter: newBaseWriter(output),
		timeLayout: timestampLayout,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// htmlView is the data passed to the HTML template.
type htmlView struct {
	Title     string
	Generated string
	Taxonomy  string
	Total     int
	Summary   []model.BucketCount
	Rows      []htmlRow
}

type htmlRow struct {
	Number   int
	Bucket   model.Bucket
	Label    string
	Location string
	RuleID   string
	Message  string
	CWE      string
}

// Write renders the report as HTML.
// The document is rendered to memory first so a template error never
// leaves half a document in the output.
func (w *HTMLWriter) Write(report *model.Report) (int, error) {
	view := htmlView{
		Title:     report.Title,
		Generated: report.GeneratedAt.Format(w.timeLayout),
		Taxonomy:  report.Taxonomy,
		Total:     report.Total,
		Summary:   report.Summary,
		Rows:      make([]htmlRow, len(report.Rows)),
	}
	for i, r := range report.Rows {
		view.Rows[i] = htmlRow{
			Number:   i + 1,
			Bucket:   r.Bucket,
			Label:    upperLabel(r.Finding.Severity),
			Location: r.Finding.Location(),
			RuleID:   r.Finding.RuleID,
			Message:  r.Finding.Message,
			CWE:      r.Finding.CWE,
		}
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, view); err != nil {
		return 0, err
	}
	return w.output.Write(buf.Bytes())
}
