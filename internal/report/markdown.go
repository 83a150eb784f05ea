package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/nao1215/sgreport/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown, suitable for
// pull request comments and job summaries.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation, which gives us tables, alerts and mermaid charts without
// hand-assembling the syntax.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1(report.Title)
	md.PlainText("")

	w.writeSummary(md, report)
	w.writeFindings(md, report)

	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Generated by sgreport at %s*", report.GeneratedAt.Format(timestampLayout))

	return len(md.String()), md.Build()
}

// writeSummary writes the severity summary table, the total and the timestamp.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	md.H2("Severity Summary")
	md.PlainText("")

	rows := make([][]string, 0, len(report.Summary))
	for _, s := range report.Summary {
		rows = append(rows, []string{s.Bucket.Glyph + " " + s.Bucket.Name, strconv.Itoa(s.Count)})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows:   rows,
	})
	md.PlainText("")

	md.PlainTextf("**Total Findings: %d**", report.Total)
	md.PlainText("")
	md.PlainTextf("Generated: %s", report.GeneratedAt.Format(timestampLayout))
	md.PlainText("")

	if report.HasFindings() {
		w.writePieChart(md, report)
		w.writeAlert(md, report)
	}
}

// writePieChart writes a mermaid pie chart of the non-empty buckets.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, report *model.Report) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Finding Severity Distribution"),
		piechart.WithShowData(true),
	)
	for _, s := range report.Summary {
		if s.Count > 0 {
			chart.LabelAndIntValue(s.Bucket.Name, uint64(s.Count))
		}
	}

	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes a GitHub alert keyed on the most severe non-empty bucket.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, report *model.Report) {
	for i, s := range report.Summary {
		if s.Count == 0 {
			continue
		}
		switch {
		case i == 0:
			md.Cautionf("%d %s severity finding(s) require attention.", s.Count, s.Bucket.Name)
		case i < len(report.Summary)-1:
			md.Warningf("%d %s severity finding(s) detected.", s.Count, s.Bucket.Name)
		default:
			md.Note(fmt.Sprintf("Only %s severity findings detected.", strings.ToLower(s.Bucket.Name)))
		}
		md.PlainText("")
		return
	}
}

// writeFindings writes the detailed findings table in input order.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.Report) {
	md.H2("Findings")
	md.PlainText("")

	rows := make([][]string, len(report.Rows))
	for i, r := range report.Rows {
		severity := r.Bucket.Glyph + " " + r.Bucket.Name
		if label := upperLabel(r.Finding.Severity); label != "" {
			severity += " (" + label + ")"
		}
		cwe := r.Finding.CWE
		if cwe == "" {
			cwe = "-"
		}
		rows[i] = []string{
			strconv.Itoa(i + 1),
			severity,
			"`" + escapeCell(r.Finding.Location()) + "`",
			"`" + escapeCell(r.Finding.RuleID) + "`",
			escapeCell(r.Finding.Message),
			escapeCell(cwe),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"#", "Severity", "Location", "Rule", "Message", "CWE"},
		Rows:   rows,
	})
	md.PlainText("")
}

// escapeCell keeps a value on one table row.
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	return strings.ReplaceAll(s, "|", `\|`)
}
