// Package report provides report rendering and output functionality.
//
// This package contains writers for different output formats:
//   - HTMLWriter: Self-contained HTML document (the default)
//   - MarkdownWriter: GitHub Flavored Markdown with a mermaid pie chart
//   - JSONWriter: Structured JSON output for tool integration
//
// Design decision: We separate report writing from report data structures
// (which are in the model package). Writers render to an io.Writer and are
// pure with respect to the filesystem; Save is the only function that
// creates directories and files.
package report
