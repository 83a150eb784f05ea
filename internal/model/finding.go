package model

import "strconv"

// Placeholders used when a finding omits a field.
const (
	// NotAvailable stands in for a missing rule id, path or line.
	NotAvailable = "N/A"

	// NoMessage stands in for a missing message.
	NoMessage = "No message"
)

// Line is a 1-based source line number. UnknownLine marks a finding that
// carries no usable line.
type Line int

// UnknownLine is the marker for a missing or invalid line number.
const UnknownLine Line = -1

// NewLine returns a Line for n, or UnknownLine when n is negative.
func NewLine(n int) Line {
	if n < 0 {
		return UnknownLine
	}
	return Line(n)
}

// Known reports whether the line number is present.
func (l Line) Known() bool {
	return l >= 0
}

// String returns the decimal line number, or NotAvailable.
func (l Line) String() string {
	if !l.Known() {
		return NotAvailable
	}
	return strconv.Itoa(int(l))
}

// Finding is one static-analysis result.
type Finding struct {
	// RuleID is the identifier of the rule that fired (semgrep check_id).
	RuleID string `json:"rule_id"`

	// Message is the human-readable explanation.
	Message string `json:"message"`

	// Severity is the raw, tool-defined severity label (e.g. "ERROR").
	Severity string `json:"severity"`

	// Path is the file the finding points at.
	Path string `json:"path"`

	// Line is the start line of the match.
	Line Line `json:"line"`

	// CWE is the classification code associated with the rule, if any.
	CWE string `json:"cwe,omitempty"`
}

// Location returns "path:line".
func (f Finding) Location() string {
	return f.Path + ":" + f.Line.String()
}

// WithDefaults returns a copy of f with placeholder values filled in for
// missing rule id, path and message.
func (f Finding) WithDefaults() Finding {
	if f.RuleID == "" {
		f.RuleID = NotAvailable
	}
	if f.Path == "" {
		f.Path = NotAvailable
	}
	if f.Message == "" {
		f.Message = NoMessage
	}
	return f
}
