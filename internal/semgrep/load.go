package semgrep

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/nao1215/sgreport/internal/model"
)

// output mirrors the subset of semgrep's JSON output that is reported on.
type output struct {
	Results []result `json:"results"`
}

type result struct {
	CheckID string `json:"check_id"`
	Path    string `json:"path"`
	Start   struct {
		// Line is a pointer so a missing line can be told apart from line 0.
		Line *int `json:"line"`
	} `json:"start"`
	Extra struct {
		Message  string `json:"message"`
		Severity string `json:"severity"` // INFO|WARNING|ERROR
		Metadata struct {
			CWE any `json:"cwe"` // string | []string | null
		} `json:"metadata"`
	} `json:"extra"`
}

// Load reads the semgrep JSON file at path.
//
// If the file does not exist, Load returns nil findings and an error that
// matches ErrInputNotFound. If the file cannot be decoded, it returns a
// *ParseError. Other read failures are returned wrapped.
func Load(path string) ([]model.Finding, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	findings, err := Parse(data)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			perr.Path = path
		}
		return nil, err
	}
	return findings, nil
}

// Parse decodes semgrep JSON output. Results keep their input order.
func Parse(data []byte) ([]model.Finding, error) {
	var doc output
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &ParseError{Err: err}
	}

	findings := make([]model.Finding, 0, len(doc.Results))
	for _, r := range doc.Results {
		line := model.UnknownLine
		if r.Start.Line != nil {
			line = model.NewLine(*r.Start.Line)
		}

		findings = append(findings, model.Finding{
			RuleID:   r.CheckID,
			Message:  r.Extra.Message,
			Severity: r.Extra.Severity,
			Path:     filepath.ToSlash(r.Path),
			Line:     line,
			CWE:      strings.Join(toCWE(r.Extra.Metadata.CWE), ", "),
		}.WithDefaults())
	}
	return findings, nil
}

// toCWE normalizes the metadata cwe field, which semgrep rules write either
// as a single string or as a list.
func toCWE(v any) []string {
	switch t := v.(type) {
	case string:
		if s := strings.TrimSpace(t); s != "" {
			return []string{s}
		}
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, strings.TrimSpace(s))
			}
		}
		return out
	}
	return nil
}
