package semgrep

import (
	"errors"
	"fmt"
)

// ErrInputNotFound is returned by Load when the input file does not exist.
// Callers treat it as an empty result set.
var ErrInputNotFound = errors.New("semgrep input file not found")

// ParseError is returned when the input exists but is not valid semgrep JSON.
// It is fatal: a partial report must never be rendered from corrupt data.
type ParseError struct {
	// Path is the file that failed to parse. Empty for in-memory input.
	Path string

	// Err is the underlying decoder error.
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("failed to parse semgrep JSON: %v", e.Err)
	}
	return fmt.Sprintf("failed to parse semgrep JSON %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying decoder error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
