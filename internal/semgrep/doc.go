// Package semgrep reads semgrep JSON output (`semgrep scan --json`) and
// converts its results into model.Finding values.
//
// Only the fields needed for reporting are decoded. Missing fields are
// filled with placeholders; the loader does not otherwise validate results.
package semgrep
