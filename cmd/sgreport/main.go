// Package main provides the entry point for the sgreport CLI.
//
// sgreport turns semgrep JSON output into a self-contained HTML report
// with a severity summary and a detailed findings table.
//
// Usage:
//
//	semgrep --config auto --json -o semgrep_report/semgrep.json
//	sgreport
//
// See --help for all available options.
package main

// main is the entry point for sgreport.
func main() {
	Execute()
}
