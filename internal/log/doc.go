// Package log provides the console output of sgreport: a structured slog
// logger for diagnostics and a Notifier for the user-facing notices.
//
// Logger output goes to stderr and is quiet by default (warnings only).
// Attribute values that look like credentials are redacted before they are
// written, because semgrep secret-detection rules echo the matched token in
// their messages and those messages may end up in debug logs.
//
// Notices go to stdout and are prefixed so that informational lines ([+])
// can be told apart from warnings ([!]):
//
//	[+] Report generated: semgrep_report/semgrep-report.html
//	[!] Input file semgrep_report/semgrep.json not found
package log
