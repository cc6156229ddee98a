// Package output formats audit reports for display or machine consumption.
//
// Four formats are supported:
//   - text     — human-readable terminal output (default), optionally colorized
//   - json     — full structured JSON report
//   - markdown — PR-comment-friendly with collapsible sections per file
//   - sarif    — SARIF v2.1.0 for upload to GitHub Advanced Security and other CI tools
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then call
// [Writer.Write] with an [io.Writer] and a [*engine.Report]. [WriteReport]
// handles destination selection (file path or stdout).
package output
