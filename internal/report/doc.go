// Package report renders analysis results.
//
// This package contains writers for different output formats:
//   - SimpleWriter: Human-readable text output for terminal display
//   - JSONWriter: Structured JSON output for tool integration
//   - MarkdownWriter: GitHub Flavored Markdown for sharing
//
// The result types themselves live in the model package. Writers implement
// the Writer interface so that commands can pick a format at runtime.
package report
