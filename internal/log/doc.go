// Package log builds the slog loggers used by numanalyzer.
//
// Loggers write to stderr so that they never mix with report output on
// stdout. The level is Warn by default and Debug in verbose mode.
//
// Raw user input is logged at Debug level. The InputHandler wraps any
// slog.Handler and makes such values safe to print: control characters are
// escaped and overly long values are truncated.
//
// # Usage
//
//	logger := log.NewLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//	logger.Debug("parsed input", "input", raw, "kind", n.Kind())
package log
