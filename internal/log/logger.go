package log

import (
	"io"
	"log/slog"
)

// NewLogger creates a text slog.Logger writing to w.
//
// Parameters:
//   - w: The io.Writer to write log output to (typically os.Stderr)
//   - verbose: If true, sets log level to Debug; otherwise Warn
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewInputHandler(slog.NewTextHandler(w, handlerOptions(verbose))))
}

// NewJSONLogger creates a slog.Logger that outputs one JSON object per record.
func NewJSONLogger(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(NewInputHandler(slog.NewJSONHandler(w, handlerOptions(verbose))))
}

func handlerOptions(verbose bool) *slog.HandlerOptions {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return &slog.HandlerOptions{Level: level}
}
