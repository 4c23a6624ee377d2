package log

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"unicode"
)

// MaxValueLen is the longest string attribute value passed through
// unchanged. Longer values are cut and suffixed with TruncatedSuffix.
const MaxValueLen = 256

// TruncatedSuffix marks a value that was cut to MaxValueLen runes.
const TruncatedSuffix = "...(truncated)"

// InputHandler wraps an slog.Handler and sanitizes string attributes that
// may carry raw terminal input before passing the record on.
type InputHandler struct {
	// handler is the underlying slog handler that receives sanitized records.
	handler slog.Handler
}

// NewInputHandler creates a new InputHandler wrapping the given handler.
// If handler is nil, slog.Default().Handler() is used.
func NewInputHandler(handler slog.Handler) *InputHandler {
	if handler == nil {
		handler = slog.Default().Handler()
	}
	return &InputHandler{handler: handler}
}

// Enabled reports whether the handler handles records at the given level.
func (h *InputHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle sanitizes the record's attributes and passes it to the underlying handler.
func (h *InputHandler) Handle(ctx context.Context, r slog.Record) error {
	sanitized := slog.NewRecord(r.Time, r.Level, r.Message, r.PC)
	r.Attrs(func(a slog.Attr) bool {
		sanitized.AddAttrs(sanitizeAttr(a))
		return true
	})
	return h.handler.Handle(ctx, sanitized)
}

// WithAttrs returns a new handler with the given attributes sanitized and added.
func (h *InputHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	sanitizedAttrs := make([]slog.Attr, len(attrs))
	for i, a := range attrs {
		sanitizedAttrs[i] = sanitizeAttr(a)
	}
	return &InputHandler{handler: h.handler.WithAttrs(sanitizedAttrs)}
}

// WithGroup returns a new handler with the given group name.
func (h *InputHandler) WithGroup(name string) slog.Handler {
	return &InputHandler{handler: h.handler.WithGroup(name)}
}

// sanitizeAttr sanitizes a single attribute, recursively handling groups.
func sanitizeAttr(a slog.Attr) slog.Attr {
	switch a.Value.Kind() {
	case slog.KindGroup:
		attrs := a.Value.Group()
		sanitizedAttrs := make([]slog.Attr, len(attrs))
		for i, groupAttr := range attrs {
			sanitizedAttrs[i] = sanitizeAttr(groupAttr)
		}
		return slog.Attr{Key: a.Key, Value: slog.GroupValue(sanitizedAttrs...)}
	case slog.KindString:
		return slog.String(a.Key, SanitizeValue(a.Value.String()))
	default:
		return a
	}
}

// SanitizeValue escapes control characters in s and truncates it to
// MaxValueLen runes.
func SanitizeValue(s string) string {
	if strings.IndexFunc(s, unicode.IsControl) >= 0 {
		var b strings.Builder
		for _, r := range s {
			if unicode.IsControl(r) {
				// QuoteRune yields e.g. '\x1b'; drop the quotes.
				q := strconv.QuoteRune(r)
				b.WriteString(q[1 : len(q)-1])
				continue
			}
			b.WriteRune(r)
		}
		s = b.String()
	}

	if runes := []rune(s); len(runes) > MaxValueLen {
		return string(runes[:MaxValueLen]) + TruncatedSuffix
	}
	return s
}
