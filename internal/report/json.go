package report

import (
	"encoding/json"
	"io"

	"github.com/nao1215/numanalyzer/internal/model"
)

// JSONWriter outputs reports in JSON format for tool integration.
// Numbers are never grouped; derived values that overflowed to infinity
// are encoded as strings by model.Number.
type JSONWriter struct {
	baseWriter

	// indent enables pretty-printed JSON output.
	// When false, output is compact (no extra whitespace).
	indent bool

	// indentPrefix is the prefix for each line in indented output.
	indentPrefix string

	// indentString is the indentation string (typically "  " or "\t").
	indentString string

	// version, when set, wraps every document in an Envelope.
	version string
}

// JSONWriterOption configures a JSONWriter.
type JSONWriterOption func(*JSONWriter)

// WithIndent enables pretty-printed JSON output.
// The prefix is prepended to each line, and indent is used for each level.
func WithIndent(prefix, indent string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.indent = true
		w.indentPrefix = prefix
		w.indentString = indent
	}
}

// WithPrettyPrint enables pretty-printed JSON with default indentation.
// This is a convenience wrapper for WithIndent("", "  ").
func WithPrettyPrint() JSONWriterOption {
	return WithIndent("", "  ")
}

// WithVersion wraps each document in an Envelope carrying the tool version.
func WithVersion(version string) JSONWriterOption {
	return func(w *JSONWriter) {
		w.version = version
	}
}

// Envelope is the wrapper written when WithVersion is used.
type Envelope struct {
	// Version is the numanalyzer version that produced the result.
	Version string `json:"version"`

	// Result is the report, prime range or divisibility result.
	Result any `json:"result"`
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer, opts ...JSONWriterOption) *JSONWriter {
	w := &JSONWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the comprehensive analysis in JSON format.
func (w *JSONWriter) Write(report *model.Report) (int, error) {
	return w.writeJSON(report)
}

// WritePrimes outputs the prime range in JSON format.
func (w *JSONWriter) WritePrimes(primes model.PrimeRange) (int, error) {
	return w.writeJSON(primes)
}

// WriteDivisibility outputs the GCD/LCM result in JSON format.
func (w *JSONWriter) WriteDivisibility(d model.Divisibility) (int, error) {
	return w.writeJSON(d)
}

// writeJSON marshals the given value to JSON and writes it to the output.
func (w *JSONWriter) writeJSON(v any) (int, error) {
	if w.version != "" {
		v = Envelope{Version: w.version, Result: v}
	}

	var data []byte
	var err error

	if w.indent {
		data, err = json.MarshalIndent(v, w.indentPrefix, w.indentString)
	} else {
		data, err = json.Marshal(v)
	}

	if err != nil {
		return 0, err
	}

	// Add trailing newline for better terminal output
	data = append(data, '\n')

	return w.output.Write(data)
}
