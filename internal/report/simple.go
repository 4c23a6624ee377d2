package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/numanalyzer/internal/model"
)

// Styler decorates text fragments of the human-readable report.
// The console package provides a colour implementation; the default
// returns every fragment unchanged.
type Styler interface {
	Title(s string) string
	Heading(s string) string
	Label(s string) string
	Success(s string) string
	Failure(s string) string
	Highlight(s string) string
}

// plainStyler is the Styler used when no styling is configured.
type plainStyler struct{}

func (plainStyler) Title(s string) string     { return s }
func (plainStyler) Heading(s string) string   { return s }
func (plainStyler) Label(s string) string     { return s }
func (plainStyler) Success(s string) string   { return s }
func (plainStyler) Failure(s string) string   { return s }
func (plainStyler) Highlight(s string) string { return s }

// Section headings of the human-readable report.
const (
	BasicHeading   = "📌 BASIC PROPERTIES:"
	SpecialHeading = "⭐ SPECIAL PROPERTIES:"
)

// SimpleWriter outputs human-readable text reports for terminal display.
type SimpleWriter struct {
	baseWriter

	styler Styler
	format NumberFormatter

	// showInput prints the input line before the property sections.
	showInput bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithStyler sets the Styler used to decorate output.
func WithStyler(s Styler) SimpleWriterOption {
	return func(w *SimpleWriter) {
		if s != nil {
			w.styler = s
		}
	}
}

// WithNumberFormatter sets how scalar numbers are printed.
func WithNumberFormatter(f NumberFormatter) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.format = f
	}
}

// WithShowInput controls whether the analysed input is echoed as a header line.
func WithShowInput(show bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.showInput = show
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		styler:     plainStyler{},
		format:     NewNumberFormatter(false),
		showInput:  true,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the comprehensive analysis in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder

	if w.showInput {
		sb.WriteString(w.styler.Title(fmt.Sprintf("Number: %s (%s)", report.Input, report.Kind)))
		sb.WriteString("\n")
	}

	w.writeBasic(&sb, report.Basic)
	w.writeSpecial(&sb, report)

	return io.WriteString(w.output, sb.String())
}

// writeBasic writes one bullet per basic property.
func (w *SimpleWriter) writeBasic(sb *strings.Builder, p model.PropertyReport) {
	sb.WriteString("\n")
	sb.WriteString(w.styler.Heading(BasicHeading))
	sb.WriteString("\n")

	for _, e := range BasicEntries(p, w.format) {
		sb.WriteString(w.styler.Label("• " + e.Name + ":"))
		sb.WriteString(" ")
		sb.WriteString(e.Value)
		sb.WriteString("\n")
	}
}

// writeSpecial writes one check line per special property.
func (w *SimpleWriter) writeSpecial(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(w.styler.Heading(SpecialHeading))
	sb.WriteString("\n")

	for _, label := range report.Special {
		if report.HasSpecialProperties() {
			sb.WriteString(w.styler.Success("✓ " + label))
		} else {
			sb.WriteString(w.styler.Label("• " + label))
		}
		sb.WriteString("\n")
	}
}

// WritePrimes outputs the list of primes and their count.
func (w *SimpleWriter) WritePrimes(primes model.PrimeRange) (int, error) {
	var sb strings.Builder

	sb.WriteString(w.styler.Heading(fmt.Sprintf("Primes between %s and %s:",
		w.format.Int(primes.Start), w.format.Int(primes.End))))
	sb.WriteString(" ")
	sb.WriteString(w.format.Ints(primes.Primes))
	sb.WriteString("\n")
	sb.WriteString(w.styler.Success("Total: " + w.format.Int(int64(primes.Count))))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}

// WriteDivisibility outputs the GCD and LCM lines.
func (w *SimpleWriter) WriteDivisibility(d model.Divisibility) (int, error) {
	var sb strings.Builder

	sb.WriteString(w.styler.Success("GCD: " + w.format.Uint(d.GCD)))
	sb.WriteString("\n")
	sb.WriteString(w.styler.Highlight("LCM: " + LCMText(d, w.format)))
	sb.WriteString("\n")

	return io.WriteString(w.output, sb.String())
}
