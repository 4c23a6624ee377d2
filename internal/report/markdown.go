package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/numanalyzer/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown using the
// nao1215/markdown builder.
type MarkdownWriter struct {
	baseWriter

	format NumberFormatter
}

// MarkdownWriterOption configures a MarkdownWriter.
type MarkdownWriterOption func(*MarkdownWriter)

// WithMarkdownNumberFormatter sets how scalar numbers are printed.
func WithMarkdownNumberFormatter(f NumberFormatter) MarkdownWriterOption {
	return func(w *MarkdownWriter) {
		w.format = f
	}
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer, opts ...MarkdownWriterOption) *MarkdownWriter {
	w := &MarkdownWriter{
		baseWriter: newBaseWriter(output),
		format:     NewNumberFormatter(false),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write outputs the comprehensive analysis in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Number Analysis: " + report.Input)
	md.PlainText("")
	md.PlainTextf("Classified as **%s**.", report.Kind)
	md.PlainText("")

	w.writeBasic(md, report.Basic)
	w.writeSpecial(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeBasic writes the basic properties table.
func (w *MarkdownWriter) writeBasic(md *markdown.Markdown, p model.PropertyReport) {
	md.H2("Basic Properties")
	md.PlainText("")

	entries := BasicEntries(p, w.format)
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Value}
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSpecial writes the special properties list and a closing alert.
func (w *MarkdownWriter) writeSpecial(md *markdown.Markdown, report *model.Report) {
	md.H2("Special Properties")
	md.PlainText("")

	if !report.HasSpecialProperties() {
		md.Note("No special properties hold for this number.")
		md.PlainText("")
		return
	}

	md.BulletList(report.Special...)
	md.PlainText("")
	md.Tip(strconv.Itoa(len(report.Special)) + " special propert" + plural(len(report.Special), "y", "ies") + " found.")
	md.PlainText("")
}

// WritePrimes outputs the prime range in Markdown format.
func (w *MarkdownWriter) WritePrimes(primes model.PrimeRange) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("Primes in Range")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Start", "End", "Count"},
		Rows: [][]string{
			{w.format.Int(primes.Start), w.format.Int(primes.End), w.format.Int(int64(primes.Count))},
		},
	})
	md.PlainText("")

	if primes.Count == 0 {
		md.Note("There are no primes in this range.")
	} else {
		md.PlainText(w.format.Ints(primes.Primes))
	}
	md.PlainText("")
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// WriteDivisibility outputs the GCD/LCM result in Markdown format.
func (w *MarkdownWriter) WriteDivisibility(d model.Divisibility) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("GCD & LCM")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"a", "b", "GCD", "LCM"},
		Rows: [][]string{
			{w.format.Int(d.A), w.format.Int(d.B), w.format.Uint(d.GCD), LCMText(d, w.format)},
		},
	})
	md.PlainText("")
	if d.LCMOverflow {
		md.Warningf("The LCM of %d and %d does not fit in 64 bits.", d.A, d.B)
		md.PlainText("")
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by numanalyzer*")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
