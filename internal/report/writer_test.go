package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nao1215/numanalyzer/internal/analysis"
	"github.com/nao1215/numanalyzer/internal/model"
)

// mustAnalyze builds a report for a known-valid input.
func mustAnalyze(t *testing.T, input string) *model.Report {
	t.Helper()
	r, err := analysis.Analyze(input)
	if err != nil {
		t.Fatalf("Analyze(%q): %v", input, err)
	}
	return r
}

func TestSimpleWriter_Write(t *testing.T) {
	t.Parallel()

	t.Run("integer report lists every attribute in order", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		n, err := NewSimpleWriter(&buf).Write(mustAnalyze(t, "16"))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if n != buf.Len() {
			t.Errorf("reported %d bytes, wrote %d", n, buf.Len())
		}

		want := `Number: 16 (integer)

📌 BASIC PROPERTIES:
• Even/Odd: Even
• Number Type: Positive
• Square: 256
• Cube: 4096
• Square Root: 4
• Factors: [1, 2, 4, 8, 16]
• Factor Count: 5
• Reversed: 61
• Sum of Digits: 7
• Digital Root: 7

⭐ SPECIAL PROPERTIES:
✓ Perfect Square
`
		if got := buf.String(); got != want {
			t.Errorf("unexpected output:\n%s\nwant:\n%s", got, want)
		}
	})

	t.Run("real report marks integer-only attributes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).Write(mustAnalyze(t, "-2.5")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		for _, want := range []string{
			"Number: -2.5 (real)",
			"• Even/Odd: Not applicable",
			"• Number Type: Negative",
			"• Square Root: Imaginary",
			"• Factors: Only for integers",
			"• Reversed: Only for integers",
			"• No special properties",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in output:\n%s", want, output)
			}
		}
		if strings.Contains(output, EntryDigitalRoot) {
			t.Errorf("expected no digital root for a real:\n%s", output)
		}
	})

	t.Run("grouping applies to scalars only", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithNumberFormatter(NewNumberFormatter(true)), WithShowInput(false))
		if _, err := w.Write(mustAnalyze(t, "1000")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		if !strings.Contains(output, "• Square: 1,000,000") {
			t.Errorf("expected grouped square:\n%s", output)
		}
		if !strings.Contains(output, "500, 1000]") {
			t.Errorf("expected ungrouped factor list:\n%s", output)
		}
		if strings.Contains(output, "Number:") {
			t.Errorf("expected no input line:\n%s", output)
		}
	})

	t.Run("styler decorates headings and labels", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithStyler(bracketStyler{})).Write(mustAnalyze(t, "7")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		if !strings.Contains(output, "<h>"+BasicHeading+"</h>") {
			t.Errorf("expected styled heading:\n%s", output)
		}
		if !strings.Contains(output, "<ok>✓ "+model.LabelPrime+"</ok>") {
			t.Errorf("expected styled special property:\n%s", output)
		}
	})

	t.Run("nil styler keeps the default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf, WithStyler(nil)).Write(mustAnalyze(t, "7")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "✓ "+model.LabelPrime) {
			t.Errorf("unexpected output:\n%s", buf.String())
		}
	})
}

func TestSimpleWriter_WritePrimes(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, err := NewSimpleWriter(&buf).WritePrimes(analysis.PrimesInRange(20, 1)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "Primes between 1 and 20: [2, 3, 5, 7, 11, 13, 17, 19]\nTotal: 8\n"
	if got := buf.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSimpleWriter_WriteDivisibility(t *testing.T) {
	t.Parallel()

	t.Run("representable LCM", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewSimpleWriter(&buf).WriteDivisibility(analysis.Divide(12, 18)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got, want := buf.String(), "GCD: 6\nLCM: 36\n"; got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("overflowing LCM", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		d := model.Divisibility{A: 1, B: 2, GCD: 1, LCMOverflow: true}
		if _, err := NewSimpleWriter(&buf).WriteDivisibility(d); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "LCM: too large to represent") {
			t.Errorf("unexpected output %q", buf.String())
		}
	})
}

func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("compact report round-trips", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(mustAnalyze(t, "153")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if strings.Count(buf.String(), "\n") != 1 {
			t.Errorf("expected a single line of compact JSON, got %q", buf.String())
		}

		var decoded struct {
			Input   string   `json:"input"`
			Kind    string   `json:"kind"`
			Special []string `json:"special"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Input != "153" || decoded.Kind != "integer" {
			t.Errorf("unexpected header %+v", decoded)
		}
		if len(decoded.Special) != 1 || decoded.Special[0] != model.LabelArmstrong {
			t.Errorf("unexpected special %v", decoded.Special)
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithPrettyPrint()).WritePrimes(analysis.PrimesInRange(1, 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "\n  \"primes\": [") {
			t.Errorf("expected indented output, got %s", buf.String())
		}
	})

	t.Run("empty prime range encodes an empty array", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).WritePrimes(analysis.PrimesInRange(24, 28)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), `"primes":[]`) {
			t.Errorf("expected empty array, got %s", buf.String())
		}
	})

	t.Run("version envelope", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf, WithVersion("v1.2.3")).WriteDivisibility(analysis.Divide(4, 6)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Version string             `json:"version"`
			Result  model.Divisibility `json:"result"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v", err)
		}
		if decoded.Version != "v1.2.3" {
			t.Errorf("got version %q", decoded.Version)
		}
		if decoded.Result.GCD != 2 || decoded.Result.LCM != 12 {
			t.Errorf("unexpected result %+v", decoded.Result)
		}
	})
}

func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("report has table and list", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(mustAnalyze(t, "13")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		for _, want := range []string{
			"# Number Analysis: 13",
			"## Basic Properties",
			EntryFactorCount,
			"## Special Properties",
			"- " + model.LabelPrime,
			"- " + model.LabelFibonacci,
			"[!TIP]",
			"*Report generated by numanalyzer*",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in output:\n%s", want, output)
			}
		}
	})

	t.Run("no special properties uses a note", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		if _, err := NewMarkdownWriter(&buf).Write(mustAnalyze(t, "10")); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.Contains(buf.String(), "[!NOTE]") {
			t.Errorf("expected a note alert:\n%s", buf.String())
		}
	})

	t.Run("primes and divisibility", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf, WithMarkdownNumberFormatter(NewNumberFormatter(true)))
		if _, err := w.WritePrimes(analysis.PrimesInRange(1, 10)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := w.WriteDivisibility(analysis.Divide(1000, 1500)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		output := buf.String()

		for _, want := range []string{"# Primes in Range", "[2, 3, 5, 7]", "# GCD & LCM", "3,000"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in output:\n%s", want, output)
			}
		}
	})
}

func TestNumberFormatter(t *testing.T) {
	t.Parallel()

	grouped := NewNumberFormatter(true)
	plain := NewNumberFormatter(false)

	tests := []struct {
		name string
		got  string
		want string
	}{
		{name: "plain int", got: plain.Int(-1234567), want: "-1234567"},
		{name: "grouped int", got: grouped.Int(-1234567), want: "-1,234,567"},
		{name: "grouped small int", got: grouped.Int(999), want: "999"},
		{name: "grouped uint", got: grouped.Uint(9876543), want: "9,876,543"},
		{name: "real is never grouped", got: grouped.Number(model.Classify(12345.5)), want: "12345.5"},
		{name: "integer number is grouped", got: grouped.Number(model.Int(12345)), want: "12,345"},
		{name: "empty list", got: grouped.Uints(nil), want: "[]"},
		{name: "int list", got: grouped.Ints([]int64{1009, 1013}), want: "[1009, 1013]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if tt.got != tt.want {
				t.Errorf("got %q, want %q", tt.got, tt.want)
			}
		})
	}
}

// bracketStyler wraps fragments in visible tags so tests can see styling.
type bracketStyler struct{}

func (bracketStyler) Title(s string) string     { return "<t>" + s + "</t>" }
func (bracketStyler) Heading(s string) string   { return "<h>" + s + "</h>" }
func (bracketStyler) Label(s string) string     { return "<l>" + s + "</l>" }
func (bracketStyler) Success(s string) string   { return "<ok>" + s + "</ok>" }
func (bracketStyler) Failure(s string) string   { return "<no>" + s + "</no>" }
func (bracketStyler) Highlight(s string) string { return "<hl>" + s + "</hl>" }
