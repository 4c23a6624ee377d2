package report

import (
	"strconv"
	"strings"

	"github.com/nao1215/numanalyzer/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// OnlyForIntegers is displayed in place of integer-only attributes of a Real.
const OnlyForIntegers = "Only for integers"

// NumberFormatter renders numbers for human-readable output.
// With grouping enabled, scalar integers get English thousands separators
// ("1,234,567"). Lists and reals are never grouped, so the comma always
// separates list elements.
type NumberFormatter struct {
	printer *message.Printer
}

// NewNumberFormatter creates a formatter. If group is false integers are
// printed as plain decimal digits.
func NewNumberFormatter(group bool) NumberFormatter {
	if !group {
		return NumberFormatter{}
	}
	return NumberFormatter{printer: message.NewPrinter(language.English)}
}

// Int formats a signed integer.
func (f NumberFormatter) Int(v int64) string {
	if f.printer == nil {
		return strconv.FormatInt(v, 10)
	}
	return f.printer.Sprintf("%d", v)
}

// Uint formats an unsigned integer.
func (f NumberFormatter) Uint(v uint64) string {
	if f.printer == nil {
		return strconv.FormatUint(v, 10)
	}
	return f.printer.Sprintf("%d", v)
}

// Number formats an Integer with Int and a Real in shortest round-trip form.
func (f NumberFormatter) Number(n model.Number) string {
	if v, ok := n.Int64(); ok {
		return f.Int(v)
	}
	return n.String()
}

// Uints formats a list as "[1, 2, 3]".
func (f NumberFormatter) Uints(values []uint64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatUint(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Ints formats a list as "[-1, 2, 3]".
func (f NumberFormatter) Ints(values []int64) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// Entry is one named attribute of a basic property report.
type Entry struct {
	Name  string
	Value string
}

// Basic property names in display order.
const (
	EntryParity      = "Even/Odd"
	EntrySign        = "Number Type"
	EntrySquare      = "Square"
	EntryCube        = "Cube"
	EntrySquareRoot  = "Square Root"
	EntryFactors     = "Factors"
	EntryFactorCount = "Factor Count"
	EntryReversed    = "Reversed"
	EntryDigitSum    = "Sum of Digits"
	EntryDigitalRoot = "Digital Root"
)

// BasicEntries flattens a PropertyReport into display rows.
// Reals show OnlyForIntegers for factors and reversal and omit the rows
// that have no meaning without them.
func BasicEntries(p model.PropertyReport, f NumberFormatter) []Entry {
	entries := []Entry{
		{Name: EntryParity, Value: p.Parity.String()},
		{Name: EntrySign, Value: p.Sign.String()},
		{Name: EntrySquare, Value: f.Number(p.Square)},
		{Name: EntryCube, Value: f.Number(p.Cube)},
		{Name: EntrySquareRoot, Value: p.SquareRoot.String()},
	}

	if p.Integer == nil {
		return append(entries,
			Entry{Name: EntryFactors, Value: OnlyForIntegers},
			Entry{Name: EntryReversed, Value: OnlyForIntegers},
		)
	}

	ip := p.Integer
	return append(entries,
		Entry{Name: EntryFactors, Value: f.Uints(ip.Factors)},
		Entry{Name: EntryFactorCount, Value: strconv.Itoa(ip.FactorCount)},
		Entry{Name: EntryReversed, Value: f.Uint(ip.Reversed)},
		Entry{Name: EntryDigitSum, Value: strconv.Itoa(ip.DigitSum)},
		Entry{Name: EntryDigitalRoot, Value: strconv.Itoa(ip.DigitalRoot)},
	)
}

// LCMText formats the LCM of d, which may not be representable.
func LCMText(d model.Divisibility, f NumberFormatter) string {
	if d.LCMOverflow {
		return "too large to represent"
	}
	return f.Uint(d.LCM)
}
