package report

import (
	"io"

	"github.com/nao1215/numanalyzer/internal/model"
)

// Writer defines the interface for report output.
// Each method returns the number of bytes written and any error encountered.
type Writer interface {
	// Write outputs the comprehensive analysis of one number.
	Write(report *model.Report) (int, error)

	// WritePrimes outputs the primes found in a range.
	WritePrimes(primes model.PrimeRange) (int, error)

	// WriteDivisibility outputs the GCD and LCM of two integers.
	WriteDivisibility(d model.Divisibility) (int, error)
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}
