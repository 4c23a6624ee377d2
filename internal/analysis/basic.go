package analysis

import (
	"math"

	"github.com/nao1215/numanalyzer/internal/model"
)

// BasicProperties computes the PropertyReport for n.
//
// Parity, sign, square, cube and square root are filled for every Number.
// Factors, factor count, reversed digits, digit sum and digital root are
// only computed for Integers and describe |n|.
func BasicProperties(n model.Number) model.PropertyReport {
	square := n.Mul(n)
	report := model.PropertyReport{
		Number:     n,
		Parity:     parityOf(n),
		Sign:       signOf(n),
		Square:     square,
		Cube:       square.Mul(n),
		SquareRoot: squareRoot(n),
	}

	v, ok := n.Int64()
	if !ok {
		return report
	}

	abs := model.AbsInt64(v)
	digits := n.IntegerDigits()
	factors := factorsOf(abs)
	// The reversal of at most 19 digits always fits in a uint64.
	reversed, _ := reverseDigits(digits)

	report.Integer = &model.IntegerProperties{
		Factors:     factors,
		FactorCount: len(factors),
		Reversed:    reversed,
		DigitSum:    digitSum(digits),
		DigitalRoot: digitalRoot(digits),
	}
	return report
}

func parityOf(n model.Number) model.Parity {
	v, ok := n.Int64()
	if !ok {
		return model.ParityNotApplicable
	}
	if v%2 == 0 {
		return model.ParityEven
	}
	return model.ParityOdd
}

func signOf(n model.Number) model.SignClass {
	switch n.Sign() {
	case 1:
		return model.SignPositive
	case -1:
		return model.SignNegative
	default:
		return model.SignZero
	}
}

func squareRoot(n model.Number) model.Root {
	if n.Sign() < 0 {
		return model.Root{}
	}
	return model.Root{Value: math.Sqrt(n.Float64()), Real: true}
}
