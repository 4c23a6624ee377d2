package model

import (
	"strconv"
)

// Parity classifies an Integer as even or odd.
type Parity int

const (
	// ParityNotApplicable is used for Reals; parity is only defined for integers.
	ParityNotApplicable Parity = iota
	// ParityEven marks integers with remainder 0 mod 2.
	ParityEven
	// ParityOdd marks integers with remainder 1 mod 2.
	ParityOdd
)

// String returns the display name of the parity.
func (p Parity) String() string {
	switch p {
	case ParityEven:
		return "Even"
	case ParityOdd:
		return "Odd"
	case ParityNotApplicable:
		return "Not applicable"
	default:
		return unknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (p Parity) MarshalText() ([]byte, error) {
	switch p {
	case ParityEven:
		return []byte("even"), nil
	case ParityOdd:
		return []byte("odd"), nil
	default:
		return []byte("not_applicable"), nil
	}
}

// SignClass classifies a Number as positive, negative or zero.
type SignClass int

const (
	// SignZero marks the value zero.
	SignZero SignClass = iota
	// SignPositive marks values greater than zero.
	SignPositive
	// SignNegative marks values less than zero.
	SignNegative
)

// String returns the display name of the sign class.
func (s SignClass) String() string {
	switch s {
	case SignZero:
		return "Zero"
	case SignPositive:
		return "Positive"
	case SignNegative:
		return "Negative"
	default:
		return unknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s SignClass) MarshalText() ([]byte, error) {
	switch s {
	case SignPositive:
		return []byte("positive"), nil
	case SignNegative:
		return []byte("negative"), nil
	default:
		return []byte("zero"), nil
	}
}

// Root is a square root restricted to the real branch.
// Real is false for negative inputs, in which case Value is meaningless.
type Root struct {
	Value float64
	Real  bool
}

// rootNotReal is how a non-real square root is displayed and encoded.
const rootNotReal = "Imaginary"

// String returns the root in shortest round-trip form, or "Imaginary".
func (r Root) String() string {
	if !r.Real {
		return rootNotReal
	}
	return strconv.FormatFloat(r.Value, 'g', -1, 64)
}

// MarshalJSON encodes a real root as a number and a non-real one as the
// string "imaginary".
func (r Root) MarshalJSON() ([]byte, error) {
	if !r.Real {
		return []byte(`"imaginary"`), nil
	}
	return []byte(strconv.FormatFloat(r.Value, 'g', -1, 64)), nil
}

// PropertyReport holds the basic arithmetic attributes of one Number.
// Integer is nil when the Number is a Real; those attributes are only
// defined for integers.
type PropertyReport struct {
	// Number is the analysed value.
	Number Number `json:"number"`

	// Parity is even/odd for Integers and not applicable for Reals.
	Parity Parity `json:"parity"`

	// Sign classifies the value as positive, negative or zero.
	Sign SignClass `json:"sign"`

	// Square is Number*Number, exact unless it overflows int64.
	Square Number `json:"square"`

	// Cube is Number^3, exact unless it overflows int64.
	Cube Number `json:"cube"`

	// SquareRoot is the real square root, or a not-real marker for negatives.
	SquareRoot Root `json:"square_root"`

	// Integer holds the integer-only attributes.
	Integer *IntegerProperties `json:"integer,omitempty"`
}

// IntegerProperties are the attributes computed only for integral input.
// They describe the absolute value, so -12 has the factors of 12.
type IntegerProperties struct {
	// Factors is the ascending factor set of |n|; empty for zero.
	Factors []uint64 `json:"factors"`

	// FactorCount is len(Factors).
	FactorCount int `json:"factor_count"`

	// Reversed is |n| with its decimal digits reversed.
	Reversed uint64 `json:"reversed"`

	// DigitSum is the sum of the decimal digits of |n|.
	DigitSum int `json:"digit_sum"`

	// DigitalRoot is the repeated digit sum of |n| (0-9).
	DigitalRoot int `json:"digital_root"`
}

// IsIntegral returns true if the integer-only attributes are present.
func (p PropertyReport) IsIntegral() bool {
	return p.Integer != nil
}
