package model

// Special property labels in their fixed evaluation order.
const (
	LabelPrime         = "Prime Number"
	LabelArmstrong     = "Armstrong Number"
	LabelPerfect       = "Perfect Number"
	LabelFibonacci     = "Fibonacci Number"
	LabelPalindrome    = "Palindrome Number"
	LabelPerfectSquare = "Perfect Square"
	LabelPerfectCube   = "Perfect Cube"

	// NoSpecialProperties replaces an empty special property list so that
	// display code never has to handle the empty case.
	NoSpecialProperties = "No special properties"
)

// Report is the comprehensive analysis of one user input.
type Report struct {
	// Input is the raw text the user typed, trimmed.
	Input string `json:"input"`

	// Kind is the classification of the parsed value.
	Kind Kind `json:"kind"`

	// Basic holds the arithmetic attributes.
	Basic PropertyReport `json:"basic"`

	// Special lists the qualitative labels that hold for the value.
	// It is never empty; see NoSpecialProperties.
	Special []string `json:"special"`
}

// Number returns the analysed value.
func (r *Report) Number() Number {
	return r.Basic.Number
}

// HasSpecialProperties returns true if at least one label holds.
func (r *Report) HasSpecialProperties() bool {
	return len(r.Special) > 0 && !(len(r.Special) == 1 && r.Special[0] == NoSpecialProperties)
}

// PrimeRange is the result of listing primes between two bounds.
type PrimeRange struct {
	// Start is the lower bound, inclusive. Bounds are swapped if given reversed.
	Start int64 `json:"start"`

	// End is the upper bound, inclusive.
	End int64 `json:"end"`

	// Primes lists every prime in [Start, End] in ascending order.
	Primes []int64 `json:"primes"`

	// Count is len(Primes).
	Count int `json:"count"`
}

// Divisibility bundles the GCD and LCM of two integers.
type Divisibility struct {
	A   int64  `json:"a"`
	B   int64  `json:"b"`
	GCD uint64 `json:"gcd"`

	// LCM is 0 when either operand is 0. It is only meaningful when
	// LCMOverflow is false.
	LCM uint64 `json:"lcm"`

	// LCMOverflow is true when the LCM does not fit in a uint64.
	LCMOverflow bool `json:"lcm_overflow,omitempty"`
}
