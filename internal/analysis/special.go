package analysis

import (
	"github.com/nao1215/numanalyzer/internal/model"
)

// SpecialProperties returns the labels of every special property that
// holds for n, in a fixed order: prime, Armstrong, perfect, Fibonacci,
// palindrome, perfect square, perfect cube. When none hold the result is
// the single label model.NoSpecialProperties, never an empty slice.
//
// The Integer/Real tag is inspected once here; the integer predicates are
// then called directly on the int64 value.
func SpecialProperties(n model.Number) []string {
	var props []string

	v, integral := n.Int64()
	if integral {
		if isPrime(v) {
			props = append(props, model.LabelPrime)
		}
		if isArmstrong(v) {
			props = append(props, model.LabelArmstrong)
		}
		if isPerfect(v) {
			props = append(props, model.LabelPerfect)
		}
		if isFibonacci(v) {
			props = append(props, model.LabelFibonacci)
		}
	}

	// Palindromes are defined on the integer part of any Number.
	if IsPalindrome(n) {
		props = append(props, model.LabelPalindrome)
	}

	if integral && isPerfectSquare(v) {
		props = append(props, model.LabelPerfectSquare)
	}
	if integral && isPerfectCube(v) {
		props = append(props, model.LabelPerfectCube)
	}

	if len(props) == 0 {
		return []string{model.NoSpecialProperties}
	}
	return props
}
