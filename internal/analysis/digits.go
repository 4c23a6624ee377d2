package analysis

import (
	"strconv"

	"github.com/nao1215/numanalyzer/internal/model"
)

// The digit functions accept any Number and work on the decimal digits of
// its absolute integer part: 12.7 is treated as 12 and -121 as 121.

// IsPalindrome reports whether the digits read the same in both directions.
func IsPalindrome(n model.Number) bool {
	digits := n.IntegerDigits()
	if digits == "" {
		return false
	}
	return isPalindromeDigits(digits)
}

func isPalindromeDigits(digits string) bool {
	for i, j := 0, len(digits)-1; i < j; i, j = i+1, j-1 {
		if digits[i] != digits[j] {
			return false
		}
	}
	return true
}

// DigitSum returns the sum of the decimal digits.
func DigitSum(n model.Number) int {
	return digitSum(n.IntegerDigits())
}

// DigitalRoot repeatedly sums the decimal digits until a single digit
// remains (9875 → 29 → 11 → 2).
func DigitalRoot(n model.Number) int {
	return digitalRoot(n.IntegerDigits())
}

// ReverseDigits returns the integer formed by the digits in reverse order;
// trailing zeros of the input become dropped leading zeros (120 → 21).
// The boolean is false when the reversal does not fit in a uint64, which
// can only happen for Reals beyond the int64 range.
func ReverseDigits(n model.Number) (uint64, bool) {
	digits := n.IntegerDigits()
	if digits == "" {
		return 0, false
	}
	return reverseDigits(digits)
}

func digitSum(digits string) int {
	sum := 0
	for i := range len(digits) {
		sum += int(digits[i] - '0')
	}
	return sum
}

func digitalRoot(digits string) int {
	root := digitSum(digits)
	for root >= 10 {
		root = digitSum(strconv.Itoa(root))
	}
	return root
}

func reverseDigits(digits string) (uint64, bool) {
	reversed := make([]byte, len(digits))
	for i := range len(digits) {
		reversed[len(digits)-1-i] = digits[i]
	}
	v, err := strconv.ParseUint(string(reversed), 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
