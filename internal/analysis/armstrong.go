package analysis

import (
	"math/bits"
	"strconv"

	"github.com/nao1215/numanalyzer/internal/model"
)

// IsArmstrong reports whether n equals the sum of its decimal digits, each
// raised to the number of digits (153 = 1³ + 5³ + 3³).
// Reals and negative integers are never Armstrong numbers.
func IsArmstrong(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isArmstrong(v)
}

func isArmstrong(v int64) bool {
	if v < 0 {
		return false
	}

	digits := strconv.FormatInt(v, 10)
	power := len(digits)
	target := uint64(v)

	var sum uint64
	for i := range len(digits) {
		term, ok := powUint64(uint64(digits[i]-'0'), power)
		if !ok {
			return false
		}
		var carry uint64
		sum, carry = bits.Add64(sum, term, 0)
		// Terms are non-negative, so once the sum passes the target it stays past it.
		if carry != 0 || sum > target {
			return false
		}
	}

	return sum == target
}

// powUint64 returns base^exp and false if the result overflows uint64.
func powUint64(base uint64, exp int) (uint64, bool) {
	result := uint64(1)
	for range exp {
		hi, lo := bits.Mul64(result, base)
		if hi != 0 {
			return 0, false
		}
		result = lo
	}
	return result, true
}
