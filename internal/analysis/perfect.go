package analysis

import (
	"github.com/nao1215/numanalyzer/internal/model"
)

// IsPerfect reports whether n equals the sum of its proper divisors
// (6 = 1 + 2 + 3). Numbers at or below 1 and Reals are never perfect.
func IsPerfect(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isPerfect(v)
}

// isPerfect sums divisor pairs (i, v/i) up to √v, counting a square root
// divisor once, and gives up as soon as the sum exceeds v.
func isPerfect(v int64) bool {
	if v <= 1 {
		return false
	}

	target := uint64(v)
	total := uint64(1)
	for i := uint64(2); i <= target/i; i++ {
		if target%i != 0 {
			continue
		}
		total += i
		if j := target / i; j != i {
			total += j
		}
		if total > target {
			return false
		}
	}

	return total == target
}
