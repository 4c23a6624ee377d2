package analysis

import (
	"github.com/nao1215/numanalyzer/internal/model"
)

// Factors returns every positive divisor of n in ascending order, including
// 1 and n itself. Factors(1) is [1]. Zero, negative integers and Reals
// yield an empty, non-nil slice.
func Factors(n model.Number) []uint64 {
	v, ok := n.Int64()
	if !ok || v < 1 {
		return []uint64{}
	}
	return factorsOf(uint64(v))
}

// factorsOf enumerates divisors by trial division to √u. Each hit i pairs
// with u/i; the small halves come out ascending and the large halves
// descending, so the set is assembled in order without sorting.
func factorsOf(u uint64) []uint64 {
	if u == 0 {
		return []uint64{}
	}

	var small, large []uint64
	for i := uint64(1); i <= u/i; i++ {
		if u%i != 0 {
			continue
		}
		small = append(small, i)
		if j := u / i; j != i {
			large = append(large, j)
		}
	}

	factors := make([]uint64, 0, len(small)+len(large))
	factors = append(factors, small...)
	for i := len(large) - 1; i >= 0; i-- {
		factors = append(factors, large[i])
	}
	return factors
}
