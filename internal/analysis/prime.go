package analysis

import (
	"github.com/nao1215/numanalyzer/internal/model"
)

// IsPrime reports whether n is a prime number.
// Reals and integers below 2 are never prime.
func IsPrime(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isPrime(v)
}

// isPrime tests v by trial division using the 6k±1 wheel.
// The loop condition k <= v/k avoids overflowing k*k near math.MaxInt64.
func isPrime(v int64) bool {
	if v < 2 {
		return false
	}
	if v < 4 {
		return true
	}
	if v%2 == 0 || v%3 == 0 {
		return false
	}
	for k := int64(5); k <= v/k; k += 6 {
		if v%k == 0 || v%(k+2) == 0 {
			return false
		}
	}
	return true
}

// PrimesInRange lists every prime in [start, end] in ascending order.
// Reversed bounds are swapped, matching the interactive tool's behaviour.
func PrimesInRange(start, end int64) model.PrimeRange {
	if start > end {
		start, end = end, start
	}

	result := model.PrimeRange{
		Start:  start,
		End:    end,
		Primes: make([]int64, 0),
	}

	if end < 2 {
		return result
	}
	lo := start
	if lo < 2 {
		lo = 2
	}

	for i := lo; ; i++ {
		if isPrime(i) {
			result.Primes = append(result.Primes, i)
		}
		if i == end {
			break
		}
	}

	result.Count = len(result.Primes)
	return result
}
