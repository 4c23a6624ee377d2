package analysis

import (
	"math"

	"github.com/nao1215/numanalyzer/internal/model"
)

// IsPerfectSquare reports whether n is the square of an integer.
func IsPerfectSquare(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isPerfectSquare(v)
}

// IsPerfectCube reports whether n is the cube of an integer.
// Negative cubes qualify: -8 = (-2)³.
func IsPerfectCube(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isPerfectCube(v)
}

func isPerfectSquare(v int64) bool {
	if v < 0 {
		return false
	}
	u := uint64(v)
	r := isqrt(u)
	return r*r == u
}

func isPerfectCube(v int64) bool {
	u := model.AbsInt64(v)
	// The float estimate is within one of the true cube root for u < 2^64.
	c := uint64(math.Round(math.Cbrt(float64(u))))
	lo := c
	if lo > 0 {
		lo--
	}
	for r := lo; r <= c+1; r++ {
		if r*r*r == u {
			return true
		}
	}
	return false
}

// isqrt returns floor(√u) for u < 2^64 by correcting the float estimate.
func isqrt(u uint64) uint64 {
	r := uint64(math.Sqrt(float64(u)))
	for r > 0 && r > u/r {
		r--
	}
	for r+1 <= u/(r+1) {
		r++
	}
	return r
}
