package analysis

import (
	"math/bits"

	"github.com/nao1215/numanalyzer/internal/model"
)

// GCD returns the greatest common divisor of a and b using Euclid's
// algorithm on absolute values. GCD(0, 0) is 0. The result is a uint64 so
// that GCD(math.MinInt64, 0) = 2^63 is representable.
func GCD(a, b int64) uint64 {
	return gcdUint64(model.AbsInt64(a), model.AbsInt64(b))
}

func gcdUint64(x, y uint64) uint64 {
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// LCM returns |a·b| / GCD(a, b).
// LCM is defined as 0 when either operand is 0, which also guards the
// division by a zero GCD. The boolean is false if the result overflows uint64.
func LCM(a, b int64) (uint64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	x, y := model.AbsInt64(a), model.AbsInt64(b)
	hi, lo := bits.Mul64(x/gcdUint64(x, y), y)
	if hi != 0 {
		return 0, false
	}
	return lo, true
}

// Divide bundles GCD and LCM of a and b for display.
func Divide(a, b int64) model.Divisibility {
	lcm, ok := LCM(a, b)
	return model.Divisibility{
		A:           a,
		B:           b,
		GCD:         GCD(a, b),
		LCM:         lcm,
		LCMOverflow: !ok,
	}
}
