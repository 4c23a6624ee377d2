package analysis

import (
	"math/big"

	"github.com/nao1215/numanalyzer/internal/model"
)

var (
	bigFour = big.NewInt(4)
	bigFive = big.NewInt(5)
)

// IsFibonacci reports whether n is a Fibonacci number, using the identity
// that n is Fibonacci iff 5n²+4 or 5n²−4 is a perfect square.
//
// 5n² overflows int64 for n above roughly 1.36e9, so the identity is
// evaluated with math/big and an exact integer square root. The result is
// exact for every int64; Reals and negatives are never Fibonacci numbers.
func IsFibonacci(n model.Number) bool {
	v, ok := n.Int64()
	if !ok {
		return false
	}
	return isFibonacci(v)
}

func isFibonacci(v int64) bool {
	if v < 0 {
		return false
	}

	x := new(big.Int).SetInt64(v)
	x.Mul(x, x)
	x.Mul(x, bigFive)

	plus := new(big.Int).Add(x, bigFour)
	if isBigSquare(plus) {
		return true
	}

	minus := new(big.Int).Sub(x, bigFour)
	return minus.Sign() >= 0 && isBigSquare(minus)
}

// isBigSquare reports whether the non-negative x is a perfect square.
func isBigSquare(x *big.Int) bool {
	r := new(big.Int).Sqrt(x)
	return r.Mul(r, r).Cmp(x) == 0
}
