package model

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Number parsing errors.
var (
	// ErrEmptyNumber is returned when the input is empty or only whitespace.
	ErrEmptyNumber = errors.New("number cannot be empty")
	// ErrNotANumber is returned when the input cannot be parsed as a number.
	ErrNotANumber = errors.New("not a number")
	// ErrNotFinite is returned when the input parses to NaN or an infinity.
	ErrNotFinite = errors.New("number must be finite")
)

// Kind tags the representation carried by a Number.
type Kind int

const (
	// KindInteger marks a Number that holds an exact int64.
	KindInteger Kind = iota
	// KindReal marks a Number that holds a float64. Integral values outside
	// the int64 range (for example 1e20) are reals as well.
	KindReal
)

// int64 bounds as float64. Both are exact powers of two.
const (
	minInt64Float = -0x1p63
	maxInt64Float = 0x1p63

	// maxExactFloat is the magnitude from which float64 can no longer hold
	// every integer.
	maxExactFloat = 0x1p53
)

// String returns the lowercase name of the kind.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	default:
		return unknownStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// unknownStr is the string representation for unknown enum values.
const unknownStr = "unknown"

// Number is an immutable numeric value tagged as Integer or Real.
//
// The tag is decided once, when the value is created, so that every
// predicate checks its integrality precondition the same way instead of
// comparing a float against its truncation.
type Number struct {
	kind Kind
	i    int64
	f    float64
}

// Int returns an Integer Number.
func Int(v int64) Number {
	return Number{kind: KindInteger, i: v, f: float64(v)}
}

// Classify returns an Integer when v is integral and inside the int64
// range, and a Real otherwise. NaN and infinities are kept as Reals;
// ParseNumber is the place that rejects them for user input.
func Classify(v float64) Number {
	if v == math.Trunc(v) && v >= minInt64Float && v < maxInt64Float {
		return Int(int64(v))
	}
	return Number{kind: KindReal, f: v}
}

// ParseNumber parses user text into a Number.
// Plain decimal integers are parsed exactly; everything else goes through
// strconv.ParseFloat and is classified with Classify, so "12.0" is an Integer.
// A value is only an Integer when the text denotes exactly that int64:
// "-9223372036854775809" is a Real even though it rounds to math.MinInt64.
// Hexadecimal and other base-prefixed forms are rejected.
func ParseNumber(s string) (Number, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Number{}, ErrEmptyNumber
	}
	if hasBasePrefix(s) {
		return Number{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}

	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), nil
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return Number{}, fmt.Errorf("%w: %q", ErrNotFinite, s)
		}
		return Number{}, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, fmt.Errorf("%w: %q", ErrNotFinite, s)
	}

	n := Classify(f)
	if n.kind == KindInteger && math.Abs(f) >= maxExactFloat && !denotesInt64(s, n.i) {
		return Number{kind: KindReal, f: f}, nil
	}
	return n, nil
}

// hasBasePrefix reports whether s, after an optional sign, starts with a
// Go base prefix such as 0x. strconv.ParseFloat accepts hex floats.
func hasBasePrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) < 2 || s[0] != '0' {
		return false
	}
	switch s[1] {
	case 'x', 'X', 'b', 'B', 'o', 'O':
		return true
	default:
		return false
	}
}

// denotesInt64 reports whether the decimal text s is exactly v.
// Above maxExactFloat the float64 parse may have rounded.
func denotesInt64(s string, v int64) bool {
	r, ok := new(big.Rat).SetString(s)
	if !ok || !r.IsInt() || !r.Num().IsInt64() {
		return false
	}
	return r.Num().Int64() == v
}

// MustParseNumber parses s or panics if it is invalid.
// Use only for known-valid literals in tests or initialization.
func MustParseNumber(s string) Number {
	n, err := ParseNumber(s)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseInteger parses user text that must denote an Integer.
// "12.0" is accepted; "12.5" and "1e20" are rejected with ErrNotAnInteger.
func ParseInteger(s string) (int64, error) {
	n, err := ParseNumber(s)
	if err != nil {
		return 0, err
	}
	i, ok := n.Int64()
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotAnInteger, strings.TrimSpace(s))
	}
	return i, nil
}

// ErrNotAnInteger is returned by ParseInteger for non-integral input.
var ErrNotAnInteger = errors.New("not an integer")

// Kind returns the representation tag.
func (n Number) Kind() Kind {
	return n.kind
}

// IsInteger returns true if n holds an exact int64.
func (n Number) IsInteger() bool {
	return n.kind == KindInteger
}

// Int64 returns the integer value and true for Integers, or 0 and false.
func (n Number) Int64() (int64, bool) {
	if n.kind != KindInteger {
		return 0, false
	}
	return n.i, true
}

// Float64 returns the value as a float64. Large Integers lose precision.
func (n Number) Float64() float64 {
	if n.kind == KindInteger {
		return float64(n.i)
	}
	return n.f
}

// Sign returns -1, 0 or +1.
func (n Number) Sign() int {
	if n.kind == KindInteger {
		switch {
		case n.i > 0:
			return 1
		case n.i < 0:
			return -1
		default:
			return 0
		}
	}
	switch {
	case n.f > 0:
		return 1
	case n.f < 0:
		return -1
	default:
		return 0
	}
}

// IsFinite returns false for Reals holding NaN or an infinity.
func (n Number) IsFinite() bool {
	if n.kind == KindInteger {
		return true
	}
	return !math.IsNaN(n.f) && !math.IsInf(n.f, 0)
}

// IntegerDigits returns the decimal digits of the absolute integer part,
// without sign or leading zeros ("0" for zero). Non-finite values yield "".
func (n Number) IntegerDigits() string {
	if n.kind == KindInteger {
		return strconv.FormatUint(AbsInt64(n.i), 10)
	}
	if !n.IsFinite() {
		return ""
	}
	return strconv.FormatFloat(math.Trunc(math.Abs(n.f)), 'f', 0, 64)
}

// Mul returns n*m. Integer products stay exact unless they overflow int64,
// in which case the result degrades to a Real.
func (n Number) Mul(m Number) Number {
	if n.kind == KindInteger && m.kind == KindInteger {
		if p, ok := mulInt64(n.i, m.i); ok {
			return Int(p)
		}
	}
	return Number{kind: KindReal, f: n.Float64() * m.Float64()}
}

// Equals returns true if both values have the same kind and value.
func (n Number) Equals(other Number) bool {
	if n.kind != other.kind {
		return false
	}
	if n.kind == KindInteger {
		return n.i == other.i
	}
	return n.f == other.f || (math.IsNaN(n.f) && math.IsNaN(other.f))
}

// String formats Integers exactly and Reals in the shortest form that
// round-trips ("12.5", "1e+20").
func (n Number) String() string {
	if n.kind == KindInteger {
		return strconv.FormatInt(n.i, 10)
	}
	return strconv.FormatFloat(n.f, 'g', -1, 64)
}

// MarshalJSON encodes the value as a JSON number. Non-finite Reals, which
// only appear as overflowing derived values, are encoded as strings.
func (n Number) MarshalJSON() ([]byte, error) {
	if !n.IsFinite() {
		return []byte(strconv.Quote(n.String())), nil
	}
	return []byte(n.String()), nil
}

// AbsInt64 returns |v| as a uint64, which is exact for math.MinInt64 too.
func AbsInt64(v int64) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

// mulInt64 multiplies two int64 values and reports whether the product fits.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, false
	}
	p := a * b
	if p/b != a {
		return 0, false
	}
	return p, true
}
