package sympy

import (
	"fmt"
	"math/big"
)

// NumberKind tags which representation a Number currently holds.
type NumberKind int

const (
	// KindInteger is a small integer that fits in int64, the hot path.
	KindInteger NumberKind = iota
	// KindBigInteger is an unbounded integer used once int64 would overflow.
	KindBigInteger
	// KindRational is a reduced fraction with a positive denominator.
	KindRational
	// KindFloat is a decimal value.
	KindFloat
)

// Number is a discriminated numeric value. Every variant compares by
// mathematical value: Int(2), BigInt(big.NewInt(2)) and Rat(big.NewRat(2,1))
// are all Equal.
type Number struct {
	kind NumberKind
	i    int64
	b    *big.Int
	r    *big.Rat
	f    float64
}

// Int builds a Number from a small integer.
func Int(n int64) Number { return Number{kind: KindInteger, i: n} }

// BigInt builds a Number from an arbitrary-precision integer, collapsing
// back to KindInteger when it fits in int64.
func BigInt(n *big.Int) Number {
	if n.IsInt64() {
		return Int(n.Int64())
	}
	return Number{kind: KindBigInteger, b: new(big.Int).Set(n)}
}

// Rat builds a Number from a fraction, reducing it and collapsing to
// KindInteger/KindBigInteger when the denominator is 1.
func Rat(r *big.Rat) Number {
	r = new(big.Rat).Set(r)
	if r.IsInt() {
		return BigInt(new(big.Int).Set(r.Num()))
	}
	return Number{kind: KindRational, r: r}
}

// Frac builds a reduced Number for the fraction a/b.
func Frac(a, b int64) Number { return Rat(big.NewRat(a, b)) }

// Flt builds a Number from a float64.
func Flt(f float64) Number { return Number{kind: KindFloat, f: f} }

// Zero is the additive identity.
func Zero() Number { return Int(0) }

// One is the multiplicative identity.
func One() Number { return Int(1) }

// Kind reports which representation n currently holds.
func (n Number) Kind() NumberKind { return n.kind }

// IsFloat reports whether n is a KindFloat value.
func (n Number) IsFloat() bool { return n.kind == KindFloat }

// IsInteger reports whether n is an exact integer (Integer or BigInteger).
func (n Number) IsInteger() bool { return n.kind == KindInteger || n.kind == KindBigInteger }

// IsZero reports whether n is mathematically zero. Floats only equal
// zero at exactly 0.0, per the spec's tolerance rule.
func (n Number) IsZero() bool {
	switch n.kind {
	case KindInteger:
		return n.i == 0
	case KindBigInteger:
		return n.b.Sign() == 0
	case KindRational:
		return n.r.Sign() == 0
	case KindFloat:
		return n.f == 0.0
	}
	return false
}

// Sign returns -1, 0 or 1.
func (n Number) Sign() int {
	switch n.kind {
	case KindInteger:
		switch {
		case n.i < 0:
			return -1
		case n.i > 0:
			return 1
		default:
			return 0
		}
	case KindBigInteger:
		return n.b.Sign()
	case KindRational:
		return n.r.Sign()
	case KindFloat:
		switch {
		case n.f < 0:
			return -1
		case n.f > 0:
			return 1
		default:
			return 0
		}
	}
	return 0
}

// AsBigInt returns n as a *big.Int and true if n is an exact integer.
func (n Number) AsBigInt() (*big.Int, bool) {
	switch n.kind {
	case KindInteger:
		return big.NewInt(n.i), true
	case KindBigInteger:
		return new(big.Int).Set(n.b), true
	}
	return nil, false
}

// AsBigRat returns n as an exact *big.Rat and true, or false for floats.
func (n Number) AsBigRat() (*big.Rat, bool) {
	switch n.kind {
	case KindInteger:
		return big.NewRat(n.i, 1), true
	case KindBigInteger:
		return new(big.Rat).SetInt(n.b), true
	case KindRational:
		return new(big.Rat).Set(n.r), true
	}
	return nil, false
}

// Float64 converts n to a float64, exactly for KindFloat and by
// conversion otherwise.
func (n Number) Float64() float64 {
	switch n.kind {
	case KindInteger:
		return float64(n.i)
	case KindBigInteger:
		f := new(big.Float).SetInt(n.b)
		v, _ := f.Float64()
		return v
	case KindRational:
		v, _ := n.r.Float64()
		return v
	case KindFloat:
		return n.f
	}
	return 0
}

// hasFloat reports whether either operand forces a float result.
func hasFloat(a, b Number) bool { return a.kind == KindFloat || b.kind == KindFloat }

// Add returns a + b, promoting to BigInteger/Float as needed.
func (a Number) Add(b Number) Number {
	if hasFloat(a, b) {
		return Flt(a.Float64() + b.Float64())
	}
	ar, _ := a.AsBigRat()
	br, _ := b.AsBigRat()
	return Rat(new(big.Rat).Add(ar, br))
}

// Sub returns a - b.
func (a Number) Sub(b Number) Number { return a.Add(b.Neg()) }

// Mul returns a * b.
func (a Number) Mul(b Number) Number {
	if hasFloat(a, b) {
		return Flt(a.Float64() * b.Float64())
	}
	ar, _ := a.AsBigRat()
	br, _ := b.AsBigRat()
	return Rat(new(big.Rat).Mul(ar, br))
}

// Div returns a / b. Division by zero returns a zero Number, on the
// float path as well as the exact one; callers that must distinguish this from a real zero
// should check b.IsZero() first.
func (a Number) Div(b Number) Number {
	if b.IsZero() {
		return Zero()
	}
	if hasFloat(a, b) {
		return Flt(a.Float64() / b.Float64())
	}
	ar, _ := a.AsBigRat()
	br, _ := b.AsBigRat()
	return Rat(new(big.Rat).Quo(ar, br))
}

// Neg returns -a.
func (a Number) Neg() Number {
	switch a.kind {
	case KindInteger:
		return Int(-a.i)
	case KindBigInteger:
		return BigInt(new(big.Int).Neg(a.b))
	case KindRational:
		return Rat(new(big.Rat).Neg(a.r))
	case KindFloat:
		return Flt(-a.f)
	}
	return Zero()
}

// Abs returns |a|.
func (a Number) Abs() Number {
	if a.Sign() < 0 {
		return a.Neg()
	}
	return a
}

// Cmp compares a and b, returning -1, 0 or 1. Floats are compared
// numerically against exact values via conversion.
func (a Number) Cmp(b Number) int {
	if hasFloat(a, b) {
		af, bf := a.Float64(), b.Float64()
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	ar, _ := a.AsBigRat()
	br, _ := b.AsBigRat()
	return ar.Cmp(br)
}

// Equal reports whether a and b represent the same mathematical value.
func (a Number) Equal(b Number) bool { return a.Cmp(b) == 0 }

// PowInt raises a to an integer power via repeated squaring; a negative
// exponent gives the reciprocal of the corresponding positive power.
func (a Number) PowInt(exp int64) Number {
	if exp == 0 {
		return One()
	}
	if exp < 0 {
		return One().Div(a.PowInt(-exp))
	}
	if a.kind == KindFloat {
		result := 1.0
		base := a.f
		for exp > 0 {
			if exp&1 == 1 {
				result *= base
			}
			base *= base
			exp >>= 1
		}
		return Flt(result)
	}
	ar, _ := a.AsBigRat()
	num := new(big.Int).Set(ar.Num())
	den := new(big.Int).Set(ar.Denom())
	num.Exp(num, big.NewInt(exp), nil)
	den.Exp(den, big.NewInt(exp), nil)
	return Rat(new(big.Rat).SetFrac(num, den))
}

// String renders n in its most natural form: plain integers, "a/b"
// fractions, and Go's default float formatting.
func (n Number) String() string {
	switch n.kind {
	case KindInteger:
		return fmt.Sprintf("%d", n.i)
	case KindBigInteger:
		return n.b.String()
	case KindRational:
		return n.r.RatString()
	case KindFloat:
		return fmt.Sprintf("%g", n.f)
	}
	return "?"
}
