package sympy

import (
	"math/big"
	"sort"
)

// Degree returns the highest power of v in e; zero if v is absent. A
// term like v^n with non-integer n counts as degree 1 for the
// classifier (§4.2 edge cases), giving up a clean polynomial shape
// rather than misreporting.
func Degree(e Expr, v string) int {
	switch t := e.(type) {
	case NumExpr:
		return 0
	case SymExpr:
		if t.S.Name == v {
			return 1
		}
		return 0
	case AddExpr:
		max := 0
		for _, term := range t.Terms {
			if d := Degree(term, v); d > max {
				max = d
			}
		}
		return max
	case MulExpr:
		sum := 0
		for _, f := range t.Factors {
			sum += Degree(f, v)
		}
		return sum
	case PowExpr:
		if base, ok := t.Base.(SymExpr); ok && base.S.Name == v {
			if exp, ok := t.Exponent.(NumExpr); ok && exp.V.IsInteger() {
				if bi, ok := exp.V.AsBigInt(); ok && bi.IsInt64() && bi.Sign() >= 0 {
					return int(bi.Int64())
				}
			}
			// non-integer or negative exponent: conservative degree 1.
			return 1
		}
		baseDeg := Degree(t.Base, v)
		if baseDeg == 0 {
			return 0
		}
		if exp, ok := t.Exponent.(NumExpr); ok && exp.V.IsInteger() {
			if bi, ok := exp.V.AsBigInt(); ok && bi.IsInt64() && bi.Sign() >= 0 {
				return baseDeg * int(bi.Int64())
			}
		}
		return 1
	}
	return 0
}

// IsPolynomialIn reports whether e is recognisably a polynomial in v:
// every exponent on v encountered is a non-negative integer.
func IsPolynomialIn(e Expr, v string) bool {
	ok := true
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case AddExpr:
			for _, term := range t.Terms {
				walk(term)
			}
		case MulExpr:
			for _, f := range t.Factors {
				walk(f)
			}
		case PowExpr:
			if base, isSym := t.Base.(SymExpr); isSym && base.S.Name == v {
				exp, isNum := t.Exponent.(NumExpr)
				if !isNum || !exp.V.IsInteger() || exp.V.Sign() < 0 {
					ok = false
					return
				}
			} else {
				walk(t.Base)
			}
		}
	}
	walk(e.Simplify())
	return ok
}

// CoefficientAt returns the coefficient of v^k in e; defaults to 0.
func CoefficientAt(e Expr, v string, k int) Expr {
	coeffs := CoefficientsList(e, v)
	for _, c := range coeffs {
		if c.Degree == k {
			return c.Coeff
		}
	}
	return NumOf(Zero())
}

// Coefficient pairs a degree with its (possibly symbolic) coefficient.
type Coefficient struct {
	Degree int
	Coeff  Expr
}

// CoefficientsList returns the ascending (degree, coefficient) pairs of
// e with respect to v. Coefficients may themselves be arbitrary
// expressions (unevaluated BigInteger, Rational, symbolic constants).
func CoefficientsList(e Expr, v string) []Coefficient {
	e = e.Simplify()
	byDegree := map[int][]Expr{}

	addTerm := func(deg int, coeff Expr) {
		byDegree[deg] = append(byDegree[deg], coeff)
	}

	var terms []Expr
	if a, ok := e.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{e}
	}

	for _, term := range terms {
		deg, coeff := termDegreeAndCoefficient(term, v)
		addTerm(deg, coeff)
	}

	degrees := make([]int, 0, len(byDegree))
	for d := range byDegree {
		degrees = append(degrees, d)
	}
	sort.Ints(degrees)

	out := make([]Coefficient, 0, len(degrees))
	for _, d := range degrees {
		out = append(out, Coefficient{d, AddExpr{byDegree[d]}.Simplify()})
	}
	return out
}

// termDegreeAndCoefficient splits one additive term into its degree in
// v and the remaining coefficient expression (the term with the v^deg
// factor removed).
func termDegreeAndCoefficient(term Expr, v string) (int, Expr) {
	switch t := term.(type) {
	case SymExpr:
		if t.S.Name == v {
			return 1, NumOf(One())
		}
		return 0, t
	case PowExpr:
		if base, ok := t.Base.(SymExpr); ok && base.S.Name == v {
			if exp, ok := t.Exponent.(NumExpr); ok && exp.V.IsInteger() {
				if bi, ok := exp.V.AsBigInt(); ok && bi.IsInt64() && bi.Sign() >= 0 {
					return int(bi.Int64()), NumOf(One())
				}
			}
		}
		return 0, t
	case MulExpr:
		deg := 0
		var rest []Expr
		for _, f := range t.Factors {
			d, c := termDegreeAndCoefficient(f, v)
			if d > 0 {
				deg += d
				continue
			}
			rest = append(rest, c)
		}
		if len(rest) == 0 {
			return deg, NumOf(One())
		}
		if len(rest) == 1 {
			return deg, rest[0]
		}
		return deg, MulExpr{rest}.Simplify()
	default:
		return 0, t
	}
}

// LeadingCoefficient returns the coefficient of the highest-degree term.
func LeadingCoefficient(e Expr, v string) Expr {
	coeffs := CoefficientsList(e, v)
	if len(coeffs) == 0 {
		return NumOf(Zero())
	}
	return coeffs[len(coeffs)-1].Coeff
}

// ConstantTerm returns the coefficient of v^0.
func ConstantTerm(e Expr, v string) Expr { return CoefficientAt(e, v, 0) }

// IsMonic reports whether e's leading coefficient in v is exactly 1.
func IsMonic(e Expr, v string) bool {
	lc := LeadingCoefficient(e, v).Simplify()
	n, ok := lc.(NumExpr)
	return ok && n.V.Equal(One())
}

// GCD returns a common divisor of a and b. It is required only to be
// correct on integers and monomials; symbolic terms it does not
// recognise fall back to 1 (§4.2). Integers use the Euclidean
// algorithm; single-variable polynomial coefficient lists also use a
// Euclidean reduction (supplemented from the original implementation's
// core/polynomial/coefficients.rs, §"Supplemented features").
func GCD(a, b Expr) Expr {
	a, b = a.Simplify(), b.Simplify()
	if an, ok := a.(NumExpr); ok {
		if bn, ok := b.(NumExpr); ok && an.V.IsInteger() && bn.V.IsInteger() {
			ai, _ := an.V.AsBigInt()
			bi, _ := bn.V.AsBigInt()
			return BigNumber(gcdBigInt(ai, bi))
		}
	}
	if a.Equal(b) {
		return a
	}
	if v, ok := commonPolynomialVar(a, b); ok {
		if g, ok := polyGCDInVar(a, b, v); ok {
			return g
		}
	}
	return NumOf(One())
}

func commonPolynomialVar(a, b Expr) (string, bool) {
	av, aok := soleSymbol(a)
	bv, bok := soleSymbol(b)
	if aok && bok && av == bv {
		return av, true
	}
	return "", false
}

// soleSymbol returns the single symbol name occurring in e, if exactly one.
func soleSymbol(e Expr) (string, bool) {
	found := map[string]bool{}
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case SymExpr:
			found[t.S.Name] = true
		case AddExpr:
			for _, c := range t.Terms {
				walk(c)
			}
		case MulExpr:
			for _, c := range t.Factors {
				walk(c)
			}
		case PowExpr:
			walk(t.Base)
			walk(t.Exponent)
		case FuncExpr:
			for _, c := range t.Args {
				walk(c)
			}
		}
	}
	walk(e)
	if len(found) != 1 {
		return "", false
	}
	for k := range found {
		return k, true
	}
	return "", false
}

// polyGCDInVar computes gcd(a, b) as univariate polynomials in v using
// the Euclidean algorithm over their coefficient lists, reducing by
// polynomial long division. It returns false when a step produces a
// non-numeric coefficient the division cannot clear exactly.
func polyGCDInVar(a, b Expr, v string) (Expr, bool) {
	for !isZeroExpr(b) {
		_, r, ok := polyDivMod(a, b, v)
		if !ok {
			return nil, false
		}
		a, b = b, r
	}
	return a.Simplify(), true
}

func isZeroExpr(e Expr) bool {
	n, ok := e.Simplify().(NumExpr)
	return ok && n.V.IsZero()
}

// polyDivMod divides a by b as univariate polynomials in v, returning
// quotient and remainder. It only succeeds when every intermediate
// coefficient division is between plain numbers.
func polyDivMod(a, b Expr, v string) (Expr, Expr, bool) {
	degB := Degree(b, v)
	lcB := LeadingCoefficient(b, v)
	lcBNum, ok := lcB.Simplify().(NumExpr)
	if !ok {
		return nil, nil, false
	}
	remainder := a.Simplify()
	var quotientTerms []Expr
	for Degree(remainder, v) >= degB && !isZeroExpr(remainder) {
		degR := Degree(remainder, v)
		lcR := LeadingCoefficient(remainder, v).Simplify()
		lcRNum, ok := lcR.(NumExpr)
		if !ok {
			return nil, nil, false
		}
		coeff := lcRNum.V.Div(lcBNum.V)
		powDiff := degR - degB
		term := Mul(NumOf(coeff), Pow(Var(v), NumberOf(int64(powDiff))))
		quotientTerms = append(quotientTerms, term)
		// Subtract term*b one term of b at a time: Mul does not distribute
		// over a sum, so subtracting term*b whole would never cancel the
		// leading term of the remainder.
		bTerms := []Expr{b}
		if ba, ok := b.Simplify().(AddExpr); ok {
			bTerms = ba.Terms
		}
		next := []Expr{remainder}
		for _, bt := range bTerms {
			next = append(next, Mul(NumberOf(-1), term, bt))
		}
		remainder = Add(next...).Simplify()
	}
	return Add(quotientTerms...), remainder, true
}

func gcdBigInt(a, b *big.Int) *big.Int {
	a = new(big.Int).Abs(a)
	b = new(big.Int).Abs(b)
	return new(big.Int).GCD(nil, nil, a, b)
}
