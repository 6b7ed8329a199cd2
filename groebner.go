package sympy

import "sort"

// MonomialOrder selects the term ordering used by the leading-monomial
// extraction and the Buchberger completion loop (§4.5.8).
type MonomialOrder int

const (
	Lex MonomialOrder = iota
	Grlex
	Grevlex
)

// Monomial is an exponent vector indexed against a fixed variable
// list shared by every polynomial in a Groebner computation.
type Monomial []int

func totalDegree(m Monomial) int {
	sum := 0
	for _, e := range m {
		sum += e
	}
	return sum
}

// Less reports whether a precedes b under order, used to pick the
// leading monomial of a polynomial (the maximum: LeadingTerm replaces
// its current best term whenever Less(best, t) holds).
func (order MonomialOrder) Less(a, b Monomial) bool {
	switch order {
	case Lex:
		return lexLess(a, b)
	case Grlex:
		da, db := totalDegree(a), totalDegree(b)
		if da != db {
			return da < db
		}
		return lexLess(a, b)
	case Grevlex:
		da, db := totalDegree(a), totalDegree(b)
		if da != db {
			return da < db
		}
		return revlexLess(a, b)
	}
	return false
}

func lexLess(a, b Monomial) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}

// revlexLess implements the "reverse lex on exponents in reverse
// order" rule: the LAST differing exponent (scanning from the end)
// decides, and a SMALLER exponent there means a is GREATER — so we
// invert the comparison.
func revlexLess(a, b Monomial) bool {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] != b[i] {
			return a[i] > b[i]
		}
	}
	return false
}

// LCM returns the component-wise maximum of two monomials.
func LCM(a, b Monomial) Monomial {
	out := make(Monomial, len(a))
	for i := range a {
		if a[i] > b[i] {
			out[i] = a[i]
		} else {
			out[i] = b[i]
		}
	}
	return out
}

// polyTerm is one additive term of a multivariate polynomial: a
// numeric coefficient times a monomial over vars.
type polyTerm struct {
	Coeff Number
	Mono  Monomial
}

// Polynomial is a sparse multivariate polynomial over a fixed,
// ordered variable list, used only inside the Groebner core.
type Polynomial struct {
	Vars  []string
	Terms []polyTerm
}

// PolynomialFromExpr flattens e (assumed fully expanded: a sum of
// numeric-coefficient monomials) into a Polynomial over vars.
func PolynomialFromExpr(e Expr, vars []string) Polynomial {
	e = Simplify(e)
	var addTerms []Expr
	if a, ok := e.(AddExpr); ok {
		addTerms = a.Terms
	} else {
		addTerms = []Expr{e}
	}
	p := Polynomial{Vars: vars}
	for _, t := range addTerms {
		coeff, mono := monomialOf(t, vars)
		p.Terms = append(p.Terms, polyTerm{coeff, mono})
	}
	return p
}

func monomialOf(e Expr, vars []string) (Number, Monomial) {
	mono := make(Monomial, len(vars))
	coeff := One()
	var factors []Expr
	if m, ok := e.(MulExpr); ok {
		factors = m.Factors
	} else {
		factors = []Expr{e}
	}
	idx := func(name string) int {
		for i, v := range vars {
			if v == name {
				return i
			}
		}
		return -1
	}
	for _, f := range factors {
		switch t := f.(type) {
		case NumExpr:
			coeff = coeff.Mul(t.V)
		case SymExpr:
			if i := idx(t.S.Name); i >= 0 {
				mono[i]++
			}
		case PowExpr:
			if s, ok := t.Base.(SymExpr); ok {
				if n, ok := t.Exponent.(NumExpr); ok && n.V.IsInteger() {
					if i := idx(s.S.Name); i >= 0 {
						bi, _ := n.V.AsBigInt()
						mono[i] += int(bi.Int64())
					}
				}
			}
		}
	}
	return coeff, mono
}

// ToExpr reconstructs the Expr form of p.
func (p Polynomial) ToExpr() Expr {
	var terms []Expr
	for _, t := range p.Terms {
		factors := []Expr{NumOf(t.Coeff)}
		for i, e := range t.Mono {
			if e == 0 {
				continue
			}
			factors = append(factors, Pow(Var(p.Vars[i]), NumberOf(int64(e))))
		}
		terms = append(terms, Mul(factors...))
	}
	return Add(terms...)
}

// LeadingTerm returns the leading term of p under order, i.e. the
// term whose monomial is maximal.
func (p Polynomial) LeadingTerm(order MonomialOrder) (polyTerm, bool) {
	if len(p.Terms) == 0 {
		return polyTerm{}, false
	}
	best := p.Terms[0]
	for _, t := range p.Terms[1:] {
		if order.Less(best.Mono, t.Mono) {
			best = t
		}
	}
	return best, true
}

// SPolynomial computes the S-polynomial of f and g under order:
// lcm*(lc(f)*lm(f))^-1*f - lcm*(lc(g)*lm(g))^-1*g. S(f, f) = 0 holds
// because both scaled copies are then identical and cancel termwise.
func SPolynomial(f, g Polynomial, order MonomialOrder) Polynomial {
	lf, okF := f.LeadingTerm(order)
	lg, okG := g.LeadingTerm(order)
	if !okF || !okG {
		return Polynomial{Vars: f.Vars}
	}
	lcm := LCM(lf.Mono, lg.Mono)

	scaleF := monomialQuotient(lcm, lf.Mono)
	scaleG := monomialQuotient(lcm, lg.Mono)

	left := scalePolynomial(f, One().Div(lf.Coeff), scaleF)
	right := scalePolynomial(g, One().Div(lg.Coeff), scaleG)

	return subtractPolynomials(left, right)
}

func monomialQuotient(a, b Monomial) Monomial {
	out := make(Monomial, len(a))
	for i := range a {
		out[i] = a[i] - b[i]
	}
	return out
}

func scalePolynomial(p Polynomial, coeff Number, shift Monomial) Polynomial {
	out := Polynomial{Vars: p.Vars}
	for _, t := range p.Terms {
		mono := make(Monomial, len(t.Mono))
		for i := range mono {
			mono[i] = t.Mono[i] + shift[i]
		}
		out.Terms = append(out.Terms, polyTerm{t.Coeff.Mul(coeff), mono})
	}
	return out
}

func subtractPolynomials(a, b Polynomial) Polynomial {
	out := Polynomial{Vars: a.Vars}
	seen := map[string]int{}
	key := func(m Monomial) string {
		s := ""
		for _, e := range m {
			s += itoa(e) + ","
		}
		return s
	}
	for _, t := range a.Terms {
		seen[key(t.Mono)] = len(out.Terms)
		out.Terms = append(out.Terms, t)
	}
	for _, t := range b.Terms {
		k := key(t.Mono)
		if i, ok := seen[k]; ok {
			out.Terms[i].Coeff = out.Terms[i].Coeff.Sub(t.Coeff)
		} else {
			out.Terms = append(out.Terms, polyTerm{t.Coeff.Neg(), t.Mono})
		}
	}
	var nonzero []polyTerm
	for _, t := range out.Terms {
		if !t.Coeff.IsZero() {
			nonzero = append(nonzero, t)
		}
	}
	out.Terms = nonzero
	return out
}

// GroebnerBasis runs Buchberger's completion loop to a fixed point:
// for every pair in the current basis, reduce their S-polynomial
// against the basis, and add it if it reduces to something nonzero.
// This is the skeletal form the spec calls for; it terminates on the
// small bases the solver hands it but is not tuned for performance.
func GroebnerBasis(generators []Polynomial, order MonomialOrder) []Polynomial {
	basis := append([]Polynomial{}, generators...)
	changed := true
	for changed {
		changed = false
		n := len(basis)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				s := SPolynomial(basis[i], basis[j], order)
				r := reduce(s, basis, order)
				if len(r.Terms) > 0 {
					basis = append(basis, r)
					changed = true
				}
			}
		}
	}
	sort.Slice(basis, func(i, j int) bool {
		li, _ := basis[i].LeadingTerm(order)
		lj, _ := basis[j].LeadingTerm(order)
		return order.Less(li.Mono, lj.Mono)
	})
	return basis
}

// reduce performs multivariate division of p by basis, repeatedly
// cancelling p's leading term against any basis element whose leading
// monomial divides it, until no further reduction applies.
func reduce(p Polynomial, basis []Polynomial, order MonomialOrder) Polynomial {
	remainder := Polynomial{Vars: p.Vars, Terms: append([]polyTerm{}, p.Terms...)}
	progress := true
	for progress {
		progress = false
		lt, ok := remainder.LeadingTerm(order)
		if !ok {
			break
		}
		for _, b := range basis {
			lb, ok := b.LeadingTerm(order)
			if !ok || !monomialDivides(lb.Mono, lt.Mono) {
				continue
			}
			shift := monomialQuotient(lt.Mono, lb.Mono)
			scaled := scalePolynomial(b, lt.Coeff.Div(lb.Coeff), shift)
			remainder = subtractPolynomials(remainder, scaled)
			progress = true
			break
		}
	}
	return remainder
}

func monomialDivides(a, b Monomial) bool {
	for i := range a {
		if a[i] > b[i] {
			return false
		}
	}
	return true
}
