package sympy

// Simplify implements §4.3.1: recursively simplify, flatten nested
// sums (I4), fold numeric constants, collect like terms among
// commutative children by coefficient, leave non-commutative children
// untouched and in their original relative order, then apply I1.
func (a AddExpr) Simplify() Expr {
	var flat []Expr
	for _, t := range a.Terms {
		t = t.Simplify()
		if nested, ok := t.(AddExpr); ok {
			flat = append(flat, nested.Terms...)
		} else {
			flat = append(flat, t)
		}
	}

	var commChildren, nonCommChildren []Expr
	for _, t := range flat {
		if t.Commutativity() == Commutative {
			commChildren = append(commChildren, t)
		} else {
			nonCommChildren = append(nonCommChildren, t)
		}
	}

	constSum := Zero()
	var residue []Expr
	for _, t := range commChildren {
		if n, ok := t.(NumExpr); ok {
			constSum = constSum.Add(n.V)
		} else {
			residue = append(residue, t)
		}
	}

	type bucket struct {
		base  Expr
		coeff Number
	}
	var buckets []bucket
	index := map[string]int{}
	for _, t := range residue {
		coeff, base := decomposeAddTerm(t)
		key := base.String()
		if i, ok := index[key]; ok {
			buckets[i].coeff = buckets[i].coeff.Add(coeff)
			continue
		}
		index[key] = len(buckets)
		buckets = append(buckets, bucket{base, coeff})
	}

	var commResult []Expr
	for _, b := range buckets {
		if b.coeff.IsZero() {
			continue
		}
		if b.coeff.Equal(One()) {
			commResult = append(commResult, b.base)
			continue
		}
		commResult = append(commResult, MulExpr{[]Expr{NumOf(b.coeff), b.base}}.Simplify())
	}

	var identityBonus Number
	commResult, identityBonus = foldPythagoreanIdentities(commResult)
	constSum = constSum.Add(identityBonus)

	if !constSum.IsZero() || (len(commResult) == 0 && len(nonCommChildren) == 0) {
		commResult = append(commResult, NumOf(constSum))
	}

	sortCommutative(commResult)

	result := append(commResult, nonCommChildren...)

	// I1
	if len(result) == 0 {
		return NumOf(Zero())
	}
	if len(result) == 1 {
		return result[0]
	}
	return AddExpr{result}
}

// decomposeAddTerm splits a commutative Add term into coeff*base, where
// coeff is the numeric factor (defaulting to 1) and base is the
// remaining structure, used to collect like terms in §4.3.1 step 5.
func decomposeAddTerm(e Expr) (Number, Expr) {
	m, ok := e.(MulExpr)
	if !ok || len(m.Factors) == 0 {
		return One(), e
	}
	n, ok := m.Factors[0].(NumExpr)
	if !ok {
		return One(), e
	}
	rest := m.Factors[1:]
	switch len(rest) {
	case 0:
		return n.V, NumOf(One())
	case 1:
		return n.V, rest[0]
	default:
		return n.V, MulExpr{rest}
	}
}
