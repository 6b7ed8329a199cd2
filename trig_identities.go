package sympy

// foldPythagoreanIdentities recognises sin(x)^2 + cos(x)^2 -> 1 and the
// hyperbolic identity cosh(x)^2 - sinh(x)^2 -> 1 among a set of
// already-like-term-collected Add children, folding matched pairs into
// a numeric constant. It returns the unmatched residue plus the
// numeric amount folded. This is additional simplifier texture (see
// SPEC_FULL.md's "Supplemented features"), not part of the core
// rewrite rules in §4.3.1, so it is applied as its own pass.
func foldPythagoreanIdentities(terms []Expr) ([]Expr, Number) {
	used := make([]bool, len(terms))
	extra := Zero()

	for i := range terms {
		if used[i] {
			continue
		}
		arg, ok := squaredFuncArg(terms[i], "sin")
		if !ok {
			continue
		}
		for j := range terms {
			if used[j] || j == i {
				continue
			}
			arg2, ok2 := squaredFuncArg(terms[j], "cos")
			if ok2 && arg.Equal(arg2) {
				used[i], used[j] = true, true
				extra = extra.Add(One())
				break
			}
		}
	}

	for i := range terms {
		if used[i] {
			continue
		}
		coeff, base := decomposeAddTerm(terms[i])
		arg, ok := squaredFuncArg(base, "cosh")
		if !ok || !coeff.Equal(One()) {
			continue
		}
		for j := range terms {
			if used[j] || j == i {
				continue
			}
			coeff2, base2 := decomposeAddTerm(terms[j])
			arg2, ok2 := squaredFuncArg(base2, "sinh")
			if ok2 && coeff2.Equal(One().Neg()) && arg.Equal(arg2) {
				used[i], used[j] = true, true
				extra = extra.Add(One())
				break
			}
		}
	}

	var residue []Expr
	for i, t := range terms {
		if !used[i] {
			residue = append(residue, t)
		}
	}
	return residue, extra
}

// squaredFuncArg reports whether e is name(arg)^2 and returns arg.
func squaredFuncArg(e Expr, name string) (Expr, bool) {
	p, ok := e.(PowExpr)
	if !ok {
		return nil, false
	}
	n, ok := p.Exponent.(NumExpr)
	if !ok || !n.V.Equal(Int(2)) {
		return nil, false
	}
	f, ok := p.Base.(FuncExpr)
	if !ok || f.Name != name || len(f.Args) != 1 {
		return nil, false
	}
	return f.Args[0], true
}
