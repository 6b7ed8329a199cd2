package sympy

// Integrate performs rule-based indefinite integration with respect to
// wrt, following the teacher's constant/power/sum/constant-multiple
// rule set extended with a small elementary-function table. If any part
// of the integrand cannot be resolved by the rules, the whole integrand
// is returned wrapped in an unresolved Calculus node rather than guessed
// at, matching Diff's stance on incompleteness.
func Integrate(e Expr, wrt Symbol) Expr {
	if r, ok := tryIntegrate(Simplify(e), wrt); ok {
		return Simplify(r)
	}
	return IntegralOf(e, wrt)
}

func tryIntegrate(e Expr, wrt Symbol) (Expr, bool) {
	switch t := e.(type) {
	case NumExpr:
		return Mul(NumOf(t.V), SymOf(wrt)), true
	case ConstExpr:
		return Mul(t, SymOf(wrt)), true
	case SymExpr:
		if t.S.Name == wrt.Name {
			return Mul(RatNumber(1, 2), Pow(SymOf(t.S), NumberOf(2))), true
		}
		return Mul(SymOf(t.S), SymOf(wrt)), true
	case AddExpr:
		parts := make([]Expr, 0, len(t.Terms))
		for _, term := range t.Terms {
			p, ok := tryIntegrate(term, wrt)
			if !ok {
				return nil, false
			}
			parts = append(parts, p)
		}
		return Add(parts...), true
	case MulExpr:
		return tryIntegrateProduct(t.Factors, wrt)
	case PowExpr:
		return tryIntegratePow(t, wrt)
	case FuncExpr:
		return tryIntegrateFunc(t, wrt)
	}
	return nil, false
}

// tryIntegrateProduct handles the constant-multiple rule: factors not
// containing wrt pull outside the integral; at most one remaining
// factor may depend on wrt.
func tryIntegrateProduct(factors []Expr, wrt Symbol) (Expr, bool) {
	var constFactors, varFactors []Expr
	for _, f := range factors {
		if containsSymbol(f, wrt.Name) {
			varFactors = append(varFactors, f)
		} else {
			constFactors = append(constFactors, f)
		}
	}
	switch len(varFactors) {
	case 0:
		return Mul(append(append([]Expr{}, constFactors...), SymOf(wrt))...), true
	case 1:
		inner, ok := tryIntegrate(varFactors[0], wrt)
		if !ok {
			return nil, false
		}
		return Mul(append(constFactors, inner)...), true
	default:
		return nil, false
	}
}

func tryIntegratePow(p PowExpr, wrt Symbol) (Expr, bool) {
	base, ok := p.Base.(SymExpr)
	if !ok || base.S.Name != wrt.Name || containsSymbol(p.Exponent, wrt.Name) {
		return nil, false
	}
	exp, ok := p.Exponent.(NumExpr)
	if !ok {
		return nil, false
	}
	if exp.V.Equal(Int(-1)) {
		return Function("ln", Function("abs", base)), true
	}
	newExp := exp.V.Add(One())
	return Mul(NumOf(One().Div(newExp)), Pow(base, NumOf(newExp))), true
}

func tryIntegrateFunc(f FuncExpr, wrt Symbol) (Expr, bool) {
	if len(f.Args) != 1 {
		return nil, false
	}
	arg, ok := f.Args[0].(SymExpr)
	if !ok || arg.S.Name != wrt.Name {
		return nil, false
	}
	switch f.Name {
	case "sin":
		return Mul(NumberOf(-1), Cos(arg)), true
	case "cos":
		return Sin(arg), true
	case "exp":
		return ExpFn(arg), true
	case "sinh":
		return Cosh(arg), true
	case "cosh":
		return Sinh(arg), true
	}
	return nil, false
}
