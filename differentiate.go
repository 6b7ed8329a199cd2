package sympy

// Diff computes the symbolic derivative of e with respect to wrt,
// exposed for callers that want a derivative directly (§6, "Derivative
// of product via sin(x)*cos(x) through the expression-level derivative
// helper"), and used internally by the ODE/PDE pipelines. Nodes the
// rule table does not recognise (opaque auxiliary leaves, functions
// without a known derivative rule) are wrapped in a Calculus node
// rather than guessed at, since the simplifier must never fail but is
// also not required to be complete.
func Diff(e Expr, wrt Symbol) Expr {
	switch t := e.(type) {
	case NumExpr:
		return NumOf(Zero())
	case ConstExpr:
		return NumOf(Zero())
	case SymExpr:
		if t.S.Equal(wrt) {
			return NumOf(One())
		}
		return NumOf(Zero())
	case AddExpr:
		terms := make([]Expr, len(t.Terms))
		for i, term := range t.Terms {
			terms[i] = Diff(term, wrt)
		}
		return Add(terms...)
	case MulExpr:
		return diffProduct(t.Factors, wrt)
	case PowExpr:
		return diffPow(t, wrt)
	case FuncExpr:
		return diffFunc(t, wrt)
	default:
		return Derivative(e, wrt, 1)
	}
}

// diffProduct applies the generalised product rule to an n-ary product:
// d/dx[f1*f2*...*fn] = sum_i f_i' * prod_{j != i} f_j.
func diffProduct(factors []Expr, wrt Symbol) Expr {
	if len(factors) == 0 {
		return NumOf(Zero())
	}
	if len(factors) == 1 {
		return Diff(factors[0], wrt)
	}
	var terms []Expr
	for i := range factors {
		d := Diff(factors[i], wrt)
		if zn, ok := d.Simplify().(NumExpr); ok && zn.V.IsZero() {
			continue
		}
		rest := make([]Expr, 0, len(factors))
		rest = append(rest, d)
		for j, f := range factors {
			if j != i {
				rest = append(rest, f)
			}
		}
		terms = append(terms, Mul(rest...))
	}
	return Add(terms...)
}

// diffPow differentiates base^exponent, choosing the power rule, the
// exponential rule, or full logarithmic differentiation depending on
// which side depends on wrt.
func diffPow(p PowExpr, wrt Symbol) Expr {
	baseHas := containsSymbol(p.Base, wrt.Name)
	expHas := containsSymbol(p.Exponent, wrt.Name)
	switch {
	case !baseHas && !expHas:
		return NumOf(Zero())
	case baseHas && !expHas:
		return Mul(p.Exponent, Pow(p.Base, Add(p.Exponent, NumberOf(-1))), Diff(p.Base, wrt))
	case !baseHas && expHas:
		return Mul(PowExpr{p.Base, p.Exponent}, Ln(p.Base), Diff(p.Exponent, wrt))
	default:
		return Mul(
			PowExpr{p.Base, p.Exponent},
			Add(
				Mul(Diff(p.Exponent, wrt), Ln(p.Base)),
				Mul(p.Exponent, Diff(p.Base, wrt), Pow(p.Base, NumberOf(-1))),
			),
		)
	}
}

// diffFunc applies the chain rule using a small table of elementary
// derivatives; unrecognised names fall back to a symbolic Calculus node.
func diffFunc(f FuncExpr, wrt Symbol) Expr {
	if len(f.Args) != 1 {
		return Derivative(f, wrt, 1)
	}
	x := f.Args[0]
	dx := Diff(x, wrt)
	var outer Expr
	switch f.Name {
	case "sin":
		outer = Cos(x)
	case "cos":
		outer = Mul(NumberOf(-1), Sin(x))
	case "tan":
		outer = Pow(Cos(x), NumberOf(-2))
	case "exp":
		outer = ExpFn(x)
	case "ln":
		outer = Pow(x, NumberOf(-1))
	case "log":
		outer = Pow(Mul(x, Ln(NumberOf(10))), NumberOf(-1))
	case "sqrt":
		outer = Pow(Mul(NumberOf(2), Sqrt(x)), NumberOf(-1))
	case "sinh":
		outer = Cosh(x)
	case "cosh":
		outer = Sinh(x)
	case "tanh":
		outer = Add(NumberOf(1), Mul(NumberOf(-1), Pow(Tanh(x), NumberOf(2))))
	default:
		return Derivative(f, wrt, 1)
	}
	return Mul(outer, dx)
}

// containsSymbol reports whether e references the named symbol anywhere
// in its tree.
func containsSymbol(e Expr, name string) bool {
	found := false
	var walk func(Expr)
	walk = func(x Expr) {
		if found {
			return
		}
		switch t := x.(type) {
		case SymExpr:
			if t.S.Name == name {
				found = true
			}
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
			for _, a := range t.Args {
				walk(a)
			}
		}
	}
	walk(e)
	return found
}
