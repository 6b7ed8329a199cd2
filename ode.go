package sympy

// ODESolver solves a first-order ODE dy/dx = rhs(x, y) by a method
// cascade: separable, then linear first-order, then homogeneous. The
// first method whose detection succeeds produces the answer; exact,
// Bernoulli and second-order equations are not detected. The cascade is deliberately
// linear rather than table-driven: each method's detection logic is
// specific enough that a generic dispatch table would only hide it.
type ODESolver struct{}

// SolveODE solves dy/dx = rhs for y(x), recording the chosen method's
// steps. C is the constant-of-integration symbol used in the answer.
func (s *ODESolver) SolveODE(rhs Expr, y, x Symbol) (SolverResult, StepList, error) {
	var steps StepList
	rhs = Simplify(rhs)
	C := SymOf(NewSymbol("C"))
	steps = steps.Append(step("Given ODE", "dy/dx = "+rhs.String(), rhs, nil, "GivenODE", CategoryDetection))

	if g, h, ok := trySeparable(rhs, y, x); ok {
		steps = steps.Append(step("Separable Form",
			"dy/dx = g(x)*h(y) with g(x) = "+g.String()+", h(y) = "+h.String(),
			rhs, nil, "DetectSeparable", CategoryDetection))
		lhsIntegral := Integrate(Pow(h, NumberOf(-1)), y)
		rhsIntegral := Add(Integrate(g, x), C)
		steps = steps.Append(step("Integrate Both Sides",
			"∫ dy/h(y) = ∫ g(x) dx + C", nil, nil, "Integration", CategoryCalculation))
		result := Relation(RelEq, lhsIntegral, rhsIntegral)
		steps = steps.Append(step("Solution", result.String(), nil, result, "Solution", CategorySolution))
		return Single(result), steps, nil
	}

	if p, q, ok := tryLinearFirstOrder(rhs, y, x); ok {
		steps = steps.Append(step("Linear First-Order Form",
			"dy/dx + ("+p.String()+")*y = "+q.String(), rhs, nil, "DetectLinear", CategoryDetection))
		mu := Simplify(ExpFn(Integrate(p, x)))
		steps = steps.Append(step("Integrating Factor", "μ = exp(∫P dx) = "+mu.String(), nil, mu, "IntegratingFactor", CategoryCalculation))
		integrand := Simplify(Mul(mu, q))
		antideriv := Add(Integrate(integrand, x), C)
		result := Relation(RelEq, SymOf(y), Simplify(Mul(Pow(mu, NumberOf(-1)), antideriv)))
		steps = steps.Append(step("Solution", result.String(), nil, result, "Solution", CategorySolution))
		return Single(result), steps, nil
	}

	if ok := isHomogeneous(rhs, y, x); ok {
		steps = steps.Append(step("Homogeneous Form",
			"dy/dx = f(y/x)", rhs, nil, "DetectHomogeneous", CategoryDetection))
		v := NewSymbol("v")
		substituted := Simplify(Substitute(rhs, map[string]Expr{y.Name: Mul(SymOf(v), SymOf(x))}))
		reducedRHS := Simplify(Add(substituted, Mul(NumberOf(-1), SymOf(v))))
		steps = steps.Append(step("Substitute v = y/x",
			"dv/dx * x = "+reducedRHS.String()+" is separable in v and x",
			nil, reducedRHS, "Substitution", CategoryTransformation))
		inner, innerSteps, err := (&ODESolver{}).SolveODE(Simplify(Mul(reducedRHS, Pow(SymOf(x), NumberOf(-1)))), v, x)
		if err == nil && inner.Kind == ResultSingle {
			result := Simplify(Substitute(inner.Roots[0], map[string]Expr{v.Name: Simplify(Mul(SymOf(y), Pow(SymOf(x), NumberOf(-1))))}))
			steps = append(steps, innerSteps...)
			steps = steps.Append(step("Back-substitute v = y/x", result.String(), nil, result, "BackSubstitution", CategoryTransformation))
			return Single(result), steps, nil
		}
	}

	steps = steps.Append(step("Solution",
		"no method in the cascade (separable, linear first-order, homogeneous) accepted this equation.",
		nil, nil, "NoSolution", CategorySolution))
	return NoSolution(), steps, nil
}

// trySeparable detects rhs = g(x) * h(y): every factor depends on at
// most one of x, y, and factors depending on neither are folded into
// g. Returns g, h such that rhs == g(x)*h(y).
func trySeparable(rhs Expr, y, x Symbol) (Expr, Expr, bool) {
	var factors []Expr
	if m, ok := rhs.(MulExpr); ok {
		factors = m.Factors
	} else {
		factors = []Expr{rhs}
	}
	var gFactors, hFactors []Expr
	for _, f := range factors {
		hasX := containsSymbol(f, x.Name)
		hasY := containsSymbol(f, y.Name)
		switch {
		case hasX && hasY:
			return nil, nil, false
		case hasY:
			hFactors = append(hFactors, f)
		default:
			gFactors = append(gFactors, f)
		}
	}
	if len(hFactors) == 0 {
		return nil, nil, false // no y dependence at all: handled as linear/trivial instead
	}
	g := Mul(gFactors...)
	h := Mul(hFactors...)
	return g, h, true
}

// tryLinearFirstOrder detects rhs such that dy/dx = -P(x)*y + Q(x),
// i.e. rhs is affine in y with x-only coefficients.
func tryLinearFirstOrder(rhs Expr, y, x Symbol) (Expr, Expr, bool) {
	var terms []Expr
	if a, ok := rhs.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{rhs}
	}
	var pCoeffNeg Expr = NumberOf(0)
	var q []Expr
	for _, t := range terms {
		if !containsSymbol(t, y.Name) {
			q = append(q, t)
			continue
		}
		coeff, isLinear := linearCoefficientOfY(t, y)
		if !isLinear || containsSymbol(coeff, y.Name) {
			return nil, nil, false
		}
		pCoeffNeg = Add(pCoeffNeg, coeff)
	}
	p := Simplify(Mul(NumberOf(-1), pCoeffNeg))
	return p, Add(q...), true
}

// linearCoefficientOfY extracts coeff from a term of the form coeff*y
// or y itself (coeff = 1). Any other shape involving y is rejected.
func linearCoefficientOfY(e Expr, y Symbol) (Expr, bool) {
	if s, ok := e.(SymExpr); ok && s.S.Name == y.Name {
		return NumberOf(1), true
	}
	m, ok := e.(MulExpr)
	if !ok {
		return nil, false
	}
	var rest []Expr
	found := false
	for _, f := range m.Factors {
		if s, ok := f.(SymExpr); ok && s.S.Name == y.Name && !found {
			found = true
			continue
		}
		rest = append(rest, f)
	}
	if !found {
		return nil, false
	}
	return Mul(rest...), true
}

// isHomogeneous reports whether rhs(x,y) is expressible as f(y/x): a
// coarse structural check that rescaling both x and y by the same
// symbol leaves rhs's total degree balanced, approximated here by
// checking that every additive term has the same combined x/y degree.
func isHomogeneous(rhs Expr, y, x Symbol) bool {
	if !isRationalIn(rhs, y, x) {
		return false // Degree() only means "total degree" for polynomial shapes
	}
	var terms []Expr
	if a, ok := rhs.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{rhs}
	}
	if len(terms) < 1 {
		return false
	}
	deg0 := combinedDegree(terms[0], y, x)
	for _, t := range terms[1:] {
		if combinedDegree(t, y, x) != deg0 {
			return false
		}
	}
	return containsSymbol(rhs, x.Name) && containsSymbol(rhs, y.Name)
}

func combinedDegree(e Expr, y, x Symbol) int {
	return Degree(e, y.Name) + Degree(e, x.Name)
}

// isRationalIn reports whether e is built only from Add/Mul/Pow/Number/
// Symbol nodes in x and y, i.e. contains no transcendental function or
// calculus node. combinedDegree is only a meaningful balance check on
// such expressions; elsewhere Degree's conservative defaults (0 for an
// opaque function call) would make unrelated terms look balanced.
func isRationalIn(e Expr, y, x Symbol) bool {
	switch t := e.(type) {
	case NumExpr, SymExpr:
		return true
	case AddExpr:
		for _, c := range t.Terms {
			if !isRationalIn(c, y, x) {
				return false
			}
		}
		return true
	case MulExpr:
		for _, c := range t.Factors {
			if !isRationalIn(c, y, x) {
				return false
			}
		}
		return true
	case PowExpr:
		return isRationalIn(t.Base, y, x) && isRationalIn(t.Exponent, y, x)
	}
	return false
}
