package sympy

// LinearSolver handles a*v + b = 0 (§4.5.1).
type LinearSolver struct{}

// CanSolve always reports true; LinearSolver is deliberately permissive
// since the orchestrator also routes degenerate constant equations here.
func (s *LinearSolver) CanSolve(e Expr) bool { return true }

// Solve is SolveWithExplanation without the step list.
func (s *LinearSolver) Solve(e Expr, v string) (SolverResult, error) {
	res, _, err := s.SolveWithExplanation(e, v)
	return res, err
}

// SolveWithExplanation implements §4.5.1 step by step.
func (s *LinearSolver) SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error) {
	var steps StepList
	given := Simplify(e)
	steps = steps.Append(step("Given Equation",
		given.String()+" = 0", nil, given, "GivenEquation", CategoryDetection))
	steps = steps.Append(step("Strategy",
		"Isolate "+v+" by collecting coefficient and constant terms.",
		nil, nil, "Strategy", CategoryDetection))

	if n, ok := given.(NumExpr); ok {
		if n.V.IsZero() {
			steps = steps.Append(step("Identify Form",
				"The equation is the identity 0 = 0.", given, nil, "IdentityCheck", CategoryTransformation))
			steps = steps.Append(step("Solution", "Every value of "+v+" satisfies the equation.",
				nil, nil, "InfiniteSolutions", CategorySolution))
			return InfiniteSolutions(), steps, nil
		}
		steps = steps.Append(step("Identify Form",
			"The equation reduces to the false statement "+n.String()+" = 0.",
			given, nil, "IdentityCheck", CategoryTransformation))
		steps = steps.Append(step("Solution", "No value of "+v+" satisfies the equation.",
			nil, nil, "NoSolution", CategorySolution))
		return NoSolution(), steps, nil
	}

	var terms []Expr
	if a, ok := given.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{given}
	}

	coeff := Zero()
	constant := Zero()
	for _, t := range terms {
		if Degree(t, v) >= 2 {
			return SolverResult{}, steps, NewSolverError(InvalidEquation,
				"term "+t.String()+" is not linear in "+v)
		}
		c, base := termDegreeCoeffForLinear(t, v)
		if c == 1 {
			coeffN, ok := numericFromExpr(base)
			if !ok {
				return SolverResult{}, steps, NewSolverError(UnsupportedType,
					"non-numeric coefficient in "+t.String())
			}
			coeff = coeff.Add(coeffN)
		} else {
			constN, ok := numericFromExpr(base)
			if !ok {
				return SolverResult{}, steps, NewSolverError(UnsupportedType,
					"non-numeric constant term in "+t.String())
			}
			constant = constant.Add(constN)
		}
	}

	steps = steps.Append(step("Identify Form",
		"Coefficient of "+v+" is "+coeff.String()+", constant term is "+constant.String()+".",
		given, nil, "ExtractCoefficients", CategoryTransformation))

	if coeff.IsZero() {
		if constant.IsZero() {
			steps = steps.Append(step("Solution", "Every value of "+v+" satisfies the equation.",
				nil, nil, "InfiniteSolutions", CategorySolution))
			return InfiniteSolutions(), steps, nil
		}
		steps = steps.Append(step("Solution", "No value of "+v+" satisfies the equation.",
			nil, nil, "NoSolution", CategorySolution))
		return NoSolution(), steps, nil
	}

	root := Simplify(NumOf(constant.Neg().Div(coeff)))
	steps = steps.Append(step("Calculate",
		v+" = -("+constant.String()+")/("+coeff.String()+")", nil, root, "Isolation", CategoryCalculation))
	steps = steps.Append(step("Solution", v+" = "+root.String(), nil, root, "Solution", CategorySolution))
	return Single(root), steps, nil
}

// termDegreeCoeffForLinear reports, for a single additive term, whether
// it carries v with exponent 1 (returning degree 1 and its numeric
// coefficient as base) or is a constant (degree 0, the term itself).
func termDegreeCoeffForLinear(t Expr, v string) (int, Expr) {
	switch x := t.(type) {
	case SymExpr:
		if x.S.Name == v {
			return 1, NumOf(One())
		}
		return 0, x
	case MulExpr:
		var coeff Number = One()
		isLinear := false
		for _, f := range x.Factors {
			if sym, ok := f.(SymExpr); ok && sym.S.Name == v {
				isLinear = true
				continue
			}
			if n, ok := f.(NumExpr); ok {
				coeff = coeff.Mul(n.V)
				continue
			}
			return 0, t
		}
		if isLinear {
			return 1, NumOf(coeff)
		}
		return 0, t
	default:
		return 0, t
	}
}

func numericFromExpr(e Expr) (Number, bool) {
	n, ok := e.Simplify().(NumExpr)
	if !ok {
		return Number{}, false
	}
	return n.V, true
}
