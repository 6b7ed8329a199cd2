package sympy

// SystemSolver solves a 2x2 linear system by Cramer's rule (§4.5.5).
type SystemSolver struct{}

// SolveSystem solves equations[i] = 0 for variables, returning the
// values in the same order as variables. Only the 2-variable case is
// supported.
func (s *SystemSolver) SolveSystem(equations []Expr, variables []string) (SolverResult, error) {
	res, _, err := s.SolveSystemWithExplanation(equations, variables)
	return res, err
}

func (s *SystemSolver) SolveSystemWithExplanation(equations []Expr, variables []string) (SolverResult, StepList, error) {
	var steps StepList
	if len(equations) != 2 || len(variables) != 2 {
		return SolverResult{}, steps, NewSolverError(UnsupportedType,
			"SystemSolver only handles exactly two equations in two variables")
	}

	v1, v2 := variables[0], variables[1]
	var a, b, c [2]Number
	for i, eq := range equations {
		coeffs, constant, err := extractLinearCoeffs(Simplify(eq), []string{v1, v2})
		if err != nil {
			return SolverResult{}, steps, err
		}
		a[i], b[i], c[i] = coeffs[v1], coeffs[v2], constant
		steps = steps.Append(step("Extract Coefficients",
			"Equation "+itoa(i+1)+": "+a[i].String()+"*"+v1+" + "+b[i].String()+"*"+v2+" + "+c[i].String()+" = 0",
			eq, nil, "ExtractCoefficients", CategoryTransformation))
	}

	det := a[0].Mul(b[1]).Sub(a[1].Mul(b[0]))
	steps = steps.Append(step("Determinant", "D = a1*b2 - a2*b1 = "+det.String(), nil, NumOf(det), "Determinant", CategoryCalculation))

	if det.IsZero() {
		crossA := a[0].Mul(c[1]).Sub(a[1].Mul(c[0]))
		crossB := b[0].Mul(c[1]).Sub(b[1].Mul(c[0]))
		if crossA.IsZero() && crossB.IsZero() {
			steps = steps.Append(step("Solution",
				"The equations are proportional: infinitely many solutions.", nil, nil, "InfiniteSolutions", CategorySolution))
			return InfiniteSolutions(), steps, nil
		}
		steps = steps.Append(step("Solution",
			"The equations are inconsistent: no solution.", nil, nil, "NoSolution", CategorySolution))
		return NoSolution(), steps, nil
	}

	x1 := Simplify(NumOf(c[0].Neg().Mul(b[1]).Sub(c[1].Neg().Mul(b[0])).Div(det)))
	x2 := Simplify(NumOf(a[0].Mul(c[1].Neg()).Sub(a[1].Mul(c[0].Neg())).Div(det)))

	steps = steps.Append(step("Solution", v1+" = "+x1.String()+", "+v2+" = "+x2.String(),
		nil, nil, "Solution", CategorySolution))
	return Multiple(x1, x2), steps, nil
}

// extractLinearCoeffs decomposes e (presumed linear in vars, equal to
// zero) into its per-variable coefficients plus a constant term. It
// returns InvalidEquation if any additive term mixes two variables or
// carries a non-numeric coefficient.
func extractLinearCoeffs(e Expr, vars []string) (map[string]Number, Number, error) {
	coeffs := map[string]Number{}
	for _, v := range vars {
		coeffs[v] = Zero()
	}
	constant := Zero()

	var terms []Expr
	if a, ok := e.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{e}
	}

	isVar := func(name string) bool {
		for _, v := range vars {
			if v == name {
				return true
			}
		}
		return false
	}

	for _, t := range terms {
		factors := []Expr{t}
		if m, ok := t.(MulExpr); ok {
			factors = m.Factors
		}
		numericPart := One()
		var varsInTerm []string
		ok := true
		for _, f := range factors {
			switch x := f.(type) {
			case NumExpr:
				numericPart = numericPart.Mul(x.V)
			case SymExpr:
				if !isVar(x.S.Name) {
					ok = false
				} else {
					varsInTerm = append(varsInTerm, x.S.Name)
				}
			default:
				ok = false
			}
			if !ok {
				break
			}
		}
		if !ok || len(varsInTerm) > 1 {
			return nil, Zero(), NewSolverError(InvalidEquation,
				"term "+t.String()+" is not linear in the given variables")
		}
		if len(varsInTerm) == 0 {
			constant = constant.Add(numericPart)
		} else {
			coeffs[varsInTerm[0]] = coeffs[varsInTerm[0]].Add(numericPart)
		}
	}
	return coeffs, constant, nil
}
