package sympy

import "math/big"

// polynomialProbeSet is the hard-coded integer probe set used by the
// rational-root fallback. Open Question (a): this is a stopgap kept
// verbatim rather than a considered design choice.
var polynomialProbeSet = []int64{-3, -2, -1, 0, 1, 2, 3}

// PolynomialSolver handles degree 3-4 equations (§4.5.3): it
// recognises v^n + c = 0 shapes analytically and otherwise falls back
// to testing polynomialProbeSet by substitution.
type PolynomialSolver struct{}

func (s *PolynomialSolver) CanSolve(e Expr) bool { return true }

func (s *PolynomialSolver) Solve(e Expr, v string) (SolverResult, error) {
	res, _, err := s.SolveWithExplanation(e, v)
	return res, err
}

func (s *PolynomialSolver) SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error) {
	var steps StepList
	given := Simplify(e)
	steps = steps.Append(step("Given", given.String()+" = 0", nil, given, "GivenEquation", CategoryDetection))

	degree := Degree(given, v)
	if degree != 3 && degree != 4 {
		return SolverResult{}, steps, NewSolverError(InvalidEquation,
			"PolynomialSolver only handles degree 3 or 4, got degree "+itoa(degree))
	}

	if res, recognised := s.trySimplePowerShape(given, v, degree, &steps); recognised {
		return res, steps, nil
	}

	steps = steps.Append(step("Strategy",
		"No closed-form shape recognised; probing small integer roots.",
		nil, nil, "Strategy", CategoryDetection))

	var found []Expr
	for _, candidate := range polynomialProbeSet {
		probe := Simplify(SubstituteOne(given, v, NumberOf(candidate)))
		if n, ok := probe.(NumExpr); ok && n.V.IsZero() {
			found = append(found, NumberOf(candidate))
			steps = steps.Append(step("Calculate",
				v+" = "+NumberOf(candidate).String()+" satisfies the equation.",
				given, NumberOf(candidate), "ProbeRoot", CategoryCalculation))
		}
	}

	switch {
	case len(found) == 0:
		steps = steps.Append(step("Solution",
			"No roots found in the probe set.", nil, nil, "NoSolution", CategorySolution))
		return NoSolution(), steps, nil
	case len(found) == degree:
		steps = steps.Append(step("Solution",
			"All "+itoa(degree)+" roots found.", nil, nil, "Solution", CategorySolution))
		return Multiple(found...), steps, nil
	default:
		steps = steps.Append(step("Solution",
			"Found "+itoa(len(found))+" of "+itoa(degree)+" roots; reporting a partial solution.",
			nil, nil, "PartialSolution", CategorySolution))
		return Partial(found...), steps, nil
	}
}

// trySimplePowerShape recognises v^n + c = 0 with n in {3, 4}. For the
// cubic case it returns the real n-th root as Partial (complex
// companions are noted, not computed, per §4.5.3). For the quartic
// case it returns both real roots ±r as Partial only when -c is the
// fourth power of an integer r; any other quartic constant is not
// recognised here and the caller falls back to the probe set.
func (s *PolynomialSolver) trySimplePowerShape(given Expr, v string, degree int, steps *StepList) (SolverResult, bool) {
	coeffs := CoefficientsList(given, v)
	var leading, constant Expr
	otherNonzero := false
	for _, c := range coeffs {
		switch c.Degree {
		case degree:
			leading = c.Coeff
		case 0:
			constant = c.Coeff
		default:
			if n, ok := c.Coeff.Simplify().(NumExpr); !ok || !n.V.IsZero() {
				otherNonzero = true
			}
		}
	}
	if otherNonzero || leading == nil || constant == nil {
		return SolverResult{}, false
	}
	ln, ok := leading.Simplify().(NumExpr)
	if !ok || !ln.V.Equal(One()) {
		return SolverResult{}, false
	}
	cn, ok := constant.Simplify().(NumExpr)
	if !ok {
		return SolverResult{}, false
	}

	*steps = steps.Append(step("Identify Form",
		"Equation has the form v^"+itoa(degree)+" + c = 0.", given, nil, "IdentifyForm", CategoryTransformation))

	target := cn.V.Neg() // v^n = -c
	if degree == 3 {
		root := Simplify(Function("cbrt", NumOf(target)))
		if val, ok := realCubeRoot(target); ok {
			root = Simplify(NumOf(val))
		}
		*steps = steps.Append(step("Calculate",
			v+"^3 = "+target.String(), given, root, "TakeRoot", CategoryCalculation))
		*steps = steps.Append(step("Solution",
			"Real root "+root.String()+"; complex companions exist but are not computed.",
			nil, root, "PartialSolution", CategorySolution))
		return Partial(root), true
	}
	// degree == 4
	if target.Sign() < 0 {
		return SolverResult{}, false
	}
	if val, ok := exactIntegerRoot(target, 4); ok {
		r := Simplify(NumOf(val))
		negR := Simplify(NumOf(val.Neg()))
		*steps = steps.Append(step("Calculate",
			v+"^4 = "+target.String(), given, r, "TakeRoot", CategoryCalculation))
		*steps = steps.Append(step("Solution",
			"Real roots ±"+r.String()+".", nil, nil, "PartialSolution", CategorySolution))
		return Partial(r, negR), true
	}
	return SolverResult{}, false
}

// solveImplicitCurve differentiates F(x, y) = 0 implicitly with
// respect to x, producing dy/dx = -F_x / F_y. It does not solve for y
// itself: F(x,y)=0 in general has no closed form in y, so the curve's
// local slope is the only quantity recovered here. yVar names the
// dependent symbol so F_y can be distinguished from F_x when F mixes
// the two.
func solveImplicitCurve(F Expr, x, yVar Symbol) (Expr, StepList) {
	var steps StepList
	given := Simplify(F)
	steps = steps.Append(step("Given Curve", given.String()+" = 0", nil, given, "GivenCurve", CategoryDetection))

	fx := Diff(given, x)
	steps = steps.Append(step("Partial wrt x", "F_x = "+fx.String(), given, fx, "PartialX", CategoryCalculation))

	fy := Diff(given, yVar)
	steps = steps.Append(step("Partial wrt y", "F_y = "+fy.String(), given, fy, "PartialY", CategoryCalculation))

	slope := Simplify(Mul(NumberOf(-1), fx, Pow(fy, NumberOf(-1))))
	steps = steps.Append(step("Solution", "dy/dx = "+slope.String(), nil, slope, "ImplicitSlope", CategorySolution))
	return slope, steps
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	if neg {
		return "-" + string(digits)
	}
	return string(digits)
}

// realCubeRoot returns the real cube root of n when n is an integer
// whose cube root is itself an exact integer.
func realCubeRoot(n Number) (Number, bool) {
	if !n.IsInteger() {
		return Number{}, false
	}
	bi, _ := n.AsBigInt()
	neg := bi.Sign() < 0
	absVal := new(big.Int).Abs(bi)
	if !absVal.IsInt64() {
		return Number{}, false
	}
	target := absVal.Int64()
	for r := int64(0); r*r*r <= target; r++ {
		if r*r*r == target {
			if neg {
				return Int(-r), true
			}
			return Int(r), true
		}
	}
	return Number{}, false
}

// exactIntegerRoot returns the non-negative real k-th root of n when
// it is an exact integer.
func exactIntegerRoot(n Number, k int64) (Number, bool) {
	if !n.IsInteger() || n.Sign() < 0 {
		return Number{}, false
	}
	bi, _ := n.AsBigInt()
	if !bi.IsInt64() {
		return Number{}, false
	}
	target := bi.Int64()
	for r := int64(0); ; r++ {
		p := int64(1)
		overflow := false
		for i := int64(0); i < k; i++ {
			p *= r
			if p > target {
				overflow = true
				break
			}
		}
		if overflow {
			return Number{}, false
		}
		if p == target {
			return Int(r), true
		}
		if p > target {
			return Number{}, false
		}
	}
}
