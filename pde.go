package sympy

// PDEFamily classifies a PDE's equation shape, determining which
// separation-of-variables recipe (if any) applies.
type PDEFamily int

const (
	PDEHeat PDEFamily = iota
	PDEWave
	PDELaplace
	PDEFirstOrderLinear
	PDEGeneral
)

func (f PDEFamily) String() string {
	switch f {
	case PDEHeat:
		return "heat"
	case PDEWave:
		return "wave"
	case PDELaplace:
		return "laplace"
	case PDEFirstOrderLinear:
		return "first-order linear"
	}
	return "general"
}

// BoundaryCondition pins u (or a derivative of u) to a value at a
// fixed spatial point, e.g. u(0, t) = 0.
type BoundaryCondition struct {
	At    Expr
	Value Expr
}

// PDESolver implements the §4.5.7 classify-then-separate pipeline. It
// never errors on an equation it cannot handle: a missing ingredient
// (wrong boundary count, unrecognised family) is a normal NoSolution
// outcome with a diagnostic step, since PDEs outside the separable
// families are simply out of reach of this solver.
type PDESolver struct {
	// Terms controls how many eigenfunction terms the truncated Fourier
	// series keeps (§4.5.7 step 2e). Zero selects the default of 5.
	Terms int
}

// Classify inspects e (an expression containing PartialDerivative
// nodes in u with respect to x and t) and reports which family it
// belongs to.
func (s *PDESolver) Classify(e Expr, u, x, t Symbol) PDEFamily {
	dxx := countDerivativeOrder(e, x, 2)
	dtt := countDerivativeOrder(e, t, 2)
	dt1 := countDerivativeOrder(e, t, 1)
	dx1 := countDerivativeOrder(e, x, 1)

	switch {
	case dxx > 0 && dtt > 0:
		return PDEWave
	case dxx > 0 && dt1 > 0 && dtt == 0:
		return PDEHeat
	case dxx > 0 && dt1 == 0 && dtt == 0:
		return PDELaplace
	case dx1 > 0 && dxx == 0 && dtt == 0 && dt1 > 0:
		return PDEFirstOrderLinear
	}
	return PDEGeneral
}

// countDerivativeOrder counts PartialDerivative nodes on wrt of the
// given order anywhere in e's tree.
func countDerivativeOrder(e Expr, wrt Symbol, order int) int {
	count := 0
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case CalculusExpr:
			if t.Op == CalcPartial && t.WithRespectTo.Equal(wrt) && t.Order == order {
				count++
			}
			walk(t.Target)
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
		}
	}
	walk(e)
	return count
}

// EigenPair is one spatial eigenfunction/eigenvalue pair produced by
// the Sturm-Liouville step.
type EigenPair struct {
	N          int
	Lambda     Expr // eigenvalue
	Eigenfunc  Expr // X_n(x)
}

// SolveHeatOrWave solves u_t = k*u_xx (heat, k constant) or
// u_tt = c^2*u_xx (wave) on [0, L] with homogeneous Dirichlet boundary
// conditions u(0,t) = u(L,t) = 0 and initial condition u(x,0) = f(x),
// via §4.5.7 step 2: separation of variables, a sine-series
// Sturm-Liouville eigenbasis, per-mode temporal ODEs, and Fourier
// projection of f onto the eigenbasis.
func (s *PDESolver) SolveHeatOrWave(family PDEFamily, coefficient Expr, length Expr, initial Expr, u, x, t Symbol) (SolverResult, StepList, error) {
	var steps StepList
	steps = steps.Append(step("Classify", family.String()+" equation detected", nil, nil, "Classify", CategoryDetection))
	if family != PDEHeat && family != PDEWave {
		steps = steps.Append(step("Diagnostic",
			"heat/wave separation does not apply to the "+family.String()+" family", nil, nil, "MissingIngredient", CategoryDiagnostic))
		return NoSolution(), steps, nil
	}

	L, ok := length.(NumExpr)
	if !ok || L.V.Sign() <= 0 {
		steps = steps.Append(step("Diagnostic",
			"boundary length must be a known positive number for the eigenbasis to be computed", nil, nil, "MissingIngredient", CategoryDiagnostic))
		return NoSolution(), steps, nil
	}

	n := s.Terms
	if n <= 0 {
		n = 5
	}
	steps = steps.Append(step("Separate Variables", "assume "+u.Name+"(x,t) = X(x)*T(t)", nil, nil, "Separation", CategoryTransformation))

	var eigenpairs []EigenPair
	for k := 1; k <= n; k++ {
		// Dirichlet boundary conditions on [0, L] give eigenfunctions
		// sin(k*pi*x/L) with eigenvalue (k*pi/L)^2.
		kpiOverL := Simplify(Mul(RatNumber(int64(k), 1), Pi(), Pow(L, NumberOf(-1))))
		lambda := Simplify(Pow(kpiOverL, NumberOf(2)))
		eigenfunc := Sin(Mul(kpiOverL, SymOf(x)))
		eigenpairs = append(eigenpairs, EigenPair{N: k, Lambda: lambda, Eigenfunc: eigenfunc})
	}
	steps = steps.Append(step("Solve Eigenproblem",
		"Sturm-Liouville eigenbasis sin(nπx/L) found for n = 1.."+itoa(n), nil, nil, "Eigenproblem", CategoryCalculation))

	var seriesTerms []Expr
	for _, ep := range eigenpairs {
		temporal := s.temporalFactor(family, coefficient, ep.Lambda, t)
		cn := projectFourierSineCoefficient(initial, ep.N, L, x)
		steps = steps.Append(step("Fourier Coefficient",
			"c_"+itoa(ep.N)+" = "+cn.String(), nil, nil, "FourierProjection", CategoryCalculation))
		seriesTerms = append(seriesTerms, Mul(cn, ep.Eigenfunc, temporal))
	}

	result := Add(seriesTerms...)
	steps = steps.Append(step("Solution",
		"u(x,t) ≈ Σ c_n X_n(x) T_n(t), truncated at N = "+itoa(n), nil, result, "Solution", CategorySolution))
	return Single(result), steps, nil
}

// temporalFactor returns T_n(t) for the given family: exp(-k*lambda*t)
// for the heat equation, cos(sqrt(lambda)*c*t) for the wave equation.
func (s *PDESolver) temporalFactor(family PDEFamily, coefficient, lambda Expr, t Symbol) Expr {
	switch family {
	case PDEHeat:
		return ExpFn(Mul(NumberOf(-1), coefficient, lambda, SymOf(t)))
	case PDEWave:
		omega := Simplify(Mul(coefficient, Sqrt(lambda)))
		return Cos(Mul(omega, SymOf(t)))
	}
	return NumOf(One())
}

// projectFourierSineCoefficient computes the n-th sine-series Fourier
// coefficient of initial(x) on [0, L]: c_n = (2/L) ∫_0^L f(x) sin(nπx/L) dx.
// Only monomial and elementary-function initial conditions the
// integrator recognises produce an exact result; anything else is
// left as an unevaluated integral wrapped by Integrate itself.
func projectFourierSineCoefficient(initial Expr, n int, L NumExpr, x Symbol) Expr {
	kpiOverL := Simplify(Mul(RatNumber(int64(n), 1), Pi(), Pow(L, NumberOf(-1))))
	integrand := Mul(initial, Sin(Mul(kpiOverL, SymOf(x))))
	antideriv := Integrate(integrand, x)
	return Simplify(Mul(RatNumber(2, 1), Pow(L, NumberOf(-1)), antideriv))
}

// SolveLaplace handles the Laplace-family case without performing a
// separation: with fewer than two boundary conditions it returns
// NoSolution with a MissingIngredient diagnostic step, and otherwise
// NoSolution with an Unsupported diagnostic step. Two-dimensional
// separation of variables is not implemented.
func (s *PDESolver) SolveLaplace(boundary []BoundaryCondition) (SolverResult, StepList, error) {
	var steps StepList
	if len(boundary) < 2 {
		steps = steps.Append(step("Diagnostic",
			"Laplace separation needs at least two boundary conditions", nil, nil, "MissingIngredient", CategoryDiagnostic))
		return NoSolution(), steps, nil
	}
	steps = steps.Append(step("Diagnostic",
		"two-dimensional Laplace separation is not implemented for this expression model", nil, nil, "Unsupported", CategoryDiagnostic))
	return NoSolution(), steps, nil
}
