package sympy

import "math/big"

// QuadraticSolver handles a*v^2 + b*v + c = 0 (§4.5.2).
type QuadraticSolver struct{}

func (s *QuadraticSolver) CanSolve(e Expr) bool { return true }

func (s *QuadraticSolver) Solve(e Expr, v string) (SolverResult, error) {
	res, _, err := s.SolveWithExplanation(e, v)
	return res, err
}

func (s *QuadraticSolver) SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error) {
	var steps StepList
	given := Simplify(e)
	steps = steps.Append(step("Given", given.String()+" = 0", nil, given, "GivenEquation", CategoryDetection))

	coeffs := CoefficientsList(given, v)
	for _, c := range coeffs {
		if c.Degree > 2 {
			return SolverResult{}, steps, NewSolverError(InvalidEquation,
				"equation has a term of degree above 2 in "+v)
		}
	}
	a := CoefficientAt(given, v, 2)
	b := CoefficientAt(given, v, 1)
	c := CoefficientAt(given, v, 0)

	steps = steps.Append(step("Extract Coefficients",
		"a = "+a.String()+", b = "+b.String()+", c = "+c.String(), given, nil,
		"ExtractCoefficients", CategoryTransformation))

	if an, ok := a.Simplify().(NumExpr); ok && an.V.IsZero() {
		return (&LinearSolver{}).SolveWithExplanation(given, v)
	}

	steps = steps.Append(step("Quadratic Formula",
		v+" = (-b ± sqrt(b^2 - 4ac)) / (2a)", nil, nil, "QuadraticFormula", CategoryTransformation))

	an, aNum := a.Simplify().(NumExpr)
	bn, bNum := b.Simplify().(NumExpr)
	cn, cNum := c.Simplify().(NumExpr)

	if aNum && bNum && cNum && an.V.IsInteger() && bn.V.IsInteger() && cn.V.IsInteger() {
		ai, _ := an.V.AsBigInt()
		bi, _ := bn.V.AsBigInt()
		ci, _ := cn.V.AsBigInt()

		disc := new(big.Int).Mul(bi, bi)
		fourAC := new(big.Int).Mul(big.NewInt(4), new(big.Int).Mul(ai, ci))
		disc.Sub(disc, fourAC)

		steps = steps.Append(step("Compute Discriminant",
			"Δ = b^2 - 4ac = "+disc.String(), nil, BigNumber(disc), "ComputeDiscriminant", CategoryCalculation))

		twoA := new(big.Int).Mul(big.NewInt(2), ai)

		switch disc.Sign() {
		case 0:
			steps = steps.Append(step("Discriminant Analysis",
				"Δ = 0: one repeated real root.", nil, nil, "DiscriminantAnalysis", CategoryTransformation))
			root := Simplify(NumOf(Rat(new(big.Rat).SetFrac(new(big.Int).Neg(bi), twoA))))
			steps = steps.Append(step("Solutions", v+" = "+root.String(), nil, root, "Solutions", CategorySolution))
			return Single(root), steps, nil
		case 1:
			steps = steps.Append(step("Discriminant Analysis",
				"Δ > 0: two distinct real roots.", nil, nil, "DiscriminantAnalysis", CategoryTransformation))
			sqrtDisc := new(big.Int).Sqrt(disc)
			exact := new(big.Int).Mul(sqrtDisc, sqrtDisc).Cmp(disc) == 0
			var r1, r2 Expr
			if exact {
				r1 = Simplify(NumOf(Rat(new(big.Rat).SetFrac(new(big.Int).Add(new(big.Int).Neg(bi), sqrtDisc), twoA))))
				r2 = Simplify(NumOf(Rat(new(big.Rat).SetFrac(new(big.Int).Sub(new(big.Int).Neg(bi), sqrtDisc), twoA))))
			} else {
				discF := new(big.Float).SetInt(disc)
				sq, _ := discF.Sqrt(discF).Float64()
				bf := new(big.Float).SetInt(bi)
				bfv, _ := bf.Float64()
				twoAf := new(big.Float).SetInt(twoA)
				twoAfv, _ := twoAf.Float64()
				r1 = FloatNumber((-bfv + sq) / twoAfv)
				r2 = FloatNumber((-bfv - sq) / twoAfv)
			}
			steps = steps.Append(step("Solutions", v+" = "+r1.String()+" or "+v+" = "+r2.String(),
				nil, nil, "Solutions", CategorySolution))
			return Multiple(r1, r2), steps, nil
		default:
			steps = steps.Append(step("Discriminant Analysis",
				"Δ < 0: two complex conjugate roots.", nil, nil, "DiscriminantAnalysis", CategoryTransformation))
			absDisc := new(big.Int).Abs(disc)
			sqrtAbs := new(big.Float).Sqrt(new(big.Float).SetInt(absDisc))
			sqrtAbsF, _ := sqrtAbs.Float64()
			bf := new(big.Float).SetInt(bi)
			bfv, _ := bf.Float64()
			twoAf := new(big.Float).SetInt(twoA)
			twoAfv, _ := twoAf.Float64()
			realPart := FloatNumber(-bfv / twoAfv)
			imagPart := FloatNumber(sqrtAbsF / twoAfv)
			r1 := Complex(realPart, imagPart)
			r2 := Complex(realPart, Mul(NumberOf(-1), imagPart))
			steps = steps.Append(step("Solutions", v+" = "+r1.String()+" or "+v+" = "+r2.String(),
				nil, nil, "Solutions", CategorySolution))
			return Multiple(r1, r2), steps, nil
		}
	}

	discExpr := Simplify(Add(Pow(b, NumberOf(2)), Mul(NumberOf(-4), Mul(a, c))))
	twoA := Mul(NumberOf(2), a)
	r1 := Simplify(Mul(Add(Mul(NumberOf(-1), b), Sqrt(discExpr)), Pow(twoA, NumberOf(-1))))
	r2 := Simplify(Mul(Add(Mul(NumberOf(-1), b), Mul(NumberOf(-1), Sqrt(discExpr))), Pow(twoA, NumberOf(-1))))
	steps = steps.Append(step("Solutions", "Symbolic roots: "+r1.String()+", "+r2.String(),
		nil, nil, "Solutions", CategorySolution))
	return Multiple(r1, r2), steps, nil
}
