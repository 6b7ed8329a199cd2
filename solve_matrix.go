package sympy

import numpkg "github.com/njchilds90/go-sympy/internal/numeric"

// MatrixSolver solves the two noncommutative shapes of §4.5.4:
// A*X - B = 0 (left division, X = A^-1 * B) and X*A - B = 0 (right
// division, X = B * A^-1). The unknown must appear exactly once,
// since the simplifier performs no noncommutative term collection.
type MatrixSolver struct{}

func (s *MatrixSolver) CanSolve(e Expr) bool {
	_, _, err := s.SolveWithExplanation(e, "")
	return err == nil
}

func (s *MatrixSolver) Solve(e Expr, v string) (SolverResult, error) {
	res, _, err := s.SolveWithExplanation(e, v)
	return res, err
}

func (s *MatrixSolver) SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error) {
	var steps StepList
	given := Simplify(e)
	steps = steps.Append(step("Given Equation", given.String()+" = 0", nil, given, "GivenEquation", CategoryDetection))

	var terms []Expr
	if a, ok := given.(AddExpr); ok {
		terms = a.Terms
	} else {
		terms = []Expr{given}
	}

	occurrences := 0
	xTermIdx := -1
	for i, t := range terms {
		c := countSymbolOccurrences(t, v)
		occurrences += c
		if c > 0 {
			xTermIdx = i
		}
	}
	if occurrences != 1 {
		steps = steps.Append(step("Solution",
			v+" must appear exactly once; noncommutative collection is not performed.",
			nil, nil, "NoSolution", CategorySolution))
		return NoSolution(), steps, nil
	}

	xTerm, ok := terms[xTermIdx].(MulExpr)
	if !ok || len(xTerm.Factors) < 1 {
		return SolverResult{}, steps, NewSolverError(InvalidEquation,
			"term containing "+v+" is not a product")
	}

	var rest []Expr
	for i, t := range terms {
		if i != xTermIdx {
			rest = append(rest, t)
		}
	}
	b := Simplify(Mul(NumberOf(-1), Add(rest...)))

	leading := xTerm.Factors[0]
	trailing := xTerm.Factors[len(xTerm.Factors)-1]

	leadIsX, lOK := leading.(SymExpr)
	trailIsX, tOK := trailing.(SymExpr)

	switch {
	case tOK && trailIsX.S.Name == v:
		// A*X - B = 0 form: leading run is A, detected from the
		// leftmost Mul child's trailing factor being X.
		a := matrixCoefficientOf(xTerm.Factors[:len(xTerm.Factors)-1])
		steps = steps.Append(step("Identify Form", "Left division: "+v+" = A^-1 * B", given, nil,
			"IdentifyForm", CategoryTransformation))
		if isZeroMatrix(a) {
			return SolverResult{}, steps, NewSolverError(InvalidEquation, "coefficient matrix is zero")
		}
		inv, usedNumeric := tryNumericInverse(a)
		if !usedNumeric {
			inv = Pow(a, NumberOf(-1))
		} else {
			steps = steps.Append(step("Numeric Fast Path",
				"coefficient matrix is purely numeric; inverted via the gonum dense solver", nil, nil,
				"NumericInverse", CategoryCalculation))
		}
		result := Simplify(Mul(inv, b))
		steps = steps.Append(step("Solution", v+" = "+result.String(), nil, result, "Solution", CategorySolution))
		return Single(result), steps, nil
	case lOK && leadIsX.S.Name == v:
		// X*A - B = 0 form: leading factor is X itself.
		a := matrixCoefficientOf(xTerm.Factors[1:])
		steps = steps.Append(step("Identify Form", "Right division: "+v+" = B * A^-1", given, nil,
			"IdentifyForm", CategoryTransformation))
		if isZeroMatrix(a) {
			return SolverResult{}, steps, NewSolverError(InvalidEquation, "coefficient matrix is zero")
		}
		inv, usedNumeric := tryNumericInverse(a)
		if !usedNumeric {
			inv = Pow(a, NumberOf(-1))
		} else {
			steps = steps.Append(step("Numeric Fast Path",
				"coefficient matrix is purely numeric; inverted via the gonum dense solver", nil, nil,
				"NumericInverse", CategoryCalculation))
		}
		result := Simplify(Mul(b, inv))
		steps = steps.Append(step("Solution", v+" = "+result.String(), nil, result, "Solution", CategorySolution))
		return Single(result), steps, nil
	default:
		return SolverResult{}, steps, NewSolverError(UnsupportedType,
			v+" does not appear as the leading or trailing factor of its term")
	}
}

func matrixCoefficientOf(factors []Expr) Expr {
	if len(factors) == 1 {
		return factors[0]
	}
	return MulExpr{factors}
}

func isZeroMatrix(e Expr) bool {
	m, ok := e.(MatExpr)
	if !ok {
		return false
	}
	return m.Kind == MatZero
}

// tryNumericInverse inverts a square MatExpr whose entries are all
// concrete numbers via the gonum dense solver, falling back (ok=false)
// to the symbolic Pow(a, -1) path for symbolic or non-matrix
// coefficients.
func tryNumericInverse(a Expr) (Expr, bool) {
	m, ok := a.(MatExpr)
	if !ok || !m.IsSquare() || m.Rows == 0 {
		return nil, false
	}
	dense, ok := numpkg.ToDense(m.Rows, m.Cols, func(i, j int) (float64, bool) {
		n, ok := Simplify(m.At(i, j)).(NumExpr)
		if !ok {
			return 0, false
		}
		return n.V.Float64(), true
	})
	if !ok {
		return nil, false
	}
	inv, ok := numpkg.Invert(dense)
	if !ok {
		return nil, false
	}
	data := make([][]Expr, m.Rows)
	for i := range data {
		data[i] = make([]Expr, m.Cols)
	}
	numpkg.FromDense(inv, func(i, j int, v float64) {
		data[i][j] = FloatNumber(v)
	})
	return NewDenseMatrix(data), true
}

// countSymbolOccurrences counts how many leaf occurrences of the named
// symbol appear in e's tree.
func countSymbolOccurrences(e Expr, name string) int {
	count := 0
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case SymExpr:
			if t.S.Name == name {
				count++
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
	return count
}
