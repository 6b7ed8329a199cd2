package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveLinearScenario(t *testing.T) {
	x := "x"
	e := Add(Mul(NumberOf(2), Var(x)), NumberOf(-6))
	result, steps, err := (&LinearSolver{}).SolveWithExplanation(e, x)
	require.NoError(t, err)
	require.Equal(t, ResultSingle, result.Kind)
	assert.Equal(t, "3", result.Roots[0].String())
	assert.GreaterOrEqual(t, len(steps), 5)
	assert.True(t, steps.NonEmptyTitles())
}

func TestSolveLinearDegenerate(t *testing.T) {
	e := Add(Mul(NumberOf(0), Var("x")), NumberOf(5))
	result, err := (&LinearSolver{}).Solve(e, "x")
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
}

func TestSolveQuadraticTwoRoots(t *testing.T) {
	x := Var("x")
	e := Add(Pow(x, NumberOf(2)), Mul(NumberOf(3), x), NumberOf(2))
	result, err := (&QuadraticSolver{}).Solve(e, "x")
	require.NoError(t, err)
	require.Equal(t, ResultMultiple, result.Kind)
	got := map[string]bool{}
	for _, r := range result.Roots {
		got[r.String()] = true
	}
	assert.True(t, got["-1"] && got["-2"])
}

func TestSolveQuadraticRepeatedRoot(t *testing.T) {
	x := Var("x")
	e := Add(Pow(x, NumberOf(2)), Mul(NumberOf(-4), x), NumberOf(4))
	result, err := (&QuadraticSolver{}).Solve(e, "x")
	require.NoError(t, err)
	require.Equal(t, ResultSingle, result.Kind)
	assert.Equal(t, "2", result.Roots[0].String())
}

func TestSolveQuadraticComplexRoots(t *testing.T) {
	x := Var("x")
	e := Add(Pow(x, NumberOf(2)), NumberOf(1))
	result, err := (&QuadraticSolver{}).Solve(e, "x")
	require.NoError(t, err)
	require.Equal(t, ResultMultiple, result.Kind)
	require.Len(t, result.Roots, 2)
	for _, r := range result.Roots {
		_, ok := r.(ComplexExpr)
		assert.True(t, ok, "expected ComplexExpr, got %T", r)
	}
}

func TestSolveCubicPartial(t *testing.T) {
	x := Var("x")
	e := Add(Pow(x, NumberOf(3)), NumberOf(-8))
	result, err := (&PolynomialSolver{}).Solve(e, "x")
	require.NoError(t, err)
	require.Equal(t, ResultPartial, result.Kind)
	require.Len(t, result.Roots, 1)
	assert.Equal(t, "2", result.Roots[0].String())

	check := Simplify(SubstituteOne(e, "x", result.Roots[0]))
	assert.Equal(t, "0", check.String())
}

func TestSolveSystemTwoByTwo(t *testing.T) {
	x, y := Var("x"), Var("y")
	eq1 := Add(Mul(NumberOf(2), x), y, NumberOf(-5))
	eq2 := Add(x, Mul(NumberOf(-1), y), NumberOf(-1))
	result, err := (&SystemSolver{}).SolveSystem([]Expr{eq1, eq2}, []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, ResultMultiple, result.Kind)
	require.Len(t, result.Roots, 2)
	assert.Equal(t, "2", result.Roots[0].String())
	assert.Equal(t, "1", result.Roots[1].String())
}

func TestSolveMatrixLeftDivision(t *testing.T) {
	A := NonCommVar("A", KindMatrix)
	B := NonCommVar("B", KindMatrix)
	X := NonCommVar("X", KindMatrix)
	e := Add(Mul(A, X), Mul(NumberOf(-1), B))
	result, err := (&MatrixSolver{}).Solve(e, "X")
	require.NoError(t, err)
	require.Equal(t, ResultSingle, result.Kind)
	assert.Equal(t, Simplify(Mul(Pow(A, NumberOf(-1)), B)).String(), result.Roots[0].String())
}

func TestSmartSolverDispatchesByDegree(t *testing.T) {
	x := Var("x")
	solver := NewSmartEquationSolver()

	linear := Add(Mul(NumberOf(3), x), NumberOf(-9))
	r, err := solver.Solve(linear, "x")
	require.NoError(t, err)
	assert.Equal(t, ResultSingle, r.Kind)
	assert.Equal(t, "3", r.Roots[0].String())

	quad := Add(Pow(x, NumberOf(2)), Mul(NumberOf(-5), x), NumberOf(6))
	r, err = solver.Solve(quad, "x")
	require.NoError(t, err)
	assert.Equal(t, ResultMultiple, r.Kind)
}
