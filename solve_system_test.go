package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveSystemProportionalIsInfiniteSolutions(t *testing.T) {
	x, y := Var("x"), Var("y")
	eq1 := Add(Mul(NumberOf(2), x), Mul(NumberOf(4), y), NumberOf(-6))
	eq2 := Add(Mul(NumberOf(1), x), Mul(NumberOf(2), y), NumberOf(-3))
	result, err := (&SystemSolver{}).SolveSystem([]Expr{eq1, eq2}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, ResultInfiniteSolutions, result.Kind)
}

func TestSolveSystemInconsistentIsNoSolution(t *testing.T) {
	x, y := Var("x"), Var("y")
	eq1 := Add(Mul(NumberOf(2), x), Mul(NumberOf(4), y), NumberOf(-6))
	eq2 := Add(Mul(NumberOf(1), x), Mul(NumberOf(2), y), NumberOf(-1))
	result, err := (&SystemSolver{}).SolveSystem([]Expr{eq1, eq2}, []string{"x", "y"})
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
}

func TestExtractLinearCoeffsRejectsNonLinearTerm(t *testing.T) {
	x, y := Var("x"), Var("y")
	_, _, err := extractLinearCoeffs(Mul(x, y), []string{"x", "y"})
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidEquation))
}

func TestExtractLinearCoeffsRejectsForeignSymbol(t *testing.T) {
	x, z := Var("x"), Var("z")
	_, _, err := extractLinearCoeffs(Add(x, z), []string{"x", "y"})
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidEquation))
}

func TestSolveSystemWrongShapeIsUnsupported(t *testing.T) {
	x := Var("x")
	_, err := (&SystemSolver{}).SolveSystem([]Expr{x}, []string{"x"})
	require.Error(t, err)
	assert.True(t, IsKind(err, UnsupportedType))
}
