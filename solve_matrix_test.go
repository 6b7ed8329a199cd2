package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolveMatrixRightDivision(t *testing.T) {
	A := NonCommVar("A", KindMatrix)
	B := NonCommVar("B", KindMatrix)
	X := NonCommVar("X", KindMatrix)
	// X*A - B = 0  =>  X = B * A^-1
	e := Add(Mul(X, A), Mul(NumberOf(-1), B))
	result, err := (&MatrixSolver{}).Solve(e, "X")
	require.NoError(t, err)
	require.Equal(t, ResultSingle, result.Kind)
	assert.Equal(t, Simplify(Mul(B, Pow(A, NumberOf(-1)))).String(), result.Roots[0].String())
}

func TestSolveMatrixNumericFastPath(t *testing.T) {
	A := NewDenseMatrix([][]Expr{{NumberOf(2), NumberOf(0)}, {NumberOf(0), NumberOf(2)}})
	B := NewDenseMatrix([][]Expr{{NumberOf(4), NumberOf(0)}, {NumberOf(0), NumberOf(4)}})
	X := NonCommVar("X", KindMatrix)
	e := Add(Mul(A, X), Mul(NumberOf(-1), B))

	_, steps, err := (&MatrixSolver{}).SolveWithExplanation(e, "X")
	require.NoError(t, err)

	sawNumeric := false
	for _, s := range steps {
		if s.RuleApplied == "NumericInverse" {
			sawNumeric = true
		}
	}
	assert.True(t, sawNumeric, "expected the gonum numeric fast path to fire for a fully numeric coefficient matrix")
}

func TestSolveMatrixXMustAppearExactlyOnce(t *testing.T) {
	A := NonCommVar("A", KindMatrix)
	X := NonCommVar("X", KindMatrix)
	e := Add(Mul(A, X), Mul(X, A))
	result, err := (&MatrixSolver{}).Solve(e, "X")
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
}

func TestSolveMatrixZeroCoefficientIsError(t *testing.T) {
	zero := ZeroMatrix(2, 2)
	B := NonCommVar("B", KindMatrix)
	X := NonCommVar("X", KindMatrix)
	e := Add(Mul(zero, X), Mul(NumberOf(-1), B))
	_, err := (&MatrixSolver{}).Solve(e, "X")
	require.Error(t, err)
	assert.True(t, IsKind(err, InvalidEquation))
}
