package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdentityMatrixEntries(t *testing.T) {
	m := IdentityMatrix(3).(MatExpr)
	assert.Equal(t, "1", m.At(0, 0).String())
	assert.Equal(t, "0", m.At(0, 1).String())
}

func TestZeroMatrixIsAlwaysZero(t *testing.T) {
	m := ZeroMatrix(2, 2).(MatExpr)
	assert.True(t, isZeroMatrix(m))
	assert.False(t, isZeroMatrix(IdentityMatrix(2)))
}

func TestMatExprIsAlwaysNonCommutative(t *testing.T) {
	dense := NewDenseMatrix([][]Expr{{NumberOf(1), NumberOf(2)}, {NumberOf(3), NumberOf(4)}})
	assert.Equal(t, NonCommutative, dense.Commutativity())
}

func TestDenseMatrixSubstitute(t *testing.T) {
	x := Var("x")
	m := NewDenseMatrix([][]Expr{{x, NumberOf(0)}, {NumberOf(0), x}})
	got := Simplify(SubstituteOne(m, "x", NumberOf(7)))
	gm := got.(MatExpr)
	assert.Equal(t, "7", gm.At(0, 0).String())
	assert.Equal(t, "7", gm.At(1, 1).String())
}
