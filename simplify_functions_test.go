package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFactorialSmallPath(t *testing.T) {
	got := Simplify(Factorial(NumberOf(5)))
	assert.Equal(t, "120", got.String())
	n, ok := got.(NumExpr)
	assert.True(t, ok)
	assert.True(t, n.V.IsInteger())
}

func TestSqrtPerfectSquare(t *testing.T) {
	assert.Equal(t, "4", Simplify(Sqrt(NumberOf(16))).String())
}

func TestLogOfProductSplits(t *testing.T) {
	x, y := Var("x"), Var("y")
	got := Simplify(Function("log", Mul(x, y)))
	want := Simplify(Add(Function("log", x), Function("log", y)))
	assert.Equal(t, want.String(), got.String())
}

func TestGammaOfSmallInteger(t *testing.T) {
	// gamma(5) = 4! = 24
	got := Simplify(GammaFn(NumberOf(5)))
	assert.Equal(t, "24", got.String())
}
