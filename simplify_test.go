package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimplifyLikeTermCollection(t *testing.T) {
	x := Var("x")
	e := Add(Mul(NumberOf(2), x), Mul(NumberOf(3), x))
	got := Simplify(e)
	want := Mul(NumberOf(5), x)
	assert.Equal(t, want.String(), got.String())
}

func TestSimplifyIdempotent(t *testing.T) {
	x, y := Var("x"), Var("y")
	exprs := []Expr{
		Add(x, y, NumberOf(3), Mul(NumberOf(2), x)),
		Mul(x, x, Pow(y, NumberOf(2))),
		Pow(Add(x, NumberOf(1)), NumberOf(3)),
	}
	for _, e := range exprs {
		once := Simplify(e)
		twice := Simplify(once)
		assert.Equal(t, once.String(), twice.String(), "simplify not idempotent for %v", e)
	}
}

func TestSimplifyFlattenNestedAdd(t *testing.T) {
	x := Var("x")
	nested := Add(Add(x, NumberOf(1)), Add(NumberOf(2), x))
	got := Simplify(nested)
	want := Simplify(Add(Mul(NumberOf(2), x), NumberOf(3)))
	assert.Equal(t, want.String(), got.String())
}

func TestSimplifyPowerRules(t *testing.T) {
	x := Var("x")
	assert.Equal(t, "1", Simplify(Pow(x, NumberOf(0))).String())
	assert.Equal(t, x.String(), Simplify(Pow(x, NumberOf(1))).String())
	assert.Equal(t, "0", Simplify(Pow(NumberOf(0), NumberOf(3))).String())
	assert.Equal(t, "1", Simplify(Pow(NumberOf(1), x)).String())
	assert.Equal(t, "8", Simplify(Pow(NumberOf(2), NumberOf(3))).String())
}

func TestSimplifyZeroMultiplicationShortCircuit(t *testing.T) {
	x, y := Var("x"), Var("y")
	got := Simplify(Mul(x, NumberOf(0), y))
	assert.Equal(t, "0", got.String())
}

func TestPythagoreanIdentityFolding(t *testing.T) {
	x := Var("x")
	got := Simplify(Add(Pow(Sin(x), NumberOf(2)), Pow(Cos(x), NumberOf(2))))
	assert.Equal(t, "1", got.String())
}

func TestSimplifyFunctionInverseCancellation(t *testing.T) {
	x := Var("x")
	assert.Equal(t, x.String(), Simplify(Ln(ExpFn(x))).String())
}

func TestSubstitute(t *testing.T) {
	x, y := Var("x"), Var("y")
	e := Add(Mul(NumberOf(2), x), y)
	got := Simplify(SubstituteOne(e, "x", NumberOf(5)))
	want := Simplify(Add(NumberOf(10), y))
	assert.Equal(t, want.String(), got.String())
}
