package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDegreeOfVariousShapes(t *testing.T) {
	x := Var("x")
	assert.Equal(t, 0, Degree(NumberOf(5), "x"))
	assert.Equal(t, 1, Degree(x, "x"))
	assert.Equal(t, 3, Degree(Pow(x, NumberOf(3)), "x"))
	assert.Equal(t, 3, Degree(Pow(Add(x, NumberOf(1)), NumberOf(3)), "x"))
	assert.Equal(t, 2, Degree(Add(Pow(x, NumberOf(2)), x, NumberOf(1)), "x"))
}

func TestCoefficientsListOfQuadratic(t *testing.T) {
	x := Var("x")
	e := Add(Mul(NumberOf(3), Pow(x, NumberOf(2))), Mul(NumberOf(-2), x), NumberOf(7))
	coeffs := CoefficientsList(e, "x")
	byDegree := map[int]string{}
	for _, c := range coeffs {
		byDegree[c.Degree] = c.Coeff.String()
	}
	assert.Equal(t, "3", byDegree[2])
	assert.Equal(t, "-2", byDegree[1])
	assert.Equal(t, "7", byDegree[0])
}

func TestGCDIntegers(t *testing.T) {
	got := GCD(NumberOf(12), NumberOf(18))
	assert.Equal(t, "6", got.String())
}

func TestIsMonic(t *testing.T) {
	x := Var("x")
	assert.True(t, IsMonic(Add(Pow(x, NumberOf(2)), x), "x"))
	assert.False(t, IsMonic(Add(Mul(NumberOf(2), Pow(x, NumberOf(2))), x), "x"))
}

func TestPolyGCDInVar(t *testing.T) {
	x := Var("x")
	// x^2 - 1 = (x-1)(x+1) and x^2 + x - 2 = (x-1)(x+2) share the
	// common root x = 1, so whatever linear factor the Euclidean
	// reduction settles on (up to sign) must vanish there. The inputs
	// are written expanded because the reduction reads coefficient
	// lists and the simplifier does not expand products.
	a := Simplify(Add(Pow(x, NumberOf(2)), NumberOf(-1)))
	b := Simplify(Add(Pow(x, NumberOf(2)), x, NumberOf(-2)))
	got := GCD(a, b)
	atRoot := Simplify(SubstituteOne(got, "x", NumberOf(1)))
	assert.Equal(t, "0", atRoot.String())
}
