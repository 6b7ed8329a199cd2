package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSPolynomialOfIdenticalPolynomialsIsZero(t *testing.T) {
	vars := []string{"x", "y"}
	x, y := Var("x"), Var("y")
	e := Add(Pow(x, NumberOf(2)), Mul(NumberOf(3), x, y), NumberOf(-1))
	p := PolynomialFromExpr(e, vars)

	s := SPolynomial(p, p, Grlex)
	assert.Empty(t, s.Terms, "S(f, f) must be 0, got %v", s.ToExpr())
}

func TestMonomialOrderings(t *testing.T) {
	// x^2 vs x*y: Lex and Grlex both rank x^2 higher (x exponent
	// dominates in Lex; equal total degree in Grlex falls back to Lex).
	xSquared := Monomial{2, 0}
	xy := Monomial{1, 1}
	assert.True(t, Lex.Less(xy, xSquared))
	assert.True(t, Grlex.Less(xy, xSquared))
}

func TestLCMOfMonomials(t *testing.T) {
	a := Monomial{2, 0, 1}
	b := Monomial{1, 3, 0}
	got := LCM(a, b)
	assert.Equal(t, Monomial{2, 3, 1}, got)
}

func TestGroebnerBasisContainsGenerators(t *testing.T) {
	vars := []string{"x", "y"}
	x, y := Var("x"), Var("y")
	f := PolynomialFromExpr(Add(Pow(x, NumberOf(2)), y), vars)
	g := PolynomialFromExpr(Add(x, Pow(y, NumberOf(2))), vars)

	basis := GroebnerBasis([]Polynomial{f, g}, Grlex)
	require.NotEmpty(t, basis)
	assert.Contains(t, basis, f)
	assert.Contains(t, basis, g)
}
