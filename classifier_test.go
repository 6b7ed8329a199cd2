package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyByDegree(t *testing.T) {
	x := Var("x")
	tests := []struct {
		name string
		e    Expr
		want EquationKind
	}{
		{"constant", NumberOf(5), KindConstant},
		{"linear", Add(Mul(NumberOf(2), x), NumberOf(1)), KindLinear},
		{"quadratic", Add(Pow(x, NumberOf(2)), x), KindQuadratic},
		{"cubic", Pow(x, NumberOf(3)), KindCubic},
		{"quartic", Pow(x, NumberOf(4)), KindQuartic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.e, "x"))
		})
	}
}

func TestClassifyTranscendental(t *testing.T) {
	x := Var("x")
	assert.Equal(t, KindTranscendental, Classify(Sin(x), "x"))
}

func TestClassifySystem(t *testing.T) {
	x, y := Var("x"), Var("y")
	assert.Equal(t, KindSystem, Classify(Add(x, y), "x"))
}
