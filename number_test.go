package sympy

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNumberArithmetic(t *testing.T) {
	tests := []struct {
		name string
		a, b Number
		want Number
		op   func(a, b Number) Number
	}{
		{"int add", Int(2), Int(3), Int(5), Number.Add},
		{"int mul", Int(4), Int(5), Int(20), Number.Mul},
		{"frac add", Frac(1, 2), Frac(1, 3), Frac(5, 6), Number.Add},
		{"float promotes", Int(2), Flt(0.5), Flt(2.5), Number.Add},
		{"div by zero is zero", Int(7), Int(0), Zero(), Number.Div},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.op(tt.a, tt.b)
			assert.True(t, got.Equal(tt.want), "got %v want %v", got, tt.want)
		})
	}
}

func TestNumberBigIntCollapse(t *testing.T) {
	n := BigInt(big.NewInt(42))
	assert.Equal(t, KindInteger, n.Kind())

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	n = BigInt(huge)
	assert.Equal(t, KindBigInteger, n.Kind())
}

func TestRatCollapsesToInteger(t *testing.T) {
	n := Rat(big.NewRat(4, 2))
	assert.True(t, n.IsInteger())
	assert.True(t, n.Equal(Int(2)))
}

func TestNumberPowInt(t *testing.T) {
	assert.True(t, Int(2).PowInt(10).Equal(Int(1024)))
	assert.True(t, Int(2).PowInt(-1).Equal(Frac(1, 2)))
	assert.True(t, Int(5).PowInt(0).Equal(One()))
}
