package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCacheIsSemanticallyTransparent(t *testing.T) {
	ResetCache()
	x := Var("x")
	e := Add(Mul(NumberOf(2), x), Mul(NumberOf(3), x))

	first := Simplify(e)
	sizeAfterFirst := CacheSize()
	require.GreaterOrEqual(t, sizeAfterFirst, 1)

	second := Simplify(e)
	assert.Equal(t, first.String(), second.String())
}

func TestCacheResetClearsEntries(t *testing.T) {
	Simplify(Add(Var("z"), NumberOf(1)))
	require.Greater(t, CacheSize(), 0)
	ResetCache()
	assert.Equal(t, 0, CacheSize())
}
