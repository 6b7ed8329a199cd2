package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSolverErrorUnwrapAndKind(t *testing.T) {
	base := NewSolverError(InvalidEquation, "bad shape")
	wrapped := WrapSolverError(base, "while solving")

	assert.Equal(t, InvalidEquation, wrapped.Kind)
	assert.True(t, IsKind(wrapped, InvalidEquation))
	assert.False(t, IsKind(wrapped, DomainError))
	assert.Equal(t, base, wrapped.Unwrap())
}

func TestWrapSolverErrorDefaultsKindForForeignError(t *testing.T) {
	foreign := assertAsError("boom")
	wrapped := WrapSolverError(foreign, "context")
	assert.Equal(t, UnsupportedType, wrapped.Kind)
}

type plainError string

func (e plainError) Error() string { return string(e) }

func assertAsError(msg string) error { return plainError(msg) }
