// Package numeric adapts purely-numeric symbolic matrices to gonum's
// dense matrix type, giving the solver a fast path for matrix
// equations whose coefficients are all concrete numbers rather than
// symbolic expressions. It is deliberately thin: ToDense and Invert
// report "not applicable" with a false ok rather than an error, so
// callers always have the symbolic path to fall back to.
package numeric

import (
	"gonum.org/v1/gonum/mat"
)

// Entry is the minimal view this package needs of a matrix entry: a
// float64 value and whether it converted cleanly. The core package
// supplies this via a small closure so internal/numeric never needs
// to import the core Expr type (avoiding an import cycle).
type Entry func(i, j int) (float64, bool)

// ToDense builds a *mat.Dense from rows x cols entries produced by at,
// returning ok=false the first time an entry cannot be read as a
// float64 (e.g. it is still symbolic).
func ToDense(rows, cols int, at Entry) (*mat.Dense, bool) {
	data := make([]float64, rows*cols)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			v, ok := at(i, j)
			if !ok {
				return nil, false
			}
			data[i*cols+j] = v
		}
	}
	return mat.NewDense(rows, cols, data), true
}

// FromDense reads back a dense matrix's entries via emit, called once
// per cell in row-major order.
func FromDense(m *mat.Dense, emit func(i, j int, v float64)) {
	rows, cols := m.Dims()
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			emit(i, j, m.At(i, j))
		}
	}
}

// Invert computes m^-1, returning ok=false if m is singular.
func Invert(m *mat.Dense) (*mat.Dense, bool) {
	var inv mat.Dense
	if err := inv.Inverse(m); err != nil {
		return nil, false
	}
	return &inv, true
}

// Mul computes a*b via gonum's BLAS-backed product.
func Mul(a, b *mat.Dense) *mat.Dense {
	var out mat.Dense
	out.Mul(a, b)
	return &out
}
