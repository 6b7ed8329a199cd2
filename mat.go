package sympy

import (
	"fmt"
	"strings"
)

// MatStructureKind tags a recognised special structure a MatExpr may
// carry, used by pretty-printing and by At, which computes the entries
// of Identity and Zero matrices instead of storing them.
type MatStructureKind int

const (
	MatDense MatStructureKind = iota
	MatIdentity
	MatZero
	MatDiagonal
	MatUpperTriangular
	MatLowerTriangular
	MatSymmetric
	MatPermutation
)

// MatExpr is the Expr form of §3.3's Matrix(Matrix) variant: a dense
// or structured matrix of expressions. It is always NonCommutative,
// regardless of its entries, since matrix multiplication does not
// commute in general.
type MatExpr struct {
	Rows, Cols int
	Kind       MatStructureKind
	Data       [][]Expr // row-major; nil for Identity/Zero, whose entries At computes on each call
}

// NewDenseMatrix builds a dense MatExpr from row-major data.
func NewDenseMatrix(data [][]Expr) Expr {
	rows := len(data)
	cols := 0
	if rows > 0 {
		cols = len(data[0])
	}
	return MatExpr{Rows: rows, Cols: cols, Kind: MatDense, Data: data}
}

// IdentityMatrix builds the n x n structured identity matrix.
func IdentityMatrix(n int) Expr { return MatExpr{Rows: n, Cols: n, Kind: MatIdentity} }

// ZeroMatrix builds the rows x cols structured zero matrix.
func ZeroMatrix(rows, cols int) Expr { return MatExpr{Rows: rows, Cols: cols, Kind: MatZero} }

// At returns the (i,j) entry, synthesising it for structured kinds
// that do not carry an explicit Data grid.
func (m MatExpr) At(i, j int) Expr {
	if m.Data != nil {
		return m.Data[i][j]
	}
	switch m.Kind {
	case MatIdentity:
		if i == j {
			return NumOf(One())
		}
		return NumOf(Zero())
	case MatZero:
		return NumOf(Zero())
	}
	return NumOf(Zero())
}

func (m MatExpr) Simplify() Expr {
	if m.Data == nil {
		return m
	}
	out := make([][]Expr, len(m.Data))
	for i, row := range m.Data {
		out[i] = make([]Expr, len(row))
		for j, v := range row {
			out[i][j] = v.Simplify()
		}
	}
	return MatExpr{m.Rows, m.Cols, m.Kind, out}
}

func (m MatExpr) String() string {
	switch m.Kind {
	case MatIdentity:
		return fmt.Sprintf("I(%d)", m.Rows)
	case MatZero:
		return fmt.Sprintf("0(%dx%d)", m.Rows, m.Cols)
	}
	rows := make([]string, len(m.Data))
	for i, row := range m.Data {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = v.String()
		}
		rows[i] = "[" + strings.Join(cells, ", ") + "]"
	}
	return "[" + strings.Join(rows, ", ") + "]"
}

func (m MatExpr) Substitute(subs map[string]Expr) Expr {
	if m.Data == nil {
		return m
	}
	out := make([][]Expr, len(m.Data))
	for i, row := range m.Data {
		out[i] = make([]Expr, len(row))
		for j, v := range row {
			out[i][j] = v.Substitute(subs)
		}
	}
	return MatExpr{m.Rows, m.Cols, m.Kind, out}
}

// Commutativity is always NonCommutative: matrix multiplication does
// not commute in general, and the spec's conservative rule flags any
// expression mixing matrix values as non-commutative.
func (m MatExpr) Commutativity() Commutativity { return NonCommutative }

func (m MatExpr) Hash() uint64 { return hashString("MAT:" + m.String()) }

func (m MatExpr) Equal(o Expr) bool {
	om, ok := o.(MatExpr)
	return ok && m.Rows == om.Rows && m.Cols == om.Cols && m.String() == om.String()
}

// IsSquare reports whether m is a square matrix.
func (m MatExpr) IsSquare() bool { return m.Rows == m.Cols }
