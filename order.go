package sympy

// rank assigns the tag order of §4.3.5: Number < Symbol < Function <
// Mul < Add < (others). Everything not explicitly named falls into the
// "others" bucket and is ordered by stable structural printing.
func rank(e Expr) int {
	switch e.(type) {
	case NumExpr:
		return 0
	case SymExpr:
		return 1
	case FuncExpr:
		return 2
	case MulExpr:
		return 3
	case AddExpr:
		return 4
	default:
		return 5
	}
}

// lessCanonical implements the total, deterministic order used to sort
// the commutative children of Add and Mul after simplification (I5),
// and used wherever the simplifier needs a stable tie-break. It is not
// claimed to be mathematically meaningful beyond determinism.
func lessCanonical(a, b Expr) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	switch va := a.(type) {
	case NumExpr:
		vb := b.(NumExpr)
		return va.V.Cmp(vb.V) < 0
	case SymExpr:
		vb := b.(SymExpr)
		return va.S.Name < vb.S.Name
	case FuncExpr:
		vb := b.(FuncExpr)
		if va.Name != vb.Name {
			return va.Name < vb.Name
		}
		return lessExprSlice(va.Args, vb.Args)
	case MulExpr:
		vb := b.(MulExpr)
		return lessExprSlice(va.Factors, vb.Factors)
	case AddExpr:
		vb := b.(AddExpr)
		return lessExprSlice(va.Terms, vb.Terms)
	default:
		return a.String() < b.String()
	}
}

// lessExprSlice compares two expression sequences lexicographically
// using lessCanonical, falling back to length when one is a prefix of
// the other. This realises "first-child order" for Add/Mul: differing
// first elements decide immediately, equal first elements defer to the
// remainder of the sequence.
func lessExprSlice(a, b []Expr) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i].Equal(b[i]) {
			continue
		}
		return lessCanonical(a[i], b[i])
	}
	return len(a) < len(b)
}

// sortCommutative sorts a slice of expressions in place by the
// canonical order, used by the Add and Mul simplifier rules whenever
// every child is commutative (I5).
func sortCommutative(es []Expr) {
	// insertion sort: expression slices here are small (term counts),
	// and it keeps the comparator calls easy to reason about.
	for i := 1; i < len(es); i++ {
		for j := i; j > 0 && lessCanonical(es[j], es[j-1]); j-- {
			es[j], es[j-1] = es[j-1], es[j]
		}
	}
}
