package sympy

// Simplify rewrites e to canonical form: the result is mathematically
// equal to e under standard real/complex algebra, and is idempotent
// (Simplify(Simplify(e)) == Simplify(e) structurally, P1). The walk is
// post-order; each node type's own Simplify method (simplify_add.go,
// simplify_mul.go, simplify_pow.go, simplify_functions.go, and the
// trivial leaf cases in expr.go) implements its shape's rules. The
// simplifier never fails: a rule that cannot decide returns the node
// with its children simplified in place.
//
// This function also consults the process-scoped memoisation cache
// (cache.go) so repeated simplification of structurally identical
// subterms is cheap; the cache is semantically transparent per §5.
func Simplify(e Expr) Expr {
	if cached, ok := simplifyCache.get(e); ok {
		return cached
	}
	out := e.Simplify()
	simplifyCache.put(e, out)
	return out
}

// Substitute performs capture-free substitution of named symbols in e,
// per §4.2's substitute(e, {name -> replacement}) contract. Constants,
// numbers and opaque leaves pass through unchanged.
func Substitute(e Expr, subs map[string]Expr) Expr {
	return e.Substitute(subs)
}

// SubstituteOne is a convenience for substituting a single symbol.
func SubstituteOne(e Expr, name string, value Expr) Expr {
	return e.Substitute(map[string]Expr{name: value})
}
