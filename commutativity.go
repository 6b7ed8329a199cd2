package sympy

// CommutativityOf returns the commutativity of e. It is the single
// entry point the simplifier and factoriser use to decide whether
// sorting and cross-factoring are legal for a given subterm; see
// Expr.Commutativity for the per-node rule and combine for how
// children's kinds merge.
func CommutativityOf(e Expr) Commutativity { return e.Commutativity() }

// Combine returns Commutative iff every kind in ks is Commutative.
// Exported mirror of the package-private combine used throughout the
// simplifier and solvers.
func Combine(ks ...Commutativity) Commutativity { return combine(ks...) }

// IsCommutative is a convenience predicate over CommutativityOf.
func IsCommutative(e Expr) bool { return e.Commutativity() == Commutative }
