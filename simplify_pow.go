package sympy

// powEvalBudget bounds the exponent size eagerly evaluated by repeated
// squaring in rule 6 of §4.3.3, keeping Simplify itself free of
// runaway integer blow-up; larger exponents stay as Pow nodes.
const powEvalBudget = 10

// Simplify implements §4.3.3's power rules in order.
func (p PowExpr) Simplify() Expr {
	base := p.Base.Simplify()
	exp := p.Exponent.Simplify()

	if en, ok := exp.(NumExpr); ok && en.V.IsInteger() {
		if _, isUndef := base.(ConstExpr); !(isUndef && base.(ConstExpr).K == ConstUndefined) {
			if en.V.Sign() == 0 {
				return NumOf(One())
			}
		}
		if en.V.Equal(One()) {
			return base
		}
	}

	if bn, ok := base.(NumExpr); ok && bn.V.IsInteger() && bn.V.IsZero() {
		if en, ok := exp.(NumExpr); ok && en.V.Sign() > 0 {
			return NumOf(Zero())
		}
	}

	if bn, ok := base.(NumExpr); ok && bn.V.IsInteger() && bn.V.Equal(One()) {
		return NumOf(One())
	}

	if bn, ok := base.(NumExpr); ok && bn.V.IsInteger() {
		if en, ok := exp.(NumExpr); ok && en.V.IsInteger() {
			ei, exact := en.V.AsBigInt()
			if exact && ei.IsInt64() {
				e := ei.Int64()
				if e >= 0 && e <= powEvalBudget {
					return NumOf(bn.V.PowInt(e))
				}
				if e < 0 && -e <= powEvalBudget && !bn.V.IsZero() {
					return NumOf(bn.V.PowInt(e))
				}
			}
		}
	}

	return PowExpr{base, exp}
}
