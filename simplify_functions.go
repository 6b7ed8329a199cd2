package sympy

import "math/big"

// Simplify implements §4.3.4: a per-name rule table, all idempotent;
// unknown names pass through with simplified arguments.
func (f FuncExpr) Simplify() Expr {
	args := make([]Expr, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.Simplify()
	}

	if len(args) == 1 {
		if r, ok := simplifyUnaryFunc(f.Name, args[0]); ok {
			return r
		}
	}
	if f.Name == "log" && len(args) == 1 {
		if r, ok := simplifyLogOfProduct(args[0]); ok {
			return r
		}
	}

	return FuncExpr{f.Name, args}
}

func isNumEqual(e Expr, n Number) bool {
	ne, ok := e.(NumExpr)
	return ok && ne.V.Equal(n)
}

func simplifyUnaryFunc(name string, x Expr) (Expr, bool) {
	switch name {
	case "sin":
		if isNumEqual(x, Zero()) {
			return NumOf(Zero()), true
		}
	case "cos":
		if isNumEqual(x, Zero()) {
			return NumOf(One()), true
		}
	case "tan":
		if isNumEqual(x, Zero()) {
			return NumOf(Zero()), true
		}
	case "sinh":
		if isNumEqual(x, Zero()) {
			return NumOf(Zero()), true
		}
	case "cosh":
		if isNumEqual(x, Zero()) {
			return NumOf(One()), true
		}
	case "tanh":
		if isNumEqual(x, Zero()) {
			return NumOf(Zero()), true
		}
	case "exp":
		if isNumEqual(x, Zero()) {
			return NumOf(One()), true
		}
		if inner, ok := x.(FuncExpr); ok && inner.Name == "ln" && len(inner.Args) == 1 {
			return inner.Args[0], true
		}
	case "ln":
		if isNumEqual(x, One()) {
			return NumOf(Zero()), true
		}
		if inner, ok := x.(FuncExpr); ok && inner.Name == "exp" && len(inner.Args) == 1 {
			return inner.Args[0], true
		}
	case "log":
		if isNumEqual(x, One()) {
			return NumOf(Zero()), true
		}
		if isNumEqual(x, Int(10)) {
			return NumOf(One()), true
		}
	case "sqrt":
		if n, ok := x.(NumExpr); ok && n.V.IsInteger() {
			if n.V.IsZero() {
				return NumOf(Zero()), true
			}
			if n.V.Equal(One()) {
				return NumOf(One()), true
			}
			if n.V.Sign() > 0 {
				if bi, ok := n.V.AsBigInt(); ok {
					root := new(big.Int).Sqrt(bi)
					sq := new(big.Int).Mul(root, root)
					if sq.Cmp(bi) == 0 {
						return BigNumber(root), true
					}
				}
			}
		}
	case "abs":
		if n, ok := x.(NumExpr); ok {
			return NumOf(n.V.Abs()), true
		}
	case "factorial":
		if n, ok := x.(NumExpr); ok && n.V.IsInteger() {
			if bi, ok := n.V.AsBigInt(); ok && bi.Sign() >= 0 && bi.IsInt64() && bi.Int64() <= 20 {
				return BigNumber(bigFactorial(bi.Int64())), true
			}
		}
	case "gamma":
		if n, ok := x.(NumExpr); ok && n.V.IsInteger() {
			if bi, ok := n.V.AsBigInt(); ok && bi.Sign() > 0 && bi.IsInt64() && bi.Int64() <= 21 {
				return BigNumber(bigFactorial(bi.Int64() - 1)), true
			}
		}
	}
	return nil, false
}

// simplifyLogOfProduct implements log(a*b) = log(a) + log(b), applied
// only when the argument is a commutative product (Open Question (b):
// this is mathematically sloppy for negative factors but is kept
// verbatim, matching the source's behaviour).
func simplifyLogOfProduct(x Expr) (Expr, bool) {
	m, ok := x.(MulExpr)
	if !ok || m.Commutativity() != Commutative || len(m.Factors) < 2 {
		return nil, false
	}
	terms := make([]Expr, len(m.Factors))
	for i, fac := range m.Factors {
		terms[i] = Function("log", fac)
	}
	return AddExpr{terms}.Simplify(), true
}

func bigFactorial(n int64) *big.Int {
	result := big.NewInt(1)
	for i := int64(2); i <= n; i++ {
		result.Mul(result, big.NewInt(i))
	}
	return result
}
