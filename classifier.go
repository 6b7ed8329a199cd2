package sympy

// EquationKind is the routing tag produced by Classify (§4.4). It is a
// hint only: solvers may still decline.
type EquationKind int

const (
	KindConstant EquationKind = iota
	KindLinear
	KindQuadratic
	KindCubic
	KindQuartic
	KindSystem
	KindTranscendental
	KindODE
	KindPDE
	KindUnknown
)

func (k EquationKind) String() string {
	switch k {
	case KindConstant:
		return "Constant"
	case KindLinear:
		return "Linear"
	case KindQuadratic:
		return "Quadratic"
	case KindCubic:
		return "Cubic"
	case KindQuartic:
		return "Quartic"
	case KindSystem:
		return "System"
	case KindTranscendental:
		return "Transcendental"
	case KindODE:
		return "ODE"
	case KindPDE:
		return "PDE"
	}
	return "Unknown"
}

var transcendentalFuncs = map[string]bool{
	"sin": true, "cos": true, "tan": true, "exp": true, "ln": true, "log": true,
}

// hasTranscendental scans e for function nodes whose names are in the
// transcendental set.
func hasTranscendental(e Expr) bool {
	found := false
	var walk func(Expr)
	walk = func(x Expr) {
		if found {
			return
		}
		switch t := x.(type) {
		case FuncExpr:
			if transcendentalFuncs[t.Name] {
				found = true
				return
			}
			for _, a := range t.Args {
				walk(a)
			}
		case AddExpr:
			for _, c := range t.Terms {
				walk(c)
			}
		case MulExpr:
			for _, c := range t.Factors {
				walk(c)
			}
		case PowExpr:
			walk(t.Base)
			walk(t.Exponent)
		}
	}
	walk(e)
	return found
}

// distinctSymbols counts the distinct symbol names occurring in e.
func distinctSymbols(e Expr) int {
	found := map[string]bool{}
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case SymExpr:
			found[t.S.Name] = true
		case AddExpr:
			for _, c := range t.Terms {
				walk(c)
			}
		case MulExpr:
			for _, c := range t.Factors {
				walk(c)
			}
		case PowExpr:
			walk(t.Base)
			walk(t.Exponent)
		case FuncExpr:
			for _, a := range t.Args {
				walk(a)
			}
		case CalculusExpr:
			walk(t.Target)
			found[t.WithRespectTo.Name] = true
		}
	}
	walk(e)
	return len(found)
}

// hasODEorPDE scans e for derivative markers: a Calculus node with Op
// CalcDerivative, or a function call named "derivative", signals an
// ODE; a Calculus node with Op CalcPartial, or a function call named
// "partial", signals a PDE.
func hasODEorPDE(e Expr) (hasODE, hasPDE bool) {
	var walk func(Expr)
	walk = func(x Expr) {
		switch t := x.(type) {
		case CalculusExpr:
			if t.Op == CalcPartial {
				hasPDE = true
			} else if t.Op == CalcDerivative {
				hasODE = true
			}
			walk(t.Target)
		case AddExpr:
			for _, c := range t.Terms {
				walk(c)
			}
		case MulExpr:
			for _, c := range t.Factors {
				walk(c)
			}
		case PowExpr:
			walk(t.Base)
			walk(t.Exponent)
		case FuncExpr:
			if t.Name == "derivative" || t.Name == "partial" {
				if t.Name == "partial" {
					hasPDE = true
				} else {
					hasODE = true
				}
			}
			for _, a := range t.Args {
				walk(a)
			}
		}
	}
	walk(e)
	return
}

// Classify inspects the canonical structure of E (presumed equal to
// zero) with respect to v and returns a routing EquationKind. It never
// mutates E.
func Classify(e Expr, v string) EquationKind {
	e = Simplify(e)

	hasODE, hasPDE := hasODEorPDE(e)
	if hasPDE {
		return KindPDE
	}
	if hasODE {
		return KindODE
	}

	trans := hasTranscendental(e)
	nvars := distinctSymbols(e)

	if trans {
		return KindTranscendental
	}

	d := Degree(e, v)
	if d == 0 {
		return KindConstant
	}
	if nvars >= 2 {
		return KindSystem
	}
	switch d {
	case 1:
		return KindLinear
	case 2:
		return KindQuadratic
	case 3:
		return KindCubic
	case 4:
		return KindQuartic
	}
	return KindUnknown
}
