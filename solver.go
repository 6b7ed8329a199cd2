package sympy

// SolverResultKind tags which shape a SolverResult carries.
type SolverResultKind int

const (
	ResultSingle SolverResultKind = iota
	ResultMultiple
	ResultPartial
	ResultNoSolution
	ResultInfiniteSolutions
	ResultParametric
)

// SolverResult is the outcome of a solve: exactly one root, several
// roots, some-but-not-all roots (Partial — callers must honour the
// distinction from Multiple), no root, infinitely many roots, or a
// parametric family.
type SolverResult struct {
	Kind  SolverResultKind
	Roots []Expr // single root lives in Roots[0] for ResultSingle
}

func Single(e Expr) SolverResult             { return SolverResult{Kind: ResultSingle, Roots: []Expr{e}} }
func Multiple(es ...Expr) SolverResult       { return SolverResult{Kind: ResultMultiple, Roots: es} }
func Partial(es ...Expr) SolverResult        { return SolverResult{Kind: ResultPartial, Roots: es} }
func NoSolution() SolverResult               { return SolverResult{Kind: ResultNoSolution} }
func InfiniteSolutions() SolverResult        { return SolverResult{Kind: ResultInfiniteSolutions} }
func Parametric(es ...Expr) SolverResult     { return SolverResult{Kind: ResultParametric, Roots: es} }

func (r SolverResult) String() string {
	switch r.Kind {
	case ResultSingle:
		return "Single(" + r.Roots[0].String() + ")"
	case ResultNoSolution:
		return "NoSolution"
	case ResultInfiniteSolutions:
		return "InfiniteSolutions"
	}
	s := ""
	for i, root := range r.Roots {
		if i > 0 {
			s += ", "
		}
		s += root.String()
	}
	switch r.Kind {
	case ResultMultiple:
		return "Multiple([" + s + "])"
	case ResultPartial:
		return "Partial([" + s + "])"
	case ResultParametric:
		return "Parametric([" + s + "])"
	}
	return "?"
}

// EquationSolver is the contract every solver in §4.5 exposes.
// Solvers compose (the orchestrator holds one of each), they do not
// inherit: each is a stateless value with these three methods.
type EquationSolver interface {
	Solve(e Expr, v string) (SolverResult, error)
	SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error)
	CanSolve(e Expr) bool
}

// SmartEquationSolver classifies an equation and dispatches to the
// matching specialised solver. It holds one instance of each solver
// (composition, not inheritance) and adds no algorithmic behaviour of
// its own beyond routing.
type SmartEquationSolver struct {
	Linear     *LinearSolver
	Quadratic  *QuadraticSolver
	Polynomial *PolynomialSolver
}

// NewSmartEquationSolver builds an orchestrator with the standard
// solver set wired in.
func NewSmartEquationSolver() *SmartEquationSolver {
	return &SmartEquationSolver{
		Linear:     &LinearSolver{},
		Quadratic:  &QuadraticSolver{},
		Polynomial: &PolynomialSolver{},
	}
}

// Solve classifies e and routes to the matching solver. Equation
// kinds the orchestrator has no solver for (System, Transcendental,
// ODE, PDE, Unknown) return UnsupportedType; systems, ODEs and PDEs
// are solved by calling SystemSolver, ODESolver or PDESolver directly.
func (s *SmartEquationSolver) Solve(e Expr, v string) (SolverResult, error) {
	res, _, err := s.SolveWithExplanation(e, v)
	return res, err
}

// SolveWithExplanation is Solve plus the full StepList.
func (s *SmartEquationSolver) SolveWithExplanation(e Expr, v string) (SolverResult, StepList, error) {
	kind := Classify(e, v)
	logger.WithFields(map[string]interface{}{"kind": kind.String(), "var": v}).Debug("dispatching solver")
	switch kind {
	case KindConstant, KindLinear:
		return s.Linear.SolveWithExplanation(e, v)
	case KindQuadratic:
		return s.Quadratic.SolveWithExplanation(e, v)
	case KindCubic, KindQuartic:
		return s.Polynomial.SolveWithExplanation(e, v)
	default:
		return SolverResult{}, nil, NewSolverError(UnsupportedType,
			"SmartEquationSolver has no solver for "+kind.String())
	}
}

// CanSolve reports whether any wired solver accepts e.
func (s *SmartEquationSolver) CanSolve(e Expr) bool {
	return s.Linear.CanSolve(e) || s.Quadratic.CanSolve(e) || s.Polynomial.CanSolve(e)
}

// SolveLinear is a fast-path entry point that calls LinearSolver
// directly with no classification cost, per the design note "Fast-
// path methods on Expression... simply call the relevant solver
// directly".
func SolveLinear(e Expr, v string) (SolverResult, error) {
	return (&LinearSolver{}).Solve(e, v)
}

// SolveQuadratic is the quadratic fast-path equivalent of SolveLinear.
func SolveQuadratic(e Expr, v string) (SolverResult, error) {
	return (&QuadraticSolver{}).Solve(e, v)
}

// SolveMatrix is the noncommutative fast-path equivalent of
// SolveLinear; the classifier has no Matrix kind, so this is always
// reached directly rather than through SmartEquationSolver.
func SolveMatrix(e Expr, v string) (SolverResult, error) {
	return (&MatrixSolver{}).Solve(e, v)
}
