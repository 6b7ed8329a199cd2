package sympy

// StepCategory loosely groups a Step for renderers that want to filter
// or colour by phase; it has no bearing on solving itself.
type StepCategory string

const (
	CategoryDetection      StepCategory = "detection"
	CategoryTransformation StepCategory = "transformation"
	CategoryCalculation    StepCategory = "calculation"
	CategorySolution       StepCategory = "solution"
	CategoryDiagnostic     StepCategory = "diagnostic"
)

// Step is one recorded transformation. Title and Description are
// always present for a meaningful step; at least one of Before/After
// should be set. RuleApplied is a short machine identifier such as
// "Isolation"; Category, Progress and MessageKey are optional tags a
// step-renderer may use to look up localized templates (§6, "the core
// only guarantees that these keys are stable").
type Step struct {
	Title        string
	Description  string
	Before       Expr
	After        Expr
	RuleApplied  string
	Category     StepCategory
	Progress     float64
	MessageKey   string
}

// StepList is an ordered sequence of Step. Solvers append in the order
// the transformation occurred; readers must not reorder (§4.6, §5
// "Ordering guarantees").
type StepList []Step

// Append returns a new StepList with s appended, used throughout the
// solvers to keep step construction a simple chain of value returns.
func (sl StepList) Append(s Step) StepList { return append(sl, s) }

// NonEmptyTitles reports whether every step in sl carries a non-empty
// title, the shape P6 requires of a successful solve_with_explanation.
func (sl StepList) NonEmptyTitles() bool {
	for _, s := range sl {
		if s.Title == "" {
			return false
		}
	}
	return true
}

// step is a small constructor used internally by solvers to cut down
// on repeated struct-literal noise.
func step(title, desc string, before, after Expr, rule string, cat StepCategory) Step {
	return Step{
		Title:       title,
		Description: desc,
		Before:      before,
		After:       after,
		RuleApplied: rule,
		Category:    cat,
	}
}
