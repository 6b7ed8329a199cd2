package sympy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDEClassifyHeatWaveLaplace(t *testing.T) {
	u, x, tSym := NewSymbol("u"), NewSymbol("x"), NewSymbol("t")
	s := &PDESolver{}

	uxx := CalculusExpr{Op: CalcPartial, Target: SymOf(u), WithRespectTo: x, Order: 2}
	ut := CalculusExpr{Op: CalcPartial, Target: SymOf(u), WithRespectTo: tSym, Order: 1}
	utt := CalculusExpr{Op: CalcPartial, Target: SymOf(u), WithRespectTo: tSym, Order: 2}

	assert.Equal(t, PDEHeat, s.Classify(Add(uxx, Mul(NumberOf(-1), ut)), u, x, tSym))
	assert.Equal(t, PDEWave, s.Classify(Add(uxx, Mul(NumberOf(-1), utt)), u, x, tSym))
	assert.Equal(t, PDELaplace, s.Classify(uxx, u, x, tSym))
}

func TestSolveHeatEquationProducesTruncatedSeries(t *testing.T) {
	solver := &PDESolver{Terms: 3}
	u, x, tSym := NewSymbol("u"), NewSymbol("x"), NewSymbol("t")

	result, steps, err := solver.SolveHeatOrWave(PDEHeat, NumberOf(1), NumberOf(1), Var("x"), u, x, tSym)
	require.NoError(t, err)
	require.Equal(t, ResultSingle, result.Kind)
	assert.NotEmpty(t, steps)

	sawFourier := false
	for _, st := range steps {
		if st.RuleApplied == "FourierProjection" {
			sawFourier = true
		}
	}
	assert.True(t, sawFourier, "expected per-mode Fourier coefficient steps")
}

func TestSolveHeatEquationMissingLengthIsDiagnostic(t *testing.T) {
	solver := &PDESolver{}
	u, x, tSym := NewSymbol("u"), NewSymbol("x"), NewSymbol("t")

	result, steps, err := solver.SolveHeatOrWave(PDEHeat, NumberOf(1), Var("L"), Var("x"), u, x, tSym)
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
	assert.Equal(t, "MissingIngredient", steps[len(steps)-1].RuleApplied)
}

func TestSolveLaplaceWithoutEnoughBoundaryConditionsIsDiagnostic(t *testing.T) {
	solver := &PDESolver{}
	result, steps, err := solver.SolveLaplace([]BoundaryCondition{{At: NumberOf(0), Value: NumberOf(0)}})
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
	assert.Equal(t, "MissingIngredient", steps[0].RuleApplied)
}

func TestSolveLaplaceWithBoundaryConditionsIsUnsupportedStub(t *testing.T) {
	solver := &PDESolver{}
	boundary := []BoundaryCondition{
		{At: NumberOf(0), Value: NumberOf(0)},
		{At: NumberOf(1), Value: NumberOf(0)},
	}
	result, steps, err := solver.SolveLaplace(boundary)
	require.NoError(t, err)
	assert.Equal(t, ResultNoSolution, result.Kind)
	assert.Equal(t, "Unsupported", steps[len(steps)-1].RuleApplied)
}
