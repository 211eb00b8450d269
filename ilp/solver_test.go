package ilp_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/stretchr/testify/require"
)

func TestSolverSolvesTrivialPinnedVariable(t *testing.T) {
	p := ilp.NewProblem(1)
	p.MarkIntegerRange(0, 1)
	p.AddEq([]float64{1}, 2)

	x, z, err := ilp.NewSolver().Solve(p, []float64{1})
	require.NoError(t, err)
	require.InDelta(t, 2, z, 1e-6)
	require.InDelta(t, 2, x[0], 1e-6)
}

func TestSolverReportsInfeasibleContradiction(t *testing.T) {
	p := ilp.NewProblem(1)
	p.MarkIntegerRange(0, 1)
	p.AddEq([]float64{1}, 2)
	p.AddEq([]float64{1}, 3)

	_, _, err := ilp.NewSolver().Solve(p, []float64{1})
	require.ErrorIs(t, err, ilp.ErrNoIntegerSolution)
}

func TestFeasibleReportsBothOutcomes(t *testing.T) {
	ok := ilp.NewProblem(1)
	ok.MarkIntegerRange(0, 1)
	ok.AddEq([]float64{1}, 2)
	feasible, err := ilp.NewSolver().Feasible(ok)
	require.NoError(t, err)
	require.True(t, feasible)

	bad := ilp.NewProblem(1)
	bad.MarkIntegerRange(0, 1)
	bad.AddEq([]float64{1}, 2)
	bad.AddEq([]float64{1}, 3)
	feasible, err = ilp.NewSolver().Feasible(bad)
	require.NoError(t, err)
	require.False(t, feasible)
}

func TestLexMinPinsEachStageBeforeTheNext(t *testing.T) {
	// minimize x1 then x2, subject to x1+x2 = 4, both integer >= 0.
	p := ilp.NewProblem(2)
	p.MarkIntegerRange(0, 2)
	p.AddEq([]float64{1, 1}, 4)

	before := len(p.A)
	x, err := ilp.NewSolver().LexMin(p, [][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	require.Len(t, x, 2)
	require.InDelta(t, 0, x[0], 1e-6)
	require.InDelta(t, 4, x[1], 1e-6)
	require.Equal(t, before+2, len(p.A)) // one pinning equality per stage
}
