package schedrow_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/schedrow"
	"github.com/stretchr/testify/require"
)

// node1D builds a single 1-variable, 0-parameter node, optionally already
// carrying one schedule row so RecomputeBasis gives it rank 1.
func node1D(t *testing.T, withRow bool) *depgraph.Node {
	n := &depgraph.Node{ID: 0, NVar: 1, NParam: 0}
	if withRow {
		require.NoError(t, n.AddRow(depgraph.Row{Coeffs: intlinalg.NewVector(0, 1)}))
	}
	require.NoError(t, n.RecomputeBasis())
	return n
}

func layoutFor(nodes []*depgraph.Node) *ilp.Layout {
	return ilp.NewLayout(nodes)
}

// solFor writes each non-negative value at pair p's Pos slot and each
// negative value's magnitude at its Neg slot, in a solution vector sized
// to layout.Total.
func solFor(total int, sets map[ilp.Pair]float64) []float64 {
	sol := make([]float64, total)
	for p, v := range sets {
		if v >= 0 {
			sol[p.Pos] = v
		} else {
			sol[p.Neg] = -v
		}
	}
	return sol
}

func TestExtractRowNonTrivialFirstRow(t *testing.T) {
	n := node1D(t, false)
	layout := layoutFor([]*depgraph.Node{n})
	sol := solFor(layout.Total, map[ilp.Pair]float64{layout.Nodes[0].Vars[0]: 1})

	row, trivial, err := schedrow.ExtractRow(n, layout.Nodes[0], sol, 0, true)
	require.NoError(t, err)
	require.False(t, trivial)
	require.Equal(t, int64(1), row.Coeffs[1].Int64())
}

func TestExtractRowTrivialSecondParallelRow(t *testing.T) {
	n := node1D(t, true) // already has row [0,1], rank 1
	layout := layoutFor([]*depgraph.Node{n})
	sol := solFor(layout.Total, map[ilp.Pair]float64{layout.Nodes[0].Vars[0]: 2})

	_, trivial, err := schedrow.ExtractRow(n, layout.Nodes[0], sol, 1, false)
	require.NoError(t, err)
	require.True(t, trivial) // NVar==Rank==1: nothing beyond rank to be nonzero
}

func TestExtractAllRejectsRequiredTrivialRow(t *testing.T) {
	n := node1D(t, true)
	layout := layoutFor([]*depgraph.Node{n})
	sol := solFor(layout.Total, map[ilp.Pair]float64{layout.Nodes[0].Vars[0]: 3})

	err := schedrow.ExtractAll([]*depgraph.Node{n}, layout, sol, 1,
		func(int) bool { return false },
		func(int) bool { return true },
	)
	require.ErrorIs(t, err, schedrow.ErrTrivialRow)
	require.Len(t, n.Rows, 1) // all-or-nothing: the extra row was not appended
}

func TestExtractAllAcceptsAndRecomputesBasis(t *testing.T) {
	n := node1D(t, false)
	layout := layoutFor([]*depgraph.Node{n})
	sol := solFor(layout.Total, map[ilp.Pair]float64{layout.Nodes[0].Vars[0]: 1})

	err := schedrow.ExtractAll([]*depgraph.Node{n}, layout, sol, 0,
		func(int) bool { return true },
		func(int) bool { return true },
	)
	require.NoError(t, err)
	require.Len(t, n.Rows, 1)
	require.Equal(t, 1, n.Rank)
	require.True(t, n.Rows[0].Coincident)
}

func TestReadRowCoeffsRejectsShortSolution(t *testing.T) {
	n := node1D(t, false)
	layout := layoutFor([]*depgraph.Node{n})
	_, err := schedrow.ReadRowCoeffs(layout.Nodes[0], make([]float64, 1))
	require.ErrorIs(t, err, schedrow.ErrSolutionWidth)
}
