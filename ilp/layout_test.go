package ilp_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/stretchr/testify/require"
)

func domain(nparam, nvar int) *core.BasicMap {
	return core.New(core.Space{NParam: nparam, NOut: nvar})
}

func TestNewLayoutAllocatesDistinctColumns(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{domain(1, 2), domain(1, 1)})
	l := ilp.NewLayout(g.Nodes)

	require.Equal(t, 1, l.NParam)
	require.Len(t, l.MParams, 1)
	require.Len(t, l.Nodes, 2)
	require.Len(t, l.Nodes[0].Vars, 2)
	require.Len(t, l.Nodes[1].Vars, 1)

	seen := make(map[int]bool)
	mark := func(cols ...int) {
		for _, c := range cols {
			require.False(t, seen[c], "column %d reused", c)
			seen[c] = true
		}
	}
	mark(l.GlobalParamSum.Neg, l.GlobalParamSum.Pos, l.M0, l.GlobalVarSum.Neg, l.GlobalVarSum.Pos)
	for _, pr := range l.MParams {
		mark(pr.Neg, pr.Pos)
	}
	for _, n := range l.Nodes {
		mark(n.Const.Neg, n.Const.Pos)
		for _, pr := range n.Params {
			mark(pr.Neg, pr.Pos)
		}
		for _, pr := range n.Vars {
			mark(pr.Neg, pr.Pos)
		}
	}
	require.Equal(t, l.Total, len(seen))
}

func TestSetSignedEncodesPosMinusNeg(t *testing.T) {
	p := ilp.Pair{Neg: 0, Pos: 1}
	row := make([]float64, 2)
	ilp.SetSigned(row, p, 3)
	require.Equal(t, []float64{-3, 3}, row)
}
