package depgraph_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

func loopDomain(t *testing.T, n int64) *core.BasicMap {
	space := core.NewSet(0, 1)
	bm, err := core.FromInequalities(space,
		intlinalg.NewVector(0, 1),      // i >= 0
		intlinalg.NewVector(n-1, -1),   // n-1-i >= 0
	)
	require.NoError(t, err)
	return bm
}

func relation(t *testing.T) *core.BasicMap {
	// S1(i) -> S2(j) with j == i, over a validity-shaped space.
	space := core.NewRelation(0, 1, 1)
	bm, err := core.FromEqualities(space, intlinalg.NewVector(0, 1, -1))
	require.NoError(t, err)
	return bm
}

func TestNewGraphOneNodePerDomain(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10)})
	require.Len(t, g.Nodes, 2)
	require.Equal(t, 1, g.Nodes[0].NVar)
	require.Equal(t, 0, g.Nodes[0].NParam)
}

func TestAddEdgeFoldsIdenticalRelation(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10)})
	r := relation(t)

	e1, err := g.AddEdge(0, 1, r, nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)
	e2, err := g.AddEdge(0, 1, r.Clone(), nil, depgraph.EdgeKind{Proximity: true})
	require.NoError(t, err)

	require.Same(t, e1, e2)
	require.Len(t, g.Edges, 1)
	require.True(t, g.Edges[0].Kind.Validity)
	require.True(t, g.Edges[0].Kind.Proximity)
}

func TestAddEdgeDistinctRelationsStaySeparate(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10)})
	r1 := relation(t)
	space := core.NewRelation(0, 1, 1)
	r2, err := core.FromEqualities(space, intlinalg.NewVector(1, 1, -1))
	require.NoError(t, err)

	_, err = g.AddEdge(0, 1, r1, nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, r2, nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)

	require.Len(t, g.Edges, 2)
}

func TestAddEdgeRejectsOutOfRangeNode(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10)})
	_, err := g.AddEdge(0, 5, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.ErrorIs(t, err, depgraph.ErrNodeIndex)
}

func TestNodeRecomputeBasisRankAndTriviality(t *testing.T) {
	n := &depgraph.Node{NVar: 2, NParam: 0}
	require.NoError(t, n.AddRow(depgraph.Row{Coeffs: intlinalg.NewVector(0, 1, 0)}))
	require.NoError(t, n.RecomputeBasis())
	require.Equal(t, 1, n.Rank)

	// A second row parallel to the first (1,0) is linearly dependent:
	// t = Cinv*c should be zero past index Rank for it.
	c := intlinalg.NewVector(2, 0)
	tvec, err := n.Cinv.MulVec(c)
	require.NoError(t, err)
	require.Zero(t, tvec[n.Rank].Sign())
}

func TestNodeAddRowRejectsWrongWidth(t *testing.T) {
	n := &depgraph.Node{NVar: 2, NParam: 0}
	err := n.AddRow(depgraph.Row{Coeffs: intlinalg.NewVector(0, 1)})
	require.ErrorIs(t, err, depgraph.ErrRowWidth)
}
