package scheduler

import (
	"testing"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/stretchr/testify/require"
)

func node(id, scc, nvar int) *depgraph.Node {
	n := &depgraph.Node{ID: id, SCC: scc, NVar: nvar}
	_ = n.RecomputeBasis()
	return n
}

func TestGroupBySCCOrdersAscending(t *testing.T) {
	n0 := node(0, 2, 1)
	n1 := node(1, 0, 1)
	n2 := node(2, 2, 1)
	n3 := node(3, 1, 1)

	groups := groupBySCC([]*depgraph.Node{n0, n1, n2, n3})
	require.Len(t, groups, 3)
	require.Equal(t, 0, groups[0][0].SCC)
	require.Equal(t, 1, groups[1][0].SCC)
	require.Equal(t, 2, groups[2][0].SCC)
	require.ElementsMatch(t, []*depgraph.Node{n0, n2}, groups[2])
}

func TestMaxvarOfTracksLargestRemaining(t *testing.T) {
	n0 := node(0, 0, 2)
	n1 := node(1, 0, 5)
	require.Equal(t, 5, maxvarOf([]*depgraph.Node{n0, n1}))
}

func TestActiveNodeSetAndExcludeInactiveEdges(t *testing.T) {
	g := depgraph.NewGraph(nil)
	g.Nodes = []*depgraph.Node{node(0, 0, 1), node(1, 0, 1), node(2, 0, 1)}
	e01, err := g.AddEdge(0, 1, nil, nil, depgraph.EdgeKind{})
	require.NoError(t, err)
	e12, err := g.AddEdge(1, 2, nil, nil, depgraph.EdgeKind{})
	require.NoError(t, err)

	active := activeNodeSet([]*depgraph.Node{g.Nodes[0], g.Nodes[1]})
	require.True(t, active[0])
	require.True(t, active[1])
	require.False(t, active[2])

	excluded := excludeInactiveEdges(g, active)
	require.False(t, excluded[e01.ID])
	require.True(t, excluded[e12.ID])
}

func TestNodeLayoutViewAlignsByID(t *testing.T) {
	nodes := []*depgraph.Node{node(0, 0, 1), node(1, 0, 2)}
	layout := ilp.NewLayout(nodes)

	view := nodeLayoutView(layout, []*depgraph.Node{nodes[1], nodes[0]})
	require.Equal(t, layout.Nodes[1], view.Nodes[0])
	require.Equal(t, layout.Nodes[0], view.Nodes[1])
}

func TestZeroRowMatchesRowWidth(t *testing.T) {
	n := node(0, 0, 3)
	n.NParam = 2
	row := zeroRow(n)
	require.Equal(t, n.RowWidth(), len(row))
}
