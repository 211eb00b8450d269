package depgraph_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

func TestComputeSCCChainIsAllSingletons(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10), loopDomain(t, 10)})
	_, err := g.AddEdge(0, 1, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)
	_, err = g.AddEdge(1, 2, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)

	depgraph.ComputeSCC(g)

	require.NotEqual(t, g.Nodes[0].SCC, g.Nodes[1].SCC)
	require.NotEqual(t, g.Nodes[1].SCC, g.Nodes[2].SCC)
}

func TestComputeSCCCycleIsOneComponent(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10)})
	_, err := g.AddEdge(0, 1, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)
	space := core.NewRelation(0, 1, 1)
	back, err := core.FromEqualities(space, intlinalg.NewVector(0, 1, -1))
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, back, nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)

	depgraph.ComputeSCC(g)

	require.Equal(t, g.Nodes[0].SCC, g.Nodes[1].SCC)
}

func TestComputeSCCIgnoresNonStrongEdges(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10)})
	space := core.NewRelation(0, 1, 1)
	back, err := core.FromEqualities(space, intlinalg.NewVector(0, 1, -1))
	require.NoError(t, err)
	// A proximity-only edge back to node 0 must not merge the SCCs.
	_, err = g.AddEdge(0, 1, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)
	_, err = g.AddEdge(1, 0, back, nil, depgraph.EdgeKind{Proximity: true})
	require.NoError(t, err)

	depgraph.ComputeSCC(g)

	require.NotEqual(t, g.Nodes[0].SCC, g.Nodes[1].SCC)
}

func TestComputeWCCSplitsDisconnectedComponents(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{loopDomain(t, 10), loopDomain(t, 10), loopDomain(t, 10)})
	_, err := g.AddEdge(0, 1, relation(t), nil, depgraph.EdgeKind{Validity: true})
	require.NoError(t, err)

	comps := depgraph.ComputeWCC(g)
	require.Len(t, comps, 2)
}
