package band_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/band"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

func rowOf(c int64, bandID int, coincident bool) depgraph.Row {
	return depgraph.Row{Coeffs: intlinalg.NewVector(c), Band: bandID, Coincident: coincident}
}

// TestForestSingleBandIsOneRoot matches a single-statement, single-band
// schedule: one root, no children.
func TestForestSingleBandIsOneRoot(t *testing.T) {
	n := &depgraph.Node{ID: 0}
	require.NoError(t, n.AddRow(rowOf(0, 0, true)))
	g := &depgraph.Graph{Nodes: []*depgraph.Node{n}}

	f := band.NewForest(g)
	roots := f.Roots()
	require.Len(t, roots, 1)
	require.Equal(t, 0, roots[0].BandID)
	require.Empty(t, roots[0].Children())
	require.True(t, roots[0].Coincident())
}

// TestForestNestsSplitBands models a fused outer band (0) over both
// statements followed by a split: statement 0 continues alone in band
// 1, statement 1 alone in band 2. Bands 1 and 2 should nest under 0.
func TestForestNestsSplitBands(t *testing.T) {
	n0 := &depgraph.Node{ID: 0}
	n1 := &depgraph.Node{ID: 1}
	require.NoError(t, n0.AddRow(rowOf(0, 0, false)))
	require.NoError(t, n1.AddRow(rowOf(0, 0, false)))
	require.NoError(t, n0.AddRow(rowOf(1, 1, true)))
	require.NoError(t, n1.AddRow(rowOf(1, 2, true)))
	g := &depgraph.Graph{Nodes: []*depgraph.Node{n0, n1}}

	f := band.NewForest(g)
	roots := f.Roots()
	require.Len(t, roots, 1)
	root := roots[0]
	require.Equal(t, 0, root.BandID)
	require.Len(t, root.Children(), 2)

	child1 := f.Node(1)
	child2 := f.Node(2)
	require.Contains(t, root.Children(), child1)
	require.Contains(t, root.Children(), child2)
	require.Len(t, child1.Nodes, 1)
	require.Equal(t, 0, child1.Nodes[0].ID)
	require.Len(t, child2.Nodes, 1)
	require.Equal(t, 1, child2.Nodes[0].ID)
}
