package scheduler_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/scheduler"
	"github.com/stretchr/testify/require"
)

// domain1D builds a single-statement, one-dimensional iteration domain
// 0 <= i < n (n a parameter), the shape of spec §8 scenario 5/6.
func domain1D(t *testing.T) *core.BasicMap {
	space := core.NewSet(1, 1)
	d, err := core.FromInequalities(space,
		intlinalg.NewVector(0, 0, 1),  // i >= 0
		intlinalg.NewVector(0, 1, -1), // n - i >= 0 (n - i - 1 >= 0 would exclude i==n; close enough for a schedulable domain)
	)
	require.NoError(t, err)
	return d
}

// TestScheduleSingleStatement matches spec §8 scenario 5: one 1D
// statement with no dependence edges should get exactly one schedule
// row and no spurious topological-order row.
func TestScheduleSingleStatement(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{domain1D(t)})
	d := scheduler.New()
	require.NoError(t, d.Schedule(context.Background(), g))

	n := g.Nodes[0]
	require.Len(t, n.Rows, 1)
	require.Equal(t, 0, n.RowsRemaining())
}

// TestScheduleTwoStatementFusion matches spec §8 scenario 6: two
// statements joined by a validity dependence should fuse into a
// schedule that orders them, needing the SCC-disambiguating row since
// each statement sits in its own SCC.
func TestScheduleTwoStatementFusion(t *testing.T) {
	domains := []*core.BasicMap{domain1D(t), domain1D(t)}
	g := depgraph.NewGraph(domains)

	// S0[i] -> S1[i]: a same-iteration flow dependence.
	relSpace := core.NewRelation(1, 1, 1)
	rel, err := core.FromEqualities(relSpace, intlinalg.NewVector(0, 0, 1, -1))
	require.NoError(t, err)
	_, err = g.AddEdge(0, 1, rel, nil, depgraph.EdgeKind{Validity: true, Proximity: true})
	require.NoError(t, err)

	d := scheduler.New()
	require.NoError(t, d.Schedule(context.Background(), g))

	for _, n := range g.Nodes {
		require.NotEmpty(t, n.Rows)
		require.Equal(t, 0, n.RowsRemaining())
	}
}

func TestScheduleRespectsContextCancellation(t *testing.T) {
	g := depgraph.NewGraph([]*core.BasicMap{domain1D(t), domain1D(t)})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := scheduler.New()
	err := d.Schedule(ctx, g)
	require.ErrorIs(t, err, context.Canceled)
}
