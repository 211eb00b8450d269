package ilp_test

import (
	"testing"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

// selfDep builds the uniform self-dependence "y = x+1" over a single
// loop variable: space (c0, in=x, out=y), equality -1 -x +y = 0.
func selfDep(t *testing.T) *core.BasicMap {
	t.Helper()
	rel := core.New(core.Space{NParam: 0, NIn: 1, NOut: 1})
	require.NoError(t, rel.AddEquality(intlinalg.NewVector(-1, -1, 1)))
	return rel
}

func TestDualCacheBuildsGeneratorsMatchingRelationRows(t *testing.T) {
	rel := selfDep(t)
	dc := ilp.NewDualCache()
	g := dc.Get(rel)

	require.Equal(t, 3, g.Width) // 1 + NParam(0) + NIn(1) + NOut(1)
	require.Empty(t, g.Ineqs)
	require.Len(t, g.Eqs, 1)
	require.Equal(t, []float64{-1, -1, 1}, g.Eqs[0])
}

func TestDualCacheMemoizesByRelationIdentity(t *testing.T) {
	rel := selfDep(t)
	dc := ilp.NewDualCache()
	first := dc.Get(rel)
	second := dc.Get(rel)
	require.Same(t, first, second)
}

func TestDualCacheDistinguishesDistinctRelations(t *testing.T) {
	dc := ilp.NewDualCache()
	a := dc.Get(selfDep(t))
	b := dc.Get(selfDep(t))
	require.NotSame(t, a, b)
}
