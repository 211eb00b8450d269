package tableau_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/tableau"
	"github.com/stretchr/testify/require"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

// A single-dimension box 0 <= i <= 10.
func box(t *testing.T) *tableau.Tableau {
	tb := tableau.New(1)
	require.NoError(t, tb.AddInequality(ints(0, 1)))   // i >= 0
	require.NoError(t, tb.AddInequality(ints(10, -1))) // 10 - i >= 0
	return tb
}

func TestClassifyValid(t *testing.T) {
	tb := box(t)
	// i >= -5 holds everywhere on [0,10].
	st, err := tb.Classify(ints(5, 1))
	require.NoError(t, err)
	require.Equal(t, tableau.Valid, st)
}

func TestClassifySeparate(t *testing.T) {
	tb := box(t)
	// i <= -5, i.e. -5 - i >= 0, is false everywhere on [0,10] and not
	// adjacent (violated by more than 1 at the near end).
	st, err := tb.Classify(ints(-5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.Separate, st)
}

func TestClassifyCut(t *testing.T) {
	tb := box(t)
	// i <= 5, i.e. 5 - i >= 0: true for i in [0,5], false for i in [6,10].
	st, err := tb.Classify(ints(5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.Cut, st)
}

func TestClassifyAdjIneq(t *testing.T) {
	tb := box(t)
	// i <= -1, i.e. -1 - i >= 0: min over [0,10] is -11 (at i=10), max is
	// -1 (at i=0). The near side sits exactly one unit short of the
	// halfspace; the far side is free to fall away further. That is
	// adjacency by inequality, not an equality-pinned face.
	st, err := tb.Classify(ints(-1, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.AdjIneq, st)
}

// TestClassifyAdjIneqCoalesceBoxes mirrors spec §8 scenario 2: boxes
// {0<=i<=5} and {6<=i<=10} are one unit apart, so the first box's
// far facet (5-i>=0) must classify as AdjIneq against the second box's
// tableau, letting coalesce.Run merge them into {0<=i<=10}.
func TestClassifyAdjIneqCoalesceBoxes(t *testing.T) {
	a := tableau.New(1)
	require.NoError(t, a.AddInequality(ints(0, 1))) // i >= 0
	require.NoError(t, a.AddInequality(ints(5, -1))) // 5 - i >= 0

	b := tableau.New(1)
	require.NoError(t, b.AddInequality(ints(-6, 1))) // i - 6 >= 0
	require.NoError(t, b.AddInequality(ints(10, -1))) // 10 - i >= 0

	// A's far facet (5-i>=0) against B's region [6,10]: at i=6 it's -1,
	// at i=10 it's -5 — near side one unit short, far side free.
	st, err := b.Classify(ints(5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.AdjIneq, st)

	// Symmetrically, B's near facet (i-6>=0) against A's region [0,5]:
	// at i=5 it's -1, at i=0 it's -6.
	st, err = a.Classify(ints(-6, 1))
	require.NoError(t, err)
	require.Equal(t, tableau.AdjIneq, st)
}

func TestClassifyAdjEq(t *testing.T) {
	// A box pinned so the row's min and max are both exactly -1: take the
	// degenerate single-point region i == 0, and classify "i - 1 >= 0".
	tb := tableau.New(1)
	require.NoError(t, tb.AddEquality(ints(0, 1))) // i == 0
	st, err := tb.Classify(ints(-1, 1))             // i - 1 >= 0
	require.NoError(t, err)
	require.Equal(t, tableau.AdjEq, st)
}

func TestSnapshotRollback(t *testing.T) {
	tb := box(t)
	tok := tb.Snapshot()
	require.NoError(t, tb.AddInequality(ints(3, -1))) // i <= 3, shrinks region
	st, err := tb.Classify(ints(5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.Valid, st) // i<=5 holds on [0,3]

	require.NoError(t, tb.Rollback(tok))
	st, err = tb.Classify(ints(5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.Cut, st) // back to [0,10]: cuts again
}

func TestIsEmpty(t *testing.T) {
	tb := tableau.New(1)
	require.NoError(t, tb.AddInequality(ints(0, 1)))  // i >= 0
	require.NoError(t, tb.AddInequality(ints(-1, -1))) // -1 - i >= 0  =>  i <= -1
	empty, err := tb.IsEmpty()
	require.NoError(t, err)
	require.True(t, empty)
}

func TestOptimizeReturnsWitnessPoint(t *testing.T) {
	tb := box(t)
	val, point, unbounded, infeasible, err := tb.Optimize(ints(0, 1), true) // maximize i
	require.NoError(t, err)
	require.False(t, unbounded)
	require.False(t, infeasible)
	require.Equal(t, "10", val.RatString())
	require.Len(t, point, 1)
	require.Equal(t, "10", point[0].RatString())
}

func TestUnboundedRegionClassifiesByDirection(t *testing.T) {
	tb := tableau.New(1)
	require.NoError(t, tb.AddInequality(ints(0, 1))) // i >= 0, unbounded above
	// i <= 5 is a genuine cut: valid for i in [0,5], violated (unboundedly
	// negative as i grows) above.
	st, err := tb.Classify(ints(5, -1))
	require.NoError(t, err)
	require.Equal(t, tableau.Cut, st)
}
