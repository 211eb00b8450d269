package coalesce_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/polyhedra/coalesce"
	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

func box1D(t *testing.T, lo, hi int64) *core.BasicMap {
	space := core.NewSet(0, 1)
	bm, err := core.FromInequalities(space,
		intlinalg.NewVector(-lo, 1),
		intlinalg.NewVector(hi, -1),
	)
	require.NoError(t, err)
	return bm
}

func TestTryMergeSubsumption(t *testing.T) {
	outer := box1D(t, 0, 10)
	inner := box1D(t, 2, 4)
	merged, ok, err := coalesce.TryMerge(outer, inner)
	require.NoError(t, err)
	require.True(t, ok)
	require.True(t, merged.Final)
	require.Equal(t, 2, merged.NumConstraints())
}

// Two unit boxes [4,5] and [5,6] that share the point 5: each box's
// facing bound (5 - i >= 0, i - 5 >= 0) is a cut of the other, the only
// cuts on either side, so rule 5 drops that opposing pair and the result
// is the single box [4,6].
func TestTryMergeAdjacentDropsOpposingPair(t *testing.T) {
	i := box1D(t, 4, 5)
	j := box1D(t, 5, 6)
	merged, ok, err := coalesce.TryMerge(i, j)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, merged.NumConstraints())

	// The merged box must be exactly [4,6]: check both bounds hold and
	// the excluded points (3 and 7) are rejected.
	for x := int64(3); x <= 7; x++ {
		inside := true
		for _, row := range merged.Ineqs {
			require.Len(t, row, 2)
			v, err := row.Dot(intlinalg.NewVector(1, x))
			require.NoError(t, err)
			if v.Sign() < 0 {
				inside = false
			}
		}
		require.Equal(t, x >= 4 && x <= 6, inside, "x=%d", x)
	}
}

func TestTryMergeSeparateDoesNotMerge(t *testing.T) {
	i := box1D(t, 0, 1)
	j := box1D(t, 100, 101)
	merged, ok, err := coalesce.TryMerge(i, j)
	require.NoError(t, err)
	require.False(t, ok)
	require.Nil(t, merged)
}

func TestRunCoalescesTwoAdjacentUnitBoxes(t *testing.T) {
	space := core.NewSet(0, 1)
	u := core.NewUnion(space, box1D(t, 4, 5), box1D(t, 5, 6))
	out, err := coalesce.Run(context.Background(), u)
	require.NoError(t, err)
	require.Len(t, out.Maps, 1)
	require.Equal(t, 2, out.Maps[0].NumConstraints())
}

// TestRunCoalescesGapOfOneBoxes mirrors spec §8 scenario 2 directly:
// {0<=i<=5} and {6<=i<=10} sit exactly one unit apart and must coalesce
// to the single box {0<=i<=10}.
func TestRunCoalescesGapOfOneBoxes(t *testing.T) {
	space := core.NewSet(0, 1)
	u := core.NewUnion(space, box1D(t, 0, 5), box1D(t, 6, 10))
	out, err := coalesce.Run(context.Background(), u)
	require.NoError(t, err)
	require.Len(t, out.Maps, 1)
	require.Equal(t, 2, out.Maps[0].NumConstraints())
}

func TestRunDropsEmptyBasicMap(t *testing.T) {
	space := core.NewSet(0, 1)
	empty, err := core.FromInequalities(space,
		intlinalg.NewVector(0, 1),  // x >= 0
		intlinalg.NewVector(-1, -1), // -1 - x >= 0  =>  x <= -1 : infeasible with x>=0
	)
	require.NoError(t, err)
	u := core.NewUnion(space, box1D(t, 0, 1), empty)
	out, err := coalesce.Run(context.Background(), u)
	require.NoError(t, err)
	require.Len(t, out.Maps, 1)
}
