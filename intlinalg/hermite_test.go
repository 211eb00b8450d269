package intlinalg_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/stretchr/testify/require"
)

func TestHermiteBasisRankAndColumns(t *testing.T) {
	// Two independent rows over 3 variables.
	rows := []intlinalg.Vector{
		intlinalg.NewVector(2, 0, 1),
		intlinalg.NewVector(0, 3, 1),
	}
	S, err := intlinalg.RowsFromVectors(rows, 3)
	require.NoError(t, err)

	U, Uinv, rank, err := intlinalg.HermiteBasis(S)
	require.NoError(t, err)
	require.Equal(t, 2, rank)

	prod, err := U.Mul(Uinv)
	require.NoError(t, err)
	id := intlinalg.Identity(3)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, id.At(i, j), prod.At(i, j))
		}
	}
}

func TestHermiteBasisEmpty(t *testing.T) {
	S := intlinalg.NewMatrix(0, 2)
	_, _, rank, err := intlinalg.HermiteBasis(S)
	require.NoError(t, err)
	require.Equal(t, 0, rank)
}

func TestRowEchelonDropsDependentRow(t *testing.T) {
	rows := []intlinalg.Vector{
		intlinalg.NewVector(1, 2, 3),
		intlinalg.NewVector(2, 4, 6), // 2x the first row
	}
	out := intlinalg.RowEchelon(rows)
	require.Len(t, out, 1)
}

func TestVectorCombineAndDot(t *testing.T) {
	v := intlinalg.NewVector(1, 2, 3)
	w := intlinalg.NewVector(4, 5, 6)
	d, err := v.Dot(w)
	require.NoError(t, err)
	require.Equal(t, big.NewInt(32), d)

	c, err := intlinalg.Combine(big.NewInt(2), v, big.NewInt(-1), w)
	require.NoError(t, err)
	require.True(t, intlinalg.NewVector(-2, -1, 0).Equal(c), "got %v", c)
}
