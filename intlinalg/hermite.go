package intlinalg

import "math/big"

// RowEchelon reduces rows to echelon form using fraction-free (Bareiss-style)
// integer row operations: the leading nonzero column of each surviving row
// strictly increases, and rows that reduce to all-zero (linear combinations
// of earlier rows) are dropped. This is the "Gauss" half of the spec's
// row-reduction contract (§3: "equalities are in echelon form after Gauss").
//
// The input rows are not mutated; RowEchelon returns a new slice.
func RowEchelon(rows []Vector) []Vector {
	if len(rows) == 0 {
		return nil
	}
	n := len(rows[0])
	work := make([]Vector, len(rows))
	for i, r := range rows {
		work[i] = r.Clone()
	}

	pivotRow := 0
	for col := 0; col < n && pivotRow < len(work); col++ {
		sel := -1
		for r := pivotRow; r < len(work); r++ {
			if work[r][col].Sign() != 0 {
				sel = r
				break
			}
		}
		if sel == -1 {
			continue
		}
		work[pivotRow], work[sel] = work[sel], work[pivotRow]

		piv := work[pivotRow][col]
		for r := 0; r < len(work); r++ {
			if r == pivotRow || work[r][col].Sign() == 0 {
				continue
			}
			a := work[r][col]
			newRow := make(Vector, n)
			t1, t2 := new(big.Int), new(big.Int)
			for c := 0; c < n; c++ {
				t1.Mul(piv, work[r][c])
				t2.Mul(a, work[pivotRow][c])
				newRow[c] = new(big.Int).Sub(t1, t2)
			}
			work[r] = newRow.Primitive(0)
		}
		pivotRow++
	}

	out := make([]Vector, 0, pivotRow)
	for _, r := range work {
		if !r.IsZero() {
			out = append(out, r)
		}
	}
	return out
}

// unimodular2x2 returns (x, y, p, q) such that x*a + y*b = gcd(a,b) and the
// matrix [[x y][p q]] has determinant 1, i.e. p = -b/g, q = a/g. Callers
// guarantee a and b are not both zero.
func unimodular2x2(a, b *big.Int) (x, y, p, q, g *big.Int) {
	g = new(big.Int)
	x, y = new(big.Int), new(big.Int)
	g.GCD(x, y, a, b)
	p = new(big.Int).Div(new(big.Int).Neg(b), g)
	q = new(big.Int).Div(a, g)
	return x, y, p, q, g
}

// clearRow eliminates every entry of row `row` in columns [from, cols) of M
// except a single pivot placed at column `from`, applying the same column
// operations to U and the inverse row operations to Uinv so that, throughout,
// M == Sorig*U and Uinv == U^-1 remain invariant. It reports the pivot
// column (always `from` on success) and whether a nonzero pivot was found.
func clearRow(M, U, Uinv *Matrix, row, from int) (int, bool) {
	cols := M.Cols()
	for {
		nz := make([]int, 0, 2)
		for j := from; j < cols; j++ {
			if M.At(row, j).Sign() != 0 {
				nz = append(nz, j)
				if len(nz) == 2 {
					break
				}
			}
		}
		switch len(nz) {
		case 0:
			return -1, false
		case 1:
			j := nz[0]
			if j != from {
				M.swapCols(from, j)
				U.swapCols(from, j)
				Uinv.swapRows(from, j)
			}
			if M.At(row, from).Sign() < 0 {
				M.negateCol(from)
				U.negateCol(from)
				Uinv.negateRow(from)
			}
			return from, true
		default:
			j1, j2 := nz[0], nz[1]
			a, b := M.At(row, j1), M.At(row, j2)
			x, y, p, q, _ := unimodular2x2(a, b)
			M.combineCols(j1, j2, x, y, p, q)
			U.combineCols(j1, j2, x, y, p, q)
			// The column transform [[x p][y q]] has determinant 1, so its
			// inverse is [[q -p][-y x]]; applying that inverse to Uinv's
			// rows j1, j2 keeps Uinv == U^-1.
			negY := new(big.Int).Neg(y)
			negP := new(big.Int).Neg(p)
			Uinv.combineRows(j1, j2, q, negP, negY, x)
		}
	}
}

// HermiteBasis computes a unimodular nvar x nvar change of basis from the
// rows of S (each of length nvar): a matrix U and its exact integer inverse
// Uinv, together with rank = rank(S), such that S*U has nonzero entries
// confined to its first `rank` columns.
//
// cmap/cinv, as consumed by depgraph.Node, are derived from U and Uinv (see
// depgraph.Node.RecomputeBasis): cmap = transpose(Uinv), cinv = transpose(U).
// With that definition, c = cmap*t ranges over exactly the row space of S as
// t ranges over vectors supported on the first `rank` entries — which is
// the property schedrow's triviality check relies on.
func HermiteBasis(S *Matrix) (U, Uinv *Matrix, rank int, err error) {
	nvar := S.Cols()
	M := S.Clone()
	U = Identity(nvar)
	Uinv = Identity(nvar)

	pivCol := 0
	for row := 0; row < M.Rows() && pivCol < nvar; row++ {
		if _, ok := clearRow(M, U, Uinv, row, pivCol); ok {
			pivCol++
		}
	}
	return U, Uinv, pivCol, nil
}

// Invert returns the exact integer inverse of the square unimodular matrix
// m, or ErrSingular if m's determinant is not +-1. It is implemented via
// the same column-Hermite machinery as HermiteBasis, generalized to
// arbitrary square m rather than just the schedule matrix.
func Invert(m *Matrix) (*Matrix, error) {
	if m.Rows() != m.Cols() {
		return nil, ErrNotSquare
	}
	n := m.Rows()
	U, _, rank, _ := HermiteBasis(m)
	if rank != n {
		return nil, ErrSingular
	}
	// S*U = H must be (a permutation of) the identity for S unimodular;
	// verify and, if so, Sinv = U*Hinv where H is a signed permutation.
	H, err := m.Mul(U)
	if err != nil {
		return nil, err
	}
	Hinv := NewMatrix(n, n)
	for j := 0; j < n; j++ {
		pivot := -1
		for i := 0; i < n; i++ {
			if H.At(i, j).Sign() != 0 {
				pivot = i
				break
			}
		}
		if pivot == -1 {
			return nil, ErrSingular
		}
		v := H.At(pivot, j)
		if v.CmpAbs(big.NewInt(1)) != 0 {
			return nil, ErrSingular
		}
		inv := big.NewInt(1)
		if v.Sign() < 0 {
			inv.SetInt64(-1)
		}
		Hinv.Set(j, pivot, inv)
	}
	return U.Mul(Hinv)
}
