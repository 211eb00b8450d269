package tableau

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
)

// ratRow is a constraint or objective row "c0 + sum ci*xi", laid out as
// [c0, c1, ..., cn] over big.Rat — the rational relaxation of a core row.
type ratRow []*big.Rat

func toRatRow(v []*big.Int) ratRow {
	out := make(ratRow, len(v))
	for i, c := range v {
		out[i] = new(big.Rat).SetInt(c)
	}
	return out
}

func negRat(r *big.Rat) *big.Rat { return new(big.Rat).Neg(r) }

// optResult is the outcome of optimizing one linear objective over a
// tableau's feasible region.
type optResult struct {
	Infeasible bool
	Unbounded  bool
	Value      *big.Rat // valid only when !Infeasible && !Unbounded
	Point      []*big.Rat // length nvar; a witnessing point, when optimal
}

// lpEngine is a two-phase primal simplex over exact rationals. Free
// variables are split as x = y+ - y- (both >= 0); every row, equality or
// inequality alike, gets its own artificial variable so the phase-1 basis
// is always the trivial identity, regardless of how the row's sign had to
// be flipped to make its right-hand side non-negative.
type lpEngine struct {
	nvar  int
	eqs   []ratRow
	ineqs []ratRow
}

// optimize returns the maximum (or minimum) of obj's value (obj[0] +
// sum obj[i]*x[i-1]) over the feasible region described by e.eqs and
// e.ineqs. obj must have length nvar+1.
func (e *lpEngine) optimize(obj ratRow, maximize bool) (optResult, error) {
	nvar := e.nvar
	nEq, nIneq := len(e.eqs), len(e.ineqs)
	rows := nEq + nIneq
	nPair := 2 * nvar
	slackBase := nPair
	artBase := nPair + nIneq
	cols := artBase + rows

	A := make([][]*big.Rat, rows)
	b := make([]*big.Rat, rows)
	basis := make([]int, rows)

	buildRow := func(r int, row ratRow, isIneq bool, ineqIdx int) {
		coeffs := make([]*big.Rat, cols)
		for j := range coeffs {
			coeffs[j] = new(big.Rat)
		}
		for j := 1; j <= nvar; j++ {
			c := row[j]
			coeffs[2*(j-1)] = new(big.Rat).Set(c)
			coeffs[2*(j-1)+1] = negRat(c)
		}
		rhs := negRat(row[0])
		if isIneq {
			coeffs[slackBase+ineqIdx] = big.NewRat(-1, 1)
		}
		if rhs.Sign() < 0 {
			for j := range coeffs {
				coeffs[j].Neg(coeffs[j])
			}
			rhs.Neg(rhs)
		}
		coeffs[artBase+r] = big.NewRat(1, 1)
		A[r] = coeffs
		b[r] = rhs
		basis[r] = artBase + r
	}
	for i, row := range e.eqs {
		buildRow(i, row, false, 0)
	}
	for k, row := range e.ineqs {
		buildRow(nEq+k, row, true, k)
	}

	// Phase 1: minimize sum of artificials, i.e. maximize -sum artificials.
	cost1 := make(ratRow, cols)
	for j := range cost1 {
		cost1[j] = new(big.Rat)
	}
	for r := 0; r < rows; r++ {
		cost1[artBase+r] = big.NewRat(-1, 1)
	}
	excludeNone := make([]bool, cols)
	basis, done, err := simplexRun(A, b, basis, cost1, excludeNone)
	if err != nil {
		return optResult{}, err
	}
	if done == simplexUnbounded {
		// -sum(artificials) unbounded above is impossible since artificials
		// are bounded below by 0 and the region they certify is auxiliary;
		// treat as an internal invariant failure.
		return optResult{}, core.ErrInternal
	}
	phase1Val := new(big.Rat)
	for i, bc := range basis {
		phase1Val.Add(phase1Val, new(big.Rat).Mul(cost1[bc], b[i]))
	}
	if phase1Val.Sign() != 0 {
		return optResult{Infeasible: true}, nil
	}

	// Phase 2: optimize the real objective; artificial columns are frozen
	// out of consideration (their cost is 0 and they're barred from
	// re-entering the basis).
	cost2 := make(ratRow, cols)
	for j := range cost2 {
		cost2[j] = new(big.Rat)
	}
	for j := 1; j <= nvar; j++ {
		c := obj[j]
		if !maximize {
			c = negRat(c)
		}
		cost2[2*(j-1)] = new(big.Rat).Set(c)
		cost2[2*(j-1)+1] = negRat(c)
	}
	exclude := make([]bool, cols)
	for r := range exclude[artBase:] {
		exclude[artBase+r] = true
	}
	basis, done, err = simplexRun(A, b, basis, cost2, exclude)
	if err != nil {
		return optResult{}, err
	}
	if done == simplexUnbounded {
		return optResult{Unbounded: true}, nil
	}
	val := new(big.Rat)
	for i, bc := range basis {
		val.Add(val, new(big.Rat).Mul(cost2[bc], b[i]))
	}
	if !maximize {
		val.Neg(val)
	}
	val.Add(val, obj[0])

	basicValue := make([]*big.Rat, cols)
	for j := range basicValue {
		basicValue[j] = new(big.Rat)
	}
	for i, bc := range basis {
		basicValue[bc] = b[i]
	}
	point := make([]*big.Rat, nvar)
	for j := 0; j < nvar; j++ {
		point[j] = new(big.Rat).Sub(basicValue[2*j], basicValue[2*j+1])
	}
	return optResult{Value: val, Point: point}, nil
}

type simplexOutcome int

const (
	simplexOptimal simplexOutcome = iota
	simplexUnbounded
)

// simplexRun drives primal simplex (Bland's rule, no cycling) to
// maximize cost^T x starting from the feasible basis described by A, b,
// basis. excludeFromEntering marks columns (typically artificials after
// phase 1) that may never be chosen as the entering variable.
func simplexRun(A [][]*big.Rat, b []*big.Rat, basis []int, cost ratRow, excludeFromEntering []bool) ([]int, simplexOutcome, error) {
	rows := len(b)
	cols := len(cost)

	z := make(ratRow, cols)
	for j := range cost {
		z[j] = new(big.Rat).Set(cost[j])
	}
	for i, bc := range basis {
		factor := new(big.Rat).Set(z[bc])
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			z[j].Sub(z[j], new(big.Rat).Mul(factor, A[i][j]))
		}
	}

	maxIter := (rows+cols)*(rows+cols)*4 + 64
	for iter := 0; ; iter++ {
		if iter > maxIter {
			return nil, simplexOptimal, core.ErrInternal
		}
		enter := -1
		for j := 0; j < cols; j++ {
			if excludeFromEntering[j] {
				continue
			}
			if z[j].Sign() > 0 {
				enter = j
				break
			}
		}
		if enter == -1 {
			return basis, simplexOptimal, nil
		}
		leave := -1
		var bestRatio *big.Rat
		for i := 0; i < rows; i++ {
			if A[i][enter].Sign() <= 0 {
				continue
			}
			ratio := new(big.Rat).Quo(b[i], A[i][enter])
			if leave == -1 || ratio.Cmp(bestRatio) < 0 ||
				(ratio.Cmp(bestRatio) == 0 && basis[i] < basis[leave]) {
				leave = i
				bestRatio = ratio
			}
		}
		if leave == -1 {
			return nil, simplexUnbounded, nil
		}
		pivot(A, b, z, leave, enter)
		basis[leave] = enter
	}
}

func pivot(A [][]*big.Rat, b []*big.Rat, z ratRow, row, col int) {
	rows := len(A)
	cols := len(z)
	piv := new(big.Rat).Set(A[row][col])
	inv := new(big.Rat).Inv(piv)
	for j := 0; j < cols; j++ {
		A[row][j].Mul(A[row][j], inv)
	}
	b[row].Mul(b[row], inv)
	for i := 0; i < rows; i++ {
		if i == row {
			continue
		}
		factor := new(big.Rat).Set(A[i][col])
		if factor.Sign() == 0 {
			continue
		}
		for j := 0; j < cols; j++ {
			A[i][j].Sub(A[i][j], new(big.Rat).Mul(factor, A[row][j]))
		}
		b[i].Sub(b[i], new(big.Rat).Mul(factor, b[row]))
	}
	zf := new(big.Rat).Set(z[col])
	if zf.Sign() != 0 {
		for j := 0; j < cols; j++ {
			z[j].Sub(z[j], new(big.Rat).Mul(zf, A[row][j]))
		}
	}
}
