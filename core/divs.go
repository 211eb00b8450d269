package core

import "math/big"

// SortDivs reorders Divs into a canonical order (by Denom then Expr,
// lexicographically) while preserving the "divs reference only earlier
// divs" invariant, remapping every row and later div expression to match.
//
// This mirrors isl_basic_map_sort_divs: the coalesce driver (§4.4) must
// compare two basic maps' div sets for equality up to reordering, and a
// canonical order makes that comparison a plain slice-equality check
// rather than a combinatorial search (supplemented from original_source/,
// see SPEC_FULL.md).
func (b *BasicMap) SortDivs() {
	n := len(b.Divs)
	fixed := b.Space.FixedDim()
	for i := 1; i < n; i++ {
		for j := i; j > 0 && canSwapAdjacentDivs(b, j-1) && divLess(b.Divs[j], b.Divs[j-1]); j-- {
			b.swapAdjacentDivCols(fixed, j-1)
		}
	}
}

// canSwapAdjacentDivs reports whether div idx+1 can move before div idx
// without breaking the "references only earlier divs" invariant: div idx
// never references idx+1 (topological order guarantees that already), so
// the only question is whether div idx+1 references div idx.
func canSwapAdjacentDivs(b *BasicMap, idx int) bool {
	col := b.Space.FixedDim() + idx
	return b.Divs[idx+1].Expr[col].Sign() == 0
}

func divLess(a, c Div) bool {
	if cmp := a.Denom.Cmp(c.Denom); cmp != 0 {
		return cmp < 0
	}
	n := len(a.Expr)
	if len(c.Expr) < n {
		n = len(c.Expr)
	}
	for i := 0; i < n; i++ {
		if cmp := a.Expr[i].Cmp(c.Expr[i]); cmp != 0 {
			return cmp < 0
		}
	}
	return len(a.Expr) < len(c.Expr)
}

// swapAdjacentDivCols exchanges div columns (fixed+idx) and (fixed+idx+1)
// across every row of the map (equalities, inequalities and every div's
// own expression), and swaps the Divs entries themselves.
func (b *BasicMap) swapAdjacentDivCols(fixed, idx int) {
	c1, c2 := fixed+idx, fixed+idx+1
	swap := func(row []*big.Int) { row[c1], row[c2] = row[c2], row[c1] }
	for _, r := range b.Eqs {
		swap(r)
	}
	for _, r := range b.Ineqs {
		swap(r)
	}
	for _, d := range b.Divs {
		if c2 < len(d.Expr) {
			swap(d.Expr)
		}
	}
	b.Divs[idx], b.Divs[idx+1] = b.Divs[idx+1], b.Divs[idx]
}

// SameDivsAs reports whether b and other have identical div sequences
// (same length, same Denom/Expr per position) once both have been sorted
// via SortDivs. Used by the coalesce driver (§4.4) to decide whether a
// pair-combine attempt is even meaningful for maps with differing divs.
func (b *BasicMap) SameDivsAs(other *BasicMap) bool {
	if len(b.Divs) != len(other.Divs) {
		return false
	}
	for i := range b.Divs {
		if b.Divs[i].Denom.Cmp(other.Divs[i].Denom) != 0 {
			return false
		}
		if !b.Divs[i].Expr.Equal(other.Divs[i].Expr) {
			return false
		}
	}
	return true
}

// DivsSubsetOf reports whether b's (sorted) div sequence is a prefix of
// other's, i.e. b's existentials are a subset of other's after expansion.
// Per §4.4, pair-combining across differing div sets is only attempted
// when one side's divs are such a prefix of the other's.
func (b *BasicMap) DivsSubsetOf(other *BasicMap) bool {
	if len(b.Divs) > len(other.Divs) {
		return false
	}
	for i := range b.Divs {
		if b.Divs[i].Denom.Cmp(other.Divs[i].Denom) != 0 {
			return false
		}
		if !b.Divs[i].Expr.Equal(other.Divs[i].Expr) {
			return false
		}
	}
	return true
}
