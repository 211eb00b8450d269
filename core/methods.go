package core

import "github.com/katalvlaran/polyhedra/intlinalg"

// GaussEliminate reduces Eqs to echelon form in place, dropping any
// equality that turns out to be a linear combination of the others
// (§3: "equalities are in echelon form after Gauss"). It is idempotent.
func (b *BasicMap) GaussEliminate() {
	b.Eqs = intlinalg.RowEchelon(b.Eqs)
}

// MarkFinal sets Final; it leaves the NoImplicit and NoRedundant flags
// unchanged.
func (b *BasicMap) MarkFinal() {
	b.Final = true
}

// IsUniverse reports whether the map carries no constraints at all (the
// full space, modulo any divs).
func (b *BasicMap) IsUniverse() bool {
	return len(b.Eqs) == 0 && len(b.Ineqs) == 0
}

// NumConstraints returns the total count of equalities and inequalities,
// used by the coalesce driver's termination argument (§5: each successful
// merge strictly decreases the number of basic polyhedra, not this count,
// but callers often want it for diagnostics/benchmarks).
func (b *BasicMap) NumConstraints() int {
	return len(b.Eqs) + len(b.Ineqs)
}
