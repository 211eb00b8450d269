package core

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/intlinalg"
)

// Space describes how a BasicMap's dimensions are partitioned. Every row
// (equality, inequality or div expression) is laid out as
//
//	[c0, params(0..NParam), in(0..NIn), out(0..NOut), divs(0..len(Divs))]
//
// so a row's fixed-prefix length is 1+NParam+NIn+NOut; any columns beyond
// that index into the BasicMap's own Divs slice.
type Space struct {
	NParam int
	NIn    int
	NOut   int
}

// FixedDim returns 1 (the constant term) plus the parameter, in and out
// counts — the row length before any div columns.
func (s Space) FixedDim() int {
	return 1 + s.NParam + s.NIn + s.NOut
}

// Div is an existentially-quantified local variable definition:
//
//	x = floor((e0 + sum ei*xi) / Denom)
//
// Denom == 0 marks the div as "unknown" (its value is not pinned by this
// expression; some algorithms must treat it conservatively).
type Div struct {
	Denom *big.Int
	Expr  intlinalg.Vector
}

// Clone deep-copies a Div.
func (d Div) Clone() Div {
	return Div{Denom: new(big.Int).Set(d.Denom), Expr: d.Expr.Clone()}
}

// Unknown reports whether the div's value is unconstrained by Expr.
func (d Div) Unknown() bool { return d.Denom.Sign() == 0 }

// BasicMap is a convex integer polyhedron: the conjunction of Eqs (each
// "row == 0") and Ineqs (each "row >= 0") over Space plus Divs.
//
// Flags mirror spec §3: Final marks a polyhedron that has been fused and
// re-normalized (no further in-place constraint edits expected); Rational
// relaxes integrality (used transiently by the wrapping engine, §4.2);
// NoImplicit/NoRedundant record whether implicit-equality detection and
// redundancy detection have already run, so the coalesce driver (§4.4)
// does not repeat them needlessly.
type BasicMap struct {
	Space Space
	Divs  []Div
	Eqs   []intlinalg.Vector
	Ineqs []intlinalg.Vector

	Final       bool
	Rational    bool
	NoImplicit  bool
	NoRedundant bool
}

// New constructs an empty BasicMap (the universe: no constraints) over
// the given space.
func New(space Space) *BasicMap {
	return &BasicMap{Space: space}
}

// NDiv returns the number of div columns.
func (b *BasicMap) NDiv() int { return len(b.Divs) }

// TotalDim returns the full row length: FixedDim plus one column per div.
func (b *BasicMap) TotalDim() int { return b.Space.FixedDim() + b.NDiv() }

// Clone deep-copies the basic map, including every row and div.
func (b *BasicMap) Clone() *BasicMap {
	out := &BasicMap{
		Space:       b.Space,
		Final:       b.Final,
		Rational:    b.Rational,
		NoImplicit:  b.NoImplicit,
		NoRedundant: b.NoRedundant,
	}
	out.Divs = make([]Div, len(b.Divs))
	for i, d := range b.Divs {
		out.Divs[i] = d.Clone()
	}
	out.Eqs = cloneRows(b.Eqs)
	out.Ineqs = cloneRows(b.Ineqs)
	return out
}

func cloneRows(rows []intlinalg.Vector) []intlinalg.Vector {
	out := make([]intlinalg.Vector, len(rows))
	for i, r := range rows {
		out[i] = r.Clone()
	}
	return out
}

// AddEquality appends row (length must equal TotalDim) as a new equality.
func (b *BasicMap) AddEquality(row intlinalg.Vector) error {
	if len(row) != b.TotalDim() {
		return ErrDimMismatch
	}
	b.Eqs = append(b.Eqs, row.Clone())
	b.NoImplicit, b.NoRedundant = false, false
	return nil
}

// AddInequality appends row (length must equal TotalDim) as a new
// inequality.
func (b *BasicMap) AddInequality(row intlinalg.Vector) error {
	if len(row) != b.TotalDim() {
		return ErrDimMismatch
	}
	b.Ineqs = append(b.Ineqs, row.Clone())
	b.NoRedundant = false
	return nil
}

// AddDiv appends a div definition and returns its column index.
func (b *BasicMap) AddDiv(d Div) int {
	b.Divs = append(b.Divs, d.Clone())
	return len(b.Divs) - 1
}
