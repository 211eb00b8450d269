package status

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/tableau"
)

// EqStatus is the pair of classifications an equality row receives: Pos
// for the row itself, Neg for its negation (§4.1 — "the oracle is applied
// twice").
type EqStatus struct {
	Pos, Neg tableau.Status
}

// Satisfied reports whether both directions are valid, i.e. the equality
// is implied by the tableau (Valid/redundant are folded together, so
// Valid is the only satisfied outcome — see tableau.Status).
func (s EqStatus) Satisfied() bool {
	return s.Pos == tableau.Valid && s.Neg == tableau.Valid
}

// Classification is the full per-row classification of one basic map's
// own constraints against a (generally different) tableau.
type Classification struct {
	Eq   []EqStatus
	Ineq []tableau.Status
}

// AnySeparate reports whether any row classified as Separate — the
// signal that, per §4.3, the pair combiner must abort the merge attempt.
func (c Classification) AnySeparate() bool {
	for _, e := range c.Eq {
		if e.Pos == tableau.Separate || e.Neg == tableau.Separate {
			return true
		}
	}
	for _, s := range c.Ineq {
		if s == tableau.Separate {
			return true
		}
	}
	return false
}

// AllSatisfied reports whether every row is Valid — the subsumption test
// of §4.3 rule 1 ("every non-redundant constraint of i is valid on j").
func (c Classification) AllSatisfied() bool {
	for _, e := range c.Eq {
		if !e.Satisfied() {
			return false
		}
	}
	for _, s := range c.Ineq {
		if s != tableau.Valid {
			return false
		}
	}
	return true
}

// BuildTableau constructs a fresh tableau from bm's own constraints,
// suitable as the classification target for another map's rows.
func BuildTableau(bm *core.BasicMap) (*tableau.Tableau, error) {
	tb := tableau.New(bm.TotalDim() - 1)
	if bm.Rational {
		tb.MarkRational()
	}
	for _, row := range bm.Eqs {
		if err := tb.AddEquality(row); err != nil {
			return nil, err
		}
	}
	for _, row := range bm.Ineqs {
		if err := tb.AddInequality(row); err != nil {
			return nil, err
		}
	}
	return tb, nil
}

// Classify classifies src's own equality and inequality rows against tb,
// the tableau of some (generally other) basic map.
func Classify(src *core.BasicMap, tb *tableau.Tableau) (Classification, error) {
	out := Classification{
		Eq:   make([]EqStatus, len(src.Eqs)),
		Ineq: make([]tableau.Status, len(src.Ineqs)),
	}
	for i, row := range src.Eqs {
		pos, err := tb.Classify(row)
		if err != nil {
			return Classification{}, err
		}
		neg, err := tb.Classify(negateRow(row))
		if err != nil {
			return Classification{}, err
		}
		out.Eq[i] = EqStatus{Pos: pos, Neg: neg}
	}
	for i, row := range src.Ineqs {
		st, err := tb.Classify(row)
		if err != nil {
			return Classification{}, err
		}
		out.Ineq[i] = st
	}
	return out, nil
}

// CrossClassify classifies a's rows against b's tableau and b's rows
// against a's tableau in one call — the shape every coalesce rule in
// §4.3 actually needs (eq_i/ineq_i and eq_j/ineq_j).
func CrossClassify(a, b *core.BasicMap) (aAgainstB, bAgainstA Classification, err error) {
	if a.TotalDim() != b.TotalDim() {
		return Classification{}, Classification{}, ErrSpaceMismatch
	}
	tbB, err := BuildTableau(b)
	if err != nil {
		return Classification{}, Classification{}, err
	}
	tbA, err := BuildTableau(a)
	if err != nil {
		return Classification{}, Classification{}, err
	}
	aAgainstB, err = Classify(a, tbB)
	if err != nil {
		return Classification{}, Classification{}, err
	}
	bAgainstA, err = Classify(b, tbA)
	if err != nil {
		return Classification{}, Classification{}, err
	}
	return aAgainstB, bAgainstA, nil
}

// negateRow flips "row >= 0" to "-row >= 0" — the other half of an
// equality's two constituent inequalities.
func negateRow(row []*big.Int) []*big.Int {
	out := make([]*big.Int, len(row))
	for i, c := range row {
		out[i] = new(big.Int).Neg(c)
	}
	return out
}
