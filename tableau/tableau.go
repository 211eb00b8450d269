package tableau

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
)

// SnapshotToken identifies a point in a Tableau's history that Rollback
// can return to. Tokens are only valid for the Tableau that produced them
// and must be rolled back in (at worst) LIFO order relative to later
// snapshots taken from the same tableau.
type SnapshotToken struct {
	neq, nineq int
}

// Tableau holds the rational relaxation of a conjunction of equalities and
// inequalities and answers Classify queries against it (§4.1). Rows are
// accumulated via AddEquality/AddInequality; nothing is ever removed
// except by Rollback to an earlier Snapshot.
type Tableau struct {
	nvar     int
	eqs      []ratRow
	ineqs    []ratRow
	rational bool
}

// New builds an empty tableau (the universe) over nvar free variables. row
// slices passed to AddEquality/AddInequality must have length nvar+1.
func New(nvar int) *Tableau {
	return &Tableau{nvar: nvar}
}

// MarkRational records that this tableau is being used for the rational
// relaxation of an otherwise-integer polyhedron (§4.2's wrapping engine
// temporarily drops integrality). It does not change how Classify
// computes — the simplex underneath is always exact-rational — it is
// informational state callers can inspect via IsRational.
func (t *Tableau) MarkRational() { t.rational = true }

// IsRational reports whether MarkRational has been called.
func (t *Tableau) IsRational() bool { return t.rational }

// AddEquality appends row ("row == 0") to the tableau.
func (t *Tableau) AddEquality(row []*big.Int) error {
	if len(row) != t.nvar+1 {
		return ErrDimMismatch
	}
	t.eqs = append(t.eqs, toRatRow(row))
	return nil
}

// AddInequality appends row ("row >= 0") to the tableau.
func (t *Tableau) AddInequality(row []*big.Int) error {
	if len(row) != t.nvar+1 {
		return ErrDimMismatch
	}
	t.ineqs = append(t.ineqs, toRatRow(row))
	return nil
}

// Snapshot records the tableau's current size so a later Rollback can
// discard everything added since.
func (t *Tableau) Snapshot() SnapshotToken {
	return SnapshotToken{neq: len(t.eqs), nineq: len(t.ineqs)}
}

// Rollback truncates the tableau back to the state captured by tok.
func (t *Tableau) Rollback(tok SnapshotToken) error {
	if tok.neq > len(t.eqs) || tok.nineq > len(t.ineqs) {
		return ErrNoSnapshot
	}
	t.eqs = t.eqs[:tok.neq]
	t.ineqs = t.ineqs[:tok.nineq]
	return nil
}

func (t *Tableau) engine() *lpEngine {
	return &lpEngine{nvar: t.nvar, eqs: t.eqs, ineqs: t.ineqs}
}

// IsEmpty reports whether the tableau's feasible region is empty, by
// running the feasibility (phase-1) half of optimize against the zero
// objective.
func (t *Tableau) IsEmpty() (bool, error) {
	zero := make(ratRow, t.nvar+1)
	for i := range zero {
		zero[i] = new(big.Rat)
	}
	res, err := t.engine().optimize(zero, true)
	if err != nil {
		return false, err
	}
	return res.Infeasible, nil
}

// Optimize returns the optimal value of row (plus a witnessing point, in
// the tableau's own nvar variables) over t's feasible region, and reports
// whether the region is infeasible or the objective unbounded in the
// requested direction. Used by the wrapping engine (§4.2) to locate the
// vertex where a bound row is most violated.
func (t *Tableau) Optimize(row []*big.Int, maximize bool) (value *big.Rat, point []*big.Rat, unbounded, infeasible bool, err error) {
	if len(row) != t.nvar+1 {
		return nil, nil, false, false, ErrDimMismatch
	}
	res, err := t.engine().optimize(toRatRow(row), maximize)
	if err != nil {
		return nil, nil, false, false, err
	}
	return res.Value, res.Point, res.Unbounded, res.Infeasible, nil
}

// Classify answers which of Status's five outcomes row (length nvar+1)
// falls into relative to the tableau's current feasible region, by
// solving for the row's minimum and maximum value over that region. row
// is assumed primitive (its integer coefficients share no common factor);
// Classify does not re-normalize it.
//
// An empty tableau classifies every row as Valid: an empty region
// satisfies every constraint vacuously, and callers (status, wrap) must
// special-case emptiness themselves before it ever reaches a merge rule.
func (t *Tableau) Classify(row []*big.Int) (Status, error) {
	if len(row) != t.nvar+1 {
		return Valid, ErrDimMismatch
	}
	obj := toRatRow(row)
	eng := t.engine()

	minRes, err := eng.optimize(obj, false)
	if err != nil {
		return Valid, err
	}
	if minRes.Infeasible {
		return Valid, nil
	}
	maxRes, err := eng.optimize(obj, true)
	if err != nil {
		return Valid, err
	}
	if maxRes.Infeasible {
		// Feasibility is a property of the region alone, independent of
		// which objective we optimize; minRes and maxRes disagreeing
		// about it means the simplex engine has a bug.
		return Valid, core.ErrInternal
	}

	negOne := big.NewRat(-1, 1)
	valminNegInf := minRes.Unbounded
	valmaxPosInf := maxRes.Unbounded

	if !valminNegInf && minRes.Value.Sign() >= 0 {
		return Valid, nil
	}
	maxNeg := !valmaxPosInf && maxRes.Value.Sign() < 0
	if maxNeg {
		// Adjacency is a property of the near side alone (§4.1's
		// adj_ineq: "the near side of the other polyhedron sits at
		// distance 1"): the far side (min) may sit at any more-negative
		// value, bounded or not. Only when the whole region is pinned
		// to exactly -1 (min==max==-1) is the tested facet itself an
		// equality face rather than an inequality one.
		if maxRes.Value.Cmp(negOne) == 0 {
			if !valminNegInf && minRes.Value.Cmp(negOne) == 0 {
				return AdjEq, nil
			}
			return AdjIneq, nil
		}
		return Separate, nil
	}
	// Some point of the region satisfies row >= 0 and (since we are past
	// the minRes.Value.Sign() >= 0 check above) some other point
	// violates it: the region straddles the hyperplane, a Cut regardless
	// of how close the violating side comes to 0.
	return Cut, nil
}
