package coalesce

import (
	"errors"
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/status"
	"github.com/katalvlaran/polyhedra/tableau"
	"github.com/katalvlaran/polyhedra/wrap"
)

// TryMerge attempts to fuse i and j into a single basic map following the
// ordered case analysis of §4.3, stopping at the first rule that applies.
// It returns ok=false (no error) when no rule fires — the pair simply
// cannot be coalesced right now, which is the common case during a
// driver pass, not a failure.
func TryMerge(i, j *core.BasicMap, opts ...Option) (*core.BasicMap, bool, error) {
	o := resolve(opts)
	if i.Space != j.Space || i.TotalDim() != j.TotalDim() {
		return nil, false, ErrSpaceMismatch
	}

	iVsJ, jVsI, err := status.CrossClassify(i, j)
	if err != nil {
		return nil, false, err
	}
	if iVsJ.AnySeparate() || jVsI.AnySeparate() {
		return nil, false, nil
	}

	// Rule 1: subsumption.
	if iVsJ.AllSatisfied() {
		return finalize(i.Clone(), i, j), true, nil
	}
	if jVsI.AllSatisfied() {
		return finalize(j.Clone(), j, i), true, nil
	}

	// Rule 2: equality adjacent to equality.
	if _, rowI, ok := findAdjEq(iVsJ.Eq, i.Eqs); ok {
		if _, _, ok2 := findAdjEq(jVsI.Eq, j.Eqs); ok2 {
			if merged, ok3, err := wrapFallback(i, j, rowI, iVsJ, jVsI, o); err != nil {
				return nil, false, err
			} else if ok3 {
				return merged, true, nil
			}
		}
	}

	// Rule 3: equality adjacent to inequality.
	if eqIdx, rowI, ok := findAdjIneqInEq(iVsJ.Eq, i.Eqs); ok {
		if merged, ok2, err := relaxAndContain(i, j, eqIdx, rowI); err != nil {
			return nil, false, err
		} else if ok2 {
			return merged, true, nil
		}
		if merged, ok2, err := wrapFallback(i, j, rowI, iVsJ, jVsI, o); err != nil {
			return nil, false, err
		} else if ok2 {
			return merged, true, nil
		}
	}
	if eqIdx, rowJ, ok := findAdjIneqInEq(jVsI.Eq, j.Eqs); ok {
		if merged, ok2, err := relaxAndContain(j, i, eqIdx, rowJ); err != nil {
			return nil, false, err
		} else if ok2 {
			return merged, true, nil
		}
		if merged, ok2, err := wrapFallback(j, i, rowJ, jVsI, iVsJ, o); err != nil {
			return nil, false, err
		} else if ok2 {
			return merged, true, nil
		}
	}

	idxIAdj := findAllAdjIneq(iVsJ.Ineq)
	idxJAdj := findAllAdjIneq(jVsI.Ineq)
	cutsI := findAllCuts(iVsJ.Ineq)
	cutsJ := findAllCuts(jVsI.Ineq)

	// Rule 4: only inequality-inequality adjacency.
	if len(idxIAdj) > 0 || len(idxJAdj) > 0 {
		if len(cutsI) == 0 && len(cutsJ) == 0 && len(idxIAdj) == 1 && len(idxJAdj) == 1 {
			return dropOpposingPair(i, j, idxIAdj[0], idxJAdj[0], iVsJ, jVsI), true, nil
		}
		if merged, ok, err := adjacentExtension(i, j, idxIAdj, idxJAdj); err != nil {
			return nil, false, err
		} else if ok {
			return merged, true, nil
		}
	}

	// Rule 5: only cuts.
	if len(idxIAdj) == 0 && len(idxJAdj) == 0 && (len(cutsI) > 0 || len(cutsJ) > 0) {
		if merged, ok, err := onlyCutsFuse(i, j, cutsI, cutsJ, iVsJ, jVsI); err != nil {
			return nil, false, err
		} else if ok {
			return merged, true, nil
		}
	}

	// Rule 6: wrap-in, integer polyhedra only.
	if !i.Rational && !j.Rational && !hasCutEq(iVsJ) && !hasCutEq(jVsI) {
		if merged, ok, err := wrapIn(i, j, cutsI, iVsJ, jVsI, o); err != nil {
			return nil, false, err
		} else if ok {
			return merged, true, nil
		}
		if merged, ok, err := wrapIn(j, i, cutsJ, jVsI, iVsJ, o); err != nil {
			return nil, false, err
		} else if ok {
			return merged, true, nil
		}
	}

	return nil, false, nil
}

func finalize(merged, keep, other *core.BasicMap) *core.BasicMap {
	merged.Rational = keep.Rational && other.Rational
	merged.GaussEliminate()
	merged.MarkFinal()
	return merged
}

func findAdjEq(eqStatus []status.EqStatus, rows []intlinalg.Vector) (int, intlinalg.Vector, bool) {
	for idx, st := range eqStatus {
		if st.Pos == tableau.AdjEq {
			return idx, rows[idx], true
		}
		if st.Neg == tableau.AdjEq {
			return idx, rows[idx].Negate(), true
		}
	}
	return -1, nil, false
}

func findAdjIneqInEq(eqStatus []status.EqStatus, rows []intlinalg.Vector) (int, intlinalg.Vector, bool) {
	for idx, st := range eqStatus {
		if st.Pos == tableau.AdjIneq {
			return idx, rows[idx], true
		}
		if st.Neg == tableau.AdjIneq {
			return idx, rows[idx].Negate(), true
		}
	}
	return -1, nil, false
}

func findAllAdjIneq(st []tableau.Status) []int {
	var out []int
	for idx, s := range st {
		if s == tableau.AdjIneq {
			out = append(out, idx)
		}
	}
	return out
}

func findAllCuts(st []tableau.Status) []int {
	var out []int
	for idx, s := range st {
		if s == tableau.Cut {
			out = append(out, idx)
		}
	}
	return out
}

func hasCutEq(cls status.Classification) bool {
	for _, e := range cls.Eq {
		if e.Pos == tableau.Cut || e.Neg == tableau.Cut {
			return true
		}
	}
	return false
}

// relaxAndContain relaxes owner's eqIdx'th equality (oriented as row) by
// one unit and checks whether other becomes entirely contained in the
// relaxed operand — §4.3 rule 3's containment test.
func relaxAndContain(owner, other *core.BasicMap, eqIdx int, row intlinalg.Vector) (*core.BasicMap, bool, error) {
	relaxed := owner.Clone()
	relaxed.Eqs = append(relaxed.Eqs[:eqIdx], relaxed.Eqs[eqIdx+1:]...)
	relaxedRow := row.Clone()
	relaxedRow[0] = new(big.Int).Add(relaxedRow[0], big.NewInt(1))
	if err := relaxed.AddInequality(relaxedRow); err != nil {
		return nil, false, err
	}
	tb, err := status.BuildTableau(relaxed)
	if err != nil {
		return nil, false, err
	}
	cls, err := status.Classify(other, tb)
	if err != nil {
		return nil, false, err
	}
	if !cls.AllSatisfied() {
		return nil, false, nil
	}
	relaxed.Rational = owner.Rational && other.Rational
	relaxed.GaussEliminate()
	relaxed.MarkFinal()
	return relaxed, true, nil
}

// dropOpposingPair implements the simple branch of rule 4: with exactly
// one adjacent-inequality pair and no cuts on either side, the two
// opposing facets coincide and both are dropped.
func dropOpposingPair(i, j *core.BasicMap, idxI, idxJ int, iVsJ, jVsI status.Classification) *core.BasicMap {
	merged := core.New(i.Space)
	merged.Divs = cloneDivs(i.Divs)
	for k, row := range i.Eqs {
		if iVsJ.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range i.Ineqs {
		if k != idxI {
			merged.AddInequality(row)
		}
	}
	for k, row := range j.Eqs {
		if jVsI.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range j.Ineqs {
		if k != idxJ {
			merged.AddInequality(row)
		}
	}
	merged.Rational = i.Rational && j.Rational
	merged.GaussEliminate()
	merged.MarkFinal()
	return merged
}

// adjacentExtension implements rule 4's fallback: replace the (single)
// adjacent inequality on one side by its strict opposite, add the other
// operand's valid inequalities, and check containment.
func adjacentExtension(i, j *core.BasicMap, idxIAdj, idxJAdj []int) (*core.BasicMap, bool, error) {
	try := func(owner, other *core.BasicMap, idx int) (*core.BasicMap, bool, error) {
		cand := owner.Clone()
		cand.Ineqs[idx] = cand.Ineqs[idx].Negate()
		tb, err := status.BuildTableau(cand)
		if err != nil {
			return nil, false, err
		}
		cls, err := status.Classify(other, tb)
		if err != nil {
			return nil, false, err
		}
		if !cls.AllSatisfied() {
			return nil, false, nil
		}
		for k, row := range other.Ineqs {
			if cls.Ineq[k] == tableau.Valid {
				if err := cand.AddInequality(row); err != nil {
					return nil, false, err
				}
			}
		}
		cand.Rational = owner.Rational && other.Rational
		cand.GaussEliminate()
		cand.MarkFinal()
		return cand, true, nil
	}
	if len(idxIAdj) == 1 {
		if merged, ok, err := try(i, j, idxIAdj[0]); err != nil || ok {
			return merged, ok, err
		}
	}
	if len(idxJAdj) == 1 {
		if merged, ok, err := try(j, i, idxJAdj[0]); err != nil || ok {
			return merged, ok, err
		}
	}
	return nil, false, nil
}

// onlyCutsFuse implements rule 5: for each cut of i, form its facet and
// check every cut of j is valid there; if so the union is exactly the
// valid-on-both rows of i and j (every cut drops out).
func onlyCutsFuse(i, j *core.BasicMap, cutsI, cutsJ []int, iVsJ, jVsI status.Classification) (*core.BasicMap, bool, error) {
	check := func(owner *core.BasicMap, idx int, other *core.BasicMap, otherCuts []int, otherVsOwner status.Classification) (bool, error) {
		facet := owner.Clone()
		row := facet.Ineqs[idx]
		facet.Ineqs = append(facet.Ineqs[:idx], facet.Ineqs[idx+1:]...)
		if err := facet.AddEquality(row); err != nil {
			return false, err
		}
		facet.Rational = true
		tb, err := status.BuildTableau(facet)
		if err != nil {
			return false, err
		}
		for _, ck := range otherCuts {
			st, err := tb.Classify(other.Ineqs[ck])
			if err != nil {
				return false, err
			}
			if st != tableau.Valid {
				return false, nil
			}
		}
		return true, nil
	}
	ok := false
	for _, k := range cutsI {
		sound, err := check(i, k, j, cutsJ, jVsI)
		if err != nil {
			return nil, false, err
		}
		if sound {
			ok = true
			break
		}
	}
	if !ok {
		for _, k := range cutsJ {
			sound, err := check(j, k, i, cutsI, iVsJ)
			if err != nil {
				return nil, false, err
			}
			if sound {
				ok = true
				break
			}
		}
	}
	if !ok {
		return nil, false, nil
	}
	merged := core.New(i.Space)
	merged.Divs = cloneDivs(i.Divs)
	for k, row := range i.Eqs {
		if iVsJ.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range i.Ineqs {
		if iVsJ.Ineq[k] == tableau.Valid {
			merged.AddInequality(row)
		}
	}
	for k, row := range j.Eqs {
		if jVsI.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range j.Ineqs {
		if jVsI.Ineq[k] == tableau.Valid {
			merged.AddInequality(row)
		}
	}
	merged.Rational = i.Rational && j.Rational
	merged.GaussEliminate()
	merged.MarkFinal()
	return merged, true, nil
}

// wrapIn implements rule 6: relax each cut inequality of host by one and
// test whether the relaxation is already implied by other; if so, the
// relaxed facet is the ridge to wrap across.
func wrapIn(host, other *core.BasicMap, cutsHost []int, hostVsOther, otherVsHost status.Classification, o options) (*core.BasicMap, bool, error) {
	tbOther, err := status.BuildTableau(other)
	if err != nil {
		return nil, false, err
	}
	for _, k := range cutsHost {
		relaxedRow := host.Ineqs[k].Clone()
		relaxedRow[0] = new(big.Int).Add(relaxedRow[0], big.NewInt(1))
		st, err := tbOther.Classify(relaxedRow)
		if err != nil {
			return nil, false, err
		}
		if st != tableau.Valid {
			continue
		}
		merged, ok, err := wrapFallback(host, other, relaxedRow, hostVsOther, otherVsHost, o)
		if err != nil {
			return nil, false, err
		}
		if ok {
			return merged, true, nil
		}
	}
	return nil, false, nil
}

// wrapFallback wraps bound across other and bound's negation across i,
// then keeps whatever from each side already held valid on the other.
// This is the shared wrapping terminal used by rules 2, 3 and 6.
func wrapFallback(i, j *core.BasicMap, bound intlinalg.Vector, iVsJ, jVsI status.Classification, o options) (*core.BasicMap, bool, error) {
	wrapJ, err := wrap.Wrap(bound, j, wrapOpts(o)...)
	if err != nil {
		if errors.Is(err, wrap.ErrPostCheckFailed) || errors.Is(err, wrap.ErrCoefficientCap) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if wrapJ.Unbounded {
		return nil, false, nil
	}
	wrapI, err := wrap.Wrap(bound.Negate(), i, wrapOpts(o)...)
	if err != nil {
		if errors.Is(err, wrap.ErrPostCheckFailed) || errors.Is(err, wrap.ErrCoefficientCap) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if wrapI.Unbounded {
		return nil, false, nil
	}

	merged := core.New(i.Space)
	merged.Divs = cloneDivs(i.Divs)
	for k, row := range i.Eqs {
		if iVsJ.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range i.Ineqs {
		if iVsJ.Ineq[k] == tableau.Valid {
			merged.AddInequality(row)
		}
	}
	for k, row := range j.Eqs {
		if jVsI.Eq[k].Satisfied() {
			merged.AddEquality(row)
		}
	}
	for k, row := range j.Ineqs {
		if jVsI.Ineq[k] == tableau.Valid {
			merged.AddInequality(row)
		}
	}
	for _, row := range wrapJ.Rows {
		if err := merged.AddInequality(row); err != nil {
			return nil, false, err
		}
	}
	for _, row := range wrapI.Rows {
		if err := merged.AddInequality(row); err != nil {
			return nil, false, err
		}
	}
	merged.Rational = i.Rational && j.Rational
	merged.GaussEliminate()
	merged.MarkFinal()
	return merged, true, nil
}

func wrapOpts(o options) []wrap.Option {
	if !o.boundedWrapping {
		return nil
	}
	return []wrap.Option{wrap.WithMaxCoefficient(o.maxCoeff)}
}

func cloneDivs(divs []core.Div) []core.Div {
	out := make([]core.Div, len(divs))
	for i, d := range divs {
		out[i] = d.Clone()
	}
	return out
}
