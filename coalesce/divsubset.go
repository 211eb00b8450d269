package coalesce

import (
	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/status"
)

// subsumeAcrossDivs implements the §4.4 fallback for a pair whose div
// sets differ: if the smaller (sorted) div sequence is a prefix of the
// larger's, pad the smaller map's rows with zero columns for the extra
// divs and run a one-sided subsumption test: classify the larger map's
// rows against the padded smaller map's tableau, and keep the larger map
// when every row holds (the smaller map lies inside it). No wrapping rule is attempted across mismatched existentials
// — subsumption is the only rule that makes sense without reconciling
// the two div sets' definitions.
func subsumeAcrossDivs(a, b *core.BasicMap) (*core.BasicMap, bool, error) {
	small, big := a, b
	if len(small.Divs) > len(big.Divs) {
		small, big = big, small
	}
	if !small.DivsSubsetOf(big) {
		return nil, false, nil
	}

	padded := padDivColumns(small, len(big.Divs)-len(small.Divs))
	if padded != small {
		// small's divs are a prefix of big's, so big's div list describes
		// every column of the padded rows.
		padded.Divs = big.Divs
	}
	tb, err := status.BuildTableau(padded)
	if err != nil {
		return nil, false, err
	}
	cls, err := status.Classify(big, tb)
	if err != nil {
		return nil, false, err
	}
	if cls.AnySeparate() || !cls.AllSatisfied() {
		return nil, false, nil
	}
	return big, true, nil
}

// padDivColumns returns a clone of m with extra zero columns appended to
// every equality/inequality row, so its rows line up with a map that has
// extra (unused) div columns beyond m's own.
func padDivColumns(m *core.BasicMap, extra int) *core.BasicMap {
	if extra == 0 {
		return m
	}
	out := m.Clone()
	pad := func(row intlinalg.Vector) intlinalg.Vector {
		return append(row.Clone(), intlinalg.Zeros(extra)...)
	}
	for i := range out.Eqs {
		out.Eqs[i] = pad(out.Eqs[i])
	}
	for i := range out.Ineqs {
		out.Ineqs[i] = pad(out.Ineqs[i])
	}
	return out
}
