package schedrow

import (
	"math"
	"math/big"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/intlinalg"
)

// readSigned rounds sol[p.Pos]-sol[p.Neg] to the nearest integer. Every
// schedule-coefficient column is marked integer in the LP (§4.6), so a
// solution from ilp.Solver is exact up to floating-point solve noise;
// rounding recovers the exact big.Int value.
func readSigned(sol []float64, p ilp.Pair) *big.Int {
	v := sol[p.Pos] - sol[p.Neg]
	return big.NewInt(int64(math.Round(v)))
}

// ReadRowCoeffs reads one node's (const, params, vars) coefficients out
// of an LP solution at nl's columns, laid out per depgraph.Node.RowWidth:
// [const, params(0..NParam), vars(0..NVar)].
func ReadRowCoeffs(nl ilp.NodeLayout, sol []float64) (intlinalg.Vector, error) {
	maxCol := nl.Const.Pos
	for _, p := range nl.Params {
		if p.Pos > maxCol {
			maxCol = p.Pos
		}
	}
	for _, p := range nl.Vars {
		if p.Pos > maxCol {
			maxCol = p.Pos
		}
	}
	if maxCol >= len(sol) {
		return nil, ErrSolutionWidth
	}

	out := make(intlinalg.Vector, 1+len(nl.Params)+len(nl.Vars))
	out[0] = readSigned(sol, nl.Const)
	for i, p := range nl.Params {
		out[1+i] = readSigned(sol, p)
	}
	base := 1 + len(nl.Params)
	for i, p := range nl.Vars {
		out[base+i] = readSigned(sol, p)
	}
	return out, nil
}

// IsTrivial reports whether varPart (a node's freshly read variable
// coefficients) is linearly dependent on the rows the node has already
// accumulated: compute t = Cinv*varPart and check every entry at index
// Rank or beyond is zero (§4.5, §4.7, §9's "linear independence" law).
func IsTrivial(n *depgraph.Node, varPart intlinalg.Vector) (bool, error) {
	t, err := n.Cinv.MulVec(varPart)
	if err != nil {
		return false, err
	}
	for i := n.Rank; i < len(t); i++ {
		if t[i].Sign() != 0 {
			return false, nil
		}
	}
	return true, nil
}

// ExtractRow builds node n's candidate next schedule row from an LP
// solution and classifies it as trivial or not, without appending it —
// callers gather every node's candidate row for a band before deciding
// (as a group) whether to accept them, per ExtractAll.
func ExtractRow(n *depgraph.Node, nl ilp.NodeLayout, sol []float64, band int, coincident bool) (depgraph.Row, bool, error) {
	coeffs, err := ReadRowCoeffs(nl, sol)
	if err != nil {
		return depgraph.Row{}, false, err
	}
	row := depgraph.Row{Coeffs: coeffs, Band: band, Coincident: coincident}
	trivial, err := IsTrivial(n, n.VarPart(row))
	if err != nil {
		return depgraph.Row{}, false, err
	}
	return row, trivial, nil
}

// ExtractAll runs ExtractRow for every node in nodes (nodes[i] paired
// with layout.Nodes[i] — callers must build layout from this same nodes
// slice, in this same order) and, if no node that required a non-trivial
// row got a trivial one, appends every row and recomputes every node's
// basis. It is all-or-nothing: on ErrTrivialRow no node is mutated, so
// the caller (scheduler.Driver) can fall back to per-component scheduling
// with the graph exactly as it stood before this attempt.
func ExtractAll(nodes []*depgraph.Node, layout *ilp.Layout, sol []float64, band int, coincident func(nodeID int) bool, nonTrivialRequired func(nodeID int) bool) error {
	rows := make([]depgraph.Row, len(nodes))
	trivials := make([]bool, len(nodes))
	for i, n := range nodes {
		row, trivial, err := ExtractRow(n, layout.Nodes[i], sol, band, coincident(n.ID))
		if err != nil {
			return err
		}
		rows[i] = row
		trivials[i] = trivial
	}
	for i, n := range nodes {
		if trivials[i] && nonTrivialRequired(n.ID) {
			return ErrTrivialRow
		}
	}
	for i, n := range nodes {
		if err := n.AddRow(rows[i]); err != nil {
			return err
		}
		if err := n.RecomputeBasis(); err != nil {
			return err
		}
	}
	return nil
}
