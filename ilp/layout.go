package ilp

import "github.com/katalvlaran/polyhedra/depgraph"

// Pair is the (negative, positive) offsets of one signed quantity's
// two non-negative LP variables; its signed value is Pos - Neg.
type Pair struct {
	Neg, Pos int
}

// NodeLayout is one node's slice of the LP variable space (§9 "LP
// variable layout"): a constant pair, NParam signed parameter pairs and
// NVar signed pairs for the node's real schedule coefficients. The LP
// solves directly for these real coefficients rather than for a
// whitened per-node basis; the node's Cmap/Cinv pair is consulted only
// afterward, by schedrow's triviality check (§4.7).
type NodeLayout struct {
	Const  Pair
	Params []Pair
	Vars   []Pair
}

// Layout assigns named, stable offsets to every LP variable (§9): the
// global slots first, then one NodeLayout per node in graph order.
//
// Spec §4.6 items 1 and 3 ("sum of parameter-coefficient pairs over all
// nodes" and "sum of all parameter pairs, for parametric mode") name the
// same accumulator from two angles; this layout collapses them into the
// single GlobalParamSum slot.
type Layout struct {
	NParam int

	GlobalParamSum Pair
	M0             int
	GlobalVarSum   Pair
	MParams        []Pair // one pair per parameter, the m_n distance-bound coefficients

	Nodes []NodeLayout

	Total int // total variable count; every LP over this layout has this many columns
}

// NewLayout lays out variables for nodes, all of which must share the
// same parameter count.
func NewLayout(nodes []*depgraph.Node) *Layout {
	nparam := 0
	if len(nodes) > 0 {
		nparam = nodes[0].NParam
	}
	l := &Layout{NParam: nparam}
	next := 0
	alloc := func() int { v := next; next++; return v }
	allocPair := func() Pair { return Pair{Neg: alloc(), Pos: alloc()} }

	l.GlobalParamSum = allocPair()
	l.M0 = alloc()
	l.GlobalVarSum = allocPair()
	l.MParams = make([]Pair, nparam)
	for i := range l.MParams {
		l.MParams[i] = allocPair()
	}

	l.Nodes = make([]NodeLayout, len(nodes))
	for i, n := range nodes {
		nl := NodeLayout{Const: allocPair()}
		nl.Params = make([]Pair, n.NParam)
		for j := range nl.Params {
			nl.Params[j] = allocPair()
		}
		nl.Vars = make([]Pair, n.NVar)
		for j := range nl.Vars {
			nl.Vars[j] = allocPair()
		}
		l.Nodes[i] = nl
	}
	l.Total = next
	return l
}

// Row returns a zero coefficient row of the layout's full width.
func (l *Layout) Row() []float64 {
	return make([]float64, l.Total)
}

// SetSigned writes coefficient coeff on the signed slot p: +coeff on
// p.Pos, -coeff on p.Neg, so that p.Pos-p.Neg contributes coeff*value
// to any linear form built from this row.
func SetSigned(row []float64, p Pair, coeff float64) {
	row[p.Pos] += coeff
	row[p.Neg] -= coeff
}
