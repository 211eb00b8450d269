package ilp

import "github.com/katalvlaran/polyhedra/depgraph"

// BuildOptions carries the subset of scheduler options (§6) the LP
// builder consults.
type BuildOptions struct {
	Parametric      bool
	MaxCoefficient  int // -1 disables the cap
	MaxConstantTerm int // -1 disables the cap

	// UseCoincidence pins every non-local coincidence edge's distance to
	// zero, the same way a proximity edge marked Local is pinned (§4.8's
	// use_coincidence flag): the row being solved for is forced to be
	// coincident on every coincidence edge.
	UseCoincidence bool

	// ExcludeEdges omits the named edge IDs from the LP entirely. The
	// scheduler driver uses this to probe which validity edge is
	// responsible for an infeasible main LP (§4.7's "solver must report
	// conflicting inequalities"): rebuild without one cross-SCC validity
	// edge at a time and see whether that alone restores feasibility.
	ExcludeEdges map[int]bool
}

type instanceKind int

const (
	kindValidity instanceKind = iota
	kindProxUpper
	kindProxLower
	kindLocalPos
	kindLocalNeg
)

type farkasPlan struct {
	edge *depgraph.Edge
	kind instanceKind
	gens *Generators
}

type farkasInstance struct {
	lambdaStart, nLambda int
	muStart, nMu         int
}

// BuildMain constructs the main scheduling LP (§4.6): a Farkas equality
// system per validity/proximity instance, plus coefficient/constant
// caps and (unless Parametric) a pin of every parameter coefficient to
// zero. Integer columns are exactly the schedule-coefficient columns
// (every node's Const/Params/Vars pairs and the global M0/param-sum/
// var-sum/m-param slots); Farkas multipliers stay continuous.
func BuildMain(g *depgraph.Graph, layout *Layout, dc *DualCache, opts BuildOptions) *Problem {
	plans := planEdges(g, dc, opts)

	total := layout.Total
	instances := make([]farkasInstance, len(plans))
	for i, pl := range plans {
		instances[i] = farkasInstance{
			lambdaStart: total,
			nLambda:     len(pl.gens.Ineqs),
			muStart:     total + len(pl.gens.Ineqs),
			nMu:         len(pl.gens.Eqs),
		}
		total += len(pl.gens.Ineqs) + 2*len(pl.gens.Eqs)
	}

	p := NewProblem(total)
	p.MarkIntegerRange(0, layout.Total)

	for i, pl := range plans {
		emitPlan(p, layout, pl, instances[i])
	}

	addGlobalSums(p, layout)
	if !opts.Parametric {
		pinParamsZero(p, layout)
	}
	if opts.MaxCoefficient >= 0 {
		addCoefficientCap(p, layout, float64(opts.MaxCoefficient))
	}
	if opts.MaxConstantTerm >= 0 {
		addConstantCap(p, layout, float64(opts.MaxConstantTerm))
	}
	return p
}

// BuildCarry constructs the carry LP (§4.6): one non-negative slack
// e_i per dependence basic map with 0<=e_i<=1, replacing dist>=0 by
// dist>=e_i for every non-local, non-already-carried proximity/validity
// edge, maximizing sum(e_i).
func BuildCarry(g *depgraph.Graph, layout *Layout, dc *DualCache, opts BuildOptions) (*Problem, []int) {
	var carryPlans []farkasPlan
	for _, e := range g.Edges {
		if e.Dropped || e.Kind.Local || opts.ExcludeEdges[e.ID] {
			continue
		}
		if !e.Kind.Validity && !e.Kind.Proximity && !e.Kind.ConditionalValidity {
			continue
		}
		gens := dc.Get(e.Relation)
		carryPlans = append(carryPlans, farkasPlan{edge: e, kind: kindLocalPos, gens: gens})
	}

	total := layout.Total
	slackStart := total
	total += len(carryPlans) // one e_i per carried edge
	instances := make([]farkasInstance, len(carryPlans))
	for i, pl := range carryPlans {
		instances[i] = farkasInstance{
			lambdaStart: total,
			nLambda:     len(pl.gens.Ineqs),
			muStart:     total + len(pl.gens.Ineqs),
			nMu:         len(pl.gens.Eqs),
		}
		total += len(pl.gens.Ineqs) + 2*len(pl.gens.Eqs)
	}

	p := NewProblem(total)
	p.MarkIntegerRange(0, layout.Total)

	for i, pl := range carryPlans {
		eSlot := slackStart + i
		// dist >= e_i  <=>  Trow - e_i >= 0, i.e. target row gets -1 at eSlot.
		target := func(d int) []float64 {
			row := distRow(layout, pl.edge.Src, pl.edge.Dst, layout.NParam, d, total)
			row[eSlot] -= 1
			return row
		}
		emitFarkas(p, pl.gens, instances[i], target)
		// 0 <= e_i <= 1
		bound := p.Row()
		bound[eSlot] = 1
		p.AddLE(bound, 1)
	}
	if !opts.Parametric {
		pinParamsZero(p, layout)
	}
	slacks := make([]int, len(carryPlans))
	for i := range carryPlans {
		slacks[i] = slackStart + i
	}
	return p, slacks
}

func planEdges(g *depgraph.Graph, dc *DualCache, opts BuildOptions) []farkasPlan {
	var plans []farkasPlan
	for _, e := range g.Edges {
		if e.Dropped || opts.ExcludeEdges[e.ID] {
			continue
		}
		gens := dc.Get(e.Relation)
		if e.Kind.Validity || e.Kind.ConditionalValidity {
			plans = append(plans, farkasPlan{edge: e, kind: kindValidity, gens: gens})
		}
		if e.Kind.Proximity {
			if e.Kind.Local {
				plans = append(plans, farkasPlan{edge: e, kind: kindLocalPos, gens: gens})
				plans = append(plans, farkasPlan{edge: e, kind: kindLocalNeg, gens: gens})
			} else {
				plans = append(plans, farkasPlan{edge: e, kind: kindProxUpper, gens: gens})
				if !e.Kind.Validity {
					plans = append(plans, farkasPlan{edge: e, kind: kindProxLower, gens: gens})
				}
			}
		}
		if opts.UseCoincidence && e.Kind.Coincidence && !e.Kind.Local {
			plans = append(plans, farkasPlan{edge: e, kind: kindLocalPos, gens: gens})
			plans = append(plans, farkasPlan{edge: e, kind: kindLocalNeg, gens: gens})
		}
	}
	return plans
}

func emitPlan(p *Problem, layout *Layout, pl farkasPlan, inst farkasInstance) {
	target := func(d int) []float64 {
		trow := distRow(layout, pl.edge.Src, pl.edge.Dst, layout.NParam, d, p.NVar)
		switch pl.kind {
		case kindValidity, kindLocalPos:
			return trow
		case kindLocalNeg:
			return negateRow(trow)
		case kindProxUpper:
			return addMTerm(negateRow(trow), layout, d, 1)
		case kindProxLower:
			return addMTerm(trow, layout, d, 1)
		default:
			return trow
		}
	}
	emitFarkas(p, pl.gens, inst, target)
}

func emitFarkas(p *Problem, g *Generators, inst farkasInstance, target func(d int) []float64) {
	for d := 0; d < g.Width; d++ {
		row := target(d)
		for k := 0; k < inst.nLambda; k++ {
			row[inst.lambdaStart+k] -= g.Ineqs[k][d]
		}
		for j := 0; j < inst.nMu; j++ {
			row[inst.muStart+2*j+1] -= g.Eqs[j][d] // pos
			row[inst.muStart+2*j] += g.Eqs[j][d]   // neg
		}
		p.AddEq(row, 0)
	}
}

// distRow returns the row (over the problem's full column space) for
// the "dist" target's d-th coordinate: the schedule difference
// sched(dst)-sched(src) on R's (const, params, in-vars, out-vars)
// columns (§4.6). A self edge (srcIdx==dstIdx) needs no special case:
// its relation's in-block and out-block both reference the same
// node's Vars pairs, at their own column d, so the x- and y-occurrence
// contributions land as separate equalities rather than needing to be
// folded into one.
func distRow(layout *Layout, srcIdx, dstIdx int, nparam, d, width int) []float64 {
	row := make([]float64, width)
	src := layout.Nodes[srcIdx]
	dst := layout.Nodes[dstIdx]
	switch {
	case d == 0:
		SetSigned(row, dst.Const, 1)
		SetSigned(row, src.Const, -1)
	case d <= nparam:
		pIdx := d - 1
		SetSigned(row, dst.Params[pIdx], 1)
		SetSigned(row, src.Params[pIdx], -1)
	case d <= nparam+len(src.Vars):
		iIdx := d - nparam - 1
		SetSigned(row, src.Vars[iIdx], -1)
	default:
		oIdx := d - nparam - len(src.Vars) - 1
		if oIdx >= 0 && oIdx < len(dst.Vars) {
			SetSigned(row, dst.Vars[oIdx], 1)
		}
	}
	return row
}

func negateRow(row []float64) []float64 {
	out := make([]float64, len(row))
	for i, c := range row {
		out[i] = -c
	}
	return out
}

func addMTerm(row []float64, layout *Layout, d int, sign float64) []float64 {
	if d == 0 {
		row[layout.M0] += sign
	} else if d >= 1 && d <= layout.NParam {
		SetSigned(row, layout.MParams[d-1], sign)
	}
	return row
}

func addGlobalSums(p *Problem, layout *Layout) {
	paramSum := p.Row()
	SetSigned(paramSum, layout.GlobalParamSum, -1)
	for _, n := range layout.Nodes {
		for _, pr := range n.Params {
			SetSigned(paramSum, pr, 1)
		}
	}
	p.AddEq(paramSum, 0)

	varSum := p.Row()
	SetSigned(varSum, layout.GlobalVarSum, -1)
	for _, n := range layout.Nodes {
		for _, pr := range n.Vars {
			SetSigned(varSum, pr, 1)
		}
	}
	p.AddEq(varSum, 0)
}

func pinParamsZero(p *Problem, layout *Layout) {
	for _, n := range layout.Nodes {
		for _, pr := range n.Params {
			pos := p.Row()
			pos[pr.Pos] = 1
			p.AddEq(pos, 0)
			neg := p.Row()
			neg[pr.Neg] = 1
			p.AddEq(neg, 0)
		}
	}
}

func addCoefficientCap(p *Problem, layout *Layout, cap float64) {
	bound := func(pr Pair) {
		rowPos := p.Row()
		rowPos[pr.Pos] = 1
		p.AddLE(rowPos, cap)
		rowNeg := p.Row()
		rowNeg[pr.Neg] = 1
		p.AddLE(rowNeg, cap)
	}
	for _, n := range layout.Nodes {
		for _, pr := range n.Params {
			bound(pr)
		}
		for _, pr := range n.Vars {
			bound(pr)
		}
	}
	for _, pr := range layout.MParams {
		bound(pr)
	}
}

func addConstantCap(p *Problem, layout *Layout, cap float64) {
	for _, n := range layout.Nodes {
		rowPos := p.Row()
		rowPos[n.Const.Pos] = 1
		p.AddLE(rowPos, cap)
		rowNeg := p.Row()
		rowNeg[n.Const.Neg] = 1
		p.AddLE(rowNeg, cap)
	}
}
