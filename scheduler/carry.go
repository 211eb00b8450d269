package scheduler

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/schedrow"
)

// carryDependences builds the carry LP (§4.6, ilp.BuildCarry), solves it
// maximizing the sum of per-edge slacks, and, if any edge actually
// carried (its slack exceeds 1/2), appends the resulting row to every
// node and updates edges. It reports ErrUnableToCarry if the carry LP
// is infeasible or carries nothing — the scheduler's last resort within
// a band before giving up on this component.
func (d *Driver) carryDependences(g *depgraph.Graph, nodes []*depgraph.Node, active, excluded map[int]bool, band int) error {
	layout := ilp.NewLayout(g.Nodes)
	opts := ilp.BuildOptions{
		Parametric:      d.opts.parametric,
		MaxCoefficient:  d.opts.maxCoefficient,
		MaxConstantTerm: d.opts.maxConstantTerm,
		ExcludeEdges:    excluded,
	}
	problem, slacks := ilp.BuildCarry(g, layout, d.dc, opts)
	if len(slacks) == 0 {
		return ErrUnableToCarry
	}

	obj := make([]float64, problem.NVar)
	for _, s := range slacks {
		obj[s] = -1 // minimize -sum(e_i), i.e. maximize sum(e_i)
	}
	sol, _, err := d.solver.Solve(problem, obj)
	if err != nil {
		if err == ilp.ErrNoIntegerSolution {
			return ErrUnableToCarry
		}
		return err
	}

	carried := false
	for _, s := range slacks {
		if sol[s] > 0.5 {
			carried = true
			break
		}
	}
	if !carried {
		return ErrUnableToCarry
	}

	view := nodeLayoutView(layout, nodes)
	for i, n := range nodes {
		row, _, err := schedrow.ExtractRow(n, view.Nodes[i], sol, band, false)
		if err != nil {
			return err
		}
		if err := n.AddRow(row); err != nil {
			return err
		}
		if err := n.RecomputeBasis(); err != nil {
			return err
		}
	}

	if err := updateEdges(g, active); err != nil {
		return err
	}
	if d.opts.splitScaled {
		return splitScaledRefine(nodes)
	}
	return nil
}

// splitScaledRefine implements §6's schedule_split_scaled: after
// carrying, rescale every node's just-carried row by the component
// size and offset its constant term by the node's position among
// nodes. The scale keeps the row's validity intact (every coefficient
// moves by the same factor) while opening up distinct constant terms
// per statement for a later band to split on.
func splitScaledRefine(nodes []*depgraph.Node) error {
	scale := big.NewInt(int64(len(nodes)))
	if len(nodes) <= 1 {
		return nil
	}
	for i, n := range nodes {
		if len(n.Rows) == 0 {
			continue
		}
		last := &n.Rows[len(n.Rows)-1]
		for j, c := range last.Coeffs {
			last.Coeffs[j] = new(big.Int).Mul(c, scale)
		}
		last.Coeffs[0] = new(big.Int).Add(last.Coeffs[0], big.NewInt(int64(i)))
		if err := n.RecomputeBasis(); err != nil {
			return err
		}
	}
	return nil
}
