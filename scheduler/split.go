package scheduler

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
)

// crossThresholdEdges returns the IDs of every active, non-dropped edge
// whose endpoints fall on opposite sides of an SCC split at
// thresholdSCC (nodes with SCC<=thresholdSCC on the left).
func crossThresholdEdges(g *depgraph.Graph, active map[int]bool, thresholdSCC int) map[int]bool {
	ex := make(map[int]bool)
	for _, e := range g.Edges {
		if e.Dropped || !active[e.Src] || !active[e.Dst] {
			continue
		}
		srcLeft := g.Nodes[e.Src].SCC <= thresholdSCC
		dstLeft := g.Nodes[e.Dst].SCC <= thresholdSCC
		if srcLeft != dstLeft {
			ex[e.ID] = true
		}
	}
	return ex
}

// findSplitCandidate searches the SCC boundaries within nodes for one
// whose cross-boundary edges, if excluded from the main LP, restore
// feasibility (§4.7's "solver must report conflicting inequalities",
// resolved here as edge-exclusion feasibility probing rather than a
// solver-reported conflict certificate — see the design ledger). It
// returns the candidate threshold SCC index.
func (d *Driver) findSplitCandidate(g *depgraph.Graph, nodes []*depgraph.Node, active map[int]bool, excluded map[int]bool) (int, bool) {
	groups := groupBySCC(nodes)
	if len(groups) < 2 {
		return 0, false
	}
	for i := 0; i < len(groups)-1; i++ {
		threshold := groups[i][0].SCC
		cross := crossThresholdEdges(g, active, threshold)
		if len(cross) == 0 {
			continue
		}
		trial := make(map[int]bool, len(excluded)+len(cross))
		for id := range excluded {
			trial[id] = true
		}
		for id := range cross {
			trial[id] = true
		}
		layout := ilp.NewLayout(g.Nodes)
		opts := ilp.BuildOptions{
			Parametric:      d.opts.parametric,
			MaxCoefficient:  d.opts.maxCoefficient,
			MaxConstantTerm: d.opts.maxConstantTerm,
			ExcludeEdges:    trial,
		}
		problem := ilp.BuildMain(g, layout, d.dc, opts)
		feasible, err := d.solver.Feasible(problem)
		if err == nil && feasible {
			return threshold, true
		}
	}
	return 0, false
}

// splitSchedule appends a 0/1 row distinguishing the two SCC-ordered
// halves of nodes at thresholdSCC (§4.8's band-splitting step) and
// partitions nodes accordingly for independent recursive scheduling.
func splitSchedule(nodes []*depgraph.Node, thresholdSCC, band int) (left, right []*depgraph.Node, err error) {
	for _, n := range nodes {
		row := zeroRow(n)
		if n.SCC <= thresholdSCC {
			left = append(left, n)
		} else {
			row[0] = big.NewInt(1)
			right = append(right, n)
		}
		if err := n.AddRow(depgraph.Row{Coeffs: row, Band: band}); err != nil {
			return nil, nil, err
		}
		if err := n.RecomputeBasis(); err != nil {
			return nil, nil, err
		}
	}
	return left, right, nil
}
