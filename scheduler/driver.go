package scheduler

import (
	"context"
	"math/big"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/schedrow"
)

// Driver computes an affine schedule over a dependence graph (§4.8). A
// Driver is not safe for concurrent use; it accumulates a global band
// counter and an LP dual-generator cache across the whole run.
type Driver struct {
	opts   options
	solver *ilp.Solver
	dc     *ilp.DualCache
	band   int
}

// New builds a Driver from the given options (§6).
func New(opts ...Option) *Driver {
	return &Driver{
		opts:   resolve(opts),
		solver: ilp.NewSolver(),
		dc:     ilp.NewDualCache(),
	}
}

func (d *Driver) nextBand() int {
	b := d.band
	d.band++
	return b
}

// Schedule computes an affine schedule for every node of g in place
// (§4.8): it computes strongly- and weakly-connected components, then
// drives computeScheduleWCC over each top-level component in graph
// order (WithFuse(FuseMin) schedules each SCC of a WCC on its own
// instead). With WithSeparateComponents, a leading row numbers the
// top-level components before any of their internal scheduling runs.
func (d *Driver) Schedule(ctx context.Context, g *depgraph.Graph) error {
	depgraph.ComputeSCC(g)
	wccs := depgraph.ComputeWCC(g)

	if d.opts.separateComponents && len(wccs) > 1 {
		if err := d.emitComponentRow(g, wccs); err != nil {
			return err
		}
	}

	for _, ids := range wccs {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		nodes := nodesOf(g, ids)
		if d.opts.fuse == FuseMin {
			for _, grp := range groupBySCC(nodes) {
				if err := d.computeScheduleWCC(ctx, g, grp); err != nil {
					return err
				}
			}
			continue
		}
		if err := d.computeScheduleWCC(ctx, g, nodes); err != nil {
			return err
		}
	}
	return nil
}

// emitComponentRow appends a row carrying each top-level component's
// index to every node it contains (§6 schedule_separate_components),
// ahead of any internal scheduling.
func (d *Driver) emitComponentRow(g *depgraph.Graph, wccs [][]int) error {
	band := d.nextBand()
	for idx, ids := range wccs {
		for _, id := range ids {
			n := g.Nodes[id]
			row := zeroRow(n)
			row[0] = big.NewInt(int64(idx))
			if err := n.AddRow(depgraph.Row{Coeffs: row, Band: band}); err != nil {
				return err
			}
			if err := n.RecomputeBasis(); err != nil {
				return err
			}
		}
	}
	return nil
}

// computeScheduleWCC drives one top-level component to a complete
// schedule: it opens bands one at a time (computeBand) until every
// node's row budget (Node.RowsRemaining) is exhausted, then appends a
// final topological-order row distinguishing the component's SCCs, if
// it has more than one (§4.8's closing step; a single-SCC component
// needs no such row, matching spec §8 scenario 5).
func (d *Driver) computeScheduleWCC(ctx context.Context, g *depgraph.Graph, nodes []*depgraph.Node) error {
	if len(nodes) == 0 {
		return nil
	}
	active := activeNodeSet(nodes)
	excluded := excludeInactiveEdges(g, active)

	for maxvarOf(nodes) > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		done, err := d.computeBand(ctx, g, nodes, active, excluded)
		if err != nil {
			return err
		}
		if done {
			// A split recursed into both halves; they are fully
			// scheduled already, so this component is done.
			return nil
		}
	}
	return d.closeWithTopoRow(nodes)
}

// closeWithTopoRow appends one row carrying each node's SCC index, iff
// nodes spans more than one SCC — the final disambiguating row a band
// forest needs to linearize statements left unordered by validity
// alone.
func (d *Driver) closeWithTopoRow(nodes []*depgraph.Node) error {
	groups := groupBySCC(nodes)
	if len(groups) <= 1 {
		return nil
	}
	band := d.nextBand()
	for _, n := range nodes {
		row := zeroRow(n)
		row[0] = big.NewInt(int64(n.SCC))
		if err := n.AddRow(depgraph.Row{Coeffs: row, Band: band}); err != nil {
			return err
		}
		if err := n.RecomputeBasis(); err != nil {
			return err
		}
	}
	return nil
}

// computeBand attempts to produce exactly one schedule row for every
// node in nodes (§4.8's main loop body). On LP infeasibility it walks
// the decision chain in order: drop outer coincidence and retry, split
// on a conflicting SCC pair (only under WithMaximizeBandDepth), or fall
// back to carrying. done reports whether a split already recursed this
// component to completion, in which case the caller must stop looping.
func (d *Driver) computeBand(ctx context.Context, g *depgraph.Graph, nodes []*depgraph.Node, active, excluded map[int]bool) (bool, error) {
	maxvar := maxvarOf(nodes)
	band := d.nextBand()
	useCoincidence := d.opts.outerCoincidence

	feautrier := d.opts.algorithm == AlgorithmFeautrier &&
		anyEdgeAmong(g, active, func(k depgraph.EdgeKind) bool { return k.Validity || k.ConditionalValidity })
	if feautrier {
		if err := d.carryDependences(g, nodes, active, excluded, band); err != nil {
			return false, err
		}
		return false, nil
	}

	for {
		layout := ilp.NewLayout(g.Nodes)
		buildOpts := ilp.BuildOptions{
			Parametric:      d.opts.parametric,
			MaxCoefficient:  d.opts.maxCoefficient,
			MaxConstantTerm: d.opts.maxConstantTerm,
			UseCoincidence:  useCoincidence,
			ExcludeEdges:    excluded,
		}
		problem := ilp.BuildMain(g, layout, d.dc, buildOpts)
		objectives := ilp.DefaultObjectives(layout, problem.NVar)
		sol, err := d.solver.LexMin(problem, objectives)
		if err != nil {
			if err != ilp.ErrNoIntegerSolution {
				return false, err
			}
			if useCoincidence {
				useCoincidence = false
				continue
			}
			if d.opts.maximizeBandDepth {
				if threshold, ok := d.findSplitCandidate(g, nodes, active, excluded); ok {
					left, right, err := splitSchedule(nodes, threshold, band)
					if err != nil {
						return false, err
					}
					if err := updateEdges(g, active); err != nil {
						return false, err
					}
					if err := d.computeScheduleWCC(ctx, g, left); err != nil {
						return false, err
					}
					if err := d.computeScheduleWCC(ctx, g, right); err != nil {
						return false, err
					}
					return true, nil
				}
			}
			if err := d.carryDependences(g, nodes, active, excluded, band); err != nil {
				return false, err
			}
			return false, nil
		}

		view := nodeLayoutView(layout, nodes)
		coincident := func(int) bool { return useCoincidence }
		// NonTrivialRequired takes §4.7's total-row maxvar, which is the
		// remaining-row maxvar plus the rows a node already has.
		nonTrivialRequired := func(id int) bool {
			n := g.Nodes[id]
			return n.NonTrivialRequired(maxvar + len(n.Rows))
		}
		err = schedrow.ExtractAll(nodes, view, sol, band, coincident, nonTrivialRequired)
		if err != nil {
			if err != schedrow.ErrTrivialRow {
				return false, err
			}
			if useCoincidence {
				useCoincidence = false
				continue
			}
			return false, ErrUnableToConstructNonTrivial
		}
		return false, updateEdges(g, active)
	}
}
