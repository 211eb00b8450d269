package scheduler

import (
	"sort"

	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/ilp"
	"github.com/katalvlaran/polyhedra/intlinalg"
)

// activeNodeSet returns the ID set of nodes, for membership tests against
// edges built over the whole graph.
func activeNodeSet(nodes []*depgraph.Node) map[int]bool {
	m := make(map[int]bool, len(nodes))
	for _, n := range nodes {
		m[n.ID] = true
	}
	return m
}

// excludeInactiveEdges returns every graph edge ID not incident to active
// on both ends, for ilp.BuildOptions.ExcludeEdges: since
// ilp.NewLayout(g.Nodes) always lays out the whole graph (§9's "LP
// variable layout" fixes column identity by node ID, not by WCC), a
// component's LP must explicitly exclude edges belonging to other
// components or to the other side of a split.
func excludeInactiveEdges(g *depgraph.Graph, active map[int]bool) map[int]bool {
	ex := make(map[int]bool)
	for _, e := range g.Edges {
		if !active[e.Src] || !active[e.Dst] {
			ex[e.ID] = true
		}
	}
	return ex
}

// nodesOf resolves a slice of node IDs (as returned by depgraph.ComputeWCC)
// into node pointers, in the same order.
func nodesOf(g *depgraph.Graph, ids []int) []*depgraph.Node {
	out := make([]*depgraph.Node, len(ids))
	for i, id := range ids {
		out[i] = g.Nodes[id]
	}
	return out
}

// groupBySCC partitions nodes into one slice per distinct SCC index,
// ordered by ascending SCC index, matching §4.8's "sort nodes by SCC".
func groupBySCC(nodes []*depgraph.Node) [][]*depgraph.Node {
	bySCC := make(map[int][]*depgraph.Node)
	for _, n := range nodes {
		bySCC[n.SCC] = append(bySCC[n.SCC], n)
	}
	sccs := make([]int, 0, len(bySCC))
	for scc := range bySCC {
		sccs = append(sccs, scc)
	}
	sort.Ints(sccs)
	out := make([][]*depgraph.Node, len(sccs))
	for i, scc := range sccs {
		out[i] = bySCC[scc]
	}
	return out
}

// anyEdgeAmong reports whether any non-dropped edge with both endpoints
// in active matches pred.
func anyEdgeAmong(g *depgraph.Graph, active map[int]bool, pred func(depgraph.EdgeKind) bool) bool {
	for _, e := range g.Edges {
		if e.Dropped || !active[e.Src] || !active[e.Dst] {
			continue
		}
		if pred(e.Kind) {
			return true
		}
	}
	return false
}

// maxvarOf computes §4.8's maxvar: the largest RowsRemaining across nodes.
func maxvarOf(nodes []*depgraph.Node) int {
	max := 0
	for _, n := range nodes {
		if r := n.RowsRemaining(); r > max {
			max = r
		}
	}
	return max
}

// zeroRow returns a fresh all-zero row sized to n's schedule-row width.
func zeroRow(n *depgraph.Node) intlinalg.Vector {
	return intlinalg.Zeros(n.RowWidth())
}

// nodeLayoutView builds a Layout whose Nodes slice is positionally
// aligned with nodes, by picking out each node's own slot from the
// full-graph layout (indexed by global node ID, per ilp.NewLayout).
// schedrow.ExtractAll zips its nodes argument against layout.Nodes by
// position, so a WCC/SCC subset needs this view rather than the full
// layout directly.
func nodeLayoutView(layout *ilp.Layout, nodes []*depgraph.Node) *ilp.Layout {
	nls := make([]ilp.NodeLayout, len(nodes))
	for i, n := range nodes {
		nls[i] = layout.Nodes[n.ID]
	}
	return &ilp.Layout{NParam: layout.NParam, Nodes: nls, Total: layout.Total}
}
