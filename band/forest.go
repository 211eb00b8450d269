package band

import (
	"sort"

	"github.com/katalvlaran/polyhedra/depgraph"
)

// Node is one band: the set of statements that share a schedule row at
// this band, and each of their rows at that band.
type Node struct {
	BandID int
	Nodes  []*depgraph.Node
	Rows   map[int]depgraph.Row // keyed by Node.ID

	children []*Node
	ids      map[int]bool
}

// Children returns this band's nested bands, ordered by ascending band
// ID. The forest it belongs to must already have been built (via
// Forest.Roots or Forest.Node) for this to be populated.
func (n *Node) Children() []*Node { return n.children }

// Coincident reports whether every statement's row at this band was
// extracted as coincident (§4.7).
func (n *Node) Coincident() bool {
	for _, r := range n.Rows {
		if !r.Coincident {
			return false
		}
	}
	return len(n.Rows) > 0
}

// Forest is a lazily-materialized band forest over a graph's finished
// schedule. The zero value is not usable; build one with NewForest.
type Forest struct {
	g     *depgraph.Graph
	roots []*Node
	byID  map[int]*Node
	built bool
}

// NewForest wraps g for band-forest derivation. g's nodes should
// already carry a complete schedule (scheduler.Driver.Schedule);
// Forest only reads Node.Rows, never Node.Domain or the graph's edges.
func NewForest(g *depgraph.Graph) *Forest {
	return &Forest{g: g}
}

// Roots returns the forest's top-level bands, in ascending band-ID
// order, building the forest on first call.
func (f *Forest) Roots() []*Node {
	f.ensureBuilt()
	return f.roots
}

// Node returns the band with the given ID, or nil if no row in g
// carries it.
func (f *Forest) Node(bandID int) *Node {
	f.ensureBuilt()
	return f.byID[bandID]
}

func (f *Forest) ensureBuilt() {
	if f.built {
		return
	}
	f.built = true

	members := make(map[int]map[int]*depgraph.Node) // bandID -> nodeID -> node
	rows := make(map[int]map[int]depgraph.Row)       // bandID -> nodeID -> row
	for _, n := range f.g.Nodes {
		for _, r := range n.Rows {
			if members[r.Band] == nil {
				members[r.Band] = make(map[int]*depgraph.Node)
				rows[r.Band] = make(map[int]depgraph.Row)
			}
			members[r.Band][n.ID] = n
			rows[r.Band][n.ID] = r
		}
	}

	ids := make([]int, 0, len(members))
	for id := range members {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	f.byID = make(map[int]*Node, len(ids))
	for _, id := range ids {
		nodeSet := members[id]
		nodes := make([]*depgraph.Node, 0, len(nodeSet))
		idSet := make(map[int]bool, len(nodeSet))
		for nid, n := range nodeSet {
			nodes = append(nodes, n)
			idSet[nid] = true
		}
		sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
		f.byID[id] = &Node{BandID: id, Nodes: nodes, Rows: rows[id], ids: idSet}
	}

	for _, id := range ids {
		bn := f.byID[id]
		parent := f.findParent(bn, ids)
		if parent == nil {
			f.roots = append(f.roots, bn)
			continue
		}
		parent.children = append(parent.children, bn)
	}
}

// findParent returns the closest enclosing band preceding bn in band
// order: the smallest-by-membership band whose statement set strictly
// contains bn's.
func (f *Forest) findParent(bn *Node, ids []int) *Node {
	var best *Node
	for _, id := range ids {
		if id >= bn.BandID {
			break
		}
		cand := f.byID[id]
		if !strictSuperset(cand.ids, bn.ids) {
			continue
		}
		if best == nil || len(cand.ids) < len(best.ids) {
			best = cand
		}
	}
	return best
}

func strictSuperset(super, sub map[int]bool) bool {
	if len(super) <= len(sub) {
		return false
	}
	for id := range sub {
		if !super[id] {
			return false
		}
	}
	return true
}
