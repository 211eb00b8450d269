package depgraph

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
)

// Row is one accumulated schedule row for a node: a full coefficient
// vector laid out [const, params(0..NParam), vars(0..NVar)], stamped
// with the band it belongs to and whether it is coincident (§4.7).
type Row struct {
	Coeffs     intlinalg.Vector
	Band       int
	Coincident bool
}

// Node is one statement's schedule node (§3 "Schedule node"): its
// domain, the rows of its schedule matrix accumulated so far, and the
// change-of-basis pair derived from those rows.
type Node struct {
	ID      int
	Domain  *core.BasicMap
	NVar    int
	NParam  int
	LPStart int
	SCC     int
	Rows    []Row

	// Cmap/Cinv/Rank are the change-of-basis pair and its rank (§4.5):
	// candidate row coefficients factor as c = Cmap·t, and a row is
	// trivial (linearly dependent on rows already taken) iff Cinv·c is
	// zero past index Rank.
	Cmap *intlinalg.Matrix
	Cinv *intlinalg.Matrix
	Rank int
}

// RowWidth is the expected length of any Row.Coeffs for this node.
func (n *Node) RowWidth() int { return 1 + n.NParam + n.NVar }

// Const returns row's constant term.
func (n *Node) Const(row Row) *big.Int { return row.Coeffs[0] }

// ParamPart returns row's parameter coefficients.
func (n *Node) ParamPart(row Row) intlinalg.Vector { return row.Coeffs[1 : 1+n.NParam] }

// VarPart returns row's variable coefficients (the linear part used for
// the change-of-basis computation).
func (n *Node) VarPart(row Row) intlinalg.Vector { return row.Coeffs[1+n.NParam:] }

// AddRow appends a new schedule row. It does not recompute the basis;
// call RecomputeBasis once the row set for this band is settled.
func (n *Node) AddRow(row Row) error {
	if len(row.Coeffs) != n.RowWidth() {
		return ErrRowWidth
	}
	n.Rows = append(n.Rows, row)
	return nil
}

// RecomputeBasis rebuilds Cmap/Cinv/Rank from the variable part of every
// row accumulated so far, via left-Hermite normal form (§4.5).
func (n *Node) RecomputeBasis() error {
	if len(n.Rows) == 0 {
		n.Cmap = intlinalg.Identity(n.NVar)
		n.Cinv = intlinalg.Identity(n.NVar)
		n.Rank = 0
		return nil
	}
	vecs := make([]intlinalg.Vector, len(n.Rows))
	for i, r := range n.Rows {
		vecs[i] = n.VarPart(r)
	}
	S, err := intlinalg.RowsFromVectors(vecs, n.NVar)
	if err != nil {
		return err
	}
	u, uinv, rank, err := intlinalg.HermiteBasis(S)
	if err != nil {
		return err
	}
	// S·U = H: cinv (= U^T) maps variable coefficients into the basis
	// H exposes; cmap (= (U^-1)^T) is cinv's inverse, so c = Cmap·t
	// round-trips through t = Cinv·c.
	n.Cmap = uinv.Transpose()
	n.Cinv = u.Transpose()
	n.Rank = rank
	return nil
}

// RowsRemaining is `nvar - rank`: how many more linearly independent rows
// this node could still contribute. The original's compute_maxvar bound
// `nvar + n_row - rank` equals len(n.Rows) + RowsRemaining().
func (n *Node) RowsRemaining() int {
	return n.NVar - n.Rank
}

// NonTrivialRequired reports whether, given a global maxvar, this
// node's next row must be non-trivial to keep the schedule progressing
// (§4.7: nvar - rank >= maxvar - n_row).
func (n *Node) NonTrivialRequired(maxvar int) bool {
	return n.NVar-n.Rank >= maxvar-len(n.Rows)
}

// EdgeKind is the set of boolean attributes a dependence edge carries
// (§3). Several typed relations sharing (src, dst, relation) fold into
// one Edge with the union of their flags.
type EdgeKind struct {
	Validity            bool
	Coincidence         bool
	Proximity           bool
	Condition           bool
	ConditionalValidity bool
	Local               bool
}

// Merge ORs other's flags into k.
func (k *EdgeKind) Merge(other EdgeKind) {
	k.Validity = k.Validity || other.Validity
	k.Coincidence = k.Coincidence || other.Coincidence
	k.Proximity = k.Proximity || other.Proximity
	k.Condition = k.Condition || other.Condition
	k.ConditionalValidity = k.ConditionalValidity || other.ConditionalValidity
	k.Local = k.Local || other.Local
}

// Strong reports whether this edge participates in SCC detection
// (validity or conditional-validity, §4.5).
func (k EdgeKind) Strong() bool { return k.Validity || k.ConditionalValidity }

// Edge is one dependence edge: endpoints, its primary (untagged)
// relation, an optional tagged relation for conditional checks, and its
// flags.
type Edge struct {
	ID       int
	Src, Dst int
	Relation *core.BasicMap
	Tagged   *core.BasicMap
	Kind     EdgeKind

	// Dropped marks an edge whose relation has been intersected down to
	// empty by update_edges (§4.8); kept in the array for stable
	// indices but skipped by every consumer.
	Dropped bool
}

// Graph is the dependence graph: one node per statement domain, edges
// folded by (src, dst, relation) identity.
type Graph struct {
	Nodes []*Node
	Edges []*Edge
	index map[[2]int][]int
}

// NewGraph creates one node per domain, in order.
func NewGraph(domains []*core.BasicMap) *Graph {
	nodes := make([]*Node, len(domains))
	for i, d := range domains {
		nodes[i] = &Node{
			ID:     i,
			Domain: d,
			NVar:   d.Space.NOut,
			NParam: d.Space.NParam,
			Cmap:   intlinalg.Identity(d.Space.NOut),
			Cinv:   intlinalg.Identity(d.Space.NOut),
		}
	}
	return &Graph{Nodes: nodes, index: make(map[[2]int][]int)}
}

// AddEdge records a dependence edge from src to dst over relation. If
// an edge already exists between src and dst with a structurally equal
// relation, kind is folded into it (and tagged is attached if not
// already present); otherwise a new edge is appended.
func (g *Graph) AddEdge(src, dst int, relation *core.BasicMap, tagged *core.BasicMap, kind EdgeKind) (*Edge, error) {
	if src < 0 || src >= len(g.Nodes) || dst < 0 || dst >= len(g.Nodes) {
		return nil, ErrNodeIndex
	}
	key := [2]int{src, dst}
	for _, idx := range g.index[key] {
		e := g.Edges[idx]
		if relationEqual(e.Relation, relation) {
			e.Kind.Merge(kind)
			if tagged != nil && e.Tagged == nil {
				e.Tagged = tagged
			}
			return e, nil
		}
	}
	e := &Edge{ID: len(g.Edges), Src: src, Dst: dst, Relation: relation, Tagged: tagged, Kind: kind}
	g.Edges = append(g.Edges, e)
	g.index[key] = append(g.index[key], e.ID)
	return e, nil
}

// Successors returns, for node i, every non-dropped outgoing edge
// matching filter (nil filter admits all); each edge's Dst names its
// target node.
func (g *Graph) Successors(i int, filter func(EdgeKind) bool) []*Edge {
	var out []*Edge
	for _, e := range g.Edges {
		if e.Dropped || e.Src != i {
			continue
		}
		if filter != nil && !filter(e.Kind) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func relationEqual(a, b *core.BasicMap) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	if a.Space != b.Space || len(a.Eqs) != len(b.Eqs) || len(a.Ineqs) != len(b.Ineqs) || len(a.Divs) != len(b.Divs) {
		return false
	}
	for i := range a.Eqs {
		if !a.Eqs[i].Equal(b.Eqs[i]) {
			return false
		}
	}
	for i := range a.Ineqs {
		if !a.Ineqs[i].Equal(b.Ineqs[i]) {
			return false
		}
	}
	return true
}
