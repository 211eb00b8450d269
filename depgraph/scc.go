package depgraph

import "sort"

// Three-color visitation states, matching lvlath/dfs's White/Gray/Black
// convention for topological sort and cycle detection.
const (
	white = 0
	gray  = 1
	black = 2
)

// tarjan holds the low-link bookkeeping for one SCC pass.
type tarjan struct {
	g       *Graph
	index   []int
	lowlink []int
	onStack []bool
	stack   []int
	counter int
	sccID   int
}

// ComputeSCC assigns each node's SCC index (Node.SCC) from the subgraph
// of strong edges (validity + conditional-validity, §4.5), using
// Tarjan's algorithm. SCC indices follow topological order of the SCC
// DAG: for every strong edge src->dst, Node[src].SCC <= Node[dst].SCC,
// so sorting nodes by SCC index (§4.8's "sort nodes by SCC") puts every
// strong edge's source component first.
func ComputeSCC(g *Graph) {
	t := &tarjan{
		g:       g,
		index:   make([]int, len(g.Nodes)),
		lowlink: make([]int, len(g.Nodes)),
		onStack: make([]bool, len(g.Nodes)),
	}
	for i := range t.index {
		t.index[i] = -1
	}
	for i := range g.Nodes {
		if t.index[i] == -1 {
			t.strongConnect(i)
		}
	}
	// Tarjan completes sink components first; reverse the numbering so
	// that indices follow topological order.
	for _, n := range g.Nodes {
		n.SCC = t.sccID - 1 - n.SCC
	}
}

func (t *tarjan) strongConnect(v int) {
	t.index[v] = t.counter
	t.lowlink[v] = t.counter
	t.counter++
	t.stack = append(t.stack, v)
	t.onStack[v] = true

	for _, e := range t.g.Successors(v, EdgeKind.Strong) {
		w := e.Dst
		switch {
		case t.index[w] == -1:
			t.strongConnect(w)
			if t.lowlink[w] < t.lowlink[v] {
				t.lowlink[v] = t.lowlink[w]
			}
		case t.onStack[w]:
			if t.index[w] < t.lowlink[v] {
				t.lowlink[v] = t.index[w]
			}
		}
	}

	if t.lowlink[v] == t.index[v] {
		for {
			n := len(t.stack) - 1
			w := t.stack[n]
			t.stack = t.stack[:n]
			t.onStack[w] = false
			t.g.Nodes[w].SCC = t.sccID
			if w == v {
				break
			}
		}
		t.sccID++
	}
}

// ComputeWCC partitions the graph into weakly-connected components over
// every edge (no kind filter), returning each component as a sorted
// slice of node indices. A DFS flood following edges in both directions
// is enough since weak connectivity ignores orientation.
func ComputeWCC(g *Graph) [][]int {
	adj := make([][]int, len(g.Nodes))
	for _, e := range g.Edges {
		if e.Dropped {
			continue
		}
		adj[e.Src] = append(adj[e.Src], e.Dst)
		adj[e.Dst] = append(adj[e.Dst], e.Src)
	}

	state := make([]int, len(g.Nodes))
	var comps [][]int
	for start := range g.Nodes {
		if state[start] != white {
			continue
		}
		var comp []int
		stack := []int{start}
		state[start] = gray
		for len(stack) > 0 {
			n := len(stack) - 1
			v := stack[n]
			stack = stack[:n]
			comp = append(comp, v)
			state[v] = black
			for _, w := range adj[v] {
				if state[w] == white {
					state[w] = gray
					stack = append(stack, w)
				}
			}
		}
		sort.Ints(comp)
		comps = append(comps, comp)
	}
	return comps
}
