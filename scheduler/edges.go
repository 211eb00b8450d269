package scheduler

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/depgraph"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/status"
)

// scheduleEqualityRow builds the row "schedule(dst) = schedule(src)" over
// rel's own space, from src/dst's most recently appended schedule rows:
//
//	(constDst - constSrc) + (paramDst-paramSrc)*n - varSrc*x + varDst*y == 0
//
// padded with zero columns for any divs rel carries (§4.8's update_edges).
func scheduleEqualityRow(rel *core.BasicMap, src, dst *depgraph.Node) (intlinalg.Vector, error) {
	if len(src.Rows) == 0 || len(dst.Rows) == 0 {
		return nil, ErrScheduleConstruction
	}
	srcRow := src.Rows[len(src.Rows)-1]
	dstRow := dst.Rows[len(dst.Rows)-1]

	row := intlinalg.Zeros(rel.TotalDim())
	row[0] = new(big.Int).Sub(dst.Const(dstRow), src.Const(srcRow))

	nparam := rel.Space.NParam
	dstParam, srcParam := dst.ParamPart(dstRow), src.ParamPart(srcRow)
	for i := 0; i < nparam; i++ {
		row[1+i] = new(big.Int).Sub(dstParam[i], srcParam[i])
	}

	base := 1 + nparam
	srcVar := src.VarPart(srcRow)
	for i := 0; i < rel.Space.NIn; i++ {
		row[base+i] = new(big.Int).Neg(srcVar[i])
	}

	base += rel.Space.NIn
	dstVar := dst.VarPart(dstRow)
	for i := 0; i < rel.Space.NOut; i++ {
		row[base+i] = new(big.Int).Set(dstVar[i])
	}
	return row, nil
}

// updateEdges intersects every active edge's relation with the equality
// schedule(src) = schedule(dst) on the latest row (§4.8), dropping any
// edge whose relation becomes empty. Edges stay in the graph's array (so
// indices remain stable) with Dropped set instead of being removed.
func updateEdges(g *depgraph.Graph, active map[int]bool) error {
	for _, e := range g.Edges {
		if e.Dropped || !active[e.Src] || !active[e.Dst] {
			continue
		}
		row, err := scheduleEqualityRow(e.Relation, g.Nodes[e.Src], g.Nodes[e.Dst])
		if err != nil {
			return err
		}
		updated := e.Relation.Clone()
		if err := updated.AddEquality(row); err != nil {
			return err
		}
		tb, err := status.BuildTableau(updated)
		if err != nil {
			return err
		}
		empty, err := tb.IsEmpty()
		if err != nil {
			return err
		}
		if empty {
			e.Dropped = true
			continue
		}
		e.Relation = updated
	}
	return nil
}
