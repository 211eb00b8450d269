package ilp

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
)

// Generators is the Farkas dual-cone system for one dependence relation
// R: an affine form is valid on R iff it equals a non-negative
// combination of R's inequality rows plus any combination of its
// equality rows. Ineqs/Eqs are R's own rows, truncated to R's fixed
// (non-div) columns — a documented simplification that ignores any
// existentially-quantified locals a relation might carry (none of the
// worked scenarios in §8 introduce one).
type Generators struct {
	Width  int
	NParam int
	NIn    int
	NOut   int
	Ineqs  [][]float64
	Eqs    [][]float64
}

// DualCache memoizes Generators per relation identity, per §9's
// "duals ... cache keyed on the relation's identity".
type DualCache struct {
	byRelation map[*core.BasicMap]*Generators
}

// NewDualCache returns an empty cache.
func NewDualCache() *DualCache {
	return &DualCache{byRelation: make(map[*core.BasicMap]*Generators)}
}

// Get returns rel's Farkas generators, computing and caching them on
// first request.
func (c *DualCache) Get(rel *core.BasicMap) *Generators {
	if g, ok := c.byRelation[rel]; ok {
		return g
	}
	g := buildGenerators(rel)
	c.byRelation[rel] = g
	return g
}

func buildGenerators(rel *core.BasicMap) *Generators {
	width := rel.Space.FixedDim()
	toFloat := func(rows []intlinalg.Vector) [][]float64 {
		out := make([][]float64, len(rows))
		for i, r := range rows {
			row := make([]float64, width)
			for j := 0; j < width && j < len(r); j++ {
				row[j], _ = new(big.Float).SetInt(r[j]).Float64()
			}
			out[i] = row
		}
		return out
	}
	return &Generators{
		Width:  width,
		NParam: rel.Space.NParam,
		NIn:    rel.Space.NIn,
		NOut:   rel.Space.NOut,
		Ineqs:  toFloat(rel.Ineqs),
		Eqs:    toFloat(rel.Eqs),
	}
}
