// Package intlinalg provides the exact, arbitrary-precision vector and
// matrix primitives the rest of this module treats as a replaceable
// collaborator: constraint rows, div expressions and dual-cone generators
// are all intlinalg.Vector values, and the dependence-graph's per-node
// change of basis (cmap/cinv) is computed by this package's Hermite
// column reduction.
//
// Everything here is built on math/big.Int: no float64 ever appears in a
// coefficient. Vector and Matrix are thin, allocation-conscious wrappers;
// the interesting algorithm is HermiteBasis, which turns the schedule
// rows accumulated so far into a unimodular change of basis separating
// "directions already spanned by existing rows" from "genuinely new
// directions" (see depgraph.Node for how the result is consumed).
package intlinalg
