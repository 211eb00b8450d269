// Package core defines BasicMap, the convex-integer-polyhedron container
// coalescing and scheduling both build on, and the thread-free primitives
// for constructing and normalizing one.
//
// A BasicMap is the intersection of a finite list of equalities and
// inequalities over a space partitioned into parameters, in-variables,
// out-variables and existentially-quantified divs (§3 of the design):
//
//	space:  [params | in | out | div_0 .. div_{k-1}]
//	row:    [c0, c1, ..., cn]   meaning   c0 + sum ci*xi  (= 0  or  >= 0)
//
// Unlike lvlath's core.Graph, a BasicMap is not shared across goroutines:
// the spec's concurrency model (§5) is single-threaded and cooperative
// only in the sequential-calls sense, so this package carries no locks.
// Ownership is one value, one owner, mutated in place until Final is set.
package core
