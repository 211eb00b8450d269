// Package polyhedra is a from-scratch toolkit for two polyhedral-compilation
// cores: coalescing unions of convex integer polyhedra into fewer, larger
// pieces, and building a multi-dimensional affine schedule out of a typed
// dependence graph.
//
// What is polyhedra?
//
//	A pure-Go library that brings together:
//
//	  - core:       basic polyhedra (equalities/inequalities/divs)
//	  - tableau:    the simplex tableau that classifies constraints against them
//	  - coalesce:   the six-rule pair-combiner and its fixed-point driver
//	  - depgraph:   a typed dependence graph (validity/proximity/coincidence/
//	                condition/conditional-validity edges) with SCC/WCC
//	  - ilp:        the LP variable layout and lexmin solver the scheduler
//	                builds its integer programs against
//	  - scheduler:  the per-WCC scheduling loop: rows, splitting, carrying
//	  - band:       the lazy band view over a finished schedule
//
// Why choose polyhedra?
//
//   - Deterministic  — given the same input ordering, every run produces the
//     same sequence of merges and the same schedule rows.
//   - Exact           — all coefficients are arbitrary-precision integers;
//     there is no floating-point drift in the represented point sets.
//   - Pure Go         — no cgo; the only third-party surface is the ILP
//     relaxation solver.
//
// Under the hood, everything is organized under dedicated subpackages:
//
//	core/        — BasicMap, Constraint rows, div rows, flags
//	tableau/     — simplex tableau: snapshot/rollback, redundancy detection
//	status/      — the constraint-status oracle (C1)
//	wrap/        — the wrapping engine (C2)
//	coalesce/    — pair combiner + fixed-point driver (C3, C4)
//	intlinalg/   — big.Int vectors/matrices + Hermite normal form
//	depgraph/    — dependence graph, SCC/WCC, cmap/cinv (C5)
//	ilp/         — LP variable layout, main/carry LP, lexmin solver (C6)
//	schedrow/    — schedule row extraction, triviality checks (C7)
//	scheduler/   — the scheduling driver (C8)
//	band/        — lazy band-forest view over a finished schedule
//
//	go get github.com/katalvlaran/polyhedra
package polyhedra
