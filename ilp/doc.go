// Package ilp builds and solves the linear programs behind schedule row
// extraction (§4.6).
//
// Coefficient variables follow §4.6/§9 exactly: a named Layout assigns
// every node a starting offset for its constant, signed parameter pairs,
// and signed real-schedule-coefficient pairs, with the global slots (m0,
// the parameter/variable coefficient sums, the m_n pairs) prepended —
// the encoding lvlath/matrix would call an explicit "struct of named
// offsets" rather than bare index arithmetic at call sites.
//
// Dependence constraints are derived the way the Farkas lemma derives
// them for a polyhedral dependence relation R: an affine form
// c0 + cn·n + cx·x + cy·y is non-negative on every point of R iff it is
// a non-negative combination of R's own defining inequalities plus any
// combination of R's equalities. BuildMain and BuildCarry introduce one
// Farkas multiplier per constraint row of the relevant relation and
// equate the coefficient slots to that combination — this is
// DualCache's "dual of delta" (§4.6), computed once per distinct
// relation and reused.
//
// Solving uses gonum's dense simplex (gonum.org/v1/gonum/optimize/convex/lp)
// underneath a depth-first branch-and-bound, grounded on jjhbw-GoMILP's
// subProblem/branch shape and on the teacher's tsp/bb.go DFS-with-
// incumbent idiom: Farkas multipliers stay continuous, only the schedule
// coefficient variables are integer-branched. Solver.LexMin runs one
// branch-and-bound pass per objective in priority order, pinning each
// solved objective's value with an equality before moving to the next —
// the sequence-of-ILPs the spec's "ILP lexmin" external collaborator
// names.
package ilp
