// Package scheduler implements the affine scheduler driver (C8, §4.8):
// per-weakly-connected-component row extraction loops, band splitting on
// a conflicting SCC pair, and carrying when no new row makes progress.
// Conditional-validity edges are enforced in the main LP exactly like
// validity edges; there is no separate conditional-validity repair pass.
//
// Driver.Schedule walks the dependence graph's weakly-connected
// components (or, under WithFuse(FuseMin), its strongly-connected
// components) and drives computeScheduleWCC over each: build the main LP
// (package ilp) from the component's edges, solve it, extract one row
// per node (package schedrow), and repeat until every node's row budget
// (Node.RowsRemaining) is exhausted. Infeasibility falls through, in
// order, to toggling off coincidence, splitting at an SCC boundary (only
// under WithMaximizeBandDepth), or carrying dependences. Every band holds
// a single row; the driver never closes a band early and re-schedules the
// component in a fresh band.
package scheduler
