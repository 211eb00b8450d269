// Package band derives a read-only band forest from a finished
// schedule (§6): a tree grouping each statement's accumulated rows by
// Band, with nested bands (the product of scheduler splits) as
// children of whichever enclosing band's statement set strictly
// contains theirs.
//
// This is a view over depgraph.Node.Rows, not a parallel schedule
// representation — it does not mutate the graph, and nothing here is
// consulted by scheduler.Driver. Forest.Roots triggers the one-time
// walk that classifies every band's parent; Node.Children returns the
// already-classified result. isl_band's full mutable tree API (tiling,
// AST generation hooks, band member reordering) has no equivalent here
// by design — see the design ledger.
package band
