// Package schedrow implements schedule row extraction (§4.7): reading a
// solved LP's column values back into one new depgraph.Row per node,
// appending it to the node's schedule matrix, and checking whether the
// row is trivial with respect to rows already taken.
//
// A row's real coefficients live directly in the LP's columns (ilp.Layout
// assigns each node a Const/Params/Vars slice of signed pairs); extraction
// is therefore a read of those columns, not a change-of-basis. The
// change-of-basis pair (Node.Cmap/Cinv) is consulted only afterward, to
// classify the row the LP actually returned: ExtractRow computes
// Cinv·variablePart and compares the entries at index Rank and beyond to
// zero, exactly as §4.7 and §9's "linear independence" property specify.
package schedrow
