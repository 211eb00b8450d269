// Package coalesce implements the pair combiner (§4.3) and the driver
// (§4.4) that repeatedly applies it across a union of basic maps until no
// further pair merges.
//
// TryMerge runs its six-rule case analysis (§4.3) in order, short
// circuiting on the first rule that applies (or on any row classifying as
// Separate, which means the pair's union cannot be a single convex
// polyhedron). Run drives the classic coalesce fixpoint: scan pairs from
// the end of the list backward, restart the inner scan whenever a merge
// happens, and stop when a full pass produces no merge.
package coalesce
