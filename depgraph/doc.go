// Package depgraph builds the dependence graph the scheduler walks (§4.5).
//
// A Graph has one Node per statement domain and one Edge per distinct
// (src, dst, relation) triple; an edge folds the five typed union
// relations (validity, coincidence, proximity, condition,
// conditional-validity) sharing the same endpoints and relation into a
// single record with multiple boolean flags, mirroring how
// lvlath/dfs treats a graph's edge list as the single source of truth
// for every traversal that runs over it.
//
// Two derived views are exposed: SCC (validity + conditional-validity
// edges only, "strong") and WCC (every edge, "weak"). Both are computed
// with the same three-color DFS idiom lvlath/dfs uses for topological
// sort and cycle detection, specialized to Tarjan low-link bookkeeping
// for SCC and a simple union-find-free DFS flood for WCC.
//
// Each node also owns its accumulated schedule rows and the per-node
// change-of-basis pair (Cmap, Cinv) recomputed from those rows via
// Hermite normal form — the basis the ILP builders (package ilp) and
// row extraction (package schedrow) both read.
package depgraph
