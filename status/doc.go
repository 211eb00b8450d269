// Package status implements the constraint-status oracle (§4.1): given a
// row and a tableau, it reports which of tableau.Status's outcomes the row
// falls into, and builds the full per-constraint classification of one
// basic map against another's tableau that the coalesce pair combiner
// (§4.3) drives its case analysis on.
//
// Equalities are classified twice, once for the row and once for its
// negation, since an equality constrains both directions at once — a
// pair can be adj_eq on one side and adj_ineq on the other.
package status
