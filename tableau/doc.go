// Package tableau implements the exact rational simplex used to classify
// a constraint row against a basic polyhedron (§4.1) and to answer the
// bounded optimization queries the wrapping engine needs (§4.2).
//
// A Tableau owns a system of equalities and inequalities over big.Rat (the
// rational relaxation of a core.BasicMap's integer constraints — exactness
// matters here: a float64 simplex can misclassify a row sitting exactly on
// a facet). Classify answers, for a candidate row, which of the five
// outcomes in Status it falls into, by solving two linear programs (the min
// and max of the row's value over the tableau's feasible region).
//
// Snapshot/Rollback give a caller a cheap way to try a tentative
// constraint addition and back out of it without rebuilding the whole
// tableau from scratch. The coalesce package does not use them: it builds
// a fresh tableau for every classification.
package tableau
