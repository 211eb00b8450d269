// Package wrap implements the wrapping engine (§4.2): given a bound row
// that supports one side of an adjacency and the constraints of the
// polyhedron on the other side, it produces the tangent combinations that
// extend the bound across both.
//
// For each candidate inequality of the target polyhedron, Wrap locates the
// target's own vertex where the bound row is most violated (via
// tableau.Tableau.Optimize) and solves for the unique non-negative
// combination of the bound and the candidate that vanishes there — the
// textbook two-constraint wrap, built on an exact rational witness point
// rather than a parametric sweep over the combination coefficient.
package wrap
