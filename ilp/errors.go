package ilp

import "errors"

// ErrInfeasible names an LP relaxation with no feasible point. Solver
// does not return it: an infeasible problem is reported as
// ErrNoIntegerSolution.
var ErrInfeasible = errors.New("ilp: relaxation is infeasible")

// ErrNoIntegerSolution is returned when branch-and-bound exhausts its
// search without finding an integer-feasible point.
var ErrNoIntegerSolution = errors.New("ilp: no integer-feasible solution found")

// ErrDimMismatch is returned when a row's width does not match the
// layout's total variable count.
var ErrDimMismatch = errors.New("ilp: row width does not match layout")
