package schedrow

import "errors"

// ErrTrivialRow is returned by ExtractAll when a node whose next row was
// required to be non-trivial (§4.7: nvar-rank >= maxvar-n_row) received a
// row that is linearly dependent on rows already taken. The caller (the
// scheduler driver) treats this as the documented "reject the solution"
// outcome and falls back to per-component scheduling.
var ErrTrivialRow = errors.New("schedrow: required non-trivial row was degenerate")

// ErrSolutionWidth is returned when an LP solution vector is shorter than
// the layout it is being read against.
var ErrSolutionWidth = errors.New("schedrow: solution vector too short for layout")
