package scheduler

import "errors"

// Internal errors (§7): invariant violations, unrecoverable.
var (
	ErrNoSolutionFound      = errors.New("scheduler: no solution found")
	ErrTooManyRows          = errors.New("scheduler: too many schedule rows")
	ErrScheduleConstruction = errors.New("scheduler: error in schedule construction")
)

// Unknown errors (§7): algorithmic failure at a design limit.
var (
	ErrUnableToCarry               = errors.New("scheduler: unable to carry dependences")
	ErrUnableToConstructNonTrivial = errors.New("scheduler: unable to construct non-trivial solution")
)
