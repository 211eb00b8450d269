package tableau

import "errors"

// ErrDimMismatch is returned when a row's length does not match the
// tableau's variable count.
var ErrDimMismatch = errors.New("tableau: row dimension mismatch")

// ErrNoSnapshot is returned by Rollback when given a token that does not
// correspond to a live snapshot (already rolled back, or never taken).
var ErrNoSnapshot = errors.New("tableau: invalid or stale snapshot token")
