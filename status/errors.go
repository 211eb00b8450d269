package status

import "errors"

// ErrSpaceMismatch is returned when the two basic maps being cross
// classified do not share a space (same NParam/NIn/NOut and div count).
var ErrSpaceMismatch = errors.New("status: basic maps do not share a space")
