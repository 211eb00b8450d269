package wrap

import "errors"

// ErrCoefficientCap is returned when coalesce_bounded_wrapping is active
// and a produced row's coefficients exceed the configured cap.
var ErrCoefficientCap = errors.New("wrap: wrapped row exceeds coefficient cap")

// ErrPostCheckFailed is returned when a produced row does not reclassify
// as Valid against the target's own tableau after wrapping.
var ErrPostCheckFailed = errors.New("wrap: post-check reclassification failed")

// errUnbounded is an internal signal (not returned to callers): a wrap
// would have reproduced the bound row itself, meaning target is
// unbounded in that direction. Wrap converts it into Result.Unbounded.
var errUnbounded = errors.New("wrap: candidate reproduced the bound row")
