package coalesce

import "errors"

// ErrSpaceMismatch is returned when TryMerge is given two maps that do
// not share a space.
var ErrSpaceMismatch = errors.New("coalesce: basic maps do not share a space")

// ErrDivsIncomparable names the case of two maps whose div sets are
// neither equal nor one a prefix of the other, so no rule in §4.3
// applies. Run does not return it: such a pair is left unmerged.
var ErrDivsIncomparable = errors.New("coalesce: div sets are not comparable")
