package tableau

// Status is the outcome of classifying a single constraint row against a
// tableau's feasible region (§4.1). The oracle never distinguishes a
// redundant row from a merely valid one — both leave the region unchanged,
// and every caller in this module treats them identically — so Classify
// folds Redundant into Valid rather than tracking a sixth case nobody acts
// on differently.
type Status int

const (
	// Valid means the row holds everywhere on the region (valmin >= 0).
	Valid Status = iota
	// Separate means the row is negative everywhere on the region and its
	// maximum is below -1 (valmax < -1).
	Separate
	// Cut means the row is negative somewhere and non-negative elsewhere,
	// genuinely slicing the region (valmin < 0 <= valmax).
	Cut
	// AdjEq means the row is violated by exactly 1 on both ends
	// (valmin == valmax == -1): the region touches the row's hyperplane
	// along what would be an equality if tightened by one unit.
	AdjEq
	// AdjIneq means the row's maximum over the region is exactly -1 while
	// its minimum is below -1 or unbounded (valmax == -1, valmin < -1):
	// the region's near side lies on the hyperplane row == -1.
	AdjIneq
)

// String renders the status for diagnostics.
func (s Status) String() string {
	switch s {
	case Valid:
		return "valid"
	case Separate:
		return "separate"
	case Cut:
		return "cut"
	case AdjEq:
		return "adj_eq"
	case AdjIneq:
		return "adj_ineq"
	default:
		return "unknown"
	}
}
