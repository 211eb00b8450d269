package ilp

// DefaultObjectives returns the lexicographic objective order used
// absent an override from the scheduler's options: first minimize the
// proximity constant bound (m0), then the proximity parameter
// coefficients' magnitude (mn), then the overall schedule-coefficient
// magnitude. Spec §4.6 names the ingredients of the objective without
// fixing their priority; this order (favor a small, simple distance
// bound before a small schedule) is this implementation's resolution,
// recorded in the design ledger.
func DefaultObjectives(layout *Layout, total int) [][]float64 {
	obj1 := make([]float64, total)
	obj1[layout.M0] = 1

	obj2 := make([]float64, total)
	for _, pr := range layout.MParams {
		obj2[pr.Pos] = 1
		obj2[pr.Neg] = 1
	}

	obj3 := make([]float64, total)
	for _, n := range layout.Nodes {
		for _, pr := range n.Vars {
			obj3[pr.Pos]++
			obj3[pr.Neg]++
		}
	}

	return [][]float64{obj1, obj2, obj3}
}
