package ilp

// Problem is the dense LP/MILP shape jjhbw-GoMILP's milpProblem uses:
// minimize c^T x subject to A x = b, G x <= h, x >= 0, with Integer
// marking which columns are integer-constrained.
type Problem struct {
	NVar    int
	Integer []bool

	A [][]float64
	B []float64

	G [][]float64
	H []float64
}

// NewProblem allocates an empty problem over nvar columns.
func NewProblem(nvar int) *Problem {
	return &Problem{NVar: nvar, Integer: make([]bool, nvar)}
}

// Row returns a fresh zero row of the problem's width.
func (p *Problem) Row() []float64 { return make([]float64, p.NVar) }

// AddEq appends the equality row·x == rhs.
func (p *Problem) AddEq(row []float64, rhs float64) {
	p.A = append(p.A, row)
	p.B = append(p.B, rhs)
}

// AddLE appends the inequality row·x <= rhs.
func (p *Problem) AddLE(row []float64, rhs float64) {
	p.G = append(p.G, row)
	p.H = append(p.H, rhs)
}

// AddGE appends the inequality row·x >= rhs (stored internally as its
// negated <= form, matching gonum's lp.Simplex convention).
func (p *Problem) AddGE(row []float64, rhs float64) {
	neg := make([]float64, len(row))
	for i, c := range row {
		neg[i] = -c
	}
	p.AddLE(neg, -rhs)
}

// MarkIntegerRange marks columns [lo, hi) as integer-constrained.
func (p *Problem) MarkIntegerRange(lo, hi int) {
	for i := lo; i < hi && i < len(p.Integer); i++ {
		p.Integer[i] = true
	}
}
