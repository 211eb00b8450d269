package ilp

import (
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize/convex/lp"
)

// Solver is a branch-and-bound MILP solver over gonum's simplex,
// structured after the teacher's tsp/bb.go bbEngine: a dedicated search
// struct carrying configuration, an incumbent, and a DFS with pruning,
// rather than ad-hoc recursion over closures.
type Solver struct {
	// MaxNodes bounds the search tree; 0 disables the bound. A branch
	// exhausting the cap without an incumbent is reported infeasible
	// rather than left to run unbounded.
	MaxNodes int
}

// NewSolver returns a Solver with a practical default node cap.
func NewSolver() *Solver {
	return &Solver{MaxNodes: 200000}
}

// Solve searches for the integer point of p minimizing c, branching
// only on columns p.Integer marks (Farkas multipliers stay continuous
// and are solved for directly by each relaxation).
func (s *Solver) Solve(p *Problem, c []float64) ([]float64, float64, error) {
	e := &bbEngine{solver: s, p: p, c: c, bestZ: math.Inf(1)}
	e.dfs(nil, nil)
	if !e.found {
		return nil, 0, ErrNoIntegerSolution
	}
	return e.bestX, e.bestZ, nil
}

// Feasible reports whether p has any integer-feasible point, by solving
// with the zero objective and treating ErrNoIntegerSolution as "no".
func (s *Solver) Feasible(p *Problem) (bool, error) {
	_, _, err := s.Solve(p, make([]float64, p.NVar))
	if err != nil {
		if err == ErrNoIntegerSolution {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// LexMin runs one ILP per entry of objectives, in order, pinning each
// stage's optimal value with a permanent equality on p before solving
// the next — the sequence-of-ILPs lexicographic minimization §4.6
// calls for. It returns the final stage's solution.
func (s *Solver) LexMin(p *Problem, objectives [][]float64) ([]float64, error) {
	var x []float64
	for _, obj := range objectives {
		sol, z, err := s.Solve(p, obj)
		if err != nil {
			return nil, err
		}
		x = sol
		pinned := make([]float64, len(obj))
		copy(pinned, obj)
		p.AddEq(pinned, z)
	}
	return x, nil
}

type bbEngine struct {
	solver *Solver
	p      *Problem
	c      []float64

	nodes int
	found bool
	bestX []float64
	bestZ float64
}

func (e *bbEngine) dfs(extraG [][]float64, extraH []float64) {
	e.nodes++
	if e.solver.MaxNodes > 0 && e.nodes > e.solver.MaxNodes {
		return
	}
	z, x, err := relax(e.p, e.c, extraG, extraH)
	if err != nil {
		return // infeasible subproblem: prune
	}
	if e.found && z >= e.bestZ-1e-9 {
		return // bound prune: relaxation can't beat the incumbent
	}
	branchVar := mostFractional(e.p, x)
	if branchVar < 0 {
		e.found = true
		e.bestZ = z
		e.bestX = append([]float64(nil), x...)
		return
	}

	floor := math.Floor(x[branchVar])

	gDown := make([]float64, e.p.NVar)
	gDown[branchVar] = 1
	e.dfs(appendRow(extraG, gDown), append(append([]float64{}, extraH...), floor))

	gUp := make([]float64, e.p.NVar)
	gUp[branchVar] = -1
	e.dfs(appendRow(extraG, gUp), append(append([]float64{}, extraH...), -(floor+1)))
}

func appendRow(rows [][]float64, row []float64) [][]float64 {
	out := make([][]float64, len(rows), len(rows)+1)
	copy(out, rows)
	return append(out, row)
}

func mostFractional(p *Problem, x []float64) int {
	best := -1
	bestFrac := 1e-6
	for i, isInt := range p.Integer {
		if !isInt {
			continue
		}
		f := x[i] - math.Floor(x[i])
		d := math.Min(f, 1-f)
		if d > bestFrac {
			bestFrac = d
			best = i
		}
	}
	return best
}

// relax solves the LP relaxation of p with objective c and the extra
// branch-and-bound inequalities (extraG·x <= extraH), converting any
// inequalities to gonum's equality-with-slacks form the way
// jjhbw-GoMILP's subProblem.solve/convertToEqualities does.
func relax(p *Problem, c []float64, extraG [][]float64, extraH []float64) (float64, []float64, error) {
	G := p.G
	h := p.H
	if len(extraG) > 0 {
		G = append(append([][]float64{}, G...), extraG...)
		h = append(append([]float64{}, h...), extraH...)
	}

	if len(G) == 0 {
		A := denseOf(p.A, p.NVar)
		z, x, err := lp.Simplex(c, A, p.B, 0, nil)
		if err != nil {
			return 0, nil, err
		}
		return z, x, nil
	}

	nVar := p.NVar
	nIneq := len(G)
	nCons := len(p.B)
	nVarNew := nVar + nIneq
	nConsNew := nCons + nIneq

	cNew := make([]float64, nVarNew)
	copy(cNew, c)

	bNew := make([]float64, nConsNew)
	copy(bNew, p.B)
	copy(bNew[nCons:], h)

	aNew := mat.NewDense(nConsNew, nVarNew, nil)
	for i, row := range p.A {
		for j, v := range row {
			if v != 0 {
				aNew.Set(i, j, v)
			}
		}
	}
	for i, row := range G {
		for j, v := range row {
			if v != 0 {
				aNew.Set(nCons+i, j, v)
			}
		}
		aNew.Set(nCons+i, nVar+i, 1)
	}

	z, x, err := lp.Simplex(cNew, aNew, bNew, 0, nil)
	if err != nil {
		return 0, nil, err
	}
	return z, x[:nVar], nil
}

func denseOf(rows [][]float64, ncol int) *mat.Dense {
	d := mat.NewDense(len(rows), ncol, nil)
	for i, row := range rows {
		for j, v := range row {
			if v != 0 {
				d.Set(i, j, v)
			}
		}
	}
	return d
}
