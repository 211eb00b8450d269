package wrap

import (
	"math/big"

	"github.com/katalvlaran/polyhedra/core"
	"github.com/katalvlaran/polyhedra/intlinalg"
	"github.com/katalvlaran/polyhedra/status"
	"github.com/katalvlaran/polyhedra/tableau"
)

// Result is the outcome of wrapping bound around target's constraints.
type Result struct {
	// Rows is one wrapped row per non-trivial constraint of target (two
	// per equality), ready to append to the fused polyhedron.
	Rows []intlinalg.Vector
	// Unbounded signals that some wrap would have reproduced bound itself:
	// target is unbounded in bound's direction and no finite wrap exists.
	Unbounded bool
}

// Wrap computes the wrapped rows that extend bound (valid on some other
// polyhedron A) across target (§4.2).
func Wrap(bound intlinalg.Vector, target *core.BasicMap, opts ...Option) (Result, error) {
	o := resolve(opts)
	tb, err := status.BuildTableau(target)
	if err != nil {
		return Result{}, err
	}

	var rows []intlinalg.Vector
	addCandidate := func(c intlinalg.Vector) error {
		trivial, err := impliedByBoundAlone(bound, c)
		if err != nil {
			return err
		}
		if trivial {
			return nil
		}
		wrapped, unbounded, err := wrapOne(bound, c, tb)
		if err != nil {
			return err
		}
		if unbounded {
			return errUnbounded
		}
		if o.boundedWrapping && wrapped.MaxAbsCoeff(0).Cmp(o.maxCoeff) > 0 {
			return ErrCoefficientCap
		}
		rows = append(rows, wrapped)
		return nil
	}

	for _, c := range target.Ineqs {
		if err := addCandidate(c); err != nil {
			if err == errUnbounded {
				return Result{Unbounded: true}, nil
			}
			return Result{}, err
		}
	}
	for _, c := range target.Eqs {
		if err := addCandidate(c); err != nil {
			if err == errUnbounded {
				return Result{Unbounded: true}, nil
			}
			return Result{}, err
		}
		if err := addCandidate(c.Negate()); err != nil {
			if err == errUnbounded {
				return Result{Unbounded: true}, nil
			}
			return Result{}, err
		}
	}

	// Post-check (§4.2): every produced row must reclassify as Valid
	// against target's own tableau, or the whole wrap set is rejected.
	for _, row := range rows {
		st, err := tb.Classify(row)
		if err != nil {
			return Result{}, err
		}
		if st != tableau.Valid {
			return Result{}, ErrPostCheckFailed
		}
	}
	return Result{Rows: rows}, nil
}

// impliedByBoundAlone reports whether c is Valid given only bound as a
// constraint — the "trivially implied by b" skip of §4.2.
func impliedByBoundAlone(bound, c intlinalg.Vector) (bool, error) {
	tb := tableau.New(len(bound) - 1)
	if err := tb.AddInequality(bound); err != nil {
		return false, err
	}
	st, err := tb.Classify(c)
	if err != nil {
		return false, err
	}
	return st == tableau.Valid, nil
}

// wrapOne finds target's vertex p minimizing bound, then the unique
// lambda >= 0 such that (c + lambda*bound)(p) == 0, the tangent
// combination through that witness point.
func wrapOne(bound, c intlinalg.Vector, tb *tableau.Tableau) (intlinalg.Vector, bool, error) {
	boundAtP, point, unbounded, infeasible, err := tb.Optimize(bound, false)
	if err != nil {
		return nil, false, err
	}
	if infeasible {
		return nil, false, core.ErrInternal
	}
	if unbounded {
		return nil, true, nil
	}
	if boundAtP.Sign() >= 0 {
		// bound never goes negative on target: c alone already suffices.
		return c.Clone(), false, nil
	}
	cAtP := evalRow(c, point)
	lambda := new(big.Rat).Quo(cAtP, new(big.Rat).Neg(boundAtP))

	combined := make([]*big.Rat, len(c))
	for i := range combined {
		term := new(big.Rat).SetInt(bound[i])
		term.Mul(term, lambda)
		combined[i] = new(big.Rat).SetInt(c[i])
		combined[i].Add(combined[i], term)
	}
	return rationalize(combined), false, nil
}

func evalRow(row intlinalg.Vector, point []*big.Rat) *big.Rat {
	v := new(big.Rat).SetInt(row[0])
	for i, p := range point {
		term := new(big.Rat).SetInt(row[i+1])
		term.Mul(term, p)
		v.Add(v, term)
	}
	return v
}

// rationalize clears denominators (by their LCM) and reduces to primitive
// integer form.
func rationalize(row []*big.Rat) intlinalg.Vector {
	lcm := big.NewInt(1)
	for _, r := range row {
		d := r.Denom()
		g := new(big.Int).GCD(nil, nil, lcm, d)
		lcm.Mul(lcm, new(big.Int).Div(d, g))
	}
	out := make(intlinalg.Vector, len(row))
	for i, r := range row {
		n := new(big.Int).Mul(r.Num(), new(big.Int).Div(lcm, r.Denom()))
		out[i] = n
	}
	return out.Primitive(0)
}
