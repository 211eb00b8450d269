// File: api.go
// Role: thin, deterministic constructors on top of BasicMap's types.
// Policy: no coalescing/scheduling logic here — see the coalesce and
// scheduler packages for the algorithms that consume these values.
package core

import "github.com/katalvlaran/polyhedra/intlinalg"

// NewSet constructs the space for a set (no in/out split: everything is
// an "out" dimension), the common case for an iteration domain.
func NewSet(nparam, ndim int) Space {
	return Space{NParam: nparam, NOut: ndim}
}

// NewRelation constructs the space for a binary relation between an
// nin-dimensional source and an nout-dimensional destination, the shape
// of a dependence relation (§3).
func NewRelation(nparam, nin, nout int) Space {
	return Space{NParam: nparam, NIn: nin, NOut: nout}
}

// FromInequalities builds a BasicMap over space from literal inequality
// rows (each c0 + sum ci*xi >= 0); a convenience constructor for tests
// and the worked examples in spec §8.
func FromInequalities(space Space, rows ...intlinalg.Vector) (*BasicMap, error) {
	b := New(space)
	for _, r := range rows {
		if err := b.AddInequality(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// FromEqualities builds a BasicMap over space from literal equality rows.
func FromEqualities(space Space, rows ...intlinalg.Vector) (*BasicMap, error) {
	b := New(space)
	for _, r := range rows {
		if err := b.AddEquality(r); err != nil {
			return nil, err
		}
	}
	return b, nil
}

// Union is an ordered finite sequence of basic maps over a common space;
// the represented set is their union (§3). No uniqueness or normal-form
// requirement is imposed — this is exactly the input/output of coalesce.Run.
type Union struct {
	Space Space
	Maps  []*BasicMap
}

// NewUnion wraps maps (cloned) into a Union over space.
func NewUnion(space Space, maps ...*BasicMap) *Union {
	u := &Union{Space: space, Maps: make([]*BasicMap, len(maps))}
	for i, m := range maps {
		u.Maps[i] = m.Clone()
	}
	return u
}

// Clone deep-copies the union.
func (u *Union) Clone() *Union {
	out := &Union{Space: u.Space, Maps: make([]*BasicMap, len(u.Maps))}
	for i, m := range u.Maps {
		out.Maps[i] = m.Clone()
	}
	return out
}
