// Package core: sentinel errors shared by the whole module.
//
// Per spec §7, every compound-value-returning function distinguishes three
// error kinds: Internal (invariant violation, unrecoverable), Unknown
// (algorithmic failure at a design limit, e.g. "unable to carry
// dependences"), and Arithmetic/allocation (propagated identically, only
// the wrapping context differs). ErrInternal and ErrUnknown are the two
// sentinels every package in this module wraps with fmt.Errorf and
// errors.Is against; there is no separate arithmetic sentinel because the
// spec says it is "distinguished only by the accompanying context" — that
// context is the %w-wrapped message, not a distinct sentinel.
package core

import "errors"

var (
	// ErrInternal marks an invariant violation: a state the algorithm
	// assumed could never occur. Unrecoverable; callers must free owned
	// structures and propagate rather than retry.
	ErrInternal = errors.New("polyhedra: internal invariant violation")

	// ErrUnknown marks an algorithmic failure at a design limit: no
	// retry at a higher level is supported (e.g. "unable to carry
	// dependences", "unable to construct non-trivial solution").
	ErrUnknown = errors.New("polyhedra: algorithmic failure at design limit")

	// ErrNilBasicMap indicates a nil *BasicMap receiver or argument.
	ErrNilBasicMap = errors.New("core: nil basic map")

	// ErrDimMismatch indicates a row whose length does not match the
	// map's total dimension.
	ErrDimMismatch = errors.New("core: row dimension mismatch")

	// ErrIncompatibleSpace indicates two basic maps with differing
	// parameter/in/out counts were combined.
	ErrIncompatibleSpace = errors.New("core: incompatible spaces")

	// ErrDivSetIncomparable indicates neither basic map's div set is a
	// (possibly reordered) subset of the other's, so no pair-combine
	// attempt is made (spec §4.4).
	ErrDivSetIncomparable = errors.New("core: incomparable div sets")
)
