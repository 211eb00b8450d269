package intlinalg

import "errors"

var (
	// ErrDimMismatch indicates operands with incompatible lengths/shapes.
	ErrDimMismatch = errors.New("intlinalg: dimension mismatch")

	// ErrOutOfRange indicates an index outside a vector's or matrix's bounds.
	ErrOutOfRange = errors.New("intlinalg: index out of range")

	// ErrNotSquare indicates a square matrix was required.
	ErrNotSquare = errors.New("intlinalg: matrix is not square")

	// ErrSingular indicates a matrix has no integer (unimodular) inverse.
	ErrSingular = errors.New("intlinalg: matrix is not invertible over the integers")
)
