package snf

import "errors"

var (
	// ErrBadInput indicates an empty (zero-value) input matrix.
	ErrBadInput = errors.New("snf: input matrix must be non-empty and square")

	// ErrSingular indicates det(A) == 0; the decomposition is defined,
	// but the lattice-transformation domain requires invertible input.
	ErrSingular = errors.New("snf: input matrix is singular")
)
