package lattice

import "errors"

var (
	// ErrBadShape indicates an empty or otherwise malformed matrix shape
	// (no rows, or a nil inner slice).
	ErrBadShape = errors.New("lattice: invalid shape")

	// ErrNonSquare indicates that a square matrix was required but row and
	// column counts differ (including ragged input rows).
	ErrNonSquare = errors.New("lattice: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between two
	// operands, e.g. Mul on matrices of different order.
	ErrDimensionMismatch = errors.New("lattice: dimension mismatch")
)
