package snf

import "github.com/katalvlaran/crystal/lattice"

// Decomposition is the result of a Smith Normal Form factorization:
// S = L·A·R with L, R unimodular and S diagonal, non-negative, and
// satisfying the divisibility chain d₁ | d₂ | … | dₙ.
type Decomposition struct {
	// S is the Smith form: diagonal, non-negative, divisibility chain.
	S lattice.IntMatrix
	// L accumulates the row operations (left factor, det ±1).
	L lattice.IntMatrix
	// R accumulates the column operations (right factor, det ±1).
	R lattice.IntMatrix
}

// Verify reports whether the factorization identity L·a·R == S holds.
// It is a cheap downstream assertion, not a substitute for Decompose's
// own guarantees.
func (d Decomposition) Verify(a lattice.IntMatrix) bool {
	la, err := d.L.Mul(a)
	if err != nil {
		return false
	}
	lar, err := la.Mul(d.R)
	if err != nil {
		return false
	}

	return lar.Equal(d.S)
}
