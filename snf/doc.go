// Package snf computes the Smith Normal Form of an exact integer matrix.
//
// 🚀 What is the Smith Normal Form?
//
//	Every non-singular integer matrix A factors as
//
//		S = L·A·R
//
//	where L and R are unimodular (integer, det ±1) and S is diagonal with
//	non-negative entries forming a divisibility chain d₁ | d₂ | … | dₙ.
//	S is a canonical invariant of A under integer changes of basis: two
//	supercell transformations describe equivalent sublattices exactly when
//	their Smith forms agree, which is what higher-level lattice matching
//	uses this package for.
//
// ✨ Key properties:
//   - exact — all arithmetic is int64, no floating point anywhere
//   - total on well-formed input — the only errors are an empty matrix
//     (ErrBadInput) and a zero determinant (ErrSingular)
//   - pure — Decompose never mutates its input and holds no state; call
//     it concurrently at will
//
// ⚙️ Usage:
//
//	a, _ := lattice.NewIntMatrix([][]int64{{2, 4}, {0, 6}})
//	d, err := snf.Decompose(a)
//	if err != nil {
//		// ErrBadInput or ErrSingular
//	}
//	// d.S is diagonal, d.L·a·d.R == d.S, d.Verify(a) == true
//
// Complexity: O(n³) per elimination sweep; the number of sweeps is
// bounded by the bit size of the entries (each sweep strictly shrinks
// the pivot candidates).
package snf
