// Package lattice provides the shared fixed-size matrix value types that
// the crystal algorithm packages operate on.
//
// Three entities live here:
//
//   - IntMatrix — an exact signed-integer square matrix. It represents a
//     lattice-point transformation (input to snf) or a factor of one
//     (unimodular L/R, diagonal S). All arithmetic is int64, never float:
//     a determinant of ±1 is a proof of unimodularity, not an estimate.
//   - Basis — a real 3×3 matrix whose rows are lattice basis vectors.
//     It is a plain array type with value semantics: assignment copies,
//     callers never share mutable state.
//   - Metric — the six scalar parameters of the metric tensor G = B·Bᵀ
//     (three squared lengths, three pairwise dot products). This is the
//     quantity the Gruber reduction actually steers by.
//
// Shape is validated at construction (NewIntMatrix, BasisFromDense);
// after that, accessors index directly. Real-valued numerics (Det, the
// metric product) are delegated to gonum.org/v1/gonum/mat.
//
// All types are safe for concurrent use by independent callers; none of
// the operations share state beyond their receivers.
package lattice
