// Package crystal is a small toolkit for canonicalizing crystal-lattice
// descriptions — exact integer matrix factorization and real-basis
// reduction, the two primitives everything else in lattice matching
// builds on.
//
// 🚀 What is crystal?
//
//	A pure-Go library of independent, stateless algorithm packages:
//		• lattice/ — shared fixed-size value types: exact integer matrices,
//		  real 3×3 bases, and the six-parameter metric tensor
//		• snf/     — Smith Normal Form: S = L·A·R over the integers, with
//		  unimodular L, R and a divisibility chain on the diagonal
//		• gruber/  — Gruber/Niggli reduction: the canonical short-vector
//		  representative of a lattice basis, to tolerance
//
// ✨ Why choose crystal?
//
//   - Exact where it matters — integer arithmetic end to end in snf,
//     no float determinants certifying unimodularity
//   - Deterministic — iteration caps instead of timeouts; same input,
//     same output, every time
//   - Safe to share — every entry point is a pure function over value
//     types; call them from as many goroutines as you like
//   - Honest errors — sentinel errors matched with errors.Is; a
//     non-converged reduction still hands you its best iterate
//
// Typical flow: canonicalize a supercell transformation with snf.Decompose,
// reduce its real cell with gruber.Reduce, then compare the results to
// decide whether two descriptions name the same lattice.
//
// See each package's doc.go and example_test.go for walkthroughs.
package crystal
