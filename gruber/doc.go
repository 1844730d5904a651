// Package gruber reduces a real lattice basis to its Gruber/Niggli
// canonical form.
//
// 🚀 What is Gruber reduction?
//
//	A lattice has infinitely many bases, all related by integer
//	unimodular changes of basis. Gruber reduction picks a canonical one:
//	shortest vectors first, squared lengths ordered A ≤ B ≤ C, and the
//	pairwise dot products Ξ, Η, Ζ sign-consistent (all non-negative or
//	all non-positive) and no larger in magnitude than half the matching
//	squared length. Two cells describe the same lattice exactly when
//	their reduced forms agree, which is what lattice comparison and
//	deduplication use this package for.
//
// ✨ Key properties:
//   - the reduction is a fixed-point iteration over a prioritized table
//     of (condition, transform) steps on the six metric parameters;
//     the fixed order is what rules out cycling between boundary states
//   - every transform is an integer unimodular row update, so the
//     output spans the same lattice and |det| is preserved exactly
//   - termination is purely step-count bounded (Options.IterMax);
//     on exhaustion the best iterate is returned together with
//     ErrNonConvergence, and the caller decides whether to keep it
//   - equality and ordering decisions are widened by Options.Tol; too
//     tight a tolerance risks oscillation, too loose misclassifies
//
// ⚙️ Usage:
//
//	opts := gruber.DefaultOptions()
//	reduced, err := gruber.Reduce(basis, &opts)
//	if errors.Is(err, gruber.ErrNonConvergence) {
//		// reduced is the best iterate; retry with a larger IterMax
//		// or a looser Tol if it is not acceptable.
//	}
//
// Complexity: O(1) per step over six scalars; the step count depends on
// how skewed the input is (a handful for near-reduced cells).
package gruber
