package snf

import "github.com/katalvlaran/crystal/lattice"

// Decompose — Smith Normal Form by elementary operations.
//
// Algorithm outline:
//  1. For each pivot position k, locate a nonzero entry of minimal
//     absolute value in the trailing submatrix and swap it to (k,k).
//  2. Subtract integer multiples of the pivot row/column from the other
//     rows/columns (Euclidean elimination). Remainders smaller than the
//     pivot survive; re-picking the minimal entry and repeating strictly
//     shrinks the pivot, so the sweep terminates with row k and column k
//     zero outside the pivot.
//  3. After diagonalization, repair the divisibility chain pairwise:
//     whenever dᵢ ∤ dⱼ (j > i), couple the two rows and re-run the
//     Euclidean sweep inside the 2×2 block, leaving gcd(dᵢ,dⱼ) and
//     ±lcm(dᵢ,dⱼ) on the diagonal.
//  4. Normalize signs so every diagonal entry is non-negative.
//
// Every elementary operation applied to the working matrix is mirrored
// into L (row ops) or R (column ops), so S = L·A·R holds at every step.
//
// Errors: ErrBadInput for an empty matrix, ErrSingular for det(A) == 0.
func Decompose(a lattice.IntMatrix) (Decomposition, error) {
	n := a.Dim()
	if n == 0 {
		return Decomposition{}, ErrBadInput
	}
	if a.Det() == 0 {
		return Decomposition{}, ErrSingular
	}

	st := &state{
		n: n,
		s: a.Clone(),
		l: lattice.Identity(n),
		r: lattice.Identity(n),
	}
	for k := 0; k < n; k++ {
		st.reducePivot(k)
	}
	st.enforceChain()
	st.normalizeSigns()

	return Decomposition{S: st.s, L: st.l, R: st.r}, nil
}

// state carries the working matrix together with its accumulated
// factors through the reduction, so every elementary operation updates
// all three in lockstep.
type state struct {
	n int
	s lattice.IntMatrix
	l lattice.IntMatrix
	r lattice.IntMatrix
}

// Row operations act on s and l; column operations on s and r.

func (st *state) swapRows(i, j int) {
	st.s.SwapRows(i, j)
	st.l.SwapRows(i, j)
}

func (st *state) swapCols(i, j int) {
	st.s.SwapCols(i, j)
	st.r.SwapCols(i, j)
}

func (st *state) addRow(dst, src int, f int64) {
	st.s.AddRowMultiple(dst, src, f)
	st.l.AddRowMultiple(dst, src, f)
}

func (st *state) addCol(dst, src int, f int64) {
	st.s.AddColMultiple(dst, src, f)
	st.r.AddColMultiple(dst, src, f)
}

func (st *state) negateRow(i int) {
	st.s.NegateRow(i)
	st.l.NegateRow(i)
}

// reducePivot clears row k and column k outside the pivot (k,k).
// Each round swaps the minimal-magnitude nonzero entry of the trailing
// submatrix into the pivot and subtracts Euclidean quotients; leftover
// remainders are strictly smaller than the pivot, so rounds terminate.
func (st *state) reducePivot(k int) {
	for {
		pi, pj := st.minAbsEntry(k)
		st.swapRows(k, pi)
		st.swapCols(k, pj)
		p := st.s.At(k, k)

		clean := true
		for i := k + 1; i < st.n; i++ {
			v := st.s.At(i, k)
			if v == 0 {
				continue
			}
			st.addRow(i, k, -v/p)
			if st.s.At(i, k) != 0 {
				clean = false
			}
		}
		for j := k + 1; j < st.n; j++ {
			v := st.s.At(k, j)
			if v == 0 {
				continue
			}
			st.addCol(j, k, -v/p)
			if st.s.At(k, j) != 0 {
				clean = false
			}
		}
		if clean {
			return
		}
	}
}

// minAbsEntry returns the position of a nonzero entry of minimal
// absolute value in the trailing submatrix [k..n) × [k..n).
// One exists whenever det(A) != 0, which Decompose guarantees.
func (st *state) minAbsEntry(k int) (int, int) {
	bi, bj := k, k
	var best int64
	for i := k; i < st.n; i++ {
		for j := k; j < st.n; j++ {
			v := st.s.At(i, j)
			if v < 0 {
				v = -v
			}
			if v != 0 && (best == 0 || v < best) {
				best, bi, bj = v, i, j
			}
		}
	}

	return bi, bj
}

// enforceChain repairs the divisibility chain on the diagonal.
// A single ascending pass suffices: after the inner loop for i, the
// entry dᵢ is the gcd of everything it was coupled with, hence divides
// all later entries, and later gcd/lcm recombinations of multiples of
// dᵢ stay multiples of dᵢ.
func (st *state) enforceChain() {
	for i := 0; i < st.n-1; i++ {
		for j := i + 1; j < st.n; j++ {
			di := st.s.At(i, i)
			dj := st.s.At(j, j)
			if di != 0 && dj%di == 0 {
				continue
			}
			st.couple(i, j)
		}
	}
}

// couple replaces the diagonal pair (dᵢ, dⱼ) by (±gcd, ±lcm) using
// elementary operations confined to rows and columns i and j.
func (st *state) couple(i, j int) {
	// Inject dⱼ next to dᵢ: row i becomes (dᵢ, dⱼ) in columns (i, j).
	st.addRow(i, j, 1)

	// Column-wise Euclid on row i yields gcd(dᵢ, dⱼ) at (i,i).
	for st.s.At(i, j) != 0 {
		q := st.s.At(i, j) / st.s.At(i, i)
		st.addCol(j, i, -q)
		if st.s.At(i, j) != 0 {
			st.swapCols(i, j)
		}
	}

	// Row j picked up a multiple of the gcd in column i; one exact
	// quotient clears it and leaves ±lcm at (j,j).
	if v := st.s.At(j, i); v != 0 {
		st.addRow(j, i, -v/st.s.At(i, i))
	}
}

// normalizeSigns flips rows so every diagonal entry is non-negative.
func (st *state) normalizeSigns() {
	for i := 0; i < st.n; i++ {
		if st.s.At(i, i) < 0 {
			st.negateRow(i)
		}
	}
}
