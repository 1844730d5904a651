package gruber

import (
	"math"

	"github.com/katalvlaran/crystal/lattice"
)

// Reduce — Gruber/Niggli reduction of a lattice basis.
//
// Algorithm outline:
//  1. Derive the six metric parameters A, B, C, Ξ, Η, Ζ from G = B·Bᵀ.
//  2. Scan the prioritized step table (steps.go) and apply the first
//     step whose condition holds: ordering swaps, sign normalization,
//     or subtraction of a rounded integer multiple of one basis vector
//     from another. Every transform updates the parameters and the
//     accumulated integer change of basis in lockstep.
//  3. Repeat until a full scan applies nothing (the cell is reduced) or
//     IterMax steps have been applied.
//  4. Recover the output basis exactly as p·B, so it is reachable from
//     the input by an integer unimodular change of basis by
//     construction, and |det| is preserved.
//
// With IterMax exhausted, Reduce returns the best iterate reached
// together with ErrNonConvergence; in particular IterMax = 0 on a
// non-reduced basis returns the input unchanged with the error, and on
// an already-reduced basis returns it with no error.
//
// Errors: ErrBadInput for invalid options, ErrSingularBasis for a
// degenerate cell, ErrNonConvergence as above.
func Reduce(basis lattice.Basis, opts *Options) (lattice.Basis, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.IterMax < 0 || o.Tol < 0 || math.IsNaN(o.Tol) {
		return basis, ErrBadInput
	}
	if basis.Volume() <= o.Tol {
		return basis, ErrSingularBasis
	}

	c := newCell(basis, o.Tol)
	for applied := 0; ; applied++ {
		idx := c.firstApplicable()
		if idx < 0 {
			return c.appliedTo(basis), nil
		}
		if applied >= o.IterMax {
			return c.appliedTo(basis), ErrNonConvergence
		}
		steps[idx].apply(c)
	}
}

// IsReduced reports whether basis already satisfies every Gruber
// condition within tol. Exported for callers deduplicating cells
// without paying for a full Reduce.
func IsReduced(basis lattice.Basis, tol float64) bool {
	if tol < 0 || math.IsNaN(tol) {
		return false
	}

	return newCell(basis, tol).firstApplicable() < 0
}

// appliedTo maps the accumulated change of basis onto the original
// input. p is 3×3 by construction, so ApplyInt cannot fail.
func (c *cell) appliedTo(basis lattice.Basis) lattice.Basis {
	out, err := basis.ApplyInt(c.p)
	if err != nil {
		panic("gruber: internal transform shape broken: " + err.Error())
	}

	return out
}
