package gruber

import "errors"

var (
	// ErrBadInput indicates invalid options (negative IterMax, or a
	// negative/NaN tolerance).
	ErrBadInput = errors.New("gruber: invalid options")

	// ErrSingularBasis indicates a degenerate cell (volume within
	// tolerance of zero); reduction is undefined on it.
	ErrSingularBasis = errors.New("gruber: basis is singular within tolerance")

	// ErrNonConvergence indicates IterMax was exhausted before reaching a
	// fixed point. The best iterate reached is still returned; callers
	// may accept it or retry with a larger IterMax or looser Tol.
	ErrNonConvergence = errors.New("gruber: reduction did not converge within IterMax steps")
)
