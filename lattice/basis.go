package lattice

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Basis is a real 3×3 lattice basis. Rows are the basis vectors, so
// Basis[0] is the first lattice vector. Being a plain array type it has
// true value semantics: assignment and parameter passing copy it.
type Basis [3][3]float64

// BasisFromDense copies a 3×3 gonum Dense into a Basis.
// Returns ErrBadShape for a nil matrix, ErrDimensionMismatch for any
// other shape.
func BasisFromDense(d *mat.Dense) (Basis, error) {
	if d == nil {
		return Basis{}, ErrBadShape
	}
	r, c := d.Dims()
	if r != 3 || c != 3 {
		return Basis{}, ErrDimensionMismatch
	}
	var b Basis
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b[i][j] = d.At(i, j)
		}
	}

	return b, nil
}

// Dense returns a fresh gonum Dense view of the basis, for handing to
// gonum routines. Mutating the result does not affect the Basis.
func (b Basis) Dense() *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			d.Set(i, j, b[i][j])
		}
	}

	return d
}

// Det returns the determinant of the basis (signed cell volume).
func (b Basis) Det() float64 {
	return mat.Det(b.Dense())
}

// Volume returns |Det|, the unit-cell volume spanned by the basis.
func (b Basis) Volume() float64 {
	return math.Abs(b.Det())
}

// ApplyInt returns p·b, the basis after the integer change of basis p
// acting on rows. p must be 3×3; any other order returns
// ErrDimensionMismatch. When p is unimodular the result spans the same
// lattice as b.
func (b Basis) ApplyInt(p IntMatrix) (Basis, error) {
	if p.Dim() != 3 {
		return Basis{}, ErrDimensionMismatch
	}
	var out Basis
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var s float64
			for k := 0; k < 3; k++ {
				s += float64(p.At(i, k)) * b[k][j]
			}
			out[i][j] = s
		}
	}

	return out, nil
}

// Equal reports entry-wise equality within tol.
func (b Basis) Equal(o Basis, tol float64) bool {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			if math.Abs(b[i][j]-o[i][j]) > tol {
				return false
			}
		}
	}

	return true
}
