package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crystal/lattice"
)

// mustIntMatrix builds an IntMatrix from rows, failing the test on shape errors.
func mustIntMatrix(t *testing.T, rows [][]int64) lattice.IntMatrix {
	t.Helper()
	m, err := lattice.NewIntMatrix(rows)
	require.NoError(t, err, "rows must form a square matrix")

	return m
}

// TestNewIntMatrix_ShapeValidation verifies construction-time shape checks.
func TestNewIntMatrix_ShapeValidation(t *testing.T) {
	_, err := lattice.NewIntMatrix(nil)
	assert.ErrorIs(t, err, lattice.ErrBadShape, "empty input must error ErrBadShape")

	_, err = lattice.NewIntMatrix([][]int64{{1, 2}, nil})
	assert.ErrorIs(t, err, lattice.ErrBadShape, "nil row must error ErrBadShape")

	_, err = lattice.NewIntMatrix([][]int64{{1, 2, 3}, {4, 5, 6}})
	assert.ErrorIs(t, err, lattice.ErrNonSquare, "2x3 input must error ErrNonSquare")

	_, err = lattice.NewIntMatrix([][]int64{{1, 2}, {3}})
	assert.ErrorIs(t, err, lattice.ErrNonSquare, "ragged rows must error ErrNonSquare")
}

// TestNewIntMatrix_CopiesInput ensures the constructor does not alias caller rows.
func TestNewIntMatrix_CopiesInput(t *testing.T) {
	rows := [][]int64{{1, 2}, {3, 4}}
	m := mustIntMatrix(t, rows)
	rows[0][0] = 99
	assert.Equal(t, int64(1), m.At(0, 0), "constructor must copy input rows")
}

// TestIdentity_Structure verifies Identity produces ones on the diagonal only.
func TestIdentity_Structure(t *testing.T) {
	id := lattice.Identity(3)
	assert.Equal(t, 3, id.Dim())
	assert.True(t, id.IsDiagonal())
	assert.Equal(t, int64(1), id.Det())
	for i := 0; i < 3; i++ {
		assert.Equal(t, int64(1), id.At(i, i))
	}
}

// TestIntMatrix_Det covers the exact Bareiss determinant, including the
// zero-pivot row swap and the singular case.
func TestIntMatrix_Det(t *testing.T) {
	diag := mustIntMatrix(t, [][]int64{{2, 0, 0}, {0, 3, 0}, {0, 0, 4}})
	assert.Equal(t, int64(24), diag.Det(), "diagonal determinant is the product")

	// Leading zero pivot forces a row swap (and a sign flip).
	swapped := mustIntMatrix(t, [][]int64{{0, 1}, {1, 0}})
	assert.Equal(t, int64(-1), swapped.Det())

	skew := mustIntMatrix(t, [][]int64{{1, 2, 3}, {0, 1, 4}, {5, 6, 0}})
	assert.Equal(t, int64(1), skew.Det(), "known unimodular example")

	singular := mustIntMatrix(t, [][]int64{{1, 2}, {2, 4}})
	assert.Equal(t, int64(0), singular.Det())
}

// TestIntMatrix_MulTranspose verifies Mul against a hand-computed product
// and Transpose round-tripping.
func TestIntMatrix_MulTranspose(t *testing.T) {
	a := mustIntMatrix(t, [][]int64{{1, 2}, {3, 4}})
	b := mustIntMatrix(t, [][]int64{{0, 1}, {1, 0}})

	p, err := a.Mul(b)
	require.NoError(t, err)
	want := mustIntMatrix(t, [][]int64{{2, 1}, {4, 3}})
	assert.True(t, p.Equal(want), "a·b mismatch:\n%s", p)

	_, err = a.Mul(lattice.Identity(3))
	assert.ErrorIs(t, err, lattice.ErrDimensionMismatch, "order mismatch must error")

	tt := a.Transpose().Transpose()
	assert.True(t, tt.Equal(a), "double transpose must be identity")
}

// TestIntMatrix_ElementaryOps verifies that each in-place elementary
// operation acts like left/right multiplication by the matching
// elementary matrix (the invariant the snf bookkeeping relies on).
func TestIntMatrix_ElementaryOps(t *testing.T) {
	a := mustIntMatrix(t, [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 10}})

	rowOp := a.Clone()
	rowOp.AddRowMultiple(0, 2, -2)
	e := lattice.Identity(3)
	e.Set(0, 2, -2)
	viaMul, err := e.Mul(a)
	require.NoError(t, err)
	assert.True(t, rowOp.Equal(viaMul), "row op must equal E·A")

	colOp := a.Clone()
	colOp.AddColMultiple(2, 0, 5)
	f := lattice.Identity(3)
	f.Set(0, 2, 5)
	viaMul, err = a.Mul(f)
	require.NoError(t, err)
	assert.True(t, colOp.Equal(viaMul), "col op must equal A·F")

	sw := a.Clone()
	sw.SwapRows(0, 2)
	sw.SwapRows(0, 2)
	assert.True(t, sw.Equal(a), "double row swap must restore")

	neg := a.Clone()
	neg.NegateCol(1)
	neg.NegateCol(1)
	assert.True(t, neg.Equal(a), "double column negation must restore")
}

// TestIntMatrix_IsUnimodular checks the unimodularity predicate on both
// determinant signs and a non-unimodular input.
func TestIntMatrix_IsUnimodular(t *testing.T) {
	assert.True(t, lattice.Identity(4).IsUnimodular())

	negSwap := mustIntMatrix(t, [][]int64{{0, 1}, {1, 0}})
	assert.True(t, negSwap.IsUnimodular(), "det −1 is unimodular too")

	scaled := mustIntMatrix(t, [][]int64{{2, 0}, {0, 1}})
	assert.False(t, scaled.IsUnimodular())
}

// TestIntMatrix_CloneIndependence ensures Clone detaches storage.
func TestIntMatrix_CloneIndependence(t *testing.T) {
	a := mustIntMatrix(t, [][]int64{{1, 0}, {0, 1}})
	c := a.Clone()
	c.Set(0, 0, 7)
	assert.Equal(t, int64(1), a.At(0, 0), "mutating a clone must not touch the original")
}
