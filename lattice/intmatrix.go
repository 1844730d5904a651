package lattice

import (
	"fmt"
	"strings"
)

// IntMatrix is an exact signed-integer square matrix of order Dim().
// Storage is a flat row-major int64 slice.
//
// The zero value is an empty matrix (Dim() == 0); algorithm packages
// reject it at their boundaries. Assignment copies the header only —
// use Clone for an independent copy.
type IntMatrix struct {
	n    int
	data []int64
}

// NewIntMatrix builds a square matrix from row slices.
// Returns ErrBadShape for empty input or a nil row, ErrNonSquare when any
// row length differs from the number of rows. The input is copied.
func NewIntMatrix(rows [][]int64) (IntMatrix, error) {
	n := len(rows)
	if n == 0 {
		return IntMatrix{}, ErrBadShape
	}
	m := IntMatrix{n: n, data: make([]int64, n*n)}
	for i, row := range rows {
		if row == nil {
			return IntMatrix{}, ErrBadShape
		}
		if len(row) != n {
			return IntMatrix{}, ErrNonSquare
		}
		copy(m.data[i*n:(i+1)*n], row)
	}

	return m, nil
}

// Identity returns the n×n identity matrix.
func Identity(n int) IntMatrix {
	m := Zero(n)
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m
}

// Zero returns the n×n all-zero matrix.
func Zero(n int) IntMatrix {
	if n <= 0 {
		return IntMatrix{}
	}

	return IntMatrix{n: n, data: make([]int64, n*n)}
}

// Dim returns the order of the matrix (0 for the zero value).
func (m IntMatrix) Dim() int { return m.n }

// At returns the entry at row i, column j.
func (m IntMatrix) At(i, j int) int64 { return m.data[i*m.n+j] }

// Set assigns the entry at row i, column j.
func (m *IntMatrix) Set(i, j int, v int64) { m.data[i*m.n+j] = v }

// Clone returns a deep, independent copy.
func (m IntMatrix) Clone() IntMatrix {
	c := IntMatrix{n: m.n, data: make([]int64, len(m.data))}
	copy(c.data, m.data)

	return c
}

// Equal reports exact entry-wise equality (including equal order).
func (m IntMatrix) Equal(o IntMatrix) bool {
	if m.n != o.n {
		return false
	}
	for i, v := range m.data {
		if v != o.data[i] {
			return false
		}
	}

	return true
}

// Mul returns the product m·o.
// Returns ErrDimensionMismatch when the orders differ.
func (m IntMatrix) Mul(o IntMatrix) (IntMatrix, error) {
	if m.n != o.n {
		return IntMatrix{}, ErrDimensionMismatch
	}
	n := m.n
	p := Zero(n)
	for i := 0; i < n; i++ {
		for k := 0; k < n; k++ {
			a := m.data[i*n+k]
			if a == 0 {
				continue
			}
			for j := 0; j < n; j++ {
				p.data[i*n+j] += a * o.data[k*n+j]
			}
		}
	}

	return p, nil
}

// Transpose returns mᵀ.
func (m IntMatrix) Transpose() IntMatrix {
	n := m.n
	t := Zero(n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			t.data[j*n+i] = m.data[i*n+j]
		}
	}

	return t
}

// Det computes the determinant exactly via the Bareiss fraction-free
// elimination: every division in the recurrence is exact over the
// integers, so no rounding ever occurs.
//
// Complexity: O(n³).
func (m IntMatrix) Det() int64 {
	n := m.n
	if n == 0 {
		return 0
	}
	w := m.Clone()
	sign := int64(1)
	prev := int64(1)
	for k := 0; k < n-1; k++ {
		if w.At(k, k) == 0 {
			pivotRow := -1
			for i := k + 1; i < n; i++ {
				if w.At(i, k) != 0 {
					pivotRow = i
					break
				}
			}
			if pivotRow < 0 {
				return 0
			}
			w.SwapRows(k, pivotRow)
			sign = -sign
		}
		for i := k + 1; i < n; i++ {
			for j := k + 1; j < n; j++ {
				w.Set(i, j, (w.At(i, j)*w.At(k, k)-w.At(i, k)*w.At(k, j))/prev)
			}
			w.Set(i, k, 0)
		}
		prev = w.At(k, k)
	}

	return sign * w.At(n-1, n-1)
}

// IsUnimodular reports whether det(m) is +1 or −1.
func (m IntMatrix) IsUnimodular() bool {
	d := m.Det()

	return d == 1 || d == -1
}

// IsDiagonal reports whether every off-diagonal entry is zero.
func (m IntMatrix) IsDiagonal() bool {
	for i := 0; i < m.n; i++ {
		for j := 0; j < m.n; j++ {
			if i != j && m.At(i, j) != 0 {
				return false
			}
		}
	}

	return true
}

// SwapRows exchanges rows i and j in place.
func (m *IntMatrix) SwapRows(i, j int) {
	if i == j {
		return
	}
	n := m.n
	for k := 0; k < n; k++ {
		m.data[i*n+k], m.data[j*n+k] = m.data[j*n+k], m.data[i*n+k]
	}
}

// SwapCols exchanges columns i and j in place.
func (m *IntMatrix) SwapCols(i, j int) {
	if i == j {
		return
	}
	n := m.n
	for k := 0; k < n; k++ {
		m.data[k*n+i], m.data[k*n+j] = m.data[k*n+j], m.data[k*n+i]
	}
}

// NegateRow multiplies row i by −1 in place.
func (m *IntMatrix) NegateRow(i int) {
	n := m.n
	for k := 0; k < n; k++ {
		m.data[i*n+k] = -m.data[i*n+k]
	}
}

// NegateCol multiplies column j by −1 in place.
func (m *IntMatrix) NegateCol(j int) {
	n := m.n
	for k := 0; k < n; k++ {
		m.data[k*n+j] = -m.data[k*n+j]
	}
}

// AddRowMultiple adds f times row src to row dst in place (row dst += f·row src).
func (m *IntMatrix) AddRowMultiple(dst, src int, f int64) {
	if f == 0 {
		return
	}
	n := m.n
	for k := 0; k < n; k++ {
		m.data[dst*n+k] += f * m.data[src*n+k]
	}
}

// AddColMultiple adds f times column src to column dst in place.
func (m *IntMatrix) AddColMultiple(dst, src int, f int64) {
	if f == 0 {
		return
	}
	n := m.n
	for k := 0; k < n; k++ {
		m.data[k*n+dst] += f * m.data[k*n+src]
	}
}

// String renders the matrix one row per line, entries space-separated.
func (m IntMatrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.n; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.n; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%d", m.At(i, j))
		}
		sb.WriteByte(']')
		if i < m.n-1 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}
