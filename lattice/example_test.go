package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/crystal/lattice"
)

// ExampleNewMetric derives the six metric parameters of a tetragonal
// cell: squared lengths on the diagonal of G = B·Bᵀ, pairwise dot
// products off it.
func ExampleNewMetric() {
	b := lattice.Basis{
		{2, 0, 0},
		{0, 2, 0},
		{1, 1, 3},
	}
	m := lattice.NewMetric(b)
	fmt.Printf("A=%.0f B=%.0f C=%.0f\n", m.A, m.B, m.C)
	fmt.Printf("Xi=%.0f Eta=%.0f Zeta=%.0f\n", m.Xi, m.Eta, m.Zeta)
	// Output:
	// A=4 B=4 C=11
	// Xi=2 Eta=2 Zeta=0
}

// ExampleIntMatrix_Det shows the exact integer determinant of a
// supercell transformation.
func ExampleIntMatrix_Det() {
	a, _ := lattice.NewIntMatrix([][]int64{
		{0, 1, 1},
		{1, 0, 1},
		{1, 1, 0},
	})
	fmt.Println("det =", a.Det())
	// Output:
	// det = 2
}
