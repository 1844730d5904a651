package lattice

import "gonum.org/v1/gonum/mat"

// Metric holds the six independent parameters of the metric tensor
// G = B·Bᵀ of a Basis B. A, B, C are the squared lengths of the three
// basis vectors; Xi, Eta, Zeta are the pairwise dot products
// (Xi = b₂·b₃, Eta = b₁·b₃, Zeta = b₁·b₂). Together they characterize
// the lattice geometry up to rotation, which is exactly the information
// the Gruber reduction steers by.
type Metric struct {
	A, B, C       float64
	Xi, Eta, Zeta float64
}

// NewMetric derives the metric parameters of b via G = B·Bᵀ.
func NewMetric(b Basis) Metric {
	d := b.Dense()
	var g mat.Dense
	g.Mul(d, d.T())

	return Metric{
		A:    g.At(0, 0),
		B:    g.At(1, 1),
		C:    g.At(2, 2),
		Xi:   g.At(1, 2),
		Eta:  g.At(0, 2),
		Zeta: g.At(0, 1),
	}
}
