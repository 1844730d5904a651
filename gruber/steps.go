package gruber

import (
	"math"

	"github.com/katalvlaran/crystal/lattice"
)

// cell is the reduction state: the six metric parameters of the current
// iterate plus the accumulated integer change of basis p, so the reduced
// basis can be recovered exactly as p·B at the end.
//
// Rows of the basis are numbered 0,1,2; a, b, c are their squared
// lengths and xi = r1·r2, eta = r0·r2, zeta = r0·r1.
type cell struct {
	a, b, c       float64
	xi, eta, zeta float64
	p             lattice.IntMatrix
	tol           float64
}

func newCell(basis lattice.Basis, tol float64) *cell {
	m := lattice.NewMetric(basis)

	return &cell{
		a: m.A, b: m.B, c: m.C,
		xi: m.Xi, eta: m.Eta, zeta: m.Zeta,
		p:   lattice.Identity(3),
		tol: tol,
	}
}

// Tolerance convention, used by every condition below: ordering is
// strict beyond tol, equality is |x−y| ≤ tol. Sharing one comparator
// set across all steps keeps the two halves of each comparison from
// ever disagreeing, which is what prevents cycling at boundaries.

func (c *cell) gt(x, y float64) bool { return x > y+c.tol }

func (c *cell) lt(x, y float64) bool { return x < y-c.tol }

func (c *cell) eq(x, y float64) bool { return math.Abs(x-y) <= c.tol }

// class buckets a parameter against the tol-widened zero:
// +1 above, −1 below, 0 inside.
func (c *cell) class(x float64) int {
	switch {
	case x > c.tol:
		return 1
	case x < -c.tol:
		return -1
	default:
		return 0
	}
}

// step is one entry of the prioritized transformation table: a
// condition on the current parameters and the matching integer
// unimodular update. Reduce always applies the first step whose
// condition holds, then rescans from the top.
type step struct {
	name    string
	applies func(*cell) bool
	apply   func(*cell)
}

// steps is the Gruber condition set in its prescribed priority order.
// The order is load-bearing: evaluating ordering before sign
// normalization before shrinking is what makes each applied step
// strictly improve the iterate instead of undoing a later one.
var steps = []step{
	{name: "order A,B", applies: orderABApplies, apply: orderABApply},
	{name: "order B,C", applies: orderBCApplies, apply: orderBCApply},
	{name: "signs positive", applies: signsPositiveApplies, apply: signsPositiveApply},
	{name: "signs non-positive", applies: signsNonPositiveApplies, apply: signsNonPositiveApply},
	{name: "shrink Xi", applies: shrinkXiApplies, apply: shrinkXiApply},
	{name: "shrink Eta", applies: shrinkEtaApplies, apply: shrinkEtaApply},
	{name: "shrink Zeta", applies: shrinkZetaApplies, apply: shrinkZetaApply},
	{name: "corner", applies: cornerApplies, apply: cornerApply},
}

// firstApplicable returns the index of the first step whose condition
// holds, or -1 when the cell is reduced.
func (c *cell) firstApplicable() int {
	for i := range steps {
		if steps[i].applies(c) {
			return i
		}
	}

	return -1
}

// --- ordering steps ---------------------------------------------------

// A must not exceed B; on a tie the dot products decide.
func orderABApplies(c *cell) bool {
	return c.gt(c.a, c.b) || (c.eq(c.a, c.b) && c.gt(math.Abs(c.xi), math.Abs(c.eta)))
}

// Swap rows 0 and 1, negating row 2 to keep det(p) = +1:
// (A,Ξ) ↔ (B,Η) with both dot products changing sign.
func orderABApply(c *cell) {
	c.p.SwapRows(0, 1)
	c.p.NegateRow(2)
	c.a, c.b = c.b, c.a
	c.xi, c.eta = -c.eta, -c.xi
}

func orderBCApplies(c *cell) bool {
	return c.gt(c.b, c.c) || (c.eq(c.b, c.c) && c.gt(math.Abs(c.eta), math.Abs(c.zeta)))
}

// Swap rows 1 and 2, negating row 0: (B,Η) ↔ (C,Ζ) with sign change.
func orderBCApply(c *cell) {
	c.p.SwapRows(1, 2)
	c.p.NegateRow(0)
	c.b, c.c = c.c, c.b
	c.eta, c.zeta = -c.zeta, -c.eta
}

// --- sign normalization ----------------------------------------------

// flipPair returns which pair of parameters must change sign to reach
// the target convention, as a row index to negate (negating one basis
// vector flips exactly the two dot products involving it), or -1 when
// no flip is needed or none is reachable.
//
// Reachable sign patterns always flip an even number of parameters, so
// when an odd set needs flipping a tol-level zero parameter absorbs the
// parity (its sign is immaterial).
func (c *cell) flipPair(wantNonNegative bool) int {
	var flip [3]bool
	z := -1
	params := [3]float64{c.xi, c.eta, c.zeta}
	for i, v := range params {
		switch c.class(v) {
		case 0:
			z = i
		case -1:
			if wantNonNegative {
				flip[i] = true
			}
		case 1:
			if !wantNonNegative {
				flip[i] = true
			}
		}
	}
	count := 0
	for _, f := range flip {
		if f {
			count++
		}
	}
	if count%2 == 1 {
		if z < 0 {
			return -1
		}
		flip[z] = !flip[z]
	}

	switch {
	case flip[0] && flip[1]: // Ξ and Η share row 2
		return 2
	case flip[0] && flip[2]: // Ξ and Ζ share row 1
		return 1
	case flip[1] && flip[2]: // Η and Ζ share row 0
		return 0
	default:
		return -1
	}
}

// When the product of the dot products is positive (all three nonzero,
// an even number negative) the convention is all non-negative.
func signsPositiveApplies(c *cell) bool {
	if c.class(c.xi)*c.class(c.eta)*c.class(c.zeta) != 1 {
		return false
	}

	return c.flipPair(true) >= 0
}

func signsPositiveApply(c *cell) {
	c.negateRow(c.flipPair(true))
}

// Otherwise (a zero or an odd number of negatives) the convention is
// all non-positive.
func signsNonPositiveApplies(c *cell) bool {
	if c.class(c.xi)*c.class(c.eta)*c.class(c.zeta) == 1 {
		return false
	}

	return c.flipPair(false) >= 0
}

func signsNonPositiveApply(c *cell) {
	c.negateRow(c.flipPair(false))
}

// negateRow flips one basis vector: p and the two dot products
// involving that row.
func (c *cell) negateRow(i int) {
	c.p.NegateRow(i)
	switch i {
	case 0:
		c.eta, c.zeta = -c.eta, -c.zeta
	case 1:
		c.xi, c.zeta = -c.xi, -c.zeta
	case 2:
		c.xi, c.eta = -c.xi, -c.eta
	}
}

// --- shrinking steps --------------------------------------------------

// roundMultiple picks the integer multiple to subtract so the dot
// product lands in [−len/2, len/2]. The condition fires at the ±len/2
// boundary too, where rounding may yield zero; force ±1 there so the
// step always changes the cell.
func roundMultiple(dot, length float64) int64 {
	j := int64(math.Round(dot / length))
	if j == 0 {
		if dot > 0 {
			return 1
		}

		return -1
	}

	return j
}

// Ξ against B: |Ξ| must not exceed B/2; boundary ties pick the
// representative with the canonical sign combination.
func shrinkXiApplies(c *cell) bool {
	switch {
	case c.gt(math.Abs(c.xi), c.b/2):
		return true
	case c.eq(c.xi, c.b/2):
		return c.lt(2*c.eta, c.zeta)
	case c.eq(c.xi, -c.b/2):
		return c.lt(c.zeta, 0)
	default:
		return false
	}
}

// Row 2 −= j · row 1.
func shrinkXiApply(c *cell) {
	j := roundMultiple(c.xi, c.b)
	c.p.AddRowMultiple(2, 1, -j)
	f := float64(j)
	c.c += f*f*c.b - 2*f*c.xi
	c.eta -= f * c.zeta
	c.xi -= f * c.b
}

// Η against A.
func shrinkEtaApplies(c *cell) bool {
	switch {
	case c.gt(math.Abs(c.eta), c.a/2):
		return true
	case c.eq(c.eta, c.a/2):
		return c.lt(2*c.xi, c.zeta)
	case c.eq(c.eta, -c.a/2):
		return c.lt(c.zeta, 0)
	default:
		return false
	}
}

// Row 2 −= j · row 0.
func shrinkEtaApply(c *cell) {
	j := roundMultiple(c.eta, c.a)
	c.p.AddRowMultiple(2, 0, -j)
	f := float64(j)
	c.c += f*f*c.a - 2*f*c.eta
	c.xi -= f * c.zeta
	c.eta -= f * c.a
}

// Ζ against A.
func shrinkZetaApplies(c *cell) bool {
	switch {
	case c.gt(math.Abs(c.zeta), c.a/2):
		return true
	case c.eq(c.zeta, c.a/2):
		return c.lt(2*c.xi, c.eta)
	case c.eq(c.zeta, -c.a/2):
		return c.lt(c.eta, 0)
	default:
		return false
	}
}

// Row 1 −= j · row 0.
func shrinkZetaApply(c *cell) {
	j := roundMultiple(c.zeta, c.a)
	c.p.AddRowMultiple(1, 0, -j)
	f := float64(j)
	c.b += f*f*c.a - 2*f*c.zeta
	c.xi -= f * c.eta
	c.zeta -= f * c.a
}

// --- final corner condition ------------------------------------------

// total is |r0+r1+r2|² − C; the last Gruber condition requires it
// non-negative, with a tie broken on the body diagonal orientation.
func (c *cell) total() float64 {
	return c.a + c.b + 2*(c.xi+c.eta+c.zeta)
}

func cornerApplies(c *cell) bool {
	s := c.total()
	if c.lt(s, 0) {
		return true
	}

	return c.eq(s, 0) && c.gt(c.a+2*c.eta+c.zeta, 0)
}

// Row 2 += row 0 + row 1.
func cornerApply(c *cell) {
	c.p.AddRowMultiple(2, 0, 1)
	c.p.AddRowMultiple(2, 1, 1)
	s := c.total()
	c.c += s
	c.xi += c.zeta + c.b
	c.eta += c.zeta + c.a
}
