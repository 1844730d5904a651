package gruber

// Default parameter values for Reduce.
const (
	// DefaultIterMax bounds the number of applied reduction steps.
	// A handful suffices for realistic cells; the cap exists to keep
	// behavior deterministic on adversarial near-boundary input.
	DefaultIterMax = 100

	// DefaultTol widens equality and ordering comparisons on the metric
	// parameters. Suited to cells with lengths of order unity; scale it
	// with the squared cell dimensions otherwise.
	DefaultTol = 1e-8
)

// Options configures the Gruber reduction.
//
// Fields:
//   - IterMax — maximum number of applied transformation steps before
//     Reduce gives up with ErrNonConvergence. Zero is legal and makes
//     Reduce a pure "is it already reduced?" probe (see the IterMax=0
//     contract on Reduce).
//   - Tol — numeric tolerance for equality/ordering decisions on the
//     metric parameters. Must be non-negative.
type Options struct {
	IterMax int
	Tol     float64
}

// DefaultOptions returns the recommended configuration.
func DefaultOptions() Options {
	return Options{IterMax: DefaultIterMax, Tol: DefaultTol}
}
