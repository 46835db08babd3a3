package growthmodel

import (
	"math"

	"gonum.org/v1/gonum/optimize"
)

// FitOptions configures the bounded least-squares fit.
type FitOptions struct {
	// Initial guess for (a0, k).
	Initial [2]float64

	// Box constraints on (a0, k). Lower defaults to (0, 0): neither a
	// starting area nor a growth rate can be negative for a growing
	// cell. Upper defaults to +Inf.
	Lower [2]float64
	Upper [2]float64
}

// DefaultFitOptions returns the standard starting point and bounds.
func DefaultFitOptions() FitOptions {
	return FitOptions{
		Initial: [2]float64{1, 0},
		Lower:   [2]float64{0, 0},
		Upper:   [2]float64{math.Inf(1), math.Inf(1)},
	}
}

// WithInitial returns a copy of the options with a different starting
// point. Useful when a previous event's fit is a better guess than the
// defaults.
func (o FitOptions) WithInitial(a0, k float64) FitOptions {
	o.Initial = [2]float64{a0, k}
	return o
}

// WithBounds returns a copy of the options with custom box constraints.
func (o FitOptions) WithBounds(lower, upper [2]float64) FitOptions {
	o.Lower = lower
	o.Upper = upper
	return o
}

// FitMLE computes maximum-likelihood estimates for the model
// parameters by bounded nonlinear least squares on the residuals
// area - model(a0, k, time), then derives the residual noise estimate
// sigma = sqrt(RSS/n).
//
// The minimization uses gonum's derivative-free Nelder-Mead simplex;
// box constraints are enforced by projecting candidate points onto the
// feasible region before evaluating the objective. Optimizer failures
// surface as *ConvergenceError with the gonum cause wrapped.
func FitMLE(times, areas []float64, model Model, opts FitOptions) (Params, error) {
	if len(times) != len(areas) {
		return Params{}, &ShapeMismatchError{Want: len(times), Got: len(areas)}
	}
	if len(times) == 0 {
		return Params{}, ErrNoObservations
	}

	clamp := func(x []float64) (float64, float64) {
		a0 := math.Min(math.Max(x[0], opts.Lower[0]), opts.Upper[0])
		k := math.Min(math.Max(x[1], opts.Lower[1]), opts.Upper[1])
		return a0, k
	}

	rss := func(x []float64) float64 {
		a0, k := clamp(x)
		var sum float64
		for i, t := range times {
			r := areas[i] - model(a0, k, t)
			sum += r * r
		}
		return sum
	}

	problem := optimize.Problem{Func: rss}
	initial := []float64{opts.Initial[0], opts.Initial[1]}

	result, err := optimize.Minimize(problem, initial, nil, &optimize.NelderMead{})
	if err != nil {
		return Params{}, &ConvergenceError{Err: err}
	}

	a0, k := clamp(result.X)
	sigma := math.Sqrt(rss(result.X) / float64(len(times)))

	return Params{A0: a0, K: k, Sigma: sigma}, nil
}
