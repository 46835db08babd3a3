// Package growthmodel fits parametric growth curves to per-event
// bacterial area measurements and scores competing models by AIC.
package growthmodel

import "math"

// Model maps (initial area, growth rate, time since division) to a
// theoretical area. Implementations must be pure.
type Model func(a0, k, t float64) float64

// Linear models growth as a constant absolute rate: a0 * (1 + k*t).
func Linear(a0, k, t float64) float64 {
	return a0 * (1 + k*t)
}

// Exponential models growth as a constant relative rate: a0 * exp(k*t).
func Exponential(a0, k, t float64) float64 {
	return a0 * math.Exp(k*t)
}

// Series evaluates the model at every time point.
func Series(m Model, a0, k float64, times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = m(a0, k, t)
	}
	return out
}

// Params holds a fitted model's parameters. Sigma is the maximum-
// likelihood estimate of the residual standard deviation. Values are
// never mutated after a fit returns them.
type Params struct {
	A0    float64 // initial area, sq µm
	K     float64 // growth rate, 1/min
	Sigma float64 // residual standard deviation, sq µm
}

// NumParams is the parameter count used in the AIC penalty:
// a0, k and sigma.
const NumParams = 3
