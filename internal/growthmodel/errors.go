package growthmodel

import (
	"errors"
	"fmt"
)

// ErrNoObservations is returned when a fit or likelihood is requested
// over an empty series.
var ErrNoObservations = errors.New("growthmodel: no observations")

// ErrNonPositiveSigma is returned when a likelihood or simulation is
// requested with sigma <= 0, where the Normal density is undefined.
var ErrNonPositiveSigma = errors.New("growthmodel: sigma must be positive")

// ShapeMismatchError reports parallel time/area slices of different
// lengths.
type ShapeMismatchError struct {
	Want int
	Got  int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("growthmodel: times/areas length mismatch: %d vs %d", e.Want, e.Got)
}

// ConvergenceError wraps an optimizer failure. The underlying cause
// from gonum is preserved unmodified.
type ConvergenceError struct {
	Err error
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("growthmodel: least-squares fit did not converge: %v", e.Err)
}

func (e *ConvergenceError) Unwrap() error { return e.Err }
