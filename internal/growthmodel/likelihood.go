package growthmodel

import (
	"gonum.org/v1/gonum/stat/distuv"
)

// LogLikelihood computes the total Normal log-likelihood of the
// observed areas given the deterministic model mean at each time and
// the shared residual sigma.
//
// Fails with ErrNonPositiveSigma when params.Sigma <= 0 and with
// *ShapeMismatchError when the series lengths differ.
func LogLikelihood(params Params, model Model, times, areas []float64) (float64, error) {
	if len(times) != len(areas) {
		return 0, &ShapeMismatchError{Want: len(times), Got: len(areas)}
	}
	if len(times) == 0 {
		return 0, ErrNoObservations
	}
	if params.Sigma <= 0 {
		return 0, ErrNonPositiveSigma
	}

	dist := distuv.Normal{Sigma: params.Sigma}

	var sum float64
	for i, t := range times {
		dist.Mu = model(params.A0, params.K, t)
		sum += dist.LogProb(areas[i])
	}

	return sum, nil
}

// AIC computes the Akaike information criterion for the model under
// the given parameters: -2 * (logL - numParams). Lower is better.
func AIC(params Params, model Model, times, areas []float64) (float64, error) {
	ll, err := LogLikelihood(params, model, times, areas)
	if err != nil {
		return 0, err
	}
	return -2 * (ll - NumParams), nil
}
