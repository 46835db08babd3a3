package growthmodel

import (
	"fmt"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

// Generate draws synthetic area measurements from a fitted (or
// hypothetical) model: size independent replicates, each sampling one
// Normal(model(a0, k, t), sigma) value per time point. The result is
// a size x len(times) matrix.
//
// The random source is injected by the caller so simulations are
// reproducible; pass nil to fall back to gonum's global source.
func Generate(params Params, model Model, times []float64, size int, src rand.Source) ([][]float64, error) {
	if size < 1 {
		return nil, fmt.Errorf("growthmodel: replicate count must be >= 1, got %d", size)
	}
	if params.Sigma < 0 {
		return nil, fmt.Errorf("growthmodel: negative sigma %v", params.Sigma)
	}

	dist := distuv.Normal{Sigma: params.Sigma, Src: src}
	means := Series(model, params.A0, params.K, times)

	samples := make([][]float64, size)
	for i := range samples {
		row := make([]float64, len(times))
		for j, mu := range means {
			dist.Mu = mu
			row[j] = dist.Rand()
		}
		samples[i] = row
	}

	return samples, nil
}
