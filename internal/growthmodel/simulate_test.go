package growthmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestGenerateShape(t *testing.T) {
	params := Params{A0: 100, K: 0.05, Sigma: 4}
	times := []float64{0, 5, 10, 15}

	samples, err := Generate(params, Linear, times, 3, rand.NewSource(1))
	require.NoError(t, err)

	require.Len(t, samples, 3)
	for _, row := range samples {
		assert.Len(t, row, len(times))
	}
}

func TestGenerateSeededReproducibility(t *testing.T) {
	params := Params{A0: 100, K: 0.05, Sigma: 4}
	times := []float64{0, 5, 10, 15}

	a, err := Generate(params, Exponential, times, 2, rand.NewSource(99))
	require.NoError(t, err)
	b, err := Generate(params, Exponential, times, 2, rand.NewSource(99))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateZeroSigmaIsDeterministic(t *testing.T) {
	params := Params{A0: 100, K: 0.05, Sigma: 0}
	times := []float64{0, 5, 10}

	samples, err := Generate(params, Linear, times, 1, rand.NewSource(3))
	require.NoError(t, err)

	assert.Equal(t, Series(Linear, params.A0, params.K, times), samples[0])
}

func TestGenerateRejectsBadInputs(t *testing.T) {
	times := []float64{0, 1}

	_, err := Generate(Params{Sigma: -1}, Linear, times, 1, nil)
	assert.Error(t, err)

	_, err = Generate(Params{Sigma: 1}, Linear, times, 0, nil)
	assert.Error(t, err)
}

func TestCompareRanksByAIC(t *testing.T) {
	truth := Params{A0: 60, K: 0.09, Sigma: 3}

	times := make([]float64, 25)
	for i := range times {
		times[i] = float64(i)
	}
	samples, err := Generate(truth, Exponential, times, 1, rand.NewSource(11))
	require.NoError(t, err)

	ranking, err := Compare(times, samples[0], DefaultFitOptions())
	require.NoError(t, err)
	require.Len(t, ranking.Results, 2)

	assert.Equal(t, "exponential", ranking.Best().Name)
	assert.LessOrEqual(t, ranking.Results[0].AIC, ranking.Results[1].AIC)
}
