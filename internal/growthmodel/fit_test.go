package growthmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/exp/rand"
)

func TestFitMLENoiselessLinear(t *testing.T) {
	const (
		a0 = 10.0
		k  = 0.1
	)
	times := []float64{0, 2, 4, 6, 8, 10, 12, 14, 16, 18}
	areas := Series(Linear, a0, k, times)

	params, err := FitMLE(times, areas, Linear, DefaultFitOptions())
	require.NoError(t, err)

	assert.InDelta(t, a0, params.A0, 0.05)
	assert.InDelta(t, k, params.K, 0.005)
	assert.InDelta(t, 0, params.Sigma, 0.05)
}

func TestFitMLENoiselessExponential(t *testing.T) {
	const (
		a0 = 50.0
		k  = 0.08
	)
	times := []float64{0, 3, 6, 9, 12, 15, 18, 21}
	areas := Series(Exponential, a0, k, times)

	params, err := FitMLE(times, areas, Exponential, DefaultFitOptions())
	require.NoError(t, err)

	assert.InDelta(t, a0, params.A0, 0.5)
	assert.InDelta(t, k, params.K, 0.005)
}

// Round trip: simulate from known parameters, refit, and check the
// estimates land in a tolerance band around the truth.
func TestFitMLERecoversSimulatedParameters(t *testing.T) {
	truth := Params{A0: 120, K: 0.08, Sigma: 5}

	times := make([]float64, 30)
	for i := range times {
		times[i] = float64(i)
	}

	src := rand.NewSource(42)
	samples, err := Generate(truth, Linear, times, 1, src)
	require.NoError(t, err)

	params, err := FitMLE(times, samples[0], Linear, DefaultFitOptions())
	require.NoError(t, err)

	assert.InDelta(t, truth.A0, params.A0, 15)
	assert.InDelta(t, truth.K, params.K, 0.03)
	assert.InDelta(t, truth.Sigma, params.Sigma, 3)
}

func TestFitMLERespectsBounds(t *testing.T) {
	// Shrinking areas would pull k negative; the lower bound pins it
	// at zero.
	times := []float64{0, 1, 2, 3, 4}
	areas := []float64{100, 95, 90, 85, 80}

	params, err := FitMLE(times, areas, Linear, DefaultFitOptions())
	require.NoError(t, err)

	assert.GreaterOrEqual(t, params.K, 0.0)
	assert.GreaterOrEqual(t, params.A0, 0.0)
}

func TestFitMLEErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, err := FitMLE(nil, nil, Linear, DefaultFitOptions())
		assert.ErrorIs(t, err, ErrNoObservations)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := FitMLE([]float64{1, 2}, []float64{1}, Linear, DefaultFitOptions())
		var shapeErr *ShapeMismatchError
		assert.ErrorAs(t, err, &shapeErr)
	})
}

func TestFitOptionsBuilders(t *testing.T) {
	opts := DefaultFitOptions().
		WithInitial(100, 0.5).
		WithBounds([2]float64{1, 0}, [2]float64{1000, 2})

	assert.Equal(t, [2]float64{100, 0.5}, opts.Initial)
	assert.Equal(t, [2]float64{1, 0}, opts.Lower)
	assert.Equal(t, [2]float64{1000, 2}, opts.Upper)
}
