package growthmodel

import (
	"fmt"
	"sort"
)

// Candidate names a model for comparison.
type Candidate struct {
	Name  string
	Model Model
}

// DefaultCandidates returns the two growth hypotheses this library
// distinguishes between: linear and exponential.
func DefaultCandidates() []Candidate {
	return []Candidate{
		{Name: "linear", Model: Linear},
		{Name: "exponential", Model: Exponential},
	}
}

// FitResult is one candidate's fit plus its scores.
type FitResult struct {
	Name   string
	Model  Model
	Params Params
	LogLik float64
	AIC    float64
}

// Ranking holds fit results sorted by ascending AIC (best first).
type Ranking struct {
	Results []FitResult
}

// Best returns the lowest-AIC result.
func (r Ranking) Best() FitResult {
	return r.Results[0]
}

// Compare fits every candidate model to the same (time, area) series
// and ranks them by AIC. A fit failure for any candidate aborts the
// comparison; a ranking over a partial candidate set would silently
// bias model selection.
func Compare(times, areas []float64, opts FitOptions, candidates ...Candidate) (Ranking, error) {
	if len(candidates) == 0 {
		candidates = DefaultCandidates()
	}

	results := make([]FitResult, 0, len(candidates))
	for _, c := range candidates {
		params, err := FitMLE(times, areas, c.Model, opts)
		if err != nil {
			return Ranking{}, fmt.Errorf("fit %s: %w", c.Name, err)
		}

		ll, err := LogLikelihood(params, c.Model, times, areas)
		if err != nil {
			return Ranking{}, fmt.Errorf("likelihood %s: %w", c.Name, err)
		}

		results = append(results, FitResult{
			Name:   c.Name,
			Model:  c.Model,
			Params: params,
			LogLik: ll,
			AIC:    -2 * (ll - NumParams),
		})
	}

	sort.Slice(results, func(i, j int) bool { return results[i].AIC < results[j].AIC })

	return Ranking{Results: results}, nil
}
