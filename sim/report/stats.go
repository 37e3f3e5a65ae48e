// Package report turns agent histories into running averages, action
// statistics and report artifacts.
package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/kbandit/kbandit/sim"
)

// RunningAverage returns, for every step t, the mean reward over steps 0..t.
func RunningAverage(h *sim.History) []float64 {
	rewards := make([]float64, h.Len())
	for t := range rewards {
		rewards[t] = h.At(t).Reward
	}
	cum := make([]float64, len(rewards))
	floats.CumSum(cum, rewards)
	for t := range cum {
		cum[t] /= float64(t + 1)
	}
	return cum
}

// OptimalActionRate returns the fraction of steps that chose the optimal arm.
// Returns 0 for an empty history or an unknown (negative) optimal arm.
func OptimalActionRate(h *sim.History, optimal int) float64 {
	if h.Len() == 0 || optimal < 0 || optimal >= h.NumActions() {
		return 0
	}
	return float64(h.Counts()[optimal]) / float64(h.Len())
}

// Uniformity runs a chi-square goodness-of-fit test of the action counts
// against a uniform distribution over all arms. A high p-value means the
// agent's choices look uniformly random.
func Uniformity(h *sim.History) (chi2, pValue float64) {
	k := h.NumActions()
	if h.Len() == 0 || k < 2 {
		return 0, 1
	}
	obs := make([]float64, k)
	for a, c := range h.Counts() {
		obs[a] = float64(c)
	}
	exp := make([]float64, k)
	for a := range exp {
		exp[a] = float64(h.Len()) / float64(k)
	}
	chi2 = stat.ChiSquare(obs, exp)
	pValue = distuv.ChiSquared{K: float64(k - 1)}.Survival(chi2)
	return chi2, pValue
}

// MeanEpsilon returns the average epsilon used across the play.
func MeanEpsilon(h *sim.History) float64 {
	if h.Len() == 0 {
		return 0
	}
	eps := make([]float64, h.Len())
	for t := range eps {
		eps[t] = h.At(t).Epsilon
	}
	return stat.Mean(eps, nil)
}
