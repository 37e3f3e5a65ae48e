package bandit

import (
	"math"
	"math/rand"
)

// RewardSampler draws rewards for a single arm.
type RewardSampler interface {
	// Sample returns one reward.
	Sample(rng *rand.Rand) float64
	// Mean returns the expected reward.
	Mean() float64
}

// GaussianArm pays N(mean, stdDev²).
type GaussianArm struct {
	mean, stdDev float64
}

// Sample draws from N(mean, stdDev²). A zero stdDev returns the mean without
// touching rng.
func (a *GaussianArm) Sample(rng *rand.Rand) float64 {
	if a.stdDev == 0 {
		return a.mean
	}
	return rng.NormFloat64()*a.stdDev + a.mean
}

// Mean returns the arm's true mean.
func (a *GaussianArm) Mean() float64 { return a.mean }

// BernoulliArm pays 1 with probability p and 0 otherwise.
type BernoulliArm struct {
	p float64
}

// Sample returns 1 with probability p, consuming one Float64 from rng.
func (a *BernoulliArm) Sample(rng *rand.Rand) float64 {
	if rng.Float64() < a.p {
		return 1
	}
	return 0
}

// Mean returns p.
func (a *BernoulliArm) Mean() float64 { return a.p }

// ConstantArm always pays the same value.
type ConstantArm struct {
	value float64
}

// Sample returns the fixed value; rng is unused.
func (a *ConstantArm) Sample(_ *rand.Rand) float64 { return a.value }

// Mean returns the fixed value.
func (a *ConstantArm) Mean() float64 { return a.value }

// clampProbability keeps Bernoulli parameters inside [0, 1].
func clampProbability(p float64) float64 {
	return math.Min(1, math.Max(0, p))
}
