// Package bandit provides concrete k-armed bandit environments.
//
// A Testbed holds one RewardSampler per arm. Arm parameters are drawn when the
// testbed is built and again on every Reset; between resets the distributions
// are stationary and the only state that advances is the RNG stream.
package bandit

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/kbandit/kbandit/sim"
)

// ErrInvalidAction is returned by Step for actions outside [0, k).
var ErrInvalidAction = errors.New("invalid action")

// DefaultStdDev is used for a gaussian testbed's MeanStdDev and RewardStdDev
// when the config leaves them unset.
const DefaultStdDev = 1.0

// Kind names a testbed family.
type Kind string

const (
	// KindGaussian draws arm means from N(0, MeanStdDev²) and pays N(mean, RewardStdDev²).
	KindGaussian Kind = "gaussian"
	// KindBernoulli draws arm probabilities from U[0, 1) and pays 0 or 1.
	KindBernoulli Kind = "bernoulli"
	// KindConstant pays fixed per-arm Values with no noise.
	KindConstant Kind = "constant"
)

// validKinds maps accepted testbed kinds.
var validKinds = map[Kind]bool{
	KindGaussian:  true,
	KindBernoulli: true,
	KindConstant:  true,
}

// IsValidKind returns true if the given string names a known testbed kind.
func IsValidKind(kind string) bool {
	return validKinds[Kind(kind)]
}

// Config describes a testbed. It is embedded in experiment YAML files.
// Nil standard deviations mean DefaultStdDev; an explicit 0 is honoured.
type Config struct {
	Kind         Kind      `yaml:"kind"`
	Arms         int       `yaml:"arms"`
	MeanStdDev   *float64  `yaml:"mean_std_dev,omitempty"`
	RewardStdDev *float64  `yaml:"reward_std_dev,omitempty"`
	Values       []float64 `yaml:"values,omitempty"` // constant kind only
}

// MeanSpread returns the standard deviation of the gaussian arm means.
func (c Config) MeanSpread() float64 {
	return stdDevOrDefault(c.MeanStdDev)
}

// RewardNoise returns the standard deviation of gaussian rewards around an arm's mean.
func (c Config) RewardNoise() float64 {
	return stdDevOrDefault(c.RewardStdDev)
}

func stdDevOrDefault(v *float64) float64 {
	if v == nil {
		return DefaultStdDev
	}
	return *v
}

// Validate checks the config for internal consistency.
func (c Config) Validate() error {
	if !validKinds[c.Kind] {
		return fmt.Errorf("unknown environment kind %q; valid kinds: [gaussian, bernoulli, constant]", c.Kind)
	}
	if c.Arms <= 0 {
		return fmt.Errorf("arms must be positive, got %d", c.Arms)
	}
	if !(c.MeanSpread() >= 0) || !(c.RewardNoise() >= 0) {
		return fmt.Errorf("standard deviations must be non-negative, got mean_std_dev=%v reward_std_dev=%v",
			c.MeanSpread(), c.RewardNoise())
	}
	if c.Kind == KindConstant && len(c.Values) != c.Arms {
		return fmt.Errorf("constant environment needs %d values, got %d", c.Arms, len(c.Values))
	}
	return nil
}

// Testbed is a k-armed bandit environment.
// Not safe for concurrent use; agents sharing a Testbed must play serially.
type Testbed struct {
	cfg  Config
	arms []RewardSampler
	rng  *rand.Rand
}

var _ sim.Environment = (*Testbed)(nil)

// NewTestbed validates cfg and returns a testbed with freshly drawn arms.
func NewTestbed(cfg Config, rng *rand.Rand) (*Testbed, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	tb := &Testbed{cfg: cfg, rng: rng}
	if err := tb.Reset(); err != nil {
		return nil, err
	}
	return tb, nil
}

// NumActions returns the number of arms.
func (tb *Testbed) NumActions() int {
	return tb.cfg.Arms
}

// Reset re-draws every arm's parameters from the testbed's RNG.
// Constant testbeds are rebuilt from their fixed values.
func (tb *Testbed) Reset() error {
	arms := make([]RewardSampler, tb.cfg.Arms)
	for i := range arms {
		switch tb.cfg.Kind {
		case KindGaussian:
			arms[i] = &GaussianArm{
				mean:   tb.rng.NormFloat64() * tb.cfg.MeanSpread(),
				stdDev: tb.cfg.RewardNoise(),
			}
		case KindBernoulli:
			arms[i] = &BernoulliArm{p: clampProbability(tb.rng.Float64())}
		case KindConstant:
			arms[i] = &ConstantArm{value: tb.cfg.Values[i]}
		default:
			return fmt.Errorf("reset: unknown environment kind %q", tb.cfg.Kind)
		}
	}
	tb.arms = arms
	return nil
}

// Step pulls arm action and returns its reward.
func (tb *Testbed) Step(action int) (sim.StepResult, error) {
	if action < 0 || action >= len(tb.arms) {
		return sim.StepResult{}, fmt.Errorf("action %d not in [0, %d): %w", action, len(tb.arms), ErrInvalidAction)
	}
	return sim.StepResult{
		Observation: 0,
		Reward:      tb.arms[action].Sample(tb.rng),
		Done:        false,
	}, nil
}

// Means returns the expected reward of every arm.
func (tb *Testbed) Means() []float64 {
	means := make([]float64, len(tb.arms))
	for i, a := range tb.arms {
		means[i] = a.Mean()
	}
	return means
}

// OptimalAction returns the arm with the highest expected reward
// (lowest index on ties).
func (tb *Testbed) OptimalAction() int {
	return floats.MaxIdx(tb.Means())
}
