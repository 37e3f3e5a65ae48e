package sim

// StepResult is what an Environment returns for one action.
// Only Reward is consumed by the agent; the rest is carried for callers.
type StepResult struct {
	Observation int
	Reward      float64
	Done        bool
	Info        map[string]any
}

// Environment is a stationary k-armed bandit the agent plays against.
//
// Implementations decide how much state they carry between calls. The agents
// in this repository only rely on Step being safe to call repeatedly without
// an intervening Reset.
type Environment interface {
	// NumActions returns k. Valid actions are [0, k).
	NumActions() int

	// Reset (re)initializes the per-action reward distributions.
	Reset() error

	// Step pulls one arm and returns a stochastic reward.
	Step(action int) (StepResult, error)
}
