// Package trace provides per-step decision recording for bandit plays.
// This package has no dependencies on sim/; it stores pure data types.
package trace

// DecisionRecord captures a single explore/exploit decision.
type DecisionRecord struct {
	Step     int
	Action   int
	Epsilon  float64
	Explored bool
	Reward   float64
}
