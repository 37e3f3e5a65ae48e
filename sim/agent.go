package sim

import (
	"fmt"
	"math/rand"

	"github.com/kbandit/kbandit/sim/trace"
)

// Agent runs an epsilon-greedy decision process against an Environment.
//
// At every step the agent either explores (uniformly random action) with
// probability epsilon, or exploits by calling GreedyAction on the steps played
// so far. Epsilon follows a schedule computed once per play: constant at
// StartEpsilon when EndEpsilon is nil, otherwise a linear decay.
type Agent struct {
	StartEpsilon float64
	EndEpsilon   *float64 // nil = no decay

	// Trace, when non-nil, receives one decision record per step.
	Trace *trace.PlayTrace

	env Environment
	rng *rand.Rand
}

// NewAgent creates an agent playing env. rng drives both the explore/exploit
// coin and tie-breaking; pass a dedicated stream for reproducible plays.
func NewAgent(env Environment, startEpsilon float64, endEpsilon *float64, rng *rand.Rand) *Agent {
	return &Agent{
		StartEpsilon: startEpsilon,
		EndEpsilon:   endEpsilon,
		env:          env,
		rng:          rng,
	}
}

// Play runs nSteps decisions and returns the full history.
//
// The action at step t depends only on records 0..t-1. An error from the
// environment aborts the play and is returned wrapped with the step index.
func (a *Agent) Play(nSteps int) (*History, error) {
	if nSteps <= 0 {
		return nil, fmt.Errorf("play %d steps: %w", nSteps, ErrInvalidSteps)
	}
	k := a.env.NumActions()
	if k <= 0 {
		return nil, fmt.Errorf("environment reports %d actions: %w", k, ErrNoActions)
	}
	schedule, err := NewEpsilonSchedule(a.StartEpsilon, a.EndEpsilon, nSteps)
	if err != nil {
		return nil, err
	}

	h := NewHistory(k, nSteps)
	for t := 0; t < nSteps; t++ {
		eps := schedule.At(t)
		action, explored := a.selectAction(h, eps)

		res, err := a.env.Step(action)
		if err != nil {
			return nil, fmt.Errorf("environment step %d (action %d): %w", t, action, err)
		}

		h.Append(StepRecord{Action: action, Reward: res.Reward, Epsilon: eps, Explored: explored})
		if a.Trace != nil {
			a.Trace.RecordDecision(trace.DecisionRecord{
				Step:     t,
				Action:   action,
				Epsilon:  eps,
				Explored: explored,
				Reward:   res.Reward,
			})
		}
	}
	return h, nil
}

// selectAction applies the epsilon-greedy rule for one step.
// With eps == 0 no coin is drawn at all.
func (a *Agent) selectAction(h *History, eps float64) (action int, explored bool) {
	if eps == 0 {
		return GreedyAction(h, a.rng), false
	}
	if a.rng.Float64() <= eps {
		return a.rng.Intn(h.NumActions()), true
	}
	return GreedyAction(h, a.rng), false
}
