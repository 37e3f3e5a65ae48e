package experiment

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/kbandit/kbandit/sim"
	"github.com/kbandit/kbandit/sim/bandit"
	"github.com/kbandit/kbandit/sim/trace"
)

// Result is one agent's play.
type Result struct {
	Name    string
	History *sim.History
	Trace   *trace.PlayTrace // nil unless tracing is enabled

	// OptimalAction is the arm with the best expected reward while this agent
	// played, or -1 when the environment does not expose it.
	OptimalAction int
}

// Outcome collects every agent's result from one experiment run.
type Outcome struct {
	Seed       int64
	Steps      int
	NumActions int
	Results    []Result
}

// optimalActioner is implemented by environments that know their best arm.
type optimalActioner interface {
	OptimalAction() int
}

// Run builds the configured testbed and plays every agent on it.
func Run(cfg *Config) (*Outcome, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	rng := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed))
	env, err := bandit.NewTestbed(cfg.Environment, rng.ForSubsystem(sim.SubsystemEnvironment))
	if err != nil {
		return nil, fmt.Errorf("building environment: %w", err)
	}
	return RunOn(env, cfg, rng)
}

// RunOn plays every configured agent on env, strictly in order.
//
// env is reset once before the first agent. Unless cfg.ResetBetweenAgents is
// set it is not reset again, so later agents see the same arms as earlier ones.
// Each agent draws from its own RNG stream (sim.SubsystemAgent(i)).
func RunOn(env sim.Environment, cfg *Config, rng *sim.PartitionedRNG) (*Outcome, error) {
	if err := env.Reset(); err != nil {
		return nil, fmt.Errorf("resetting environment: %w", err)
	}

	out := &Outcome{
		Seed:       int64(rng.Key()),
		Steps:      cfg.Steps,
		NumActions: env.NumActions(),
		Results:    make([]Result, 0, len(cfg.Agents)),
	}

	for i, ac := range cfg.Agents {
		if i > 0 && cfg.ResetBetweenAgents {
			if err := env.Reset(); err != nil {
				return nil, fmt.Errorf("resetting environment before agent %q: %w", ac.Name, err)
			}
		}

		optimal := -1
		if oa, ok := env.(optimalActioner); ok {
			optimal = oa.OptimalAction()
		}

		logrus.Infof("Training %s agent", ac.Name)
		agent := sim.NewAgent(env, ac.StartEpsilon, ac.EndEpsilon, rng.ForSubsystem(sim.SubsystemAgent(i)))
		if trace.TraceLevel(cfg.TraceLevel).Enabled() {
			agent.Trace = trace.NewPlayTrace(trace.TraceConfig{Level: trace.TraceLevel(cfg.TraceLevel)})
		}

		h, err := agent.Play(cfg.Steps)
		if err != nil {
			return nil, fmt.Errorf("agent %q: %w", ac.Name, err)
		}
		logrus.Debugf("%s agent finished %d steps; action counts %v", ac.Name, h.Len(), h.Counts())

		out.Results = append(out.Results, Result{
			Name:          ac.Name,
			History:       h,
			Trace:         agent.Trace,
			OptimalAction: optimal,
		})
	}
	return out, nil
}
