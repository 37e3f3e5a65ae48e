package report

import (
	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"

	"github.com/kbandit/kbandit/sim/experiment"
	"github.com/kbandit/kbandit/sim/trace"
)

// Summary aggregates an experiment outcome for final reporting.
type Summary struct {
	RunID      string         `yaml:"run_id"`
	Seed       int64          `yaml:"seed"`
	Steps      int            `yaml:"steps"`
	NumActions int            `yaml:"num_actions"`
	Agents     []AgentSummary `yaml:"agents"`
}

// AgentSummary describes one agent's play.
type AgentSummary struct {
	Name               string       `yaml:"name"`
	FinalAverageReward float64      `yaml:"final_average_reward"`
	TotalReward        float64      `yaml:"total_reward"`
	MeanEpsilon        float64      `yaml:"mean_epsilon"`
	ExploreCount       int          `yaml:"explore_count"`
	OptimalAction      int          `yaml:"optimal_action"`
	OptimalActionRate  float64      `yaml:"optimal_action_rate"`
	ActionCounts       []int        `yaml:"action_counts"`
	ChiSquare          float64      `yaml:"chi_square"`
	UniformityPValue   float64      `yaml:"uniformity_p_value"`
	Trace              *TraceDigest `yaml:"trace,omitempty"`
}

// TraceDigest is the persisted form of a trace.TraceSummary.
type TraceDigest struct {
	Decisions          int         `yaml:"decisions"`
	Explored           int         `yaml:"explored"`
	Exploited          int         `yaml:"exploited"`
	UniqueActions      int         `yaml:"unique_actions"`
	MeanEpsilon        float64     `yaml:"mean_epsilon"`
	TotalReward        float64     `yaml:"total_reward"`
	ActionDistribution map[int]int `yaml:"action_distribution"`
}

// Summarize computes per-agent statistics. Each call gets a fresh run ID.
func Summarize(out *experiment.Outcome) *Summary {
	s := &Summary{
		RunID:      uuid.NewString(),
		Seed:       out.Seed,
		Steps:      out.Steps,
		NumActions: out.NumActions,
		Agents:     make([]AgentSummary, 0, len(out.Results)),
	}
	for _, r := range out.Results {
		h := r.History
		avg := RunningAverage(h)
		rewards := make([]float64, h.Len())
		for t := range rewards {
			rewards[t] = h.At(t).Reward
		}
		as := AgentSummary{
			Name:              r.Name,
			TotalReward:       floats.Sum(rewards),
			MeanEpsilon:       MeanEpsilon(h),
			OptimalAction:     r.OptimalAction,
			OptimalActionRate: OptimalActionRate(h, r.OptimalAction),
			ActionCounts:      h.Counts(),
		}
		if len(avg) > 0 {
			as.FinalAverageReward = avg[len(avg)-1]
		}
		for t := 0; t < h.Len(); t++ {
			if h.At(t).Explored {
				as.ExploreCount++
			}
		}
		as.ChiSquare, as.UniformityPValue = Uniformity(h)
		if r.Trace != nil {
			ts := trace.Summarize(r.Trace)
			as.Trace = &TraceDigest{
				Decisions:          ts.TotalDecisions,
				Explored:           ts.ExploreCount,
				Exploited:          ts.ExploitCount,
				UniqueActions:      ts.UniqueActions,
				MeanEpsilon:        ts.MeanEpsilon,
				TotalReward:        ts.TotalReward,
				ActionDistribution: ts.ActionDistribution,
			}
		}
		s.Agents = append(s.Agents, as)
	}
	return s
}
