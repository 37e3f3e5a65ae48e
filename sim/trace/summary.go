package trace

// TraceSummary aggregates statistics from a PlayTrace.
type TraceSummary struct {
	TotalDecisions     int
	ExploreCount       int
	ExploitCount       int
	MeanEpsilon        float64
	TotalReward        float64
	UniqueActions      int
	ActionDistribution map[int]int // action → count of times chosen
}

// Summarize computes aggregate statistics from a PlayTrace.
// Safe for nil or empty traces (returns zero-value fields).
func Summarize(pt *PlayTrace) *TraceSummary {
	summary := &TraceSummary{
		ActionDistribution: make(map[int]int),
	}
	if pt == nil {
		return summary
	}

	summary.TotalDecisions = len(pt.Decisions)
	if summary.TotalDecisions == 0 {
		return summary
	}

	totalEpsilon := 0.0
	for _, d := range pt.Decisions {
		if d.Explored {
			summary.ExploreCount++
		} else {
			summary.ExploitCount++
		}
		summary.ActionDistribution[d.Action]++
		summary.TotalReward += d.Reward
		totalEpsilon += d.Epsilon
	}
	summary.MeanEpsilon = totalEpsilon / float64(summary.TotalDecisions)
	summary.UniqueActions = len(summary.ActionDistribution)

	return summary
}
