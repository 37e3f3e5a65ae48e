package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_Estimates_MatchFullRecompute(t *testing.T) {
	// GIVEN a history with repeated actions
	h := NewHistory(3, 0)
	recs := []StepRecord{
		{Action: 0, Reward: 1},
		{Action: 2, Reward: 4},
		{Action: 0, Reward: 3},
		{Action: 2, Reward: -2},
		{Action: 2, Reward: 1},
	}
	for _, r := range recs {
		h.Append(r)
	}

	// THEN the incremental table equals a from-scratch mean per action
	assert.Equal(t, []float64{2, 0, 1}, h.Estimates())
	assert.Equal(t, []int{2, 0, 3}, h.Counts())
	assert.Equal(t, 5, h.Len())
	assert.Equal(t, recs, h.Records())
}

func TestHistory_Records_ReturnsCopy(t *testing.T) {
	h := historyOf(2, StepRecord{Action: 1, Reward: 1})
	recs := h.Records()
	recs[0].Reward = 99

	assert.Equal(t, 1.0, h.At(0).Reward)
}

func TestHistory_Prefix_OnlyKeepsEarlierSteps(t *testing.T) {
	h := historyOf(2,
		StepRecord{Action: 0, Reward: 1},
		StepRecord{Action: 1, Reward: 5},
		StepRecord{Action: 1, Reward: 7},
	)

	p := h.Prefix(2)

	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []float64{1, 5}, p.Estimates())
	assert.Equal(t, 0, h.Prefix(0).Len())
}

func TestHistory_Append_OutOfRange_Panics(t *testing.T) {
	h := NewHistory(2, 0)
	assert.Panics(t, func() { h.Append(StepRecord{Action: 2}) })
	assert.Panics(t, func() { h.Append(StepRecord{Action: -1}) })
}

func TestNewHistory_NonPositiveActions_Panics(t *testing.T) {
	assert.Panics(t, func() { NewHistory(0, 10) })
}
