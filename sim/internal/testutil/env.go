// Package testutil provides shared test infrastructure for the bandit simulator.
// It consolidates scripted environments and assertion helpers used across
// sim/ and its sub-package tests.
package testutil

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/kbandit/kbandit/sim"
)

// ErrScripted is the error FailingEnv returns.
var ErrScripted = errors.New("scripted environment failure")

// FixedRewardEnv pays a fixed reward per action, with no noise.
// Actions missing from Rewards pay 0. Calls counts every Step per action.
type FixedRewardEnv struct {
	K       int
	Rewards map[int]float64
	Calls   []int
	Resets  int
}

// NewFixedRewardEnv creates a deterministic k-armed environment.
func NewFixedRewardEnv(k int, rewards map[int]float64) *FixedRewardEnv {
	return &FixedRewardEnv{K: k, Rewards: rewards, Calls: make([]int, k)}
}

func (e *FixedRewardEnv) NumActions() int { return e.K }

func (e *FixedRewardEnv) Reset() error {
	e.Resets++
	return nil
}

func (e *FixedRewardEnv) Step(action int) (sim.StepResult, error) {
	if action < 0 || action >= e.K {
		return sim.StepResult{}, fmt.Errorf("action %d out of range [0, %d)", action, e.K)
	}
	e.Calls[action]++
	return sim.StepResult{Observation: 0, Reward: e.Rewards[action]}, nil
}

// TotalCalls returns the number of Step calls across all actions.
func (e *FixedRewardEnv) TotalCalls() int {
	n := 0
	for _, c := range e.Calls {
		n += c
	}
	return n
}

// FailingEnv succeeds for FailAt steps, then returns ErrScripted.
type FailingEnv struct {
	K      int
	FailAt int
	steps  int
}

func (e *FailingEnv) NumActions() int { return e.K }

func (e *FailingEnv) Reset() error { return nil }

func (e *FailingEnv) Step(action int) (sim.StepResult, error) {
	if e.steps >= e.FailAt {
		return sim.StepResult{}, ErrScripted
	}
	e.steps++
	return sim.StepResult{Reward: 1}, nil
}

// AssertFloat64Equal compares two float64 values with relative tolerance.
func AssertFloat64Equal(t *testing.T, name string, want, got, relTol float64) {
	t.Helper()
	if want == 0 && got == 0 {
		return
	}
	diff := math.Abs(want - got)
	maxVal := math.Max(math.Abs(want), math.Abs(got))
	if diff/maxVal > relTol {
		t.Errorf("%s: got %v, want %v (diff=%v, relDiff=%v)", name, got, want, diff, diff/maxVal)
	}
}
