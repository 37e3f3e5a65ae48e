package sim

import "fmt"

// StepRecord is one (action, reward, epsilon) entry of a play.
type StepRecord struct {
	Action   int
	Reward   float64
	Epsilon  float64 // epsilon in effect at this step
	Explored bool    // true if the action came from the exploration branch
}

// History is the append-only record of a single play.
//
// Alongside the ordered records it maintains a per-action (sum, count) table,
// so Estimates is O(k) regardless of how many steps have been played.
// A History is owned by one agent and is not safe for concurrent use.
type History struct {
	numActions int
	records    []StepRecord
	sums       []float64
	counts     []int
}

// NewHistory creates an empty History over numActions arms. capacity is a
// sizing hint for the record slice.
func NewHistory(numActions, capacity int) *History {
	if numActions <= 0 {
		panic(fmt.Sprintf("NewHistory: numActions must be positive, got %d", numActions))
	}
	if capacity < 0 {
		capacity = 0
	}
	return &History{
		numActions: numActions,
		records:    make([]StepRecord, 0, capacity),
		sums:       make([]float64, numActions),
		counts:     make([]int, numActions),
	}
}

// Append records a completed step. The action must be in [0, NumActions()).
func (h *History) Append(rec StepRecord) {
	if rec.Action < 0 || rec.Action >= h.numActions {
		panic(fmt.Sprintf("History.Append: action %d out of range [0, %d)", rec.Action, h.numActions))
	}
	h.records = append(h.records, rec)
	h.sums[rec.Action] += rec.Reward
	h.counts[rec.Action]++
}

// NumActions returns the number of arms this history covers.
func (h *History) NumActions() int {
	return h.numActions
}

// Len returns the number of recorded steps.
func (h *History) Len() int {
	return len(h.records)
}

// At returns the record for step t.
func (h *History) At(t int) StepRecord {
	return h.records[t]
}

// Records returns a copy of all records in step order.
func (h *History) Records() []StepRecord {
	out := make([]StepRecord, len(h.records))
	copy(out, h.records)
	return out
}

// Counts returns how many times each action has been taken.
func (h *History) Counts() []int {
	out := make([]int, h.numActions)
	copy(out, h.counts)
	return out
}

// Estimates returns the sample-average reward of every action.
// Actions never taken are estimated at 0.0.
func (h *History) Estimates() []float64 {
	q := make([]float64, h.numActions)
	for a, n := range h.counts {
		if n > 0 {
			q[a] = h.sums[a] / float64(n)
		}
	}
	return q
}

// Prefix returns a new History holding only the first n records.
func (h *History) Prefix(n int) *History {
	if n < 0 || n > len(h.records) {
		panic(fmt.Sprintf("History.Prefix: n=%d out of range [0, %d]", n, len(h.records)))
	}
	p := NewHistory(h.numActions, n)
	for _, rec := range h.records[:n] {
		p.Append(rec)
	}
	return p
}
