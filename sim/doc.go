// Package sim provides the decision core of the k-armed bandit simulator.
//
// # Reading Guide
//
// Start with these files to understand the decision loop:
//   - environment.go: the Environment contract an agent plays against
//   - history.go: the append-only step history with per-action aggregates
//   - greedy.go: greedy action selection with random tie-breaking
//   - schedule.go: constant and linearly decaying epsilon schedules
//   - agent.go: the epsilon-greedy play loop
//
// # Architecture
//
// The sim package defines the contract and the agent; everything else lives in
// sub-packages:
//   - sim/bandit/: concrete k-armed testbeds (gaussian, bernoulli, constant arms)
//   - sim/experiment/: runs several agents serially on one shared environment
//   - sim/report/: running averages, action counts and report artifacts
//   - sim/trace/: per-step explore/exploit decision records
//
// Nothing in this package logs or touches process-wide state. All randomness
// flows through an injected *rand.Rand, usually obtained from PartitionedRNG.
package sim
