package sim

import (
	"fmt"
	"hash/fnv"
	"math/rand"
)

// SimulationKey is the master seed of an experiment. Replaying a config with
// the same key reproduces every agent's history step for step.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// SubsystemEnvironment seeds the testbed: arm draws on Reset and reward noise.
// It takes the master seed unchanged, so --seed alone pins the arms.
const SubsystemEnvironment = "environment"

// SubsystemAgent returns the subsystem name for the agent at position id.
// Each agent gets its own stream, so adding an agent never perturbs the others.
func SubsystemAgent(id int) string {
	return fmt.Sprintf("agent_%d", id)
}

// PartitionedRNG hands out one *rand.Rand per named stream, all derived from a
// single key. The environment stream is seeded with the key itself and every
// agent stream with key XOR fnv1a64(name). Agent draws never consume the
// environment's stream.
// Not safe for concurrent use.
type PartitionedRNG struct {
	key        SimulationKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the stream for name, creating it on first use.
// Repeat calls with the same name share one *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}

	seed := int64(p.key)
	if name != SubsystemEnvironment {
		seed ^= fnv1a64(name)
	}
	rng := rand.New(rand.NewSource(seed))
	p.subsystems[name] = rng
	return rng
}

// Key returns the master seed.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 spreads stream names across the seed space.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
