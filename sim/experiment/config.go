// Package experiment runs several epsilon-greedy agents, one after another,
// against a single shared bandit environment.
package experiment

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/kbandit/kbandit/sim/bandit"
	"github.com/kbandit/kbandit/sim/trace"
)

// DefaultSteps is the play length used when a config does not set one.
const DefaultSteps = 3000

// AgentConfig describes one agent's exploration schedule.
type AgentConfig struct {
	Name         string   `yaml:"name"`
	StartEpsilon float64  `yaml:"start_epsilon"`
	EndEpsilon   *float64 `yaml:"end_epsilon,omitempty"` // nil = constant epsilon
}

// Config is the top-level experiment configuration.
// Loaded from YAML via LoadConfig(path).
type Config struct {
	Seed        int64         `yaml:"seed"`
	Steps       int           `yaml:"steps"`
	TraceLevel  string        `yaml:"trace_level,omitempty"`
	Environment bandit.Config `yaml:"environment"`
	Agents      []AgentConfig `yaml:"agents"`

	// ResetBetweenAgents re-draws the arms before every agent after the first.
	// Off by default: all agents face the same arms, which keeps a single
	// run comparable across agents.
	ResetBetweenAgents bool `yaml:"reset_between_agents,omitempty"`
}

// DefaultConfig returns the classic comparison: a 10-armed gaussian testbed
// played by a greedy, an epsilon-greedy and a decaying epsilon-greedy agent.
func DefaultConfig() *Config {
	decayTo := 0.01
	return &Config{
		Seed:  42,
		Steps: DefaultSteps,
		Environment: bandit.Config{
			Kind: bandit.KindGaussian,
			Arms: 10,
		},
		Agents: []AgentConfig{
			{Name: "greedy", StartEpsilon: 0},
			{Name: "epsilon-greedy", StartEpsilon: 0.1},
			{Name: "decaying epsilon-greedy", StartEpsilon: 0.1, EndEpsilon: &decayTo},
		},
	}
}

// LoadConfig reads and validates an experiment YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading experiment config: %w", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML with strict field checking so typos are errors.
// Unset steps default to DefaultSteps.
func ParseConfig(data []byte) (*Config, error) {
	var cfg Config
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing experiment YAML: %w", err)
	}
	if cfg.Steps == 0 {
		cfg.Steps = DefaultSteps
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the config without running anything.
func (c *Config) Validate() error {
	if c.Steps <= 0 {
		return fmt.Errorf("steps must be positive, got %d", c.Steps)
	}
	if !trace.IsValidTraceLevel(c.TraceLevel) {
		return fmt.Errorf("unknown trace level %q; valid levels: [none, decisions]", c.TraceLevel)
	}
	if err := c.Environment.Validate(); err != nil {
		return fmt.Errorf("environment: %w", err)
	}
	if len(c.Agents) == 0 {
		return fmt.Errorf("at least one agent is required")
	}
	names := make(map[string]bool, len(c.Agents))
	for i, a := range c.Agents {
		if a.Name == "" {
			return fmt.Errorf("agent %d: name is required", i)
		}
		if names[a.Name] {
			return fmt.Errorf("agent %d: duplicate name %q", i, a.Name)
		}
		names[a.Name] = true
		if a.StartEpsilon < 0 || a.StartEpsilon > 1 {
			return fmt.Errorf("agent %q: start_epsilon %v not in [0, 1]", a.Name, a.StartEpsilon)
		}
		if a.EndEpsilon != nil && (*a.EndEpsilon < 0 || *a.EndEpsilon > 1) {
			return fmt.Errorf("agent %q: end_epsilon %v not in [0, 1]", a.Name, *a.EndEpsilon)
		}
	}
	return nil
}
