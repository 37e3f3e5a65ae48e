package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kbandit/kbandit/sim/bandit"
	"github.com/kbandit/kbandit/sim/experiment"
	"github.com/kbandit/kbandit/sim/report"
)

var (
	// CLI flags for the run command
	configPath         string // Experiment YAML file
	seed               int64  // Master seed for environment and agents
	steps              int    // Steps per agent play
	arms               int    // Number of arms
	envKind            string // Testbed kind
	outputDir          string // Report destination directory
	traceLevel         string // Decision trace level
	resetBetweenAgents bool   // Re-draw arms before every agent
	logLevel           string // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "kbandit",
	Short: "Epsilon-greedy k-armed bandit simulator",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)
	},
}

// runCmd plays every configured agent and reports the results
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a bandit experiment",
	Run: func(cmd *cobra.Command, args []string) {
		loadDotEnv()

		cfg, err := resolveConfig(cmd)
		if err != nil {
			logrus.Fatalf("Invalid experiment configuration: %v", err)
		}

		logrus.Infof("Starting experiment: %d agents, %d steps, %d %s arms, seed=%d",
			len(cfg.Agents), cfg.Steps, cfg.Environment.Arms, cfg.Environment.Kind, cfg.Seed)

		out, err := experiment.Run(cfg)
		if err != nil {
			logrus.Fatalf("Experiment failed: %v", err)
		}

		dest := resolveOutputDir(outputDir, cmd.Flags().Changed("output"))
		if _, err := report.Write(out, dest, cmd.OutOrStdout()); err != nil {
			logrus.Fatalf("Writing report failed: %v", err)
		}

		logrus.Info("Experiment complete.")
	},
}

// resolveConfig builds the experiment config from --config (or the defaults)
// and applies only the flags the user actually set.
func resolveConfig(cmd *cobra.Command) (*experiment.Config, error) {
	cfg := experiment.DefaultConfig()
	if configPath != "" {
		loaded, err := experiment.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("steps") {
		cfg.Steps = steps
	}
	if flags.Changed("env") {
		cfg.Environment.Kind = bandit.Kind(envKind)
	}
	if flags.Changed("arms") {
		cfg.Environment.Arms = arms
	}
	if flags.Changed("trace") {
		cfg.TraceLevel = traceLevel
	}
	if flags.Changed("reset-between-agents") {
		cfg.ResetBetweenAgents = resetBetweenAgents
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// addRunFlags binds the run flags to c.
func addRunFlags(c *cobra.Command) {
	c.Flags().StringVar(&configPath, "config", "", "Experiment YAML file (defaults to the greedy / epsilon-greedy / decaying comparison)")
	c.Flags().Int64Var(&seed, "seed", 42, "Master seed for the environment and agents")
	c.Flags().IntVar(&steps, "steps", experiment.DefaultSteps, "Steps per agent play")
	c.Flags().IntVar(&arms, "arms", 10, "Number of arms")
	c.Flags().StringVar(&envKind, "env", string(bandit.KindGaussian), "Testbed kind (gaussian, bernoulli, constant)")
	c.Flags().StringVar(&outputDir, "output", "", "Report directory; defaults to $PROJECT_DIR/reports, else print to stdout")
	c.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")
	c.Flags().BoolVar(&resetBetweenAgents, "reset-between-agents", false, "Re-draw the arms before every agent after the first")
}

// init sets up CLI flags and subcommands
func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn", "Log level (trace, debug, info, warn, error, fatal, panic)")

	addRunFlags(runCmd)

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
}
