package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/kbandit/kbandit/sim/experiment"
)

// Artifact file names written under the destination directory.
const (
	RewardsFile = "rewards.csv"
	ActionsFile = "actions.csv"
	SummaryFile = "summary.yaml"
)

// Write reports an experiment outcome.
//
// With an empty dest the summary table is printed to w. Otherwise dest is
// created if needed and receives rewards.csv (running average reward per
// agent), actions.csv (action per agent) and summary.yaml.
func Write(out *experiment.Outcome, dest string, w io.Writer) (*Summary, error) {
	summary := Summarize(out)
	if dest == "" {
		Print(w, summary)
		return summary, nil
	}

	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("creating report directory: %w", err)
	}
	if err := writeRewards(filepath.Join(dest, RewardsFile), out); err != nil {
		return nil, err
	}
	if err := writeActions(filepath.Join(dest, ActionsFile), out); err != nil {
		return nil, err
	}
	if err := writeSummary(filepath.Join(dest, SummaryFile), summary); err != nil {
		return nil, err
	}
	logrus.Infof("Report %s written to %s", summary.RunID, dest)
	return summary, nil
}

// Print writes a human-readable summary table.
func Print(w io.Writer, s *Summary) {
	fmt.Fprintln(w, "=== Bandit Experiment Summary ===")
	fmt.Fprintf(w, "Run ID               : %s\n", s.RunID)
	fmt.Fprintf(w, "Seed                 : %d\n", s.Seed)
	fmt.Fprintf(w, "Steps per agent      : %d\n", s.Steps)
	fmt.Fprintf(w, "Actions              : %d\n", s.NumActions)
	for _, a := range s.Agents {
		fmt.Fprintf(w, "\n--- %s ---\n", a.Name)
		fmt.Fprintf(w, "Average reward       : %.4f\n", a.FinalAverageReward)
		fmt.Fprintf(w, "Mean epsilon         : %.4f\n", a.MeanEpsilon)
		fmt.Fprintf(w, "Explored steps       : %d\n", a.ExploreCount)
		if a.OptimalAction >= 0 {
			fmt.Fprintf(w, "Optimal action       : %d (%.2f%% of steps)\n", a.OptimalAction, a.OptimalActionRate*100)
		}
		fmt.Fprintf(w, "Action counts        : %v\n", a.ActionCounts)
		fmt.Fprintf(w, "Uniformity chi2 (p)  : %.2f (%.4f)\n", a.ChiSquare, a.UniformityPValue)
		if a.Trace != nil {
			fmt.Fprintf(w, "Trace decisions      : %d (%d explored, %d exploited, %d unique actions)\n",
				a.Trace.Decisions, a.Trace.Explored, a.Trace.Exploited, a.Trace.UniqueActions)
			fmt.Fprintf(w, "Trace reward / eps   : %.4f / %.4f\n", a.Trace.TotalReward, a.Trace.MeanEpsilon)
			fmt.Fprintf(w, "Trace distribution   : %v\n", a.Trace.ActionDistribution)
		}
	}
}

func writeRewards(path string, out *experiment.Outcome) error {
	header := []string{"step"}
	columns := make([][]float64, len(out.Results))
	for i, r := range out.Results {
		header = append(header, r.Name+" avg reward")
		columns[i] = RunningAverage(r.History)
	}
	return writeCSV(path, header, out.Steps, func(step int) []string {
		row := []string{strconv.Itoa(step)}
		for _, col := range columns {
			row = append(row, strconv.FormatFloat(col[step], 'g', -1, 64))
		}
		return row
	})
}

func writeActions(path string, out *experiment.Outcome) error {
	header := []string{"step"}
	for _, r := range out.Results {
		header = append(header, r.Name+" action")
	}
	return writeCSV(path, header, out.Steps, func(step int) []string {
		row := []string{strconv.Itoa(step)}
		for _, r := range out.Results {
			row = append(row, strconv.Itoa(r.History.At(step).Action))
		}
		return row
	})
}

func writeCSV(path string, header []string, rows int, row func(int) []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("writing %s header: %w", path, err)
	}
	for step := 0; step < rows; step++ {
		if err := writer.Write(row(step)); err != nil {
			return fmt.Errorf("writing %s row %d: %w", path, step, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", path, err)
	}
	return nil
}

func writeSummary(path string, s *Summary) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding summary: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
