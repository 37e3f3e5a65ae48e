package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/kbandit/kbandit/sim"
)

var (
	scheduleStart float64 // Start epsilon
	scheduleEnd   float64 // End epsilon (only used when --end is set)
	scheduleSteps int     // Schedule length
)

// scheduleCmd prints the epsilon an agent would use at every step
var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Print an epsilon schedule",
	Run: func(cmd *cobra.Command, args []string) {
		var end *float64
		if cmd.Flags().Changed("end") {
			end = &scheduleEnd
		}
		s, err := sim.NewEpsilonSchedule(scheduleStart, end, scheduleSteps)
		if err != nil {
			logrus.Fatalf("Invalid schedule: %v", err)
		}
		for t := 0; t < s.Len(); t++ {
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%g\n", t, s.At(t))
		}
	},
}

func init() {
	scheduleCmd.Flags().Float64Var(&scheduleStart, "start", 0.1, "Start epsilon")
	scheduleCmd.Flags().Float64Var(&scheduleEnd, "end", 0, "End epsilon; omit for a constant schedule")
	scheduleCmd.Flags().IntVar(&scheduleSteps, "steps", 10, "Number of steps")
}
