package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/utils"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current guided session",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		snap := ctrl.Snapshot()
		state := ctrl.ExportState()
		duration := time.Since(snap.StartTime).Round(time.Second)

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		red := color.New(color.FgRed).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s\n", green(snap.WorkoutName))
		fmt.Printf("%s %s\n", red("Duration:"), duration)
		fmt.Printf("%s %s\n", cyan("Phase:"), phaseLabel(snap.State))
		if snap.State == session.StateResting {
			fmt.Printf("%s %s\n", yellow("Rest remaining:"), utils.FormatRest(snap.RestRemaining))
		}
		if snap.State == session.StateAwaitingInput {
			fmt.Printf("%s %s @ %.1fkg\n", yellow("Up next:"), exerciseLabel(snap), snap.PendingWeight)
		}
		fmt.Println()

		plans := models.PlanExercises(state.Exercises)
		for i, plan := range plans {
			marker := "  "
			if i == snap.ExerciseIndex && !terminalState(snap.State) {
				marker = cyan("➜ ")
			}
			fmt.Printf("%s%s %s\n", marker, cyan(fmt.Sprintf("%d.", i+1)), yellow(plan.Spec.Name))

			if plan.Spec.Notes != "" {
				fmt.Printf("   %s %s\n", cyan("Guide:"), plan.Spec.Notes)
			}
			if note := ctrl.ExerciseNote(i); note != "" {
				fmt.Printf("   %s %s\n", green("Session Notes:"), note)
			}

			fmt.Println("   ┌──────┬───────────────┬─────────────────┐")
			fmt.Println("   │ Set  │ Target        │ Done            │")
			fmt.Println("   ├──────┼───────────────┼─────────────────┤")

			done := make(map[int]models.SetRecord)
			for rec := range ctrl.Records().History(plan.Spec.ID) {
				done[rec.SetIndex] = rec
			}

			for set := 1; set <= plan.TotalSets; set++ {
				target := plan.TargetRepRange
				if target == "" {
					target = "—"
				}
				result := "Not completed"
				if rec, ok := done[set]; ok {
					result = fmt.Sprintf("%.1fkg × %d", rec.Weight, rec.Reps)
				}
				fmt.Printf("   │ %-4d │ %-13s │ %-15s │\n", set, target, result)
			}

			fmt.Println("   └──────┴───────────────┴─────────────────┘")
			rest := "no rest"
			if plan.RestSeconds > 0 {
				rest = utils.FormatRest(plan.RestSeconds) + " rest"
			}
			fmt.Printf("   %s\n\n", strings.TrimSpace(rest))
		}

		return nil
	},
}

func terminalState(s session.State) bool {
	return s == session.StateSessionComplete || s == session.StateAbandoned
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
