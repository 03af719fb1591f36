package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/storage"
	"github.com/ironlog/ironlog/internal/utils"
)

var listWorkoutsCmd = &cobra.Command{
	Use:   "list-workouts",
	Short: "List all workouts",
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		workouts, err := st.ListWorkouts()
		if err != nil {
			return err
		}

		for _, w := range workouts {
			fmt.Printf("%s - %s\n", w.Name, w.Description)
		}
		return nil
	},
}

var showWorkoutCmd = &cobra.Command{
	Use:   "show-workout [name]",
	Short: "Show a workout with its parsed set/rest plan",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		workout, err := st.GetWorkoutByName(args[0])
		if err != nil {
			return err
		}

		cyan := color.New(color.FgCyan).SprintFunc()
		yellow := color.New(color.FgYellow).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()

		fmt.Printf("%s\n", green(workout.Name))
		if workout.Description != "" {
			fmt.Printf("%s\n", workout.Description)
		}
		fmt.Println()

		for i, plan := range models.PlanExercises(workout.Exercises) {
			fmt.Printf("%s %s\n", cyan(fmt.Sprintf("%d.", i+1)), yellow(plan.Spec.Name))
			target := plan.TargetRepRange
			if target == "" {
				target = "—"
			}
			rest := "no rest"
			if plan.RestSeconds > 0 {
				rest = utils.FormatRest(plan.RestSeconds)
			}
			fmt.Printf("   %d sets × %s, rest %s\n", plan.TotalSets, target, rest)
			if plan.Spec.PrimaryMuscle != "" {
				fmt.Printf("   %s %s\n", cyan("Muscle:"), plan.Spec.PrimaryMuscle)
			}
			if plan.Spec.Notes != "" {
				fmt.Printf("   %s %s\n", cyan("Notes:"), plan.Spec.Notes)
			}
		}
		return nil
	},
}

var deleteWorkoutCmd = &cobra.Command{
	Use:   "delete-workout [name]",
	Short: "Delete a workout by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		st := storage.NewStorage()
		if err := st.DeleteWorkoutByName(args[0]); err != nil {
			return err
		}

		fmt.Printf("✅ Workout '%s' deleted successfully\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listWorkoutsCmd)
	rootCmd.AddCommand(showWorkoutCmd)
	rootCmd.AddCommand(deleteWorkoutCmd)
}
