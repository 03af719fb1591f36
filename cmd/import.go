package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/storage"
)

var importWorkoutCmd = &cobra.Command{
	Use:   "import-workout [file]",
	Short: "Import a workout from a TOML file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("Failed to read file: %w", err)
		}

		st := storage.NewStorage()
		workout, err := st.ImportWorkout(data)
		if err != nil {
			return fmt.Errorf("Failed to import workout: %w", err)
		}

		fmt.Printf("✅ Workout '%s' imported with %d exercises\n", workout.Name, len(workout.Exercises))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importWorkoutCmd)
}
