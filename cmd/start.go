package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/notify"
	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/storage"
	"github.com/ironlog/ironlog/internal/utils"
)

var workoutName string

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a guided session for a workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		if utils.SessionExists() {
			return fmt.Errorf("A session is already active (end or cancel it first)")
		}

		st := storage.NewStorage()
		workout, err := st.GetWorkoutByName(workoutName)
		if err != nil {
			return fmt.Errorf("Failed to load workout: %w", err)
		}

		ctrl, err := session.New(*workout, session.Deps{
			Notifier: notify.NewTerminalNotifier(),
			Progress: utils.FileProgressSink{},
		})
		if err != nil {
			return fmt.Errorf("Failed to start session: %w", err)
		}

		if err := saveCheckpoint(ctrl); err != nil {
			return err
		}

		snap := ctrl.Snapshot()
		fmt.Printf("✅ Started session for '%s' (%d exercises)\n", workout.Name, snap.ExerciseCount)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(startCmd)

	startCmd.Flags().StringVarP(&workoutName, "workout", "w", "", "Workout name")
	startCmd.MarkFlagRequired("workout")
}
