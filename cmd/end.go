package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/storage"
	"github.com/ironlog/ironlog/internal/utils"
)

var endSessionCmd = &cobra.Command{
	Use:   "end",
	Short: "End the current session and save it to the database",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		completed := ctrl.Snapshot().State == session.StateSessionComplete
		if !completed {
			// Exiting mid-session keeps every already-recorded set.
			ctrl.Exit()
		}
		state := ctrl.ExportState()

		st := storage.NewStorage()
		if err := st.SaveSession(state, completed); err != nil {
			return fmt.Errorf("Failed to save session: %w", err)
		}

		// Mirror the daily checkpoint into the database, last write wins.
		var done []string
		if dc, err := utils.LoadDailyProgress(utils.DayKey(state.StartTime)); err == nil && dc != nil {
			done = dc.ExerciseIDs
		}
		if err := st.SaveDaily(utils.DayKey(state.StartTime), done); err != nil {
			// Advisory data only; losing it is fine.
			fmt.Println("⚠️  Could not save the daily checkpoint")
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to clear session: %w", err)
		}

		if completed {
			fmt.Println("✅ Session saved successfully")
		} else {
			fmt.Println("✅ Session saved (ended early — recorded sets were kept)")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(endSessionCmd)
}
