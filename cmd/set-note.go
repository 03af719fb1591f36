package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
)

var noteText string

var setNoteCmd = &cobra.Command{
	Use:   "set-note [exercise-index]",
	Short: "Set a note for a specific exercise in the current session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		exIdx, err := strconv.Atoi(args[0])
		if err != nil || exIdx < 1 {
			return fmt.Errorf("Invalid exercise index (should be 1-based)")
		}
		exIdx--

		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		if _, res := ctrl.SetExerciseNote(exIdx, noteText); res != session.ResultOK {
			return fmt.Errorf("Exercise index out of range")
		}

		if err := saveCheckpoint(ctrl); err != nil {
			return err
		}

		fmt.Println("✅ Note set successfully")
		return nil
	},
}

func init() {
	setNoteCmd.Flags().StringVarP(&noteText, "note", "n", "", "Note text to set for the exercise")
	setNoteCmd.MarkFlagRequired("note")
	rootCmd.AddCommand(setNoteCmd)
}
