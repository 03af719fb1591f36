package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
)

var skipRestCmd = &cobra.Command{
	Use:   "skip-rest",
	Short: "Cancel the current rest countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		snap, res := ctrl.SkipRest()
		if err := saveCheckpoint(ctrl); err != nil {
			return err
		}

		if res == session.ResultNoop {
			fmt.Println("Not resting right now")
			return nil
		}

		fmt.Printf("✅ Rest skipped — %s\n", exerciseLabel(snap))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(skipRestCmd)
}
