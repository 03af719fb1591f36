package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/utils"
)

var cancelSessionCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the current session without saving any data",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !utils.SessionExists() {
			return fmt.Errorf("No active session to cancel")
		}

		if err := utils.ClearSessionState(); err != nil {
			return fmt.Errorf("Failed to cancel session: %w", err)
		}

		fmt.Println("✅ Session cancelled successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cancelSessionCmd)
}
