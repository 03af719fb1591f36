package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/config"
	"github.com/ironlog/ironlog/internal/session"
)

var (
	weightDelta float64
	weightDown  bool
)

var adjustWeightCmd = &cobra.Command{
	Use:   "adjust-weight",
	Short: "Nudge the weight for the upcoming set (defaults to one step up)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		delta := weightDelta
		if !cmd.Flags().Changed("delta") {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("Failed to load config: %w", err)
			}
			delta = cfg.Session.WeightStep
		}
		if weightDown {
			delta = -delta
		}

		snap, res := ctrl.AdjustWeight(delta)
		if res != session.ResultOK {
			return fmt.Errorf("Cannot adjust weight: %s", describeResult(res))
		}

		if err := saveCheckpoint(ctrl); err != nil {
			return err
		}

		fmt.Printf("✅ Weight for the next set: %.1fkg\n", snap.PendingWeight)
		return nil
	},
}

func init() {
	adjustWeightCmd.Flags().Float64VarP(&weightDelta, "delta", "d", 0, "Exact amount to add (negative to subtract)")
	adjustWeightCmd.Flags().BoolVar(&weightDown, "down", false, "Step down instead of up")
	rootCmd.AddCommand(adjustWeightCmd)
}
