package cmd

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/utils"
)

var (
	setWeight float64
	setReps   int
	setNoWait bool
)

var completeSetCmd = &cobra.Command{
	Use:   "complete-set",
	Short: "Record the current set and run the rest countdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl, err := resumeSession()
		if err != nil {
			return err
		}

		weight := setWeight
		if !cmd.Flags().Changed("weight") {
			// Weight sticks between sets; adjust-weight nudges it.
			weight = ctrl.Snapshot().PendingWeight
		}

		snap, res := ctrl.CompleteSet(weight, setReps)
		if res != session.ResultOK {
			return fmt.Errorf("Cannot record set: %s", describeResult(res))
		}

		if err := saveCheckpoint(ctrl); err != nil {
			return err
		}

		if snap.State == session.StateResting && !setNoWait {
			snap = waitOutRest(ctrl)
			if err := saveCheckpoint(ctrl); err != nil {
				return err
			}
		}

		switch snap.State {
		case session.StateSessionComplete:
			fmt.Println("Run 'ironlog end' to save the session")
		case session.StateAwaitingInput:
			fmt.Printf("Next up: %s\n", exerciseLabel(snap))
		case session.StateResting:
			fmt.Printf("Resting %s — 'ironlog skip-rest' to cut it short\n",
				utils.FormatRest(snap.RestRemaining))
		}
		return nil
	},
}

// waitOutRest blocks until the countdown finishes, redrawing the remaining
// time in place. The engine's ticker does the actual counting.
func waitOutRest(ctrl *session.Controller) session.Snapshot {
	yellow := color.New(color.FgYellow).SprintFunc()
	for {
		snap := ctrl.Snapshot()
		if snap.State != session.StateResting {
			return snap
		}
		fmt.Printf("\r%s Rest %s  ", yellow("⏳"), utils.FormatRest(snap.RestRemaining))
		time.Sleep(250 * time.Millisecond)
	}
}

func init() {
	completeSetCmd.Flags().Float64VarP(&setWeight, "weight", "w", 0, "Weight used for the set (defaults to the pending weight)")
	completeSetCmd.Flags().IntVarP(&setReps, "reps", "r", -1, "Number of reps performed")
	completeSetCmd.Flags().BoolVar(&setNoWait, "no-wait", false, "Record the set without waiting out the rest countdown")
	completeSetCmd.MarkFlagRequired("reps")
	rootCmd.AddCommand(completeSetCmd)
}
