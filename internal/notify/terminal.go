// Package notify holds the terminal implementation of the session Notifier:
// the stand-in for the audio/haptic feedback of the mobile app.
package notify

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/utils"
)

// TerminalNotifier rings the terminal bell and prints short colored lines on
// session signals.
type TerminalNotifier struct{}

func NewTerminalNotifier() *TerminalNotifier { return &TerminalNotifier{} }

func (n *TerminalNotifier) OnSetStarted(ex models.ExercisePlan, setNumber int) {
	cyan := color.New(color.FgCyan).SprintFunc()
	fmt.Printf("%s %s — set %d/%d (target %s)\n",
		cyan("▶"), ex.Spec.Name, setNumber, ex.TotalSets, ex.TargetRepRange)
}

func (n *TerminalNotifier) OnSetCompleted(rec models.SetRecord) {
	green := color.New(color.FgGreen).SprintFunc()
	fmt.Printf("%s Set %d: %.1fkg × %d\n", green("✅"), rec.SetIndex, rec.Weight, rec.Reps)
}

func (n *TerminalNotifier) OnRestStarted(ex models.ExercisePlan, seconds int) {
	yellow := color.New(color.FgYellow).SprintFunc()
	fmt.Printf("%s Rest %s\n", yellow("⏳"), utils.FormatRest(seconds))
}

func (n *TerminalNotifier) OnRestEnded(ex models.ExercisePlan) {
	fmt.Print("\a") // Terminal bell, the closest thing to a vibration motor.
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("\n%s Rest over — back to %s\n", green("⏰"), ex.Spec.Name)
}

func (n *TerminalNotifier) OnExerciseCompleted(ex models.ExercisePlan) {
	magenta := color.New(color.FgMagenta, color.Bold).SprintFunc()
	fmt.Printf("%s %s done\n", magenta("★"), ex.Spec.Name)
}

func (n *TerminalNotifier) OnSessionCompleted() {
	green := color.New(color.FgGreen, color.Bold).SprintFunc()
	fmt.Printf("\n%s Workout complete!\n", green("🏆"))
}
