package cmd

import (
	"fmt"

	"github.com/ironlog/ironlog/internal/notify"
	"github.com/ironlog/ironlog/internal/session"
	"github.com/ironlog/ironlog/internal/utils"
)

// resumeSession rebuilds the controller from the checkpoint file with the
// standard CLI collaborators: real clock and ticker, terminal notifier and
// the file-based daily progress sink.
func resumeSession() (*session.Controller, error) {
	if !utils.SessionExists() {
		return nil, fmt.Errorf("No active session")
	}

	state, err := utils.LoadSessionState()
	if err != nil {
		return nil, fmt.Errorf("Failed to load session state: %w", err)
	}

	ctrl, err := session.Resume(state, session.Deps{
		Notifier: notify.NewTerminalNotifier(),
		Progress: utils.FileProgressSink{},
	})
	if err != nil {
		return nil, fmt.Errorf("Failed to resume session: %w", err)
	}

	return ctrl, nil
}

// saveCheckpoint writes the controller back to the checkpoint file.
func saveCheckpoint(ctrl *session.Controller) error {
	if err := utils.SaveSessionState(ctrl.ExportState()); err != nil {
		return fmt.Errorf("Failed to save session state: %w", err)
	}
	return nil
}

func describeResult(res session.Result) string {
	switch res {
	case session.ResultRejectedResting:
		return "resting — finish or skip the rest first"
	case session.ResultRejectedMissingReps:
		return "reps are required"
	case session.ResultRejectedFinished:
		return "the session is already over"
	case session.ResultNoop:
		return "nothing to do"
	}
	return ""
}

func exerciseLabel(snap session.Snapshot) string {
	return fmt.Sprintf("%s (set %d/%d)", snap.Exercise.Spec.Name, snap.CurrentSet, snap.Exercise.TotalSets)
}

func phaseLabel(state session.State) string {
	switch state {
	case session.StateAwaitingInput:
		return "awaiting input"
	case session.StateResting:
		return "resting"
	case session.StateSessionComplete:
		return "complete"
	case session.StateAbandoned:
		return "abandoned"
	}
	return "unknown"
}
