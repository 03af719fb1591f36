package session

import "github.com/ironlog/ironlog/internal/models"

// Notifier receives fire-and-forget signals after a state transition has
// committed. Implementations must not assume they can affect the session:
// panics are swallowed by the controller and errors have nowhere to go.
type Notifier interface {
	OnSetStarted(ex models.ExercisePlan, setNumber int)
	OnSetCompleted(rec models.SetRecord)
	OnRestStarted(ex models.ExercisePlan, seconds int)
	OnRestEnded(ex models.ExercisePlan)
	OnExerciseCompleted(ex models.ExercisePlan)
	OnSessionCompleted()
}

// NopNotifier discards every signal.
type NopNotifier struct{}

func (NopNotifier) OnSetStarted(models.ExercisePlan, int)   {}
func (NopNotifier) OnSetCompleted(models.SetRecord)         {}
func (NopNotifier) OnRestStarted(models.ExercisePlan, int)  {}
func (NopNotifier) OnRestEnded(models.ExercisePlan)         {}
func (NopNotifier) OnExerciseCompleted(models.ExercisePlan) {}
func (NopNotifier) OnSessionCompleted()                     {}

// ProgressSink is the persistence collaborator for the advisory daily
// checkpoint: which exercise IDs were fully completed on a given local day.
// Writes are at-least-once with overwrite semantics; failures are discarded.
type ProgressSink interface {
	SaveDaily(date string, exerciseIDs []string) error
}

// NopProgressSink discards every checkpoint.
type NopProgressSink struct{}

func (NopProgressSink) SaveDaily(string, []string) error { return nil }
