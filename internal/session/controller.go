package session

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/utils"
)

// State is the controller's position in the guided flow.
type State int

const (
	// StateAwaitingInput means the current set is ready to be recorded.
	StateAwaitingInput State = iota
	// StateResting means the rest countdown is running and set input is
	// suppressed.
	StateResting
	// StateSessionComplete is terminal: every set of every exercise is done.
	StateSessionComplete
	// StateAbandoned is terminal: the user exited mid-session. Recorded sets
	// are kept.
	StateAbandoned
)

func (s State) String() string {
	switch s {
	case StateAwaitingInput:
		return models.PhaseAwaitingInput
	case StateResting:
		return models.PhaseResting
	case StateSessionComplete:
		return models.PhaseSessionComplete
	case StateAbandoned:
		return models.PhaseAbandoned
	}
	return "unknown"
}

func (s State) terminal() bool {
	return s == StateSessionComplete || s == StateAbandoned
}

// Result reports how a mutating call was handled. Invalid calls are not
// errors: the state stays untouched and the caller re-prompts.
type Result int

const (
	ResultOK Result = iota
	// ResultNoop means the call had nothing to do (e.g. SkipRest outside a
	// rest period).
	ResultNoop
	// ResultRejectedResting means input is suppressed by the rest countdown.
	ResultRejectedResting
	// ResultRejectedMissingReps means CompleteSet was called without reps.
	ResultRejectedMissingReps
	// ResultRejectedFinished means the session is already over.
	ResultRejectedFinished
)

// RestTickInterval is the wall-clock period of one rest countdown tick.
const RestTickInterval = time.Second

// DefaultWeightStep is the increment AdjustWeight applies per step.
const DefaultWeightStep = 2.5

// Deps are the injected collaborators of a Controller. Zero-value fields are
// replaced with working defaults (system clock, real ticker, nop notifier and
// nop progress sink).
type Deps struct {
	Clock    Clock
	Ticker   Ticker
	Notifier Notifier
	Progress ProgressSink
}

func (d Deps) withDefaults() Deps {
	if d.Clock == nil {
		d.Clock = SystemClock()
	}
	if d.Ticker == nil {
		d.Ticker = NewIntervalTicker()
	}
	if d.Notifier == nil {
		d.Notifier = NopNotifier{}
	}
	if d.Progress == nil {
		d.Progress = NopProgressSink{}
	}
	return d
}

// Snapshot is the observable session state returned by every operation, the
// only thing the CLI needs for rendering.
type Snapshot struct {
	SessionID     string
	WorkoutID     string
	WorkoutName   string
	StartTime     time.Time
	State         State
	ExerciseIndex int
	ExerciseCount int
	Exercise      models.ExercisePlan
	CurrentSet    int
	SetsDone      int
	RestRemaining int
	PendingWeight float64
}

// Controller drives the set/rest progression of one guided session. All
// mutations go through its mutex: user commands and ticker callbacks arrive
// on different goroutines but are serialized here, and notifier signals fire
// only after the transition they report has committed.
type Controller struct {
	mu sync.Mutex

	sessionID   string
	workoutID   string
	workoutName string
	startTime   time.Time

	exercises []models.ExercisePlan
	notes     []string

	idx           int
	setNum        int
	state         State
	restRemaining int
	restStartedAt time.Time
	pendingWeight float64

	records *RecordStore
	deps    Deps
	pending []func()
}

// New starts a fresh session over the workout's exercises. A workout with no
// exercises cannot be started.
func New(workout models.Workout, deps Deps) (*Controller, error) {
	if len(workout.Exercises) == 0 {
		return nil, fmt.Errorf("workout %q has no exercises", workout.Name)
	}

	deps = deps.withDefaults()
	c := &Controller{
		sessionID:   uuid.New().String(),
		workoutID:   workout.ID,
		workoutName: workout.Name,
		startTime:   deps.Clock.Now(),
		exercises:   models.PlanExercises(workout.Exercises),
		notes:       make([]string, len(workout.Exercises)),
		setNum:      1,
		state:       StateAwaitingInput,
		records:     NewRecordStore(),
		deps:        deps,
	}

	c.flush([]func(){func() { c.deps.Notifier.OnSetStarted(c.exercises[0], 1) }})
	return c, nil
}

// Resume rebuilds a controller from a checkpoint. A rest period that expired
// while no process was running resolves directly to AwaitingInput; one still
// in flight resumes ticking with the remaining wall-clock seconds.
func Resume(state *models.SessionState, deps Deps) (*Controller, error) {
	if len(state.Exercises) == 0 {
		return nil, fmt.Errorf("checkpoint has no exercises")
	}

	deps = deps.withDefaults()
	c := &Controller{
		sessionID:     state.SessionID,
		workoutID:     state.WorkoutID,
		workoutName:   state.WorkoutName,
		startTime:     state.StartTime,
		exercises:     models.PlanExercises(state.Exercises),
		notes:         append([]string(nil), state.ExerciseNotes...),
		idx:           state.ActiveExercise,
		setNum:        state.CurrentSet,
		pendingWeight: state.PendingWeight,
		records:       NewRecordStore(),
		deps:          deps,
	}
	if len(c.notes) < len(c.exercises) {
		c.notes = append(c.notes, make([]string, len(c.exercises)-len(c.notes))...)
	}
	if c.idx >= len(c.exercises) {
		c.idx = len(c.exercises) - 1
	}
	if c.setNum < 1 {
		c.setNum = 1
	}

	for _, rec := range state.Records {
		c.records.Record(rec.ExerciseID, rec)
	}

	switch state.Phase {
	case models.PhaseSessionComplete:
		c.state = StateSessionComplete
	case models.PhaseAbandoned:
		c.state = StateAbandoned
	case models.PhaseResting:
		elapsed := int(deps.Clock.Now().Sub(state.RestStartedAt) / time.Second)
		remaining := state.RestSeconds - elapsed
		if remaining > 0 {
			c.state = StateResting
			c.restRemaining = remaining
			c.restStartedAt = state.RestStartedAt
			c.deps.Ticker.Start(RestTickInterval, c.tick)
		} else {
			c.state = StateAwaitingInput
		}
	default:
		c.state = StateAwaitingInput
	}

	return c, nil
}

// CompleteSet records the current set. Rejected while resting, after the
// session is over, or when reps are missing (negative); rejected calls leave
// the state untouched and append nothing.
func (c *Controller) CompleteSet(weight float64, reps int) (Snapshot, Result) {
	c.mu.Lock()
	res := c.completeSetLocked(weight, reps)
	snap := c.snapshotLocked()
	events := c.takeEventsLocked()
	c.mu.Unlock()

	c.flush(events)
	return snap, res
}

func (c *Controller) completeSetLocked(weight float64, reps int) Result {
	if c.state.terminal() {
		return ResultRejectedFinished
	}
	if c.state == StateResting {
		return ResultRejectedResting
	}
	if reps < 0 {
		return ResultRejectedMissingReps
	}
	if weight < 0 {
		weight = 0
	}

	ex := c.exercises[c.idx]
	rec := models.SetRecord{
		ExerciseID:  ex.Spec.ID,
		SetIndex:    c.setNum,
		Weight:      weight,
		Reps:        reps,
		CompletedAt: c.deps.Clock.Now(),
	}
	c.records.Record(ex.Spec.ID, rec)
	c.pendingWeight = weight
	c.emit(func() { c.deps.Notifier.OnSetCompleted(rec) })

	if c.setNum < ex.TotalSets {
		c.setNum++
		if ex.RestSeconds > 0 {
			c.startRestLocked(ex)
		} else {
			// Zero rest ("N/A") short-circuits straight to the next set.
			next := c.setNum
			c.emit(func() { c.deps.Notifier.OnSetStarted(ex, next) })
		}
		return ResultOK
	}

	// That was the last set of the exercise.
	c.emit(func() { c.deps.Notifier.OnExerciseCompleted(ex) })
	c.checkpointProgressLocked()

	if c.idx == len(c.exercises)-1 {
		c.stopRestLocked()
		c.state = StateSessionComplete
		c.emit(func() { c.deps.Notifier.OnSessionCompleted() })
		return ResultOK
	}

	c.idx++
	c.setNum = 1
	c.state = StateAwaitingInput
	c.restRemaining = 0
	nextEx := c.exercises[c.idx]
	c.emit(func() { c.deps.Notifier.OnSetStarted(nextEx, 1) })
	return ResultOK
}

// SkipRest cancels the countdown immediately. No rest-ended signal fires; a
// call outside a rest period is a no-op.
func (c *Controller) SkipRest() (Snapshot, Result) {
	c.mu.Lock()
	res := ResultNoop
	if c.state == StateResting {
		c.stopRestLocked()
		c.state = StateAwaitingInput
		c.restRemaining = 0
		res = ResultOK
	}
	snap := c.snapshotLocked()
	events := c.takeEventsLocked()
	c.mu.Unlock()

	c.flush(events)
	return snap, res
}

// AdjustWeight moves the pending weight for the upcoming set. It floors at
// zero and has no ceiling; while resting, weight input is suppressed like
// every other set input.
func (c *Controller) AdjustWeight(delta float64) (Snapshot, Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state.terminal() {
		return c.snapshotLocked(), ResultRejectedFinished
	}
	if c.state == StateResting {
		return c.snapshotLocked(), ResultRejectedResting
	}

	c.pendingWeight += delta
	if c.pendingWeight < 0 {
		c.pendingWeight = 0
	}
	return c.snapshotLocked(), ResultOK
}

// SetExerciseNote attaches free text to an exercise of the session. The note
// is opaque to the controller.
func (c *Controller) SetExerciseNote(index int, note string) (Snapshot, Result) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.notes) {
		return c.snapshotLocked(), ResultNoop
	}
	c.notes[index] = note
	return c.snapshotLocked(), ResultOK
}

// Exit abandons the session: the countdown stops permanently and already
// scheduled ticks can no longer mutate anything. Recorded sets are kept. A
// session that already finished stays finished.
func (c *Controller) Exit() Snapshot {
	c.mu.Lock()
	if !c.state.terminal() {
		c.stopRestLocked()
		c.state = StateAbandoned
		c.restRemaining = 0
		c.checkpointProgressLocked()
	}
	snap := c.snapshotLocked()
	events := c.takeEventsLocked()
	c.mu.Unlock()

	c.flush(events)
	return snap
}

// Snapshot returns the current observable state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Records exposes the session's record store.
func (c *Controller) Records() *RecordStore { return c.records }

// ExportState serializes the controller into a checkpoint.
func (c *Controller) ExportState() *models.SessionState {
	c.mu.Lock()
	defer c.mu.Unlock()

	specs := make([]models.ExerciseSpec, len(c.exercises))
	for i, ex := range c.exercises {
		specs[i] = ex.Spec
	}

	return &models.SessionState{
		SessionID:      c.sessionID,
		WorkoutID:      c.workoutID,
		WorkoutName:    c.workoutName,
		StartTime:      c.startTime,
		Exercises:      specs,
		ExerciseNotes:  append([]string(nil), c.notes...),
		ActiveExercise: c.idx,
		CurrentSet:     c.setNum,
		Phase:          c.state.String(),
		RestStartedAt:  c.restStartedAt,
		RestSeconds:    c.currentRestSecondsLocked(),
		PendingWeight:  c.pendingWeight,
		Records:        c.records.All(),
	}
}

// ExerciseNote returns the note attached to an exercise, or "".
func (c *Controller) ExerciseNote(index int) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.notes) {
		return ""
	}
	return c.notes[index]
}

//
// Internals (all called with c.mu held)
//

func (c *Controller) startRestLocked(ex models.ExercisePlan) {
	// Defensively replace any running countdown so a leaked ticker can never
	// double-decrement.
	c.stopRestLocked()
	c.state = StateResting
	c.restRemaining = ex.RestSeconds
	c.restStartedAt = c.deps.Clock.Now()
	c.deps.Ticker.Start(RestTickInterval, c.tick)
	c.emit(func() { c.deps.Notifier.OnRestStarted(ex, ex.RestSeconds) })
}

func (c *Controller) stopRestLocked() {
	c.deps.Ticker.Stop()
}

// tick runs once per RestTickInterval while resting. Ticks that arrive after
// the countdown was cancelled find the state changed and do nothing.
func (c *Controller) tick() {
	c.mu.Lock()
	if c.state != StateResting {
		c.mu.Unlock()
		return
	}

	c.restRemaining--
	if c.restRemaining <= 0 {
		c.restRemaining = 0
		c.stopRestLocked()
		c.state = StateAwaitingInput
		ex := c.exercises[c.idx]
		setNum := c.setNum
		c.emit(func() { c.deps.Notifier.OnRestEnded(ex) })
		c.emit(func() { c.deps.Notifier.OnSetStarted(ex, setNum) })
	}
	events := c.takeEventsLocked()
	c.mu.Unlock()

	c.flush(events)
}

func (c *Controller) checkpointProgressLocked() {
	date := utils.DayKey(c.deps.Clock.Now())
	var done []string
	for _, ex := range c.exercises {
		if c.records.CompletedCount(ex.Spec.ID) >= ex.TotalSets {
			done = append(done, ex.Spec.ID)
		}
	}
	sink := c.deps.Progress
	c.emit(func() {
		if err := sink.SaveDaily(date, done); err != nil {
			logrus.WithError(err).Debug("daily progress checkpoint failed")
		}
	})
}

func (c *Controller) currentRestSecondsLocked() int {
	if c.state != StateResting {
		return 0
	}
	return c.exercises[c.idx].RestSeconds
}

func (c *Controller) snapshotLocked() Snapshot {
	ex := c.exercises[c.idx]
	return Snapshot{
		SessionID:     c.sessionID,
		WorkoutID:     c.workoutID,
		WorkoutName:   c.workoutName,
		StartTime:     c.startTime,
		State:         c.state,
		ExerciseIndex: c.idx,
		ExerciseCount: len(c.exercises),
		Exercise:      ex,
		CurrentSet:    c.setNum,
		SetsDone:      c.records.CompletedCount(ex.Spec.ID),
		RestRemaining: c.restRemaining,
		PendingWeight: c.pendingWeight,
	}
}

// emit queues a side effect to run after the current transition commits.
func (c *Controller) emit(fn func()) {
	c.pending = append(c.pending, fn)
}

func (c *Controller) takeEventsLocked() []func() {
	events := c.pending
	c.pending = nil
	return events
}

// flush runs queued side effects outside the lock. Collaborator failures are
// strictly best-effort and never reach the caller.
func (c *Controller) flush(events []func()) {
	for _, fn := range events {
		func() {
			defer func() {
				if r := recover(); r != nil {
					logrus.WithField("panic", r).Debug("session signal ignored")
				}
			}()
			fn()
		}()
	}
}
