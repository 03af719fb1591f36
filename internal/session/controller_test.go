package session

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/models"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

// fakeTicker hands the countdown callback to the test instead of scheduling
// it, so rest seconds elapse only when the test says so.
type fakeTicker struct {
	fn      func()
	running bool
	starts  int
	stops   int
}

func (t *fakeTicker) Start(interval time.Duration, fn func()) {
	t.fn = fn
	t.running = true
	t.starts++
}

func (t *fakeTicker) Stop() {
	t.running = false
	t.stops++
}

func (t *fakeTicker) tick() {
	if t.fn != nil {
		t.fn()
	}
}

type recordingNotifier struct {
	events []string
}

func (n *recordingNotifier) OnSetStarted(ex models.ExercisePlan, setNumber int) {
	n.events = append(n.events, fmt.Sprintf("set-started %s %d", ex.Spec.Name, setNumber))
}

func (n *recordingNotifier) OnSetCompleted(rec models.SetRecord) {
	n.events = append(n.events, fmt.Sprintf("set-completed %s %d", rec.ExerciseID, rec.SetIndex))
}

func (n *recordingNotifier) OnRestStarted(ex models.ExercisePlan, seconds int) {
	n.events = append(n.events, fmt.Sprintf("rest-started %s %d", ex.Spec.Name, seconds))
}

func (n *recordingNotifier) OnRestEnded(ex models.ExercisePlan) {
	n.events = append(n.events, fmt.Sprintf("rest-ended %s", ex.Spec.Name))
}

func (n *recordingNotifier) OnExerciseCompleted(ex models.ExercisePlan) {
	n.events = append(n.events, fmt.Sprintf("exercise-completed %s", ex.Spec.Name))
}

func (n *recordingNotifier) OnSessionCompleted() {
	n.events = append(n.events, "session-completed")
}

type recordingSink struct {
	dates []string
	ids   [][]string
	err   error
}

func (s *recordingSink) SaveDaily(date string, exerciseIDs []string) error {
	s.dates = append(s.dates, date)
	s.ids = append(s.ids, exerciseIDs)
	return s.err
}

type harness struct {
	ctrl     *Controller
	clock    *fakeClock
	ticker   *fakeTicker
	notifier *recordingNotifier
	sink     *recordingSink
}

func newHarness(t *testing.T, workout models.Workout) *harness {
	t.Helper()
	h := &harness{
		clock:    &fakeClock{now: time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)},
		ticker:   &fakeTicker{},
		notifier: &recordingNotifier{},
		sink:     &recordingSink{},
	}
	ctrl, err := New(workout, Deps{
		Clock:    h.clock,
		Ticker:   h.ticker,
		Notifier: h.notifier,
		Progress: h.sink,
	})
	require.NoError(t, err)
	h.ctrl = ctrl
	return h
}

func twoExerciseWorkout() models.Workout {
	return models.Workout{
		ID:   "w1",
		Name: "Push Day",
		Exercises: []models.ExerciseSpec{
			{ID: "bench", Name: "Bench Press", SetsSpec: "3 x 8-12", RestSpec: "60 sec"},
			{ID: "ohp", Name: "Overhead Press", SetsSpec: "2 x 10", RestSpec: "90 sec"},
		},
	}
}

func TestNewRejectsEmptyWorkout(t *testing.T) {
	_, err := New(models.Workout{Name: "Empty"}, Deps{})
	require.Error(t, err)
}

func TestNewAnnouncesFirstSet(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 1, snap.CurrentSet)
	assert.Equal(t, 0, snap.ExerciseIndex)
	assert.NotEmpty(t, snap.SessionID)
	assert.Equal(t, []string{"set-started Bench Press 1"}, h.notifier.events)
}

func TestCompleteSetStartsRestAndAdvancesSetNumber(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	snap, res := h.ctrl.CompleteSet(80, 10)
	require.Equal(t, ResultOK, res)

	// The set counter already points at the set the rest leads into.
	assert.Equal(t, StateResting, snap.State)
	assert.Equal(t, 2, snap.CurrentSet)
	assert.Equal(t, 60, snap.RestRemaining)
	assert.Equal(t, 1, snap.SetsDone)
	assert.Equal(t, 80.0, snap.PendingWeight)
	assert.True(t, h.ticker.running)
	assert.Contains(t, h.notifier.events, "set-completed bench 1")
	assert.Contains(t, h.notifier.events, "rest-started Bench Press 60")
}

func TestRestCountdownReachesZero(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)

	for i := 0; i < 59; i++ {
		h.ticker.tick()
	}
	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateResting, snap.State)
	assert.Equal(t, 1, snap.RestRemaining)

	h.ticker.tick()
	snap = h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 0, snap.RestRemaining)
	assert.False(t, h.ticker.running)
	assert.Contains(t, h.notifier.events, "rest-ended Bench Press")
	assert.Contains(t, h.notifier.events, "set-started Bench Press 2")
}

func TestRestingSuppressesInput(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)

	snap, res := h.ctrl.CompleteSet(80, 10)
	assert.Equal(t, ResultRejectedResting, res)
	assert.Equal(t, StateResting, snap.State)
	assert.Equal(t, 1, h.ctrl.Records().CompletedCount("bench"))

	_, res = h.ctrl.AdjustWeight(2.5)
	assert.Equal(t, ResultRejectedResting, res)
	assert.Equal(t, 80.0, h.ctrl.Snapshot().PendingWeight)
}

func TestMissingRepsRejected(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	snap, res := h.ctrl.CompleteSet(80, -1)
	assert.Equal(t, ResultRejectedMissingReps, res)
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 1, snap.CurrentSet)
	assert.Equal(t, 0, h.ctrl.Records().CompletedCount("bench"))
}

func TestZeroRepsIsAValidSet(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	_, res := h.ctrl.CompleteSet(80, 0)
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, 1, h.ctrl.Records().CompletedCount("bench"))
}

func TestNegativeWeightClampedToZero(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	snap, res := h.ctrl.CompleteSet(-20, 10)
	require.Equal(t, ResultOK, res)
	assert.Equal(t, 0.0, snap.PendingWeight)
	recs := h.ctrl.Records().All()
	require.Len(t, recs, 1)
	assert.Equal(t, 0.0, recs[0].Weight)
}

func TestLastSetOfExerciseNeverRests(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	completeAndFinishRest(h, 80, 10)
	completeAndFinishRest(h, 80, 10)

	snap, res := h.ctrl.CompleteSet(80, 8)
	require.Equal(t, ResultOK, res)
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 1, snap.ExerciseIndex)
	assert.Equal(t, 1, snap.CurrentSet)
	assert.Equal(t, 0, snap.RestRemaining)
	assert.Contains(t, h.notifier.events, "exercise-completed Bench Press")
	assert.Contains(t, h.notifier.events, "set-started Overhead Press 1")
}

func TestZeroRestShortCircuits(t *testing.T) {
	h := newHarness(t, models.Workout{
		ID:   "w2",
		Name: "Core",
		Exercises: []models.ExerciseSpec{
			{ID: "plank", Name: "Plank", SetsSpec: "3 x 30s", RestSpec: "N/A"},
		},
	})

	snap, res := h.ctrl.CompleteSet(0, 1)
	require.Equal(t, ResultOK, res)
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 2, snap.CurrentSet)
	assert.False(t, h.ticker.running)
	assert.Contains(t, h.notifier.events, "set-started Plank 2")
}

func TestSessionCompletes(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	// Bench: 3 sets.
	completeAndFinishRest(h, 80, 10)
	completeAndFinishRest(h, 80, 10)
	h.ctrl.CompleteSet(80, 8)
	// OHP: 2 sets.
	completeAndFinishRest(h, 40, 10)
	snap, res := h.ctrl.CompleteSet(40, 10)

	require.Equal(t, ResultOK, res)
	assert.Equal(t, StateSessionComplete, snap.State)
	assert.Contains(t, h.notifier.events, "session-completed")
	assert.Equal(t, 3, h.ctrl.Records().CompletedCount("bench"))
	assert.Equal(t, 2, h.ctrl.Records().CompletedCount("ohp"))

	// Terminal state rejects everything.
	_, rej := h.ctrl.CompleteSet(40, 10)
	assert.Equal(t, ResultRejectedFinished, rej)
	_, rej = h.ctrl.AdjustWeight(2.5)
	assert.Equal(t, ResultRejectedFinished, rej)
}

func TestSkipRest(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)
	before := len(h.notifier.events)

	snap, res := h.ctrl.SkipRest()
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 0, snap.RestRemaining)
	assert.False(t, h.ticker.running)
	// Skipping is silent, unlike the countdown running out.
	assert.Len(t, h.notifier.events, before)

	_, res = h.ctrl.SkipRest()
	assert.Equal(t, ResultNoop, res)
}

func TestStaleTickAfterSkipIsIgnored(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)
	h.ctrl.SkipRest()

	// A tick the ticker had already scheduled before Stop.
	h.ticker.tick()

	snap := h.ctrl.Snapshot()
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 0, snap.RestRemaining)
}

func TestExitAbandonsSession(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)

	snap := h.ctrl.Exit()
	assert.Equal(t, StateAbandoned, snap.State)
	assert.False(t, h.ticker.running)
	assert.Equal(t, 1, h.ctrl.Records().CompletedCount("bench"))

	// A stale tick after exit cannot resurrect the countdown.
	h.ticker.tick()
	assert.Equal(t, StateAbandoned, h.ctrl.Snapshot().State)

	// Exiting a finished session changes nothing.
	snap = h.ctrl.Exit()
	assert.Equal(t, StateAbandoned, snap.State)
}

func TestAdjustWeight(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	snap, res := h.ctrl.AdjustWeight(DefaultWeightStep)
	require.Equal(t, ResultOK, res)
	assert.Equal(t, 2.5, snap.PendingWeight)

	snap, _ = h.ctrl.AdjustWeight(-100)
	assert.Equal(t, 0.0, snap.PendingWeight)
}

func TestExerciseNotes(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	_, res := h.ctrl.SetExerciseNote(1, "shoulder felt tight")
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, "shoulder felt tight", h.ctrl.ExerciseNote(1))

	_, res = h.ctrl.SetExerciseNote(5, "out of range")
	assert.Equal(t, ResultNoop, res)
	assert.Equal(t, "", h.ctrl.ExerciseNote(5))
}

func TestProgressCheckpointOnExerciseCompletion(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())

	completeAndFinishRest(h, 80, 10)
	completeAndFinishRest(h, 80, 10)
	assert.Empty(t, h.sink.dates)

	h.ctrl.CompleteSet(80, 8)
	require.Len(t, h.sink.dates, 1)
	assert.Equal(t, "2025-03-10", h.sink.dates[0])
	assert.Equal(t, []string{"bench"}, h.sink.ids[0])
}

func TestExitCheckpointsPartialProgress(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	completeAndFinishRest(h, 80, 10)

	h.ctrl.Exit()
	require.Len(t, h.sink.dates, 1)
	assert.Empty(t, h.sink.ids[0])
}

func TestSinkErrorDoesNotPropagate(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.sink.err = errors.New("disk full")

	snap := h.ctrl.Exit()
	assert.Equal(t, StateAbandoned, snap.State)
}

type panickyNotifier struct {
	NopNotifier
}

func (panickyNotifier) OnSetCompleted(models.SetRecord) { panic("listener bug") }

func TestNotifierPanicIsSwallowed(t *testing.T) {
	ctrl, err := New(twoExerciseWorkout(), Deps{
		Clock:    &fakeClock{now: time.Now()},
		Ticker:   &fakeTicker{},
		Notifier: panickyNotifier{},
	})
	require.NoError(t, err)

	snap, res := ctrl.CompleteSet(80, 10)
	assert.Equal(t, ResultOK, res)
	assert.Equal(t, StateResting, snap.State)
}

func TestExportStateRoundTrip(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)
	h.ctrl.SetExerciseNote(0, "felt strong")

	state := h.ctrl.ExportState()
	assert.Equal(t, models.PhaseResting, state.Phase)
	assert.Equal(t, 60, state.RestSeconds)
	assert.Equal(t, 2, state.CurrentSet)
	assert.Equal(t, h.clock.now, state.RestStartedAt)
	require.Len(t, state.Records, 1)

	clock := &fakeClock{now: h.clock.now.Add(20 * time.Second)}
	ticker := &fakeTicker{}
	resumed, err := Resume(state, Deps{Clock: clock, Ticker: ticker})
	require.NoError(t, err)

	snap := resumed.Snapshot()
	assert.Equal(t, StateResting, snap.State)
	assert.Equal(t, 40, snap.RestRemaining)
	assert.Equal(t, 2, snap.CurrentSet)
	assert.Equal(t, 80.0, snap.PendingWeight)
	assert.Equal(t, 1, resumed.Records().CompletedCount("bench"))
	assert.Equal(t, "felt strong", resumed.ExerciseNote(0))
	assert.True(t, ticker.running)
}

func TestResumeExpiredRest(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.CompleteSet(80, 10)
	state := h.ctrl.ExportState()

	clock := &fakeClock{now: h.clock.now.Add(5 * time.Minute)}
	ticker := &fakeTicker{}
	resumed, err := Resume(state, Deps{Clock: clock, Ticker: ticker})
	require.NoError(t, err)

	snap := resumed.Snapshot()
	assert.Equal(t, StateAwaitingInput, snap.State)
	assert.Equal(t, 0, snap.RestRemaining)
	assert.False(t, ticker.running)
}

func TestResumeTerminalPhases(t *testing.T) {
	h := newHarness(t, twoExerciseWorkout())
	h.ctrl.Exit()
	state := h.ctrl.ExportState()

	resumed, err := Resume(state, Deps{Ticker: &fakeTicker{}})
	require.NoError(t, err)
	assert.Equal(t, StateAbandoned, resumed.Snapshot().State)

	_, res := resumed.CompleteSet(80, 10)
	assert.Equal(t, ResultRejectedFinished, res)
}

func TestResumeRejectsEmptyCheckpoint(t *testing.T) {
	_, err := Resume(&models.SessionState{}, Deps{})
	require.Error(t, err)
}

// completeAndFinishRest records a set and runs the countdown all the way down.
func completeAndFinishRest(h *harness, weight float64, reps int) {
	h.ctrl.CompleteSet(weight, reps)
	for h.ctrl.Snapshot().State == StateResting {
		h.ticker.tick()
	}
}
