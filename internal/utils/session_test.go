package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironlog/ironlog/internal/models"
)

func sampleState() *models.SessionState {
	start := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	return &models.SessionState{
		SessionID:   "abc-123",
		WorkoutID:   "w1",
		WorkoutName: "Push Day",
		StartTime:   start,
		Exercises: []models.ExerciseSpec{
			{ID: "bench", Name: "Bench Press", SetsSpec: "3 x 8-12", RestSpec: "60 sec"},
		},
		ExerciseNotes:  []string{"felt strong"},
		ActiveExercise: 0,
		CurrentSet:     2,
		Phase:          models.PhaseResting,
		RestStartedAt:  start.Add(3 * time.Minute),
		RestSeconds:    60,
		PendingWeight:  80,
		Records: []models.SetRecord{
			{ExerciseID: "bench", SetIndex: 1, Weight: 80, Reps: 10, CompletedAt: start.Add(3 * time.Minute)},
		},
	}
}

func TestSessionStateRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	assert.False(t, SessionExists())

	state := sampleState()
	require.NoError(t, SaveSessionState(state))
	assert.True(t, SessionExists())

	loaded, err := LoadSessionState()
	require.NoError(t, err)
	assert.Equal(t, state.SessionID, loaded.SessionID)
	assert.Equal(t, state.WorkoutName, loaded.WorkoutName)
	assert.True(t, loaded.StartTime.Equal(state.StartTime))
	assert.Equal(t, state.Exercises, loaded.Exercises)
	assert.Equal(t, state.ExerciseNotes, loaded.ExerciseNotes)
	assert.Equal(t, state.CurrentSet, loaded.CurrentSet)
	assert.Equal(t, state.Phase, loaded.Phase)
	assert.True(t, loaded.RestStartedAt.Equal(state.RestStartedAt))
	assert.Equal(t, state.RestSeconds, loaded.RestSeconds)
	assert.Equal(t, state.PendingWeight, loaded.PendingWeight)
	require.Len(t, loaded.Records, 1)
	assert.Equal(t, state.Records[0].Weight, loaded.Records[0].Weight)

	require.NoError(t, ClearSessionState())
	assert.False(t, SessionExists())
}

func TestLoadSessionStateMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	_, err := LoadSessionState()
	assert.Error(t, err)
}

func TestDailyProgressRoundTrip(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	dc, err := LoadDailyProgress("2025-03-10")
	require.NoError(t, err)
	assert.Nil(t, dc)

	sink := FileProgressSink{}
	require.NoError(t, sink.SaveDaily("2025-03-10", []string{"bench", "ohp"}))

	dc, err = LoadDailyProgress("2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, dc)
	assert.Equal(t, []string{"bench", "ohp"}, dc.ExerciseIDs)

	// A checkpoint from another day is ignored.
	dc, err = LoadDailyProgress("2025-03-11")
	require.NoError(t, err)
	assert.Nil(t, dc)
}

func TestDailyProgressOverwrite(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	sink := FileProgressSink{}
	require.NoError(t, sink.SaveDaily("2025-03-10", []string{"bench"}))
	require.NoError(t, sink.SaveDaily("2025-03-10", []string{"bench", "ohp"}))

	dc, err := LoadDailyProgress("2025-03-10")
	require.NoError(t, err)
	require.NotNil(t, dc)
	assert.Equal(t, []string{"bench", "ohp"}, dc.ExerciseIDs)
}
