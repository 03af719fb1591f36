package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/ironlog/ironlog/internal/models"
)

func seededStore() *RecordStore {
	s := NewRecordStore()
	base := time.Date(2025, 3, 10, 18, 0, 0, 0, time.UTC)
	s.Record("bench", models.SetRecord{ExerciseID: "bench", SetIndex: 1, Weight: 80, Reps: 10, CompletedAt: base})
	s.Record("bench", models.SetRecord{ExerciseID: "bench", SetIndex: 2, Weight: 82.5, Reps: 8, CompletedAt: base.Add(2 * time.Minute)})
	s.Record("ohp", models.SetRecord{ExerciseID: "ohp", SetIndex: 1, Weight: 40, Reps: 10, CompletedAt: base.Add(5 * time.Minute)})
	return s
}

func TestCompletedCount(t *testing.T) {
	s := seededStore()
	assert.Equal(t, 2, s.CompletedCount("bench"))
	assert.Equal(t, 1, s.CompletedCount("ohp"))
	assert.Equal(t, 0, s.CompletedCount("squat"))
}

func TestHistoryOrderAndRestartability(t *testing.T) {
	s := seededStore()

	var sets []int
	for rec := range s.History("bench") {
		sets = append(sets, rec.SetIndex)
	}
	assert.Equal(t, []int{1, 2}, sets)

	// Ranging again replays from the start.
	var again []int
	for rec := range s.History("bench") {
		again = append(again, rec.SetIndex)
		break
	}
	assert.Equal(t, []int{1}, again)

	count := 0
	for range s.History("unknown") {
		count++
	}
	assert.Equal(t, 0, count)
}

func TestAllReturnsInsertionOrderCopy(t *testing.T) {
	s := seededStore()

	all := s.All()
	assert.Len(t, all, 3)
	assert.Equal(t, "bench", all[0].ExerciseID)
	assert.Equal(t, "ohp", all[2].ExerciseID)

	all[0].Weight = 999
	assert.Equal(t, 80.0, s.All()[0].Weight)
}

func TestVolume(t *testing.T) {
	s := seededStore()
	assert.Equal(t, 80*10+82.5*8, s.Volume("bench"))
	assert.Equal(t, 400.0, s.Volume("ohp"))
	assert.Equal(t, 80*10+82.5*8+400.0, s.TotalVolume())
}

func TestBestEstimated1RM(t *testing.T) {
	s := seededStore()
	// Epley: 80 * (1 + 10/30) beats 82.5 * (1 + 8/30).
	assert.InDelta(t, 80*(1+10.0/30), s.BestEstimated1RM("bench"), 0.001)
	assert.Equal(t, 0.0, s.BestEstimated1RM("squat"))
}
