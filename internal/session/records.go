package session

import (
	"iter"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/utils"
)

// RecordStore accumulates set records for one session. Records are
// append-only: once stored they are never mutated or removed, and the store
// lives exactly as long as the session that created it.
type RecordStore struct {
	byExercise map[string][]models.SetRecord
	order      []models.SetRecord
}

func NewRecordStore() *RecordStore {
	return &RecordStore{byExercise: make(map[string][]models.SetRecord)}
}

// Record appends one completed set.
func (s *RecordStore) Record(exerciseID string, rec models.SetRecord) {
	s.byExercise[exerciseID] = append(s.byExercise[exerciseID], rec)
	s.order = append(s.order, rec)
}

// CompletedCount returns how many sets have been stored for the exercise.
func (s *RecordStore) CompletedCount(exerciseID string) int {
	return len(s.byExercise[exerciseID])
}

// History yields the stored records of one exercise in insertion order. The
// sequence is restartable: ranging over it again replays from the start.
func (s *RecordStore) History(exerciseID string) iter.Seq[models.SetRecord] {
	return func(yield func(models.SetRecord) bool) {
		for _, rec := range s.byExercise[exerciseID] {
			if !yield(rec) {
				return
			}
		}
	}
}

// All returns every record of the session in insertion order.
func (s *RecordStore) All() []models.SetRecord {
	out := make([]models.SetRecord, len(s.order))
	copy(out, s.order)
	return out
}

// Volume returns the accumulated weight×reps for one exercise.
func (s *RecordStore) Volume(exerciseID string) float64 {
	var total float64
	for _, rec := range s.byExercise[exerciseID] {
		total += rec.Weight * float64(rec.Reps)
	}
	return total
}

// TotalVolume returns the accumulated weight×reps across the whole session.
func (s *RecordStore) TotalVolume() float64 {
	var total float64
	for _, rec := range s.order {
		total += rec.Weight * float64(rec.Reps)
	}
	return total
}

// BestEstimated1RM returns the highest estimated one-rep max recorded for the
// exercise so far, or 0 when nothing qualifies.
func (s *RecordStore) BestEstimated1RM(exerciseID string) float64 {
	var best float64
	for _, rec := range s.byExercise[exerciseID] {
		if est := utils.CalculateEpley1RM(rec.Weight, rec.Reps); est > best {
			best = est
		}
	}
	return best
}
