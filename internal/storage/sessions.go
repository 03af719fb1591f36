package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ironlog/ironlog/internal/models"
	"github.com/ironlog/ironlog/internal/utils"
)

// SaveSession persists a finished (or abandoned) guided session together with
// every recorded set.
func (s *Storage) SaveSession(state *models.SessionState, completed bool) error {
	ctx := context.Background()
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO sessions (id, workout_id, workout_name, start_time, end_time, completed, notes)
        VALUES (?, ?, ?, ?, ?, ?, ?)`,
		state.SessionID,
		state.WorkoutID,
		state.WorkoutName,
		state.StartTime.UTC().Format(time.RFC3339),
		time.Now().UTC().Format(time.RFC3339),
		utils.BoolToInt(completed),
		"",
	)
	if err != nil {
		return fmt.Errorf("Failed to create session: %w", err)
	}

	// Exercise names are denormalized onto the sets so history and stats
	// never depend on the workout still existing.
	nameByID := make(map[string]string, len(state.Exercises))
	for _, ex := range state.Exercises {
		nameByID[ex.ID] = ex.Name
	}

	for _, rec := range state.Records {
		_, err = tx.ExecContext(ctx,
			`INSERT INTO session_sets
            (id, session_id, exercise_id, exercise_name, set_index, weight, reps, completed_at)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(),
			state.SessionID,
			rec.ExerciseID,
			nameByID[rec.ExerciseID],
			rec.SetIndex,
			rec.Weight,
			rec.Reps,
			rec.CompletedAt.UTC().Format(time.RFC3339),
		)
		if err != nil {
			return fmt.Errorf("Failed to save set: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Failed to commit transaction: %w", err)
	}

	return nil
}

func scanSession(scan func(dest ...any) error) (*models.PersistedSession, error) {
	var ps models.PersistedSession
	var startTime string
	var endTime, notes sql.NullString
	var completed int

	if err := scan(&ps.ID, &ps.WorkoutID, &ps.WorkoutName, &startTime, &endTime, &completed, &notes); err != nil {
		return nil, err
	}

	ps.StartTime, _ = time.Parse(time.RFC3339, startTime)
	if endTime.Valid && endTime.String != "" {
		t, _ := time.Parse(time.RFC3339, endTime.String)
		ps.EndTime = &t
	}
	ps.Completed = completed != 0
	ps.Notes = notes.String
	return &ps, nil
}

func (s *Storage) GetAllSessions() ([]*models.PersistedSession, error) {
	rows, err := s.DB.Query(`
        SELECT id, workout_id, workout_name, start_time, end_time, completed, notes
        FROM sessions
        ORDER BY start_time DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.PersistedSession
	for rows.Next() {
		ps, err := scanSession(rows.Scan)
		if err != nil {
			continue
		}
		sessions = append(sessions, ps)
	}
	return sessions, rows.Err()
}

// GetSessionByID returns one session with its sets, including the primary
// muscle of each exercise when the workout definition still has it.
func (s *Storage) GetSessionByID(sessionID string) (*models.PersistedSession, error) {
	row := s.DB.QueryRow(`
        SELECT id, workout_id, workout_name, start_time, end_time, completed, notes
        FROM sessions
        WHERE id = ?`, sessionID)

	ps, err := scanSession(row.Scan)
	if err != nil {
		return nil, err
	}

	rows, err := s.DB.Query(`
        SELECT ss.exercise_id, ss.exercise_name, ss.set_index, ss.weight, ss.reps, ss.completed_at,
               COALESCE(we.primary_muscle, '')
        FROM session_sets ss
        LEFT JOIN workout_exercises we ON we.id = ss.exercise_id
        WHERE ss.session_id = ?
        ORDER BY ss.completed_at ASC`, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var set models.PersistedSet
		var rawTime string
		if err := rows.Scan(&set.ExerciseID, &set.ExerciseName, &set.SetIndex,
			&set.Weight, &set.Reps, &rawTime, &set.PrimaryMuscle); err != nil {
			continue
		}
		set.CompletedAt, _ = time.Parse(time.RFC3339, rawTime)
		ps.Sets = append(ps.Sets, set)
	}

	return ps, rows.Err()
}

// GetSessionsBetween returns the sessions whose start time falls inside the
// given range (inclusive), oldest first.
func (s *Storage) GetSessionsBetween(start, end time.Time) ([]*models.PersistedSession, error) {
	rows, err := s.DB.Query(`
        SELECT id, workout_id, workout_name, start_time, end_time, completed, notes
        FROM sessions
        WHERE start_time >= ? AND start_time <= ?
        ORDER BY start_time ASC`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []*models.PersistedSession
	for rows.Next() {
		ps, err := scanSession(rows.Scan)
		if err != nil {
			continue
		}
		sessions = append(sessions, ps)
	}
	return sessions, rows.Err()
}
