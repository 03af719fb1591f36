package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"

	"github.com/ironlog/ironlog/internal/models"
)

// ImportWorkout parses a workout TOML file and stores it. Importing a name
// that already exists is refused so a typo cannot silently clobber a workout.
func (s *Storage) ImportWorkout(data []byte) (*models.Workout, error) {
	var wt models.WorkoutTOML
	if err := toml.Unmarshal(data, &wt); err != nil {
		return nil, fmt.Errorf("Failed to parse TOML: %w", err)
	}

	if wt.Name == "" {
		return nil, fmt.Errorf("Workout name not specified in TOML file")
	}
	if len(wt.Exercises) == 0 {
		return nil, fmt.Errorf("Workout %q has no exercises", wt.Name)
	}

	exists, err := s.WorkoutExists(wt.Name)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("Workout %q already exists (delete it first)", wt.Name)
	}

	workout := &models.Workout{
		ID:          uuid.New().String(),
		Name:        wt.Name,
		Description: wt.Description,
		CreatedAt:   time.Now().UTC(),
	}

	tx, err := s.DB.Begin()
	if err != nil {
		return nil, fmt.Errorf("Failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		`INSERT INTO workouts (id, name, description, created_at) VALUES (?, ?, ?, ?)`,
		workout.ID, workout.Name, workout.Description,
		workout.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to create workout: %w", err)
	}

	for i, ex := range wt.Exercises {
		spec := models.ExerciseSpec{
			ID:            uuid.New().String(),
			Name:          ex.Name,
			SetsSpec:      ex.Sets,
			RestSpec:      ex.Rest,
			Notes:         ex.Notes,
			PrimaryMuscle: ex.PrimaryMuscle,
		}

		_, err = tx.Exec(
			`INSERT INTO workout_exercises
            (id, workout_id, name, sets_spec, rest_spec, notes, primary_muscle, order_index)
            VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			spec.ID, workout.ID, spec.Name, spec.SetsSpec, spec.RestSpec,
			spec.Notes, spec.PrimaryMuscle, i,
		)
		if err != nil {
			return nil, fmt.Errorf("Failed to save exercise %q: %w", ex.Name, err)
		}

		workout.Exercises = append(workout.Exercises, spec)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("Failed to commit transaction: %w", err)
	}

	return workout, nil
}

func (s *Storage) GetWorkoutByName(name string) (*models.Workout, error) {
	var workout models.Workout
	var createdAt string

	err := s.DB.QueryRow(
		`SELECT id, name, description, created_at FROM workouts WHERE name = ?`,
		name,
	).Scan(&workout.ID, &workout.Name, &workout.Description, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("Workout %q not found", name)
		}
		return nil, err
	}

	workout.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)

	rows, err := s.DB.Query(`
        SELECT id, name, sets_spec, rest_spec, notes, primary_muscle
        FROM workout_exercises
        WHERE workout_id = ?
        ORDER BY order_index`,
		workout.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to load exercises: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var spec models.ExerciseSpec
		var notes, muscle sql.NullString
		if err := rows.Scan(&spec.ID, &spec.Name, &spec.SetsSpec, &spec.RestSpec, &notes, &muscle); err != nil {
			return nil, fmt.Errorf("Failed to scan exercise: %w", err)
		}
		spec.Notes = notes.String
		spec.PrimaryMuscle = muscle.String
		workout.Exercises = append(workout.Exercises, spec)
	}

	return &workout, rows.Err()
}

func (s *Storage) ListWorkouts() ([]models.Workout, error) {
	rows, err := s.DB.Query(`SELECT id, name, description, created_at FROM workouts ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []models.Workout
	for rows.Next() {
		var w models.Workout
		var createdAt string
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &createdAt); err != nil {
			continue
		}
		w.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
		workouts = append(workouts, w)
	}
	return workouts, rows.Err()
}

func (s *Storage) DeleteWorkoutByName(name string) error {
	res, err := s.DB.Exec(`DELETE FROM workouts WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("Failed to delete workout: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("Workout %q not found", name)
	}
	return nil
}

func (s *Storage) WorkoutExists(name string) (bool, error) {
	var exists bool
	err := s.DB.QueryRow(
		"SELECT EXISTS(SELECT 1 FROM workouts WHERE name = ?)",
		name,
	).Scan(&exists)

	if err != nil && err != sql.ErrNoRows {
		return false, fmt.Errorf("failed to check workout existence: %w", err)
	}

	return exists, nil
}
