package models

import "time"

// Workout is an ordered list of exercises, the unit the user starts a guided
// session from. The order of Exercises is the performance order.
type Workout struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	CreatedAt   time.Time      `json:"created_at"`
	Exercises   []ExerciseSpec `json:"exercises"`
}

//
// For TOML parsing only
//

type WorkoutTOML struct {
	Name        string         `toml:"name"`
	Description string         `toml:"description"`
	Exercises   []ExerciseTOML `toml:"exercise"`
}
