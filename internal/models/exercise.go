package models

import "time"

// ExerciseSpec is the read-only description of one exercise inside a workout,
// as it comes from the workout file. SetsSpec and RestSpec are free-form
// strings ("3 x 8-12", "90 sec") and are resolved into an ExercisePlan before
// a guided session starts.
type ExerciseSpec struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	SetsSpec      string `json:"sets_spec"`
	RestSpec      string `json:"rest_spec"`
	Notes         string `json:"notes,omitempty"`
	PrimaryMuscle string `json:"primary_muscle,omitempty"`
}

// ExercisePlan is an ExerciseSpec with its specs parsed.
type ExercisePlan struct {
	Spec           ExerciseSpec `json:"spec"`
	TotalSets      int          `json:"total_sets"`
	TargetRepRange string       `json:"target_rep_range"`
	RestSeconds    int          `json:"rest_seconds"`
}

// SetRecord is the immutable result of one completed set.
type SetRecord struct {
	ExerciseID  string    `json:"exercise_id" toml:"exercise_id"`
	SetIndex    int       `json:"set_index" toml:"set_index"`
	Weight      float64   `json:"weight" toml:"weight"`
	Reps        int       `json:"reps" toml:"reps"`
	CompletedAt time.Time `json:"completed_at" toml:"completed_at"`
}

//
// For TOML parsing only
//

type ExerciseTOML struct {
	Name          string `toml:"name"`
	Sets          string `toml:"sets"`
	Rest          string `toml:"rest"`
	Notes         string `toml:"notes,omitempty"`
	PrimaryMuscle string `toml:"primary_muscle,omitempty"`
}
