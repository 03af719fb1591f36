package models

import "time"

// Session phases as stored in the checkpoint file.
const (
	PhaseAwaitingInput   = "awaiting_input"
	PhaseResting         = "resting"
	PhaseSessionComplete = "complete"
	PhaseAbandoned       = "abandoned"
)

// SessionState is the live checkpoint of a guided session, written to
// ~/.config/ironlog/current_session.toml after every mutation so the CLI can
// pick the session back up on the next invocation.
type SessionState struct {
	SessionID      string         `toml:"session_id"`
	WorkoutID      string         `toml:"workout_id"`
	WorkoutName    string         `toml:"workout_name"`
	StartTime      time.Time      `toml:"start_time"`
	Exercises      []ExerciseSpec `toml:"exercises"`
	ExerciseNotes  []string       `toml:"exercise_notes"`
	ActiveExercise int            `toml:"active_exercise"`
	CurrentSet     int            `toml:"current_set"`
	Phase          string         `toml:"phase"`
	RestStartedAt  time.Time      `toml:"rest_started_at"`
	RestSeconds    int            `toml:"rest_seconds"`
	PendingWeight  float64        `toml:"pending_weight"`
	Records        []SetRecord    `toml:"records"`
}

// PersistedSession is a finished (or abandoned) session as stored in the
// database.
type PersistedSession struct {
	ID          string
	WorkoutID   string
	WorkoutName string
	StartTime   time.Time
	EndTime     *time.Time
	Completed   bool
	Notes       string
	Sets        []PersistedSet
}

// PersistedSet is one stored set together with the denormalized exercise
// info needed for display and stats.
type PersistedSet struct {
	SetRecord
	ExerciseName  string
	PrimaryMuscle string
}

// DayCompletion is the advisory daily checkpoint: which exercises were fully
// completed on a given local day. Last write wins.
type DayCompletion struct {
	Date        string   `toml:"date"`
	ExerciseIDs []string `toml:"exercise_ids"`
}
