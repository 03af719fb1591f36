package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// SaveDaily upserts the advisory daily completion checkpoint. Last write
// wins; the data only feeds the same-day dashboard view, nothing depends on
// it being exact.
func (s *Storage) SaveDaily(date string, exerciseIDs []string) error {
	if exerciseIDs == nil {
		exerciseIDs = []string{}
	}
	encoded, err := json.Marshal(exerciseIDs)
	if err != nil {
		return fmt.Errorf("Failed to encode exercise ids: %w", err)
	}

	_, err = s.DB.Exec(
		`INSERT OR REPLACE INTO day_completions (date, exercise_ids, updated_at) VALUES (?, ?, ?)`,
		date, string(encoded), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("Failed to save day completion: %w", err)
	}
	return nil
}

// GetDaily returns the exercise IDs checkpointed for a day, or nil when the
// day has no checkpoint.
func (s *Storage) GetDaily(date string) ([]string, error) {
	var encoded string
	err := s.DB.QueryRow(
		`SELECT exercise_ids FROM day_completions WHERE date = ?`, date,
	).Scan(&encoded)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	var ids []string
	if err := json.Unmarshal([]byte(encoded), &ids); err != nil {
		return nil, fmt.Errorf("Failed to decode exercise ids: %w", err)
	}
	return ids, nil
}
