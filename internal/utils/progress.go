package utils

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/ironlog/ironlog/internal/models"
)

func getProgressPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "daily_progress.toml"), nil
}

// FileProgressSink checkpoints the daily completion state to a TOML file in
// the config dir. The data is advisory, so last write wins.
type FileProgressSink struct{}

func (FileProgressSink) SaveDaily(date string, exerciseIDs []string) error {
	path, err := getProgressPath()
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(models.DayCompletion{
		Date:        date,
		ExerciseIDs: exerciseIDs,
	})
}

// LoadDailyProgress reads the checkpoint back, returning nil when no
// checkpoint exists or it belongs to another day.
func LoadDailyProgress(date string) (*models.DayCompletion, error) {
	path, err := getProgressPath()
	if err != nil {
		return nil, err
	}

	var dc models.DayCompletion
	if _, err := toml.DecodeFile(path, &dc); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	if dc.Date != date {
		return nil, nil
	}
	return &dc, nil
}
